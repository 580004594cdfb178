// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"github.com/herczegzsolt/p256verify/internal/config"
)

// rootCmd assembles the top-level command and its subcommands. It
// mirrors the root-plus-persistent-flags shape used by the rest of the
// calling surface's CLI entry points.
func rootCmd() *cobra.Command {
	v := config.New()

	root := &cobra.Command{
		Use:   "p256verify",
		Short: "Verify and serve P-256 ECDSA signature verification",
	}

	if err := config.BindFlags(v, root.PersistentFlags()); err != nil {
		// BindFlags only fails if one of the flags it has just registered
		// cannot be looked up again, which would be a programming error
		// here.
		panic(err)
	}

	root.AddCommand(verifyCmd(v))
	root.AddCommand(serveCmd(v))

	return root
}
