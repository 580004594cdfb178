// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command p256verify provides a command-line interface to the P-256
// ECDSA verifier: a one-shot verify subcommand and a serve subcommand
// that runs the HTTP calling surface.
package main

import (
	"os"
)

func main() {
	if rootCmd().Execute() != nil {
		os.Exit(1)
	}
}
