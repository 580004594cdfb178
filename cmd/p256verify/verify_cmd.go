// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/herczegzsolt/p256verify/asn1sig"
)

var (
	verifyHash      string
	verifySignature string
	verifyPublicKey string
)

// verifyCmd returns the cobra command for the one-shot verify subcommand.
func verifyCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a single DER-encoded ECDSA signature against a SEC1 public key.",
		Long:  "Verify a single DER-encoded ECDSA signature against a SEC1 public key. All values are given as hex strings. Prints 'true' or 'false' and exits 0 either way; a non-zero exit means the arguments themselves were malformed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&verifyHash, "hash", "", "hex-encoded 32-byte message digest")
	flags.StringVar(&verifySignature, "signature", "", "hex-encoded DER ECDSA-Sig-Value")
	flags.StringVar(&verifyPublicKey, "public-key", "", "hex-encoded SEC1 public key point")

	return cmd
}

func runVerify(cmd *cobra.Command) error {
	if verifyHash == "" || verifySignature == "" || verifyPublicKey == "" {
		return errors.New("hash, signature, and public-key are all required")
	}

	hash, err := hex.DecodeString(verifyHash)
	if err != nil {
		return errors.Wrap(err, "decoding hash")
	}
	sig, err := hex.DecodeString(verifySignature)
	if err != nil {
		return errors.Wrap(err, "decoding signature")
	}
	pub, err := hex.DecodeString(verifyPublicKey)
	if err != nil {
		return errors.Wrap(err, "decoding public key")
	}

	cmd.SilenceUsage = true

	valid := asn1sig.VerifyDERWithEncodedKey(hash, sig, pub)
	fmt.Fprintf(cmd.OutOrStdout(), "%t\n", valid)
	return nil
}
