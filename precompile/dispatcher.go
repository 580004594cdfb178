// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package precompile implements the fixed-width calling convention used by
// RIP-7212-style EVM precompiles: a single 160-byte input (hash, r, s, Qx,
// Qy as five 32-byte big-endian words) and a 32-byte big-endian boolean
// output. It is a thin adapter over package p256; it performs no arithmetic
// of its own.
package precompile

import (
	"math/big"

	"github.com/herczegzsolt/p256verify/p256"
)

const (
	wordLen  = 32
	inputLen = 5 * wordLen
)

type index int

const (
	hashPos index = iota * wordLen
	rPos
	sPos
	xPos
	yPos
)

// Dispatch parses a 160-byte input and returns a 32-byte big-endian word:
// all zero bytes except the last, which is 1, on a valid signature; all
// zero otherwise. Any input whose length is not exactly 160 bytes yields
// the all-zero word with no error, matching the precompile convention of
// never reverting on malformed calldata.
func Dispatch(input []byte) []byte {
	out := make([]byte, wordLen)
	if len(input) != inputLen {
		return out
	}
	if verify(input) {
		out[wordLen-1] = 1
	}
	return out
}

func verify(in []byte) bool {
	x := wordBigInt(in, xPos)
	y := wordBigInt(in, yPos)
	if !p256.IsValidPubkey(x, y) {
		return false
	}
	h := wordBigInt(in, hashPos)
	r := wordBigInt(in, rPos)
	s := wordBigInt(in, sPos)
	return p256.Verify(h, r, s, x, y)
}

func word(in []byte, i index) []byte {
	return in[i : int(i)+wordLen]
}

func wordBigInt(in []byte, i index) *big.Int {
	return new(big.Int).SetBytes(word(in, i))
}

// Pack assembles the 160-byte dispatcher input from its five components.
// It performs no range validation: a value that fits in 32 bytes but is
// out of range (r or s >= N, a coordinate >= P) is packed as-is and
// Dispatch rejects it, a value wider than 32 bytes makes it panic, and a
// negative value is packed as its absolute value.
func Pack(hash [32]byte, r, s, qx, qy *big.Int) []byte {
	in := make([]byte, inputLen)
	copy(word(in, hashPos), hash[:])
	r.FillBytes(word(in, rPos))
	s.FillBytes(word(in, sPos))
	qx.FillBytes(word(in, xPos))
	qy.FillBytes(word(in, yPos))
	return in
}
