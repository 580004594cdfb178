// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package p256 implements the scalar multiplication and verification
// kernel for ECDSA signatures over NIST P-256 (secp256r1): constant-
// structure modular arithmetic in GF(p) and GF(n), a complete XYZZ point
// addition/doubling formula, Straus-Shamir joint scalar multiplication,
// and Fermat-based modular inversion.
//
// The package performs no I/O and holds no state outside of a call; every
// type here is a value type with copy semantics.
package p256

import "math/big"

// P is the order of the underlying field (FIPS 186-3, section D.2.3).
var P, _ = new(big.Int).SetString("FFFFFFFF00000001000000000000000000000000FFFFFFFFFFFFFFFFFFFFFFFF", 16)

// N is the order of the base point.
var N, _ = new(big.Int).SetString("FFFFFFFF00000000FFFFFFFFFFFFFFFFBCE6FAADA7179E84F3B9CAC2FC632551", 16)

// A is the curve's linear coefficient, a = p - 3 (mod p).
var A = new(big.Int).Sub(P, big.NewInt(3))

// B is the curve's constant term.
var B, _ = new(big.Int).SetString("5AC635D8AA3A93E7B3EBBD55769886BC651D06B0CC53B0F63BCE3C3E27D2604B", 16)

// Gx, Gy are the coordinates of the base point G.
var (
	Gx, _ = new(big.Int).SetString("6B17D1F2E12C4247F8BCE6E563A440F277037D812DEB33A0F4A13945D898C296", 16)
	Gy, _ = new(big.Int).SetString("4FE342E2FE1A7F9B8EE7EB4A7C0F9E162BCE33576B315ECECBB6406837BF51F5", 16)
)

// pMinus2 and nMinus2 are the Fermat exponents used for inversion in GF(p)
// and GF(n) respectively: u^(f-2) mod f == u^-1 mod f for prime f.
var (
	pMinus2 = new(big.Int).Sub(P, big.NewInt(2))
	nMinus2 = new(big.Int).Sub(N, big.NewInt(2))
)
