// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package p256

import "math/big"

// addMod returns (x + y) mod m. x and y are assumed to already be in
// [0, m).
func addMod(x, y, m *big.Int) *big.Int {
	z := new(big.Int).Add(x, y)
	return z.Mod(z, m)
}

// subMod returns (x - y) mod m, computed as addMod(x, m-y, m) when y != 0
// so that the subtraction never produces a negative intermediate.
func subMod(x, y, m *big.Int) *big.Int {
	if y.Sign() == 0 {
		return new(big.Int).Set(x)
	}
	return addMod(x, new(big.Int).Sub(m, y), m)
}

// mulMod returns (x * y) mod m. The multiplication may produce a
// 512-bit intermediate; big.Int handles that without truncation.
func mulMod(x, y, m *big.Int) *big.Int {
	z := new(big.Int).Mul(x, y)
	return z.Mod(z, m)
}

// modExp returns base^exp mod mod. It is total: any combination of
// in-range inputs produces a fully reduced result.
func modExp(base, exp, mod *big.Int) *big.Int {
	return new(big.Int).Exp(base, exp, mod)
}

// modInv returns u^fm2 mod f, where fm2 = f-2. By Fermat's little theorem
// this equals the multiplicative inverse of u mod f whenever gcd(u, f) = 1.
// u = 0 returns 0; this is mathematically undefined but callers that reach
// this package through to_affine or JointMul interpret a zero result as
// "the denominator was zero", which is exactly the behavior they want.
func modInv(u, f, fm2 *big.Int) *big.Int {
	return modExp(u, fm2, f)
}

// pModInv is modInv specialized to the base field GF(p).
func pModInv(u *big.Int) *big.Int {
	return modInv(u, P, pMinus2)
}

// nModInv is modInv specialized to the scalar field GF(n).
func nModInv(u *big.Int) *big.Int {
	return modInv(u, N, nMinus2)
}
