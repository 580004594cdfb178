// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package p256

import "math/big"

// Verify reports whether (r, s) is a valid ECDSA signature of the digest
// h under the public key (Qx, Qy), per the standard P-256 verification
// equation:
//
//	u = h*s^-1 mod n, v = r*s^-1 mod n
//	x(u*G + v*Q) mod n == r
//
// Verify is a pure function: it performs no I/O, retries nothing, and
// never panics. Every failure mode -- out-of-range scalars, an invalid or
// infinite public key, a degenerate (u, v) = (0, 0), or the accumulator
// landing on the point at infinity -- collapses into a single false
// return. It does not enforce low-s (both (r, s) and (r, n-s) verify for
// a genuine signature) and it does not range-check h; both match standard
// ECDSA verification.
func Verify(h, r, s, Qx, Qy *big.Int) bool {
	if r.Sign() <= 0 || r.Cmp(N) >= 0 {
		return false
	}
	if s.Sign() <= 0 || s.Cmp(N) >= 0 {
		return false
	}
	if !IsValidPubkey(Qx, Qy) {
		return false
	}

	sInv := nModInv(s)
	u := mulMod(h, sInv, N)
	v := mulMod(r, sInv, N)

	xR := JointMul(Qx, Qy, u, v)

	return new(big.Int).Mod(xR, N).Cmp(r) == 0
}
