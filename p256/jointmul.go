// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package p256

import "math/big"

// scalarBits is the bit width scanned by JointMul; both u and v are taken
// to be reduced mod N, which fits comfortably within 256 bits.
const scalarBits = 256

// bitPair returns ((v_i << 1) | u_i), selecting among the four
// precomputed summands {infinity, G, Q, H} for bit index i.
func bitPair(u, v *big.Int, i int) uint {
	return uint(v.Bit(i))<<1 | uint(u.Bit(i))
}

// JointMul computes the affine x-coordinate of [u]G + [v]Q using the
// Straus-Shamir joint scalar multiplication trick: H = G + Q is
// precomputed once, and each bit position of (u, v) selects one of
// {infinity, G, Q, H} to add into a running XYZZ accumulator.
//
// u = v = 0 returns 0, matching the degenerate/invalid-input behavior the
// ECDSA verification glue relies on.
func JointMul(Qx, Qy, u, v *big.Int) *big.Int {
	h := toAffine(madd(liftAffine(Gx, Gy), Qx, Qy))

	if u.Sign() == 0 && v.Sign() == 0 {
		return big.NewInt(0)
	}

	selectAffine := func(bp uint) (x, y *big.Int) {
		switch bp {
		case 1:
			return Gx, Gy
		case 2:
			return Qx, Qy
		case 3:
			return h.X, h.Y
		default:
			return big.NewInt(0), big.NewInt(0)
		}
	}

	i := scalarBits - 1
	for i >= 0 && bitPair(u, v, i) == 0 {
		i--
	}
	if i < 0 {
		return big.NewInt(0)
	}

	x0, y0 := selectAffine(bitPair(u, v, i))
	t := liftAffine(x0, y0)
	i--

	for ; i >= 0; i-- {
		t = dbl(t)
		if bp := bitPair(u, v, i); bp != 0 {
			x, y := selectAffine(bp)
			t = madd(t, x, y)
		}
	}

	if t.ZZ.Sign() == 0 {
		return big.NewInt(0)
	}
	return mulMod(t.X, pModInv(t.ZZ), P)
}
