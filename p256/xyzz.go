// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package p256

import "math/big"

// XYZZPoint is a point in extended-Jacobian (XYZZ) coordinates: the tuple
// (X, Y, ZZ, ZZZ) represents the affine point (X/ZZ, Y/ZZZ), with the
// invariant ZZZ^2 = ZZ^3 for some implicit z (ZZ = z^2, ZZZ = z^3). The
// point at infinity is (0, 0, 0, 0); (ZZ = 0) && (ZZZ = 0) is the
// canonical at-infinity predicate.
//
// Using XYZZ rather than affine coordinates throughout lets every step of
// a scalar multiplication use only field multiplications: a single
// inversion is deferred to the end instead of being paid on every add.
type XYZZPoint struct {
	X, Y, ZZ, ZZZ *big.Int
}

// xyzzInfinity is the XYZZ point at infinity.
func xyzzInfinity() XYZZPoint {
	return XYZZPoint{X: big.NewInt(0), Y: big.NewInt(0), ZZ: big.NewInt(0), ZZZ: big.NewInt(0)}
}

// IsInfinity reports whether p is the XYZZ point at infinity.
func (p XYZZPoint) IsInfinity() bool {
	return p.ZZ.Sign() == 0 && p.ZZZ.Sign() == 0
}

// liftAffine promotes an affine point to XYZZ with z = 1.
func liftAffine(x, y *big.Int) XYZZPoint {
	return XYZZPoint{X: x, Y: y, ZZ: big.NewInt(1), ZZZ: big.NewInt(1)}
}

// mdbl doubles the affine point (x1, y1), following EFD mdbl-2008-s-1
// (the dbl-2008-s-1 formula specialized to zz1 = zzz1 = 1).
func mdbl(x1, y1 *big.Int) XYZZPoint {
	if x1.Sign() == 0 && y1.Sign() == 0 {
		return xyzzInfinity()
	}

	u := addMod(y1, y1, P)
	v := mulMod(u, u, P)
	w := mulMod(u, v, P)
	s := mulMod(x1, v, P)

	x1sq := mulMod(x1, x1, P)
	m := addMod(addMod(x1sq, x1sq, P), x1sq, P)
	m = addMod(m, A, P)

	x3 := subMod(mulMod(m, m, P), addMod(s, s, P), P)
	y3 := subMod(mulMod(m, subMod(s, x3, P), P), mulMod(w, y1, P), P)

	return XYZZPoint{X: x3, Y: y3, ZZ: v, ZZZ: w}
}

// dbl doubles p1 in XYZZ coordinates, following EFD dbl-2008-s-1.
func dbl(p1 XYZZPoint) XYZZPoint {
	if p1.IsInfinity() {
		return xyzzInfinity()
	}

	u := addMod(p1.Y, p1.Y, P)
	v := mulMod(u, u, P)
	w := mulMod(u, v, P)
	s := mulMod(p1.X, v, P)

	x1sq := mulMod(p1.X, p1.X, P)
	m := addMod(addMod(x1sq, x1sq, P), x1sq, P)
	zz1sq := mulMod(p1.ZZ, p1.ZZ, P)
	m = addMod(m, mulMod(A, zz1sq, P), P)

	x3 := subMod(mulMod(m, m, P), addMod(s, s, P), P)
	y3 := subMod(mulMod(m, subMod(s, x3, P), P), mulMod(w, p1.Y, P), P)
	zz3 := mulMod(v, p1.ZZ, P)
	zzz3 := mulMod(w, p1.ZZZ, P)

	return XYZZPoint{X: x3, Y: y3, ZZ: zz3, ZZZ: zzz3}
}

// madd adds the affine point (x2, y2) to p1, in XYZZ coordinates. It
// handles both operands at infinity and the doubling/negation coincidence
// cases, so it is correct for any combination of inputs.
func madd(p1 XYZZPoint, x2, y2 *big.Int) XYZZPoint {
	if x2.Sign() == 0 && y2.Sign() == 0 {
		return p1
	}
	if p1.IsInfinity() {
		return liftAffine(x2, y2)
	}

	r := subMod(mulMod(y2, p1.ZZZ, P), p1.Y, P)
	pp := subMod(mulMod(x2, p1.ZZ, P), p1.X, P)

	if pp.Sign() != 0 {
		ppSq := mulMod(pp, pp, P)
		pppCube := mulMod(pp, ppSq, P)
		q := mulMod(p1.X, ppSq, P)

		zz3 := mulMod(p1.ZZ, ppSq, P)
		zzz3 := mulMod(p1.ZZZ, pppCube, P)

		x3 := subMod(subMod(mulMod(r, r, P), pppCube, P), addMod(q, q, P), P)
		y3 := subMod(mulMod(r, subMod(q, x3, P), P), mulMod(p1.Y, pppCube, P), P)

		return XYZZPoint{X: x3, Y: y3, ZZ: zz3, ZZZ: zzz3}
	}

	if r.Sign() == 0 {
		return mdbl(x2, y2)
	}

	return xyzzInfinity()
}

// toAffine normalizes p into affine coordinates. Only ZZZ is inverted
// directly; ZZ's inverse is recovered from it (zInv = ZZ * zzzInv,
// zzInv = zInv^2), saving a second Fermat exponentiation.
func toAffine(p XYZZPoint) AffinePoint {
	if p.IsInfinity() {
		return AffinePoint{X: big.NewInt(0), Y: big.NewInt(0)}
	}

	zzzInv := pModInv(p.ZZZ)
	zInv := mulMod(p.ZZ, zzzInv, P)
	zzInv := mulMod(zInv, zInv, P)

	x := mulMod(p.X, zzInv, P)
	y := mulMod(p.Y, zzzInv, P)

	return AffinePoint{X: x, Y: y}
}
