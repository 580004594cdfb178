// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asn1sig adapts the fixed-width (r, s, Qx, Qy) calling convention
// of package p256 to the wire formats real callers actually hand ECDSA
// signatures and public keys around in: a DER SEQUENCE{r, s} signature (as
// used by TLS and X.509) and SEC1 uncompressed/compressed point encodings.
// It performs no cryptographic computation of its own; it is wire-format
// sugar around p256.Verify and p256.IsValidPubkey.
package asn1sig

import (
	"errors"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"

	"github.com/herczegzsolt/p256verify/p256"
)

// ParseSignature decodes a DER-encoded ECDSA-Sig-Value
// (SEQUENCE { r INTEGER, s INTEGER }) into its two component scalars.
func ParseSignature(der []byte) (r, s *big.Int, err error) {
	var inner cryptobyte.String
	input := cryptobyte.String(der)
	r, s = new(big.Int), new(big.Int)
	if !input.ReadASN1(&inner, asn1.SEQUENCE) ||
		!input.Empty() ||
		!inner.ReadASN1Integer(r) ||
		!inner.ReadASN1Integer(s) ||
		!inner.Empty() {
		return nil, nil, errors.New("asn1sig: invalid ASN.1 signature encoding")
	}
	return r, s, nil
}

// EncodeSignature DER-encodes (r, s) as an ECDSA-Sig-Value. It returns an
// error if r or s is zero and encodes a negative value as its absolute
// value; it performs no other validation. It is the inverse of
// ParseSignature for positive r and s, not a signing operation.
func EncodeSignature(r, s *big.Int) ([]byte, error) {
	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		addASN1IntBytes(b, r.Bytes())
		addASN1IntBytes(b, s.Bytes())
	})
	return b.Bytes()
}

// addASN1IntBytes encodes in ASN.1 a positive integer represented as a
// big-endian byte slice with zero or more leading zeroes.
func addASN1IntBytes(b *cryptobyte.Builder, bytes []byte) {
	for len(bytes) > 0 && bytes[0] == 0 {
		bytes = bytes[1:]
	}
	if len(bytes) == 0 {
		b.SetError(errors.New("asn1sig: invalid integer"))
		return
	}
	b.AddASN1(asn1.INTEGER, func(c *cryptobyte.Builder) {
		if bytes[0]&0x80 != 0 {
			c.AddUint8(0)
		}
		c.AddBytes(bytes)
	})
}

// ParsePublicKey decodes a SEC1 point encoding: uncompressed
// (0x04 || X || Y) or compressed (0x02/0x03 || X). The single zero byte
// convention for the point at infinity is recognised and returned as
// (0, 0) with ok = false, since infinity is not a valid public key. It
// returns ok = false for any malformed or off-curve encoding; it never
// panics.
func ParsePublicKey(data []byte) (x, y *big.Int, ok bool) {
	const coordLen = 32

	if len(data) == 1 && data[0] == 0x00 {
		return big.NewInt(0), big.NewInt(0), false
	}

	switch {
	case len(data) == 1+2*coordLen && data[0] == 0x04:
		x = new(big.Int).SetBytes(data[1 : 1+coordLen])
		y = new(big.Int).SetBytes(data[1+coordLen:])
		if !p256.IsValidPubkey(x, y) {
			return nil, nil, false
		}
		return x, y, true

	case len(data) == 1+coordLen && (data[0] == 0x02 || data[0] == 0x03):
		x = new(big.Int).SetBytes(data[1:])
		if x.Cmp(p256.P) >= 0 {
			return nil, nil, false
		}
		y2 := p256.Polynomial(x)
		y = new(big.Int).ModSqrt(y2, p256.P)
		if y == nil {
			return nil, nil, false
		}
		if byte(y.Bit(0)) != data[0]&1 {
			y.Sub(p256.P, y)
		}
		if !p256.IsValidPubkey(x, y) {
			return nil, nil, false
		}
		return x, y, true

	default:
		return nil, nil, false
	}
}

// VerifyDER verifies a DER-encoded signature against an explicit
// (Qx, Qy) public key.
func VerifyDER(hash, sigDER []byte, qx, qy *big.Int) bool {
	r, s, err := ParseSignature(sigDER)
	if err != nil {
		return false
	}
	return p256.Verify(new(big.Int).SetBytes(hash), r, s, qx, qy)
}

// VerifyDERWithEncodedKey verifies a DER-encoded signature against a
// SEC1-encoded public key, combining ParsePublicKey and VerifyDER.
func VerifyDERWithEncodedKey(hash, sigDER, pubkey []byte) bool {
	qx, qy, ok := ParsePublicKey(pubkey)
	if !ok {
		return false
	}
	return VerifyDER(hash, sigDER, qx, qy)
}
