// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1sig

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecimal(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad decimal literal: " + s)
	}
	return v
}

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

var (
	scenarioH  = mustHex("bb5a52f42f9c9261ed4361f59422a1e30036e7c32b270c8807a419feca605023")
	scenarioR  = mustDecimal("19738613187745101558623338726804762177711919211234071563652772152683725073944")
	scenarioS  = mustDecimal("34753961278895633991577816754222591531863837041401341770838584739693604822390")
	scenarioQx = mustDecimal("18614955573315897657680976650685450080931919913269223958732452353593824192568")
	scenarioQy = mustDecimal("90223116347859880166570198725387569567414254547569925327988539833150573990206")
)

func TestSignatureRoundTrip(t *testing.T) {
	der, err := EncodeSignature(scenarioR, scenarioS)
	require.NoError(t, err)

	r, s, err := ParseSignature(der)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Cmp(scenarioR))
	assert.Equal(t, 0, s.Cmp(scenarioS))
}

func TestParseSignatureRejectsGarbage(t *testing.T) {
	_, _, err := ParseSignature([]byte{0x30, 0x01, 0x02})
	assert.Error(t, err)
}

func TestVerifyDER(t *testing.T) {
	der, err := EncodeSignature(scenarioR, scenarioS)
	require.NoError(t, err)

	assert.True(t, VerifyDER(scenarioH, der, scenarioQx, scenarioQy))
}

func TestVerifyDERRejectsTamperedSignature(t *testing.T) {
	tampered := new(big.Int).Xor(scenarioS, big.NewInt(1))
	der, err := EncodeSignature(scenarioR, tampered)
	require.NoError(t, err)

	assert.False(t, VerifyDER(scenarioH, der, scenarioQx, scenarioQy))
}

func TestParsePublicKeyUncompressed(t *testing.T) {
	data := make([]byte, 65)
	data[0] = 0x04
	scenarioQx.FillBytes(data[1:33])
	scenarioQy.FillBytes(data[33:65])

	x, y, ok := ParsePublicKey(data)
	require.True(t, ok)
	assert.Equal(t, 0, x.Cmp(scenarioQx))
	assert.Equal(t, 0, y.Cmp(scenarioQy))
}

func TestParsePublicKeyCompressed(t *testing.T) {
	data := make([]byte, 33)
	if scenarioQy.Bit(0) == 1 {
		data[0] = 0x03
	} else {
		data[0] = 0x02
	}
	scenarioQx.FillBytes(data[1:])

	x, y, ok := ParsePublicKey(data)
	require.True(t, ok)
	assert.Equal(t, 0, x.Cmp(scenarioQx))
	assert.Equal(t, 0, y.Cmp(scenarioQy))
}

func TestParsePublicKeyInfinityRejected(t *testing.T) {
	_, _, ok := ParsePublicKey([]byte{0x00})
	assert.False(t, ok)
}

func TestParsePublicKeyWrongLengthRejected(t *testing.T) {
	_, _, ok := ParsePublicKey([]byte{0x04, 0x01, 0x02})
	assert.False(t, ok)
}

func TestParsePublicKeyRejectsOffCurveUncompressed(t *testing.T) {
	data := make([]byte, 65)
	data[0] = 0x04
	scenarioQx.FillBytes(data[1:33])
	badY := new(big.Int).Xor(scenarioQy, big.NewInt(1))
	badY.FillBytes(data[33:65])

	_, _, ok := ParsePublicKey(data)
	assert.False(t, ok)
}

func TestVerifyDERWithEncodedKey(t *testing.T) {
	der, err := EncodeSignature(scenarioR, scenarioS)
	require.NoError(t, err)

	pub := make([]byte, 65)
	pub[0] = 0x04
	scenarioQx.FillBytes(pub[1:33])
	scenarioQy.FillBytes(pub[33:65])

	assert.True(t, VerifyDERWithEncodedKey(scenarioH, der, pub))
}
