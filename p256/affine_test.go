// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package p256

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratorIsOnCurve(t *testing.T) {
	assert.True(t, onCurve(Gx, Gy))
}

func TestInfinityPredicate(t *testing.T) {
	assert.True(t, AffinePoint{X: big.NewInt(0), Y: big.NewInt(0)}.IsInfinity())
	assert.False(t, AffinePoint{X: Gx, Y: Gy}.IsInfinity())
}

func TestIsValidPubkey(t *testing.T) {
	tests := []struct {
		name string
		x, y *big.Int
		want bool
	}{
		{"generator", Gx, Gy, true},
		{"infinity", big.NewInt(0), big.NewInt(0), false},
		{"x equals P", P, Gy, false},
		{"y equals P", Gx, P, false},
		{"negative x", big.NewInt(-1), Gy, false},
		{"off curve", Gx, new(big.Int).Xor(Gy, big.NewInt(1)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPubkey(tt.x, tt.y))
		})
	}
}
