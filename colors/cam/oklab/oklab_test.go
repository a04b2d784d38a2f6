// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oklab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSRGB100ToOKLCH(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b    float64
		l, c, h    float64
		achromatic bool
	}{
		{name: "black", achromatic: true},
		{name: "white", r: 100, g: 100, b: 100, l: 1, achromatic: true},
		{name: "red", r: 100, l: 0.627955, c: 0.257683, h: 29.233885},
		{name: "blue", b: 100, l: 0.452014, c: 0.313214, h: 264.052021},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, c, h := SRGB100ToOKLCH(tt.r, tt.g, tt.b)
			assert.InDelta(t, tt.l, l, 1e-5)
			assert.InDelta(t, tt.c, c, 1e-5)
			if !tt.achromatic {
				assert.InDelta(t, tt.h, h, 1e-4)
			}
		})
	}
}

func TestOKLABRoundTrip(t *testing.T) {
	l, a, b := SRGB100ToOKLAB(100, 0, 0)
	assert.InDelta(t, 0.627955, l, 1e-5)
	assert.InDelta(t, 0.224863, a, 1e-5)
	assert.InDelta(t, 0.125846, b, 1e-5)

	r, g, bb := OKLABToSRGB100(l, a, b)
	assert.InDelta(t, 100, r, 1e-3)
	assert.InDelta(t, 0, g, 1e-3)
	assert.InDelta(t, 0, bb, 1e-3)

	for _, c := range [][3]float64{{20, 40, 60}, {90, 10, 50}, {0, 100, 0}} {
		l, a, b := SRGB100ToOKLAB(c[0], c[1], c[2])
		r, g, bb := OKLABToSRGB100(l, a, b)
		assert.InDelta(t, c[0], r, 1e-3)
		assert.InDelta(t, c[1], g, 1e-3)
		assert.InDelta(t, c[2], bb, 1e-3)
	}
}

func TestOutOfGamut(t *testing.T) {
	r, g, b := OKLABToSRGB100(0.65, 0.26, 0.15)
	assert.InDelta(t, 109.587582, r, 1e-4)
	assert.InDelta(t, -53.237571, g, 1e-4)
	assert.InDelta(t, -32.822265, b, 1e-4)
}

func TestOKLCH(t *testing.T) {
	l, a, b := OKLCHToOKLAB(0.5, 0.2, 90)
	assert.Equal(t, 0.5, l)
	assert.InDelta(t, 0, a, 1e-12)
	assert.InDelta(t, 0.2, b, 1e-12)

	_, c, h := OKLABToOKLCH(0.5, 0, -0.1)
	assert.InDelta(t, 0.1, c, 1e-12)
	assert.InDelta(t, 270, h, 1e-9)

	r, g, bb := OKLCHToSRGB100(SRGB100ToOKLCH(30, 60, 90))
	assert.InDelta(t, 30, r, 1e-3)
	assert.InDelta(t, 60, g, 1e-3)
	assert.InDelta(t, 90, bb, 1e-3)
}
