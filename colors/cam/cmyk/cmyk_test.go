// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmyk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCMYK(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b    float64
		c, m, y, k float64
	}{
		{"black", 0, 0, 0, 0, 0, 0, 1},
		{"white", 100, 100, 100, 0, 0, 0, 0},
		{"red", 100, 0, 0, 0, 1, 1, 0},
		{"maroon", 40, 0, 0, 0, 1, 1, 0.6},
		{"steel", 20, 40, 80, 0.75, 0.5, 0, 0.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, m, y, k := FromSRGB100(tt.r, tt.g, tt.b)
			assert.InDelta(t, tt.c, c, 1e-9)
			assert.InDelta(t, tt.m, m, 1e-9)
			assert.InDelta(t, tt.y, y, 1e-9)
			assert.InDelta(t, tt.k, k, 1e-9)

			r, g, b := ToSRGB100(tt.c, tt.m, tt.y, tt.k)
			assert.InDelta(t, tt.r, r, 1e-9)
			assert.InDelta(t, tt.g, g, 1e-9)
			assert.InDelta(t, tt.b, b, 1e-9)
		})
	}
}

func TestInkOverflow(t *testing.T) {
	r, g, b := ToSRGB100(1, 0.5, 0, 0.5)
	assert.Equal(t, 0.0, r)
	assert.InDelta(t, 25, g, 1e-9)
	assert.InDelta(t, 50, b, 1e-9)
}
