// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmyk provides the naive device CMYK transform, with sRGB
// channels on the 0-100 (rgb100) scale and inks on the unit interval.
package cmyk

import "math"

// ToSRGB100 converts CMYK to sRGB on the 0-100 scale.
func ToSRGB100(c, m, y, k float64) (r, g, b float64) {
	ch := func(v float64) float64 {
		return (1 - math.Min(1, v*(1-k)+k)) * 100
	}
	return ch(c), ch(m), ch(y)
}

// FromSRGB100 converts sRGB on the 0-100 scale to CMYK.
// Pure black has zero cyan, magenta and yellow.
func FromSRGB100(r, g, b float64) (c, m, y, k float64) {
	k = 1 - math.Max(math.Max(r, g), b)/100
	if k == 1 {
		return 0, 0, 0, 1
	}
	c = (1 - r/100 - k) / (1 - k)
	m = (1 - g/100 - k) / (1 - k)
	y = (1 - b/100 - k) / (1 - k)
	return
}
