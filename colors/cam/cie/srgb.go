// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides the CIE XYZ, LAB and LCH color space
// transforms, with sRGB channels on the 0-100 (rgb100) scale.
package cie

import "math"

// SRGB100ToLinear converts an sRGB gamma-encoded channel on the
// 0-100 scale to a linear channel on the same scale.
func SRGB100ToLinear(v float64) float64 {
	if v > 4.045 {
		return math.Pow((v+5.5)/105.5, 2.4) * 100
	}
	return v / 12.92
}

// SRGB100FromLinear converts a linear channel on the 0-100 scale
// to an sRGB gamma-encoded channel on the same scale.
func SRGB100FromLinear(v float64) float64 {
	if v > 0.31308 {
		return 1.055*math.Pow(v/100, 1/2.4)*100 - 5.5
	}
	return 12.92 * v
}

// SRGB100ToLinearComp converts all three channels with [SRGB100ToLinear].
func SRGB100ToLinearComp(r, g, b float64) (rl, gl, bl float64) {
	return SRGB100ToLinear(r), SRGB100ToLinear(g), SRGB100ToLinear(b)
}

// SRGB100FromLinearComp converts all three channels with [SRGB100FromLinear].
func SRGB100FromLinearComp(rl, gl, bl float64) (r, g, b float64) {
	return SRGB100FromLinear(rl), SRGB100FromLinear(gl), SRGB100FromLinear(bl)
}
