// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

// D50 is the D50 reference white on the 0-100 XYZ scale.
var D50 = [3]float64{96.42, 100, 82.49}

const (
	// epsilon is the CIE standard 216/24389.
	epsilon = 216.0 / 24389.0

	// kappa is the CIE standard 24389/27.
	kappa = 24389.0 / 27.0
)

// LABCompress is the LAB compression function applied to
// XYZ values relative to the white point.
func LABCompress(t float64) float64 {
	if t > epsilon {
		return math.Cbrt(t)
	}
	return (kappa*t + 16) / 116
}

// LABUncompress is the inverse of [LABCompress].
func LABUncompress(ft float64) float64 {
	if t := ft * ft * ft; t > epsilon {
		return t
	}
	return (116*ft - 16) / kappa
}

// XYZToLAB converts D50 XYZ on the 0-100 scale to LAB.
func XYZToLAB(x, y, z float64) (l, a, b float64) {
	fx := LABCompress(x / D50[0])
	fy := LABCompress(y / D50[1])
	fz := LABCompress(z / D50[2])
	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return
}

// LABToXYZ converts LAB to D50 XYZ on the 0-100 scale.
func LABToXYZ(l, a, b float64) (x, y, z float64) {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200
	x = LABUncompress(fx) * D50[0]
	y = LToY(l)
	z = LABUncompress(fz) * D50[2]
	return
}

// LToY converts an L lightness value to a Y luminance
// on the 0-100 scale.
func LToY(l float64) float64 {
	if l > kappa*epsilon {
		fy := (l + 16) / 116
		return fy * fy * fy * D50[1]
	}
	return l / kappa * D50[1]
}

// YToL converts a Y luminance on the 0-100 scale to
// an L lightness value.
func YToL(y float64) float64 {
	return 116*LABCompress(y/D50[1]) - 16
}

// LABToLCH converts LAB to its polar LCH form,
// with the hue in degrees in [0, 360).
func LABToLCH(l, a, b float64) (lo, c, h float64) {
	c = math.Hypot(a, b)
	h = math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return l, c, h
}

// LCHToLAB converts LCH with the hue in degrees to LAB.
func LCHToLAB(l, c, h float64) (lo, a, b float64) {
	rad := h * math.Pi / 180
	return l, c * math.Cos(rad), c * math.Sin(rad)
}

// SRGB100ToLAB converts gamma-encoded sRGB on the 0-100 scale to LAB.
func SRGB100ToLAB(r, g, b float64) (l, la, lb float64) {
	return XYZToLAB(D65ToD50(SRGB100ToXYZ(r, g, b)))
}

// LABToSRGB100 converts LAB to gamma-encoded sRGB on the 0-100 scale.
// The result is not clamped.
func LABToSRGB100(l, a, b float64) (r, g, bo float64) {
	return XYZToSRGB100(D50ToD65(LABToXYZ(l, a, b)))
}

// DeltaE returns the perceptual difference between two LAB colors,
// using the CIE94 chroma and hue weightings relative to the first color.
func DeltaE(l1, a1, b1, l2, a2, b2 float64) float64 {
	dl := l1 - l2
	da := a1 - a2
	db := b1 - b2
	c1 := math.Hypot(a1, b1)
	c2 := math.Hypot(a2, b2)
	dc := c1 - c2
	dh := math.Sqrt(math.Max(0, da*da+db*db-dc*dc))
	sc := 1 + 0.045*c1
	sh := 1 + 0.015*c1
	return math.Sqrt(dl*dl + (dc/sc)*(dc/sc) + (dh/sh)*(dh/sh))
}
