// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

// Matrix3 is a 3x3 matrix applied to column vectors.
type Matrix3 [3][3]float64

// Mul returns the product of the matrix with the vector (x, y, z).
func (m *Matrix3) Mul(x, y, z float64) (float64, float64, float64) {
	return m[0][0]*x + m[0][1]*y + m[0][2]*z,
		m[1][0]*x + m[1][1]*y + m[1][2]*z,
		m[2][0]*x + m[2][1]*y + m[2][2]*z
}

var (
	// srgbToXYZ converts linear sRGB to D65 XYZ.
	srgbToXYZ = Matrix3{
		{0.4124564, 0.3575761, 0.1804375},
		{0.2126729, 0.7151522, 0.0721750},
		{0.0193339, 0.1191920, 0.9503041},
	}

	// xyzToSRGB converts D65 XYZ to linear sRGB.
	xyzToSRGB = Matrix3{
		{3.2404542, -1.5371385, -0.4985314},
		{-0.9692660, 1.8760108, 0.0415560},
		{0.0556434, -0.2040259, 1.0572252},
	}

	// d65ToD50 is the Bradford chromatic adaptation from D65 to D50.
	d65ToD50 = Matrix3{
		{1.0478112, 0.0228866, -0.0501270},
		{0.0295424, 0.9904844, -0.0170491},
		{-0.0092345, 0.0150436, 0.7521316},
	}

	// d50ToD65 is the Bradford chromatic adaptation from D50 to D65.
	d50ToD65 = Matrix3{
		{0.9555766, -0.0230393, 0.0631636},
		{-0.0282895, 1.0099416, 0.0210077},
		{0.0122982, -0.0204830, 1.3299098},
	}
)

// SRGBLin100ToXYZ converts linear sRGB on the 0-100 scale
// to D65 XYZ on the 0-100 scale.
func SRGBLin100ToXYZ(rl, gl, bl float64) (x, y, z float64) {
	return srgbToXYZ.Mul(rl, gl, bl)
}

// XYZToSRGBLin100 converts D65 XYZ on the 0-100 scale to
// linear sRGB on the 0-100 scale.
func XYZToSRGBLin100(x, y, z float64) (rl, gl, bl float64) {
	return xyzToSRGB.Mul(x, y, z)
}

// SRGB100ToXYZ converts gamma-encoded sRGB on the 0-100 scale
// to D65 XYZ on the 0-100 scale.
func SRGB100ToXYZ(r, g, b float64) (x, y, z float64) {
	return SRGBLin100ToXYZ(SRGB100ToLinearComp(r, g, b))
}

// XYZToSRGB100 converts D65 XYZ on the 0-100 scale to
// gamma-encoded sRGB on the 0-100 scale. The result is not clamped.
func XYZToSRGB100(x, y, z float64) (r, g, b float64) {
	return SRGB100FromLinearComp(XYZToSRGBLin100(x, y, z))
}

// D65ToD50 adapts XYZ from the D65 to the D50 white point.
func D65ToD50(x, y, z float64) (float64, float64, float64) {
	return d65ToD50.Mul(x, y, z)
}

// D50ToD65 adapts XYZ from the D50 to the D65 white point.
func D50ToD65(x, y, z float64) (float64, float64, float64) {
	return d50ToD65.Mul(x, y, z)
}
