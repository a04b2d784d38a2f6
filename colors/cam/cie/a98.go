// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

// A98Gamma is the transfer function exponent of Adobe RGB (1998).
const A98Gamma = 563.0 / 256.0

var (
	// a98ToXYZ converts linear A98 RGB to D65 XYZ.
	a98ToXYZ = Matrix3{
		{0.57667, 0.18555, 0.18819},
		{0.29738, 0.62735, 0.07527},
		{0.02703, 0.07069, 0.99110},
	}

	// xyzToA98 converts D65 XYZ to linear A98 RGB.
	xyzToA98 = Matrix3{
		{2.04137, -0.56495, -0.34469},
		{-0.96927, 1.87601, 0.04156},
		{0.01345, -0.11839, 1.01541},
	}
)

// signPow raises the magnitude of v to the power p, keeping its sign.
func signPow(v, p float64) float64 {
	if v < 0 {
		return -math.Pow(-v, p)
	}
	return math.Pow(v, p)
}

// A98ToSRGB100 converts A98 RGB channels on the 0-1 scale to
// gamma-encoded sRGB on the 0-100 scale. The result is not clamped.
func A98ToSRGB100(r, g, b float64) (sr, sg, sb float64) {
	rl := signPow(r, A98Gamma) * 100
	gl := signPow(g, A98Gamma) * 100
	bl := signPow(b, A98Gamma) * 100
	return XYZToSRGB100(a98ToXYZ.Mul(rl, gl, bl))
}

// SRGB100ToA98 converts gamma-encoded sRGB on the 0-100 scale to
// A98 RGB channels on the 0-1 scale.
func SRGB100ToA98(r, g, b float64) (ar, ag, ab float64) {
	x, y, z := SRGB100ToXYZ(r, g, b)
	rl, gl, bl := xyzToA98.Mul(x/100, y/100, z/100)
	return signPow(rl, 1/A98Gamma), signPow(gl, 1/A98Gamma), signPow(bl, 1/A98Gamma)
}
