// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oklab provides the Oklab and Oklch perceptual color spaces
// (https://bottosson.github.io/posts/oklab/), with sRGB channels on
// the 0-100 (rgb100) scale.
package oklab

import "math"

// srgbToLinear removes the sRGB gamma from a channel on the 0-1 scale.
func srgbToLinear(c float64) float64 {
	if c >= 0.04045 {
		return math.Pow((c+0.055)/1.055, 2.4)
	}
	return c / 12.92
}

// linearToSRGB applies the sRGB gamma to a linear channel on the 0-1 scale.
func linearToSRGB(c float64) float64 {
	if c >= 0.0031308 {
		return 1.055*math.Pow(c, 1/2.4) - 0.055
	}
	return 12.92 * c
}

// LinearRGBToOKLAB converts linear sRGB on the 0-1 scale to Oklab.
func LinearRGBToOKLAB(r, g, b float64) (l, a, bo float64) {
	lc := math.Cbrt(0.4122214708*r + 0.5363325363*g + 0.0514459929*b)
	mc := math.Cbrt(0.2119034982*r + 0.6806995451*g + 0.1073969566*b)
	sc := math.Cbrt(0.0883024619*r + 0.2817188376*g + 0.6299787005*b)

	l = 0.2104542553*lc + 0.7936177850*mc - 0.0040720468*sc
	a = 1.9779984951*lc - 2.4285922050*mc + 0.4505937099*sc
	bo = 0.0259040371*lc + 0.7827717662*mc - 0.8086757660*sc
	return
}

// OKLABToLinearRGB converts Oklab to linear sRGB on the 0-1 scale.
func OKLABToLinearRGB(l, a, b float64) (r, g, bo float64) {
	lc := l + 0.3963377774*a + 0.2158037573*b
	mc := l - 0.1055613458*a - 0.0638541728*b
	sc := l - 0.0894841775*a - 1.2914855480*b

	lc = lc * lc * lc
	mc = mc * mc * mc
	sc = sc * sc * sc

	r = 4.0767416621*lc - 3.3077115913*mc + 0.2309699292*sc
	g = -1.2684380046*lc + 2.6097574011*mc - 0.3413193965*sc
	bo = -0.0041960863*lc - 0.7034186147*mc + 1.7076147010*sc
	return
}

// SRGB100ToOKLAB converts gamma-encoded sRGB on the 0-100 scale to Oklab.
func SRGB100ToOKLAB(r, g, b float64) (l, a, bo float64) {
	return LinearRGBToOKLAB(srgbToLinear(r/100), srgbToLinear(g/100), srgbToLinear(b/100))
}

// OKLABToSRGB100 converts Oklab to gamma-encoded sRGB on the 0-100 scale.
// The result is neither clamped nor rounded, so colors outside of
// the sRGB gamut have channels outside of [0, 100].
func OKLABToSRGB100(l, a, b float64) (r, g, bo float64) {
	lr, lg, lb := OKLABToLinearRGB(l, a, b)
	return linearToSRGB(lr) * 100, linearToSRGB(lg) * 100, linearToSRGB(lb) * 100
}

// OKLABToOKLCH converts Oklab to its polar Oklch form,
// with the hue in degrees in [0, 360).
func OKLABToOKLCH(l, a, b float64) (lo, c, h float64) {
	c = math.Sqrt(a*a + b*b)
	h = math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return l, c, h
}

// OKLCHToOKLAB converts Oklch with the hue in degrees to Oklab.
func OKLCHToOKLAB(l, c, h float64) (lo, a, b float64) {
	rad := h * math.Pi / 180
	return l, c * math.Cos(rad), c * math.Sin(rad)
}

// SRGB100ToOKLCH converts gamma-encoded sRGB on the 0-100 scale to Oklch.
func SRGB100ToOKLCH(r, g, b float64) (l, c, h float64) {
	return OKLABToOKLCH(SRGB100ToOKLAB(r, g, b))
}

// OKLCHToSRGB100 converts Oklch to gamma-encoded sRGB on the 0-100 scale.
func OKLCHToSRGB100(l, c, h float64) (r, g, b float64) {
	return OKLABToSRGB100(OKLCHToOKLAB(l, c, h))
}
