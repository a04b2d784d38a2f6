// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsl provides the HSL and HWB color space transforms,
// with sRGB channels on the 0-100 (rgb100) scale, hues in degrees,
// and the other channels on the unit interval.
package hsl

import (
	"math"

	"cogentcore.org/colortranslator/colors/units"
	"github.com/lucasb-eyer/go-colorful"
)

// fromSRGB100 returns the colorful color for the given rgb100 channels.
func fromSRGB100(r, g, b float64) colorful.Color {
	return colorful.Color{R: r / 100, G: g / 100, B: b / 100}
}

// toSRGB100 returns the rgb100 channels of the given colorful color.
func toSRGB100(c colorful.Color) (r, g, b float64) {
	return c.R * 100, c.G * 100, c.B * 100
}

// SRGB100ToHSL converts sRGB on the 0-100 scale to HSL.
func SRGB100ToHSL(r, g, b float64) (h, s, l float64) {
	return fromSRGB100(r, g, b).Hsl()
}

// HSLToSRGB100 converts HSL to sRGB on the 0-100 scale.
func HSLToSRGB100(h, s, l float64) (r, g, b float64) {
	return toSRGB100(colorful.Hsl(units.WrapHue(h), s, l))
}

// SRGB100ToHWB converts sRGB on the 0-100 scale to HWB.
// The whiteness is the smallest channel and the blackness
// is the complement of the largest one.
func SRGB100ToHWB(r, g, b float64) (h, w, bk float64) {
	h, _, _ = fromSRGB100(r, g, b).Hsv()
	w = math.Min(math.Min(r, g), b) / 100
	bk = 1 - math.Max(math.Max(r, g), b)/100
	return
}

// HWBToSRGB100 converts HWB to sRGB on the 0-100 scale.
// When the whiteness and blackness add up to 1 or more,
// the result is the gray with their ratio.
func HWBToSRGB100(h, w, bk float64) (r, g, b float64) {
	if w+bk >= 1 {
		gray := w / (w + bk) * 100
		return gray, gray, gray
	}
	v := 1 - bk
	s := 1 - w/v
	return toSRGB100(colorful.Hsv(units.WrapHue(h), s, v))
}
