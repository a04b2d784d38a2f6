// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package units provides the numeric range mapping, clamping, and unit
// conversion functions used to normalize color channels to their
// canonical ranges.
package units

import (
	"math"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// Canonical channel limits.
const (
	// LabABMax is the magnitude limit of the LAB a and b channels.
	LabABMax = 125

	// LchChromaMax is the maximum LCH chroma.
	LchChromaMax = 150

	// OklabABMax is the magnitude limit of the OKLAB a and b channels.
	OklabABMax = 0.4

	// OklchChromaMax is the maximum OKLCH chroma.
	OklchChromaMax = 0.4
)

// Clamp returns v limited to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// ClampUnit clamps to [0, 1].
func ClampUnit(v float64) float64 { return Clamp(v, 0, 1) }

// ClampPercent clamps to [0, 100].
func ClampPercent(v float64) float64 { return Clamp(v, 0, 100) }

// ClampRGB clamps an rgb100 channel to [0, 100].
func ClampRGB(v float64) float64 { return Clamp(v, 0, 100) }

// ClampByte clamps an 8 bit channel to [0, 255].
func ClampByte(v float64) float64 { return Clamp(v, 0, 255) }

// ClampHue clamps a hue to [0, 360].
func ClampHue(v float64) float64 { return Clamp(v, 0, 360) }

// ClampLabAB clamps a LAB a or b channel to [-125, 125].
func ClampLabAB(v float64) float64 { return Clamp(v, -LabABMax, LabABMax) }

// ClampLchChroma clamps an LCH chroma to [0, 150].
func ClampLchChroma(v float64) float64 { return Clamp(v, 0, LchChromaMax) }

// ClampOklabAB clamps an OKLAB a or b channel to [-0.4, 0.4].
func ClampOklabAB(v float64) float64 { return Clamp(v, -OklabABMax, OklabABMax) }

// ClampOklchChroma clamps an OKLCH chroma to [0, 0.4].
func ClampOklchChroma(v float64) float64 { return Clamp(v, 0, OklchChromaMax) }

// WrapHue returns the hue in degrees wrapped into [0, 360).
func WrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// ParseFloat parses the leading number of the given text, ignoring
// anything that follows it, such as a unit or a percent sign.
// Text without a leading number parses as 0.
func ParseFloat(s string) float64 {
	f, n := strconv.ParseFloat([]byte(strings.TrimSpace(s)))
	if n == 0 {
		return 0
	}
	return f
}

// IsPercentage returns whether the text is a percentage.
func IsPercentage(s string) bool { return strings.Contains(s, "%") }

// IsGrad returns whether the text has a grad unit.
func IsGrad(s string) bool { return strings.Contains(s, "grad") }

// IsRad returns whether the text has a rad unit. Note that
// this is also true for grad, so [IsGrad] must be checked first
// when distinguishing them.
func IsRad(s string) bool { return strings.Contains(s, "rad") }

// IsTurn returns whether the text has a turn unit.
func IsTurn(s string) bool { return strings.Contains(s, "turn") }
