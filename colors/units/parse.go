// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"math"
	"strings"
)

// The parse functions convert a raw channel [Value] to its canonical
// range and clamp it there. Numbers are taken to be in the canonical
// unit of the channel, except for RGB where they are 8 bit values.

// RGB parses an rgb channel to [0, 100]. Numbers and plain text are
// 0 to 255 values; percentages are used as they are.
func RGB(v Value) float64 {
	if v.IsText() && IsPercentage(v.text) {
		return ClampRGB(v.Float())
	}
	return ClampRGB(ByteToRange(v.Float()))
}

// Percentage parses a unit interval channel such as saturation
// or a CMYK ink to [0, 1]. Percentages are divided by 100.
func Percentage(v Value) float64 {
	if v.IsText() && IsPercentage(v.text) {
		return ClampUnit(v.Float() / 100)
	}
	return ClampUnit(v.Float())
}

// Alpha parses an alpha channel to [0, 1].
func Alpha(v Value) float64 { return Percentage(v) }

// A98 parses an A98 RGB channel to [0, 1].
func A98(v Value) float64 { return Percentage(v) }

// Hue parses a hue to degrees in [0, 360), converting any
// grad, rad or turn unit. Hues outside of one turn wrap around.
// A radian hue written with at least three decimals that is a
// whole number of turns at that precision, such as 6.283rad,
// is exactly that number of turns.
func Hue(v Value) float64 {
	f := v.Float()
	if v.IsText() {
		switch {
		case IsGrad(v.text):
			f = GradToDeg(f)
		case IsRad(v.text):
			f = radHueToDeg(f, Decimals(v.text))
		case IsTurn(v.text):
			f = TurnToDeg(f)
		}
	}
	return WrapHue(f)
}

// minSnapDecimals is the fewest decimals a radian hue needs
// to snap to a whole number of turns.
const minSnapDecimals = 3

// radHueToDeg converts a radian hue written with the given number of
// decimals to degrees. If it is a whole number of turns rounded to
// those decimals, it is exactly that many turns.
func radHueToDeg(rad float64, decimals int) float64 {
	if decimals >= minSnapDecimals {
		k := math.Round(rad / (2 * math.Pi))
		if k != 0 && math.Abs(Round(k*2*math.Pi, decimals)-rad) < 1e-9 {
			return k * 360
		}
	}
	return RadToDeg(rad)
}

// Decimals returns the number of digits after the decimal point of
// the leading number of the given text, or 0 if it has none.
func Decimals(s string) int {
	s = strings.TrimSpace(s)
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 0
	}
	n := 0
	for _, c := range s[i+1:] {
		if c < '0' || c > '9' {
			break
		}
		n++
	}
	return n
}

// LabL parses a LAB or LCH lightness to [0, 100].
// A percentage is the same as the number.
func LabL(v Value) float64 { return ClampPercent(v.Float()) }

// LabAB parses a LAB a or b channel to [-125, 125],
// where 100% is 125.
func LabAB(v Value) float64 {
	if v.IsText() && IsPercentage(v.text) {
		return ClampLabAB(v.Float() * LabABMax / 100)
	}
	return ClampLabAB(v.Float())
}

// LchChroma parses an LCH chroma to [0, 150], where 100% is 150.
func LchChroma(v Value) float64 {
	if v.IsText() && IsPercentage(v.text) {
		return ClampLchChroma(v.Float() * LchChromaMax / 100)
	}
	return ClampLchChroma(v.Float())
}

// OklabL parses an OKLAB or OKLCH lightness to [0, 1],
// where 100% is 1.
func OklabL(v Value) float64 {
	if v.IsText() && IsPercentage(v.text) {
		return ClampUnit(v.Float() / 100)
	}
	return ClampUnit(v.Float())
}

// OklabAB parses an OKLAB a or b channel to [-0.4, 0.4],
// where 100% is 0.4.
func OklabAB(v Value) float64 {
	if v.IsText() && IsPercentage(v.text) {
		return ClampOklabAB(v.Float() * OklabABMax / 100)
	}
	return ClampOklabAB(v.Float())
}

// OklchChroma parses an OKLCH chroma to [0, 0.4], where 100% is 0.4.
func OklchChroma(v Value) float64 {
	if v.IsText() && IsPercentage(v.text) {
		return ClampOklchChroma(v.Float() * OklchChromaMax / 100)
	}
	return ClampOklchChroma(v.Float())
}

// ByteToRange converts an 8 bit channel to the rgb100 scale.
func ByteToRange(v float64) float64 { return v * 100 / 255 }

// RangeToByte converts an rgb100 channel to the 8 bit scale.
func RangeToByte(v float64) float64 { return v * 255 / 100 }
