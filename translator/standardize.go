// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package translator

import (
	"fmt"

	"cogentcore.org/colortranslator/colors/units"
)

// opaque is the alpha of colors that do not give one.
var opaque = Text("1")

// set returns parse(v) if v is set, and cur otherwise.
func set(cur float64, v Value, parse func(Value) float64) float64 {
	if v.IsSet() {
		return parse(v)
	}
	return cur
}

// The merge methods standardize the set channels of a patch
// and replace the matching channels of the color with them.

func (c rgb100) merge(p RawRGB) rgb100 {
	return rgb100{
		set(c.r, p.R, units.RGB),
		set(c.g, p.G, units.RGB),
		set(c.b, p.B, units.RGB),
		set(c.alpha, p.Alpha, units.Alpha),
	}
}

func (c HSL) merge(p RawHSL) HSL {
	return HSL{
		set(c.H, p.H, units.Hue),
		set(c.S, p.S, units.Percentage),
		set(c.L, p.L, units.Percentage),
		set(c.Alpha, p.Alpha, units.Alpha),
	}
}

func (c HWB) merge(p RawHWB) HWB {
	return HWB{
		set(c.H, p.H, units.Hue),
		set(c.W, p.W, units.Percentage),
		set(c.B, p.B, units.Percentage),
		set(c.Alpha, p.Alpha, units.Alpha),
	}
}

func (c LAB) merge(p RawLAB) LAB {
	return LAB{
		set(c.L, p.L, units.LabL),
		set(c.A, p.A, units.LabAB),
		set(c.B, p.B, units.LabAB),
		set(c.Alpha, p.Alpha, units.Alpha),
	}
}

func (c LCH) merge(p RawLCH) LCH {
	return LCH{
		set(c.L, p.L, units.LabL),
		set(c.C, p.C, units.LchChroma),
		set(c.H, p.H, units.Hue),
		set(c.Alpha, p.Alpha, units.Alpha),
	}
}

func (c OKLAB) merge(p RawOKLAB) OKLAB {
	return OKLAB{
		set(c.L, p.L, units.OklabL),
		set(c.A, p.A, units.OklabAB),
		set(c.B, p.B, units.OklabAB),
		set(c.Alpha, p.Alpha, units.Alpha),
	}
}

func (c OKLCH) merge(p RawOKLCH) OKLCH {
	return OKLCH{
		set(c.L, p.L, units.OklabL),
		set(c.C, p.C, units.OklchChroma),
		set(c.H, p.H, units.Hue),
		set(c.Alpha, p.Alpha, units.Alpha),
	}
}

func (c CMYK) merge(p RawCMYK) CMYK {
	return CMYK{
		set(c.C, p.C, units.Percentage),
		set(c.M, p.M, units.Percentage),
		set(c.Y, p.Y, units.Percentage),
		set(c.K, p.K, units.Percentage),
		set(c.Alpha, p.Alpha, units.Alpha),
	}
}

func (c A98) merge(p RawA98) A98 {
	return A98{
		set(c.R, p.R, units.A98),
		set(c.G, p.G, units.A98),
		set(c.B, p.B, units.A98),
		set(c.Alpha, p.Alpha, units.Alpha),
	}
}

// allSet returns whether every value is set.
func allSet(vs ...Value) bool {
	for _, v := range vs {
		if !v.IsSet() {
			return false
		}
	}
	return true
}

// complete returns whether every channel of the raw color
// other than alpha is set.
func complete(raw RawColor) bool {
	switch c := raw.(type) {
	case RawRGB:
		return allSet(c.R, c.G, c.B)
	case RawHEX:
		return c.R != "" && c.G != "" && c.B != ""
	case RawHSL:
		return allSet(c.H, c.S, c.L)
	case RawHWB:
		return allSet(c.H, c.W, c.B)
	case RawLAB:
		return allSet(c.L, c.A, c.B)
	case RawLCH:
		return allSet(c.L, c.C, c.H)
	case RawOKLAB:
		return allSet(c.L, c.A, c.B)
	case RawOKLCH:
		return allSet(c.L, c.C, c.H)
	case RawCMYK:
		return allSet(c.C, c.M, c.Y, c.K)
	case RawA98:
		return allSet(c.R, c.G, c.B)
	}
	return false
}

// standardized is a raw color converted to its canonical units.
type standardized struct {

	// format is the format the color is cached as.
	format Format

	// color is the canonical record, or the pivot itself for RGB.
	color any

	// rgb is the pivot.
	rgb rgb100
}

// standardize converts a complete raw color to its canonical units.
// Hex colors are standardized as RGB colors.
func standardize(raw RawColor) (standardized, error) {
	if raw == nil || !complete(raw) {
		return standardized{}, fmt.Errorf("%w: incomplete %T", ErrInvalidInput, raw)
	}
	var s standardized
	switch c := raw.(type) {
	case RawHEX:
		if c.Alpha == "" {
			c.Alpha = "FF"
		}
		return standardize(c.rgb())
	case RawRGB:
		c.Alpha = c.Alpha.Or(opaque)
		s.rgb = rgb100{}.merge(c)
		s.color = s.rgb
	case RawHSL:
		c.Alpha = c.Alpha.Or(opaque)
		s.color, s.rgb = record(HSL{}.merge(c))
	case RawHWB:
		c.Alpha = c.Alpha.Or(opaque)
		s.color, s.rgb = record(HWB{}.merge(c))
	case RawLAB:
		c.Alpha = c.Alpha.Or(opaque)
		s.color, s.rgb = record(LAB{}.merge(c))
	case RawLCH:
		c.Alpha = c.Alpha.Or(opaque)
		s.color, s.rgb = record(LCH{}.merge(c))
	case RawOKLAB:
		c.Alpha = c.Alpha.Or(opaque)
		s.color, s.rgb = record(OKLAB{}.merge(c))
	case RawOKLCH:
		c.Alpha = c.Alpha.Or(opaque)
		s.color, s.rgb = record(OKLCH{}.merge(c))
	case RawCMYK:
		c.Alpha = c.Alpha.Or(opaque)
		s.color, s.rgb = record(CMYK{}.merge(c))
	case RawA98:
		c.Alpha = c.Alpha.Or(opaque)
		s.color, s.rgb = record(A98{}.merge(c))
	}
	s.format = raw.Format()
	return s, nil
}

// record returns a color record along with its pivot.
func record[T interface{ rgb100() rgb100 }](c T) (any, rgb100) {
	return c, c.rgb100()
}
