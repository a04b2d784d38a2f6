// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package translator

import (
	"cogentcore.org/colortranslator/colors/cam/cie"
	"cogentcore.org/colortranslator/colors/cam/cmyk"
	"cogentcore.org/colortranslator/colors/cam/hsl"
	"cogentcore.org/colortranslator/colors/cam/oklab"
	"cogentcore.org/colortranslator/colors/units"
)

// rgb100 is the pivot representation that every conversion goes
// through: sRGB with channels on [0, 100] and alpha on [0, 1].
type rgb100 struct {
	r, g, b, alpha float64
}

func (c rgb100) rgb() RGB {
	return RGB{units.RangeToByte(c.r), units.RangeToByte(c.g), units.RangeToByte(c.b), c.alpha}
}

func (c rgb100) hex() HEX {
	return HEX{
		units.ToHex(units.RangeToByte(c.r)),
		units.ToHex(units.RangeToByte(c.g)),
		units.ToHex(units.RangeToByte(c.b)),
		units.ToHex(c.alpha * 255),
	}
}

func (c rgb100) hsl() HSL {
	h, s, l := hsl.SRGB100ToHSL(c.r, c.g, c.b)
	return HSL{h, s, l, c.alpha}
}

func (c rgb100) hwb() HWB {
	h, w, b := hsl.SRGB100ToHWB(c.r, c.g, c.b)
	return HWB{h, w, b, c.alpha}
}

func (c rgb100) lab() LAB {
	l, a, b := cie.SRGB100ToLAB(c.r, c.g, c.b)
	return LAB{l, a, b, c.alpha}
}

func (c rgb100) lch() LCH {
	l, ch, h := cie.LABToLCH(cie.SRGB100ToLAB(c.r, c.g, c.b))
	return LCH{l, ch, h, c.alpha}
}

func (c rgb100) oklab() OKLAB {
	l, a, b := oklab.SRGB100ToOKLAB(c.r, c.g, c.b)
	return OKLAB{l, a, b, c.alpha}
}

func (c rgb100) oklch() OKLCH {
	l, ch, h := oklab.SRGB100ToOKLCH(c.r, c.g, c.b)
	return OKLCH{l, ch, h, c.alpha}
}

func (c rgb100) cmyk() CMYK {
	cy, m, y, k := cmyk.FromSRGB100(c.r, c.g, c.b)
	return CMYK{cy, m, y, k, c.alpha}
}

func (c rgb100) a98() A98 {
	r, g, b := cie.SRGB100ToA98(c.r, c.g, c.b)
	return A98{r, g, b, c.alpha}
}

func (c HSL) rgb100() rgb100 {
	r, g, b := hsl.HSLToSRGB100(c.H, c.S, c.L)
	return rgb100{r, g, b, c.Alpha}
}

func (c HWB) rgb100() rgb100 {
	r, g, b := hsl.HWBToSRGB100(c.H, c.W, c.B)
	return rgb100{r, g, b, c.Alpha}
}

func (c LAB) rgb100() rgb100 {
	r, g, b := cie.LABToSRGB100(c.L, c.A, c.B)
	return rgb100{r, g, b, c.Alpha}
}

func (c LCH) rgb100() rgb100 {
	r, g, b := cie.LABToSRGB100(cie.LCHToLAB(c.L, c.C, c.H))
	return rgb100{r, g, b, c.Alpha}
}

func (c OKLAB) rgb100() rgb100 {
	r, g, b := oklab.OKLABToSRGB100(c.L, c.A, c.B)
	return rgb100{r, g, b, c.Alpha}
}

func (c OKLCH) rgb100() rgb100 {
	r, g, b := oklab.OKLCHToSRGB100(c.L, c.C, c.H)
	return rgb100{r, g, b, c.Alpha}
}

func (c CMYK) rgb100() rgb100 {
	r, g, b := cmyk.ToSRGB100(c.C, c.M, c.Y, c.K)
	return rgb100{r, g, b, c.Alpha}
}

func (c A98) rgb100() rgb100 {
	r, g, b := cie.A98ToSRGB100(c.R, c.G, c.B)
	return rgb100{r, g, b, c.Alpha}
}
