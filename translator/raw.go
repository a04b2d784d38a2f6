// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package translator

import "cogentcore.org/colortranslator/colors/units"

// RawColor is a color whose channels have not been converted to their
// canonical units yet, as parsed from text or given by the user.
// Its concrete type is one of [RawRGB], [RawHEX], [RawHSL], [RawHWB],
// [RawLAB], [RawLCH], [RawOKLAB], [RawOKLCH], [RawCMYK] and [RawA98].
//
// The raw types are also the patches taken by the update methods of
// [Translator], where unset channels are left as they are.
// An unset alpha channel means opaque.
type RawColor interface {
	// Format returns the format of the color.
	Format() Format

	// empty returns whether no channel is set.
	empty() bool
}

// RawRGB is a raw RGB color. Numbers are 0 to 255.
type RawRGB struct {
	R, G, B, Alpha Value
}

// RawHEX is a raw hex color, with one or two hex digits per channel.
// Empty channels are unset.
type RawHEX struct {
	R, G, B, Alpha string
}

// RawHSL is a raw HSL color. The hue is in degrees unless it has
// a unit, and numbers for the other channels are 0 to 1.
type RawHSL struct {
	H, S, L, Alpha Value
}

// RawHWB is a raw HWB color, with the same units as [RawHSL].
type RawHWB struct {
	H, W, B, Alpha Value
}

// RawLAB is a raw CIE LAB color.
type RawLAB struct {
	L, A, B, Alpha Value
}

// RawLCH is a raw CIE LCH color.
type RawLCH struct {
	L, C, H, Alpha Value
}

// RawOKLAB is a raw OKLAB color.
type RawOKLAB struct {
	L, A, B, Alpha Value
}

// RawOKLCH is a raw OKLCH color.
type RawOKLCH struct {
	L, C, H, Alpha Value
}

// RawCMYK is a raw device CMYK color. Numbers are 0 to 1.
type RawCMYK struct {
	C, M, Y, K, Alpha Value
}

// RawA98 is a raw A98 RGB color. Numbers are 0 to 1.
type RawA98 struct {
	R, G, B, Alpha Value
}

func (RawRGB) Format() Format   { return FormatRGB }
func (RawHEX) Format() Format   { return FormatHEX }
func (RawHSL) Format() Format   { return FormatHSL }
func (RawHWB) Format() Format   { return FormatHWB }
func (RawLAB) Format() Format   { return FormatLAB }
func (RawLCH) Format() Format   { return FormatLCH }
func (RawOKLAB) Format() Format { return FormatOKLAB }
func (RawOKLCH) Format() Format { return FormatOKLCH }
func (RawCMYK) Format() Format  { return FormatCMYK }
func (RawA98) Format() Format   { return FormatA98 }

func noneSet(vs ...Value) bool {
	for _, v := range vs {
		if v.IsSet() {
			return false
		}
	}
	return true
}

func (c RawRGB) empty() bool   { return noneSet(c.R, c.G, c.B, c.Alpha) }
func (c RawHEX) empty() bool   { return c == RawHEX{} }
func (c RawHSL) empty() bool   { return noneSet(c.H, c.S, c.L, c.Alpha) }
func (c RawHWB) empty() bool   { return noneSet(c.H, c.W, c.B, c.Alpha) }
func (c RawLAB) empty() bool   { return noneSet(c.L, c.A, c.B, c.Alpha) }
func (c RawLCH) empty() bool   { return noneSet(c.L, c.C, c.H, c.Alpha) }
func (c RawOKLAB) empty() bool { return noneSet(c.L, c.A, c.B, c.Alpha) }
func (c RawOKLCH) empty() bool { return noneSet(c.L, c.C, c.H, c.Alpha) }
func (c RawCMYK) empty() bool  { return noneSet(c.C, c.M, c.Y, c.K, c.Alpha) }
func (c RawA98) empty() bool   { return noneSet(c.R, c.G, c.B, c.Alpha) }

// rgb returns the hex color as a raw RGB color.
func (c RawHEX) rgb() RawRGB {
	var r RawRGB
	if c.R != "" {
		r.R = Num(units.FromHex(c.R))
	}
	if c.G != "" {
		r.G = Num(units.FromHex(c.G))
	}
	if c.B != "" {
		r.B = Num(units.FromHex(c.B))
	}
	if c.Alpha != "" {
		r.Alpha = Num(units.FromHex(c.Alpha) / 255)
	}
	return r
}
