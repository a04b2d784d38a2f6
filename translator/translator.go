// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package translator converts colors between the RGB, HEX, HSL, HWB,
// CIE LAB, CIE LCH, OKLAB, OKLCH, device CMYK and A98 RGB formats, and
// reads and prints them as CSS color text.
//
// A [Translator] holds one color as sRGB on [0, 100], the pivot that
// every conversion goes through, along with its last input, which is
// printed as it was given instead of being converted back from RGB.
package translator

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"

	"cogentcore.org/colortranslator/colors/named"
	"cogentcore.org/colortranslator/colors/units"
)

// Translator holds a color and converts it to every format.
// It is not safe for concurrent use.
type Translator struct {

	// rgb is the pivot.
	rgb rgb100

	// input is the last input, in its own format and canonical units.
	input standardized

	opts Options
}

// New returns a new [Translator] for the given color, which is CSS color
// text, a [RawColor], or a map classified by [Classify].
func New(color any, opts ...Option) (*Translator, error) {
	var raw RawColor
	switch c := color.(type) {
	case string:
		r, err := Parse(c)
		if err != nil {
			return nil, err
		}
		raw = r
	case RawColor:
		raw = c
	case map[string]any:
		r, ok := Classify(c)
		if !ok {
			return nil, fmt.Errorf("%w: no color shape matches %v", ErrInvalidInput, c)
		}
		raw = r
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrInvalidInput, color)
	}
	s, err := standardize(raw)
	if err != nil {
		return nil, err
	}
	slog.Debug("new color", "format", s.format, "input", color)
	return &Translator{rgb: s.rgb, input: s, opts: DefaultOptions().With(opts...)}, nil
}

// Convert prints the given CSS color text in the given format.
func Convert(color string, to Format, opts ...Option) (string, error) {
	t, err := New(color, opts...)
	if err != nil {
		return "", err
	}
	return t.StringAs(to), nil
}

// Format returns the format of the last input. Hex colors and their
// updates are RGB, and named colors are LAB.
func (t *Translator) Format() Format { return t.input.format }

// Options returns a copy of the options.
func (t *Translator) Options() Options { return t.opts.Clone() }

// UpdateOptions applies the given options.
func (t *Translator) UpdateOptions(opts ...Option) *Translator {
	for _, opt := range opts {
		opt(&t.opts)
	}
	return t
}

// String prints the color in the format of the last input.
func (t *Translator) String() string { return t.StringAs(t.Format()) }

// StringAs prints the color in the given format,
// with the given options overriding those of the translator.
func (t *Translator) StringAs(f Format, opts ...Option) string {
	switch f {
	case FormatHEX:
		return t.HEX().StringWith(opts...)
	case FormatHEX0x:
		return t.HEX0x().StringWith(opts...)
	case FormatHSL:
		return t.HSL().StringWith(opts...)
	case FormatHWB:
		return t.HWB().StringWith(opts...)
	case FormatLAB:
		return t.LAB().StringWith(opts...)
	case FormatLCH:
		return t.LCH().StringWith(opts...)
	case FormatOKLAB:
		return t.OKLAB().StringWith(opts...)
	case FormatOKLCH:
		return t.OKLCH().StringWith(opts...)
	case FormatCMYK:
		return t.CMYK().StringWith(opts...)
	case FormatA98:
		return t.A98().StringWith(opts...)
	case FormatNamed:
		return t.Named()
	}
	return t.RGB().StringWith(opts...)
}

// current returns the last input if it has the given format and
// input caching is on, and otherwise derives the color from the pivot.
func current[T any](t *Translator, f Format, derive func(rgb100) T) T {
	if t.opts.CacheInput && t.input.format == f {
		if c, ok := t.input.color.(T); ok {
			return c
		}
	}
	return derive(t.rgb)
}

// update stores a new last input along with its pivot.
func (t *Translator) update(f Format, c any, rgb rgb100) *Translator {
	t.input = standardized{format: f, color: c, rgb: rgb}
	t.rgb = rgb
	return t
}

func (t *Translator) rgb100() rgb100 {
	return current(t, FormatRGB, func(c rgb100) rgb100 { return c })
}

// RGB returns the color in the RGB format.
func (t *Translator) RGB() RGBView {
	return RGBView{t.rgb100().rgb(), t.Options()}
}

// HEX returns the color in the HEX format with a "#" prefix.
func (t *Translator) HEX() HEXView {
	return HEXView{t.rgb100().hex(), t.Options(), FormatHEX}
}

// HEX0x returns the color in the HEX format with a "0x" prefix.
func (t *Translator) HEX0x() HEXView {
	return HEXView{t.rgb100().hex(), t.Options(), FormatHEX0x}
}

// HSL returns the color in the HSL format.
func (t *Translator) HSL() HSLView {
	return HSLView{current(t, FormatHSL, rgb100.hsl), t.Options()}
}

// HWB returns the color in the HWB format.
func (t *Translator) HWB() HWBView {
	return HWBView{current(t, FormatHWB, rgb100.hwb), t.Options()}
}

// LAB returns the color in the CIE LAB format.
func (t *Translator) LAB() LABView {
	return LABView{current(t, FormatLAB, rgb100.lab), t.Options()}
}

// LCH returns the color in the CIE LCH format.
func (t *Translator) LCH() LCHView {
	return LCHView{current(t, FormatLCH, rgb100.lch), t.Options()}
}

// OKLAB returns the color in the OKLAB format.
func (t *Translator) OKLAB() OKLABView {
	return OKLABView{current(t, FormatOKLAB, rgb100.oklab), t.Options()}
}

// OKLCH returns the color in the OKLCH format.
func (t *Translator) OKLCH() OKLCHView {
	return OKLCHView{current(t, FormatOKLCH, rgb100.oklch), t.Options()}
}

// CMYK returns the color in the device CMYK format.
func (t *Translator) CMYK() CMYKView {
	return CMYKView{current(t, FormatCMYK, rgb100.cmyk), t.Options()}
}

// A98 returns the color in the A98 RGB format.
func (t *Translator) A98() A98View {
	return A98View{current(t, FormatA98, rgb100.a98), t.Options()}
}

// Named returns the name of the CSS named color closest to the color.
func (t *Translator) Named() string {
	c := t.LAB()
	name, _ := named.Nearest(c.L, c.A, c.B)
	return name
}

// NRGBA returns the color clamped to sRGB.
func (t *Translator) NRGBA() color.NRGBA {
	b := func(v float64) uint8 { return uint8(math.Round(units.ClampByte(v))) }
	c := t.rgb
	return color.NRGBA{
		b(units.RangeToByte(c.r)),
		b(units.RangeToByte(c.g)),
		b(units.RangeToByte(c.b)),
		b(units.ClampUnit(c.alpha) * 255),
	}
}

// RGBA implements [color.Color].
func (t *Translator) RGBA() (r, g, b, a uint32) { return t.NRGBA().RGBA() }

// The update methods standardize the set channels of the patch and
// replace those channels of the color in the format of the method.
// The result becomes the last input. An empty patch does nothing.

// UpdateRGB updates the RGB channels of the color.
func (t *Translator) UpdateRGB(p RawRGB) *Translator {
	if p.empty() {
		return t
	}
	c := t.rgb100().merge(p)
	return t.update(FormatRGB, c, c)
}

// UpdateHEX updates the HEX channels of the color.
// The result is stored as an RGB color.
func (t *Translator) UpdateHEX(p RawHEX) *Translator {
	return t.UpdateRGB(p.rgb())
}

// UpdateHSL updates the HSL channels of the color.
func (t *Translator) UpdateHSL(p RawHSL) *Translator {
	if p.empty() {
		return t
	}
	c := current(t, FormatHSL, rgb100.hsl).merge(p)
	return t.update(FormatHSL, c, c.rgb100())
}

// UpdateHWB updates the HWB channels of the color.
func (t *Translator) UpdateHWB(p RawHWB) *Translator {
	if p.empty() {
		return t
	}
	c := current(t, FormatHWB, rgb100.hwb).merge(p)
	return t.update(FormatHWB, c, c.rgb100())
}

// UpdateLAB updates the CIE LAB channels of the color.
func (t *Translator) UpdateLAB(p RawLAB) *Translator {
	if p.empty() {
		return t
	}
	c := current(t, FormatLAB, rgb100.lab).merge(p)
	return t.update(FormatLAB, c, c.rgb100())
}

// UpdateLCH updates the CIE LCH channels of the color.
func (t *Translator) UpdateLCH(p RawLCH) *Translator {
	if p.empty() {
		return t
	}
	c := current(t, FormatLCH, rgb100.lch).merge(p)
	return t.update(FormatLCH, c, c.rgb100())
}

// UpdateOKLAB updates the OKLAB channels of the color.
func (t *Translator) UpdateOKLAB(p RawOKLAB) *Translator {
	if p.empty() {
		return t
	}
	c := current(t, FormatOKLAB, rgb100.oklab).merge(p)
	return t.update(FormatOKLAB, c, c.rgb100())
}

// UpdateOKLCH updates the OKLCH channels of the color.
func (t *Translator) UpdateOKLCH(p RawOKLCH) *Translator {
	if p.empty() {
		return t
	}
	c := current(t, FormatOKLCH, rgb100.oklch).merge(p)
	return t.update(FormatOKLCH, c, c.rgb100())
}

// UpdateCMYK updates the device CMYK channels of the color.
func (t *Translator) UpdateCMYK(p RawCMYK) *Translator {
	if p.empty() {
		return t
	}
	c := current(t, FormatCMYK, rgb100.cmyk).merge(p)
	return t.update(FormatCMYK, c, c.rgb100())
}

// UpdateA98 updates the A98 RGB channels of the color.
func (t *Translator) UpdateA98(p RawA98) *Translator {
	if p.empty() {
		return t
	}
	c := current(t, FormatA98, rgb100.a98).merge(p)
	return t.update(FormatA98, c, c.rgb100())
}
