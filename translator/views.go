// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package translator

// The views are what the accessors of [Translator] return: the color in
// one format along with a snapshot of the options of the translator.
// A view does not change when its translator is updated.

// RGBView is a color in the RGB format.
type RGBView struct {
	RGB
	Options Options
}

// HEXView is a color in the HEX format, printed with a "#" prefix,
// or with a "0x" prefix when it comes from [Translator.HEX0x].
type HEXView struct {
	HEX
	Options Options
	format  Format
}

// HSLView is a color in the HSL format.
type HSLView struct {
	HSL
	Options Options
}

// HWBView is a color in the HWB format.
type HWBView struct {
	HWB
	Options Options
}

// LABView is a color in the CIE LAB format.
type LABView struct {
	LAB
	Options Options
}

// LCHView is a color in the CIE LCH format.
type LCHView struct {
	LCH
	Options Options
}

// OKLABView is a color in the OKLAB format.
type OKLABView struct {
	OKLAB
	Options Options
}

// OKLCHView is a color in the OKLCH format.
type OKLCHView struct {
	OKLCH
	Options Options
}

// CMYKView is a color in the device CMYK format.
type CMYKView struct {
	CMYK
	Options Options
}

// A98View is a color in the A98 RGB format.
type A98View struct {
	A98
	Options Options
}

// printView prints channels with the given options overriding o.
// The overrides do not persist.
func printView(f Format, chs []channel, o Options, opts []Option) string {
	o = o.With(opts...)
	return stringify(f, chs, &o)
}

func (v RGBView) String() string { return v.StringWith() }

// StringWith prints the color with the given options overriding its own.
func (v RGBView) StringWith(opts ...Option) string {
	return printView(FormatRGB, v.channels(), v.Options, opts)
}

func (v HEXView) String() string { return v.StringWith() }

// StringWith prints the color with the given options overriding its own.
func (v HEXView) StringWith(opts ...Option) string {
	f := v.format
	if f == "" {
		f = FormatHEX
	}
	return printView(f, v.channels(), v.Options, opts)
}

func (v HSLView) String() string { return v.StringWith() }

// StringWith prints the color with the given options overriding its own.
func (v HSLView) StringWith(opts ...Option) string {
	return printView(FormatHSL, v.channels(), v.Options, opts)
}

func (v HWBView) String() string { return v.StringWith() }

// StringWith prints the color with the given options overriding its own.
func (v HWBView) StringWith(opts ...Option) string {
	return printView(FormatHWB, v.channels(), v.Options, opts)
}

func (v LABView) String() string { return v.StringWith() }

// StringWith prints the color with the given options overriding its own.
func (v LABView) StringWith(opts ...Option) string {
	return printView(FormatLAB, v.channels(), v.Options, opts)
}

func (v LCHView) String() string { return v.StringWith() }

// StringWith prints the color with the given options overriding its own.
func (v LCHView) StringWith(opts ...Option) string {
	return printView(FormatLCH, v.channels(), v.Options, opts)
}

func (v OKLABView) String() string { return v.StringWith() }

// StringWith prints the color with the given options overriding its own.
func (v OKLABView) StringWith(opts ...Option) string {
	return printView(FormatOKLAB, v.channels(), v.Options, opts)
}

func (v OKLCHView) String() string { return v.StringWith() }

// StringWith prints the color with the given options overriding its own.
func (v OKLCHView) StringWith(opts ...Option) string {
	return printView(FormatOKLCH, v.channels(), v.Options, opts)
}

func (v CMYKView) String() string { return v.StringWith() }

// StringWith prints the color with the given options overriding its own.
func (v CMYKView) StringWith(opts ...Option) string {
	return printView(FormatCMYK, v.channels(), v.Options, opts)
}

func (v A98View) String() string { return v.StringWith() }

// StringWith prints the color with the given options overriding its own.
func (v A98View) StringWith(opts ...Option) string {
	return printView(FormatA98, v.channels(), v.Options, opts)
}
