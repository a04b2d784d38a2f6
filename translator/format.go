// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package translator

import "fmt"

// Format is a color format that a [Translator] reads and prints.
type Format string

const (
	FormatRGB   Format = "rgb"
	FormatHEX   Format = "hex"
	FormatHEX0x Format = "hex0x"
	FormatHSL   Format = "hsl"
	FormatHWB   Format = "hwb"
	FormatLAB   Format = "lab"
	FormatLCH   Format = "lch"
	FormatOKLAB Format = "oklab"
	FormatOKLCH Format = "oklch"
	FormatCMYK  Format = "cmyk"
	FormatA98   Format = "a98"

	// FormatNamed is the nearest CSS named color. It is only an output format.
	FormatNamed Format = "named"
)

// Formats are all of the formats, in the order they are usually printed.
var Formats = []Format{
	FormatRGB, FormatHEX, FormatHEX0x, FormatHSL, FormatHWB, FormatLAB,
	FormatLCH, FormatOKLAB, FormatOKLCH, FormatCMYK, FormatA98, FormatNamed,
}

func (f Format) String() string { return string(f) }

// SetString sets the format from its name.
func (f *Format) SetString(s string) error {
	for _, ff := range Formats {
		if string(ff) == s {
			*f = ff
			return nil
		}
	}
	return fmt.Errorf("translator.Format.SetString: invalid format %q", s)
}

// Set implements the pflag.Value interface.
func (f *Format) Set(s string) error { return f.SetString(s) }

// Type implements the pflag.Value interface.
func (f *Format) Type() string { return "format" }

// ParseFormat returns the format with the given name.
func ParseFormat(s string) (Format, error) {
	var f Format
	err := f.SetString(s)
	return f, err
}
