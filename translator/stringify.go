// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package translator

import (
	"strings"

	"cogentcore.org/colortranslator/colors/units"
)

// functionNames are the CSS function names of the formats.
var functionNames = map[Format]string{
	FormatRGB:   "rgb",
	FormatHSL:   "hsl",
	FormatHWB:   "hwb",
	FormatLAB:   "lab",
	FormatLCH:   "lch",
	FormatOKLAB: "oklab",
	FormatOKLCH: "oklch",
	FormatCMYK:  "device-cmyk",
	FormatA98:   "color",
}

// stringify prints the channels of a color of the given format.
// The last channel is alpha.
func stringify(f Format, chs []channel, o *Options) string {
	if o.LimitToColorSpace {
		for i := range chs {
			chs[i].limit()
		}
	}
	if c, ok := o.customOutput(f); ok {
		return c.render(chs, o.MaxDigits)
	}
	alpha := chs[len(chs)-1]
	chs = chs[:len(chs)-1]

	if f == FormatHEX || f == FormatHEX0x {
		var sb strings.Builder
		if f == FormatHEX0x {
			sb.WriteString("0x")
		} else {
			sb.WriteString("#")
		}
		for _, ch := range chs {
			sb.WriteString(ch.hex)
		}
		if alpha.hex != "FF" {
			sb.WriteString(alpha.hex)
		}
		return sb.String()
	}

	values := make([]string, 0, len(chs)+1)
	if f == FormatA98 {
		values = append(values, "a98-rgb")
	}
	for _, ch := range chs {
		values = append(values, ch.format(o))
	}
	isOpaque := opaqueAlpha(alpha, o.MaxDigits)
	name := functionNames[f]
	if !isOpaque && (f == FormatRGB || f == FormatHSL) {
		name += "a"
	}

	sep, alphaSep := " ", " / "
	switch {
	case o.Legacy && (f == FormatRGB || f == FormatHSL):
		sep = ","
		if o.Spaced {
			sep = ", "
		}
		alphaSep = sep
	case !o.Spaced:
		alphaSep = "/"
	}

	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('(')
	sb.WriteString(strings.Join(values, sep))
	if !isOpaque {
		sb.WriteString(alphaSep)
		sb.WriteString(units.FormatRound(alpha.value, o.MaxDigits))
	}
	sb.WriteByte(')')
	return sb.String()
}

// format prints a channel with the built in syntax.
func (c channel) format(o *Options) string {
	switch c.kind {
	case percentChannel:
		return units.FormatRound(c.value*100, o.MaxDigits) + "%"
	case hueChannel:
		return formatHue(c.value, o)
	}
	return units.FormatRound(c.value, o.MaxDigits)
}

// formatHue prints a hue in degrees in the angle unit of the options.
// A hue that rounds to a full turn prints as 0.
func formatHue(deg float64, o *Options) string {
	v := units.Round(units.FromDeg(deg, o.AngleUnit), o.MaxDigits)
	if v == units.Round(units.FromDeg(360, o.AngleUnit), o.MaxDigits) {
		v = 0
	}
	s := units.FormatNumber(v)
	if o.AngleUnit != units.AngleNone && o.AngleUnit != "" {
		s += string(o.AngleUnit)
	}
	return s
}
