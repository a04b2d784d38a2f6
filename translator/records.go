// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package translator

import "cogentcore.org/colortranslator/colors/units"

// The color records hold the channels of a color in their canonical
// units, with alpha on [0, 1]. Values may be outside of the legal range
// of the space after conversions; they are only limited when printed.

// RGB is an RGB color with channels on [0, 255].
type RGB struct {
	R, G, B, Alpha float64
}

// HEX is an RGB color with channels as two digit upper case hex codes.
type HEX struct {
	R, G, B, Alpha string
}

// HSL is an HSL color with the hue in degrees on [0, 360)
// and saturation and lightness on [0, 1].
type HSL struct {
	H, S, L, Alpha float64
}

// HWB is an HWB color with the hue in degrees on [0, 360)
// and whiteness and blackness on [0, 1].
type HWB struct {
	H, W, B, Alpha float64
}

// LAB is a CIE LAB color with L on [0, 100] and a and b on [-125, 125].
type LAB struct {
	L, A, B, Alpha float64
}

// LCH is a CIE LCH color with L on [0, 100], chroma on [0, 150]
// and the hue in degrees.
type LCH struct {
	L, C, H, Alpha float64
}

// OKLAB is an OKLAB color with L on [0, 1] and a and b on [-0.4, 0.4].
type OKLAB struct {
	L, A, B, Alpha float64
}

// OKLCH is an OKLCH color with L on [0, 1], chroma on [0, 0.4]
// and the hue in degrees.
type OKLCH struct {
	L, C, H, Alpha float64
}

// CMYK is a device CMYK color with all channels on [0, 1].
type CMYK struct {
	C, M, Y, K, Alpha float64
}

// A98 is an A98 RGB color with all channels on [0, 1].
type A98 struct {
	R, G, B, Alpha float64
}

type channelKind uint8

const (
	plainChannel channelKind = iota
	hueChannel
	percentChannel // printed times 100 with a % suffix
	hexChannel
)

// channel describes one channel of a color record for printing.
type channel struct {
	name     string
	kind     channelKind
	value    float64
	hex      string
	min, max float64
}

func plain(name string, v, lo, hi float64) channel {
	return channel{name: name, value: v, min: lo, max: hi}
}

func hue(v float64) channel {
	return channel{name: "h", kind: hueChannel, value: v, max: 360}
}

func percent(name string, v float64) channel {
	return channel{name: name, kind: percentChannel, value: v, max: 1}
}

func alpha(v float64) channel { return plain("alpha", v, 0, 1) }

func hexch(name, v string) channel {
	return channel{name: name, kind: hexChannel, hex: v, max: 255}
}

// limit clamps the channel to its legal range.
func (c *channel) limit() {
	if c.kind == hexChannel {
		c.hex = units.ClampHex(c.hex)
		return
	}
	c.value = units.Clamp(c.value, c.min, c.max)
}

func (c RGB) channels() []channel {
	return []channel{plain("r", c.R, 0, 255), plain("g", c.G, 0, 255), plain("b", c.B, 0, 255), alpha(c.Alpha)}
}

func (c HEX) channels() []channel {
	return []channel{hexch("r", c.R), hexch("g", c.G), hexch("b", c.B), hexch("alpha", c.Alpha)}
}

func (c HSL) channels() []channel {
	return []channel{hue(c.H), percent("s", c.S), percent("l", c.L), alpha(c.Alpha)}
}

func (c HWB) channels() []channel {
	return []channel{hue(c.H), percent("w", c.W), percent("b", c.B), alpha(c.Alpha)}
}

func (c LAB) channels() []channel {
	return []channel{plain("l", c.L, 0, 100), plain("a", c.A, -units.LabABMax, units.LabABMax), plain("b", c.B, -units.LabABMax, units.LabABMax), alpha(c.Alpha)}
}

func (c LCH) channels() []channel {
	return []channel{plain("l", c.L, 0, 100), plain("c", c.C, 0, units.LchChromaMax), hue(c.H), alpha(c.Alpha)}
}

func (c OKLAB) channels() []channel {
	return []channel{plain("l", c.L, 0, 1), plain("a", c.A, -units.OklabABMax, units.OklabABMax), plain("b", c.B, -units.OklabABMax, units.OklabABMax), alpha(c.Alpha)}
}

func (c OKLCH) channels() []channel {
	return []channel{plain("l", c.L, 0, 1), plain("c", c.C, 0, units.OklchChromaMax), hue(c.H), alpha(c.Alpha)}
}

func (c CMYK) channels() []channel {
	return []channel{plain("c", c.C, 0, 1), plain("m", c.M, 0, 1), plain("y", c.Y, 0, 1), plain("k", c.K, 0, 1), alpha(c.Alpha)}
}

func (c A98) channels() []channel {
	return []channel{plain("r", c.R, 0, 1), plain("g", c.G, 0, 1), plain("b", c.B, 0, 1), alpha(c.Alpha)}
}
