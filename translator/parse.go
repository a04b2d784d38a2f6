// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package translator

import (
	"fmt"
	"log/slog"

	"cogentcore.org/colortranslator/colors/grammar"
	"cogentcore.org/colortranslator/colors/named"
)

// Parse parses CSS color text into a raw color. The text is either a
// CSS named color, which is case sensitive and gives a [RawLAB], or any
// of the color functions and hex notations of package grammar.
// Channels keep their text; a missing alpha channel is "1", or "FF"
// for hex colors.
func Parse(s string) (RawColor, error) {
	if c, ok := named.Lookup(s); ok {
		return RawLAB{Num(c.L), Num(c.A), Num(c.B), Num(1)}, nil
	}
	m, ok := grammar.Match(s)
	if !ok {
		slog.Debug("no color syntax matched", "input", s)
		if name, ok := named.Suggest(s); ok {
			return nil, fmt.Errorf("%w %q (did you mean %q?)", ErrInvalidInput, s, name)
		}
		return nil, fmt.Errorf("%w %q", ErrInvalidInput, s)
	}
	if m.Name == "#" || m.Name == "0x" {
		c := RawHEX{m.Params[0], m.Params[1], m.Params[2], m.Alpha}
		if c.Alpha == "" {
			c.Alpha = "FF"
		}
		return c, nil
	}
	p := func(i int) Value { return Text(m.Params[i]) }
	a := opaque
	if m.HasAlpha() {
		a = Text(m.Alpha)
	}
	switch m.Name {
	case "hsl", "hsla":
		return RawHSL{p(0), p(1), p(2), a}, nil
	case "hwb":
		return RawHWB{p(0), p(1), p(2), a}, nil
	case "lab":
		return RawLAB{p(0), p(1), p(2), a}, nil
	case "lch":
		return RawLCH{p(0), p(1), p(2), a}, nil
	case "oklab":
		return RawOKLAB{p(0), p(1), p(2), a}, nil
	case "oklch":
		return RawOKLCH{p(0), p(1), p(2), a}, nil
	case "device-cmyk":
		return RawCMYK{p(0), p(1), p(2), p(3), a}, nil
	case "a98-rgb":
		return RawA98{p(0), p(1), p(2), a}, nil
	}
	return RawRGB{p(0), p(1), p(2), a}, nil
}
