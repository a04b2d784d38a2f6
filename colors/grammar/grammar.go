// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grammar recognizes CSS color text: the rgb, hsl, hwb, lab,
// lch, oklab, oklch, device-cmyk and color(a98-rgb) functions and
// the #hex and 0xhex notations. It only checks the syntax and returns
// the raw channel texts; their values are interpreted by the caller.
package grammar

import (
	"io"
	"slices"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Result is a recognized piece of color text.
type Result struct {

	// Name is the function name, such as "rgba" or "a98-rgb",
	// or the prefix "#" or "0x" for hex colors.
	Name string

	// Params are the raw texts of the color channels, in order.
	Params []string

	// Alpha is the raw text of the alpha channel,
	// which is empty when the alpha channel is absent.
	Alpha string

	// Legacy is whether the comma separated syntax was used.
	Legacy bool
}

// HasAlpha returns whether the alpha channel was given.
func (r Result) HasAlpha() bool { return r.Alpha != "" }

// Matcher recognizes one kind of color text.
type Matcher func(s string) (Result, bool)

// Matchers are all of the matchers in the order [Match] tries them.
var Matchers = []Matcher{A98, Hex, Hex0x, RGB, HSL, HWB, LAB, LCH, OKLAB, OKLCH, CMYK}

// Match returns the result of the first matcher that recognizes s.
func Match(s string) (Result, bool) {
	for _, m := range Matchers {
		if r, ok := m(s); ok {
			return r, true
		}
	}
	return Result{}, false
}

// Hex recognizes "#" followed by 3, 4, 6 or 8 hex digits.
func Hex(s string) (Result, bool) { return matchHex(s, "#") }

// Hex0x recognizes "0x" followed by 3, 4, 6 or 8 hex digits.
func Hex0x(s string) (Result, bool) { return matchHex(s, "0x") }

func matchHex(s, prefix string) (Result, bool) {
	digits, ok := strings.CutPrefix(s, prefix)
	if !ok {
		return Result{}, false
	}
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return Result{}, false
		}
	}
	var size int
	switch len(digits) {
	case 3, 4:
		size = 1
	case 6, 8:
		size = 2
	default:
		return Result{}, false
	}
	r := Result{Name: prefix}
	for i := 0; i < len(digits); i += size {
		r.Params = append(r.Params, digits[i:i+size])
	}
	if len(r.Params) == 4 {
		r.Alpha = r.Params[3]
		r.Params = r.Params[:3]
	}
	return r, true
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// RGB recognizes rgb and rgba with three numbers or three percentages,
// in either the modern or the legacy syntax.
func RGB(s string) (Result, bool) {
	if r, ok := matchFunc(s, []string{"rgb", "rgba"}, true, Decimal, Decimal, Decimal); ok {
		return r, true
	}
	return matchFunc(s, []string{"rgb", "rgba"}, true, Percentage, Percentage, Percentage)
}

// HSL recognizes hsl and hsla, in either the modern or the legacy syntax.
func HSL(s string) (Result, bool) {
	return matchFunc(s, []string{"hsl", "hsla"}, true, Angle, Percentage, Percentage)
}

// HWB recognizes hwb.
func HWB(s string) (Result, bool) {
	return matchFunc(s, []string{"hwb"}, false, Angle, Percentage, Percentage)
}

// LAB recognizes lab.
func LAB(s string) (Result, bool) {
	return matchFunc(s, []string{"lab"}, false, DecimalOrPercentage, DecimalOrPercentage, DecimalOrPercentage)
}

// LCH recognizes lch.
func LCH(s string) (Result, bool) {
	return matchFunc(s, []string{"lch"}, false, DecimalOrPercentage, DecimalOrPercentage, Angle)
}

// OKLAB recognizes oklab.
func OKLAB(s string) (Result, bool) {
	return matchFunc(s, []string{"oklab"}, false, DecimalOrPercentage, DecimalOrPercentage, DecimalOrPercentage)
}

// OKLCH recognizes oklch.
func OKLCH(s string) (Result, bool) {
	return matchFunc(s, []string{"oklch"}, false, DecimalOrPercentage, DecimalOrPercentage, Angle)
}

// CMYK recognizes device-cmyk.
func CMYK(s string) (Result, bool) {
	return matchFunc(s, []string{"device-cmyk"}, false, DecimalOrPercentage, DecimalOrPercentage, DecimalOrPercentage, DecimalOrPercentage)
}

// A98 recognizes color(a98-rgb r g b), with plain numbers only.
// The result is named "a98-rgb".
func A98(s string) (Result, bool) {
	r, ok := matchFunc(s, []string{"color"}, false, Keyword("a98-rgb"), Decimal, Decimal, Decimal)
	if !ok {
		return Result{}, false
	}
	r.Name = r.Params[0]
	r.Params = r.Params[1:]
	return r, true
}

// token is a lexed token of a function call.
type token struct {
	tt   css.TokenType
	text []byte
}

// lexCall splits a function call into its name and the tokens
// between its parentheses. The call must span all of s.
func lexCall(s string) (string, []token, bool) {
	l := css.NewLexer(parse.NewInputString(s))
	tt, text := l.Next()
	if tt != css.FunctionToken {
		return "", nil, false
	}
	name := string(text[:len(text)-1])
	var toks []token
	for {
		tt, text := l.Next()
		switch tt {
		case css.ErrorToken:
			return "", nil, false
		case css.RightParenthesisToken:
			if tt, _ := l.Next(); tt != css.ErrorToken || l.Err() != io.EOF {
				return "", nil, false
			}
			return name, toks, true
		}
		toks = append(toks, token{tt, text})
	}
}

// matchFunc matches a call to one of the given function names whose
// parameters satisfy the given classes, followed by an optional alpha.
// Legacy comma separated parameters are tried when legacy is set.
func matchFunc(s string, names []string, legacy bool, classes ...Class) (Result, bool) {
	name, toks, ok := lexCall(s)
	if !ok || !slices.Contains(names, name) {
		return Result{}, false
	}
	toks = trimSpace(toks)
	r := Result{Name: name}
	if r.Params, r.Alpha, ok = matchModern(toks, classes); ok {
		return r, true
	}
	if !legacy {
		return Result{}, false
	}
	r.Legacy = true
	if r.Params, r.Alpha, ok = matchLegacy(toks, classes); ok {
		return r, true
	}
	return Result{}, false
}

// matchModern matches whitespace separated parameters
// with an optional alpha after a "/".
func matchModern(toks []token, classes []Class) ([]string, string, bool) {
	var params []string
	i := 0
	for n, class := range classes {
		if n > 0 {
			if i >= len(toks) || toks[i].tt != css.WhitespaceToken {
				return nil, "", false
			}
			i++
		}
		if i >= len(toks) || !class(toks[i].tt, toks[i].text) {
			return nil, "", false
		}
		params = append(params, string(toks[i].text))
		i++
	}
	if i == len(toks) {
		return params, "", true
	}
	rest := toks[i:]
	if rest[0].tt == css.WhitespaceToken {
		rest = rest[1:]
	}
	if len(rest) == 0 || rest[0].tt != css.DelimToken || string(rest[0].text) != "/" {
		return nil, "", false
	}
	rest = trimSpace(rest[1:])
	if len(rest) != 1 || !DecimalOrPercentage(rest[0].tt, rest[0].text) {
		return nil, "", false
	}
	return params, string(rest[0].text), true
}

// matchLegacy matches comma separated parameters and alpha.
func matchLegacy(toks []token, classes []Class) ([]string, string, bool) {
	var items [][]token
	start := 0
	for i, t := range toks {
		if t.tt == css.CommaToken {
			items = append(items, trimSpace(toks[start:i]))
			start = i + 1
		}
	}
	items = append(items, trimSpace(toks[start:]))
	if len(items) != len(classes) && len(items) != len(classes)+1 {
		return nil, "", false
	}
	var params []string
	for n, item := range items {
		class := DecimalOrPercentage
		if n < len(classes) {
			class = classes[n]
		}
		if len(item) != 1 || !class(item[0].tt, item[0].text) {
			return nil, "", false
		}
		params = append(params, string(item[0].text))
	}
	if len(params) > len(classes) {
		return params[:len(classes)], params[len(classes)], true
	}
	return params, "", true
}

func trimSpace(toks []token) []token {
	if len(toks) > 0 && toks[0].tt == css.WhitespaceToken {
		toks = toks[1:]
	}
	if len(toks) > 0 && toks[len(toks)-1].tt == css.WhitespaceToken {
		toks = toks[:len(toks)-1]
	}
	return toks
}
