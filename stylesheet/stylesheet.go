// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stylesheet rewrites the colors of CSS stylesheets
// into one color format.
package stylesheet

import (
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/colortranslator/colors/named"
	"cogentcore.org/colortranslator/translator"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	parse "github.com/tdewolff/parse/v2"
	csslex "github.com/tdewolff/parse/v2/css"
	"golang.org/x/text/cases"
)

// colorFunctions are the CSS functions that make a whole color.
var colorFunctions = map[string]bool{
	"rgb(":         true,
	"rgba(":        true,
	"hsl(":         true,
	"hsla(":        true,
	"hwb(":         true,
	"lab(":         true,
	"lch(":         true,
	"oklab(":       true,
	"oklch(":       true,
	"device-cmyk(": true,
	"color(":       true,
}

// colorProperties are the properties whose bare named color
// identifiers are colors. Other identifiers, such as animation names
// and font families, are never rewritten.
var colorProperties = map[string]bool{
	"color":               true,
	"fill":                true,
	"stroke":              true,
	"caret-color":         true,
	"accent-color":        true,
	"flood-color":         true,
	"lighting-color":      true,
	"stop-color":          true,
	"scrollbar-color":     true,
	"text-emphasis-color": true,
	"background":          true,
	"border":              true,
	"outline":             true,
	"column-rule":         true,
	"text-decoration":     true,
}

// colorPropertyPrefixes are the prefixes of the shorthand families
// in [colorProperties].
var colorPropertyPrefixes = []string{"background-", "border-", "outline-", "column-rule-", "text-decoration-"}

// fold returns the case folded form of a CSS name. A [cases.Caser]
// is stateful, so each call makes its own.
func fold(s string) string { return cases.Fold().String(s) }

// IsColorProperty returns whether the given property takes colors
// written as named color identifiers.
func IsColorProperty(property string) bool {
	p := fold(strings.TrimSpace(property))
	if colorProperties[p] || strings.HasSuffix(p, "-shadow") {
		return true
	}
	for _, pre := range colorPropertyPrefixes {
		if strings.HasPrefix(p, pre) {
			return true
		}
	}
	return false
}

// Rewrite parses the given stylesheet and prints it back with every
// color of its declarations in the given format. It returns the
// printed stylesheet and the number of colors that were rewritten.
// Colors that cannot be read, such as those using var(), are kept.
func Rewrite(src string, to translator.Format, opts ...translator.Option) (string, int, error) {
	sheet, err := parser.Parse(src)
	if err != nil {
		return "", 0, fmt.Errorf("parsing stylesheet: %w", err)
	}
	n := rewriteRules(sheet.Rules, to, opts)
	slog.Debug("rewrote stylesheet", "colors", n, "format", to)
	return sheet.String(), n, nil
}

func rewriteRules(rules []*css.Rule, to translator.Format, opts []translator.Option) int {
	n := 0
	for _, r := range rules {
		n += rewriteRules(r.Rules, to, opts)
		for _, d := range r.Declarations {
			v, c := rewriteValue(d.Value, IsColorProperty(d.Property), to, opts)
			d.Value = v
			n += c
		}
	}
	return n
}

// RewriteValue rewrites every color in the given declaration value,
// such as "1px solid red", into the given format. It returns the new
// value and the number of colors that were rewritten. Colors nested
// in other functions, such as gradients, are rewritten too.
// Named color identifiers are always rewritten, so values of
// properties such as animation or font-family should not be passed
// here; see [IsColorProperty].
func RewriteValue(value string, to translator.Format, opts ...translator.Option) (string, int) {
	return rewriteValue(value, true, to, opts)
}

// rewriteValue is [RewriteValue], where idents is whether named color
// identifiers are rewritten.
func rewriteValue(value string, idents bool, to translator.Format, opts []translator.Option) (string, int) {
	var sb strings.Builder
	n := 0
	write := func(text string, complete bool) {
		if complete {
			if s, ok := translate(text, to, opts); ok {
				sb.WriteString(s)
				n++
				return
			}
		}
		sb.WriteString(text)
	}
	l := csslex.NewLexer(parse.NewInputString(value))
	for {
		tt, data := l.Next()
		switch tt {
		case csslex.ErrorToken:
			return sb.String(), n
		case csslex.FunctionToken:
			fn := fold(string(data))
			if !colorFunctions[fn] {
				sb.Write(data)
				continue
			}
			body, closed := consumeCall(l)
			write(fn+body, closed)
		case csslex.HashToken:
			write(string(data), true)
		case csslex.IdentToken:
			if !idents {
				sb.Write(data)
				continue
			}
			name := fold(string(data))
			if _, ok := named.Lookup(name); ok {
				write(name, true)
			} else {
				sb.Write(data)
			}
		default:
			sb.Write(data)
		}
	}
}

// consumeCall returns the text of the current function call after its
// name, up to and including the closing parenthesis, and whether the
// call was closed before the end of the value.
func consumeCall(l *csslex.Lexer) (string, bool) {
	var sb strings.Builder
	depth := 1
	for {
		tt, data := l.Next()
		switch tt {
		case csslex.ErrorToken:
			return sb.String(), false
		case csslex.FunctionToken, csslex.LeftParenthesisToken:
			depth++
		case csslex.RightParenthesisToken:
			depth--
		}
		sb.Write(data)
		if depth == 0 {
			return sb.String(), true
		}
	}
}

func translate(text string, to translator.Format, opts []translator.Option) (string, bool) {
	t, err := translator.New(text, opts...)
	if err != nil {
		slog.Debug("keeping color", "text", text, "err", err)
		return "", false
	}
	return t.StringAs(to), true
}
