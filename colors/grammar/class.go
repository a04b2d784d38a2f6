// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grammar

import (
	"bytes"

	"github.com/tdewolff/parse/v2/css"
)

// Class reports whether a lexed token is a valid value of some kind.
type Class func(tt css.TokenType, text []byte) bool

// AngleUnits are the units accepted after an angle.
var AngleUnits = []string{"deg", "grad", "rad", "turn"}

// Decimal accepts a signed integer or decimal number.
// Exponents are not accepted.
func Decimal(tt css.TokenType, text []byte) bool {
	return tt == css.NumberToken && isDecimal(text)
}

// Percentage accepts a decimal followed by "%".
func Percentage(tt css.TokenType, text []byte) bool {
	return tt == css.PercentageToken && isDecimal(text[:len(text)-1])
}

// DecimalOrPercentage accepts a [Decimal] or a [Percentage].
func DecimalOrPercentage(tt css.TokenType, text []byte) bool {
	return Decimal(tt, text) || Percentage(tt, text)
}

// Angle accepts a decimal with an optional angle unit.
func Angle(tt css.TokenType, text []byte) bool {
	if Decimal(tt, text) {
		return true
	}
	if tt != css.DimensionToken {
		return false
	}
	num, unit := splitDimension(text)
	for _, u := range AngleUnits {
		if string(unit) == u {
			return isDecimal(num)
		}
	}
	return false
}

// Keyword returns a [Class] accepting exactly the given identifier.
func Keyword(kw string) Class {
	return func(tt css.TokenType, text []byte) bool {
		return tt == css.IdentToken && string(text) == kw
	}
}

// isDecimal returns whether b is a sign, digits and an optional
// fraction, or a sign and a fraction alone.
func isDecimal(b []byte) bool {
	if len(b) > 0 && (b[0] == '+' || b[0] == '-') {
		b = b[1:]
	}
	whole := digits(b)
	b = b[whole:]
	if len(b) == 0 {
		return whole > 0
	}
	if b[0] != '.' {
		return false
	}
	frac := digits(b[1:])
	return frac > 0 && frac == len(b)-1
}

func digits(b []byte) int {
	n := 0
	for n < len(b) && '0' <= b[n] && b[n] <= '9' {
		n++
	}
	return n
}

// splitDimension splits a dimension token into its number and unit.
// The number is everything up to the first letter.
func splitDimension(text []byte) (num, unit []byte) {
	i := bytes.IndexFunc(text, func(r rune) bool {
		return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
	})
	if i < 0 {
		return text, nil
	}
	return text[:i], text[i:]
}
