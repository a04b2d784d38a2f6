// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import "strconv"

type valueKind uint8

const (
	unset valueKind = iota
	number
	text
)

// Value is a raw color channel value, which is either unset,
// a plain number, or CSS text such as "50%" or "270deg".
// The zero Value is unset.
type Value struct {
	kind valueKind
	num  float64
	text string
}

// Num returns a numeric [Value].
func Num(v float64) Value { return Value{kind: number, num: v} }

// Text returns a textual [Value].
func Text(s string) Value { return Value{kind: text, text: s} }

// IsSet returns whether the value has been set.
func (v Value) IsSet() bool { return v.kind != unset }

// IsNum returns whether the value is a number.
func (v Value) IsNum() bool { return v.kind == number }

// IsText returns whether the value is text.
func (v Value) IsText() bool { return v.kind == text }

// Float returns the number of a numeric value,
// or the leading number of a textual one.
func (v Value) Float() float64 {
	switch v.kind {
	case number:
		return v.num
	case text:
		return ParseFloat(v.text)
	}
	return 0
}

// Text returns the text of a textual value,
// or the formatted number of a numeric one.
func (v Value) Text() string {
	switch v.kind {
	case number:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case text:
		return v.text
	}
	return ""
}

func (v Value) String() string {
	if !v.IsSet() {
		return "<unset>"
	}
	return v.Text()
}

// Or returns v if it is set, and d otherwise.
func (v Value) Or(d Value) Value {
	if v.IsSet() {
		return v
	}
	return d
}
