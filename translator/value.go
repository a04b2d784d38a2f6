// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package translator

import "cogentcore.org/colortranslator/colors/units"

// Value is a raw channel value: unset, a number, or CSS text
// such as "50%" or "0.5turn". The zero Value is unset.
type Value = units.Value

// Num returns a numeric [Value].
func Num(v float64) Value { return units.Num(v) }

// Text returns a textual [Value].
func Text(s string) Value { return units.Text(s) }
