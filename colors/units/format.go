// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// epsilon is the difference between 1 and the next larger float64,
// added before rounding so that values such as 1.005 round up.
const epsilon = 2.220446049250313e-16

// Round rounds n to the given number of decimal digits,
// with halves rounded up. Negative digits round to integers.
func Round(n float64, digits int) float64 {
	digits = max(digits, 0)
	p := math.Pow(10, float64(digits))
	r := math.Floor((n+epsilon)*p+0.5) / p
	if r == 0 {
		return 0 // no negative zero
	}
	return r
}

// FormatNumber returns the shortest decimal representation of n.
func FormatNumber(n float64) string {
	if n == 0 {
		return "0"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// FormatRound rounds n to the given digits and formats it.
func FormatRound(n float64, digits int) string {
	return FormatNumber(Round(n, digits))
}

// ToHex returns the two digit upper case hex code of the given
// 8 bit value, which is rounded and clamped to [0, 255].
func ToHex(v float64) string {
	return fmt.Sprintf("%02X", int(math.Round(ClampByte(v))))
}

// FromHex returns the value of a one or two digit hex code.
// A single digit is doubled, so "F" is the same as "FF".
// Invalid codes parse as 0.
func FromHex(s string) float64 {
	if len(s) == 1 {
		s += s
	}
	u, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0
	}
	return float64(u)
}

// ClampHex clamps a hex code to a valid upper case two digit code.
func ClampHex(s string) string {
	return ToHex(FromHex(strings.TrimSpace(s)))
}
