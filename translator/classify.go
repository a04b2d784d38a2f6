// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package translator

import "reflect"

// Classify returns the raw color with the shape of the given map.
// A map has the shape of a color space if all of the channels of the
// space are present and not nil; other keys are ignored. The "a98" and
// "ok" tags mark A98 RGB and OKLAB/OKLCH colors, and those spaces are
// tried before the untagged spaces with the same channels.
// Numbers become numeric values and strings become textual values.
func Classify(m map[string]any) (RawColor, bool) {
	has := func(keys ...string) bool {
		for _, k := range keys {
			if !toValue(m[k]).IsSet() {
				return false
			}
		}
		return true
	}
	tagged := func(tag string) bool { return m[tag] != nil }
	v := func(key string) Value { return toValue(m[key]) }
	switch {
	case tagged("a98") && has("r", "g", "b"):
		return RawA98{v("r"), v("g"), v("b"), v("alpha")}, true
	case has("r", "g", "b"):
		return RawRGB{v("r"), v("g"), v("b"), v("alpha")}, true
	case has("h", "s", "l"):
		return RawHSL{v("h"), v("s"), v("l"), v("alpha")}, true
	case has("h", "w", "b"):
		return RawHWB{v("h"), v("w"), v("b"), v("alpha")}, true
	case tagged("ok") && has("l", "a", "b"):
		return RawOKLAB{v("l"), v("a"), v("b"), v("alpha")}, true
	case tagged("ok") && has("l", "c", "h"):
		return RawOKLCH{v("l"), v("c"), v("h"), v("alpha")}, true
	case has("l", "a", "b"):
		return RawLAB{v("l"), v("a"), v("b"), v("alpha")}, true
	case has("l", "c", "h"):
		return RawLCH{v("l"), v("c"), v("h"), v("alpha")}, true
	case has("c", "m", "y", "k"):
		return RawCMYK{v("c"), v("m"), v("y"), v("k"), v("alpha")}, true
	}
	return nil, false
}

// toValue converts a number, string or [Value] to a [Value].
// Anything else is unset.
func toValue(x any) Value {
	switch x := x.(type) {
	case nil:
		return Value{}
	case Value:
		return x
	case string:
		return Text(x)
	}
	rv := reflect.ValueOf(x)
	switch {
	case rv.CanInt():
		return Num(float64(rv.Int()))
	case rv.CanUint():
		return Num(float64(rv.Uint()))
	case rv.CanFloat():
		return Num(rv.Float())
	}
	return Value{}
}
