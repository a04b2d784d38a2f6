// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		in     string
		name   string
		params []string
		alpha  string
		legacy bool
	}{
		{"#F00", "#", []string{"F", "0", "0"}, "", false},
		{"#ff000080", "#", []string{"ff", "00", "00"}, "80", false},
		{"#f008", "#", []string{"f", "0", "0"}, "8", false},
		{"0xFF0000", "0x", []string{"FF", "00", "00"}, "", false},
		{"rgb(255 0 0)", "rgb", []string{"255", "0", "0"}, "", false},
		{"rgba(255 0 0 / 0.5)", "rgba", []string{"255", "0", "0"}, "0.5", false},
		{"rgb(255 0 0/50%)", "rgb", []string{"255", "0", "0"}, "50%", false},
		{"rgb(100% 0% 0%)", "rgb", []string{"100%", "0%", "0%"}, "", false},
		{"rgb(255, 0, 0)", "rgb", []string{"255", "0", "0"}, "", true},
		{"rgba(255,0,0,.5)", "rgba", []string{"255", "0", "0"}, ".5", true},
		{"rgb( 255 , 0 , 0 )", "rgb", []string{"255", "0", "0"}, "", true},
		{"hsl(120deg 100% 50%)", "hsl", []string{"120deg", "100%", "50%"}, "", false},
		{"hsla(-0.5turn, 10%, 20%, 1)", "hsla", []string{"-0.5turn", "10%", "20%"}, "1", true},
		{"hwb(1.5rad 20% 30% / 0.2)", "hwb", []string{"1.5rad", "20%", "30%"}, "0.2", false},
		{"lab(54.29% 64.656% 55.904%)", "lab", []string{"54.29%", "64.656%", "55.904%"}, "", false},
		{"lch(54.29 106.84 40.85)", "lch", []string{"54.29", "106.84", "40.85"}, "", false},
		{"oklab(0.63 0.22 -0.13)", "oklab", []string{"0.63", "0.22", "-0.13"}, "", false},
		{"oklch(63% 65% 400grad)", "oklch", []string{"63%", "65%", "400grad"}, "", false},
		{"device-cmyk(0 1 1 0 / 0.5)", "device-cmyk", []string{"0", "1", "1", "0"}, "0.5", false},
		{"color(a98-rgb 0.86 0 0)", "a98-rgb", []string{"0.86", "0", "0"}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r, ok := Match(tt.in)
			if assert.True(t, ok) {
				assert.Equal(t, tt.name, r.Name)
				assert.Equal(t, tt.params, r.Params)
				assert.Equal(t, tt.alpha, r.Alpha)
				assert.Equal(t, tt.alpha != "", r.HasAlpha())
				assert.Equal(t, tt.legacy, r.Legacy)
			}
		})
	}
}

func TestNoMatch(t *testing.T) {
	invalid := []string{
		"",
		"red",
		"#",
		"#ff",
		"#fffff",
		"#ggg",
		"0XFFF",
		"#FF0000 ",
		" rgb(255 0 0)",
		"RGB(255 0 0)",
		"rgb (255 0 0)",
		"rgb(255 0% 0)",
		"rgb(255, 0 0)",
		"rgb(255 0 0 0.5)",
		"rgb(255 0 0 / )",
		"rgb(255 0 0 / 0.5deg)",
		"rgb(1e2 0 0)",
		"rgb(1. 0 0)",
		"rgb(255 0 0",
		"rgb(255 0 0))",
		"rgb(255 0 0) x",
		"rgb(255 0)",
		"rgb(255 0 0 0)",
		"hsl(120 100 50)",
		"hsl(120DEG 100% 50%)",
		"hsl(120px 100% 50%)",
		"hsl(1e2deg 100% 50%)",
		"hwb(0, 0%, 0%)",
		"lab(50, 20, 30)",
		"lch(50 20% 30%)",
		"oklab(0.5 0.1)",
		"device-cmyk(0 0 0)",
		"color(a98-rgb 50% 0 0)",
		"color(srgb 1 0 0)",
		"color(a98-rgb, 1, 0, 0)",
		"rgb(calc(1) 0 0)",
	}
	for _, s := range invalid {
		_, ok := Match(s)
		assert.False(t, ok, s)
	}
}

func TestMatchers(t *testing.T) {
	_, ok := HSL("rgb(255 0 0)")
	assert.False(t, ok)
	_, ok = LAB("oklab(0.5 0 0)")
	assert.False(t, ok)
	_, ok = Hex0x("#FFF")
	assert.False(t, ok)
	r, ok := CMYK("device-cmyk(0% 100% 100% 0%)")
	assert.True(t, ok)
	assert.Len(t, r.Params, 4)
}

func TestClasses(t *testing.T) {
	assert.True(t, isDecimal([]byte("12")))
	assert.True(t, isDecimal([]byte("-1.5")))
	assert.True(t, isDecimal([]byte("+.5")))
	assert.False(t, isDecimal([]byte("1.")))
	assert.False(t, isDecimal([]byte(".")))
	assert.False(t, isDecimal([]byte("-")))
	assert.False(t, isDecimal([]byte("1e3")))
	assert.False(t, isDecimal([]byte("1.2.3")))

	num, unit := splitDimension([]byte("-0.25turn"))
	assert.Equal(t, "-0.25", string(num))
	assert.Equal(t, "turn", string(unit))
}
