// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stylesheet

import (
	"testing"

	"cogentcore.org/colortranslator/translator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewriteValue(t *testing.T) {
	tests := []struct {
		in     string
		to     translator.Format
		expect string
		n      int
	}{
		{"1px solid red", translator.FormatHEX, "1px solid #FF0000", 1},
		{"RED", translator.FormatHEX, "#FF0000", 1},
		{"hsl(120deg 100% 50%)", translator.FormatRGB, "rgb(0 255 0)", 1},
		{"#00F", translator.FormatHSL, "hsl(240 100% 50%)", 1},
		{
			"linear-gradient(to right, rgb(255 0 0), #00F 50%)", translator.FormatHEX,
			"linear-gradient(to right, #FF0000, #0000FF 50%)", 2,
		},
		{"var(--accent)", translator.FormatHEX, "var(--accent)", 0},
		{"rgb(var(--r) 0 0)", translator.FormatHEX, "rgb(var(--r) 0 0)", 0},
		{"rgb(255 0 0", translator.FormatHEX, "rgb(255 0 0", 0},
		{"solid transparent", translator.FormatHEX, "solid transparent", 0},
		{"12px", translator.FormatHEX, "12px", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			s, n := RewriteValue(tt.in, tt.to)
			assert.Equal(t, tt.expect, s)
			assert.Equal(t, tt.n, n)
		})
	}

	s, n := RewriteValue("rgb(255 0 0 / 0.5)", translator.FormatRGB, translator.WithLegacy(true))
	assert.Equal(t, "rgba(255, 0, 0, 0.5)", s)
	assert.Equal(t, 1, n)
}

func TestRewrite(t *testing.T) {
	s, n, err := Rewrite("a { color: red; background: #00F }", translator.FormatHEX)
	require.NoError(t, err)
	assert.Equal(t, "a {\n  color: #FF0000;\n  background: #0000FF;\n}", s)
	assert.Equal(t, 2, n)

	src := `
p, li { color: red !important; border: 1px solid hsl(0 100% 50%) }
@media print {
  h1 { color: #00F }
}
`
	s, n, err = Rewrite(src, translator.FormatRGB)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Contains(t, s, "color: rgb(255 0 0) !important;")
	assert.Contains(t, s, "border: 1px solid rgb(255 0 0);")
	assert.Contains(t, s, "color: rgb(0 0 255);")
	assert.Contains(t, s, "@media print {")

	_, _, err = Rewrite("} a { color: red }", translator.FormatHEX)
	assert.Error(t, err)
}

func TestRewriteNonColorProperties(t *testing.T) {
	src := `
@keyframes tomato { from { opacity: 0 } to { opacity: 1 } }
.a { animation: tomato 1s; font-family: tan, serif; border-top: 1px solid Tan; box-shadow: 0 0 2px navy }
.b { animation-name: tomato; grid-area: red; color: tan; text-shadow: 1px 1px #000 }
`
	s, n, err := Rewrite(src, translator.FormatHEX)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Contains(t, s, "animation: tomato 1s;")
	assert.Contains(t, s, "font-family: tan, serif;")
	assert.Contains(t, s, "border-top: 1px solid #D2B48C;")
	assert.Contains(t, s, "box-shadow: 0 0 2px #000080;")
	assert.Contains(t, s, "animation-name: tomato;")
	assert.Contains(t, s, "grid-area: red;")
	assert.Contains(t, s, "color: #D2B48C;")
	assert.Contains(t, s, "text-shadow: 1px 1px #000000;")
}

func TestIsColorProperty(t *testing.T) {
	for _, p := range []string{"color", "COLOR", "background", "background-color", "border-left", "outline-color", "box-shadow", "text-shadow", "fill", "column-rule-color", "text-decoration-color"} {
		assert.True(t, IsColorProperty(p), p)
	}
	for _, p := range []string{"animation", "animation-name", "font-family", "grid-area", "counter-reset", "will-change", "--accent", "width"} {
		assert.False(t, IsColorProperty(p), p)
	}
}
