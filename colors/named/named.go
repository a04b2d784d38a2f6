// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package named provides the CSS named colors in the LAB color space,
// along with nearest named color lookup and name suggestions.
package named

import (
	"image/color"
	"math"
	"slices"

	"cogentcore.org/colortranslator/colors/cam/cie"
	"cogentcore.org/colortranslator/colors/units"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"golang.org/x/image/colornames"
)

// LAB is a named color in the LAB color space.
type LAB struct {
	L, A, B float64
}

// extra are the CSS named colors missing from [colornames.Map].
var extra = map[string]color.RGBA{
	"rebeccapurple": {0x66, 0x33, 0x99, 0xff},
}

var (
	// table maps every named color to its LAB value.
	table = make(map[string]LAB, len(colornames.Map)+len(extra))

	// names are the keys of table in alphabetical order.
	names []string
)

func init() {
	add := func(name string, c color.RGBA) {
		l, a, b := cie.SRGB100ToLAB(units.ByteToRange(float64(c.R)), units.ByteToRange(float64(c.G)), units.ByteToRange(float64(c.B)))
		table[name] = LAB{l, a, b}
		names = append(names, name)
	}
	for name, c := range colornames.Map {
		add(name, c)
	}
	for name, c := range extra {
		add(name, c)
	}
	slices.Sort(names)
}

// Names returns the names of all named colors, in alphabetical order.
func Names() []string { return slices.Clone(names) }

// Lookup returns the LAB value of the given named color.
// Names are case sensitive and all lower case.
func Lookup(name string) (LAB, bool) {
	c, ok := table[name]
	return c, ok
}

// Nearest returns the named color with the smallest deltaE from the
// given LAB color, along with that deltaE. Ties go to the name that
// comes first alphabetically.
func Nearest(l, a, b float64) (string, float64) {
	best, minD := "", math.Inf(1)
	for _, name := range names {
		c := table[name]
		if d := cie.DeltaE(l, a, b, c.L, c.A, c.B); d < minD {
			best, minD = name, d
		}
	}
	return best, minD
}

// SuggestThreshold is the minimum similarity for [Suggest] to return a name.
var SuggestThreshold = 0.6

// Suggest returns the named color whose name is most similar to the
// given text, for "did you mean" messages. It returns false if no
// name is at least [SuggestThreshold] similar.
func Suggest(s string) (string, bool) {
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	best, maxSim := "", 0.0
	for _, name := range names {
		if sim := strutil.Similarity(s, name, lev); sim > maxSim {
			best, maxSim = name, sim
		}
	}
	if maxSim < SuggestThreshold || s == best {
		return "", false
	}
	return best, true
}
