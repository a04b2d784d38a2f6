// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package translator

import (
	"cogentcore.org/colortranslator/base/errors"
	"cogentcore.org/colortranslator/colors/units"
	"github.com/jinzhu/copier"
)

// Options are the options of a [Translator] and of printing colors.
type Options struct {

	// Legacy prints rgb and hsl colors with comma separators.
	Legacy bool `toml:"legacy" yaml:"legacy"`

	// Spaced prints a space after separators.
	Spaced bool `toml:"spaced" yaml:"spaced"`

	// AngleUnit is the unit hues are printed in.
	AngleUnit units.AngleUnit `toml:"angle_unit" yaml:"angle_unit"`

	// MaxDigits is the maximum number of decimal digits printed.
	// Negative values print as 0.
	MaxDigits int `toml:"max_digits" yaml:"max_digits"`

	// LimitToColorSpace clamps channels to the legal range of their
	// color space when printing.
	LimitToColorSpace bool `toml:"limit_to_color_space" yaml:"limit_to_color_space"`

	// CacheInput makes a [Translator] print the format of its last input
	// from the input itself instead of converting it back from RGB.
	CacheInput bool `toml:"cache_input" yaml:"cache_input"`

	// CustomOutputs are templates replacing the built in syntax of formats.
	CustomOutputs CustomOutputs `toml:"custom_outputs" yaml:"custom_outputs"`
}

// Option changes [Options].
type Option func(o *Options)

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		Spaced:            true,
		AngleUnit:         units.AngleNone,
		MaxDigits:         2,
		LimitToColorSpace: true,
		CacheInput:        true,
	}
}

// Clone returns a deep copy of the options.
func (o Options) Clone() Options {
	var c Options
	errors.Log(copier.CopyWithOption(&c, &o, copier.Option{DeepCopy: true}))
	return c
}

// With returns a copy of the options with the given options applied.
func (o Options) With(opts ...Option) Options {
	c := o.Clone()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithLegacy sets [Options.Legacy].
func WithLegacy(legacy bool) Option {
	return func(o *Options) { o.Legacy = legacy }
}

// WithSpaced sets [Options.Spaced].
func WithSpaced(spaced bool) Option {
	return func(o *Options) { o.Spaced = spaced }
}

// WithAngleUnit sets [Options.AngleUnit].
func WithAngleUnit(u units.AngleUnit) Option {
	return func(o *Options) { o.AngleUnit = u }
}

// WithMaxDigits sets [Options.MaxDigits]. Negative digits are 0.
func WithMaxDigits(digits int) Option {
	return func(o *Options) { o.MaxDigits = max(digits, 0) }
}

// WithLimitToColorSpace sets [Options.LimitToColorSpace].
func WithLimitToColorSpace(limit bool) Option {
	return func(o *Options) { o.LimitToColorSpace = limit }
}

// WithCacheInput sets [Options.CacheInput].
func WithCacheInput(cache bool) Option {
	return func(o *Options) { o.CacheInput = cache }
}

// WithCustomOutput merges the given custom output into the one
// of the given format. Only the templates and channel settings
// that are set in c replace the current ones.
func WithCustomOutput(f Format, c CustomOutput) Option {
	return func(o *Options) {
		if o.CustomOutputs == nil {
			o.CustomOutputs = CustomOutputs{}
		}
		o.CustomOutputs[f] = o.CustomOutputs[f].merge(c)
	}
}

// WithOptions replaces all of the options.
func WithOptions(opts Options) Option {
	return func(o *Options) { *o = opts.Clone() }
}
