// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package translator

import (
	"maps"
	"regexp"
	"strings"

	"cogentcore.org/colortranslator/colors/units"
)

// CustomOutputs are custom output templates by format.
type CustomOutputs map[Format]CustomOutput

// CustomOutput prints a color with a template instead of the
// built in CSS syntax. Each {{channel}} placeholder of the template,
// matched case insensitively, is replaced by the channel value.
type CustomOutput struct {

	// Template is used when the color is opaque.
	Template string `toml:"template" yaml:"template"`

	// TemplateWithAlpha is used when the color is not opaque.
	TemplateWithAlpha string `toml:"template_with_alpha" yaml:"template_with_alpha"`

	// Values are the settings of each channel by lower case name,
	// such as "r", "h" or "alpha".
	Values map[string]ChannelOutput `toml:"values" yaml:"values"`
}

// ChannelOutput are the settings of a channel in a [CustomOutput].
type ChannelOutput struct {

	// From and To remap the channel from the legal range of its color
	// space to [From, To]. Both must be set for the remap to happen.
	From *float64 `toml:"from" yaml:"from"`
	To   *float64 `toml:"to" yaml:"to"`

	// MaxDigits is the maximum number of decimal digits of the channel.
	// It defaults to [Options.MaxDigits].
	MaxDigits *int `toml:"max_digits" yaml:"max_digits"`

	// Suffix is printed after the channel value.
	Suffix string `toml:"suffix" yaml:"suffix"`
}

// placeholder matches template placeholders.
var placeholder = regexp.MustCompile(`\{\{(\w+)\}\}`)

// merge returns c with the set fields of o replacing its own.
func (c ChannelOutput) merge(o ChannelOutput) ChannelOutput {
	if o.From != nil {
		c.From = o.From
	}
	if o.To != nil {
		c.To = o.To
	}
	if o.MaxDigits != nil {
		c.MaxDigits = o.MaxDigits
	}
	if o.Suffix != "" {
		c.Suffix = o.Suffix
	}
	return c
}

// merge returns c with the set templates and channels of o
// replacing its own. The channels are merged one by one.
func (c CustomOutput) merge(o CustomOutput) CustomOutput {
	if o.Template != "" {
		c.Template = o.Template
	}
	if o.TemplateWithAlpha != "" {
		c.TemplateWithAlpha = o.TemplateWithAlpha
	}
	values := maps.Clone(c.Values)
	if values == nil {
		values = map[string]ChannelOutput{}
	}
	for name, v := range o.Values {
		name = strings.ToLower(name)
		values[name] = values[name].merge(v)
	}
	c.Values = values
	return c
}

// customOutput returns the custom output of the given format merged
// onto its defaults, if the format has a custom output.
func (o *Options) customOutput(f Format) (CustomOutput, bool) {
	c, ok := o.CustomOutputs[f]
	if !ok {
		return CustomOutput{}, false
	}
	return defaultCustomOutputs[f].merge(c), true
}

// render prints the channels with the template.
func (c CustomOutput) render(chs []channel, digits int) string {
	tmpl := c.Template
	if !opaqueAlpha(chs[len(chs)-1], digits) {
		tmpl = c.TemplateWithAlpha
	}
	values := map[string]string{}
	for _, ch := range chs {
		if co, ok := c.Values[ch.name]; ok {
			values[ch.name] = co.format(ch, digits)
		}
	}
	return placeholder.ReplaceAllStringFunc(tmpl, func(m string) string {
		if v, ok := values[strings.ToLower(m[2:len(m)-2])]; ok {
			return v
		}
		return m
	})
}

// format prints one channel.
func (co ChannelOutput) format(ch channel, digits int) string {
	if ch.kind == hexChannel {
		return ch.hex + co.Suffix
	}
	v := ch.value
	if co.From != nil && co.To != nil && ch.max != ch.min {
		v = *co.From + (v-ch.min)/(ch.max-ch.min)*(*co.To-*co.From)
	}
	if co.MaxDigits != nil {
		digits = *co.MaxDigits
	}
	return units.FormatRound(v, digits) + co.Suffix
}

// opaqueAlpha returns whether an alpha channel prints as opaque.
func opaqueAlpha(ch channel, digits int) bool {
	if ch.kind == hexChannel {
		return ch.hex == "FF"
	}
	return units.Round(ch.value, digits) == 1
}

func ptr[T any](v T) *T { return &v }

// percentOutput prints a unit interval channel as a percentage.
var percentOutput = ChannelOutput{From: ptr(0.0), To: ptr(100.0), Suffix: "%"}

// channelOutputs returns empty channel outputs for the given channels.
func channelOutputs(names ...string) map[string]ChannelOutput {
	m := make(map[string]ChannelOutput, len(names))
	for _, n := range names {
		m[n] = ChannelOutput{}
	}
	return m
}

// defaultCustomOutputs are the defaults that custom outputs are
// merged onto. They print the same as the built in modern syntax
// with unlimited angle units.
var defaultCustomOutputs = CustomOutputs{
	FormatRGB: {
		Template:          "rgb({{r}} {{g}} {{b}})",
		TemplateWithAlpha: "rgb({{r}} {{g}} {{b}} / {{alpha}})",
		Values:            channelOutputs("r", "g", "b", "alpha"),
	},
	FormatHEX: {
		Template:          "#{{r}}{{g}}{{b}}",
		TemplateWithAlpha: "#{{r}}{{g}}{{b}}{{alpha}}",
		Values:            channelOutputs("r", "g", "b", "alpha"),
	},
	FormatHEX0x: {
		Template:          "0x{{r}}{{g}}{{b}}",
		TemplateWithAlpha: "0x{{r}}{{g}}{{b}}{{alpha}}",
		Values:            channelOutputs("r", "g", "b", "alpha"),
	},
	FormatHSL: {
		Template:          "hsl({{h}} {{s}} {{l}})",
		TemplateWithAlpha: "hsl({{h}} {{s}} {{l}} / {{alpha}})",
		Values:            map[string]ChannelOutput{"h": {}, "s": percentOutput, "l": percentOutput, "alpha": {}},
	},
	FormatHWB: {
		Template:          "hwb({{h}} {{w}} {{b}})",
		TemplateWithAlpha: "hwb({{h}} {{w}} {{b}} / {{alpha}})",
		Values:            map[string]ChannelOutput{"h": {}, "w": percentOutput, "b": percentOutput, "alpha": {}},
	},
	FormatLAB: {
		Template:          "lab({{l}} {{a}} {{b}})",
		TemplateWithAlpha: "lab({{l}} {{a}} {{b}} / {{alpha}})",
		Values:            channelOutputs("l", "a", "b", "alpha"),
	},
	FormatLCH: {
		Template:          "lch({{l}} {{c}} {{h}})",
		TemplateWithAlpha: "lch({{l}} {{c}} {{h}} / {{alpha}})",
		Values:            channelOutputs("l", "c", "h", "alpha"),
	},
	FormatOKLAB: {
		Template:          "oklab({{l}} {{a}} {{b}})",
		TemplateWithAlpha: "oklab({{l}} {{a}} {{b}} / {{alpha}})",
		Values:            channelOutputs("l", "a", "b", "alpha"),
	},
	FormatOKLCH: {
		Template:          "oklch({{l}} {{c}} {{h}})",
		TemplateWithAlpha: "oklch({{l}} {{c}} {{h}} / {{alpha}})",
		Values:            channelOutputs("l", "c", "h", "alpha"),
	},
	FormatCMYK: {
		Template:          "device-cmyk({{c}} {{m}} {{y}} {{k}})",
		TemplateWithAlpha: "device-cmyk({{c}} {{m}} {{y}} {{k}} / {{alpha}})",
		Values:            channelOutputs("c", "m", "y", "k", "alpha"),
	},
	FormatA98: {
		Template:          "color(a98-rgb {{r}} {{g}} {{b}})",
		TemplateWithAlpha: "color(a98-rgb {{r}} {{g}} {{b}} / {{alpha}})",
		Values:            channelOutputs("r", "g", "b", "alpha"),
	},
}
