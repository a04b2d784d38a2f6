// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cogentcore.org/colortranslator/base/logx"
	"cogentcore.org/colortranslator/colors/units"
	"github.com/spf13/cobra"
)

// flags are the command line flags shared by all commands.
type flags struct {
	config    string
	to        []string
	legacy    bool
	spaced    bool
	angleUnit units.AngleUnit
	digits    int
	noLimit   bool
	noCache   bool
	swatch    bool

	verbose bool
	debug   bool
	quiet   bool
}

func newRootCmd() *cobra.Command {
	f := &flags{angleUnit: units.AngleNone}
	cmd := &cobra.Command{
		Use:   "colortranslate",
		Short: "Convert colors between CSS color formats",
		Long: `colortranslate reads colors in any CSS color syntax, such as
"#FF0000", "hsl(0 100% 50%)", "oklch(0.63 0.26 29.23)" or "red", and
prints them in RGB, HEX, HSL, HWB, CIE LAB and LCH, OKLAB, OKLCH,
device CMYK and A98 RGB.`,
		// errors are already reported by cobra
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(f.debug, f.verbose, f.quiet)
			logx.SetDefaultLogger()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&f.config, "config", "", "config file in TOML (.toml) or YAML (.yaml, .yml)")
	pf.StringSliceVar(&f.to, "to", nil, "formats to print (default all)")
	pf.BoolVar(&f.legacy, "legacy", false, "print rgb and hsl colors with commas")
	pf.BoolVar(&f.spaced, "spaced", true, "print a space after separators")
	pf.Var(&f.angleUnit, "angle-unit", "unit of hues: none, deg, grad, rad or turn")
	pf.IntVar(&f.digits, "digits", 2, "maximum number of decimal digits")
	pf.BoolVar(&f.noLimit, "no-limit", false, "do not clamp channels to their color space")
	pf.BoolVar(&f.noCache, "no-cache", false, "convert the input format back from RGB")
	pf.BoolVar(&f.swatch, "swatch", false, "print a swatch of each color")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "print informational messages")
	pf.BoolVar(&f.debug, "vv", false, "print debug messages")
	pf.BoolVarP(&f.quiet, "quiet", "q", false, "only print errors")

	cmd.AddCommand(newConvertCmd(f), newCSSCmd(f), newNamedCmd(f))
	return cmd
}
