// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"strings"

	"cogentcore.org/colortranslator/base/errors"
	"cogentcore.org/colortranslator/base/iox/imagex"
	"cogentcore.org/colortranslator/colors/named"
	"cogentcore.org/colortranslator/translator"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newConvertCmd(f *flags) *cobra.Command {
	var palette string
	cmd := &cobra.Command{
		Use:   "convert <color>...",
		Short: "Print colors in other formats",
		Example: `  colortranslate convert "#FF0000" "hsl(120 50% 50%)"
  colortranslate convert --to oklch,hex --angle-unit deg red`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			var errs []error
			var colors []color.Color
			for _, arg := range args {
				t, err := translator.New(arg, translator.WithOptions(c.Options))
				if err != nil {
					errs = append(errs, err)
					continue
				}
				printColor(w, arg, t, &c)
				colors = append(colors, t)
			}
			if palette != "" && len(colors) > 0 {
				if err := imagex.Save(imagex.Swatches(colors, swatchSize), palette); err != nil {
					errs = append(errs, err)
				} else {
					slog.Info("saved palette", "file", palette, "colors", len(colors))
				}
			}
			return errors.Join(errs...)
		},
	}
	cmd.Flags().StringVar(&palette, "palette", "", "save an image of the colors (.png, .jpg, .gif, .tiff or .bmp)")
	return cmd
}

// swatchSize is the size in pixels of each color in a palette image.
const swatchSize = 32

// printColor prints the color in each format of the config.
func printColor(w io.Writer, input string, t *translator.Translator, c *Config) {
	var sb strings.Builder
	sb.WriteString(input)
	if c.Swatch {
		sb.WriteString(" " + swatch(w, t))
	}
	sb.WriteByte('\n')
	for _, f := range c.Formats() {
		fmt.Fprintf(&sb, "  %-6s %s\n", f, t.StringAs(f))
	}
	errors.Log1(io.WriteString(w, sb.String()))
}

// swatch returns a block with the color as its background,
// in the best color profile of the output.
func swatch(w io.Writer, t *translator.Translator) string {
	out := termenv.NewOutput(w)
	h := t.HEX()
	return out.String("    ").Background(out.Color("#" + h.R + h.G + h.B)).String()
}

func newNamedCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "named <color>...",
		Short: "Print the nearest CSS named color of colors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, arg := range args {
				t, err := translator.New(arg, translator.WithOptions(c.Options))
				if err != nil {
					return err
				}
				lab := t.LAB()
				name, d := named.Nearest(lab.L, lab.A, lab.B)
				errors.Log1(fmt.Fprintf(w, "%s\t%s\tdeltaE %.2f\n", arg, name, d))
			}
			return nil
		},
	}
}
