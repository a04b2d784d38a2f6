// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/colortranslator/base/errors"
	"cogentcore.org/colortranslator/stylesheet"
	"cogentcore.org/colortranslator/translator"
	"github.com/spf13/cobra"
)

func newCSSCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "css [file|-]",
		Short: "Rewrite the colors of a stylesheet into one format",
		Long: `css reads a stylesheet from the given file, or from standard input
when the file is "-" or missing, and prints it with every color in the
first format given with --to, which defaults to hex.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			to := translator.FormatHEX
			if len(c.To) > 0 {
				to = c.To[0]
			}
			src, err := readSource(cmd, args)
			if err != nil {
				return err
			}
			out, n, err := stylesheet.Rewrite(string(src), to, translator.WithOptions(c.Options))
			if err != nil {
				return err
			}
			slog.Info("rewrote colors", "count", n, "format", to)
			errors.Log1(fmt.Fprintln(cmd.OutOrStdout(), out))
			return nil
		},
	}
}

func readSource(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(args[0])
}
