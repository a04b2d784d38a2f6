// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Legacy    bool                  `toml:"legacy"`
	AngleUnit string                `toml:"angle_unit"`
	MaxDigits int                   `toml:"max_digits"`
	Outputs   map[string]testOutput `toml:"outputs"`
}

type testOutput struct {
	Template string `toml:"template"`
}

func TestReadBytes(t *testing.T) {
	src := `
legacy = true
angle_unit = "turn"
max_digits = 3

[outputs.rgb]
template = "{{r}},{{g}},{{b}}"
`
	var cfg testConfig
	require.NoError(t, ReadBytes(&cfg, []byte(src)))
	assert.True(t, cfg.Legacy)
	assert.Equal(t, "turn", cfg.AngleUnit)
	assert.Equal(t, 3, cfg.MaxDigits)
	assert.Equal(t, "{{r}},{{g}},{{b}}", cfg.Outputs["rgb"].Template)
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "colors.toml")
	cfg := testConfig{AngleUnit: "deg", MaxDigits: 1, Outputs: map[string]testOutput{"hsl": {Template: "{{h}}"}}}
	require.NoError(t, Save(&cfg, fn))

	var got testConfig
	require.NoError(t, Open(&got, fn))
	assert.Equal(t, cfg, got)

	got.MaxDigits = 9
	require.NoError(t, OpenFiles(&got, fn))
	assert.Equal(t, 1, got.MaxDigits)
	assert.Error(t, OpenFiles(&got, fn, filepath.Join(t.TempDir(), "missing.toml")))
}
