// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestHandler(t *testing.T) {
	old := UserLevel
	defer func() { UserLevel = old }()
	UserLevel = slog.LevelInfo

	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, termenv.WithProfile(termenv.Ascii)))
	l.Debug("hidden")
	l.Info("parsed color", "input", "#FF0000")
	l.With("format", "hsl").WithGroup("cache").Warn("miss", "slot", 1)

	assert.Equal(t, "INFO parsed color input=#FF0000\nWARN miss format=hsl cache.slot=1\n", buf.String())
}
