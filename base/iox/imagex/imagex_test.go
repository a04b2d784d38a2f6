// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"bytes"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtToFormat(t *testing.T) {
	for ext, f := range map[string]Formats{".png": PNG, "JPG": JPEG, "tif": TIFF, ".bmp": BMP, "webp": WebP, "gif": GIF} {
		got, err := ExtToFormat(ext)
		assert.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := ExtToFormat("")
	assert.Error(t, err)
	_, err = ExtToFormat(".svg")
	assert.Error(t, err)
	assert.Equal(t, "tiff", TIFF.String())
}

func TestSwatches(t *testing.T) {
	red := color.NRGBA{255, 0, 0, 255}
	blue := color.NRGBA{0, 0, 255, 128}
	im := Swatches([]color.Color{red, blue}, 4)
	assert.Equal(t, 8, im.Bounds().Dx())
	assert.Equal(t, 4, im.Bounds().Dy())
	assert.Equal(t, red, im.NRGBAAt(3, 3))
	assert.Equal(t, blue, im.NRGBAAt(4, 0))

	assert.Equal(t, 4, Swatches(nil, 4).Bounds().Dx())
}

func TestSaveOpen(t *testing.T) {
	im := Swatches([]color.Color{color.NRGBA{0, 128, 0, 255}}, 2)
	for _, ext := range []string{".png", ".bmp", ".tiff"} {
		fn := filepath.Join(t.TempDir(), "swatch"+ext)
		require.NoError(t, Save(im, fn))
		got, f, err := Open(fn)
		require.NoError(t, err)
		assert.Equal(t, ext[1:], f.String())
		r, g, b, a := got.At(1, 1).RGBA()
		assert.Equal(t, [4]uint32{0, 0x8080, 0, 0xffff}, [4]uint32{r, g, b, a})
	}

	var buf bytes.Buffer
	assert.Error(t, Write(im, &buf, WebP))
	assert.Error(t, Save(im, filepath.Join(t.TempDir(), "swatch.svg")))
}
