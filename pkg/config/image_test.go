package config

import (
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePngCompression(t *testing.T) {
	for name, expected := range map[string]png.CompressionLevel{
		"default": png.DefaultCompression,
		"none":    png.NoCompression,
		"fast":    png.BestSpeed,
		" Best ":  png.BestCompression,
	} {
		level, err := ParsePngCompression(name)
		assert.NoError(t, err, name)
		assert.Equal(t, expected, level, name)
	}

	_, err := ParsePngCompression("smallest")
	assert.ErrorIs(t, err, ErrUnknownPngCompression)
	assert.ErrorContains(t, err, "best, default, fast, none")
}

func TestPopulateUnsetConfigVars(t *testing.T) {
	c := ImageEncodeConfig{PngCompressionLevel: png.CompressionLevel(42)}
	c.PopulateUnsetConfigVars()
	assert.Equal(t, png.DefaultCompression, c.PngCompressionLevel)

	c = ImageEncodeConfig{PngCompressionLevel: png.NoCompression}
	c.PopulateUnsetConfigVars()
	assert.Equal(t, png.NoCompression, c.PngCompressionLevel)
}
