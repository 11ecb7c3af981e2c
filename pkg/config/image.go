package config

import (
	"errors"
	"fmt"
	"image/png"
	"sort"
	"strings"
)

var (
	ErrUnknownPngCompression = errors.New("unknown png compression")

	pngCompressionMapping = map[string]png.CompressionLevel{
		"default": png.DefaultCompression,
		"none":    png.NoCompression,
		"fast":    png.BestSpeed,
		"best":    png.BestCompression,
	}
)

type ImageEncodeConfig struct {
	PngCompressionLevel png.CompressionLevel
}

// PopulateUnsetConfigVars replaces values png.Encoder does not understand with their defaults
func (c *ImageEncodeConfig) PopulateUnsetConfigVars() {
	switch c.PngCompressionLevel {
	case png.DefaultCompression, png.NoCompression, png.BestSpeed, png.BestCompression:
	default:
		c.PngCompressionLevel = png.DefaultCompression
	}
}

// ParsePngCompression maps one of default, none, fast or best to the matching png.CompressionLevel
func ParsePngCompression(name string) (png.CompressionLevel, error) {
	level, found := pngCompressionMapping[strings.ToLower(strings.TrimSpace(name))]
	if !found {
		return png.DefaultCompression, fmt.Errorf("%w %q, options are %s", ErrUnknownPngCompression, name,
			strings.Join(PngCompressionNames(), ", "))
	}
	return level, nil
}

func PngCompressionNames() []string {
	names := make([]string, 0, len(pngCompressionMapping))
	for name := range pngCompressionMapping {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
