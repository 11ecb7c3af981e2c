// Package imagefile loads carrier images into the 8 bit non-premultiplied pixel grid the codec works on, and writes
// encoded grids back out in a lossless container.
package imagefile

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/garyhouston/jpegsegs"
	_ "golang.org/x/image/bmp"
	"psteg/pkg/config"
)

type Format string

const (
	FormatPNG  Format = "png"
	FormatGIF  Format = "gif"
	FormatJPEG Format = "jpeg"
	FormatBMP  Format = "bmp"
)

var (
	ErrLossyCarrier            = errors.New("image is stored in a lossy format, which destroys any message hidden in it")
	ErrUnsupportedOutputFormat = errors.New("encoded images can only be saved as png")
)

// IsLossy reports whether saving pixels in format alters their low bits
func IsLossy(format Format) bool {
	return format == FormatJPEG
}

// Load decodes a png, gif, jpeg or bmp image and converts it to NRGBA
func Load(r io.Reader) (*image.NRGBA, Format, error) {
	return load(r, false)
}

// LoadForDecoding works like Load but refuses lossy carriers before spending time on decoding their pixels
func LoadForDecoding(r io.Reader) (*image.NRGBA, error) {
	img, _, err := load(r, true)
	return img, err
}

func LoadFile(filePath string) (*image.NRGBA, Format, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	return Load(f)
}

func LoadFileForDecoding(filePath string) (*image.NRGBA, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadForDecoding(f)
}

func load(r io.Reader, rejectLossy bool) (*image.NRGBA, Format, error) {
	br := bufio.NewReader(r)
	header, err := br.Peek(jpegsegs.HeaderSize)
	if err != nil {
		return nil, "", fmt.Errorf("reading image header: %w", err)
	}
	isJPEG := jpegsegs.IsJPEGHeader(header)
	if isJPEG && rejectLossy {
		return nil, FormatJPEG, ErrLossyCarrier
	}

	srcImage, format, err := image.Decode(br)
	if err != nil {
		return nil, "", err
	}
	if isJPEG {
		format = string(FormatJPEG)
	}
	return toNRGBA(srcImage), Format(format), nil
}

func toNRGBA(srcImage image.Image) *image.NRGBA {
	if img, ok := srcImage.(*image.NRGBA); ok {
		return img
	}

	// TODO: Work with 16-bit images, they are currently truncated to 8 bits per channel
	img := image.NewNRGBA(srcImage.Bounds())
	draw.Draw(img, img.Bounds(), srcImage, img.Bounds().Min, draw.Src)
	return img
}

// FormatFromPath checks that the output path names a format able to hold an encoded image. Paths without an extension
// are written as png
func FormatFromPath(outputPath string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(outputPath)); ext {
	case "", ".png":
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("%w, got %s", ErrUnsupportedOutputFormat, ext)
	}
}

// Write saves img as a png, the only supported container that keeps all four 8 bit channels intact. Alpha is lost
// when golang.org/x/image/bmp reads back the bmp files it writes, so bmp is accepted as input only
func Write(w io.Writer, img *image.NRGBA, iConfig config.ImageEncodeConfig) error {
	iConfig.PopulateUnsetConfigVars()
	enc := png.Encoder{CompressionLevel: iConfig.PngCompressionLevel}
	return enc.Encode(w, img)
}

func WriteFile(outputPath string, img *image.NRGBA, iConfig config.ImageEncodeConfig) error {
	if _, err := FormatFromPath(outputPath); err != nil {
		return err
	}

	outputFile, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	if err = Write(outputFile, img, iConfig); err != nil {
		outputFile.Close()
		return err
	}
	return outputFile.Close()
}
