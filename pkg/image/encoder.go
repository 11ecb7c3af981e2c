package image

import (
	"errors"
	"fmt"
	"image"
	"io"
	"psteg/pkg/config"
	"psteg/pkg/imagefile"
	"psteg/pkg/model"
	"time"
)

var (
	ErrImageNotBigEnough = errors.New("supplied image not big enough to contain the supplied message, either choose a larger image or a shorter message")
	ErrNilImage          = errors.New("no image supplied")
	ErrNothingEncoded    = errors.New("no message has been encoded yet")
)

// Encode hides message in a copy of img, one byte per pixel in column-major order. Every pixel after the end of the
// message is set to the empty marker. img itself is never modified
func Encode(message []byte, img *image.NRGBA) (*image.NRGBA, error) {
	if img == nil {
		return nil, ErrNilImage
	}

	bounds := img.Bounds()
	if !CanEncode(pixelCount(bounds), len(message)) {
		return nil, fmt.Errorf("%w: message is %d bytes but the image holds %d", ErrImageNotBigEnough,
			len(message), Capacity(img))
	}

	encoded := image.NewNRGBA(bounds)
	var messageIdx int
	scanColumnMajor(bounds, func(x, y int) bool {
		byteToStore := emptyMarker
		if messageIdx < len(message) {
			byteToStore = message[messageIdx]
			messageIdx++
		}

		pixel := pixelAt(encoded, x, y)
		copy(pixel, pixelAt(img, x, y))
		storeByteInPixel(byteToStore, pixel)
		return true
	})

	return encoded, nil
}

// Encoder wraps Encode with timing stats and output image encoding
type Encoder struct {
	image   *image.NRGBA
	encoded *image.NRGBA
	config  config.ImageEncodeConfig
	stats   model.EncodeStats
}

func NewImageEncoder(img *image.NRGBA, iConfig config.ImageEncodeConfig) (*Encoder, error) {
	if img == nil {
		return nil, ErrNilImage
	}

	setupStart := time.Now()
	iConfig.PopulateUnsetConfigVars()
	enc := &Encoder{
		image:  img,
		config: iConfig,
	}
	enc.stats.CapacityBytes = Capacity(img)
	enc.stats.Setup = time.Since(setupStart)
	return enc, nil
}

func (e *Encoder) Stats() model.EncodeStats {
	return e.stats
}

// EncodeMessage encodes message into a fresh copy of the source image. Calling it again replaces the previous result
func (e *Encoder) EncodeMessage(message []byte) error {
	encodeStart := time.Now()
	defer func() {
		e.stats.DataEncoding = time.Since(encodeStart)
	}()

	encoded, err := Encode(message, e.image)
	if err != nil {
		return err
	}

	e.encoded = encoded
	e.stats.MessageBytes = len(message)
	return nil
}

// EncodedImage returns the result of the last successful EncodeMessage call, or nil
func (e *Encoder) EncodedImage() *image.NRGBA {
	return e.encoded
}

func (e *Encoder) WriteEncoded(output io.Writer) error {
	if e.encoded == nil {
		return ErrNothingEncoded
	}

	imageEncodeStart := time.Now()
	defer func() {
		e.stats.OutputImageEncoding = time.Since(imageEncodeStart)
	}()
	return imagefile.Write(output, e.encoded, e.config)
}
