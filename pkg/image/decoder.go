package image

import (
	"errors"
	"fmt"
	"image"
	"psteg/pkg/model"
	"time"
	"unicode/utf8"
)

var (
	ErrInvalidText = errors.New("decoded message is not valid UTF-8 text, the image was likely not encoded using psteg")
)

// DecodeBytes collects the bytes stored in img using the same column-major order as Encode. An empty marker ends the
// current column only, the scan carries on at the top of the next one.
//
// A message byte of 0 cannot be told apart from the empty marker, so messages containing one are cut short
func DecodeBytes(img *image.NRGBA) []byte {
	if img == nil {
		return nil
	}

	var decoded []byte
	scanColumnMajor(img.Bounds(), func(x, y int) bool {
		b := byteFromPixel(pixelAt(img, x, y))
		if b == emptyMarker {
			return false
		}
		decoded = append(decoded, b)
		return true
	})
	return decoded
}

// Decode recovers the text message hidden in img
func Decode(img *image.NRGBA) (string, error) {
	if img == nil {
		return "", ErrNilImage
	}

	decoded := DecodeBytes(img)
	if !utf8.Valid(decoded) {
		return "", fmt.Errorf("%w: invalid byte sequence at offset %d", ErrInvalidText, firstInvalidByte(decoded))
	}
	return string(decoded), nil
}

func firstInvalidByte(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(b)
}

// Decoder wraps Decode with timing stats
type Decoder struct {
	image *image.NRGBA
	stats model.DecodeStats
}

func NewImageDecoder(img *image.NRGBA) (*Decoder, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	return &Decoder{image: img}, nil
}

func (d *Decoder) Stats() model.DecodeStats {
	return d.stats
}

func (d *Decoder) DecodeMessage() (string, error) {
	decodeStart := time.Now()
	defer func() {
		d.stats.DataDecoding = time.Since(decodeStart)
	}()

	message, err := Decode(d.image)
	if err != nil {
		return "", err
	}
	d.stats.MessageBytes = len(message)
	return message, nil
}
