package image

import (
	"errors"
	"image"
	"image/color"
	"psteg/pkg/config"
	"psteg/test"
	"testing"
)

func TestDecodeHi(t *testing.T) {
	img := uniformImage(image.Rect(0, 0, 2, 2), color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	encoded, err := Encode([]byte("Hi"), img)
	if err != nil {
		t.Fatalf("Error encoding message: %s", err)
	}

	message, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Error decoding message: %s", err)
	}
	if message != "Hi" {
		t.Errorf("Expected %q, got %q", "Hi", message)
	}
}

func TestDecodeTruncatesAtZeroByte(t *testing.T) {
	// the whole message lands in the first column
	img := test.GenerateImage(image.Rect(0, 0, 4, 16))
	encoded, err := Encode([]byte("abc\x00def"), img)
	if err != nil {
		t.Fatalf("Error encoding message: %s", err)
	}

	message, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Error decoding message: %s", err)
	}
	if message != "abc" {
		t.Errorf("Expected message to stop at the zero byte, got %q", message)
	}
}

func TestDecodeZeroByteOnColumnBoundary(t *testing.T) {
	// height 3: "ab" fills column 0 until the zero byte at y=2, "cde" fills column 1
	img := test.GenerateImage(image.Rect(0, 0, 3, 3))
	encoded, err := Encode([]byte("ab\x00cde"), img)
	if err != nil {
		t.Fatalf("Error encoding message: %s", err)
	}

	// the zero byte only ends its own column, so bytes in later columns are still read
	if got := string(DecodeBytes(encoded)); got != "abcde" {
		t.Errorf("Expected %q, got %q", "abcde", got)
	}
}

func TestDecodeEndsEachColumnAtEmptyMarker(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 3))
	storeByteInPixel('a', pixelAt(img, 0, 0))
	// (0,1) is left as the empty marker, so (0,2) is never read
	storeByteInPixel('x', pixelAt(img, 0, 2))
	storeByteInPixel('b', pixelAt(img, 1, 0))
	storeByteInPixel('c', pixelAt(img, 1, 1))

	if got := string(DecodeBytes(img)); got != "abc" {
		t.Errorf("Expected %q, got %q", "abc", got)
	}
}

func TestDecodeInvalidText(t *testing.T) {
	img := test.GenerateImage(image.Rect(0, 0, 8, 8))
	encoded, err := Encode([]byte{'o', 'k', 0xC3, 0x28, 0xFF}, img)
	if err != nil {
		t.Fatalf("Error encoding message: %s", err)
	}

	message, err := Decode(encoded)
	if !errors.Is(err, ErrInvalidText) {
		t.Fatalf("Expected ErrInvalidText, got %v", err)
	}
	if message != "" {
		t.Errorf("Expected no message alongside the error, got %q", message)
	}

	if got := DecodeBytes(encoded); len(got) != 5 {
		t.Errorf("Raw bytes should still be recoverable, got %v", got)
	}
}

func TestDecodeEmptyImage(t *testing.T) {
	message, err := Decode(image.NewNRGBA(image.Rect(0, 0, 3, 3)))
	if err != nil {
		t.Fatalf("Error decoding blank image: %s", err)
	}
	if message != "" {
		t.Errorf("Expected no message in a blank image, got %q", message)
	}
}

func TestDecodeNilImage(t *testing.T) {
	if _, err := Decode(nil); !errors.Is(err, ErrNilImage) {
		t.Errorf("Expected ErrNilImage, got %v", err)
	}
	if _, err := NewImageDecoder(nil); !errors.Is(err, ErrNilImage) {
		t.Errorf("Expected ErrNilImage, got %v", err)
	}
	if DecodeBytes(nil) != nil {
		t.Errorf("Expected no bytes from a nil image")
	}
}

func TestFirstInvalidByte(t *testing.T) {
	for input, expected := range map[string]int{
		"":             0,
		"valid":        5,
		"ok\xC3\x28":   2,
		"€uro\xFF":     6,
		"\x80trailing": 0,
	} {
		if got := firstInvalidByte([]byte(input)); got != expected {
			t.Errorf("firstInvalidByte(%q) expected %d, got %d", input, expected, got)
		}
	}
}

func TestDecoderStats(t *testing.T) {
	img := test.GenerateImage(image.Rect(0, 0, 8, 8))
	encoder, err := NewImageEncoder(img, config.ImageEncodeConfig{})
	if err != nil {
		t.Fatalf("Error creating image encoder: %s", err)
	}
	if err = encoder.EncodeMessage([]byte("stats")); err != nil {
		t.Fatalf("Error encoding message: %s", err)
	}

	decoder, err := NewImageDecoder(encoder.EncodedImage())
	if err != nil {
		t.Fatalf("Error creating image decoder: %s", err)
	}
	message, err := decoder.DecodeMessage()
	if err != nil {
		t.Fatalf("Error decoding message: %s", err)
	}
	if message != "stats" || decoder.Stats().MessageBytes != 5 {
		t.Errorf("Unexpected result %q with stats %+v", message, decoder.Stats())
	}
}
