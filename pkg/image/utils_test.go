package image

import (
	"fmt"
	"image"
	"image/color"
	"psteg/internal/bits"
	"testing"
)

// testImageSizes covers single pixel, single row, single column, square and non-zero origin images
var testImageSizes = []image.Rectangle{
	image.Rect(0, 0, 1, 1),
	image.Rect(0, 0, 17, 1),
	image.Rect(0, 0, 1, 17),
	image.Rect(0, 0, 2, 2),
	image.Rect(0, 0, 31, 64),
	image.Rect(5, -3, 45, 27),
}

type testFunc func(t *testing.T, bounds image.Rectangle)

func runImageTestsWithAllSizes(t *testing.T, testFunc testFunc) {
	for _, bounds := range testImageSizes {
		boundsCopy := bounds
		t.Run(fmt.Sprintf("bounds=%v", bounds), func(t *testing.T) {
			t.Parallel()
			testFunc(t, boundsCopy)
		})
	}
}

func uniformImage(bounds image.Rectangle, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(bounds)
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// columnMajorPoints lists the coordinates of bounds in the order message bytes are laid out
func columnMajorPoints(bounds image.Rectangle) []image.Point {
	var points []image.Point
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			points = append(points, image.Point{X: x, Y: y})
		}
	}
	return points
}

// checkEncodedImageAgainstExpectedBytes walks the image independently of the codec and checks that every pixel holds
// the expected 2 bit groups of its byte, followed by empty markers
func checkEncodedImageAgainstExpectedBytes(t *testing.T, encoded *image.NRGBA, expectedEncodedBytes []byte) {
	t.Helper()

	for idx, p := range columnMajorPoints(encoded.Bounds()) {
		expectedByte := emptyMarker
		if idx < len(expectedEncodedBytes) {
			expectedByte = expectedEncodedBytes[idx]
		}

		pixel := encoded.NRGBAAt(p.X, p.Y)
		channels := [channelsPerPixel]uint8{pixel.R, pixel.G, pixel.B, pixel.A}
		testBitReader := bits.NewBitReader([]byte{expectedByte})
		for channelIdx, channel := range channels {
			expectedBits := testBitReader.ReadBits(lsbsPerChannel)
			if bitsToCheck := channel & lsbMask; bitsToCheck != expectedBits {
				t.Fatalf("Error in pixel %v channel %d for byte %#x, expected|got %d|%d",
					p, channelIdx, expectedByte, expectedBits, bitsToCheck)
			}
		}
	}
}

// checkUpperBitsPreserved verifies that only the LSBs used by the codec differ between src and encoded
func checkUpperBitsPreserved(t *testing.T, src, encoded *image.NRGBA) {
	t.Helper()

	if src.Bounds() != encoded.Bounds() {
		t.Fatalf("Bounds changed from %v to %v", src.Bounds(), encoded.Bounds())
	}
	for _, p := range columnMajorPoints(src.Bounds()) {
		srcPixel, encodedPixel := pixelAt(src, p.X, p.Y), pixelAt(encoded, p.X, p.Y)
		for c := 0; c < channelsPerPixel; c++ {
			if srcPixel[c]&^lsbMask != encodedPixel[c]&^lsbMask {
				t.Fatalf("Upper bits of pixel %v channel %d changed from %08b to %08b", p, c, srcPixel[c], encodedPixel[c])
			}
		}
	}
}
