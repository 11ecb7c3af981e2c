package image

import (
	"image"
	"psteg/internal/bits"
)

const (
	channelsPerPixel = 4
	lsbsPerChannel   = 2
	lsbMask          = byte(1<<lsbsPerChannel - 1)

	// 4 channels with 2 LSBs each hold exactly one byte
	pixelsPerByte = 1

	// emptyMarker is the byte read back from a pixel that carries no part of the message
	emptyMarker = byte(0)
)

// storeByteInPixel splits b into 2 bit groups, least significant group first, and puts group i into the LSBs of
// channel i. The upper 6 bits of every channel keep their original value
func storeByteInPixel(b byte, pixel []uint8) {
	br := bits.NewBitReader([]byte{b})
	for c := 0; c < channelsPerPixel; c++ {
		pixel[c] = pixel[c] - pixel[c]&lsbMask + br.ReadBits(lsbsPerChannel)
	}
}

// byteFromPixel is the inverse of storeByteInPixel
func byteFromPixel(pixel []uint8) byte {
	var b byte
	for c := channelsPerPixel - 1; c >= 0; c-- {
		b = b<<lsbsPerChannel | pixel[c]&lsbMask
	}
	return b
}

// scanColumnMajor calls visit for every pixel in bounds, with x as the outer loop and y as the inner one. When visit
// returns false the rest of the current column is skipped and the scan resumes at the top of the next column
func scanColumnMajor(bounds image.Rectangle, visit func(x, y int) bool) {
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			if !visit(x, y) {
				break
			}
		}
	}
}

func pixelAt(img *image.NRGBA, x, y int) []uint8 {
	offset := img.PixOffset(x, y)
	return img.Pix[offset : offset+channelsPerPixel : offset+channelsPerPixel]
}
