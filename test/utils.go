package test

import (
	"image"
	"image/color"
	"math/rand"
	"unicode/utf8"
)

// multiByteRunes are mixed into generated text so messages exercise 2, 3 and 4 byte UTF-8 sequences
var multiByteRunes = []rune{'é', 'ß', 'Ж', 'ह', '漢', '字', '€', '🙂', '🦀'}

func GenerateRandomBytes(numOfBytesToGenerate int) []byte {
	generatedBytes := make([]byte, numOfBytesToGenerate)
	_, err := rand.Read(generatedBytes)
	if err != nil {
		panic(err)
	}
	return generatedBytes
}

// GenerateRandomText returns exactly numOfBytesToGenerate bytes of valid UTF-8 text which never contains a zero byte
func GenerateRandomText(numOfBytesToGenerate int) []byte {
	text := make([]byte, 0, numOfBytesToGenerate)
	for len(text) < numOfBytesToGenerate {
		r := rune(rand.Intn(0x7E) + 1)
		if rand.Intn(4) == 0 {
			r = multiByteRunes[rand.Intn(len(multiByteRunes))]
		}
		if len(text)+utf8.RuneLen(r) > numOfBytesToGenerate {
			r = rune(rand.Intn(0x7E) + 1)
		}
		text = utf8.AppendRune(text, r)
	}
	return text
}

// GenerateImage returns an image with random color and alpha values in every channel
func GenerateImage(bounds image.Rectangle) *image.NRGBA {
	img := image.NewNRGBA(bounds)
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			img.SetNRGBA(x, y, color.NRGBA{R: randUint8(), G: randUint8(), B: randUint8(), A: randUint8()})
		}
	}
	return img
}

func randUint8() uint8 {
	return uint8(rand.Intn(256))
}
