package image

import "image"

// CanEncode reports whether a message of messageLength bytes fits in an image made of pixelCount pixels
func CanEncode(pixelCount, messageLength int) bool {
	return messageLength*pixelsPerByte <= pixelCount
}

// Capacity returns how many message bytes img can hold
func Capacity(img *image.NRGBA) int {
	return pixelCount(img.Bounds()) / pixelsPerByte
}

func pixelCount(bounds image.Rectangle) int {
	return bounds.Dx() * bounds.Dy()
}
