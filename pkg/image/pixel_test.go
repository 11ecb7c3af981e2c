package image

import (
	"image"
	"testing"
)

func TestStoreByteInPixelRoundTrip(t *testing.T) {
	for _, base := range [][channelsPerPixel]uint8{{0, 0, 0, 0}, {255, 255, 255, 255}, {0x5A, 0xA5, 0x13, 0xEC}} {
		for b := 0; b < 256; b++ {
			pixel := base
			storeByteInPixel(byte(b), pixel[:])

			if got := byteFromPixel(pixel[:]); got != byte(b) {
				t.Fatalf("Stored %#x in pixel %v, read back %#x", b, base, got)
			}
			for c := range pixel {
				if pixel[c]&^lsbMask != base[c]&^lsbMask {
					t.Fatalf("Storing %#x changed upper bits of channel %d: %08b -> %08b", b, c, base[c], pixel[c])
				}
			}
		}
	}
}

func TestStoreByteInPixelLayout(t *testing.T) {
	// 0b11_10_01_00 puts 00 in red, 01 in green, 10 in blue and 11 in alpha
	pixel := []uint8{0xFF, 0xFF, 0xFF, 0xFF}
	storeByteInPixel(0b11100100, pixel)

	expected := []uint8{0xFC, 0xFD, 0xFE, 0xFF}
	for c := range expected {
		if pixel[c] != expected[c] {
			t.Errorf("Channel %d expected %08b, got %08b", c, expected[c], pixel[c])
		}
	}
}

func TestStoreEmptyMarker(t *testing.T) {
	pixel := []uint8{0x03, 0x87, 0xFF, 0x42}
	storeByteInPixel(emptyMarker, pixel)

	expected := []uint8{0x00, 0x84, 0xFC, 0x40}
	for c := range expected {
		if pixel[c] != expected[c] {
			t.Errorf("Channel %d expected %08b, got %08b", c, expected[c], pixel[c])
		}
	}
	if byteFromPixel(pixel) != emptyMarker {
		t.Errorf("Expected pixel to read back as the empty marker")
	}
}

func TestScanColumnMajor(t *testing.T) {
	bounds := image.Rect(1, 1, 3, 4)

	var visited []image.Point
	scanColumnMajor(bounds, func(x, y int) bool {
		visited = append(visited, image.Point{X: x, Y: y})
		return true
	})

	expected := []image.Point{{1, 1}, {1, 2}, {1, 3}, {2, 1}, {2, 2}, {2, 3}}
	if len(visited) != len(expected) {
		t.Fatalf("Expected %d visits, got %d", len(expected), len(visited))
	}
	for i := range expected {
		if visited[i] != expected[i] {
			t.Errorf("Visit %d expected %v, got %v", i, expected[i], visited[i])
		}
	}
}

func TestScanColumnMajorEndsColumnOnly(t *testing.T) {
	bounds := image.Rect(0, 0, 3, 3)

	var visited []image.Point
	scanColumnMajor(bounds, func(x, y int) bool {
		visited = append(visited, image.Point{X: x, Y: y})
		return y != 1
	})

	// each column stops after y=1, but every column is started
	expected := []image.Point{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}, {2, 1}}
	if len(visited) != len(expected) {
		t.Fatalf("Expected %d visits, got %d: %v", len(expected), len(visited), visited)
	}
	for i := range expected {
		if visited[i] != expected[i] {
			t.Errorf("Visit %d expected %v, got %v", i, expected[i], visited[i])
		}
	}
}
