package bits

import (
	"fmt"
	"testing"
)

func TestReadBits(t *testing.T) {

	// 10000000 00000111 11111111 01100101
	bytesToTestWith := []byte{128, 7, 255, 101}
	expectedBitsToRead := [8][]byte{
		{0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 1, 0, 0, 1, 1, 0},
		{0, 0, 0, 2, 3, 1, 0, 0, 3, 3, 3, 3, 1, 1, 2, 1},
		{0, 0, 6, 3, 0, 6, 7, 7, 5, 4, 1},
		{0, 8, 7, 0, 15, 15, 5, 6},
		{0, 28, 1, 30, 31, 18, 1},
		{0, 30, 48, 63, 37, 1},
		{0, 15, 124, 47, 6},
		{128, 7, 255, 101},
	}

	for bitsToRead := uint(1); bitsToRead <= 8; bitsToRead++ {
		t.Run(fmt.Sprintf("bitsToRead=%d", bitsToRead), func(t *testing.T) {
			tBitReader := NewBitReader(bytesToTestWith)
			for iter, expectedBits := range expectedBitsToRead[bitsToRead-1] {
				bits := tBitReader.ReadBits(bitsToRead)
				if bits != expectedBits {
					t.Errorf("Failure on iter %d, result was: %d, expected %d", iter+1, bits, expectedBits)
				}
			}
			if tBitReader.BitsLeftToRead() != 0 {
				t.Errorf("Expected reader to be drained, %d bits left", tBitReader.BitsLeftToRead())
			}
		})
	}
}

func TestReadBitsPastEnd(t *testing.T) {
	br := NewBitReader([]byte{0xFF})
	if got := br.ReadBits(6); got != 0x3F {
		t.Fatalf("Expected 0x3F, got %#x", got)
	}
	// only 2 bits left, the remaining high bits must be zero
	if got := br.ReadBits(4); got != 0x03 {
		t.Errorf("Expected 0x03 when reading past the end, got %#x", got)
	}
	if got := br.ReadBits(8); got != 0 {
		t.Errorf("Expected 0 from a drained reader, got %#x", got)
	}
}

func TestBitsLeftToRead(t *testing.T) {
	br := NewBitReader([]byte{1, 2, 3})
	if br.BitsLeftToRead() != 24 || br.BytesLeftToRead() != 3 {
		t.Fatalf("Unexpected initial state: %d bits, %d bytes", br.BitsLeftToRead(), br.BytesLeftToRead())
	}

	br.ReadBits(2)
	if br.BitsLeftToRead() != 22 {
		t.Errorf("Expected 22 bits left, got %d", br.BitsLeftToRead())
	}

	br.ReadBits(6)
	if br.BitsLeftToRead() != 16 || br.BytesLeftToRead() != 2 {
		t.Errorf("Expected 16 bits in 2 bytes left, got %d bits in %d bytes", br.BitsLeftToRead(), br.BytesLeftToRead())
	}

	br.Reset()
	if br.BitsLeftToRead() != 0 {
		t.Errorf("Expected no bits after reset, got %d", br.BitsLeftToRead())
	}
}

// Every byte split into 2 bit groups must rebuild the original byte
func TestReadBitsTwoBitGroups(t *testing.T) {
	for b := 0; b < 256; b++ {
		br := NewBitReader([]byte{byte(b)})
		var rebuilt byte
		for group := uint(0); group < 4; group++ {
			rebuilt |= br.ReadBits(2) << (2 * group)
		}
		if rebuilt != byte(b) {
			t.Fatalf("Byte %#x rebuilt as %#x", b, rebuilt)
		}
	}
}
