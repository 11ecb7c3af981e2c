package bits

// BitReader reads groups of bits from a byte slice. Bits are read from least significant to most significant, and a
// group may straddle two consecutive bytes
type BitReader struct {
	bytes         []byte
	currentBitIdx uint
}

func NewBitReader(bytes []byte) *BitReader {
	return &BitReader{
		bytes: bytes,
	}
}

func (br *BitReader) BytesLeftToRead() int {
	return len(br.bytes)
}

func (br *BitReader) BitsLeftToRead() int {
	if len(br.bytes) == 0 {
		return 0
	}
	return len(br.bytes)*8 - int(br.currentBitIdx)
}

func (br *BitReader) Reset() {
	br.bytes = nil
	br.currentBitIdx = 0
}

// ReadBits returns the next bitsToRead (1-8) bits in the low bits of the result. Once the reader runs dry the missing
// high bits are left as zero
func (br *BitReader) ReadBits(bitsToRead uint) byte {
	var result byte
	var numOfBitsRead uint
	for numOfBitsRead < bitsToRead && len(br.bytes) > 0 {
		bitsToTake := min(bitsToRead-numOfBitsRead, 8-br.currentBitIdx)
		mask := byte(uint16(1)<<bitsToTake - 1)

		result |= ((br.bytes[0] >> br.currentBitIdx) & mask) << numOfBitsRead
		numOfBitsRead += bitsToTake
		br.currentBitIdx += bitsToTake

		if br.currentBitIdx == 8 {
			br.bytes = br.bytes[1:]
			br.currentBitIdx = 0
		}
	}
	return result
}
