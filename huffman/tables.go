package huffman

import "errors"

// ErrLengthOutOfRange and ErrDistanceOutOfRange are returned when a
// back-reference's length or distance falls outside what RFC 1951's
// length/distance alphabets can express.
var (
	ErrLengthOutOfRange   = errors.New("huffman: back-reference length out of range")
	ErrDistanceOutOfRange = errors.New("huffman: back-reference distance out of range")
	ErrLengthSymbol       = errors.New("huffman: invalid length symbol")
	ErrDistanceSymbol     = errors.New("huffman: invalid distance symbol")
)

// EndOfBlock is the literal/length alphabet's block terminator symbol.
const EndOfBlock = 256

// FixedLitLenLengths returns the 288-entry code-length table RFC 1951
// §3.2.6 fixes for the literal/length alphabet: symbols 0-143 get 8 bits,
// 144-255 get 9, 256-279 (end-of-block plus the shorter length codes) get
// 7, and 280-287 get 8.
func FixedLitLenLengths() []int {
	lengths := make([]int, 288)
	for i := 0; i <= 143; i++ {
		lengths[i] = 8
	}
	for i := 144; i <= 255; i++ {
		lengths[i] = 9
	}
	for i := 256; i <= 279; i++ {
		lengths[i] = 7
	}
	for i := 280; i <= 287; i++ {
		lengths[i] = 8
	}
	return lengths
}

// FixedDistLengths returns the 30-entry code-length table RFC 1951 fixes
// for the distance alphabet: every symbol gets 5 bits.
func FixedDistLengths() []int {
	lengths := make([]int, 30)
	for i := range lengths {
		lengths[i] = 5
	}
	return lengths
}

// lengthBase and lengthExtraBits give, per length symbol (0-28, added to
// 257 for the literal/length alphabet code), the smallest back-reference
// length it encodes and how many extra bits follow to reach the exact
// length. Symbol 28 (length 258) takes no extra bits.
var lengthBase = [29]int{
	3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 15, 17, 19, 23, 27,
	31, 35, 43, 51, 59, 67, 83, 99, 115, 131, 163, 195, 227, 258,
}

var lengthExtraBits = [29]uint{
	0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2,
	2, 3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 0,
}

// distBase and distExtraBits give, per distance symbol (0-29), the
// smallest back-reference distance it encodes and how many extra bits
// follow to reach the exact distance.
var distBase = [30]int{
	1, 2, 3, 4, 5, 7, 9, 13, 17, 25, 33, 49, 65, 97, 129,
	193, 257, 385, 513, 769, 1025, 1537, 2049, 3073, 4097, 6145, 8193, 12289, 16385, 24577,
}

var distExtraBits = [30]uint{
	0, 0, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6,
	6, 7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
}

// CodeLengthOrder is the permutation RFC 1951 §3.2.7 applies to the
// code-length alphabet's own code lengths (HCLEN) before they are read.
var CodeLengthOrder = [19]int{16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15}

// LengthSymbol returns the length-alphabet symbol (257-285) and the
// extra-bit value to encode a back-reference length in [3, 258].
func LengthSymbol(length int) (symbol int, extra uint32, nbits uint, err error) {
	if length < 3 || length > 258 {
		return 0, 0, 0, ErrLengthOutOfRange
	}
	for i := len(lengthBase) - 1; i >= 0; i-- {
		if length >= lengthBase[i] {
			return 257 + i, uint32(length - lengthBase[i]), lengthExtraBits[i], nil
		}
	}
	return 0, 0, 0, ErrLengthOutOfRange
}

// ExpandLength reverses LengthSymbol: given a length-alphabet symbol and
// the extra bits that followed it, returns the back-reference length.
func ExpandLength(symbol int, extra uint32) (int, error) {
	i := symbol - 257
	if i < 0 || i >= len(lengthBase) {
		return 0, ErrLengthSymbol
	}
	return lengthBase[i] + int(extra), nil
}

// LengthExtraBits returns how many extra bits follow a length symbol.
func LengthExtraBits(symbol int) (uint, error) {
	i := symbol - 257
	if i < 0 || i >= len(lengthExtraBits) {
		return 0, ErrLengthSymbol
	}
	return lengthExtraBits[i], nil
}

// DistSymbol returns the distance-alphabet symbol (0-29) and the
// extra-bit value to encode a back-reference distance in [1, 32768].
func DistSymbol(distance int) (symbol int, extra uint32, nbits uint, err error) {
	if distance < 1 || distance > 32768 {
		return 0, 0, 0, ErrDistanceOutOfRange
	}
	for i := len(distBase) - 1; i >= 0; i-- {
		if distance >= distBase[i] {
			return i, uint32(distance - distBase[i]), distExtraBits[i], nil
		}
	}
	return 0, 0, 0, ErrDistanceOutOfRange
}

// ExpandDistance reverses DistSymbol: given a distance-alphabet symbol
// and the extra bits that followed it, returns the back-reference
// distance.
func ExpandDistance(symbol int, extra uint32) (int, error) {
	if symbol < 0 || symbol >= len(distBase) {
		return 0, ErrDistanceSymbol
	}
	return distBase[symbol] + int(extra), nil
}

// DistExtraBits returns how many extra bits follow a distance symbol.
func DistExtraBits(symbol int) (uint, error) {
	if symbol < 0 || symbol >= len(distExtraBits) {
		return 0, ErrDistanceSymbol
	}
	return distExtraBits[symbol], nil
}
