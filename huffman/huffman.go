// Package huffman builds and walks canonical Huffman codes for DEFLATE
// (RFC 1951 §3.2.2): given a code-length per symbol, it assigns codes in
// (length, symbol) order, the first code of each length following from
// the previous length's first code and count. Decoding accumulates bits
// one at a time, MSB-first within the codeword, against length-indexed
// arrays rather than a map-keyed tree — the approach the format's
// canonical property makes possible and the retrieval pack's own
// canonical-Huffman decoders (e.g. chronos-tachyon/huffman) use.
package huffman

import (
	"errors"

	"github.com/emesic23/goflate/bitio"
)

// MaxBits is the longest codeword RFC 1951 permits.
const MaxBits = 15

var (
	// ErrCodeLengthOutOfRange is returned when a code length falls
	// outside [0, MaxBits].
	ErrCodeLengthOutOfRange = errors.New("huffman: code length out of range")
	// ErrOverSubscribed is returned when the code-length list describes
	// more codes of some length than fit in a prefix-free tree.
	ErrOverSubscribed = errors.New("huffman: over-subscribed code")
	// ErrInvalidCode is returned when a bit sequence never resolves to
	// a symbol within MaxBits bits — an incomplete code was used past
	// its defined codewords, or the stream is corrupt.
	ErrInvalidCode = errors.New("huffman: invalid or incomplete code")
)

// Table is a canonical Huffman code over a symbol alphabet 0..n-1,
// usable for both encoding (symbol -> code) and decoding (bits -> symbol).
type Table struct {
	lengths []int // code length per symbol, 0 = symbol unused
	codes   []uint32 // canonical code per symbol, valid where lengths[i] != 0
	count   []int    // number of codes of each length, index 0..MaxBits
	symbol  []int    // symbols sorted by (length, symbol), grouped by length
}

// BuildCanonical constructs a canonical Huffman table from a code-length
// per symbol. An all-zero or empty lengths list yields a table that can
// never decode (every Decode call returns ErrInvalidCode), matching an
// "empty code" per RFC 1951 — that is a usable construction, it is
// decoding from it that fails.
func BuildCanonical(lengths []int) (*Table, error) {
	n := len(lengths)
	var count [MaxBits + 1]int
	maxLen := 0
	for _, l := range lengths {
		if l < 0 || l > MaxBits {
			return nil, ErrCodeLengthOutOfRange
		}
		count[l]++
		if l > maxLen {
			maxLen = l
		}
	}

	t := &Table{lengths: append([]int(nil), lengths...), count: count[:]}
	if maxLen == 0 {
		return t, nil
	}

	// Reject an over-subscribed code: more codes at some length than a
	// prefix-free tree has room for. An incomplete code (left > 0 at the
	// end) is accepted here; decode() surfaces the problem only if it
	// actually runs off the end of the defined codewords.
	left := 1
	for l := 1; l <= maxLen; l++ {
		left <<= 1
		left -= count[l]
		if left < 0 {
			return nil, ErrOverSubscribed
		}
	}

	var nextCode [MaxBits + 2]int
	code := 0
	for l := 1; l <= maxLen; l++ {
		prev := 0 // count[0] tallies unused symbols, not length-0 codes
		if l > 1 {
			prev = count[l-1]
		}
		code = (code + prev) << 1
		nextCode[l] = code
	}

	var offs [MaxBits + 2]int
	for l := 1; l < maxLen; l++ {
		offs[l+1] = offs[l] + count[l]
	}

	codes := make([]uint32, n)
	symbolOrder := make([]int, n-count[0])
	for s, l := range lengths {
		if l == 0 {
			continue
		}
		codes[s] = uint32(nextCode[l])
		nextCode[l]++
		symbolOrder[offs[l]] = s
		offs[l]++
	}

	t.codes = codes
	t.symbol = symbolOrder
	return t, nil
}

// Encode returns the canonical codeword for symbol, MSB-first within
// the code (the caller writes it with bitio.Writer.WriteBitsMSB). ok is
// false if symbol is out of range or unused in this table.
func (t *Table) Encode(symbol int) (code uint32, nbits uint, ok bool) {
	if symbol < 0 || symbol >= len(t.lengths) {
		return 0, 0, false
	}
	l := t.lengths[symbol]
	if l == 0 {
		return 0, 0, false
	}
	return t.codes[symbol], uint(l), true
}

// Decode reads one codeword from br and returns its symbol.
func (t *Table) Decode(br *bitio.Reader) (int, error) {
	code, first, index := 0, 0, 0
	for length := 1; length <= MaxBits; length++ {
		bit, err := br.ReadBit()
		if err != nil {
			return 0, err
		}
		code = (code << 1) | int(bit)
		cnt := 0
		if length < len(t.count) {
			cnt = t.count[length]
		}
		if code-first < cnt {
			return t.symbol[index+code-first], nil
		}
		index += cnt
		first += cnt
		first <<= 1
	}
	return 0, ErrInvalidCode
}
