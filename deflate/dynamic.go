package deflate

import (
	"errors"

	"github.com/emesic23/goflate/bitio"
	"github.com/emesic23/goflate/huffman"
)

// ErrTooManyCodeLengths is returned when the code-length RLE overruns
// the HLIT+HDIST+258 entries the block header promised.
var ErrTooManyCodeLengths = errors.New("deflate: code-length run exceeds declared table size")

// decodeDynamic reads a dynamic-Huffman block header (HLIT/HDIST/HCLEN,
// the code-length alphabet, then the RLE-compressed code lengths for the
// literal/length and distance alphabets) and decodes the block body.
func decodeDynamic(r *bitio.Reader, out []byte) ([]byte, error) {
	hlit, err := r.ReadBitsLSB(5)
	if err != nil {
		return nil, err
	}
	hdist, err := r.ReadBitsLSB(5)
	if err != nil {
		return nil, err
	}
	hclen, err := r.ReadBitsLSB(4)
	if err != nil {
		return nil, err
	}

	numLitLen := int(hlit) + 257
	numDist := int(hdist) + 1
	numCLCodes := int(hclen) + 4

	clLengths := make([]int, 19)
	for i := 0; i < numCLCodes; i++ {
		v, err := r.ReadBitsLSB(3)
		if err != nil {
			return nil, err
		}
		clLengths[huffman.CodeLengthOrder[i]] = int(v)
	}

	clTable, err := huffman.BuildCanonical(clLengths)
	if err != nil {
		return nil, err
	}

	total := numLitLen + numDist
	lengths := make([]int, 0, total)
	var prev int
	for len(lengths) < total {
		sym, err := clTable.Decode(r)
		if err != nil {
			return nil, err
		}
		switch {
		case sym <= 15:
			lengths = append(lengths, sym)
			prev = sym
		case sym == 16:
			rep, err := r.ReadBitsLSB(2)
			if err != nil {
				return nil, err
			}
			n := int(rep) + 3
			if len(lengths)+n > total {
				return nil, ErrTooManyCodeLengths
			}
			for i := 0; i < n; i++ {
				lengths = append(lengths, prev)
			}
		case sym == 17:
			rep, err := r.ReadBitsLSB(3)
			if err != nil {
				return nil, err
			}
			n := int(rep) + 3
			if len(lengths)+n > total {
				return nil, ErrTooManyCodeLengths
			}
			for i := 0; i < n; i++ {
				lengths = append(lengths, 0)
			}
			prev = 0
		case sym == 18:
			rep, err := r.ReadBitsLSB(7)
			if err != nil {
				return nil, err
			}
			n := int(rep) + 11
			if len(lengths)+n > total {
				return nil, ErrTooManyCodeLengths
			}
			for i := 0; i < n; i++ {
				lengths = append(lengths, 0)
			}
			prev = 0
		default:
			return nil, ErrBadLengthSymbol
		}
	}

	litLenTable, err := huffman.BuildCanonical(lengths[:numLitLen])
	if err != nil {
		return nil, err
	}
	distTable, err := huffman.BuildCanonical(lengths[numLitLen:])
	if err != nil {
		return nil, err
	}

	return decodeSymbols(r, out, litLenTable, distTable)
}
