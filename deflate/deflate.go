// Package deflate implements the RFC 1951 block codec: an encoder that
// drives lz77.Tokenize and huffman's fixed tables into a single final
// block, and a decoder that walks stored, fixed-Huffman, and
// dynamic-Huffman blocks until it reaches one marked final.
//
// The block-dispatch loop and back-reference expansion follow a
// read-header, dispatch-on-type, expand-into-a-growing-buffer shape,
// generalized to RFC 1951's three explicit block types and two Huffman
// alphabets rather than a single implicit block and alphabet.
package deflate

import (
	"errors"

	"github.com/emesic23/goflate/bitio"
	"github.com/emesic23/goflate/huffman"
	"github.com/emesic23/goflate/lz77"
)

const (
	btypeStored  = 0
	btypeFixed   = 1
	btypeDynamic = 2
)

var (
	// ErrUnknownBlockType is returned for BTYPE 3, which RFC 1951
	// reserves and never defines.
	ErrUnknownBlockType = errors.New("deflate: unknown block type")
	// ErrStoredLengthMismatch is returned when a stored block's NLEN
	// field is not the one's complement of LEN.
	ErrStoredLengthMismatch = errors.New("deflate: stored block LEN/NLEN mismatch")
	// ErrDistanceTooFar is returned when a back-reference's distance
	// exceeds the amount of output produced so far.
	ErrDistanceTooFar = errors.New("deflate: back-reference distance exceeds output length")
	// ErrBadLengthSymbol is returned when a decoded literal/length
	// symbol is not a literal, EOB, or valid length symbol (257-285).
	ErrBadLengthSymbol = errors.New("deflate: invalid length symbol")
	// ErrBadDistanceSymbol is returned when a decoded distance symbol
	// is outside the 30-symbol distance alphabet.
	ErrBadDistanceSymbol = errors.New("deflate: invalid distance symbol")
)

// ErrSymbolNotInTable is returned when a symbol has no codeword in the
// fixed literal/length or distance table — an internal invariant failure
// rather than anything a caller's input can trigger today, since every
// symbol this package emits is drawn from the fixed alphabets' own
// ranges.
var ErrSymbolNotInTable = errors.New("deflate: symbol not present in fixed table")

// EncodeLiterals produces a single final fixed-Huffman block (BTYPE=01)
// encoding every byte of input as a literal, with no LZ77 matching.
func EncodeLiterals(input []byte) ([]byte, error) {
	litTable, _ := huffman.BuildCanonical(huffman.FixedLitLenLengths())

	w := bitio.NewWriter()
	w.WriteBitsLSB(1, 1) // BFINAL
	w.WriteBitsLSB(btypeFixed, 2)

	for _, b := range input {
		if err := writeSymbol(w, litTable, int(b)); err != nil {
			return nil, err
		}
	}
	if err := writeSymbol(w, litTable, huffman.EndOfBlock); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// EncodeLZ77 produces a single final fixed-Huffman block (BTYPE=01)
// encoding input as its LZ77 token stream: literals via the fixed
// literal/length code, back-references via the length code (plus extra
// bits) followed by the fixed 5-bit distance code (plus extra bits).
func EncodeLZ77(input []byte) ([]byte, error) {
	litTable, _ := huffman.BuildCanonical(huffman.FixedLitLenLengths())
	distTable, _ := huffman.BuildCanonical(huffman.FixedDistLengths())

	w := bitio.NewWriter()
	w.WriteBitsLSB(1, 1)
	w.WriteBitsLSB(btypeFixed, 2)

	for _, tok := range lz77.Tokenize(input) {
		if tok.IsLiteral() {
			if err := writeSymbol(w, litTable, int(tok.Literal)); err != nil {
				return nil, err
			}
			continue
		}
		lsym, lextra, lnbits, err := huffman.LengthSymbol(tok.Length)
		if err != nil {
			return nil, err
		}
		if err := writeSymbol(w, litTable, lsym); err != nil {
			return nil, err
		}
		w.WriteBitsLSB(lextra, lnbits)

		dsym, dextra, dnbits, err := huffman.DistSymbol(tok.Distance)
		if err != nil {
			return nil, err
		}
		if err := writeSymbol(w, distTable, dsym); err != nil {
			return nil, err
		}
		w.WriteBitsLSB(dextra, dnbits)
	}
	if err := writeSymbol(w, litTable, huffman.EndOfBlock); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

func writeSymbol(w *bitio.Writer, t *huffman.Table, symbol int) error {
	code, nbits, ok := t.Encode(symbol)
	if !ok {
		return ErrSymbolNotInTable
	}
	w.WriteBitsMSB(code, nbits)
	return nil
}

// Decode parses a complete DEFLATE stream (one or more blocks, the last
// marked BFINAL) and returns the decompressed byte sequence.
func Decode(data []byte) ([]byte, error) {
	r := bitio.NewReader(data)
	var out []byte

	for {
		bfinal, err := r.ReadBitsLSB(1)
		if err != nil {
			return nil, err
		}
		btype, err := r.ReadBitsLSB(2)
		if err != nil {
			return nil, err
		}

		switch btype {
		case btypeStored:
			out, err = decodeStored(r, out)
		case btypeFixed:
			out, err = decodeFixed(r, out)
		case btypeDynamic:
			out, err = decodeDynamic(r, out)
		default:
			return nil, ErrUnknownBlockType
		}
		if err != nil {
			return nil, err
		}

		if bfinal == 1 {
			return out, nil
		}
	}
}

func decodeStored(r *bitio.Reader, out []byte) ([]byte, error) {
	r.AlignToByte()
	lenBytes, err := r.ReadRawBytes(2)
	if err != nil {
		return nil, err
	}
	nlenBytes, err := r.ReadRawBytes(2)
	if err != nil {
		return nil, err
	}
	length := uint16(lenBytes[0]) | uint16(lenBytes[1])<<8
	nlen := uint16(nlenBytes[0]) | uint16(nlenBytes[1])<<8
	if nlen != ^length {
		return nil, ErrStoredLengthMismatch
	}
	data, err := r.ReadRawBytes(int(length))
	if err != nil {
		return nil, err
	}
	return append(out, data...), nil
}

func decodeFixed(r *bitio.Reader, out []byte) ([]byte, error) {
	litTable, _ := huffman.BuildCanonical(huffman.FixedLitLenLengths())
	distTable, _ := huffman.BuildCanonical(huffman.FixedDistLengths())
	return decodeSymbols(r, out, litTable, distTable)
}

func decodeSymbols(r *bitio.Reader, out []byte, litTable, distTable *huffman.Table) ([]byte, error) {
	for {
		sym, err := litTable.Decode(r)
		if err != nil {
			return nil, err
		}
		switch {
		case sym < 256:
			out = append(out, byte(sym))
		case sym == huffman.EndOfBlock:
			return out, nil
		case sym <= 285:
			lnbits, err := huffman.LengthExtraBits(sym)
			if err != nil {
				return nil, ErrBadLengthSymbol
			}
			lextra, err := r.ReadBitsLSB(lnbits)
			if err != nil {
				return nil, err
			}
			length, err := huffman.ExpandLength(sym, lextra)
			if err != nil {
				return nil, ErrBadLengthSymbol
			}

			dsym, err := distTable.Decode(r)
			if err != nil {
				return nil, err
			}
			dnbits, err := huffman.DistExtraBits(dsym)
			if err != nil {
				return nil, ErrBadDistanceSymbol
			}
			dextra, err := r.ReadBitsLSB(dnbits)
			if err != nil {
				return nil, err
			}
			distance, err := huffman.ExpandDistance(dsym, dextra)
			if err != nil {
				return nil, ErrBadDistanceSymbol
			}

			if distance > len(out) {
				return nil, ErrDistanceTooFar
			}
			start := len(out) - distance
			for i := 0; i < length; i++ {
				out = append(out, out[start+i])
			}
		default:
			return nil, ErrBadLengthSymbol
		}
	}
}
