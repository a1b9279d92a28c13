package deflate

import (
	"bytes"
	"testing"

	"github.com/emesic23/goflate/bitio"
)

// TestLiteralsOnlyRoundTrip checks a fixed-Huffman, literals-only block
// (no LZ77 matching) round trips byte-for-byte.
func TestLiteralsOnlyRoundTrip(t *testing.T) {
	input := []byte("abc")
	encoded, err := EncodeLiterals(input)
	if err != nil {
		t.Fatalf("EncodeLiterals: %v", err)
	}
	got, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(got, input) {
		t.Fatalf("got %q, want %q", got, input)
	}
}

// TestLZ77RoundTripRepeat checks a repeating input that forces the
// matcher to emit a back-reference round trips correctly.
func TestLZ77RoundTripRepeat(t *testing.T) {
	input := []byte("abcabcabc")
	encoded, err := EncodeLZ77(input)
	if err != nil {
		t.Fatalf("EncodeLZ77: %v", err)
	}
	got, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(got, input) {
		t.Fatalf("got %q, want %q", got, input)
	}
}

// TestLZ77RoundTripRunLengthOverlap checks a back-reference whose
// distance is smaller than its length, exercising the decoder's
// re-reading expansion.
func TestLZ77RoundTripRunLengthOverlap(t *testing.T) {
	input := bytes.Repeat([]byte("a"), 10)
	encoded, err := EncodeLZ77(input)
	if err != nil {
		t.Fatalf("EncodeLZ77: %v", err)
	}
	got, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(got, input) {
		t.Fatalf("got %q, want %q", got, input)
	}
}

func TestLZ77RoundTripVariousInputs(t *testing.T) {
	cases := []string{
		"",
		"x",
		"the quick brown fox jumps over the lazy dog, the quick brown fox",
		string(bytes.Repeat([]byte("ab"), 200)),
	}
	for _, c := range cases {
		encoded, err := EncodeLZ77([]byte(c))
		if err != nil {
			t.Fatalf("EncodeLZ77(%q): %v", c, err)
		}
		got, err := Decode(encoded)
		if err != nil {
			t.Fatalf("Decode(%q): %v", c, err)
		}
		if !bytes.Equal(got, []byte(c)) {
			t.Fatalf("round trip mismatch for %q: got %q", c, got)
		}
	}
}

// TestDecodeStoredBlock builds a minimal stored (BTYPE 00) DEFLATE
// stream by hand and checks the decoder reconstructs it.
func TestDecodeStoredBlock(t *testing.T) {
	payload := []byte("hello\n")

	w := bitio.NewWriter()
	w.WriteBitsLSB(1, 1) // BFINAL
	w.WriteBitsLSB(0, 2) // BTYPE = stored
	w.AlignToByte()
	length := uint16(len(payload))
	w.WriteRawByte(byte(length))
	w.WriteRawByte(byte(length >> 8))
	nlen := ^length
	w.WriteRawByte(byte(nlen))
	w.WriteRawByte(byte(nlen >> 8))
	for _, b := range payload {
		w.WriteRawByte(b)
	}

	got, err := Decode(w.Bytes())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("got %q, want %q", got, payload)
	}
}

func TestDecodeStoredBlockLengthMismatch(t *testing.T) {
	w := bitio.NewWriter()
	w.WriteBitsLSB(1, 1)
	w.WriteBitsLSB(0, 2)
	w.AlignToByte()
	w.WriteRawByte(5)
	w.WriteRawByte(0)
	w.WriteRawByte(0) // wrong NLEN, should be 0xFA 0xFF
	w.WriteRawByte(0)

	_, err := Decode(w.Bytes())
	if err != ErrStoredLengthMismatch {
		t.Fatalf("got err %v, want ErrStoredLengthMismatch", err)
	}
}

func TestDecodeUnknownBlockType(t *testing.T) {
	w := bitio.NewWriter()
	w.WriteBitsLSB(1, 1)
	w.WriteBitsLSB(3, 2) // BTYPE = 11, reserved
	_, err := Decode(w.Bytes())
	if err != ErrUnknownBlockType {
		t.Fatalf("got err %v, want ErrUnknownBlockType", err)
	}
}
