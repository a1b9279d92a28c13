package huffman

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emesic23/goflate/bitio"
)

func TestBuildCanonical(t *testing.T) {
	tests := []struct {
		name    string
		lengths []int
		wantErr error
	}{
		{name: "fixed literal/length table", lengths: FixedLitLenLengths()},
		{name: "fixed distance table", lengths: FixedDistLengths()},
		{name: "empty code", lengths: []int{0, 0, 0}},
		{
			name:    "over-subscribed",
			lengths: []int{1, 1, 1},
			wantErr: ErrOverSubscribed,
		},
		{
			name:    "length out of range",
			lengths: []int{MaxBits + 1},
			wantErr: ErrCodeLengthOutOfRange,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tbl, err := BuildCanonical(tc.lengths)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Nil(t, tbl)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, tbl)
		})
	}
}

func TestFixedLiteralRoundTrip(t *testing.T) {
	tbl, err := BuildCanonical(FixedLitLenLengths())
	require.NoError(t, err)

	w := bitio.NewWriter()
	symbols := []int{0, 65, 143, 144, 255, 256, 280, 287}
	for _, s := range symbols {
		code, nbits, ok := tbl.Encode(s)
		require.True(t, ok)
		w.WriteBitsMSB(code, nbits)
	}

	r := bitio.NewReader(w.Bytes())
	for _, want := range symbols {
		got, err := tbl.Decode(r)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestDecodeIncompleteCodeRunsOut(t *testing.T) {
	// A single one-bit symbol leaves the rest of the code space
	// undefined; decoding after it runs off the end of MaxBits.
	tbl, err := BuildCanonical([]int{1})
	require.NoError(t, err)

	w := bitio.NewWriter()
	w.WriteBitsLSB(0, 1) // the single defined codeword, symbol 0, bit "0"
	w.WriteBitsLSB(0xFFFF, 16)

	r := bitio.NewReader(w.Bytes())
	got, err := tbl.Decode(r)
	require.NoError(t, err)
	require.Equal(t, 0, got)

	_, err = tbl.Decode(r)
	require.ErrorIs(t, err, ErrInvalidCode)
}

func TestLengthSymbolRoundTrip(t *testing.T) {
	tests := []struct {
		length int
	}{
		{3}, {10}, {11}, {18}, {257}, {258},
	}
	for _, tc := range tests {
		sym, extra, _, err := LengthSymbol(tc.length)
		require.NoError(t, err)
		got, err := ExpandLength(sym, extra)
		require.NoError(t, err)
		require.Equal(t, tc.length, got)
	}

	_, _, _, err := LengthSymbol(2)
	require.ErrorIs(t, err, ErrLengthOutOfRange)
	_, _, _, err = LengthSymbol(259)
	require.ErrorIs(t, err, ErrLengthOutOfRange)
}

func TestDistSymbolRoundTrip(t *testing.T) {
	tests := []int{1, 2, 4, 5, 32768, 6145}
	for _, d := range tests {
		sym, extra, _, err := DistSymbol(d)
		require.NoError(t, err)
		got, err := ExpandDistance(sym, extra)
		require.NoError(t, err)
		require.Equal(t, d, got)
	}

	_, _, _, err := DistSymbol(0)
	require.ErrorIs(t, err, ErrDistanceOutOfRange)
	_, _, _, err = DistSymbol(32769)
	require.ErrorIs(t, err, ErrDistanceOutOfRange)
}

func TestCodeLengthOrderLength(t *testing.T) {
	require.Len(t, CodeLengthOrder, 19)
	seen := make(map[int]bool)
	for _, v := range CodeLengthOrder {
		require.False(t, seen[v], "duplicate entry %d", v)
		seen[v] = true
	}
}
