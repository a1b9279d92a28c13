package zipfile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalFileRecordRoundTrip(t *testing.T) {
	tests := []struct {
		name       string
		compMethod uint16
		fname      string
		data       []byte
		uncompSize uint32
	}{
		{name: "stored hello", compMethod: MethodStored, fname: "hello.txt", data: []byte("hello\n"), uncompSize: 6},
		{name: "deflate payload", compMethod: MethodDeflate, fname: "a.bin", data: []byte{0x01, 0x02, 0x03}, uncompSize: 10},
		{name: "empty file", compMethod: MethodStored, fname: "empty.txt", data: nil, uncompSize: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lf := NewLocalFileRecord(tc.compMethod, tc.fname, tc.data, tc.uncompSize)
			encoded := lf.Marshal()
			require.Len(t, encoded, lf.Len())

			parsed, n, err := ParseLocalFileRecord(encoded)
			require.NoError(t, err)
			require.Equal(t, len(encoded), n)
			require.Equal(t, tc.fname, parsed.Name)
			require.Equal(t, tc.compMethod, parsed.CompMethod)
			require.Equal(t, uint32(placeholderCRC32), parsed.CRC32)
			require.Equal(t, tc.uncompSize, parsed.UncompSize)
			if tc.data == nil {
				require.Empty(t, parsed.Data)
			} else {
				require.Equal(t, tc.data, parsed.Data)
			}
		})
	}
}

func TestParseLocalFileRecordErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{name: "too short", data: []byte{1, 2, 3}, wantErr: ErrTruncatedRecord},
		{name: "bad signature", data: make([]byte, localFileRecordBaseSize), wantErr: ErrBadSignature},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := ParseLocalFileRecord(tc.data)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCentralDirRecordRoundTrip(t *testing.T) {
	cd := NewCentralDirRecord(MethodStored, "hello.txt", 6, 6, 0)
	encoded := cd.Marshal()
	require.Len(t, encoded, cd.Len())

	parsed, n, err := ParseCentralDirRecord(encoded)
	require.NoError(t, err)
	require.Equal(t, len(encoded), n)
	require.Equal(t, "hello.txt", parsed.Name)
	require.Equal(t, uint32(placeholderCRC32), parsed.CRC32)
	require.EqualValues(t, internalFileAttrs, parsed.InternalFileAttrs)
	require.EqualValues(t, externalFileAttrs, parsed.ExternalFileAttrs)
}

func TestEOCDRecordRoundTrip(t *testing.T) {
	eocd := NewEOCDRecord(100, 30)
	encoded := eocd.Marshal()
	require.Len(t, encoded, eocd.Len())

	parsed, n, err := ParseEOCDRecord(encoded)
	require.NoError(t, err)
	require.Equal(t, len(encoded), n)
	require.EqualValues(t, 1, parsed.TotalEntries)
	require.EqualValues(t, 1, parsed.TotalEntriesOnDisk)
	require.EqualValues(t, 100, parsed.CentralDirSize)
	require.EqualValues(t, 30, parsed.CentralDirOffset)
}

// TestWriteReadSingleEntryStored checks a stored-method archive round
// trip, with the Local File record's fname/fdata/signature matching what
// was written.
func TestWriteReadSingleEntryStored(t *testing.T) {
	content := []byte("hello\n")
	archive := WriteSingleEntry(MethodStored, "hello.txt", content, uint32(len(content)))

	lf, err := ReadSingleEntry(archive)
	require.NoError(t, err)
	require.Equal(t, "hello.txt", lf.Name)
	require.Equal(t, content, lf.Data)
	require.EqualValues(t, MethodStored, lf.CompMethod)
	require.EqualValues(t, len(content), lf.UncompSize)
}
