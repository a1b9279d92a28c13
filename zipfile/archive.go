package zipfile

// WriteSingleEntry assembles a complete single-entry archive: the Local
// File record for name/compData, followed by the Central Directory
// record and the EOCD record that point back at it. compMethod must be
// MethodStored or MethodDeflate; compData is already compressed (or, for
// MethodStored, the original bytes verbatim).
func WriteSingleEntry(compMethod uint16, name string, compData []byte, uncompSize uint32) []byte {
	lf := NewLocalFileRecord(compMethod, name, compData, uncompSize)
	lfBytes := lf.Marshal()

	cd := NewCentralDirRecord(compMethod, name, lf.CompSize, lf.UncompSize, 0)
	cdBytes := cd.Marshal()

	eocd := NewEOCDRecord(uint32(len(cdBytes)), uint32(len(lfBytes)))
	eocdBytes := eocd.Marshal()

	out := make([]byte, 0, len(lfBytes)+len(cdBytes)+len(eocdBytes))
	out = append(out, lfBytes...)
	out = append(out, cdBytes...)
	out = append(out, eocdBytes...)
	return out
}

// ReadSingleEntry parses the Local File record at the front of a
// single-entry archive produced by WriteSingleEntry (or an equivalent
// single-entry, non-ZIP64 writer) and returns it. The Central Directory
// and EOCD records that follow are not read.
func ReadSingleEntry(data []byte) (*LocalFileRecord, error) {
	lf, _, err := ParseLocalFileRecord(data)
	if err != nil {
		return nil, err
	}
	return lf, nil
}
