// Package zipfile builds and parses the three fixed-layout records a
// minimal, single-entry ZIP archive needs: the Local File record, the
// Central Directory record, and the End Of Central Directory record.
// All three are little-endian; the layouts and sentinel field values
// (version-needed, platform, the placeholder CRC) follow the original
// archive writer this package's DEFLATE codec pairs with.
//
// Scope matches a one-shot, single-entry, in-memory archive: no ZIP64,
// no spanning, no multi-entry central directories, and no live CRC-32 —
// the CRC field stays the documented sentinel. Use comp-method 0
// (stored) to hold file data verbatim, or 8 (deflate) with bytes already
// produced by the sibling deflate package.
package zipfile

import (
	"encoding/binary"
	"errors"
)

// Comp-method values recognized in the comp-method field.
const (
	MethodStored  = 0
	MethodDeflate = 8
)

// Sentinel and fixed field values every record in this package writes,
// mirroring the original archive writer's constants exactly.
const (
	localFileSignature      = 0x04034b50
	centralDirSignature     = 0x02014b50
	eocdSignature           = 0x06054b50
	versionNeededLocal      = 20
	versionSpecCentral      = 30
	madeByPlatform          = 65
	versionNeededCentral    = 20
	internalFileAttrs       = 1
	externalFileAttrs       = 1
	placeholderCRC32        = 0xDEADBEEF
	localFileRecordBaseSize = 30
	centralDirBaseSize      = 46
	eocdBaseSize            = 22
)

var (
	// ErrBadSignature is returned when a record's leading signature
	// does not match the expected magic value.
	ErrBadSignature = errors.New("zipfile: bad record signature")
	// ErrTruncatedRecord is returned when fewer bytes remain than a
	// record's fixed-size header, or than its declared variable-length
	// fields, require.
	ErrTruncatedRecord = errors.New("zipfile: truncated record")
	// ErrUnsupportedFeature is returned by ParseCentralDirRecord when the
	// disk-number-start field is nonzero. No parser checks ZIP64 markers,
	// encryption flags, or the EOCD record's disk fields.
	ErrUnsupportedFeature = errors.New("zipfile: unsupported ZIP feature")
)

// LocalFileRecord is the 30-byte-plus-variable header that precedes a
// file's data within the archive.
type LocalFileRecord struct {
	VersionNeeded    uint16
	GeneralFlag      uint16
	CompMethod       uint16
	ModTime          uint16
	ModDate          uint16
	CRC32            uint32
	CompSize         uint32
	UncompSize       uint32
	Name             string
	Extra            []byte
	Data             []byte
}

// NewLocalFileRecord builds a Local File record for name/data compressed
// with compMethod. compData is the (possibly already-compressed) bytes
// to store; uncompSize is the original, pre-compression length.
func NewLocalFileRecord(compMethod uint16, name string, compData []byte, uncompSize uint32) *LocalFileRecord {
	return &LocalFileRecord{
		VersionNeeded: versionNeededLocal,
		GeneralFlag:   0,
		CompMethod:    compMethod,
		ModTime:       0,
		ModDate:       0,
		CRC32:         placeholderCRC32,
		CompSize:      uint32(len(compData)),
		UncompSize:    uncompSize,
		Name:          name,
		Data:          compData,
	}
}

// Len returns the total encoded size of the record in bytes.
func (r *LocalFileRecord) Len() int {
	return localFileRecordBaseSize + len(r.Name) + len(r.Extra) + len(r.Data)
}

// Marshal encodes the record exactly per the Local File layout above.
func (r *LocalFileRecord) Marshal() []byte {
	buf := make([]byte, localFileRecordBaseSize, r.Len())
	binary.LittleEndian.PutUint32(buf[0:4], localFileSignature)
	binary.LittleEndian.PutUint16(buf[4:6], r.VersionNeeded)
	binary.LittleEndian.PutUint16(buf[6:8], r.GeneralFlag)
	binary.LittleEndian.PutUint16(buf[8:10], r.CompMethod)
	binary.LittleEndian.PutUint16(buf[10:12], r.ModTime)
	binary.LittleEndian.PutUint16(buf[12:14], r.ModDate)
	binary.LittleEndian.PutUint32(buf[14:18], r.CRC32)
	binary.LittleEndian.PutUint32(buf[18:22], r.CompSize)
	binary.LittleEndian.PutUint32(buf[22:26], r.UncompSize)
	binary.LittleEndian.PutUint16(buf[26:28], uint16(len(r.Name)))
	binary.LittleEndian.PutUint16(buf[28:30], uint16(len(r.Extra)))
	buf = append(buf, r.Name...)
	buf = append(buf, r.Extra...)
	buf = append(buf, r.Data...)
	return buf
}

// ParseLocalFileRecord reads a Local File record from the front of data,
// returning the record and the number of bytes consumed. comp-size vs.
// uncomp-size determines how many file-data bytes follow: stored
// (comp-method 0) entries size the read by uncomp-size, everything else
// by comp-size, matching how the original archive reader sizes its read.
func ParseLocalFileRecord(data []byte) (*LocalFileRecord, int, error) {
	if len(data) < localFileRecordBaseSize {
		return nil, 0, ErrTruncatedRecord
	}
	if binary.LittleEndian.Uint32(data[0:4]) != localFileSignature {
		return nil, 0, ErrBadSignature
	}

	r := &LocalFileRecord{
		VersionNeeded: binary.LittleEndian.Uint16(data[4:6]),
		GeneralFlag:   binary.LittleEndian.Uint16(data[6:8]),
		CompMethod:    binary.LittleEndian.Uint16(data[8:10]),
		ModTime:       binary.LittleEndian.Uint16(data[10:12]),
		ModDate:       binary.LittleEndian.Uint16(data[12:14]),
		CRC32:         binary.LittleEndian.Uint32(data[14:18]),
		CompSize:      binary.LittleEndian.Uint32(data[18:22]),
		UncompSize:    binary.LittleEndian.Uint32(data[22:26]),
	}
	nameLen := binary.LittleEndian.Uint16(data[26:28])
	extraLen := binary.LittleEndian.Uint16(data[28:30])

	off := localFileRecordBaseSize
	if len(data) < off+int(nameLen)+int(extraLen) {
		return nil, 0, ErrTruncatedRecord
	}
	r.Name = string(data[off : off+int(nameLen)])
	off += int(nameLen)
	r.Extra = data[off : off+int(extraLen)]
	off += int(extraLen)

	var dataLen uint32
	if r.CompMethod == MethodStored {
		dataLen = r.UncompSize
	} else {
		dataLen = r.CompSize
	}
	if len(data) < off+int(dataLen) {
		return nil, 0, ErrTruncatedRecord
	}
	r.Data = data[off : off+int(dataLen)]
	off += int(dataLen)

	return r, off, nil
}

// CentralDirRecord is one entry of the archive's central directory,
// carrying the same per-file metadata as the Local File record plus the
// offset back to it.
type CentralDirRecord struct {
	CompMethod        uint16
	ModTime           uint16
	ModDate           uint16
	CRC32             uint32
	CompSize          uint32
	UncompSize        uint32
	DiskNumberStart   uint16
	InternalFileAttrs uint16
	ExternalFileAttrs uint32
	LocalHeaderOffset uint32
	Name              string
	Extra             []byte
	Comment           []byte
}

// NewCentralDirRecord builds a Central Directory record pointing at the
// Local File record written at localHeaderOffset.
func NewCentralDirRecord(compMethod uint16, name string, compSize, uncompSize, localHeaderOffset uint32) *CentralDirRecord {
	return &CentralDirRecord{
		CompMethod:        compMethod,
		ModTime:           0,
		ModDate:           0,
		CRC32:             placeholderCRC32,
		CompSize:          compSize,
		UncompSize:        uncompSize,
		InternalFileAttrs: internalFileAttrs,
		ExternalFileAttrs: externalFileAttrs,
		LocalHeaderOffset: localHeaderOffset,
		Name:              name,
	}
}

// Len returns the total encoded size of the record in bytes.
func (r *CentralDirRecord) Len() int {
	return centralDirBaseSize + len(r.Name) + len(r.Extra) + len(r.Comment)
}

// Marshal encodes the record exactly per the Central Directory record
// layout, with version-made-by, platform, version-needed, and the
// internal/external attribute fields fixed at the sentinel values the
// original archive writer uses.
func (r *CentralDirRecord) Marshal() []byte {
	buf := make([]byte, centralDirBaseSize, r.Len())
	binary.LittleEndian.PutUint32(buf[0:4], centralDirSignature)
	buf[4] = versionSpecCentral
	buf[5] = madeByPlatform
	binary.LittleEndian.PutUint16(buf[6:8], versionNeededCentral)
	binary.LittleEndian.PutUint16(buf[8:10], 0) // general flag
	binary.LittleEndian.PutUint16(buf[10:12], r.CompMethod)
	binary.LittleEndian.PutUint16(buf[12:14], r.ModTime)
	binary.LittleEndian.PutUint16(buf[14:16], r.ModDate)
	binary.LittleEndian.PutUint32(buf[16:20], r.CRC32)
	binary.LittleEndian.PutUint32(buf[20:24], r.CompSize)
	binary.LittleEndian.PutUint32(buf[24:28], r.UncompSize)
	binary.LittleEndian.PutUint16(buf[28:30], uint16(len(r.Name)))
	binary.LittleEndian.PutUint16(buf[30:32], uint16(len(r.Extra)))
	binary.LittleEndian.PutUint16(buf[32:34], uint16(len(r.Comment)))
	binary.LittleEndian.PutUint16(buf[34:36], r.DiskNumberStart)
	binary.LittleEndian.PutUint16(buf[36:38], r.InternalFileAttrs)
	binary.LittleEndian.PutUint32(buf[38:42], r.ExternalFileAttrs)
	binary.LittleEndian.PutUint32(buf[42:46], r.LocalHeaderOffset)
	buf = append(buf, r.Name...)
	buf = append(buf, r.Extra...)
	buf = append(buf, r.Comment...)
	return buf
}

// ParseCentralDirRecord reads a Central Directory record from the front
// of data, returning the record and the number of bytes consumed.
func ParseCentralDirRecord(data []byte) (*CentralDirRecord, int, error) {
	if len(data) < centralDirBaseSize {
		return nil, 0, ErrTruncatedRecord
	}
	if binary.LittleEndian.Uint32(data[0:4]) != centralDirSignature {
		return nil, 0, ErrBadSignature
	}

	r := &CentralDirRecord{
		CompMethod:        binary.LittleEndian.Uint16(data[10:12]),
		ModTime:           binary.LittleEndian.Uint16(data[12:14]),
		ModDate:           binary.LittleEndian.Uint16(data[14:16]),
		CRC32:             binary.LittleEndian.Uint32(data[16:20]),
		CompSize:          binary.LittleEndian.Uint32(data[20:24]),
		UncompSize:        binary.LittleEndian.Uint32(data[24:28]),
		DiskNumberStart:   binary.LittleEndian.Uint16(data[34:36]),
		InternalFileAttrs: binary.LittleEndian.Uint16(data[36:38]),
		ExternalFileAttrs: binary.LittleEndian.Uint32(data[38:42]),
		LocalHeaderOffset: binary.LittleEndian.Uint32(data[42:46]),
	}
	nameLen := binary.LittleEndian.Uint16(data[28:30])
	extraLen := binary.LittleEndian.Uint16(data[30:32])
	commentLen := binary.LittleEndian.Uint16(data[32:34])
	if r.DiskNumberStart != 0 {
		return nil, 0, ErrUnsupportedFeature
	}

	off := centralDirBaseSize
	end := off + int(nameLen) + int(extraLen) + int(commentLen)
	if len(data) < end {
		return nil, 0, ErrTruncatedRecord
	}
	r.Name = string(data[off : off+int(nameLen)])
	off += int(nameLen)
	r.Extra = data[off : off+int(extraLen)]
	off += int(extraLen)
	r.Comment = data[off : off+int(commentLen)]
	off += int(commentLen)

	return r, off, nil
}

// EOCDRecord is the End Of Central Directory record, the fixed tail
// every ZIP reader locates first to find the central directory.
type EOCDRecord struct {
	TotalEntriesOnDisk uint16
	TotalEntries       uint16
	CentralDirSize     uint32
	CentralDirOffset   uint32
	Comment            []byte
}

// NewEOCDRecord builds the single-entry EOCD record for a central
// directory of the given size and offset.
func NewEOCDRecord(cdSize, cdOffset uint32) *EOCDRecord {
	return &EOCDRecord{
		TotalEntriesOnDisk: 1,
		TotalEntries:       1,
		CentralDirSize:     cdSize,
		CentralDirOffset:   cdOffset,
	}
}

// Len returns the total encoded size of the record in bytes.
func (r *EOCDRecord) Len() int {
	return eocdBaseSize + len(r.Comment)
}

// Marshal encodes the record exactly per the EOCD layout above.
func (r *EOCDRecord) Marshal() []byte {
	buf := make([]byte, eocdBaseSize, r.Len())
	binary.LittleEndian.PutUint32(buf[0:4], eocdSignature)
	binary.LittleEndian.PutUint16(buf[4:6], 0) // disk #
	binary.LittleEndian.PutUint16(buf[6:8], 0) // cd-start-disk
	binary.LittleEndian.PutUint16(buf[8:10], r.TotalEntriesOnDisk)
	binary.LittleEndian.PutUint16(buf[10:12], r.TotalEntries)
	binary.LittleEndian.PutUint32(buf[12:16], r.CentralDirSize)
	binary.LittleEndian.PutUint32(buf[16:20], r.CentralDirOffset)
	binary.LittleEndian.PutUint16(buf[20:22], uint16(len(r.Comment)))
	buf = append(buf, r.Comment...)
	return buf
}

// ParseEOCDRecord reads an EOCD record from the front of data.
func ParseEOCDRecord(data []byte) (*EOCDRecord, int, error) {
	if len(data) < eocdBaseSize {
		return nil, 0, ErrTruncatedRecord
	}
	if binary.LittleEndian.Uint32(data[0:4]) != eocdSignature {
		return nil, 0, ErrBadSignature
	}

	r := &EOCDRecord{
		TotalEntriesOnDisk: binary.LittleEndian.Uint16(data[8:10]),
		TotalEntries:       binary.LittleEndian.Uint16(data[10:12]),
		CentralDirSize:     binary.LittleEndian.Uint32(data[12:16]),
		CentralDirOffset:   binary.LittleEndian.Uint32(data[16:20]),
	}
	commentLen := binary.LittleEndian.Uint16(data[20:22])
	if len(data) < eocdBaseSize+int(commentLen) {
		return nil, 0, ErrTruncatedRecord
	}
	r.Comment = data[eocdBaseSize : eocdBaseSize+int(commentLen)]

	return r, eocdBaseSize + int(commentLen), nil
}
