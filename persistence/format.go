package persistence

import "errors"

const (
	// MagicNumber identifies envelope files (bytes "PATH" on disk).
	MagicNumber = 0x48544150
	// Version is the current envelope format version.
	Version = 1
)

var (
	ErrInvalidMagic       = errors.New("invalid magic number")
	ErrInvalidVersion     = errors.New("unsupported version")
	ErrUnknownCodec       = errors.New("unknown codec")
	ErrUnknownCompression = errors.New("unknown compression")
	ErrTruncated          = errors.New("truncated envelope")
	ErrBlockTooLarge      = errors.New("block exceeds size limit")
)

// Header is the decoded envelope header.
type Header struct {
	Version     uint16
	Compression Compression
	Codec       string
	Checksum    uint32 // CRC32 of the uncompressed payload
}

// magic(4) + version(2) + compression(1) + codec name length(1)
const headerFixedSize = 8
