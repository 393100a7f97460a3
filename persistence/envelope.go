package persistence

import (
	"encoding/binary"
	"fmt"

	"github.com/QSI-BAQS/pathsearch/codec"
)

// Encode marshals v with c. With CompressionNone the plain document is
// returned; otherwise the document is compressed and wrapped in an envelope.
func Encode(c codec.Codec, comp Compression, v any) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	payload, err := c.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode with %s: %w", c.Name(), err)
	}
	if comp == CompressionNone {
		return payload, nil
	}

	name := c.Name()
	if len(name) > 255 {
		return nil, fmt.Errorf("%w: name too long", ErrUnknownCodec)
	}
	block, err := compressBlock(payload, comp)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 0, headerFixedSize+len(name)+4+len(block))
	buf = binary.LittleEndian.AppendUint32(buf, MagicNumber)
	buf = binary.LittleEndian.AppendUint16(buf, Version)
	buf = append(buf, byte(comp), byte(len(name)))
	buf = append(buf, name...)
	buf = binary.LittleEndian.AppendUint32(buf, CalculateChecksum(payload))
	return append(buf, block...), nil
}

// IsEnvelope reports whether data starts with the envelope magic number.
func IsEnvelope(data []byte) bool {
	return len(data) >= 4 && binary.LittleEndian.Uint32(data) == MagicNumber
}

// ReadHeader parses the envelope header and returns it together with the
// offset of the compressed block.
func ReadHeader(data []byte) (Header, int, error) {
	if len(data) < headerFixedSize {
		return Header{}, 0, ErrTruncated
	}
	if !IsEnvelope(data) {
		return Header{}, 0, ErrInvalidMagic
	}

	h := Header{
		Version:     binary.LittleEndian.Uint16(data[4:]),
		Compression: Compression(data[6]),
	}
	if h.Version == 0 || h.Version > Version {
		return Header{}, 0, fmt.Errorf("%w: %d", ErrInvalidVersion, h.Version)
	}

	off := headerFixedSize
	end := off + int(data[7])
	if len(data) < end+4 {
		return Header{}, 0, ErrTruncated
	}
	h.Codec = string(data[off:end])
	h.Checksum = binary.LittleEndian.Uint32(data[end:])
	return h, end + 4, nil
}

// Decode unmarshals data into v. Envelopes are decompressed, verified and
// decoded with the codec named in their header. Plain documents are decoded
// with fallback (codec.Default when nil).
func Decode(data []byte, fallback codec.Codec, v any) error {
	if !IsEnvelope(data) {
		if fallback == nil {
			fallback = codec.Default
		}
		if err := fallback.Unmarshal(data, v); err != nil {
			return fmt.Errorf("decode with %s: %w", fallback.Name(), err)
		}
		return nil
	}

	h, off, err := ReadHeader(data)
	if err != nil {
		return err
	}
	c, ok := codec.ByName(h.Codec)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCodec, h.Codec)
	}
	payload, err := decompressBlock(data[off:], h.Compression)
	if err != nil {
		return err
	}
	if err := verifyChecksum(payload, h.Checksum); err != nil {
		return err
	}
	if err := c.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("decode with %s: %w", c.Name(), err)
	}
	return nil
}
