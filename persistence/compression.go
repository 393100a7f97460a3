package persistence

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression defines the compression algorithm of an envelope.
type Compression uint8

const (
	// CompressionNone writes plain documents without an envelope.
	CompressionNone Compression = 0
	// CompressionLZ4 indicates LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD indicates ZSTD block compression (better ratio).
	CompressionZSTD Compression = 2
)

// String implements fmt.Stringer.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

// Extension returns the file name suffix for c.
func (c Compression) Extension() string {
	switch c {
	case CompressionLZ4:
		return ".lz4"
	case CompressionZSTD:
		return ".zst"
	default:
		return ""
	}
}

// ParseCompression parses "none", "lz4" or "zstd" (case-insensitive; "" is none).
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd", "zst":
		return CompressionZSTD, nil
	default:
		return CompressionNone, fmt.Errorf("%w: %q", ErrUnknownCompression, s)
	}
}

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(MaxDocumentSize))
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// Block format: [UncompressedSize uint32][CompressedSize uint32][Data...]
// If CompressedSize == 0, the block is stored uncompressed.
const blockHeaderSize = 8

// MaxDocumentSize caps the uncompressed size of an enveloped document.
const MaxDocumentSize = 1 << 30

// lz4MaxRatio is the largest expansion an LZ4 block can encode: every
// compressed byte yields at most 255 bytes of output.
const lz4MaxRatio = 255

// compressBlock compresses data with the given algorithm. Data that does not
// shrink by at least 10% is stored uncompressed.
func compressBlock(data []byte, c Compression) ([]byte, error) {
	var compressed []byte
	switch c {
	case CompressionLZ4:
		compressed = make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, compressed, nil)
		if err != nil {
			return nil, err
		}
		compressed = compressed[:n] // n == 0: incompressible
	case CompressionZSTD:
		enc := getZstdEncoder()
		compressed = enc.EncodeAll(data, nil)
		putZstdEncoder(enc)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, uint8(c))
	}

	stored, size := compressed, uint32(len(compressed))
	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*0.9 {
		stored, size = data, 0
	}

	result := make([]byte, blockHeaderSize+len(stored))
	binary.LittleEndian.PutUint32(result[0:], uint32(len(data)))
	binary.LittleEndian.PutUint32(result[4:], size)
	copy(result[blockHeaderSize:], stored)
	return result, nil
}

// decompressBlock reverses compressBlock.
func decompressBlock(data []byte, c Compression) ([]byte, error) {
	if len(data) < blockHeaderSize {
		return nil, fmt.Errorf("%w: block too small for header", ErrTruncated)
	}

	uncompressedSize := binary.LittleEndian.Uint32(data[0:])
	compressedSize := binary.LittleEndian.Uint32(data[4:])
	body := data[blockHeaderSize:]

	if compressedSize == 0 {
		if uint64(len(body)) < uint64(uncompressedSize) {
			return nil, fmt.Errorf("%w: block data too small", ErrTruncated)
		}
		return body[:uncompressedSize], nil
	}

	if uint64(len(body)) < uint64(compressedSize) {
		return nil, fmt.Errorf("%w: compressed block data too small", ErrTruncated)
	}
	body = body[:compressedSize]
	if uncompressedSize > MaxDocumentSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrBlockTooLarge, uncompressedSize)
	}

	switch c {
	case CompressionLZ4:
		if uint64(uncompressedSize) > lz4MaxRatio*uint64(compressedSize) {
			return nil, fmt.Errorf("%w: %d bytes from %d", ErrBlockTooLarge, uncompressedSize, compressedSize)
		}
		result := make([]byte, uncompressedSize)
		n, err := lz4.UncompressBlock(body, result)
		if err != nil {
			return nil, err
		}
		if uint32(n) != uncompressedSize {
			return nil, errors.New("decompressed size mismatch")
		}
		return result, nil

	case CompressionZSTD:
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)

		// The frame header sizes the output; the claimed size is only checked.
		decoded, err := dec.DecodeAll(body, nil)
		if err != nil {
			return nil, err
		}
		if uint32(len(decoded)) != uncompressedSize {
			return nil, errors.New("decompressed size mismatch")
		}
		return decoded, nil

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, uint8(c))
	}
}
