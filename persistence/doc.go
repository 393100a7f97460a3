// Package persistence reads instance documents and writes analysis documents.
//
// Documents are encoded with a codec.Codec. Uncompressed documents are plain
// JSON, identical to what earlier tooling produced. Compressed documents are
// wrapped in a small self-describing envelope:
//
//	[magic uint32][version uint16][compression uint8][codec name len uint8]
//	[codec name][crc32 of payload uint32][block]
//
// where block is [uncompressed size uint32][compressed size uint32][data].
// Decode accepts both forms.
package persistence
