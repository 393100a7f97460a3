// Package codec centralizes document encoding.
//
// Input and analysis documents are JSON. Files written with a compression
// envelope record the codec name in their header, so a reader can select the
// same codec by name.
package codec

import "fmt"

// Codec turns instance and analysis documents into bytes and back.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
//
// This is used for self-describing document envelopes that store the codec
// name in their header.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// Names returns the names of the built-in codecs.
func Names() []string {
	return []string{"json", "go-json"}
}

// MustMarshal encodes v with c and panics on error. Tests use it for fixtures.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
