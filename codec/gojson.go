package codec

import gojson "github.com/goccy/go-json"

// GoJSON encodes documents with github.com/goccy/go-json. It reads and writes
// the same documents as JSON and is faster on large dependency graphs and
// path frontiers.
type GoJSON struct{}

// Marshal encodes v.
func (GoJSON) Marshal(v any) ([]byte, error) { return gojson.Marshal(v) }

// Unmarshal decodes a document into v.
func (GoJSON) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }

// Name is "go-json", the value stored in envelope headers.
func (GoJSON) Name() string { return "go-json" }
