package codec

import "encoding/json"

// JSON encodes documents with encoding/json. Its output is byte-for-byte what
// other JSON tooling expects from jabalize and analysis files.
type JSON struct{}

func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

func (JSON) Name() string { return "json" }

// Default decodes plain documents and encodes new ones unless a run
// configures another codec.
var Default Codec = GoJSON{}
