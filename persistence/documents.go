package persistence

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/QSI-BAQS/pathsearch/core"
	"github.com/QSI-BAQS/pathsearch/scheduler"
)

// Instance is the input document of a circuit.
//
// Only Graph and Dependencies are interpreted; the remaining fields are
// carried through to the analysis unchanged.
type Instance struct {
	Graph        scheduler.MemoryGraph     `json:"graph"`
	Dependencies scheduler.DependencyGraph `json:"dependencies"`

	LocalOps     json.RawMessage `json:"local_ops,omitempty"`
	InputMap     json.RawMessage `json:"input_map,omitempty"`
	OutputMap    json.RawMessage `json:"output_map,omitempty"`
	FramesMap    json.RawMessage `json:"frames_map,omitempty"`
	Initializer  json.RawMessage `json:"initializer,omitempty"`
	Measurements json.RawMessage `json:"measurements,omitempty"`
}

// Items returns the number of items of the memory graph.
func (in *Instance) Items() int { return len(in.Graph) }

// Paths is a frontier in its document form:
// [[length, [memory, path]], ...].
type Paths core.Frontier

// MarshalJSON implements json.Marshaler.
func (p Paths) MarshalJSON() ([]byte, error) {
	out := make([]any, len(p))
	for i, r := range p {
		path := r.Path
		if path == nil {
			path = core.Path{}
		}
		out[i] = []any{r.Length, []any{r.Memory, path}}
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Paths) UnmarshalJSON(data []byte) error {
	var entries [][]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	out := make(Paths, len(entries))
	for i, e := range entries {
		if len(e) != 2 {
			return fmt.Errorf("paths[%d]: expected [length, [memory, path]], got %d elements", i, len(e))
		}
		if err := json.Unmarshal(e[0], &out[i].Length); err != nil {
			return fmt.Errorf("paths[%d] length: %w", i, err)
		}
		var inner []json.RawMessage
		if err := json.Unmarshal(e[1], &inner); err != nil {
			return fmt.Errorf("paths[%d]: %w", i, err)
		}
		if len(inner) != 2 {
			return fmt.Errorf("paths[%d]: expected [memory, path], got %d elements", i, len(inner))
		}
		if err := json.Unmarshal(inner[0], &out[i].Memory); err != nil {
			return fmt.Errorf("paths[%d] memory: %w", i, err)
		}
		if err := json.Unmarshal(inner[1], &out[i].Path); err != nil {
			return fmt.Errorf("paths[%d] path: %w", i, err)
		}
	}
	*p = out
	return nil
}

// Analysis is the output document of a run: the frontier, the echoed input
// and some run metadata.
type Analysis struct {
	Paths Paths `json:"paths"`

	Mode      string        `json:"mode,omitempty"`
	Threads   int           `json:"threads,omitempty"`
	TaskBound int           `json:"task_bound,omitempty"`
	Tasks     int           `json:"tasks,omitempty"`
	Duration  time.Duration `json:"duration_ns,omitempty"`

	Instance
}

// Frontier returns the paths as a core.Frontier.
func (a *Analysis) Frontier() core.Frontier { return core.Frontier(a.Paths) }
