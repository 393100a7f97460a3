package persistence

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/QSI-BAQS/pathsearch/blobstore"
	"github.com/QSI-BAQS/pathsearch/codec"
)

// ManagerOptions configures the persistence manager.
type ManagerOptions struct {
	// Codec encodes written documents and decodes plain ones.
	// Default: codec.Default
	Codec codec.Codec

	// Compression of written documents.
	// Default: CompressionNone
	Compression Compression
}

// Manager reads and writes circuit documents in a blob store.
//
// Reads accept every compression; writes use the configured one.
// The Manager is safe for concurrent use if the store is.
type Manager struct {
	store       blobstore.Store
	codec       codec.Codec
	compression Compression
}

// NewManager creates a manager on store.
func NewManager(store blobstore.Store, opts ManagerOptions) *Manager {
	if opts.Codec == nil {
		opts.Codec = codec.Default
	}
	return &Manager{
		store:       store,
		codec:       opts.Codec,
		compression: opts.Compression,
	}
}

// Store returns the underlying blob store.
func (m *Manager) Store() blobstore.Store { return m.store }

// LoadInstance reads circuit's input document.
func (m *Manager) LoadInstance(ctx context.Context, circuit string) (*Instance, string, error) {
	var in Instance
	name, err := m.load(ctx, circuit, InstanceName, &in)
	if err != nil {
		return nil, "", err
	}
	return &in, name, nil
}

// SaveInstance writes circuit's input document and returns its blob name.
func (m *Manager) SaveInstance(ctx context.Context, circuit string, in *Instance) (string, error) {
	return m.save(ctx, InstanceName(circuit, m.compression), in)
}

// LoadAnalysis reads circuit's analysis document.
func (m *Manager) LoadAnalysis(ctx context.Context, circuit string) (*Analysis, string, error) {
	var a Analysis
	name, err := m.load(ctx, circuit, AnalysisName, &a)
	if err != nil {
		return nil, "", err
	}
	return &a, name, nil
}

// SaveAnalysis writes circuit's analysis document and returns its blob name.
func (m *Manager) SaveAnalysis(ctx context.Context, circuit string, a *Analysis) (string, error) {
	return m.save(ctx, AnalysisName(circuit, m.compression), a)
}

// Analyses returns the sorted circuits that have an analysis document.
func (m *Manager) Analyses(ctx context.Context) ([]string, error) {
	names, err := m.store.List(ctx, "")
	if err != nil {
		return nil, err
	}
	var circuits []string
	for _, name := range names {
		if circuit, analysis, _, ok := ParseName(name); ok && analysis {
			circuits = append(circuits, circuit)
		}
	}
	slices.Sort(circuits)
	return slices.Compact(circuits), nil
}

func (m *Manager) save(ctx context.Context, name string, v any) (string, error) {
	data, err := Encode(m.codec, m.compression, v)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	if err := m.store.Put(ctx, name, data); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return name, nil
}

// load tries the configured compression first, then the others.
func (m *Manager) load(ctx context.Context, circuit string, nameOf func(string, Compression) string, v any) (string, error) {
	order := []Compression{m.compression, CompressionNone, CompressionLZ4, CompressionZSTD}
	tried := make(map[Compression]bool, len(order))

	for _, c := range order {
		if tried[c] {
			continue
		}
		tried[c] = true

		name := nameOf(circuit, c)
		data, err := m.store.Get(ctx, name)
		if errors.Is(err, blobstore.ErrNotFound) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("read %s: %w", name, err)
		}
		if err := Decode(data, m.codec, v); err != nil {
			return "", fmt.Errorf("%s: %w", name, err)
		}
		return name, nil
	}
	return "", fmt.Errorf("%s: %w", nameOf(circuit, CompressionNone), blobstore.ErrNotFound)
}
