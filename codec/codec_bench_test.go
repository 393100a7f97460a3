package codec

import (
	"testing"

	"github.com/QSI-BAQS/pathsearch/scheduler"
)

type benchInstance struct {
	Graph        scheduler.MemoryGraph     `json:"graph"`
	Dependencies scheduler.DependencyGraph `json:"dependencies"`
}

func newBenchInstance(items, width int) benchInstance {
	in := benchInstance{Graph: make(scheduler.MemoryGraph, items)}
	for i := range items {
		in.Graph[i] = []int{(i + 1) % items, (i + items - 1) % items}
		if i%width == 0 {
			in.Dependencies = append(in.Dependencies, nil)
		}
		d := scheduler.Dependency{Item: i}
		if i >= width {
			d.Deps = []int{i - width}
		}
		k := len(in.Dependencies) - 1
		in.Dependencies[k] = append(in.Dependencies[k], d)
	}
	return in
}

func benchmarkCodecMarshal(b *testing.B, c Codec, v any) {
	b.Helper()
	b.ReportAllocs()

	warm, err := c.Marshal(v)
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(warm)))

	var sink []byte
	b.ResetTimer()
	for b.Loop() {
		out, err := c.Marshal(v)
		if err != nil {
			b.Fatal(err)
		}
		sink = out
	}
	_ = sink
}

func benchmarkCodecUnmarshal[T any](b *testing.B, c Codec, data []byte, dst *T) {
	b.Helper()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	var v T
	b.ResetTimer()
	for b.Loop() {
		if err := c.Unmarshal(data, &v); err != nil {
			b.Fatal(err)
		}
	}
	if dst != nil {
		*dst = v
	}
}

func BenchmarkCodec_Marshal_Instance(b *testing.B) {
	in := newBenchInstance(4096, 64)

	b.Run("stdlib", func(b *testing.B) { benchmarkCodecMarshal(b, JSON{}, in) })
	b.Run("go-json", func(b *testing.B) { benchmarkCodecMarshal(b, GoJSON{}, in) })
}

func BenchmarkCodec_Unmarshal_Instance(b *testing.B) {
	jsonData := MustMarshal(JSON{}, newBenchInstance(4096, 64))

	b.Run("stdlib", func(b *testing.B) {
		var sink benchInstance
		benchmarkCodecUnmarshal(b, JSON{}, jsonData, &sink)
		_ = sink
	})
	b.Run("go-json", func(b *testing.B) {
		var sink benchInstance
		benchmarkCodecUnmarshal(b, GoJSON{}, jsonData, &sink)
		_ = sink
	})
}
