package search

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/QSI-BAQS/pathsearch/core"
	"github.com/QSI-BAQS/pathsearch/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Sequential(t *testing.T) {
	rep, err := Run(context.Background(), sweep(t, chain), 3, Options{Threads: 1})
	require.NoError(t, err)

	assert.False(t, rep.Parallel)
	assert.Equal(t, 1, rep.Tasks)
	assert.Equal(t, 3, rep.Items)
	assert.Equal(t, []core.Pair{{Length: 2, Memory: 2}}, rep.Frontier.Pairs())
}

func TestRun_InvalidThreads(t *testing.T) {
	_, err := Run(context.Background(), sweep(t, chain), 3, Options{Threads: 0})
	assert.ErrorIs(t, err, ErrInvalidThreads)
}

func TestRun_ParallelMatchesSequential(t *testing.T) {
	rng := testutil.NewRNG(4711)
	for range 15 {
		in := rng.Instance(testutil.InstanceConfig{Items: 6, Layers: 3, MaxDeps: 2, EdgeProb: 0.4})
		want, err := testutil.ReferenceFrontier(in)
		require.NoError(t, err)

		seq, err := Run(context.Background(), sweep(t, in), in.Items(), Options{Threads: 2})
		require.NoError(t, err)
		assert.Equal(t, want, seq.Frontier.Pairs())

		for _, taskBound := range []int{-1, 0, 1, 3, 10000} {
			for _, threads := range []int{3, 4, 8} {
				rep, err := Run(context.Background(), sweep(t, in), in.Items(), Options{Threads: threads, TaskBound: taskBound})
				require.NoError(t, err)
				assert.True(t, rep.Parallel)
				assert.Equal(t, seq.Frontier.Pairs(), rep.Frontier.Pairs(), "threads %d, task bound %d", threads, taskBound)
				assert.LessOrEqual(t, rep.PeakActive, int64(threads-1))

				for _, r := range rep.Frontier {
					mem, err := testutil.ReplayPath(in, r.Path)
					require.NoError(t, err)
					assert.Equal(t, r.Memory, mem)
				}
			}
		}
	}
}

func TestRun_TaskBoundZeroIsSingleTask(t *testing.T) {
	rng := testutil.NewRNG(7)
	in := rng.Instance(testutil.InstanceConfig{Items: 6, Layers: 2, MaxDeps: 2, EdgeProb: 0.5})

	seq, err := Run(context.Background(), sweep(t, in), in.Items(), Options{Threads: 1})
	require.NoError(t, err)

	rep, err := Run(context.Background(), sweep(t, in), in.Items(), Options{Threads: 4, TaskBound: 0})
	require.NoError(t, err)

	assert.Equal(t, 1, rep.Tasks)
	assert.Equal(t, seq.Frontier, rep.Frontier)
	assert.Equal(t, seq.Stats, rep.Stats)
}

func TestRun_BoundNeverIncreases(t *testing.T) {
	rng := testutil.NewRNG(12)
	in := rng.Instance(testutil.InstanceConfig{Items: 7, Layers: 3, MaxDeps: 2, EdgeProb: 0.3})

	var bounds []core.Bound
	rep, err := Run(context.Background(), sweep(t, in), in.Items(), Options{
		Threads:   4,
		TaskBound: -1,
		OnTask:    func(r TaskReport) { bounds = append(bounds, r.Bound) },
	})
	require.NoError(t, err)
	require.Len(t, bounds, rep.Tasks)

	for i := 1; i < len(bounds); i++ {
		for j := range bounds[i] {
			assert.LessOrEqual(t, bounds[i][j], bounds[i-1][j])
		}
	}
	for j := 1; j < len(rep.Bound); j++ {
		assert.LessOrEqual(t, rep.Bound[j], rep.Bound[j-1])
	}
}

func TestRun_LogsTasks(t *testing.T) {
	for _, threads := range []int{1, 2, 4} {
		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		_, err := Run(context.Background(), sweep(t, chain), 3, Options{Threads: threads, TaskBound: 0, Logger: log})
		require.NoError(t, err)

		levels := map[string]string{}
		dec := json.NewDecoder(&buf)
		for dec.More() {
			var rec struct {
				Level string `json:"level"`
				Msg   string `json:"msg"`
			}
			require.NoError(t, dec.Decode(&rec))
			levels[rec.Msg] = rec.Level
		}
		assert.Equal(t, "DEBUG", levels["task started"], "threads %d", threads)
		assert.Equal(t, "INFO", levels["task finished"], "threads %d", threads)
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, threads := range []int{1, 4} {
		_, err := Run(ctx, sweep(t, chain), 3, Options{Threads: threads, TaskBound: -1})
		assert.ErrorIs(t, err, context.Canceled)
	}
}

// panicSource splits once, and every source it hands out panics when stepped.
type panicSource struct {
	split bool
}

func (p *panicSource) Next() (core.Step, bool) { panic("boom") }
func (p *panicSource) AtLeaf() bool            { return false }
func (p *panicSource) HasUnmeasurable() bool   { return false }
func (p *panicSource) MaxMemory() int          { return 0 }
func (p *panicSource) SkipCurrent() error      { return nil }

func (p *panicSource) NextAndFocus() (core.StepSource, core.MeasurableSet, bool) {
	if p.split {
		return nil, nil, false
	}
	p.split = true
	return &panicSource{split: true}, core.MeasurableSet{0}, true
}

func TestRun_WorkerPanic(t *testing.T) {
	_, err := Run(context.Background(), &panicSource{}, 3, Options{Threads: 3, TaskBound: -1})
	require.ErrorIs(t, err, ErrWorkerPanic)

	var te *TaskError
	assert.ErrorAs(t, err, &te)
}
