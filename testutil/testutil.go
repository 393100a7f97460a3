package testutil

import (
	"fmt"
	"math/rand"
	"slices"
	"sync"

	"github.com/QSI-BAQS/pathsearch/core"
	"github.com/QSI-BAQS/pathsearch/scheduler"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// InstanceConfig shapes a random instance.
type InstanceConfig struct {
	Items    int     // number of items
	Layers   int     // number of dependency layers, at least 1
	MaxDeps  int     // maximum dependencies per item outside the first layer
	EdgeProb float64 // probability of each memory-graph edge
}

// Instance is a dependency graph together with its memory graph.
type Instance struct {
	Deps  scheduler.DependencyGraph
	Graph scheduler.MemoryGraph
}

// Items returns the number of items.
func (in Instance) Items() int { return len(in.Graph) }

// Scheduler builds a fresh scheduler for the instance.
func (in Instance) Scheduler() (*scheduler.Scheduler, error) {
	return scheduler.New(in.Deps, in.Graph)
}

// Instance generates a random instance. Items are spread over the layers in
// index order; every item of a later layer depends on 1..MaxDeps items of
// earlier layers.
func (r *RNG) Instance(cfg InstanceConfig) Instance {
	r.mu.Lock()
	defer r.mu.Unlock()

	layers := max(cfg.Layers, 1)
	maxDeps := max(cfg.MaxDeps, 1)

	// every layer gets at least one item while items last
	layerOf := make([]int, cfg.Items)
	for i := range layerOf {
		if i < layers {
			layerOf[i] = i
		} else {
			layerOf[i] = r.rand.Intn(layers)
		}
	}
	slices.Sort(layerOf)

	deps := make(scheduler.DependencyGraph, 0, layers)
	for item, k := range layerOf {
		for len(deps) <= k {
			deps = append(deps, nil)
		}
		d := scheduler.Dependency{Item: item}
		if k > 0 {
			earlier := 0
			for earlier < len(layerOf) && layerOf[earlier] < k {
				earlier++
			}
			n := 1 + r.rand.Intn(maxDeps)
			seen := make(map[int]bool, n)
			for range n {
				dep := r.rand.Intn(earlier)
				if !seen[dep] {
					seen[dep] = true
					d.Deps = append(d.Deps, dep)
				}
			}
		}
		deps[k] = append(deps[k], d)
	}

	graph := make(scheduler.MemoryGraph, cfg.Items)
	for i := range cfg.Items {
		graph[i] = []int{}
		for j := range i {
			if r.rand.Float64() < cfg.EdgeProb {
				graph[i] = append(graph[i], j)
				graph[j] = append(graph[j], i)
			}
		}
	}

	return Instance{Deps: deps, Graph: graph}
}

// ReferenceFrontier walks every ordering of the instance without pruning and
// returns the frontier of (length, memory) pairs.
func ReferenceFrontier(in Instance) ([]core.Pair, error) {
	s, err := in.Scheduler()
	if err != nil {
		return nil, err
	}

	best := make(map[int]int)
	depth := 0
	sweep := s.Sweep()
	for step, ok := sweep.Next(); ok; step, ok = sweep.Next() {
		if step.Kind == core.Forward {
			depth++
			continue
		}
		if step.Leaf {
			if m, seen := best[depth]; !seen || step.Memory < m {
				best[depth] = step.Memory
			}
		}
		depth--
	}

	var out []core.Pair
	floor := in.Items() + 1
	for length := 0; length <= in.Items(); length++ {
		if m, ok := best[length]; ok && m < floor {
			out = append(out, core.Pair{Length: length, Memory: m})
			floor = m
		}
	}
	return out, nil
}

// ReplayPath measures path step by step on a fresh scheduler and returns its
// peak memory. It fails unless path is a complete, legal ordering.
func ReplayPath(in Instance, path core.Path) (int, error) {
	s, err := in.Scheduler()
	if err != nil {
		return 0, err
	}
	for i, set := range path {
		if err := s.FocusInPlace(set); err != nil {
			return 0, fmt.Errorf("step %d: %w", i, err)
		}
	}
	if !s.Time().AtLeaf() {
		return 0, fmt.Errorf("path measures %d of %d items", s.Time().Measured(), s.Items())
	}
	return s.Space().MaxMemory(), nil
}
