// Package game drives a grid forward one generation per tick and decides when to stop.
package game

import "github.com/sheikhrachel/go-life/model"

// Frame is the state handed to a renderer on every tick.
//
// Grid is only valid for the duration of the Render call: when the simulation
// recycles grids through a pool, a later Step may reuse and overwrite it.
// Renderers that keep a frame must Clone the grid.
type Frame struct {
	Grid                 *model.Grid
	Generation           int
	Living               int
	Stable               bool
	GenerationsPerSecond float64
}

// Renderer draws one frame of the simulation.
type Renderer interface {
	Render(frame Frame) error
}

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(frame Frame) error

func (f RendererFunc) Render(frame Frame) error { return f(frame) }

// Simulation holds the current grid and generation counter.
// Only the current grid is retained; stability is detected against it on each Step.
type Simulation struct {
	grid       *model.Grid
	generation int
	stable     bool

	parallel bool
	pool     *model.GridPool
}

// Option configures a Simulation
type Option func(*Simulation)

// WithParallel computes each generation across all CPUs.
func WithParallel(parallel bool) Option {
	return func(s *Simulation) { s.parallel = parallel }
}

// WithPool recycles superseded grids through pool. A nil pool disables recycling.
func WithPool(pool *model.GridPool) Option {
	return func(s *Simulation) { s.pool = pool }
}

// NewSimulation starts a simulation at generation 0 from grid.
func NewSimulation(grid *model.Grid, opts ...Option) *Simulation {
	s := &Simulation{grid: grid}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Grid returns the current generation. It must not be modified by the caller.
func (s *Simulation) Grid() *model.Grid { return s.grid }

// Generation returns the number of generations advanced so far.
func (s *Simulation) Generation() int { return s.generation }

// Stable reports whether the last Step produced a grid identical to its input.
func (s *Simulation) Stable() bool { return s.stable }

// Step advances the grid by one generation and reports whether it changed.
// Once the grid is stable, Step does nothing and the generation counter stays put.
func (s *Simulation) Step() bool {
	if s.stable {
		return false
	}

	var next *model.Grid
	if s.parallel {
		next = s.grid.NextGenerationParallel(s.pool)
	} else {
		next = s.grid.NextGeneration()
	}

	if next.Equal(s.grid) {
		s.stable = true
		model.GridToPool(next, s.pool)
		return false
	}

	model.GridToPool(s.grid, s.pool)
	s.grid = next
	s.generation++
	return true
}

// Frame snapshots the current state for a renderer.
func (s *Simulation) Frame() Frame {
	return Frame{
		Grid:       s.grid,
		Generation: s.generation,
		Living:     s.grid.CountLivingCells(),
		Stable:     s.stable,
	}
}
