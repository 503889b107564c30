package window

import (
	"context"
	"time"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/utils"
)

// stepper advances a simulation at a fixed interval from inside a frame loop
// that runs faster than the simulation.
type stepper struct {
	ctx      context.Context
	sim      *game.Simulation
	interval time.Duration
	maxGen   int
	stats    *utils.Stats

	last time.Time
}

func newStepper(ctx context.Context, sim *game.Simulation, opts Options, now time.Time) *stepper {
	if opts.Interval <= 0 {
		opts.Interval = updateInterval
	}
	return &stepper{
		ctx:      ctx,
		sim:      sim,
		interval: opts.Interval,
		maxGen:   opts.MaxGenerations,
		stats:    opts.Stats,
		last:     now,
	}
}

// done reports whether the window should close because ctx was cancelled.
func (s *stepper) done() bool {
	return s.ctx.Err() != nil
}

// halted reports whether the simulation has nothing left to do: it is stable
// or it has reached the generation limit. The window stays open until ESC.
func (s *stepper) halted() bool {
	return s.sim.Stable() || (s.maxGen > 0 && s.sim.Generation() >= s.maxGen)
}

// advance steps the simulation when at least one interval has passed since the last step.
func (s *stepper) advance(now time.Time) {
	if s.halted() || now.Sub(s.last) < s.interval {
		return
	}
	s.sim.Step()
	if s.stats != nil {
		s.stats.Update(s.sim.Generation(), s.sim.Grid().CountLivingCells(), now.Sub(s.last))
	}
	s.last = now
}

// result summarises the run once the window has closed.
func (s *stepper) result() game.Result {
	res := game.Result{
		Generations: s.sim.Generation(),
		Stable:      s.sim.Stable(),
	}
	switch {
	case s.done():
		res.Reason = game.ReasonInterrupted
	case s.sim.Stable():
		res.Reason = game.ReasonStable
	case s.maxGen > 0 && s.sim.Generation() >= s.maxGen:
		res.Reason = game.ReasonMaxGenerations
	default:
		res.Reason = game.ReasonClosed
	}
	return res
}
