package game

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

// Stop reasons reported in Result.
const (
	ReasonStable         = "stable state"
	ReasonMaxGenerations = "generation limit"
	ReasonInterrupted    = "interrupted"
	ReasonClosed         = "window closed"
)

// RunOptions controls pacing and termination of Run.
type RunOptions struct {
	// FrameRate is the delay between generations.
	FrameRate time.Duration
	// StableHold keeps the final frame on screen once a stable state is reached.
	StableHold time.Duration
	// MaxGenerations stops the run after this many generations; 0 means no limit.
	MaxGenerations int
	// Stats, when set, is updated once per rendered frame.
	Stats *utils.Stats
}

// Result summarises a finished run.
type Result struct {
	Generations int
	Stable      bool
	Reason      string
}

// Run renders the simulation once per tick until it becomes stable, hits the
// generation limit, or ctx is cancelled. Cancellation is not an error.
func Run(ctx context.Context, sim *Simulation, r Renderer, opts RunOptions) (Result, error) {
	if opts.FrameRate <= 0 {
		return Result{}, errors.Errorf("[Run] frame rate must be positive, got %v", opts.FrameRate)
	}

	ticker := time.NewTicker(opts.FrameRate)
	defer ticker.Stop()

	lastFrame := time.Now()
	for {
		frame := sim.Frame()
		if opts.Stats != nil {
			now := time.Now()
			opts.Stats.Update(frame.Generation, frame.Living, now.Sub(lastFrame))
			lastFrame = now
			frame.GenerationsPerSecond = opts.Stats.GenerationsPerSecond
		}
		if err := r.Render(frame); err != nil {
			return result(sim, ""), errors.Wrapf(err, "[Run] failed to render generation %d", frame.Generation)
		}

		if sim.Stable() {
			if err := hold(ctx, opts.StableHold); err != nil {
				return result(sim, ReasonInterrupted), nil
			}
			return result(sim, ReasonStable), nil
		}
		if opts.MaxGenerations > 0 && sim.Generation() >= opts.MaxGenerations {
			return result(sim, ReasonMaxGenerations), nil
		}

		if ctx.Err() != nil {
			return result(sim, ReasonInterrupted), nil
		}
		select {
		case <-ctx.Done():
			return result(sim, ReasonInterrupted), nil
		case <-ticker.C:
		}

		sim.Step()
	}
}

func result(sim *Simulation, reason string) Result {
	return Result{
		Generations: sim.Generation(),
		Stable:      sim.Stable(),
		Reason:      reason,
	}
}

// hold waits for d or until ctx is done, whichever comes first.
func hold(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
