package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/patterns"
	"github.com/sheikhrachel/go-life/utils"
)

const tick = time.Millisecond

// dyingDomino is two adjacent cells: it dies in one generation and then stays empty.
func dyingDomino() *model.Grid {
	g := model.NewGrid(6, 6)
	g.Set(2, 2, true)
	g.Set(3, 2, true)
	return g
}

func TestSimulationStepToStable(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		sim := NewSimulation(dyingDomino(), WithParallel(parallel), WithPool(model.NewGridPool()))

		if !sim.Step() {
			t.Fatal("first step should change the grid")
		}
		if sim.Generation() != 1 || sim.Stable() {
			t.Fatalf("after one step: generation=%d stable=%v", sim.Generation(), sim.Stable())
		}
		if n := sim.Grid().CountLivingCells(); n != 0 {
			t.Fatalf("domino left %d cells", n)
		}

		if sim.Step() {
			t.Fatal("empty grid reported a change")
		}
		if !sim.Stable() || sim.Generation() != 1 {
			t.Fatalf("after stable step: generation=%d stable=%v", sim.Generation(), sim.Stable())
		}

		sim.Step()
		if sim.Generation() != 1 {
			t.Fatalf("stepping a stable simulation advanced the generation to %d", sim.Generation())
		}
	}
}

func TestSimulationOscillatorNeverStable(t *testing.T) {
	g := model.NewGrid(10, 10)
	patterns.Blinker(g, 3, 4)
	start := g.Clone()

	sim := NewSimulation(g, WithParallel(true), WithPool(model.NewGridPool()))
	for i := 0; i < 6; i++ {
		if !sim.Step() {
			t.Fatalf("blinker reported stable at step %d", i+1)
		}
	}
	if !sim.Grid().Equal(start) {
		t.Fatalf("blinker after 6 generations:\n%s", sim.Grid())
	}
	if sim.Generation() != 6 {
		t.Fatalf("generation = %d, want 6", sim.Generation())
	}
}

func TestSimulationFrame(t *testing.T) {
	sim := NewSimulation(patterns.Build(patterns.PulsarScene, 50, 30))
	f := sim.Frame()
	if f.Living != 48 || f.Generation != 0 || f.Stable || f.Grid != sim.Grid() {
		t.Fatalf("unexpected frame %+v", f)
	}
}

func TestRunStopsAtStableState(t *testing.T) {
	var frames []Frame
	r := RendererFunc(func(f Frame) error {
		f.Grid = f.Grid.Clone()
		frames = append(frames, f)
		return nil
	})

	stats := utils.NewStats()
	res, err := Run(context.Background(), NewSimulation(dyingDomino()), r, RunOptions{FrameRate: tick, Stats: stats})
	if err != nil {
		t.Fatal(err)
	}
	if res.Reason != ReasonStable || !res.Stable || res.Generations != 1 {
		t.Fatalf("result = %+v", res)
	}

	// generation 0, generation 1, then generation 1 again marked stable
	if len(frames) != 3 {
		t.Fatalf("rendered %d frames, want 3", len(frames))
	}
	if frames[0].Living != 2 || frames[0].Stable {
		t.Fatalf("first frame = %+v", frames[0])
	}
	if frames[1].Generation != 1 || frames[1].Stable {
		t.Fatalf("second frame = %+v", frames[1])
	}
	if !frames[2].Stable || frames[2].Generation != 1 {
		t.Fatalf("last frame = %+v", frames[2])
	}
	if stats.TotalGenerations != 1 {
		t.Fatalf("stats total generations = %d", stats.TotalGenerations)
	}
}

func TestRunKeptFramesSurvivePooling(t *testing.T) {
	g := model.NewGrid(10, 10)
	patterns.Glider(g, 1, 1)

	var kept []*model.Grid
	r := RendererFunc(func(f Frame) error {
		kept = append(kept, f.Grid.Clone())
		return nil
	})

	sim := NewSimulation(g.Clone(), WithParallel(true), WithPool(model.NewGridPool()))
	if _, err := Run(context.Background(), sim, r, RunOptions{FrameRate: tick, MaxGenerations: 4}); err != nil {
		t.Fatal(err)
	}

	want := g
	for i, got := range kept {
		if !got.Equal(want) {
			t.Fatalf("kept frame %d was overwritten:\n%s\nwant\n%s", i, got, want)
		}
		want = want.NextGeneration()
	}
}

func TestRunMaxGenerations(t *testing.T) {
	g := model.NewGrid(10, 10)
	patterns.Blinker(g, 3, 4)

	rendered := 0
	r := RendererFunc(func(Frame) error { rendered++; return nil })

	res, err := Run(context.Background(), NewSimulation(g), r, RunOptions{FrameRate: tick, MaxGenerations: 5})
	if err != nil {
		t.Fatal(err)
	}
	if res.Reason != ReasonMaxGenerations || res.Generations != 5 || res.Stable {
		t.Fatalf("result = %+v", res)
	}
	if rendered != 6 {
		t.Fatalf("rendered %d frames, want 6", rendered)
	}
}

func TestRunCancelled(t *testing.T) {
	g := model.NewGrid(10, 10)
	patterns.Blinker(g, 3, 4)

	ctx, cancel := context.WithCancel(context.Background())
	r := RendererFunc(func(f Frame) error {
		if f.Generation == 2 {
			cancel()
		}
		return nil
	})

	res, err := Run(ctx, NewSimulation(g), r, RunOptions{FrameRate: tick})
	if err != nil {
		t.Fatal(err)
	}
	if res.Reason != ReasonInterrupted || res.Generations != 2 {
		t.Fatalf("result = %+v", res)
	}
}

func TestRunCancelledDuringStableHold(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := RendererFunc(func(f Frame) error {
		if f.Stable {
			cancel()
		}
		return nil
	})

	res, err := Run(ctx, NewSimulation(model.NewGrid(4, 4)), r, RunOptions{FrameRate: tick, StableHold: time.Hour})
	if err != nil {
		t.Fatal(err)
	}
	if res.Reason != ReasonInterrupted || !res.Stable {
		t.Fatalf("result = %+v", res)
	}
}

func TestRunRenderError(t *testing.T) {
	boom := errors.New("boom")
	r := RendererFunc(func(Frame) error { return boom })

	_, err := Run(context.Background(), NewSimulation(model.NewGrid(3, 3)), r, RunOptions{FrameRate: tick})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
}

func TestRunRejectsFrameRate(t *testing.T) {
	r := RendererFunc(func(Frame) error { return nil })
	if _, err := Run(context.Background(), NewSimulation(model.NewGrid(3, 3)), r, RunOptions{}); err == nil {
		t.Fatal("expected error for zero frame rate")
	}
}
