//go:build ebiten

package window

import (
	"context"
	"errors"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	pkgerrors "github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"

	"github.com/sheikhrachel/go-life/game"
)

// Game adapts a simulation to the ebiten.Game interface.
type Game struct {
	sim      *game.Simulation
	stepper  *stepper
	cellSize int

	img *ebiten.Image
	buf []byte
}

// New constructs a Game for the provided simulation. Cancelling ctx closes the window.
func New(ctx context.Context, sim *game.Simulation, opts Options) *Game {
	g := sim.Grid()
	return &Game{
		sim:      sim,
		stepper:  newStepper(ctx, sim, opts, time.Now()),
		cellSize: max(1, opts.CellSize),
		img:      ebiten.NewImage(max(1, g.GetWidth()), max(1, g.GetHeight())),
		buf:      make([]byte, 4*g.GetWidth()*g.GetHeight()),
	}
}

// Update advances the simulation once per interval until it halts.
func (g *Game) Update() error {
	if g.stepper.done() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.stepper.advance(time.Now())
	return nil
}

// Draw renders the status lines and the grid.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	frame := g.sim.Frame()
	halted := g.stepper.halted()
	face := basicfont.Face7x13
	text.Draw(screen, statusText(frame), face, 10, 20, color.White)
	hintColor := color.RGBA{R: 128, G: 128, B: 128, A: 255}
	if halted {
		hintColor = color.RGBA{R: 253, G: 249, B: 0, A: 255}
	}
	text.Draw(screen, hintText(frame, halted), face, 10, 45, hintColor)

	if len(g.buf) == 0 {
		return
	}
	fillCellsRGBA(g.buf, frame.Grid, aliveColor, deadColor)
	g.img.WritePixels(g.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.cellSize), float64(g.cellSize))
	op.GeoM.Translate(0, statusBand)
	screen.DrawImage(g.img, op)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowSize(g.sim.Grid(), g.cellSize)
}

// Run opens a window and blocks until it is closed, ESC is pressed or ctx is cancelled.
func Run(ctx context.Context, sim *game.Simulation, opts Options) (game.Result, error) {
	w := New(ctx, sim, opts)
	width, height := windowSize(sim.Grid(), w.cellSize)

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(width, height)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return w.stepper.result(), pkgerrors.Wrap(err, "[Run] window closed with error")
	}
	return w.stepper.result(), nil
}
