// Package window shows the simulation in a desktop window. The window itself
// needs the ebiten build tag; without it Run reports that the tag is missing.
package window

import (
	"fmt"
	"image/color"
	"time"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	// statusBand is the height in pixels reserved above the grid for text.
	statusBand = 60

	// updateInterval is how often the simulation advances, independent of the frame rate.
	updateInterval = 100 * time.Millisecond
)

var (
	aliveColor = color.White
	deadColor  = color.Black
)

// Options configures the window
type Options struct {
	CellSize int
	Title    string
	// Interval is the delay between generations.
	Interval time.Duration
	// MaxGenerations stops advancing after this many generations; 0 means no limit.
	MaxGenerations int
	// Stats, when set, is updated after every generation.
	Stats *utils.Stats
}

// fillCellsRGBA writes one RGBA pixel per cell into buf in row-major order.
// buf must hold 4*width*height bytes.
func fillCellsRGBA(buf []byte, g *model.Grid, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()

	i := 0
	for y := 0; y < g.GetHeight(); y++ {
		for x := 0; x < g.GetWidth(); x++ {
			if g.Get(x, y) {
				buf[i+0] = uint8(rOn >> 8)
				buf[i+1] = uint8(gOn >> 8)
				buf[i+2] = uint8(bOn >> 8)
				buf[i+3] = uint8(aOn >> 8)
			} else {
				buf[i+0] = uint8(rOff >> 8)
				buf[i+1] = uint8(gOff >> 8)
				buf[i+2] = uint8(bOff >> 8)
				buf[i+3] = uint8(aOff >> 8)
			}
			i += 4
		}
	}
}

func statusText(frame game.Frame) string {
	return fmt.Sprintf("Generation: %d | Living cells: %d", frame.Generation, frame.Living)
}

func hintText(frame game.Frame, halted bool) string {
	switch {
	case frame.Stable:
		return "STABLE STATE REACHED - Press ESC to exit"
	case halted:
		return "GENERATION LIMIT REACHED - Press ESC to exit"
	}
	return "Press ESC to exit"
}

// windowSize returns the window dimensions in pixels for a grid.
func windowSize(g *model.Grid, cellSize int) (int, int) {
	return g.GetWidth() * cellSize, g.GetHeight()*cellSize + statusBand
}
