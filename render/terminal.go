// Package render draws simulation frames to a terminal.
package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/game"
)

const (
	// clearScreen erases the display and moves the cursor home.
	clearScreen = "\x1b[2J\x1b[1;1H"

	stableMessage = "Simulation reached a stable state. Press Ctrl+C to exit."
)

// TerminalRenderer writes each frame as plain text: a status line followed by the grid glyphs.
type TerminalRenderer struct {
	out        io.Writer
	clear      bool
	showTiming bool
}

// NewTerminalRenderer renders to out. When clear is set every frame starts by clearing the screen.
func NewTerminalRenderer(out io.Writer, clear bool) *TerminalRenderer {
	return &TerminalRenderer{out: out, clear: clear}
}

// ShowTiming adds generations per second to the status line.
func (r *TerminalRenderer) ShowTiming(show bool) {
	r.showTiming = show
}

// Render writes one frame
func (r *TerminalRenderer) Render(frame game.Frame) error {
	w := bufio.NewWriter(r.out)

	if r.clear {
		w.WriteString(clearScreen)
	}
	fmt.Fprint(w, statusLine(frame, r.showTiming))
	w.WriteByte('\n')
	w.WriteString(frame.Grid.String())
	if frame.Stable {
		w.WriteString(stableMessage)
		w.WriteByte('\n')
	}

	if err := w.Flush(); err != nil {
		return errors.Wrapf(err, "[Render] failed to write generation %d", frame.Generation)
	}
	return nil
}

func statusLine(frame game.Frame, showTiming bool) string {
	line := fmt.Sprintf("Generation: %d | Living cells: %d", frame.Generation, frame.Living)
	if showTiming {
		line += fmt.Sprintf(" | %.1f gen/sec", frame.GenerationsPerSecond)
	}
	return line
}
