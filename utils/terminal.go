package utils

import (
	"os"

	"golang.org/x/term"
)

const (
	fallbackTerminalWidth  = 80
	fallbackTerminalHeight = 40

	// statusLines is the number of rows reserved for the status line and prompt.
	statusLines = 3
)

// TerminalSize returns the usable grid size for stdout, one cell per column,
// leaving room for the status lines. It falls back to 80x40 when stdout is not a terminal.
func TerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return fallbackTerminalWidth, fallbackTerminalHeight
	}
	return width, max(0, height-statusLines)
}
