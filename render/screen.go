package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/game"
)

const (
	aliveRune = '█'
	// gridTop is the first screen row used by the grid; rows above it hold the status lines.
	gridTop = 2
)

var (
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	stableStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	hintStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	cellStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// ScreenRenderer draws frames onto a full-screen tcell terminal.
type ScreenRenderer struct {
	screen     tcell.Screen
	showTiming bool
	closed     bool
}

// NewScreenRenderer takes over the terminal. Close must be called to restore it.
func NewScreenRenderer() (*ScreenRenderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[NewScreenRenderer] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewScreenRenderer] failed to initialise screen")
	}
	return NewScreenRendererFor(screen), nil
}

// NewScreenRendererFor draws onto an already initialised screen.
func NewScreenRendererFor(screen tcell.Screen) *ScreenRenderer {
	screen.HideCursor()
	screen.Clear()
	return &ScreenRenderer{screen: screen}
}

// ShowTiming adds generations per second to the status line.
func (r *ScreenRenderer) ShowTiming(show bool) {
	r.showTiming = show
}

// GridSize returns how many cells fit below the status lines.
func (r *ScreenRenderer) GridSize() (int, int) {
	w, h := r.screen.Size()
	return w, max(0, h-gridTop)
}

// Render draws one frame and shows it
func (r *ScreenRenderer) Render(frame game.Frame) error {
	r.screen.Clear()

	drawText(r.screen, 0, 0, statusStyle, statusLine(frame, r.showTiming))
	if frame.Stable {
		drawText(r.screen, 0, 1, stableStyle, "STABLE STATE REACHED - Press ESC to exit")
	} else {
		drawText(r.screen, 0, 1, hintStyle, "Press ESC to exit")
	}

	g := frame.Grid
	for y := 0; y < g.GetHeight(); y++ {
		for x := 0; x < g.GetWidth(); x++ {
			if g.Get(x, y) {
				r.screen.SetContent(x, y+gridTop, aliveRune, nil, cellStyle)
			}
		}
	}

	r.screen.Show()
	return nil
}

// WatchKeys polls terminal events until the screen is closed, calling quit
// when ESC, Ctrl+C or q is pressed. It blocks and is meant to run in its own goroutine.
func (r *ScreenRenderer) WatchKeys(quit func()) {
	for {
		switch ev := r.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if isQuitKey(ev) {
				quit()
			}
		case *tcell.EventResize:
			r.screen.Sync()
		}
	}
}

// Close restores the terminal. Calling it again does nothing.
func (r *ScreenRenderer) Close() {
	if r.closed {
		return
	}
	r.closed = true
	r.screen.Fini()
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, c := range text {
		s.SetContent(x, y, c, nil, style)
		x++
	}
}
