package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/patterns"
)

// Render modes
const (
	ModeTerminal = "terminal"
	ModeScreen   = "screen"
	ModeWindow   = "window"
)

const (
	minCellSize = 1
	maxCellSize = 16

	// LargeGridWarning is the side length above which a grid is reported as likely to be slow.
	LargeGridWarning = 500
)

// Config holds the configuration for the game
type Config struct {
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	Pattern        string        `json:"pattern"`
	Mode           string        `json:"mode"`
	FrameRate      time.Duration `json:"frame_rate"`
	StableHold     time.Duration `json:"stable_hold"`
	MaxGenerations int           `json:"max_generations"`
	UseParallel    bool          `json:"use_parallel"`
	UseMemoryPool  bool          `json:"use_memory_pool"`
	Interactive    bool          `json:"interactive"`
	ShowTiming     bool          `json:"show_timing"`
	WindowWidth    int           `json:"window_width"`
	WindowHeight   int           `json:"window_height"`
	CellSize       int           `json:"cell_size"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:          0, // fit the terminal or window
		Height:         0,
		Pattern:        "random",
		Mode:           ModeTerminal,
		FrameRate:      100 * time.Millisecond,
		StableHold:     5 * time.Second,
		MaxGenerations: 0,
		UseParallel:    true,
		UseMemoryPool:  true,
		Interactive:    false,
		ShowTiming:     false,
		WindowWidth:    1280,
		WindowHeight:   720,
		CellSize:       4,
	}
}

// LoadConfig reads a JSON config file over the defaults. Unknown keys are
// rejected so a misspelt setting is not silently ignored.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	f, err := os.Open(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to open %s", filename)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err = dec.Decode(&config); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] failed to decode %s", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet, using the current values as defaults.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells (0 fits the display)")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells (0 fits the display)")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "starting pattern: random, gliders, oscillators or pulsar")
	fs.StringVar(&c.Mode, "mode", c.Mode, "render mode: terminal, screen or window")
	fs.DurationVar(&c.FrameRate, "frame-rate", c.FrameRate, "delay between generations")
	fs.DurationVar(&c.StableHold, "stable-hold", c.StableHold, "how long to keep showing a stable state before exiting (terminal and screen modes; the window stays open until ESC)")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "stop after this many generations (0 for no limit)")
	fs.BoolVar(&c.UseParallel, "parallel", c.UseParallel, "compute each generation across all CPUs")
	fs.BoolVar(&c.UseMemoryPool, "pool", c.UseMemoryPool, "recycle grids between generations")
	fs.BoolVar(&c.Interactive, "interactive", c.Interactive, "show the pattern menu (and window size prompts in window mode) instead of using -pattern")
	fs.BoolVar(&c.ShowTiming, "show-timing", c.ShowTiming, "add generations per second to the status line")
	fs.IntVar(&c.WindowWidth, "window-width", c.WindowWidth, "window width in pixels")
	fs.IntVar(&c.WindowHeight, "window-height", c.WindowHeight, "window height in pixels")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "cell size in pixels (1-16)")
}

// Validate reports the first setting that cannot be used to run a simulation.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeTerminal, ModeScreen, ModeWindow:
	default:
		return errors.Errorf("[Validate] unknown mode %q", c.Mode)
	}
	if _, err := patterns.ParsePattern(c.Pattern); err != nil {
		return errors.Wrap(err, "[Validate] invalid pattern")
	}
	if c.Width < 0 || c.Height < 0 {
		return errors.Errorf("[Validate] grid dimensions must not be negative, got %dx%d", c.Width, c.Height)
	}
	if c.FrameRate <= 0 {
		return errors.Errorf("[Validate] frame rate must be positive, got %v", c.FrameRate)
	}
	if c.StableHold < 0 {
		return errors.Errorf("[Validate] stable hold must not be negative, got %v", c.StableHold)
	}
	if c.MaxGenerations < 0 {
		return errors.Errorf("[Validate] max generations must not be negative, got %d", c.MaxGenerations)
	}
	if c.Mode == ModeWindow && (c.WindowWidth <= 0 || c.WindowHeight <= 0) {
		return errors.Errorf("[Validate] window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
	return nil
}

// ClampCellSize forces the cell size into the supported range.
func (c *Config) ClampCellSize() {
	c.CellSize = min(max(c.CellSize, minCellSize), maxCellSize)
}

// ResolveDimensions fills a zero width or height from the display: the window
// size divided by the cell size in window mode, the terminal size otherwise.
// It reports whether the resulting grid is large enough to be slow.
func (c *Config) ResolveDimensions(terminalSize func() (int, int)) (large bool) {
	var width, height int
	if c.Mode == ModeWindow {
		c.ClampCellSize()
		width, height = c.WindowWidth/c.CellSize, c.WindowHeight/c.CellSize
	} else {
		width, height = terminalSize()
	}

	if c.Width == 0 {
		c.Width = width
	}
	if c.Height == 0 {
		c.Height = height
	}
	return c.Width > LargeGridWarning || c.Height > LargeGridWarning
}
