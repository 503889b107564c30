package utils

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	data := `{"width": 64, "height": 32, "pattern": "pulsar", "mode": "screen", "frame_rate": 50000000}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Width != 64 || cfg.Height != 32 {
		t.Fatalf("dimensions = %dx%d, want 64x32", cfg.Width, cfg.Height)
	}
	if cfg.Pattern != "pulsar" || cfg.Mode != ModeScreen {
		t.Fatalf("pattern/mode = %q/%q", cfg.Pattern, cfg.Mode)
	}
	if cfg.FrameRate != 50*time.Millisecond {
		t.Fatalf("frame rate = %v, want 50ms", cfg.FrameRate)
	}
	// fields absent from the file keep their defaults
	if cfg.StableHold != DefaultConfig().StableHold || !cfg.UseParallel {
		t.Fatalf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadConfig(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("missing file: expected error")
	} else if !strings.Contains(err.Error(), "[LoadConfig]") {
		t.Fatalf("error not wrapped: %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{width:"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(bad)
	if err == nil {
		t.Fatal("malformed file: expected error")
	}
	if cfg.Mode != ModeTerminal {
		t.Fatalf("failed load should still return defaults, got mode %q", cfg.Mode)
	}
}

func TestBindOverridesConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pattern = "gliders"

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	args := []string{"-width", "20", "-mode", "window", "-frame-rate", "250ms", "-parallel=false", "-cell-size", "8"}
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}

	if cfg.Width != 20 || cfg.Mode != ModeWindow || cfg.FrameRate != 250*time.Millisecond {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if cfg.UseParallel || cfg.CellSize != 8 {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if cfg.Pattern != "gliders" {
		t.Fatalf("unset flag overwrote the pattern: %q", cfg.Pattern)
	}
}

func TestBindUsageNamesModeDifferences(t *testing.T) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)

	if err := fs.Parse([]string{"-show-timing"}); err != nil {
		t.Fatal(err)
	}
	if !cfg.ShowTiming {
		t.Fatal("-show-timing not applied")
	}

	usage := map[string]string{
		"interactive": "instead of using -pattern",
		"stable-hold": "the window stays open until ESC",
	}
	for name, want := range usage {
		f := fs.Lookup(name)
		if f == nil {
			t.Fatalf("flag -%s not bound", name)
		}
		if !strings.Contains(f.Usage, want) {
			t.Fatalf("-%s usage = %q, want it to mention %q", name, f.Usage, want)
		}
	}
	if fs.Lookup("interactive").DefValue != "false" {
		t.Fatalf("-interactive default = %s", fs.Lookup("interactive").DefValue)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"unknown mode", func(c *Config) { c.Mode = "hologram" }},
		{"unknown pattern", func(c *Config) { c.Pattern = "spaceship" }},
		{"negative width", func(c *Config) { c.Width = -1 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"zero frame rate", func(c *Config) { c.FrameRate = 0 }},
		{"negative hold", func(c *Config) { c.StableHold = -time.Second }},
		{"negative max generations", func(c *Config) { c.MaxGenerations = -5 }},
		{"empty window", func(c *Config) { c.Mode = ModeWindow; c.WindowWidth = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestClampCellSize(t *testing.T) {
	for in, want := range map[int]int{-3: 1, 0: 1, 1: 1, 7: 7, 16: 16, 40: 16} {
		cfg := Config{CellSize: in}
		cfg.ClampCellSize()
		if cfg.CellSize != want {
			t.Errorf("ClampCellSize(%d) = %d, want %d", in, cfg.CellSize, want)
		}
	}
}

func TestResolveDimensions(t *testing.T) {
	term := func() (int, int) { return 120, 37 }

	cfg := DefaultConfig()
	if large := cfg.ResolveDimensions(term); large {
		t.Fatal("120x37 reported as large")
	}
	if cfg.Width != 120 || cfg.Height != 37 {
		t.Fatalf("terminal dimensions = %dx%d", cfg.Width, cfg.Height)
	}

	cfg = DefaultConfig()
	cfg.Width = 50
	cfg.ResolveDimensions(term)
	if cfg.Width != 50 || cfg.Height != 37 {
		t.Fatalf("explicit width overwritten: %dx%d", cfg.Width, cfg.Height)
	}

	cfg = DefaultConfig()
	cfg.Mode = ModeWindow
	cfg.ResolveDimensions(term)
	if cfg.Width != 320 || cfg.Height != 180 {
		t.Fatalf("window dimensions = %dx%d, want 320x180", cfg.Width, cfg.Height)
	}

	cfg = DefaultConfig()
	cfg.Mode = ModeWindow
	cfg.CellSize = 1
	if large := cfg.ResolveDimensions(term); !large {
		t.Fatal("1280x720 grid not reported as large")
	}
}

func TestLoadConfigRejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"widht": 64}`), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err == nil {
		t.Fatal("misspelt key: expected error")
	}
	if cfg != DefaultConfig() {
		t.Fatalf("failed load should return defaults, got %+v", cfg)
	}
}
