package utils

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/patterns"
)

// Prompter asks the user for configuration values one line at a time.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// ask prints the prompt and returns the trimmed reply. EOF yields an empty reply.
func (p *Prompter) ask(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return "", errors.Wrap(err, "[ask] failed to write prompt")
	}
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", errors.Wrap(err, "[ask] failed to read reply")
		}
		return "", nil
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// askInt returns def when the reply is empty or not a number.
func (p *Prompter) askInt(prompt string, def int) (int, error) {
	reply, err := p.ask(prompt)
	if err != nil {
		return def, err
	}
	n, err := strconv.Atoi(reply)
	if err != nil {
		return def, nil
	}
	return n, nil
}

// Pattern shows the pattern menu and stores the choice in cfg.Pattern.
// Anything other than a listed choice selects the random pattern.
func (p *Prompter) Pattern(cfg *Config) error {
	fmt.Fprintln(p.out, "Choose a starting pattern:")
	fmt.Fprintln(p.out, "1. Random")
	fmt.Fprintln(p.out, "2. Gliders")
	fmt.Fprintln(p.out, "3. Oscillators (Blinker, Toad, Beacon)")
	fmt.Fprintln(p.out, "4. Pulsar")
	fmt.Fprintln(p.out)

	reply, err := p.ask("Enter your choice (1-4): ")
	if err != nil {
		return errors.Wrap(err, "[Pattern] failed to read choice")
	}

	choice, err := patterns.ParsePattern(reply)
	if err != nil {
		choice = patterns.Random
	}
	cfg.Pattern = choice.String()
	return nil
}

// Window asks for the window size and cell size, then derives the grid size from them.
func (p *Prompter) Window(cfg *Config) error {
	fmt.Fprintln(p.out, "Window Configuration:")

	var err error
	if cfg.WindowWidth, err = p.askInt(fmt.Sprintf("Enter window width (default %d): ", cfg.WindowWidth), cfg.WindowWidth); err != nil {
		return errors.Wrap(err, "[Window] failed to read width")
	}
	if cfg.WindowHeight, err = p.askInt(fmt.Sprintf("Enter window height (default %d): ", cfg.WindowHeight), cfg.WindowHeight); err != nil {
		return errors.Wrap(err, "[Window] failed to read height")
	}
	prompt := fmt.Sprintf("Enter cell size in pixels (%d-%d, default %d): ", minCellSize, maxCellSize, cfg.CellSize)
	if cfg.CellSize, err = p.askInt(prompt, cfg.CellSize); err != nil {
		return errors.Wrap(err, "[Window] failed to read cell size")
	}
	cfg.ClampCellSize()

	cfg.Width, cfg.Height = cfg.WindowWidth/cfg.CellSize, cfg.WindowHeight/cfg.CellSize

	fmt.Fprintln(p.out)
	fmt.Fprintf(p.out, "Grid will be %dx%d cells\n", cfg.Width, cfg.Height)
	if cfg.Width > LargeGridWarning || cfg.Height > LargeGridWarning {
		fmt.Fprintln(p.out, "Warning: Large grids may impact performance")
	}
	fmt.Fprintln(p.out)
	return nil
}
