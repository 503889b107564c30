package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/patterns"
	"github.com/sheikhrachel/go-life/render"
	"github.com/sheikhrachel/go-life/utils"
	"github.com/sheikhrachel/go-life/window"
)

const defaultConfigFile = "config.json"

// loadConfig reads the optional config file, then applies command-line flags on top of it.
func loadConfig(args []string, stdout io.Writer) (utils.Config, error) {
	configPath := defaultConfigFile
	for i, arg := range args {
		if (arg == "-config" || arg == "--config") && i+1 < len(args) {
			configPath = args[i+1]
		}
	}

	config, err := utils.LoadConfig(configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return config, err
		}
		fmt.Fprintf(stdout, "Using default configuration (%s not found)\n", configPath)
		config = utils.DefaultConfig()
	}

	fs := flag.NewFlagSet("go-life", flag.ContinueOnError)
	fs.String("config", configPath, "path to a JSON config file")
	config.Bind(fs)
	if err = fs.Parse(args); err != nil {
		return config, errors.Wrap(err, "[loadConfig] failed to parse flags")
	}

	return config, nil
}

// configure runs the interactive prompts when requested and validates the result.
// Grid dimensions left at zero are filled in later by resolveDimensions.
func configure(config *utils.Config, stdin io.Reader, stdout io.Writer) error {
	if config.Interactive {
		fmt.Fprintln(stdout, "Conway's Game of Life")
		fmt.Fprintln(stdout, "=====================")
		fmt.Fprintln(stdout)

		prompter := utils.NewPrompter(stdin, stdout)
		if config.Mode == utils.ModeWindow {
			if err := prompter.Window(config); err != nil {
				return err
			}
		}
		if err := prompter.Pattern(config); err != nil {
			return err
		}
	}
	return config.Validate()
}

// resolveDimensions sizes the grid to the display. In screen mode the screen
// itself reports how much room is left below its status lines.
func resolveDimensions(config *utils.Config, screen *render.ScreenRenderer) (large bool) {
	size := utils.TerminalSize
	if screen != nil {
		size = screen.GridSize
	}
	return config.ResolveDimensions(size)
}

// initializeGame builds the seeded starting grid and the simulation around it
func initializeGame(config utils.Config) (*game.Simulation, error) {
	pattern, err := patterns.ParsePattern(config.Pattern)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to select pattern")
	}

	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	grid := patterns.Build(pattern, config.Width, config.Height)
	return game.NewSimulation(grid, game.WithParallel(config.UseParallel), game.WithPool(pool)), nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(stdout io.Writer, config utils.Config, sim *game.Simulation, large bool) {
	fmt.Fprintf(stdout, "Features: Memory Pool: %v, Parallel: %v\n", config.UseMemoryPool, config.UseParallel)
	fmt.Fprintf(stdout, "Grid: %dx%d | Pattern: %s | Initial living cells: %d\n",
		sim.Grid().GetWidth(), sim.Grid().GetHeight(), config.Pattern, sim.Grid().CountLivingCells())
	if large {
		fmt.Fprintln(stdout, "Warning: Large grids may impact performance")
	}
}

// displayFinalStats summarises a finished run
func displayFinalStats(stdout io.Writer, res game.Result, stats *utils.Stats) {
	fmt.Fprintf(stdout, "Stopped after %d generations (%s) in %.1f seconds\n",
		res.Generations, res.Reason, stats.Runtime().Seconds())
	fmt.Fprintf(stdout, "Average population: %.1f\n", stats.AveragePopulation)
}

// runGame sizes, seeds and drives the simulation with the renderer for the
// configured mode. screen is only used in screen mode and is closed before
// anything is printed to stdout.
func runGame(ctx context.Context, config utils.Config, screen *render.ScreenRenderer, stdout io.Writer) error {
	if config.Mode == utils.ModeScreen && screen == nil {
		return errors.New("[runGame] screen mode needs a screen")
	}
	if screen != nil {
		defer screen.Close()
	}

	large := resolveDimensions(&config, screen)
	sim, err := initializeGame(config)
	if err != nil {
		return err
	}

	stats := utils.NewStats()
	opts := game.RunOptions{
		FrameRate:      config.FrameRate,
		StableHold:     config.StableHold,
		MaxGenerations: config.MaxGenerations,
		Stats:          stats,
	}

	var res game.Result
	switch config.Mode {
	case utils.ModeWindow:
		displayGameInfo(stdout, config, sim, large)
		res, err = window.Run(ctx, sim, window.Options{
			CellSize:       config.CellSize,
			Title:          "Conway's Game of Life",
			Interval:       config.FrameRate,
			MaxGenerations: config.MaxGenerations,
			Stats:          stats,
		})

	case utils.ModeScreen:
		screen.ShowTiming(config.ShowTiming)
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		go screen.WatchKeys(cancel)

		res, err = game.Run(ctx, sim, screen, opts)
		screen.Close()
		displayGameInfo(stdout, config, sim, large)

	default:
		displayGameInfo(stdout, config, sim, large)
		renderer := render.NewTerminalRenderer(stdout, true)
		renderer.ShowTiming(config.ShowTiming)
		res, err = game.Run(ctx, sim, renderer, opts)
	}
	if err != nil {
		return err
	}

	displayFinalStats(stdout, res, stats)
	return nil
}
