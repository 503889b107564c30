package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sheikhrachel/go-life/render"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	config, err := loadConfig(os.Args[1:], os.Stdout)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err = configure(&config, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("config: %v", err)
	}

	var screen *render.ScreenRenderer
	if config.Mode == utils.ModeScreen {
		if screen, err = render.NewScreenRenderer(); err != nil {
			log.Fatalf("screen: %v", err)
		}
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = runGame(ctx, config, screen, os.Stdout); err != nil {
		log.Fatalf("run: %v", err)
	}
}
