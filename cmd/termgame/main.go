// cmd/termgame/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"spacemax-td/internal/app"
	"spacemax-td/internal/config"
	"spacemax-td/internal/termui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a YAML config overlaying the defaults")
	seed := flag.Int64("seed", 0, "rarity RNG seed, 0 seeds from the clock")
	logPath := flag.String("log", "", "write logs to this file; the terminal is taken by the game")
	flag.Parse()

	var out io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	newSession := func() (*app.Game, error) {
		return app.NewGame(cfg, app.WithLogger(logger))
	}
	frontend, err := termui.NewFrontend(screen, newSession)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := frontend.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
