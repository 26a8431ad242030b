// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"spacemax-td/internal/app"
	"spacemax-td/internal/audio"
	"spacemax-td/internal/config"
	"spacemax-td/internal/event"
	"spacemax-td/internal/state"
	"spacemax-td/internal/ui"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaMs := config.ClampDeltaMs(float64(now.Sub(a.lastUpdateTime)) / float64(time.Millisecond))
	a.lastUpdateTime = now
	return a.stateMachine.Update(deltaMs)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config overlaying the defaults")
	seed := flag.Int64("seed", 0, "rarity RNG seed, 0 seeds from the clock")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	debug := flag.Bool("debug", false, "log at debug level")
	mute := flag.Bool("mute", false, "disable sound cues")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Error("load config", "path", *configPath, "err", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	if *pprofAddr != "" {
		go func() {
			logger.Info("pprof listening", "addr", *pprofAddr)
			if err := http.ListenAndServe(*pprofAddr, nil); err != nil {
				logger.Warn("pprof server stopped", "err", err)
			}
		}()
	}

	var cues *audio.CuePlayer
	if !*mute {
		var err error
		cues, err = audio.NewCuePlayer()
		if err != nil {
			// Non-fatal, game can run without sound
			logger.Warn("audio disabled", "err", err)
		}
	}

	newSession := func() (*app.Game, error) {
		d := event.NewDispatcher()
		if cues != nil {
			cues.Attach(d)
		}
		return app.NewGame(cfg, app.WithLogger(logger), app.WithDispatcher(d))
	}

	fonts, err := ui.NewFonts()
	if err != nil {
		logger.Error("load fonts", "err", err)
		os.Exit(1)
	}
	sm := state.NewStateMachine()
	play, err := state.NewPlayState(sm, newSession, fonts)
	if err != nil {
		logger.Error("start game", "err", err)
		os.Exit(1)
	}
	sm.SetState(play)

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("SpaceMax TD")
	ebiten.SetTPS(config.FPS)
	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game loop", "err", err)
		os.Exit(1)
	}
}
