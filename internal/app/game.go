// internal/app/game.go
package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"spacemax-td/internal/component"
	"spacemax-td/internal/config"
	"spacemax-td/internal/entity"
	"spacemax-td/internal/event"
	"spacemax-td/internal/system"
	"spacemax-td/internal/types"
	"spacemax-td/internal/utils"
	"spacemax-td/pkg/route"
)

// Game holds one session: the entities, the economy, the wave manager and
// the systems that advance them. It is not safe for concurrent use; the
// frontend's loop goroutine owns it.
type Game struct {
	Config           config.Config
	Route            *route.Route
	ECS              *entity.ECS
	MovementSystem   *system.MovementSystem
	ProjectileSystem *system.ProjectileSystem
	CombatSystem     *system.CombatSystem
	WaveSystem       *system.WaveSystem
	EconomySystem    *system.EconomySystem
	StateSystem      *system.StateSystem
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService
	SessionID        string

	logger        *slog.Logger
	commands      []Command
	selectedTower types.EntityID
}

// Option customizes NewGame.
type Option func(*Game)

// WithLogger sets the session logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithRNG replaces the rarity roller, mainly so tests can script rolls.
func WithRNG(rng *utils.PRNGService) Option {
	return func(g *Game) {
		if rng != nil {
			g.Rng = rng
		}
	}
}

// WithDispatcher lets the caller subscribe listeners before the first wave
// starts.
func WithDispatcher(d *event.Dispatcher) Option {
	return func(g *Game) {
		if d != nil {
			g.EventDispatcher = d
		}
	}
}

// NewGame validates cfg and starts a session at stage 1 with the first wave
// queued.
func NewGame(cfg config.Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	r, err := cfg.Route()
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	g := &Game{
		Config:          cfg,
		Route:           r,
		ECS:             entity.NewECS(),
		EventDispatcher: event.NewDispatcher(),
		SessionID:       uuid.NewString(),
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.Rng == nil {
		g.Rng = utils.NewPRNGService(cfg.Seed)
	}
	g.logger = g.logger.With("session", g.SessionID)

	// Systems keep a pointer to g.Config, which does not move after this point.
	g.MovementSystem = system.NewMovementSystem(g.ECS, r, cfg.WaypointEpsilon)
	g.ProjectileSystem = system.NewProjectileSystem(g.ECS, cfg.HitRadius)
	g.CombatSystem = system.NewCombatSystem(g.ECS, cfg.ProjectileSpeed)
	g.WaveSystem = system.NewWaveSystem(g.ECS, r, &g.Config, g.EventDispatcher, g.logger)
	g.EconomySystem = system.NewEconomySystem(g.ECS, cfg.KillReward, g.EventDispatcher)
	g.StateSystem = system.NewStateSystem(g.ECS, g.EventDispatcher)

	g.EconomySystem.Reset(cfg.StartingGold, cfg.StartingLives)
	g.logger.Info("session started", "gold", cfg.StartingGold, "lives", cfg.StartingLives, "stage_cap", cfg.StageCap)
	g.WaveSystem.StartWave()
	return g, nil
}

// ErrSessionOver is returned by Step once the session reached Victory or GameOver.
var ErrSessionOver = errors.New("session is over")

// Step is Update for callers that want to stop their loop on a terminal state.
func (g *Game) Step(deltaMs float64) error {
	if g.StateSystem.IsTerminal() {
		return ErrSessionOver
	}
	g.Update(deltaMs)
	return nil
}

// Update advances the session by one frame that took deltaMs milliseconds.
// Cooldowns and the spawn timer follow deltaMs; movement is a fixed step per
// call. Once the session is over Update does nothing.
func (g *Game) Update(deltaMs float64) {
	if g.StateSystem.IsTerminal() {
		return
	}
	if deltaMs < 0 {
		deltaMs = 0
	}
	g.ECS.GameTime += deltaMs
	g.drainCommands()

	g.MovementSystem.Update()
	g.ProjectileSystem.Update()
	g.CombatSystem.Update(g.ECS.GameTime)
	g.reapEnemies()

	if g.WaveSystem.Cleared() {
		if g.ECS.Wave.Stage >= g.Config.StageCap {
			g.logger.Info("victory", "stage", g.ECS.Wave.Stage, "gold", g.EconomySystem.Gold())
			g.StateSystem.SwitchToVictory()
			return
		}
		g.WaveSystem.NextStage()
	}

	g.WaveSystem.Update(deltaMs)

	if g.EconomySystem.Defeated() {
		g.logger.Info("game over", "stage", g.ECS.Wave.Stage)
		g.StateSystem.SwitchToGameOver()
	}
}

// reapEnemies removes dead and breached enemies in spawn order. Killing takes
// precedence over breaching when both happen in the same tick. Each enemy is
// removed before its event is dispatched, so it can never be reaped twice.
func (g *Game) reapEnemies() {
	g.ECS.Enemies.Each(func(id types.EntityID, enemy *component.Enemy) {
		var eventType event.EventType
		switch {
		case !enemy.Alive():
			eventType = event.EnemyKilled
		case g.MovementSystem.ReachedEnd(enemy):
			eventType = event.EnemyBreached
		default:
			return
		}
		if !g.ECS.RemoveEnemy(id) {
			return
		}
		g.EventDispatcher.Dispatch(event.Event{
			Type: eventType,
			Data: event.EnemyInfo{ID: id, Boss: enemy.Boss, MaxHP: enemy.MaxHP, Stage: g.ECS.Wave.Stage},
		})
	})
}

// --- Public Accessors ---

func (g *Game) Phase() component.GameState {
	return g.StateSystem.Current()
}

func (g *Game) Gold() int {
	return g.EconomySystem.Gold()
}

func (g *Game) Lives() int {
	return g.EconomySystem.Lives()
}

func (g *Game) Stage() int {
	return g.ECS.Wave.Stage
}

// GameTime is the session clock in milliseconds.
func (g *Game) GameTime() float64 {
	return g.ECS.GameTime
}

// SelectedTower returns the selected tower's ID, or NoEntity.
func (g *Game) SelectedTower() types.EntityID {
	return g.selectedTower
}

// Logger returns the session logger.
func (g *Game) Logger() *slog.Logger {
	return g.logger
}
