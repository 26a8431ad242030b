// internal/system/wave.go
package system

import (
	"log/slog"

	"spacemax-td/internal/component"
	"spacemax-td/internal/config"
	"spacemax-td/internal/defs"
	"spacemax-td/internal/entity"
	"spacemax-td/internal/event"
	"spacemax-td/internal/types"
	"spacemax-td/pkg/route"
)

// WaveSystem is the wave manager: it sizes waves, spawns enemies on a timer
// and decides which spawn is a boss.
type WaveSystem struct {
	ecs             *entity.ECS
	route           *route.Route
	cfg             *config.Config
	eventDispatcher *event.Dispatcher
	logger          *slog.Logger
}

func NewWaveSystem(ecs *entity.ECS, r *route.Route, cfg *config.Config, eventDispatcher *event.Dispatcher, logger *slog.Logger) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		route:           r,
		cfg:             cfg,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

// Update accumulates frame time and spawns one enemy each time the timer
// passes the spawn interval. The timer runs regardless of the queue; spawning
// with nothing queued does nothing.
func (s *WaveSystem) Update(deltaMs float64) {
	wave := s.ecs.Wave
	wave.SpawnTimerMs += deltaMs
	if wave.SpawnTimerMs > s.cfg.SpawnIntervalMs {
		s.SpawnEnemy()
		wave.SpawnTimerMs = 0
	}
}

// StartWave queues the enemies of the current stage.
func (s *WaveSystem) StartWave() {
	wave := s.ecs.Wave
	wave.EnemiesToSpawn = WaveSize(s.cfg, wave.Stage)
	s.logger.Info("wave started", "stage", wave.Stage, "enemies", wave.EnemiesToSpawn)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveInfo{Stage: wave.Stage, Count: wave.EnemiesToSpawn},
	})
}

// NextStage advances the stage counter and starts its wave.
func (s *WaveSystem) NextStage() {
	s.ecs.Wave.Stage++
	s.StartWave()
}

// SpawnEnemy puts the next queued enemy at the start of the route. The last
// enemy of a wave is a boss on stages ending in 5 (mid) or 0 (main).
func (s *WaveSystem) SpawnEnemy() (types.EntityID, bool) {
	wave := s.ecs.Wave
	if wave.EnemiesToSpawn <= 0 {
		return types.NoEntity, false
	}

	boss := defs.BossNone
	if wave.EnemiesToSpawn == 1 {
		boss = BossTierFor(wave.Stage)
	}
	hp := EnemyHP(s.cfg, wave.Stage, boss)

	id := s.ecs.AddEnemy(component.FromPoint(s.route.Start()), &component.Enemy{
		PathIndex: 0,
		HP:        hp,
		MaxHP:     hp,
		Speed:     s.cfg.EnemySpeed,
		Boss:      boss,
	})
	wave.EnemiesToSpawn--

	if boss != defs.BossNone {
		s.logger.Info("boss spawned", "stage", wave.Stage, "tier", boss.String(), "hp", hp)
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Data: event.EnemyInfo{ID: id, Boss: boss, MaxHP: hp, Stage: wave.Stage},
	})
	return id, true
}

// Cleared reports whether nothing is on the field and nothing is queued.
func (s *WaveSystem) Cleared() bool {
	return s.ecs.Enemies.Len() == 0 && s.ecs.Wave.EnemiesToSpawn == 0
}

// WaveSize is the number of enemies queued for a stage.
func WaveSize(cfg *config.Config, stage int) int {
	return cfg.WaveBaseCount + stage*cfg.WaveGrowth
}

// BossTierFor is the tier of the last enemy of a stage.
func BossTierFor(stage int) defs.BossTier {
	switch stage % 10 {
	case 5:
		return defs.BossMid
	case 0:
		return defs.BossMain
	default:
		return defs.BossNone
	}
}

// EnemyHP is the starting hp of an enemy of the given tier on a stage. The
// main-boss factor compounds on top of the boss multiplier.
func EnemyHP(cfg *config.Config, stage int, boss defs.BossTier) float64 {
	hp := cfg.EnemyBaseHP + float64(stage)*cfg.EnemyHPGrowth
	switch boss {
	case defs.BossMid:
		hp *= cfg.BossMultiplier
	case defs.BossMain:
		hp *= cfg.BossMultiplier * cfg.MainBossFactor
	}
	return hp
}
