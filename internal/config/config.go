// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"spacemax-td/internal/defs"
	"spacemax-td/pkg/route"
)

// Presentation constants. The simulation never reads these.
const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	FPS          = 60
	MaxDeltaMs   = 60.0 // Frame time clamp so a stalled window does not burst-spawn

	HealthBarHeight  = 6
	HealthBarOffsetY = 12
	ProjectileRadius = 3.0
	IndicatorMargin  = 10
)

var (
	BackgroundColor = color.RGBA{28, 36, 30, 255}
	PathColor       = color.RGBA{120, 100, 70, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	RangeRingColor  = color.RGBA{100, 100, 100, 255}
	ProjectileColor = color.RGBA{255, 215, 0, 255}
	SelectionColor  = color.RGBA{255, 255, 255, 255}
)

// Config holds every tunable of a game session. Default returns the values of
// the original game; Load overlays a YAML file on top of them.
type Config struct {
	// PathWaypoints is the enemy route, spawn point first, exit last.
	// At least two points, no two consecutive points equal.
	PathWaypoints []route.Point `yaml:"path_waypoints"`
	// RarityWeights is the roll table, walked in order. Weights are percentages.
	RarityWeights []defs.RarityWeight `yaml:"rarity_weights"`
	// RarityStats gives base damage, fire rate and size per tier.
	RarityStats []defs.TowerStats `yaml:"rarity_stats"`

	// StartingGold is the gold a session starts with.
	StartingGold int `yaml:"starting_gold"`
	// StartingLives is the number of breaches the player can absorb.
	StartingLives int `yaml:"starting_lives"`
	// KillReward is the gold granted per enemy killed.
	KillReward int `yaml:"kill_reward"`
	// TowerCost is the price of placing a tower of any rarity.
	TowerCost int `yaml:"tower_cost"`
	// SellRefundRate is the fraction of the purchase cost refunded on sell.
	SellRefundRate float64 `yaml:"sell_refund_rate"`

	// TowerRange is the targeting radius a new tower starts with.
	TowerRange float64 `yaml:"tower_range"`
	// UpgradeCostPerLevel times the current level is the upgrade price.
	UpgradeCostPerLevel int `yaml:"upgrade_cost_per_level"`
	// UpgradeDamageBase plus the current level is the damage an upgrade adds.
	UpgradeDamageBase float64 `yaml:"upgrade_damage_base"`
	// UpgradeRangeStep is the range an upgrade adds.
	UpgradeRangeStep float64 `yaml:"upgrade_range_step"`

	// EnemyBaseHP plus Stage*EnemyHPGrowth is a normal enemy's hp.
	EnemyBaseHP   float64 `yaml:"enemy_base_hp"`
	EnemyHPGrowth float64 `yaml:"enemy_hp_growth"`
	// EnemySpeed is the distance an enemy covers per tick.
	EnemySpeed float64 `yaml:"enemy_speed"`
	// BossMultiplier scales a mid-boss's hp; a main boss gets
	// BossMultiplier*MainBossFactor.
	BossMultiplier float64 `yaml:"boss_multiplier"`
	MainBossFactor float64 `yaml:"main_boss_factor"`

	// StageCap is the last stage; clearing it wins the game.
	StageCap int `yaml:"stage_cap"`
	// WaveBaseCount plus Stage*WaveGrowth enemies spawn per wave.
	WaveBaseCount int `yaml:"wave_base_count"`
	WaveGrowth    int `yaml:"wave_growth"`
	// SpawnIntervalMs is the accumulated time between two spawns.
	SpawnIntervalMs float64 `yaml:"spawn_interval_ms"`

	// ProjectileSpeed is the distance a projectile covers per tick.
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	// HitRadius is how close a projectile has to get to count as a hit.
	HitRadius float64 `yaml:"hit_radius"`
	// WaypointEpsilon is how close an enemy has to get to a waypoint to turn.
	WaypointEpsilon float64 `yaml:"waypoint_epsilon"`

	// Seed for the rarity roll. Zero seeds from the clock.
	Seed int64 `yaml:"seed"`
}

// Default returns the configuration of the original game.
func Default() Config {
	return Config{
		PathWaypoints: []route.Point{
			{X: 0, Y: 600}, {X: 200, Y: 600},
			{X: 200, Y: 400}, {X: 400, Y: 400},
			{X: 400, Y: 200}, {X: 600, Y: 200},
			{X: 600, Y: 400}, {X: 800, Y: 400},
			{X: 800, Y: 600}, {X: 1000, Y: 600},
			{X: 1280, Y: 600},
		},
		RarityWeights:       defs.DefaultRarityWeights(),
		RarityStats:         defs.DefaultTowerStats(),
		StartingGold:        1000,
		StartingLives:       5,
		KillReward:          25,
		TowerCost:           100,
		SellRefundRate:      0.5,
		TowerRange:          175,
		UpgradeCostPerLevel: 10,
		UpgradeDamageBase:   7,
		UpgradeRangeStep:    5,
		EnemyBaseHP:         100,
		EnemyHPGrowth:       60,
		EnemySpeed:          1.0,
		BossMultiplier:      8,
		MainBossFactor:      1.5,
		StageCap:            30,
		WaveBaseCount:       5,
		WaveGrowth:          2,
		SpawnIntervalMs:     1000,
		ProjectileSpeed:     9,
		HitRadius:           10,
		WaypointEpsilon:     2,
	}
}

// Route builds the validated enemy route.
func (c *Config) Route() (*route.Route, error) {
	return route.New(c.PathWaypoints)
}

// StatsFor looks up the base stats of a tier.
func (c *Config) StatsFor(r defs.Rarity) (defs.TowerStats, bool) {
	for _, s := range c.RarityStats {
		if s.Rarity == r {
			return s, true
		}
	}
	return defs.TowerStats{}, false
}

// ClampDeltaMs bounds a measured frame time to [0, MaxDeltaMs].
func ClampDeltaMs(deltaMs float64) float64 {
	switch {
	case deltaMs > MaxDeltaMs:
		return MaxDeltaMs
	case deltaMs < 0:
		return 0
	}
	return deltaMs
}

// Validate reports the first problem that would make a session misbehave.
func (c *Config) Validate() error {
	if _, err := c.Route(); err != nil {
		return fmt.Errorf("path_waypoints: %w", err)
	}

	if len(c.RarityWeights) == 0 {
		return errors.New("rarity_weights: table is empty")
	}
	total := 0.0
	for i, w := range c.RarityWeights {
		if w.Weight < 0 || math.IsNaN(w.Weight) {
			return fmt.Errorf("rarity_weights[%d]: weight %g must not be negative", i, w.Weight)
		}
		total += w.Weight
		s, ok := c.StatsFor(w.Rarity)
		if !ok {
			return fmt.Errorf("rarity_stats: no entry for %s", w.Rarity)
		}
		if s.FireRate <= 0 {
			return fmt.Errorf("rarity_stats: %s fire_rate %g must be positive", w.Rarity, s.FireRate)
		}
		if s.Damage < 0 {
			return fmt.Errorf("rarity_stats: %s damage %g must not be negative", w.Rarity, s.Damage)
		}
	}
	if total <= 0 {
		return errors.New("rarity_weights: weights must sum to more than zero")
	}

	switch {
	case c.StartingGold < 0:
		return fmt.Errorf("starting_gold: %d must not be negative", c.StartingGold)
	case c.StartingLives < 1:
		return fmt.Errorf("starting_lives: %d must be at least 1", c.StartingLives)
	case c.TowerCost < 0:
		return fmt.Errorf("tower_cost: %d must not be negative", c.TowerCost)
	case c.SellRefundRate < 0 || c.SellRefundRate > 1:
		return fmt.Errorf("sell_refund_rate: %g must be within [0, 1]", c.SellRefundRate)
	case c.UpgradeCostPerLevel < 0:
		return fmt.Errorf("upgrade_cost_per_level: %d must not be negative", c.UpgradeCostPerLevel)
	case c.StageCap < 1:
		return fmt.Errorf("stage_cap: %d must be at least 1", c.StageCap)
	case c.WaveBaseCount < 0 || c.WaveGrowth < 0:
		return fmt.Errorf("wave_base_count/wave_growth: %d/%d must not be negative", c.WaveBaseCount, c.WaveGrowth)
	case c.SpawnIntervalMs <= 0:
		return fmt.Errorf("spawn_interval_ms: %g must be positive", c.SpawnIntervalMs)
	case c.EnemyBaseHP <= 0:
		return fmt.Errorf("enemy_base_hp: %g must be positive", c.EnemyBaseHP)
	case c.EnemySpeed <= 0:
		return fmt.Errorf("enemy_speed: %g must be positive", c.EnemySpeed)
	case c.ProjectileSpeed <= 0:
		return fmt.Errorf("projectile_speed: %g must be positive", c.ProjectileSpeed)
	case c.HitRadius <= 0 || c.WaypointEpsilon <= 0:
		return fmt.Errorf("hit_radius/waypoint_epsilon: %g/%g must be positive", c.HitRadius, c.WaypointEpsilon)
	case !(c.TowerRange > 0) || math.IsInf(c.TowerRange, 0):
		return fmt.Errorf("tower_range: %g must be positive", c.TowerRange)
	case !(c.UpgradeRangeStep >= 0) || math.IsInf(c.UpgradeRangeStep, 0):
		return fmt.Errorf("upgrade_range_step: %g must not be negative", c.UpgradeRangeStep)
	case !(c.EnemyHPGrowth >= 0) || math.IsInf(c.EnemyHPGrowth, 0):
		return fmt.Errorf("enemy_hp_growth: %g must not be negative", c.EnemyHPGrowth)
	case !(c.BossMultiplier > 0) || math.IsInf(c.BossMultiplier, 0):
		return fmt.Errorf("boss_multiplier: %g must be positive", c.BossMultiplier)
	case !(c.MainBossFactor > 0) || math.IsInf(c.MainBossFactor, 0):
		return fmt.Errorf("main_boss_factor: %g must be positive", c.MainBossFactor)
	}
	return nil
}
