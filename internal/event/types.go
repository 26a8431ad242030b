// internal/event/types.go
package event

import (
	"spacemax-td/internal/defs"
	"spacemax-td/internal/types"
)

const (
	WaveStarted   EventType = "WaveStarted"   // Новая волна, Data: WaveInfo
	EnemySpawned  EventType = "EnemySpawned"  // Data: EnemyInfo
	EnemyKilled   EventType = "EnemyKilled"   // Враг уничтожен, Data: EnemyInfo
	EnemyBreached EventType = "EnemyBreached" // Враг дошёл до конца пути, Data: EnemyInfo
	TowerPlaced   EventType = "TowerPlaced"   // Data: TowerInfo
	TowerSold     EventType = "TowerSold"     // Data: TowerInfo
	TowerUpgraded EventType = "TowerUpgraded" // Data: TowerInfo
	Victory       EventType = "Victory"       // Data: WaveInfo
	GameOver      EventType = "GameOver"      // Data: WaveInfo
)

// EnemyInfo is the payload of enemy events.
type EnemyInfo struct {
	ID    types.EntityID
	Boss  defs.BossTier
	MaxHP float64
	Stage int
}

// TowerInfo is the payload of tower events. Gold is the amount paid or refunded.
type TowerInfo struct {
	ID     types.EntityID
	Rarity defs.Rarity
	Level  int
	Gold   int
}

// WaveInfo is the payload of stage events.
type WaveInfo struct {
	Stage int
	Count int
}
