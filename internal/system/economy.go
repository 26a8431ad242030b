// internal/system/economy.go
package system

import (
	"spacemax-td/internal/component"
	"spacemax-td/internal/entity"
	"spacemax-td/internal/event"
)

// EconomySystem отвечает за золото и жизни игрока. Награды за убийства и
// штрафы за прорывы приходят событиями, которые рассылает игровая сессия.
type EconomySystem struct {
	ecs        *entity.ECS
	killReward int
}

func NewEconomySystem(ecs *entity.ECS, killReward int, eventDispatcher *event.Dispatcher) *EconomySystem {
	s := &EconomySystem{ecs: ecs, killReward: killReward}
	eventDispatcher.Subscribe(s, event.EnemyKilled, event.EnemyBreached)
	return s
}

// Reset puts the starting gold and lives into the player state.
func (s *EconomySystem) Reset(gold, lives int) {
	*s.ecs.Player = component.PlayerState{Gold: gold, Lives: lives, MaxLives: lives}
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *EconomySystem) OnEvent(e event.Event) {
	player := s.ecs.Player
	switch e.Type {
	case event.EnemyKilled:
		player.Gold += s.killReward
		player.Kills++
	case event.EnemyBreached:
		player.Lives--
		player.Breaches++
	}
}

// CanAfford reports whether cost can be paid without going below zero.
func (s *EconomySystem) CanAfford(cost int) bool {
	return cost >= 0 && s.ecs.Player.Gold >= cost
}

// Spend deducts cost if it is affordable and reports whether it did.
func (s *EconomySystem) Spend(cost int) bool {
	if !s.CanAfford(cost) {
		return false
	}
	s.ecs.Player.Gold -= cost
	return true
}

// Refund adds gold back, for example from a sale.
func (s *EconomySystem) Refund(amount int) {
	if amount > 0 {
		s.ecs.Player.Gold += amount
	}
}

func (s *EconomySystem) Gold() int  { return s.ecs.Player.Gold }
func (s *EconomySystem) Lives() int { return s.ecs.Player.Lives }

// Defeated reports whether the player has no lives left.
func (s *EconomySystem) Defeated() bool {
	return s.ecs.Player.Lives <= 0
}
