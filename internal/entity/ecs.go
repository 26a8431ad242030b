// internal/entity/ecs.go
package entity

import (
	"spacemax-td/internal/component"
	"spacemax-td/internal/types"
)

// ECS owns every entity of a session. Only the tick routine and input
// commands mutate it, both on the game loop goroutine.
type ECS struct {
	GameTime    float64 // Milliseconds since the session started
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Enemies     *Store[component.Enemy]
	Towers      *Store[component.Tower]
	Projectiles *Store[component.Projectile]
	Wave        *component.Wave
	Player      *component.PlayerState
	GameState   component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Enemies:     NewStore[component.Enemy](),
		Towers:      NewStore[component.Tower](),
		Projectiles: NewStore[component.Projectile](),
		Wave:        &component.Wave{Stage: 1},
		Player:      &component.PlayerState{},
		GameState:   component.PlayingState,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// AddEnemy creates an enemy entity at pos.
func (ecs *ECS) AddEnemy(pos component.Position, enemy *component.Enemy) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &pos
	ecs.Enemies.Add(id, enemy)
	return id
}

// AddTower creates a tower entity at pos.
func (ecs *ECS) AddTower(pos component.Position, tower *component.Tower) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &pos
	ecs.Towers.Add(id, tower)
	return id
}

// AddProjectile creates a projectile entity at pos.
func (ecs *ECS) AddProjectile(pos component.Position, proj *component.Projectile) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &pos
	ecs.Projectiles.Add(id, proj)
	return id
}

// RemoveEnemy deletes an enemy and reports whether it existed. A second call
// for the same ID is a no-op.
func (ecs *ECS) RemoveEnemy(id types.EntityID) bool {
	if !ecs.Enemies.Remove(id) {
		return false
	}
	delete(ecs.Positions, id)
	return true
}

func (ecs *ECS) RemoveTower(id types.EntityID) bool {
	if !ecs.Towers.Remove(id) {
		return false
	}
	delete(ecs.Positions, id)
	return true
}

func (ecs *ECS) RemoveProjectile(id types.EntityID) bool {
	if !ecs.Projectiles.Remove(id) {
		return false
	}
	delete(ecs.Positions, id)
	return true
}

// LiveEnemy resolves a weak enemy handle. It fails for removed enemies and
// for enemies already at zero hp.
func (ecs *ECS) LiveEnemy(id types.EntityID) (*component.Enemy, *component.Position, bool) {
	enemy, ok := ecs.Enemies.Get(id)
	if !ok || !enemy.Alive() {
		return nil, nil, false
	}
	pos, ok := ecs.Positions[id]
	if !ok {
		return nil, nil, false
	}
	return enemy, pos, true
}
