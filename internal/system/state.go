// internal/system/state.go
package system

import (
	"spacemax-td/internal/component"
	"spacemax-td/internal/entity"
	"spacemax-td/internal/event"
)

// StateSystem moves the session between playing and its two terminal states.
// Once terminal the session stays there.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

func (s *StateSystem) Current() component.GameState {
	return s.ecs.GameState
}

func (s *StateSystem) IsTerminal() bool {
	return s.ecs.GameState.Terminal()
}

// SwitchToVictory ends the session as won. It does nothing if the session
// has already ended.
func (s *StateSystem) SwitchToVictory() {
	s.finish(component.VictoryState, event.Victory)
}

// SwitchToGameOver ends the session as lost.
func (s *StateSystem) SwitchToGameOver() {
	s.finish(component.GameOverState, event.GameOver)
}

func (s *StateSystem) finish(state component.GameState, eventType event.EventType) {
	if s.IsTerminal() {
		return
	}
	s.ecs.GameState = state
	s.eventDispatcher.Dispatch(event.Event{
		Type: eventType,
		Data: event.WaveInfo{Stage: s.ecs.Wave.Stage},
	})
}
