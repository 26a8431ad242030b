// internal/state/end_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что состояния соответствуют интерфейсу State
var (
	_ State = (*PlayState)(nil)
	_ State = (*EndState)(nil)
)

// EndState shows the frozen final frame of a finished session under a
// "YOU WIN!" or "GAME OVER" banner.
type EndState struct {
	sm   *StateMachine
	play *PlayState
}

func NewEndState(sm *StateMachine, play *PlayState) *EndState {
	return &EndState{sm: sm, play: play}
}

func (s *EndState) Enter() {
	g := s.play.Game()
	g.Logger().Info("session ended", "phase", g.Phase().String(), "stage", g.Stage(), "gold", g.Gold())
}

func (s *EndState) Update(deltaMs float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := s.play.restart(); err != nil {
			return err
		}
		s.sm.SetState(s.play)
	}
	return nil
}

func (s *EndState) Draw(screen *ebiten.Image) {
	s.play.Draw(screen)
	s.play.hud.DrawBanner(screen, s.play.Game().Phase())
}

func (s *EndState) Exit() {}
