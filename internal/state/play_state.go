// internal/state/play_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"spacemax-td/internal/app"
	"spacemax-td/internal/component"
	"spacemax-td/internal/scene"
	"spacemax-td/internal/ui"
)

// NewSession builds a fresh game session. The play state calls it on start
// and when the player asks for a new game from the end screen.
type NewSession func() (*app.Game, error)

// PlayState это состояние игры: переводит ввод ebiten в команды сессии,
// продвигает симуляцию и рисует её снимок.
type PlayState struct {
	sm         *StateMachine
	game       *app.Game
	newSession NewSession
	renderer   *ui.SceneRenderer
	hud        *ui.HUD
	snapshot   scene.Snapshot
	dragging   bool
}

func NewPlayState(sm *StateMachine, newSession NewSession, fonts *ui.Fonts) (*PlayState, error) {
	g, err := newSession()
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	ps := &PlayState{
		sm:         sm,
		game:       g,
		newSession: newSession,
		renderer:   ui.NewSceneRenderer(),
		hud:        ui.NewHUD(fonts),
	}
	ps.snapshot = g.Snapshot()
	return ps, nil
}

// Game returns the running session.
func (s *PlayState) Game() *app.Game {
	return s.game
}

// restart replaces the session with a fresh one built by newSession.
func (s *PlayState) restart() error {
	g, err := s.newSession()
	if err != nil {
		return fmt.Errorf("restart session: %w", err)
	}
	s.game = g
	s.snapshot = g.Snapshot()
	s.dragging = false
	s.renderer = ui.NewSceneRenderer()
	return nil
}

func (s *PlayState) Enter() {
	s.game.Logger().Debug("play state entered")
}

func (s *PlayState) Update(deltaMs float64) error {
	s.handleInput()
	s.game.Update(deltaMs)
	s.snapshot = s.game.Snapshot()

	if s.game.StateSystem.IsTerminal() {
		s.sm.SetState(NewEndState(s.sm, s))
	}
	return nil
}

// handleInput hit-tests clicks against the last drawn snapshot, which is
// what the player saw when clicking.
func (s *PlayState) handleInput() {
	x, y := ebiten.CursorPosition()
	cursor := component.Position{X: float64(x), Y: float64(y)}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		cmds := []app.Command{app.PlaceOrSelectAt{Point: cursor}}
		if t, ok := s.snapshot.TowerAt(cursor); ok {
			cmds = append(cmds, app.BeginDrag{TowerID: t.ID})
			s.dragging = true
		}
		s.game.Enqueue(cmds...)
	}
	if s.dragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		s.game.Enqueue(app.DragTo{Point: cursor})
	}
	if s.dragging && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		s.game.Enqueue(app.EndDrag{})
		s.dragging = false
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		s.game.Enqueue(app.SellSelected{})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		s.game.Enqueue(app.UpgradeSelected{})
	}
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen, &s.snapshot)
	s.hud.Draw(screen, &s.snapshot)
}

func (s *PlayState) Exit() {}
