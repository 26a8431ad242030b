package termui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"spacemax-td/internal/app"
	"spacemax-td/internal/component"
	"spacemax-td/internal/config"
	"spacemax-td/internal/defs"
	"spacemax-td/internal/utils"
)

func newTestFrontend(t *testing.T) *Frontend {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	cfg := config.Default()
	cfg.Seed = 7
	f, err := NewFrontend(screen, func() (*app.Game, error) {
		return app.NewGame(cfg, app.WithRNG(utils.NewPRNGService(cfg.Seed)))
	})
	if err != nil {
		t.Fatalf("NewFrontend: %v", err)
	}
	return f
}

func TestViewportRoundTrip(t *testing.T) {
	v := Viewport{Cols: 80, Rows: 22, OffsetRow: 2}
	for _, cell := range [][2]int{{0, 2}, {40, 13}, {79, 23}} {
		p := v.ToWorld(cell[0], cell[1])
		col, row := v.ToCell(p)
		if col != cell[0] || row != cell[1] {
			t.Errorf("cell %v -> %+v -> (%d, %d)", cell, p, col, row)
		}
	}
	if v.Contains(0, 1) || v.Contains(80, 5) || !v.Contains(0, 2) {
		t.Error("Contains disagrees with the playfield bounds")
	}
}

func TestPlaceDragAndSell(t *testing.T) {
	f := newTestFrontend(t)
	g := f.Game()
	start := g.Gold()

	f.handleRune(' ')
	f.Tick(0)
	if g.ECS.Towers.Len() != 1 || g.Gold() != start-g.Config.TowerCost {
		t.Fatalf("after place: towers=%d gold=%d", g.ECS.Towers.Len(), g.Gold())
	}
	id := g.ECS.Towers.IDs()[0]

	f.handleRune('d')
	f.Tick(0)
	if g.SelectedTower() != id {
		t.Fatalf("dragged tower not selected: %v", g.SelectedTower())
	}
	f.moveCursor(1, 0)
	f.Tick(0)
	want := f.cursorWorld()
	if got := *g.ECS.Positions[id]; got != want {
		t.Errorf("tower at %+v, want %+v", got, want)
	}
	f.handleRune('d')
	f.Tick(0)
	if tower, _ := g.ECS.Towers.Get(id); tower.Dragging {
		t.Error("tower still dragging after second toggle")
	}

	f.handleRune('s')
	f.Tick(0)
	if g.ECS.Towers.Len() != 0 {
		t.Fatal("tower not sold")
	}
	if want := start - g.Config.TowerCost + 50; g.Gold() != want {
		t.Errorf("gold = %d, want %d", g.Gold(), want)
	}
	f.Draw()
}

func TestCursorStaysInPlayfield(t *testing.T) {
	f := newTestFrontend(t)
	for i := 0; i < 100; i++ {
		f.moveCursor(0, -1)
	}
	if _, row := f.Cursor(); row != statusRows {
		t.Errorf("cursor row = %d, want %d", row, statusRows)
	}
}

func TestQuitAndRestart(t *testing.T) {
	f := newTestFrontend(t)
	if quit, _ := f.handleRune('q'); !quit {
		t.Error("q should quit")
	}

	first := f.Game()
	f.handleRune('r')
	if f.Game() != first {
		t.Fatal("restart must be ignored while playing")
	}
	first.StateSystem.SwitchToGameOver()
	if _, err := f.handleRune('r'); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if f.Game() == first || f.Game().Phase() != component.PlayingState {
		t.Error("restart did not start a new session")
	}
	f.Draw()
}

func TestGlyphs(t *testing.T) {
	if TowerGlyph(defs.Mythic) != 'M' || TowerGlyph(defs.Common) != 'C' {
		t.Error("tower glyphs")
	}
	if EnemyGlyph(defs.BossMain) != 'B' || EnemyGlyph(defs.BossNone) != 'o' {
		t.Error("enemy glyphs")
	}
}
