// internal/termui/frontend.go
package termui

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"spacemax-td/internal/app"
	"spacemax-td/internal/component"
	"spacemax-td/internal/config"
	"spacemax-td/internal/defs"
	"spacemax-td/internal/scene"
	"spacemax-td/pkg/render"
)

const (
	statusRows = 2 // Status line plus selected tower line
	frameTime  = 16 * time.Millisecond
)

// NewSession builds a fresh game session for a new or restarted run.
type NewSession func() (*app.Game, error)

// Frontend drives a session in a terminal: it maps keys to commands, ticks
// the game on a timer and draws the snapshot as characters.
type Frontend struct {
	screen     tcell.Screen
	game       *app.Game
	newSession NewSession
	viewport   Viewport
	cursorCol  int
	cursorRow  int
	dragging   bool
	snapshot   scene.Snapshot
}

func NewFrontend(screen tcell.Screen, newSession NewSession) (*Frontend, error) {
	g, err := newSession()
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	f := &Frontend{screen: screen, game: g, newSession: newSession}
	f.resize()
	f.cursorCol, f.cursorRow = f.viewport.Cols/2, f.viewport.OffsetRow+f.viewport.Rows/2
	f.snapshot = g.Snapshot()
	return f, nil
}

// Game returns the running session.
func (f *Frontend) Game() *app.Game {
	return f.game
}

// Cursor returns the cursor cell.
func (f *Frontend) Cursor() (col, row int) {
	return f.cursorCol, f.cursorRow
}

func (f *Frontend) resize() {
	w, h := f.screen.Size()
	rows := h - statusRows
	if rows < 1 {
		rows = 1
	}
	if w < 1 {
		w = 1
	}
	f.viewport = Viewport{Cols: w, Rows: rows, OffsetRow: statusRows}
}

// Run polls input and ticks the game until the player quits or ctx ends.
func (f *Frontend) Run(ctx context.Context) error {
	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			events <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			quit, err := f.HandleEvent(ev)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		case now := <-ticker.C:
			deltaMs := config.ClampDeltaMs(float64(now.Sub(last)) / float64(time.Millisecond))
			last = now
			f.Tick(deltaMs)
			f.Draw()
		}
	}
}

// Tick advances the game and refreshes the snapshot used for drawing and
// hit testing.
func (f *Frontend) Tick(deltaMs float64) {
	f.game.Update(deltaMs)
	f.snapshot = f.game.Snapshot()
}

// HandleEvent applies one terminal event. It reports whether the player asked
// to quit.
func (f *Frontend) HandleEvent(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		f.resize()
		f.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true, nil
		case tcell.KeyUp:
			f.moveCursor(0, -1)
		case tcell.KeyDown:
			f.moveCursor(0, 1)
		case tcell.KeyLeft:
			f.moveCursor(-1, 0)
		case tcell.KeyRight:
			f.moveCursor(1, 0)
		case tcell.KeyRune:
			return f.handleRune(ev.Rune())
		}
	}
	return false, nil
}

func (f *Frontend) handleRune(r rune) (bool, error) {
	switch r {
	case 'q':
		return true, nil
	case ' ':
		f.game.Enqueue(app.PlaceOrSelectAt{Point: f.cursorWorld()})
	case 'd':
		f.toggleDrag()
	case 'u':
		f.game.Enqueue(app.UpgradeSelected{})
	case 's':
		f.game.Enqueue(app.SellSelected{})
	case 'r':
		if f.game.StateSystem.IsTerminal() {
			g, err := f.newSession()
			if err != nil {
				return false, fmt.Errorf("restart session: %w", err)
			}
			f.game = g
			f.dragging = false
			f.snapshot = g.Snapshot()
		}
	}
	return false, nil
}

// toggleDrag lifts the tower under the cursor, or drops the lifted one.
func (f *Frontend) toggleDrag() {
	if f.dragging {
		f.game.Enqueue(app.EndDrag{})
		f.dragging = false
		return
	}
	if t, ok := f.snapshot.TowerAt(f.cursorWorld()); ok {
		f.game.Enqueue(app.BeginDrag{TowerID: t.ID})
		f.dragging = true
	}
}

func (f *Frontend) moveCursor(dc, dr int) {
	col, row := f.cursorCol+dc, f.cursorRow+dr
	if !f.viewport.Contains(col, row) {
		return
	}
	f.cursorCol, f.cursorRow = col, row
	if f.dragging {
		f.game.Enqueue(app.DragTo{Point: f.cursorWorld()})
	}
}

func (f *Frontend) cursorWorld() component.Position {
	return f.viewport.ToWorld(f.cursorCol, f.cursorRow)
}

// Draw renders the current snapshot.
func (f *Frontend) Draw() {
	s := f.screen
	snap := &f.snapshot
	s.Clear()

	pathStyle := tcell.StyleDefault.Foreground(toTcell(render.DarkenColor(render.Gold)))
	for i := 1; i < len(snap.Route); i++ {
		f.drawSegment(snap.Route[i-1], snap.Route[i], '·', pathStyle)
	}
	for _, t := range snap.Towers {
		style := tcell.StyleDefault.Foreground(toTcell(render.TowerColor(t.Rarity)))
		if t.Selected {
			style = style.Bold(true).Underline(true)
		}
		f.setCell(t.Position, TowerGlyph(t.Rarity), style)
	}
	for _, e := range snap.Enemies {
		f.setCell(e.Position, EnemyGlyph(e.Boss), tcell.StyleDefault.Foreground(toTcell(render.HealthColor(e.HealthRatio))))
	}
	for _, p := range snap.Projectiles {
		f.setCell(p.Position, '*', tcell.StyleDefault.Foreground(toTcell(render.Gold)))
	}

	s.SetContent(f.cursorCol, f.cursorRow, '+', nil, tcell.StyleDefault.Reverse(true))

	f.drawText(0, 0, StatusLine(snap), tcell.StyleDefault.Foreground(toTcell(render.Gold)))
	if sel := snap.Selected; sel != nil {
		line := fmt.Sprintf("%s Lv%d DMG:%d  [u] upgrade %d  [s] sell +%d  [d] drag",
			sel.Rarity.Title(), sel.Level, int(sel.Damage), sel.UpgradeCost, sel.SellValue)
		f.drawText(0, 1, line, tcell.StyleDefault.Foreground(toTcell(render.RarityColor(sel.Rarity))))
	}
	if label, clr := render.EndBanner(snap.Phase); label != "" {
		w, h := s.Size()
		banner := label + "  (r: new game, q: quit)"
		f.drawText((w-len(banner))/2, h/2, banner, tcell.StyleDefault.Foreground(toTcell(clr)).Bold(true))
	}
	s.Show()
}

// StatusLine is the top row of the terminal view.
func StatusLine(snap *scene.Snapshot) string {
	return fmt.Sprintf("Gold %d  Stage %d/%d  HP %d/%d  Towers %d",
		snap.HUD.Gold, snap.HUD.Stage, snap.HUD.StageCap, snap.HUD.Lives, snap.HUD.MaxLives, len(snap.Towers))
}

// TowerGlyph is the letter a tower is drawn with.
func TowerGlyph(r defs.Rarity) rune {
	switch r {
	case defs.Rare:
		return 'R'
	case defs.Epic:
		return 'E'
	case defs.Legendary:
		return 'L'
	case defs.Mythic:
		return 'M'
	default:
		return 'C'
	}
}

// EnemyGlyph is the character an enemy is drawn with.
func EnemyGlyph(b defs.BossTier) rune {
	switch b {
	case defs.BossMid:
		return 'b'
	case defs.BossMain:
		return 'B'
	default:
		return 'o'
	}
}

func (f *Frontend) setCell(p component.Position, r rune, style tcell.Style) {
	col, row := f.viewport.ToCell(p)
	if f.viewport.Contains(col, row) {
		f.screen.SetContent(col, row, r, nil, style)
	}
}

// drawSegment marks every cell the segment a-b passes through.
func (f *Frontend) drawSegment(a, b component.Position, r rune, style tcell.Style) {
	ac, ar := f.viewport.ToCell(a)
	bc, br := f.viewport.ToCell(b)
	steps := int(math.Max(math.Abs(float64(bc-ac)), math.Abs(float64(br-ar))))
	if steps == 0 {
		f.setCell(a, r, style)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		f.setCell(component.Position{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}, r, style)
	}
}

func (f *Frontend) drawText(col, row int, s string, style tcell.Style) {
	if col < 0 {
		col = 0
	}
	for _, r := range s {
		f.screen.SetContent(col, row, r, nil, style)
		col++
	}
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
