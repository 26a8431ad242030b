// internal/app/input.go
package app

import (
	"spacemax-td/internal/component"
	"spacemax-td/internal/types"
)

// Command is an input event already translated out of window coordinates.
// Frontends Enqueue commands; Update drains them in order before simulating.
type Command interface {
	apply(g *Game)
}

// PlaceOrSelectAt selects the tower under Point, or buys a new tower there
// when the spot is empty and the player can afford one.
type PlaceOrSelectAt struct {
	Point component.Position
}

// BeginDrag selects TowerID and lifts it; a lifted tower does not fire.
type BeginDrag struct {
	TowerID types.EntityID
}

// DragTo moves every lifted tower to Point.
type DragTo struct {
	Point component.Position
}

// EndDrag drops every lifted tower where it is.
type EndDrag struct{}

// SellSelected sells the selected tower.
type SellSelected struct{}

// UpgradeSelected upgrades the selected tower if the player can pay.
type UpgradeSelected struct{}

func (c PlaceOrSelectAt) apply(g *Game) { g.PlaceOrSelectAt(c.Point) }
func (c BeginDrag) apply(g *Game)       { g.BeginDrag(c.TowerID) }
func (c DragTo) apply(g *Game)          { g.DragTo(c.Point) }
func (EndDrag) apply(g *Game)           { g.EndDrag() }
func (SellSelected) apply(g *Game)      { g.SellSelected() }
func (UpgradeSelected) apply(g *Game)   { g.UpgradeSelected() }

// Enqueue queues commands for the next Update. Commands sent after the
// session ended are dropped.
func (g *Game) Enqueue(cmds ...Command) {
	if g.StateSystem.IsTerminal() {
		return
	}
	g.commands = append(g.commands, cmds...)
}

// Pending is the number of queued commands.
func (g *Game) Pending() int {
	return len(g.commands)
}

func (g *Game) drainCommands() {
	queued := g.commands
	g.commands = nil
	for _, cmd := range queued {
		cmd.apply(g)
	}
}
