package system

import (
	"io"
	"log/slog"
	"testing"

	"spacemax-td/internal/component"
	"spacemax-td/internal/config"
	"spacemax-td/internal/entity"
	"spacemax-td/internal/event"
	"spacemax-td/pkg/route"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// lRoute goes 10 units right, then 10 units down.
func lRoute(t *testing.T) *route.Route {
	t.Helper()
	r, err := route.New([]route.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}})
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func addEnemy(ecs *entity.ECS, x, y, hp float64) component.Position {
	pos := component.Position{X: x, Y: y}
	ecs.AddEnemy(pos, &component.Enemy{HP: hp, MaxHP: hp, Speed: 1})
	return pos
}

type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) {
	l.events = append(l.events, e)
}

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newWaveSystem(t *testing.T, cfg *config.Config) (*WaveSystem, *entity.ECS, *eventLog) {
	t.Helper()
	r, err := cfg.Route()
	if err != nil {
		t.Fatal(err)
	}
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	log := &eventLog{}
	d.SubscribeAll(log)
	return NewWaveSystem(ecs, r, cfg, d, discardLogger), ecs, log
}
