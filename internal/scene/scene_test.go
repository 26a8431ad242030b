package scene

import (
	"testing"

	"spacemax-td/internal/component"
)

func TestContainsIsHalfOpen(t *testing.T) {
	center := component.Position{X: 100, Y: 100}
	tests := []struct {
		p    component.Position
		want bool
	}{
		{component.Position{X: 100, Y: 100}, true},
		{component.Position{X: 75, Y: 75}, true},
		{component.Position{X: 125, Y: 100}, false},
		{component.Position{X: 100, Y: 125}, false},
		{component.Position{X: 124.9, Y: 124.9}, true},
		{component.Position{X: 74.9, Y: 100}, false},
	}
	for _, tt := range tests {
		if got := Contains(center, 50, tt.p); got != tt.want {
			t.Errorf("Contains(%+v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestTowerAtPrefersPlacementOrder(t *testing.T) {
	snap := Snapshot{Towers: []TowerView{
		{ID: 1, Position: component.Position{X: 100, Y: 100}, Size: 50},
		{ID: 2, Position: component.Position{X: 110, Y: 100}, Size: 50},
	}}
	if got, ok := snap.TowerAt(component.Position{X: 115, Y: 100}); !ok || got.ID != 1 {
		t.Errorf("TowerAt = %d, %v; want the earlier tower", got.ID, ok)
	}
	if got, ok := snap.TowerAt(component.Position{X: 130, Y: 100}); !ok || got.ID != 2 {
		t.Errorf("TowerAt = %d, %v; want tower 2", got.ID, ok)
	}
	if _, ok := snap.TowerAt(component.Position{}); ok {
		t.Error("hit on empty ground")
	}
}
