package render

import (
	"testing"

	"spacemax-td/internal/component"
	"spacemax-td/internal/defs"
)

func TestHealthColorThresholds(t *testing.T) {
	tests := []struct {
		ratio float64
		want  string
	}{
		{1, "green"}, {0.51, "green"}, {0.5, "orange"}, {0.26, "orange"}, {0.25, "red"}, {0, "red"},
	}
	names := map[string]interface{}{"green": Green, "orange": Orange, "red": Red}
	for _, tt := range tests {
		if got := HealthColor(tt.ratio); got != names[tt.want] {
			t.Errorf("HealthColor(%g) = %v, want %s", tt.ratio, got, tt.want)
		}
	}
}

func TestStageColor(t *testing.T) {
	if StageColor(10) != Red || StageColor(30) != Red {
		t.Error("main boss stages should be red")
	}
	if StageColor(5) != Orange || StageColor(25) != Orange {
		t.Error("mid boss stages should be orange")
	}
	if StageColor(7) != White {
		t.Error("regular stages should be white")
	}
}

func TestEveryTierHasColors(t *testing.T) {
	for _, r := range defs.AllRarities() {
		if TowerColor(r) == White || RarityColor(r) == White {
			t.Errorf("%v falls back to white", r)
		}
	}
}

func TestDarkenColor(t *testing.T) {
	if got := DarkenColor(Gold); got.R != 127 || got.G != 107 || got.B != 0 || got.A != 255 {
		t.Errorf("DarkenColor(Gold) = %v", got)
	}
}

func TestEndBanner(t *testing.T) {
	if label, clr := EndBanner(component.VictoryState); label != "YOU WIN!" || clr != Green {
		t.Errorf("victory banner = %q %v", label, clr)
	}
	if label, clr := EndBanner(component.GameOverState); label != "GAME OVER" || clr != Red {
		t.Errorf("game over banner = %q %v", label, clr)
	}
	if label, _ := EndBanner(component.PlayingState); label != "" {
		t.Errorf("playing banner = %q", label)
	}
}
