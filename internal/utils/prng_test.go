package utils

import (
	"math"
	"testing"

	"spacemax-td/internal/component"
	"spacemax-td/internal/defs"
)

func TestPickWeightedBoundaries(t *testing.T) {
	table := defs.DefaultRarityWeights()
	tests := []struct {
		roll float64
		want defs.Rarity
	}{
		{0, defs.Common},
		{65, defs.Common},
		{65.0001, defs.Rare},
		{85.2, defs.Rare},
		{85.5, defs.Epic},
		{99, defs.Legendary},
		{99.9, defs.Mythic},
		{150, defs.Common}, // above every running total
	}
	for _, tt := range tests {
		if got := pickWeighted(table, tt.roll); got != tt.want {
			t.Errorf("pickWeighted(%g) = %v, want %v", tt.roll, got, tt.want)
		}
	}
}

func TestChooseWeightedDistribution(t *testing.T) {
	rng := NewPRNGService(42)
	table := defs.DefaultRarityWeights()
	const n = 100000

	counts := make(map[defs.Rarity]int)
	for i := 0; i < n; i++ {
		counts[rng.ChooseWeighted(table)]++
	}
	for _, w := range table {
		got := float64(counts[w.Rarity]) / n * 100
		if math.Abs(got-w.Weight) > 0.6 {
			t.Errorf("%v: %.2f%%, want %.1f%% ±0.6", w.Rarity, got, w.Weight)
		}
	}
}

func TestChooseWeightedDegenerateTables(t *testing.T) {
	rng := NewPRNGService(1)
	if got := rng.ChooseWeighted(nil); got != defs.Common {
		t.Errorf("empty table: %v", got)
	}
	zero := []defs.RarityWeight{{Rarity: defs.Epic}, {Rarity: defs.Mythic}}
	if got := rng.ChooseWeighted(zero); got != defs.Epic {
		t.Errorf("zero table: %v", got)
	}
	only := []defs.RarityWeight{{Rarity: defs.Rare, Weight: 0}, {Rarity: defs.Mythic, Weight: 3}}
	for i := 0; i < 100; i++ {
		if got := rng.ChooseWeighted(only); got != defs.Mythic {
			t.Fatalf("zero-weight tier rolled: %v", got)
		}
	}
}

func TestSeededRollsRepeat(t *testing.T) {
	a, b := NewPRNGService(99), NewPRNGService(99)
	table := defs.DefaultRarityWeights()
	for i := 0; i < 50; i++ {
		if a.ChooseWeighted(table) != b.ChooseWeighted(table) {
			t.Fatal("same seed produced different rolls")
		}
	}
}

func TestStepToward(t *testing.T) {
	next, dist := StepToward(component.Position{}, component.Position{X: 3, Y: 4}, 1)
	if dist != 5 {
		t.Errorf("pre-move distance = %g, want 5", dist)
	}
	if math.Abs(next.X-0.6) > 1e-12 || math.Abs(next.Y-0.8) > 1e-12 {
		t.Errorf("next = %+v, want (0.6, 0.8)", next)
	}

	p := component.Position{X: 7, Y: 7}
	if next, dist := StepToward(p, p, 5); next != p || dist != 0 {
		t.Errorf("coincident points moved to %+v (dist %g)", next, dist)
	}
}

func TestClamp01(t *testing.T) {
	if Clamp01(-0.5) != 0 || Clamp01(0.3) != 0.3 || Clamp01(2) != 1 {
		t.Error("Clamp01 out of range")
	}
}
