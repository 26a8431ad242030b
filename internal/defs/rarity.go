// internal/defs/rarity.go
package defs

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rarity is the tier a tower rolls on placement. The order of the constants
// is the order the roll walks the weight table.
type Rarity int

const (
	Common Rarity = iota
	Rare
	Epic
	Legendary
	Mythic
)

var rarityNames = [...]string{"common", "rare", "epic", "legendary", "mythic"}

// AllRarities lists the tiers from lowest to highest.
func AllRarities() []Rarity {
	return []Rarity{Common, Rare, Epic, Legendary, Mythic}
}

func (r Rarity) String() string {
	if r < Common || r > Mythic {
		return fmt.Sprintf("rarity(%d)", int(r))
	}
	return rarityNames[r]
}

// Title is the display form used in HUD text ("Legendary").
func (r Rarity) Title() string {
	s := r.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseRarity accepts the lower-case tier names, case-insensitively.
func ParseRarity(s string) (Rarity, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range rarityNames {
		if name == s {
			return Rarity(i), nil
		}
	}
	return Common, fmt.Errorf("unknown rarity %q", s)
}

// UnmarshalYAML decodes a tier from its name.
func (r *Rarity) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: rarity must be a scalar", value.Line)
	}
	parsed, err := ParseRarity(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*r = parsed
	return nil
}

// MarshalYAML encodes a tier as its name.
func (r Rarity) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}

// RarityWeight is one row of the roll table: the percentage chance of a tier.
type RarityWeight struct {
	Rarity Rarity  `yaml:"rarity"`
	Weight float64 `yaml:"weight"`
}

// TowerStats are the base combat stats a tower of a given tier starts with.
type TowerStats struct {
	Rarity   Rarity  `yaml:"rarity"`
	Damage   float64 `yaml:"damage"`
	FireRate float64 `yaml:"fire_rate"` // Shots per second
	Size     float64 `yaml:"size"`      // Sprite edge in pixels, also the click box
}

// DefaultRarityWeights is the roll table of the original game. Weights sum to 100.
func DefaultRarityWeights() []RarityWeight {
	return []RarityWeight{
		{Rarity: Common, Weight: 65.0},
		{Rarity: Rare, Weight: 20.3},
		{Rarity: Epic, Weight: 13.3},
		{Rarity: Legendary, Weight: 1.0},
		{Rarity: Mythic, Weight: 0.4},
	}
}

// DefaultTowerStats is the per-tier stat table.
func DefaultTowerStats() []TowerStats {
	return []TowerStats{
		{Rarity: Common, Damage: 20, FireRate: 1.0, Size: 50},
		{Rarity: Rare, Damage: 30, FireRate: 1.2, Size: 60},
		{Rarity: Epic, Damage: 45, FireRate: 1.4, Size: 70},
		{Rarity: Legendary, Damage: 75, FireRate: 1.6, Size: 110},
		{Rarity: Mythic, Damage: 125, FireRate: 2.0, Size: 150},
	}
}
