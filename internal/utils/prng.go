// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"spacemax-td/internal/defs"
)

// PRNGService: это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// ChooseWeighted rolls a rarity from a percentage table. The draw is uniform
// over [0, sum of weights), which is [0, 100) for a well-formed table; the
// tiers are walked in table order and the first whose running total reaches
// the draw wins. If rounding leaves the draw above every running total the
// first tier is returned, so a roll always resolves.
func (s *PRNGService) ChooseWeighted(entries []defs.RarityWeight) defs.Rarity {
	if len(entries) == 0 {
		return defs.Common
	}

	total := 0.0
	for _, entry := range entries {
		total += entry.Weight
	}
	if total <= 0 {
		return entries[0].Rarity
	}

	return pickWeighted(entries, s.rng.Float64()*total)
}

func pickWeighted(entries []defs.RarityWeight, roll float64) defs.Rarity {
	cumulative := 0.0
	for _, entry := range entries {
		cumulative += entry.Weight
		if roll <= cumulative {
			return entry.Rarity
		}
	}
	return entries[0].Rarity
}
