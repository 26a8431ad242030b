// internal/defs/enemies.go
package defs

// BossTier classifies an enemy. Only the last spawn of certain stages is a boss.
type BossTier int

const (
	BossNone BossTier = iota
	BossMid
	BossMain
)

func (b BossTier) String() string {
	switch b {
	case BossMid:
		return "mid"
	case BossMain:
		return "main"
	default:
		return "normal"
	}
}

// Size is the sprite edge in pixels for the tier.
func (b BossTier) Size() float64 {
	switch b {
	case BossMid:
		return 80
	case BossMain:
		return 100
	default:
		return 60
	}
}
