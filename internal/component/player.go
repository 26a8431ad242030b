// internal/component/player.go
package component

// PlayerState holds the session economy.
type PlayerState struct {
	Gold     int
	Lives    int
	MaxLives int
	Kills    int
	Breaches int
}
