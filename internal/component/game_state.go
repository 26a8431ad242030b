// internal/component/game_state.go
package component

// GameState is the session phase. Victory and GameOver are terminal.
type GameState int

const (
	PlayingState GameState = iota
	VictoryState
	GameOverState
)

func (s GameState) String() string {
	switch s {
	case VictoryState:
		return "victory"
	case GameOverState:
		return "game_over"
	default:
		return "playing"
	}
}

// Terminal reports whether the session has ended.
func (s GameState) Terminal() bool {
	return s != PlayingState
}
