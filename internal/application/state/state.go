package state

// GameState represents the current state of the game
type GameState int

const (
	StateStart GameState = iota
	StatePlaying
	StateVictory
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateStart:
		return "Start"
	case StatePlaying:
		return "Playing"
	case StateVictory:
		return "Victory"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Terminal reports whether s ends a session
func (s GameState) Terminal() bool {
	return s == StateVictory || s == StateGameOver
}
