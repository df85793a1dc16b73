// Package game provides the main game loop, the rules of play and state
// management.
package game

// State represents the current game state.
type State int

const (
	// StateExplore is the default mode: the player walks the maze.
	StateExplore State = iota
	// StateGameOver is entered when HP runs out or the infection takes hold.
	StateGameOver
	// StateVictory is entered once the sixth fragment is collected.
	StateVictory
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateGameOver:
		return "game_over"
	case StateVictory:
		return "victory"
	default:
		return "unknown"
	}
}
