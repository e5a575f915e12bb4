// Package game provides the top-level state machine, input routing and the
// fixed-rate frame loop.
package game

// State represents the current game state.
type State int

const (
	// StateSplash is the title screen.
	StateSplash State = iota
	// StateWorldMap lets the player pick a kingdom.
	StateWorldMap
	// StateLevel is free movement inside a kingdom.
	StateLevel
	// StateChallenge shows the code editor for the current quest.
	StateChallenge
	// StateBattle plays the attack sequence after a solved challenge.
	StateBattle
	// StateGameOver is reached once every kingdom is cleared.
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateSplash:
		return "splash"
	case StateWorldMap:
		return "world_map"
	case StateLevel:
		return "level"
	case StateChallenge:
		return "challenge"
	case StateBattle:
		return "battle"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}
