// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StatePlaying is ordinary dungeon crawling.
	StatePlaying State = iota
	// StateInventory has the inventory pane open.
	StateInventory
	// StateTargeting is aiming a scroll at a tile.
	StateTargeting
	// StateGameOver follows the player's death.
	StateGameOver
	// StateWon follows the escape through the portal.
	StateWon
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateInventory:
		return "inventory"
	case StateTargeting:
		return "targeting"
	case StateGameOver:
		return "game over"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}
