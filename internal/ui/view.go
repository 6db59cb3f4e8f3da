package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/abromley/towerrak/internal/entity"
	"github.com/abromley/towerrak/internal/world"
)

// Message is one line of the in-game log with its display color.
type Message struct {
	Text  string
	Color tcell.Color
}

// TargetOverlay highlights the tiles under consideration while the player
// aims a scroll.
type TargetOverlay struct {
	// Line runs from the caster to the aim point; its last tile is the
	// aim point itself.
	Line []world.Point
	// Blast marks the area-of-effect tiles around the aim point, empty
	// for single-target spells.
	Blast []world.Point
	Color tcell.Color
}

// InventoryView is the open inventory pane.
type InventoryView struct {
	Items    []*entity.Actor
	Selected int
	Gold     int
	Capacity int
}

// View is everything the renderer needs for one frame. The game assembles
// it fresh each turn; the renderer never reaches back into game state.
type View struct {
	Dungeon *world.Dungeon
	// Actors in draw order; the renderer stacks them per tile with the
	// player on top.
	Actors []*entity.Actor
	Player *entity.Actor
	Depth  int
	Turn   int

	Messages []Message

	// Target is non-nil while the player is aiming.
	Target *TargetOverlay
	// Inventory is non-nil while the inventory pane is open.
	Inventory *InventoryView
	// Banner is centered over the map when the run is over.
	Banner string
}
