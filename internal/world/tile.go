// Package world provides dungeon generation, fog-of-war, and map queries.
package world

// TileKind distinguishes what a tile is made of.
type TileKind rune

const (
	// TileWall is an impassable, sight-blocking wall.
	TileWall TileKind = '#'
	// TileFloor is open, walkable ground.
	TileFloor TileKind = '.'
)

// Tile is a single map cell. Kind is fixed after generation; fog state
// changes as the player moves.
type Tile struct {
	Kind     TileKind
	Visible  bool // inside the player's current field of view
	Explored bool // seen at least once; never resets within a floor
	Style    int  // autotile code selecting the wall or floor sprite
	Variant  int  // texture variant for styles that have several
}

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t.Kind == TileFloor
}

// BlocksSight returns true if the tile stops line of sight.
func (t Tile) BlocksSight() bool {
	return t.Kind == TileWall
}

// Rune returns the tile's display character for glyph rendering.
func (t Tile) Rune() rune {
	return rune(t.Kind)
}
