package gamedata

import "github.com/gdamore/tcell/v2"

// SpriteRef points at an animation on a sprite sheet: the sheet's path
// under the graphics directory, the lettered column, the row, and how many
// consecutive frames belong to the animation. Frames of 1 is a still image.
type SpriteRef struct {
	Sheet  string `json:"sheet"`
	Column string `json:"column"`
	Row    int    `json:"row"`
	Frames int    `json:"frames"`
}

// IsZero reports whether the reference points at nothing.
func (s SpriteRef) IsZero() bool {
	return s.Sheet == ""
}

// CreatureDef defines a creature type loaded from JSON.
type CreatureDef struct {
	ID          string    `json:"id"`          // Unique identifier (e.g., "dungo")
	Name        string    `json:"name"`        // Display name (e.g., "Dungo")
	Glyph       string    `json:"glyph"`       // Single character for glyph rendering
	Color       string    `json:"color"`       // Hex color code (e.g., "#00FF00")
	Sprite      SpriteRef `json:"sprite"`      // Sheet cells for the pixel renderer
	HP          int       `json:"hp"`          // Base hit points
	Attack      int       `json:"attack"`      // Base attack power
	Defense     int       `json:"defense"`     // Base defense value
	Behavior    string    `json:"behavior"`    // "chase", "wander", or "" for none
	AggroRadius int       `json:"aggroRadius"` // How far the creature notices the player; 0 = default
	Hostile     bool      `json:"hostile"`     // Hostile creatures fight the player
	SpawnWeight int       `json:"spawnWeight"` // Relative spawn frequency; 0 never spawns naturally
	MinDepth    int       `json:"minDepth"`    // Shallowest floor this creature appears on
}

// GlyphRune returns the glyph as a rune for rendering.
func (c *CreatureDef) GlyphRune() rune {
	if len(c.Glyph) == 0 {
		return '?'
	}
	return rune(c.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (c *CreatureDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(c.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// CreaturesFile represents the structure of creatures.json.
type CreaturesFile struct {
	Creatures []CreatureDef `json:"creatures"`
}

// LoadCreatures loads creature definitions from the embedded creatures.json file.
func LoadCreatures() ([]CreatureDef, error) {
	file, err := Load[CreaturesFile]("creatures.json")
	if err != nil {
		return nil, err
	}
	return file.Creatures, nil
}
