package gamedata

import "github.com/gdamore/tcell/v2"

// ItemCategory groups items by how the game treats them.
type ItemCategory string

const (
	CategoryScroll    ItemCategory = "scroll"    // Consumable that casts a spell
	CategoryEquipment ItemCategory = "equipment" // Wearable in a slot
	CategoryGold      ItemCategory = "gold"      // Currency, merges into the purse
	CategoryRelic     ItemCategory = "relic"     // Quest item; carrying it out wins the game
)

// ItemDef defines an item type loaded from JSON.
type ItemDef struct {
	ID           string       `json:"id"`           // Unique identifier (e.g., "scroll_fireball")
	Name         string       `json:"name"`         // Display name (e.g., "Fireball Scroll")
	Glyph        string       `json:"glyph"`        // Single character for glyph rendering
	Color        string       `json:"color"`        // Hex color code
	Sprite       SpriteRef    `json:"sprite"`       // Sheet cells for the pixel renderer
	Category     ItemCategory `json:"category"`     // What kind of item this is
	Weight       float64      `json:"weight"`       // Carry weight
	Value        int          `json:"value"`        // Gold value; for gold piles, the amount
	SpellID      string       `json:"spellID"`      // Spell cast on use (scrolls only)
	Slot         string       `json:"slot"`         // Equipment slot ("weapon", "shield")
	AttackBonus  int          `json:"attackBonus"`  // Added to wearer's attack while equipped
	DefenseBonus int          `json:"defenseBonus"` // Added to wearer's defense while equipped
	SpawnWeight  int          `json:"spawnWeight"`  // Relative spawn frequency; 0 never spawns naturally
	MinDepth     int          `json:"minDepth"`     // Shallowest floor this item appears on
}

// GlyphRune returns the glyph as a rune for rendering.
func (i *ItemDef) GlyphRune() rune {
	if len(i.Glyph) == 0 {
		return '?'
	}
	return rune(i.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (i *ItemDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(i.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// IsConsumable reports whether using the item destroys it.
func (i *ItemDef) IsConsumable() bool {
	return i.Category == CategoryScroll
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []ItemDef `json:"items"`
}

// LoadItems loads item definitions from the embedded items.json file.
func LoadItems() ([]ItemDef, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	return file.Items, nil
}
