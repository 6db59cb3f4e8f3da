package gamedata

// SpellKind selects the effect a spell has when cast. The magic package
// dispatches on the kind; the rest of a SpellDef parameterizes the effect.
type SpellKind string

const (
	SpellHeal      SpellKind = "heal"      // Restore HP to the caster
	SpellLightning SpellKind = "lightning" // Damage every creature along a line
	SpellFireball  SpellKind = "fireball"  // Damage every creature in a disc
	SpellConfusion SpellKind = "confusion" // Scramble a creature's wits for a while
)

// SpellDef defines a castable spell loaded from JSON. Not every field is
// meaningful for every kind: heal ignores Range, only fireball reads Radius,
// and only confusion reads Duration.
type SpellDef struct {
	ID       string    `json:"id"`       // Unique identifier (e.g., "fireball")
	Name     string    `json:"name"`     // Display name (e.g., "Fireball")
	Kind     SpellKind `json:"kind"`     // Which effect to apply
	Power    int       `json:"power"`    // Damage dealt or HP restored
	Range    int       `json:"range"`    // Maximum targeting distance in tiles
	Radius   int       `json:"radius"`   // Blast radius in tiles (fireball)
	Duration int       `json:"duration"` // Effect length in turns (confusion)
}

// NeedsTarget reports whether casting requires the player to pick a tile.
func (s *SpellDef) NeedsTarget() bool {
	return s.Kind != SpellHeal
}

// SpellsFile represents the structure of spells.json.
type SpellsFile struct {
	Spells []SpellDef `json:"spells"`
}

// LoadSpells loads spell definitions from the embedded spells.json file.
func LoadSpells() ([]SpellDef, error) {
	file, err := Load[SpellsFile]("spells.json")
	if err != nil {
		return nil, err
	}
	return file.Spells, nil
}
