package gamedata

import (
	"errors"
	"math/rand"
)

// CreatureRegistry holds loaded creature definitions and provides spawning utilities.
type CreatureRegistry struct {
	creatures []CreatureDef
}

// NewCreatureRegistry creates a registry from loaded creature definitions.
func NewCreatureRegistry(creatures []CreatureDef) *CreatureRegistry {
	return &CreatureRegistry{creatures: creatures}
}

// LoadCreatureRegistry loads and creates a registry from the embedded creatures.json.
func LoadCreatureRegistry() (*CreatureRegistry, error) {
	creatures, err := LoadCreatures()
	if err != nil {
		return nil, err
	}
	if len(creatures) == 0 {
		return nil, errors.New("no creatures loaded from creatures.json")
	}
	return NewCreatureRegistry(creatures), nil
}

// MustLoadCreatureRegistry loads a registry, panicking on error.
func MustLoadCreatureRegistry() *CreatureRegistry {
	registry, err := LoadCreatureRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom selects a random creature definition using weighted probability.
// Only creatures with a positive spawnWeight whose minDepth admits the given
// floor are considered. Returns nil when nothing is eligible.
func (r *CreatureRegistry) SpawnRandom(rng *rand.Rand, depth int) *CreatureDef {
	totalWeight := 0
	for i := range r.creatures {
		if r.creatures[i].SpawnWeight > 0 && r.creatures[i].MinDepth <= depth {
			totalWeight += r.creatures[i].SpawnWeight
		}
	}
	if totalWeight <= 0 {
		return nil
	}

	// Pick a random value in the total weight range
	roll := rng.Intn(totalWeight)

	// Find which creature this roll corresponds to
	cumulative := 0
	for i := range r.creatures {
		if r.creatures[i].SpawnWeight <= 0 || r.creatures[i].MinDepth > depth {
			continue
		}
		cumulative += r.creatures[i].SpawnWeight
		if roll < cumulative {
			return &r.creatures[i]
		}
	}

	// Fallback (shouldn't happen)
	return nil
}

// GetByID returns the creature definition with the given ID, or nil if not found.
func (r *CreatureRegistry) GetByID(id string) *CreatureDef {
	for i := range r.creatures {
		if r.creatures[i].ID == id {
			return &r.creatures[i]
		}
	}
	return nil
}

// All returns all creature definitions.
func (r *CreatureRegistry) All() []CreatureDef {
	return r.creatures
}

// Count returns the number of creature types in the registry.
func (r *CreatureRegistry) Count() int {
	return len(r.creatures)
}

// =============================================================================
// ItemRegistry
// =============================================================================

// ItemRegistry holds loaded item definitions and provides spawning utilities.
type ItemRegistry struct {
	items []ItemDef
}

// NewItemRegistry creates a registry from loaded item definitions.
func NewItemRegistry(items []ItemDef) *ItemRegistry {
	return &ItemRegistry{items: items}
}

// LoadItemRegistry loads and creates a registry from the embedded items.json.
func LoadItemRegistry() (*ItemRegistry, error) {
	items, err := LoadItems()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.New("no items loaded from items.json")
	}
	return NewItemRegistry(items), nil
}

// MustLoadItemRegistry loads a registry, panicking on error.
func MustLoadItemRegistry() *ItemRegistry {
	registry, err := LoadItemRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom selects a random item definition using weighted probability.
// Only items with a positive spawnWeight whose minDepth admits the given
// floor are considered. Returns nil when nothing is eligible.
func (r *ItemRegistry) SpawnRandom(rng *rand.Rand, depth int) *ItemDef {
	totalWeight := 0
	for i := range r.items {
		if r.items[i].SpawnWeight > 0 && r.items[i].MinDepth <= depth {
			totalWeight += r.items[i].SpawnWeight
		}
	}
	if totalWeight <= 0 {
		return nil
	}

	roll := rng.Intn(totalWeight)

	cumulative := 0
	for i := range r.items {
		if r.items[i].SpawnWeight <= 0 || r.items[i].MinDepth > depth {
			continue
		}
		cumulative += r.items[i].SpawnWeight
		if roll < cumulative {
			return &r.items[i]
		}
	}

	// Fallback (shouldn't happen)
	return nil
}

// GetByID returns the item definition with the given ID, or nil if not found.
func (r *ItemRegistry) GetByID(id string) *ItemDef {
	for i := range r.items {
		if r.items[i].ID == id {
			return &r.items[i]
		}
	}
	return nil
}

// All returns all item definitions.
func (r *ItemRegistry) All() []ItemDef {
	return r.items
}

// Count returns the number of item types in the registry.
func (r *ItemRegistry) Count() int {
	return len(r.items)
}

// =============================================================================
// SpellRegistry
// =============================================================================

// SpellRegistry holds loaded spell definitions and provides lookup utilities.
type SpellRegistry struct {
	spells map[string]*SpellDef
	all    []SpellDef
}

// NewSpellRegistry creates a registry from loaded spell definitions.
func NewSpellRegistry(spells []SpellDef) *SpellRegistry {
	registry := &SpellRegistry{
		spells: make(map[string]*SpellDef),
		all:    spells,
	}
	for i := range spells {
		registry.spells[spells[i].ID] = &spells[i]
	}
	return registry
}

// LoadSpellRegistry loads and creates a registry from the embedded spells.json.
func LoadSpellRegistry() (*SpellRegistry, error) {
	spells, err := LoadSpells()
	if err != nil {
		return nil, err
	}
	if len(spells) == 0 {
		return nil, errors.New("no spells loaded from spells.json")
	}
	return NewSpellRegistry(spells), nil
}

// MustLoadSpellRegistry loads a registry, panicking on error.
func MustLoadSpellRegistry() *SpellRegistry {
	registry, err := LoadSpellRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the spell definition with the given ID, or nil if not found.
func (r *SpellRegistry) GetByID(id string) *SpellDef {
	return r.spells[id]
}

// All returns all spell definitions.
func (r *SpellRegistry) All() []SpellDef {
	return r.all
}

// Count returns the number of spells in the registry.
func (r *SpellRegistry) Count() int {
	return len(r.all)
}
