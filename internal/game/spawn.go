package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/abromley/towerrak/internal/entity"
	"github.com/abromley/towerrak/internal/gamedata"
	"github.com/abromley/towerrak/internal/logger"
)

const (
	maxMonstersPerRoom = 3
	maxItemsPerRoom    = 2

	// packCapacity is how many items the player can carry.
	packCapacity = 10
)

// newCreature builds an actor from a creature definition.
func newCreature(def *gamedata.CreatureDef, x, y int) *entity.Actor {
	a := &entity.Actor{
		X: x, Y: y,
		Name:   def.Name,
		Glyph:  def.GlyphRune(),
		Color:  def.TCellColor(),
		Sprite: def.Sprite,
		Creature: &entity.Creature{
			HP: def.HP, MaxHP: def.HP,
			Attack:  def.Attack,
			Defense: def.Defense,
			Hostile: def.Hostile,
		},
	}
	switch def.Behavior {
	case "chase":
		a.AI = &entity.Chase{AggroRadius: def.AggroRadius}
	case "wander":
		a.AI = entity.Wander{}
	}
	return a
}

// newItem builds an actor from an item definition.
func newItem(def *gamedata.ItemDef, x, y int) *entity.Actor {
	a := &entity.Actor{
		X: x, Y: y,
		Name:   def.Name,
		Glyph:  def.GlyphRune(),
		Color:  def.TCellColor(),
		Sprite: def.Sprite,
		Item: &entity.Item{
			Weight:     def.Weight,
			Value:      def.Value,
			SpellID:    def.SpellID,
			Consumable: def.IsConsumable(),
			Gold:       def.Category == gamedata.CategoryGold,
			Relic:      def.Category == gamedata.CategoryRelic,
		},
	}
	if def.Slot != "" {
		a.Equipment = &entity.Equipment{
			Slot:         entity.Slot(def.Slot),
			AttackBonus:  def.AttackBonus,
			DefenseBonus: def.DefenseBonus,
		}
	}
	return a
}

// newPlayer builds the player from a creature definition, adding the pack
// every run starts with.
func newPlayer(def *gamedata.CreatureDef, x, y int) *entity.Actor {
	p := newCreature(def, x, y)
	p.Container = &entity.Container{Capacity: packCapacity}
	return p
}

// populateLevel stocks a fresh floor with monsters and loot, rolling per
// room. Room zero stays clear: the player arrives there.
func populateLevel(l *Level, creatures *gamedata.CreatureRegistry, items *gamedata.ItemRegistry) {
	rng := l.Rand()
	for i := range l.Dungeon.Rooms {
		if i == 0 {
			continue
		}
		for n := rng.Intn(maxMonstersPerRoom + 1); n > 0; n-- {
			x, y := l.Dungeon.RandomPointInRoom(i)
			if l.CreatureAt(x, y) != nil {
				continue
			}
			if def := creatures.SpawnRandom(rng, l.Depth); def != nil {
				l.AddActor(newCreature(def, x, y))
			}
		}
		for n := rng.Intn(maxItemsPerRoom + 1); n > 0; n-- {
			x, y := l.Dungeon.RandomPointInRoom(i)
			if def := items.SpawnRandom(rng, l.Depth); def != nil {
				l.AddActor(newItem(def, x, y))
			}
		}
	}
	logger.Log.WithField("depth", l.Depth).
		WithField("actors", len(l.Actors)).
		Debug("Floor populated")
}

// placeFixtures adds the stairs, and on the top floor the portal out plus
// the relic that opens it.
func placeFixtures(l *Level, height int, items *gamedata.ItemRegistry) {
	// The way back, except on the ground floor.
	if l.Depth > 1 {
		l.AddActor(&entity.Actor{
			X: l.Dungeon.Entrance.X, Y: l.Dungeon.Entrance.Y,
			Name:   "stairs down",
			Glyph:  '>',
			Color:  tcell.ColorWhite,
			Sprite: gamedata.SpriteStairsDown,
			Stairs: &entity.Stairs{},
		})
	}

	if l.Depth < height {
		l.AddActor(&entity.Actor{
			X: l.Dungeon.Exit.X, Y: l.Dungeon.Exit.Y,
			Name:   "stairs up",
			Glyph:  '<',
			Color:  tcell.ColorWhite,
			Sprite: gamedata.SpriteStairsUp,
			Stairs: &entity.Stairs{Up: true},
		})
		return
	}

	// The top floor holds the way out instead of more stairs.
	l.AddActor(&entity.Actor{
		X: l.Dungeon.Exit.X, Y: l.Dungeon.Exit.Y,
		Name:   "portal",
		Glyph:  'O',
		Color:  tcell.ColorPurple,
		Sprite: gamedata.SpritePortalClosed,
		Portal: &entity.Portal{},
	})

	def := items.GetByID("magic_rock")
	if def == nil {
		logger.Log.Warn("Relic missing from item data, the portal can never open")
		return
	}
	last := len(l.Dungeon.Rooms) - 1
	x, y := l.Dungeon.RandomPointInRoom(last)
	l.AddActor(newItem(def, x, y))
}
