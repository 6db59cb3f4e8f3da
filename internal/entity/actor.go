// Package entity defines the actors that inhabit the tower and their
// optional components.
package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/abromley/towerrak/internal/gamedata"
	"github.com/abromley/towerrak/internal/world"
)

// Actor is anything that occupies a map tile: the player, creatures, loot
// on the floor, stairs, the exit portal. Capabilities come from whichever
// component pointers are set; nil means the actor lacks that aspect.
type Actor struct {
	X, Y int
	Name string

	// Display. Glyph and Color draw the actor in glyph mode; Sprite names
	// its sheet cells for the pixel renderer.
	Glyph  rune
	Color  tcell.Color
	Sprite gamedata.SpriteRef

	Creature  *Creature
	AI        Behavior
	Item      *Item
	Container *Container
	Equipment *Equipment
	Stairs    *Stairs
	Portal    *Portal
}

// Pos returns the actor's tile coordinate.
func (a *Actor) Pos() world.Point {
	return world.Point{X: a.X, Y: a.Y}
}

// MoveTo places the actor on a tile.
func (a *Actor) MoveTo(p world.Point) {
	a.X = p.X
	a.Y = p.Y
}

// IsAlive reports whether the actor is a living creature.
func (a *Actor) IsAlive() bool {
	return a.Creature != nil && !a.Creature.Dead
}

// Blocks reports whether the actor stops others from entering its tile.
// Only living creatures block; loot, remains, and fixtures are walked over.
func (a *Actor) Blocks() bool {
	return a.IsAlive()
}

// AttackPower returns the creature's attack including equipped bonuses.
func (a *Actor) AttackPower() int {
	if a.Creature == nil {
		return 0
	}
	total := a.Creature.Attack
	for _, it := range a.equippedItems() {
		total += it.Equipment.AttackBonus
	}
	return total
}

// DefensePower returns the creature's defense including equipped bonuses.
func (a *Actor) DefensePower() int {
	if a.Creature == nil {
		return 0
	}
	total := a.Creature.Defense
	for _, it := range a.equippedItems() {
		total += it.Equipment.DefenseBonus
	}
	return total
}

// EquippedInSlot returns the carried item equipped in the given slot, or
// nil when the slot is free.
func (a *Actor) EquippedInSlot(slot Slot) *Actor {
	for _, it := range a.equippedItems() {
		if it.Equipment.Slot == slot {
			return it
		}
	}
	return nil
}

// HasRelic reports whether the actor carries the portal key.
func (a *Actor) HasRelic() bool {
	if a.Container == nil {
		return false
	}
	for _, it := range a.Container.Items {
		if it.Item != nil && it.Item.Relic {
			return true
		}
	}
	return false
}

func (a *Actor) equippedItems() []*Actor {
	if a.Container == nil {
		return nil
	}
	var equipped []*Actor
	for _, it := range a.Container.Items {
		if it.Equipment != nil && it.Equipment.Equipped {
			equipped = append(equipped, it)
		}
	}
	return equipped
}
