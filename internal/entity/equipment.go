package entity

// Slot names where a piece of equipment is worn.
type Slot string

const (
	SlotWeapon Slot = "weapon"
	SlotShield Slot = "shield"
)

// Equipment lets an item be worn for stat bonuses. An equipped item stays
// in its owner's container.
type Equipment struct {
	Slot         Slot
	AttackBonus  int
	DefenseBonus int
	Equipped     bool
}
