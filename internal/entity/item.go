package entity

// Item makes an actor carriable. Scrolls and potions bind a spell that
// fires when the item is used; equipment and valuables leave SpellID
// empty.
type Item struct {
	Weight float64
	Value  int

	// SpellID names the spell cast when the item is used, empty for none.
	SpellID string
	// Consumable items vanish after a successful use.
	Consumable bool
	// Gold goes straight into the purse on pickup instead of taking a slot.
	Gold bool
	// Relic marks the stone that opens the exit portal.
	Relic bool
}
