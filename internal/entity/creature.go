package entity

// Creature gives an actor hit points, combat stats, and a place in the
// turn order.
type Creature struct {
	HP, MaxHP int
	Attack    int
	Defense   int

	// Hostile creatures fight the player; the line runs both ways.
	Hostile bool
	Dead    bool
}

// TakeDamage reduces HP, clamping at zero, and reports whether the blow
// was fatal. Damage to the already dead does nothing.
func (c *Creature) TakeDamage(amount int) bool {
	if amount <= 0 || c.Dead {
		return false
	}
	c.HP -= amount
	if c.HP <= 0 {
		c.HP = 0
		c.Dead = true
		return true
	}
	return false
}

// Heal restores HP up to the maximum and returns the amount actually
// restored. The dead cannot be healed.
func (c *Creature) Heal(amount int) int {
	if amount <= 0 || c.Dead {
		return 0
	}
	actual := amount
	if c.HP+actual > c.MaxHP {
		actual = c.MaxHP - c.HP
	}
	c.HP += actual
	return actual
}

// AtFullHealth reports whether healing would accomplish anything.
func (c *Creature) AtFullHealth() bool {
	return c.HP >= c.MaxHP
}
