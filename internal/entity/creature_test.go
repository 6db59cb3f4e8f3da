package entity

import "testing"

func TestCreatureTakeDamage(t *testing.T) {
	c := &Creature{HP: 10, MaxHP: 10}

	if died := c.TakeDamage(4); died {
		t.Error("4 damage against 10 HP should not be fatal")
	}
	if c.HP != 6 {
		t.Errorf("HP = %d, want 6", c.HP)
	}

	if died := c.TakeDamage(100); !died {
		t.Error("Overkill damage should report death")
	}
	if c.HP != 0 {
		t.Errorf("HP should clamp at 0, got %d", c.HP)
	}
	if !c.Dead {
		t.Error("Creature should be dead")
	}

	// The dead stay at zero
	if died := c.TakeDamage(5); died {
		t.Error("Damage to the dead should report nothing")
	}
	if c.HP != 0 {
		t.Errorf("Dead creature HP changed to %d", c.HP)
	}
}

func TestCreatureIgnoresNonPositiveDamage(t *testing.T) {
	c := &Creature{HP: 10, MaxHP: 10}
	c.TakeDamage(0)
	c.TakeDamage(-3)
	if c.HP != 10 {
		t.Errorf("Non-positive damage changed HP to %d", c.HP)
	}
}

func TestCreatureHeal(t *testing.T) {
	c := &Creature{HP: 3, MaxHP: 10}

	if healed := c.Heal(4); healed != 4 {
		t.Errorf("Heal(4) restored %d, want 4", healed)
	}
	if c.HP != 7 {
		t.Errorf("HP = %d, want 7", c.HP)
	}

	// Clamp at max
	if healed := c.Heal(100); healed != 3 {
		t.Errorf("Overheal restored %d, want 3", healed)
	}
	if c.HP != c.MaxHP {
		t.Errorf("HP = %d, want MaxHP %d", c.HP, c.MaxHP)
	}
	if !c.AtFullHealth() {
		t.Error("Creature at MaxHP should report full health")
	}
}

func TestCreatureHealDeadDoesNothing(t *testing.T) {
	c := &Creature{HP: 0, MaxHP: 10, Dead: true}
	if healed := c.Heal(5); healed != 0 {
		t.Errorf("Healing the dead restored %d, want 0", healed)
	}
	if c.HP != 0 {
		t.Errorf("Dead creature HP = %d, want 0", c.HP)
	}
}
