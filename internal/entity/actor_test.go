package entity

import "testing"

func newTestFighter() *Actor {
	return &Actor{
		Name:      "Fighter",
		Creature:  &Creature{HP: 20, MaxHP: 20, Attack: 5, Defense: 2},
		Container: &Container{Capacity: 10},
	}
}

func newTestSword(bonus int) *Actor {
	return &Actor{
		Name:      "Sword",
		Item:      &Item{Weight: 3},
		Equipment: &Equipment{Slot: SlotWeapon, AttackBonus: bonus},
	}
}

func TestAttackPowerIncludesEquipment(t *testing.T) {
	fighter := newTestFighter()
	sword := newTestSword(4)
	fighter.Container.Add(sword)

	if got := fighter.AttackPower(); got != 5 {
		t.Errorf("Unequipped sword should not count: attack = %d, want 5", got)
	}

	sword.Equipment.Equipped = true
	if got := fighter.AttackPower(); got != 9 {
		t.Errorf("Equipped sword should count: attack = %d, want 9", got)
	}
}

func TestDefensePowerIncludesEquipment(t *testing.T) {
	fighter := newTestFighter()
	shield := &Actor{
		Name:      "Shield",
		Item:      &Item{Weight: 5},
		Equipment: &Equipment{Slot: SlotShield, DefenseBonus: 3, Equipped: true},
	}
	fighter.Container.Add(shield)

	if got := fighter.DefensePower(); got != 5 {
		t.Errorf("Defense = %d, want 5", got)
	}
}

func TestEquippedInSlot(t *testing.T) {
	fighter := newTestFighter()
	sword := newTestSword(2)
	sword.Equipment.Equipped = true
	fighter.Container.Add(sword)

	if got := fighter.EquippedInSlot(SlotWeapon); got != sword {
		t.Errorf("EquippedInSlot(weapon) = %v, want the sword", got)
	}
	if got := fighter.EquippedInSlot(SlotShield); got != nil {
		t.Errorf("EquippedInSlot(shield) = %v, want nil", got)
	}
}

func TestBlocksOnlyWhileAlive(t *testing.T) {
	fighter := newTestFighter()
	if !fighter.Blocks() {
		t.Error("A living creature should block")
	}

	fighter.Creature.TakeDamage(100)
	if fighter.Blocks() {
		t.Error("A dead creature should not block")
	}

	loot := newTestSword(1)
	if loot.Blocks() {
		t.Error("An item on the floor should not block")
	}
}

func TestHasRelic(t *testing.T) {
	fighter := newTestFighter()
	if fighter.HasRelic() {
		t.Error("Empty-handed fighter should not have the relic")
	}

	relic := &Actor{Name: "Magic rock", Item: &Item{Relic: true}}
	fighter.Container.Add(relic)
	if !fighter.HasRelic() {
		t.Error("Fighter carrying the relic should report it")
	}
}

func TestContainerCapacityAndRemoval(t *testing.T) {
	c := &Container{Capacity: 2}
	first := newTestSword(1)
	second := newTestSword(2)
	third := newTestSword(3)

	if !c.Add(first) || !c.Add(second) {
		t.Fatal("Adding within capacity should succeed")
	}
	if c.Add(third) {
		t.Error("Adding past capacity should fail")
	}
	if got := c.Last(); got != second {
		t.Errorf("Last() = %v, want the newest item", got)
	}

	if !c.Remove(first) {
		t.Error("Removing a held item should succeed")
	}
	if c.Remove(first) {
		t.Error("Removing twice should fail")
	}
	if len(c.Items) != 1 {
		t.Errorf("Container holds %d items, want 1", len(c.Items))
	}
}
