package game

import (
	"context"
	"testing"

	"github.com/abromley/towerrak/internal/entity"
	"github.com/abromley/towerrak/internal/gamedata"
	"github.com/abromley/towerrak/internal/magic"
	"github.com/abromley/towerrak/internal/world"
)

// newTargetGame wires a game around an open hand-built board, enough to
// exercise aiming and scroll use.
func newTargetGame(t *testing.T) *Game {
	t.Helper()
	l, player := newTestLevel(20, 11)
	g := &Game{
		items:    gamedata.MustLoadItemRegistry(),
		spells:   gamedata.MustLoadSpellRegistry(),
		rng:      l.Rand(),
		floors:   map[int]*Level{1: l},
		messages: l.log,
		state:    StatePlaying,
		running:  true,
	}
	g.player = player
	g.level = l
	return g
}

func TestTargetLineStopsBeforeWall(t *testing.T) {
	g := newTargetGame(t)
	g.level.Dungeon.Tiles[5][6].Kind = world.TileWall
	g.targeting = &Targeting{
		spec:   magic.TargetSpec{StopAtWall: true, MaxRange: 8},
		cursor: world.Point{X: 9, Y: 5},
	}

	line := g.TargetLine()
	last := line[len(line)-1]
	if (last != world.Point{X: 5, Y: 5}) {
		t.Errorf("expected the path to stop short of the wall at (5,5), got %v", last)
	}
}

func TestTargetLineStopsAtCreature(t *testing.T) {
	g := newTargetGame(t)
	victim := &entity.Actor{X: 5, Y: 5, Name: "Dungo", Creature: &entity.Creature{HP: 8, MaxHP: 8}}
	g.level.AddActor(victim)
	g.targeting = &Targeting{
		spec:   magic.TargetSpec{StopAtCreature: true},
		cursor: world.Point{X: 9, Y: 5},
	}

	line := g.TargetLine()
	last := line[len(line)-1]
	if (last != world.Point{X: 5, Y: 5}) {
		t.Errorf("expected the path to end on the creature at (5,5), got %v", last)
	}
	if len(line) != 4 {
		t.Errorf("expected 4 tiles from caster to creature, got %d", len(line))
	}
}

func TestMoveCursorClamps(t *testing.T) {
	g := newTargetGame(t)

	g.targeting = &Targeting{spec: magic.TargetSpec{MaxRange: 3}, cursor: g.player.Pos()}
	for i := 0; i < 10; i++ {
		g.moveCursor(1, 0)
	}
	if (g.targeting.cursor != world.Point{X: 5, Y: 5}) {
		t.Errorf("expected the mark held at range 3, got %v", g.targeting.cursor)
	}

	g.targeting = &Targeting{cursor: g.player.Pos()}
	for i := 0; i < 10; i++ {
		g.moveCursor(0, -1)
	}
	if g.targeting.cursor.Y != 0 {
		t.Errorf("expected the mark clamped to the map edge, got y=%d", g.targeting.cursor.Y)
	}
}

func TestHealRefusalKeepsScroll(t *testing.T) {
	g := newTargetGame(t)
	ctx := context.Background()
	scroll := newItem(g.items.GetByID("scroll_mending"), 0, 0)
	g.player.Container.Add(scroll)

	g.useItem(ctx, scroll)
	if len(g.carried()) != 1 {
		t.Error("refused mending should keep the scroll")
	}
	if g.turn != 0 {
		t.Error("refused mending should not spend the turn")
	}
	if !logContains(g.messages, "already at full health") {
		t.Error("expected the refusal message")
	}

	g.player.Creature.HP -= 10
	g.useItem(ctx, scroll)
	if g.player.Creature.HP != 26 {
		t.Errorf("expected mending to restore 6 HP to 26, got %d", g.player.Creature.HP)
	}
	if len(g.carried()) != 0 {
		t.Error("a spent scroll should vanish")
	}
	if g.turn != 1 {
		t.Errorf("a successful cast should spend the turn, got turn %d", g.turn)
	}
}

func TestLightningScrollFlow(t *testing.T) {
	g := newTargetGame(t)
	ctx := context.Background()
	scroll := newItem(g.items.GetByID("scroll_lightning"), 0, 0)
	g.player.Container.Add(scroll)

	g.useItem(ctx, scroll)
	if g.state != StateTargeting {
		t.Fatal("lightning should open aim mode")
	}
	if g.targeting == nil || g.targeting.item != scroll {
		t.Fatal("the aiming session should carry the scroll")
	}
	if len(g.carried()) != 1 {
		t.Error("nothing is spent while still aiming")
	}

	victim := &entity.Actor{X: 5, Y: 5, Name: "Dungo", Creature: &entity.Creature{HP: 20, MaxHP: 20}}
	g.level.AddActor(victim)
	g.targeting.cursor = world.Point{X: 5, Y: 5}
	g.confirmTarget(ctx)

	if g.state != StatePlaying {
		t.Fatalf("casting should return to play, got %v", g.state)
	}
	if victim.Creature.HP != 15 {
		t.Errorf("expected the bolt to deal 5, got HP %d", victim.Creature.HP)
	}
	if len(g.carried()) != 0 {
		t.Error("the cast should consume the scroll")
	}
	if g.turn != 1 {
		t.Errorf("the cast should spend the turn, got %d", g.turn)
	}
}

func TestLightningSelfTargetRefused(t *testing.T) {
	g := newTargetGame(t)
	ctx := context.Background()
	scroll := newItem(g.items.GetByID("scroll_lightning"), 0, 0)
	g.player.Container.Add(scroll)

	g.useItem(ctx, scroll)
	// The mark starts on the caster; casting right away is refused.
	g.confirmTarget(ctx)

	if len(g.carried()) != 1 {
		t.Error("a refused bolt should keep the scroll")
	}
	if g.turn != 0 {
		t.Error("a refused bolt should not spend the turn")
	}
	if !logContains(g.messages, "Aim away from yourself") {
		t.Error("expected the self-target warning")
	}
}

func TestCancelTargetingSpendsNothing(t *testing.T) {
	g := newTargetGame(t)
	ctx := context.Background()
	scroll := newItem(g.items.GetByID("scroll_confusion"), 0, 0)
	g.player.Container.Add(scroll)

	g.useItem(ctx, scroll)
	if g.state != StateTargeting {
		t.Fatal("confusion should open aim mode")
	}
	g.cancelTargeting()

	if g.state != StatePlaying {
		t.Errorf("cancel should return to play, got %v", g.state)
	}
	if g.targeting != nil {
		t.Error("cancel should clear the aiming session")
	}
	if len(g.carried()) != 1 || g.turn != 0 {
		t.Error("cancel must spend neither the scroll nor the turn")
	}
}

func TestEquipmentUseTakesTurn(t *testing.T) {
	g := newTargetGame(t)
	ctx := context.Background()
	sword := newItem(g.items.GetByID("sword_bronze"), 0, 0)
	g.player.Container.Add(sword)

	g.useItem(ctx, sword)
	if !sword.Equipment.Equipped {
		t.Error("using a sword should equip it")
	}
	if g.player.AttackPower() != 5 {
		t.Errorf("expected attack 5 with the sword, got %d", g.player.AttackPower())
	}
	if g.turn != 1 {
		t.Errorf("equipping should spend the turn, got %d", g.turn)
	}
}

func TestFireballOverlayCoversBlast(t *testing.T) {
	g := newTargetGame(t)
	scroll := newItem(g.items.GetByID("scroll_fireball"), 0, 0)
	g.player.Container.Add(scroll)

	g.useItem(context.Background(), scroll)
	if g.state != StateTargeting {
		t.Fatal("fireball should open aim mode")
	}
	g.targeting.cursor = world.Point{X: 6, Y: 5}

	overlay := g.targetOverlay()
	if overlay == nil {
		t.Fatal("expected an overlay while aiming")
	}
	if len(overlay.Blast) == 0 {
		t.Fatal("a fireball overlay should show the blast area")
	}
	blast := make(map[world.Point]bool, len(overlay.Blast))
	for _, p := range overlay.Blast {
		blast[p] = true
	}
	for _, p := range []world.Point{{X: 6, Y: 5}, {X: 8, Y: 5}, {X: 6, Y: 3}} {
		if !blast[p] {
			t.Errorf("expected %v inside the blast", p)
		}
	}
	if blast[world.Point{X: 9, Y: 5}] {
		t.Error("tiles past the radius do not belong in the blast")
	}
}
