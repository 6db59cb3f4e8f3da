package game

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/abromley/towerrak/internal/entity"
	"github.com/abromley/towerrak/internal/magic"
	"github.com/abromley/towerrak/internal/world"
)

// Level is one floor of the tower: its dungeon plus everything standing
// on it. It is the board that creature behaviours and spells act against.
type Level struct {
	Depth   int
	Dungeon *world.Dungeon
	Actors  []*entity.Actor

	player *entity.Actor
	rng    *rand.Rand
	log    *MessageLog
}

var (
	_ entity.Board = (*Level)(nil)
	_ magic.Board  = (*Level)(nil)
)

// NewLevel wraps a generated dungeon into a board. The player is shared
// across floors; membership in Actors controls presence.
func NewLevel(depth int, dungeon *world.Dungeon, player *entity.Actor, rng *rand.Rand, log *MessageLog) *Level {
	return &Level{Depth: depth, Dungeon: dungeon, player: player, rng: rng, log: log}
}

// Player returns the player's actor.
func (l *Level) Player() *entity.Actor { return l.player }

// Rand returns the level's random source.
func (l *Level) Rand() *rand.Rand { return l.rng }

// Post adds a plain line to the message log.
func (l *Level) Post(text string) { l.log.Post("%s", text) }

// Announce adds a colored line to the message log.
func (l *Level) Announce(text string, color tcell.Color) {
	l.log.PostColored(color, "%s", text)
}

// AddActor puts an actor on the board.
func (l *Level) AddActor(a *entity.Actor) { l.Actors = append(l.Actors, a) }

// RemoveActor takes an actor off the board.
func (l *Level) RemoveActor(a *entity.Actor) {
	for i, it := range l.Actors {
		if it == a {
			l.Actors = append(l.Actors[:i], l.Actors[i+1:]...)
			return
		}
	}
}

// IsBlocked reports whether a tile refuses movement: out of bounds, a
// wall, or a living creature standing on it.
func (l *Level) IsBlocked(x, y int) bool {
	if !l.Dungeon.IsPassable(x, y) {
		return true
	}
	for _, a := range l.Actors {
		if a.X == x && a.Y == y && a.Blocks() {
			return true
		}
	}
	return false
}

// HasLineOfSight reports whether two tiles can see each other.
func (l *Level) HasLineOfSight(a, b world.Point) bool {
	return l.Dungeon.HasLineOfSight(a, b)
}

// TilesInLine returns the tiles from a to b inclusive, clipped to the map.
func (l *Level) TilesInLine(a, b world.Point) []world.Point {
	return l.Dungeon.TilesInLine(a, b)
}

// TilesInRadius returns the map tiles within radius of center.
func (l *Level) TilesInRadius(center world.Point, radius int) []world.Point {
	return l.Dungeon.TilesInRadius(center, radius)
}

// CreatureAt returns the living creature on a tile, nil when empty.
func (l *Level) CreatureAt(x, y int) *entity.Actor {
	for _, a := range l.Actors {
		if a.X == x && a.Y == y && a.IsAlive() {
			return a
		}
	}
	return nil
}

// ActorsAt returns everything standing or lying on a tile, oldest first.
func (l *Level) ActorsAt(x, y int) []*entity.Actor {
	var out []*entity.Actor
	for _, a := range l.Actors {
		if a.X == x && a.Y == y {
			out = append(out, a)
		}
	}
	return out
}

// ItemsAt returns the carriable things lying on a tile, oldest first.
// Remains count: they carry an item component once converted.
func (l *Level) ItemsAt(x, y int) []*entity.Actor {
	var items []*entity.Actor
	for _, a := range l.ActorsAt(x, y) {
		if a.Item != nil && !a.IsAlive() {
			items = append(items, a)
		}
	}
	return items
}

// FixtureAt returns the stairs or portal on a tile, nil when bare.
func (l *Level) FixtureAt(x, y int) *entity.Actor {
	for _, a := range l.Actors {
		if a.X == x && a.Y == y && (a.Stairs != nil || a.Portal != nil) {
			return a
		}
	}
	return nil
}

// MoveOrAttack steps an actor one tile, attacking instead when the player
// and a hostile creature collide. Monsters never fight each other.
func (l *Level) MoveOrAttack(self *entity.Actor, dx, dy int) {
	if dx == 0 && dy == 0 {
		return
	}
	nx, ny := self.X+dx, self.Y+dy
	if !l.Dungeon.InBounds(nx, ny) {
		return
	}

	if victim := l.CreatureAt(nx, ny); victim != nil && victim != self {
		if self == l.player || victim == l.player {
			l.attack(self, victim)
		}
		return
	}

	if l.Dungeon.IsPassable(nx, ny) {
		self.MoveTo(world.Point{X: nx, Y: ny})
	}
}

// attack resolves one melee swing: attack minus defense, floored at zero.
func (l *Level) attack(attacker, victim *entity.Actor) {
	damage := attacker.AttackPower() - victim.DefensePower()
	if damage <= 0 {
		l.log.Post("%s attacks %s but does no damage.", attacker.Name, victim.Name)
		return
	}
	l.log.Post("%s attacks %s for %d damage!", attacker.Name, victim.Name, damage)
	l.Damage(victim, damage)
}

// Damage applies harm to a creature, reporting the surviving health.
// Fatal blows stay quiet here; the turn loop finds the body and speaks.
func (l *Level) Damage(target *entity.Actor, amount int) {
	if target.Creature == nil || target.Creature.Dead {
		return
	}
	if !target.Creature.TakeDamage(amount) {
		l.log.PostColored(tcell.ColorRed, "%s's health is %d/%d",
			target.Name, target.Creature.HP, target.Creature.MaxHP)
	}
}

// PickUp moves the newest item on the player's tile into the pack. Gold
// skips the pack and goes straight to the purse. Returns whether a turn
// was spent.
func (l *Level) PickUp() bool {
	p := l.player
	items := l.ItemsAt(p.X, p.Y)
	if len(items) == 0 {
		l.log.Post("There is nothing here to pick up.")
		return false
	}
	it := items[len(items)-1]
	if it.Item.Gold {
		p.Container.Gold += it.Item.Value
		l.RemoveActor(it)
		l.log.PostColored(tcell.ColorYellow, "%s picked up %d gold.", p.Name, it.Item.Value)
		return true
	}
	if !p.Container.Add(it) {
		l.log.Post("%s's pack is full.", p.Name)
		return false
	}
	l.RemoveActor(it)
	l.log.Post("%s picked up %s.", p.Name, it.Name)
	return true
}

// Drop puts a carried item back on the floor under the player,
// unequipping it as it falls.
func (l *Level) Drop(it *entity.Actor) bool {
	p := l.player
	if !p.Container.Remove(it) {
		return false
	}
	if it.Equipment != nil {
		it.Equipment.Equipped = false
	}
	it.MoveTo(p.Pos())
	l.AddActor(it)
	l.log.Post("%s dropped %s.", p.Name, it.Name)
	return true
}

// DropLast drops the most recently acquired item.
func (l *Level) DropLast() bool {
	it := l.player.Container.Last()
	if it == nil {
		l.log.Post("There is nothing to drop.")
		return false
	}
	return l.Drop(it)
}

// ToggleEquip wears or removes a piece of equipment. Equipping displaces
// whatever already occupies the slot.
func (l *Level) ToggleEquip(it *entity.Actor) {
	p := l.player
	if it.Equipment == nil {
		return
	}
	if it.Equipment.Equipped {
		it.Equipment.Equipped = false
		l.log.Post("%s removed %s.", p.Name, it.Name)
		return
	}
	if prev := p.EquippedInSlot(it.Equipment.Slot); prev != nil {
		prev.Equipment.Equipped = false
		l.log.Post("%s removed %s.", p.Name, prev.Name)
	}
	it.Equipment.Equipped = true
	l.log.Post("%s equipped %s.", p.Name, it.Name)
}
