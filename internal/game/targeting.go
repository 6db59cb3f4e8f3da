package game

import (
	"context"

	"github.com/abromley/towerrak/internal/entity"
	"github.com/abromley/towerrak/internal/gamedata"
	"github.com/abromley/towerrak/internal/magic"
	"github.com/abromley/towerrak/internal/ui"
	"github.com/abromley/towerrak/internal/world"
)

// Targeting is the live aiming session while a scroll waits for a tile.
type Targeting struct {
	item   *entity.Actor
	spell  *gamedata.SpellDef
	spec   magic.TargetSpec
	cursor world.Point
}

// beginTargeting opens aim mode for a scroll. The mark starts on the
// caster and nothing is spent until the cast lands.
func (g *Game) beginTargeting(item *entity.Actor, spell *gamedata.SpellDef, spec magic.TargetSpec) {
	g.targeting = &Targeting{item: item, spell: spell, spec: spec, cursor: g.player.Pos()}
	g.state = StateTargeting
	g.messages.PostColored(spec.Color, "Aim %s: move the mark, Enter casts, Esc stops.", spell.Name)
}

// moveCursor nudges the aim point, clamped to the map and the spell's
// reach.
func (g *Game) moveCursor(dx, dy int) {
	t := g.targeting
	if t == nil {
		return
	}
	next := world.Point{X: t.cursor.X + dx, Y: t.cursor.Y + dy}
	if !g.level.Dungeon.InBounds(next.X, next.Y) {
		return
	}
	if t.spec.MaxRange > 0 && g.player.Pos().ChebyshevTo(next) > t.spec.MaxRange {
		return
	}
	t.cursor = next
}

// TargetLine is the spell's path from the caster toward the cursor,
// clipped by the aiming rules: a wall cuts the path before itself, a
// creature cuts it after, so the spell can land on the creature but
// never inside a wall.
func (g *Game) TargetLine() []world.Point {
	t := g.targeting
	line := g.level.TilesInLine(g.player.Pos(), t.cursor)
	if t.spec.StopAtWall {
		line = g.level.Dungeon.ClipLine(g.player.Pos(), t.cursor)
	}
	if !t.spec.StopAtCreature {
		return line
	}
	out := make([]world.Point, 0, len(line))
	for i, p := range line {
		out = append(out, p)
		if i > 0 && g.level.CreatureAt(p.X, p.Y) != nil {
			break
		}
	}
	return out
}

// aimPoint is where the spell actually lands: the clipped path's end.
func (g *Game) aimPoint() world.Point {
	line := g.TargetLine()
	return line[len(line)-1]
}

// targetOverlay builds the renderer overlay for the current aim.
func (g *Game) targetOverlay() *ui.TargetOverlay {
	t := g.targeting
	if t == nil {
		return nil
	}
	line := g.TargetLine()
	aim := line[len(line)-1]
	if t.spec.SingleTile {
		line = []world.Point{aim}
	}
	var blast []world.Point
	if t.spec.Radius > 0 {
		blast = g.level.TilesInRadius(aim, t.spec.Radius)
	}
	return &ui.TargetOverlay{Line: line, Blast: blast, Color: t.spec.Color}
}

// confirmTarget casts the aimed scroll. A cast the spell itself refuses,
// like lightning aimed at the caster, keeps both the scroll and the turn.
func (g *Game) confirmTarget(ctx context.Context) {
	t := g.targeting
	aim := g.aimPoint()
	g.targeting = nil
	g.state = StatePlaying

	if magic.Cast(ctx, g.level, g.player, t.spell, aim) {
		g.consumeItem(t.item)
		g.advanceWorld(ctx)
	}
}

// cancelTargeting abandons the aim without spending anything.
func (g *Game) cancelTargeting() {
	g.targeting = nil
	g.state = StatePlaying
}
