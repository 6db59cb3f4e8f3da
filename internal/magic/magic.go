// Package magic implements the spell effects carried by scrolls.
package magic

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/abromley/towerrak/internal/entity"
	"github.com/abromley/towerrak/internal/gamedata"
	"github.com/abromley/towerrak/internal/logger"
	"github.com/abromley/towerrak/internal/telemetry"
	"github.com/abromley/towerrak/internal/world"
)

// Board is everything a spell needs to see and touch: map queries, the
// creatures standing on the map, and the message log.
type Board interface {
	// TilesInLine returns the tiles from a to b, both endpoints included.
	TilesInLine(a, b world.Point) []world.Point
	// TilesInRadius returns the tiles within the given radius of center.
	TilesInRadius(center world.Point, radius int) []world.Point
	// CreatureAt returns the living creature on the tile, or nil.
	CreatureAt(x, y int) *entity.Actor
	// Damage hurts the target and reports its fate to the log.
	Damage(target *entity.Actor, amount int)
	// Announce posts a colored line to the message log.
	Announce(text string, color tcell.Color)
}

// Cast applies the spell to the board, aimed at target where the spell
// takes one. Reports whether the spell took effect; a scroll is spent only
// when it did.
func Cast(ctx context.Context, b Board, caster *entity.Actor, def *gamedata.SpellDef, target world.Point) bool {
	tracer := telemetry.Tracer("magic")
	_, span := tracer.Start(ctx, "magic.cast")
	defer span.End()
	span.SetAttributes(
		attribute.String("spell.id", def.ID),
		attribute.String("spell.kind", string(def.Kind)),
		attribute.String("spell.caster", caster.Name),
	)

	switch def.Kind {
	case gamedata.SpellHeal:
		return castHeal(b, caster, def)
	case gamedata.SpellLightning:
		return castLightning(b, caster, def, target)
	case gamedata.SpellFireball:
		return castFireball(b, caster, def, target)
	case gamedata.SpellConfusion:
		return castConfusion(b, caster, def, target)
	default:
		logger.Log.WithField("kind", def.Kind).Warn("Unknown spell kind")
		return false
	}
}

// castHeal restores the caster's HP. Healing at full health wastes nothing:
// the spell refuses and the scroll stays in the pack.
func castHeal(b Board, caster *entity.Actor, def *gamedata.SpellDef) bool {
	if caster.Creature == nil {
		return false
	}
	if caster.Creature.AtFullHealth() {
		b.Announce(fmt.Sprintf("%s is already at full health!", caster.Name), tcell.ColorBlue)
		return false
	}
	caster.Creature.Heal(def.Power)
	return true
}

// castLightning damages every creature along the line from the caster to
// the target, sparing the caster's own tile.
func castLightning(b Board, caster *entity.Actor, def *gamedata.SpellDef, target world.Point) bool {
	tiles := b.TilesInLine(caster.Pos(), target)
	if len(tiles) <= 1 {
		b.Announce("Watch out! Aim away from yourself please.", tcell.ColorWhite)
		return false
	}

	damaged := false
	for i, p := range tiles {
		if i == 0 {
			continue
		}
		if victim := b.CreatureAt(p.X, p.Y); victim != nil {
			b.Damage(victim, def.Power)
			damaged = true
		}
	}

	b.Announce(fmt.Sprintf("%s casts lightning", caster.Name), tcell.ColorWhite)
	if !damaged {
		b.Announce("Nothing was hit, what a waste.", tcell.ColorWhite)
	}
	return true
}

// castFireball damages every creature within the blast radius of the
// target tile. The caster is not spared.
func castFireball(b Board, caster *entity.Actor, def *gamedata.SpellDef, target world.Point) bool {
	b.Announce(fmt.Sprintf("%s casts fireball", caster.Name), tcell.ColorWhite)

	damaged := false
	for _, p := range b.TilesInRadius(target, def.Radius) {
		if victim := b.CreatureAt(p.X, p.Y); victim != nil {
			b.Damage(victim, def.Power)
			damaged = true
		}
	}

	if !damaged {
		b.Announce("Nothing was hit, what a waste.", tcell.ColorWhite)
	}
	return true
}

// castConfusion scrambles the wits of the creature on the target tile. The
// scroll is spent on any confirmed tile, creature or not.
func castConfusion(b Board, caster *entity.Actor, def *gamedata.SpellDef, target world.Point) bool {
	victim := b.CreatureAt(target.X, target.Y)
	if victim == nil {
		return true
	}

	b.Announce(fmt.Sprintf("%s casts confusion on %s", caster.Name, victim.Name), tcell.ColorWhite)
	victim.AI = &entity.Confused{Wrapped: victim.AI, Turns: def.Duration}
	b.Announce(fmt.Sprintf("%s is confused for %d turns!", victim.Name, def.Duration), tcell.ColorGreen)
	return true
}
