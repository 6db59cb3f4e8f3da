package game

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/abromley/towerrak/internal/entity"
	"github.com/abromley/towerrak/internal/gamedata"
	"github.com/abromley/towerrak/internal/logger"
	"github.com/abromley/towerrak/internal/telemetry"
	"github.com/abromley/towerrak/internal/world"
)

// sightRadius is how far the player sees.
const sightRadius = 10

// advanceWorld runs one world turn after the player acts: every creature
// takes its turn, the dead become remains, and visibility recomputes.
func (g *Game) advanceWorld(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.turn")
	defer span.End()

	g.turn++
	span.SetAttributes(
		attribute.Int("turn", g.turn),
		attribute.Int("depth", g.level.Depth),
		attribute.Int("actors", len(g.level.Actors)),
	)

	// Snapshot: behaviours may add or remove actors mid-loop.
	actors := make([]*entity.Actor, len(g.level.Actors))
	copy(actors, g.level.Actors)
	for _, a := range actors {
		if a == g.player || a.AI == nil || !a.IsAlive() {
			continue
		}
		a.AI.TakeTurn(g.level, a)
	}

	g.processDeaths()
	g.refreshPortal()
	g.updateFOV()

	if !g.player.IsAlive() {
		g.state = StateGameOver
		g.messages.PostColored(tcell.ColorRed, "You died!")
		logger.Log.WithField("turn", g.turn).Info("Player died")
	}
}

// processDeaths converts fresh corpses into remains. The player is left
// alone; the game-over state handles that death.
func (g *Game) processDeaths() {
	actors := make([]*entity.Actor, len(g.level.Actors))
	copy(actors, g.level.Actors)
	for _, a := range actors {
		if a == g.player || a.Creature == nil || !a.Creature.Dead || a.Item != nil {
			continue
		}
		g.messages.PostColored(tcell.ColorRed, "%s is dead!", a.Name)
		logger.Log.WithField("actor", a.Name).Debug("Creature died")
		g.toRemains(a)
	}
}

// toRemains rewrites a dead creature in place: carried loot spills onto
// the tile, and what is left stops acting and can itself be carried off.
// The item component doubles as the already-converted mark.
func (g *Game) toRemains(a *entity.Actor) {
	if a.Container != nil {
		spilled := make([]*entity.Actor, len(a.Container.Items))
		copy(spilled, a.Container.Items)
		for _, it := range spilled {
			a.Container.Remove(it)
			if it.Equipment != nil {
				it.Equipment.Equipped = false
			}
			it.MoveTo(a.Pos())
			g.level.AddActor(it)
		}
		if a.Container.Gold > 0 {
			g.dropGold(a.Pos(), a.Container.Gold)
			a.Container.Gold = 0
		}
	}

	a.Name = "remains of " + a.Name
	a.Glyph = '%'
	a.Color = tcell.ColorDarkRed
	a.Sprite = gamedata.SpriteRemains
	a.AI = nil
	a.Item = &entity.Item{}
}

// dropGold leaves a pile of the given size on a tile.
func (g *Game) dropGold(p world.Point, amount int) {
	def := g.items.GetByID("gold")
	if def == nil {
		return
	}
	pile := newItem(def, p.X, p.Y)
	pile.Item.Value = amount
	g.level.AddActor(pile)
}

// refreshPortal keeps the exit in step with the relic: it opens the
// moment the player carries the stone, and seals again if it is dropped.
func (g *Game) refreshPortal() {
	open := g.player.HasRelic()
	for _, a := range g.level.Actors {
		if a.Portal == nil {
			continue
		}
		if open && !a.Portal.Open {
			g.messages.PostColored(tcell.ColorGreen, "The portal hums and swings open!")
			logger.Log.Info("Portal opened")
		}
		a.Portal.Open = open
		if open {
			a.Sprite = gamedata.SpritePortalOpen
			a.Color = tcell.ColorGreen
		} else {
			a.Sprite = gamedata.SpritePortalClosed
			a.Color = tcell.ColorPurple
		}
	}
}

// updateFOV recomputes visibility around the player.
func (g *Game) updateFOV() {
	g.level.Dungeon.ApplyFOV(g.player.Pos(), sightRadius)
}
