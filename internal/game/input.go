package game

import (
	"context"

	"github.com/gdamore/tcell/v2"
)

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventMouse:
		g.handleMouseEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleMouseEvent lets a click place and confirm the aim mark. Everywhere
// else the mouse is ignored.
func (g *Game) handleMouseEvent(ctx context.Context, ev *tcell.EventMouse) {
	if g.state != StateTargeting || ev.Buttons()&tcell.Button1 == 0 {
		return
	}
	p, ok := g.renderer.WorldAt(ev.Position())
	if !ok || !g.level.Dungeon.InBounds(p.X, p.Y) {
		return
	}
	t := g.targeting
	if t.spec.MaxRange > 0 && g.player.Pos().ChebyshevTo(p) > t.spec.MaxRange {
		return
	}
	t.cursor = p
	g.confirmTarget(ctx)
}

// handleKeyEvent dispatches a key press according to the current state.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlC {
		g.running = false
		return
	}

	switch g.state {
	case StatePlaying:
		g.handlePlayingKey(ctx, ev)
	case StateInventory:
		g.handleInventoryKey(ctx, ev)
	case StateTargeting:
		g.handleTargetingKey(ctx, ev)
	case StateGameOver, StateWon:
		// Any key leaves the postgame screen.
		g.running = false
	}
}

func (g *Game) handlePlayingKey(ctx context.Context, ev *tcell.EventKey) {
	if dx, dy, ok := moveKey(ev); ok {
		g.playerMove(ctx, dx, dy)
		return
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		g.running = false
		return
	case tcell.KeyEnter:
		g.useHere(ctx)
		return
	}

	switch ev.Rune() {
	case 'q', 'Q':
		g.running = false
	case 'g':
		if g.level.PickUp() {
			g.advanceWorld(ctx)
		}
	case 'd':
		if g.level.DropLast() {
			g.advanceWorld(ctx)
		}
	case 'i':
		g.openInventory()
	case '.':
		// Wait in place.
		g.advanceWorld(ctx)
	case '<':
		g.useStairs(ctx, true)
	case '>':
		g.useStairs(ctx, false)
	}
}

func (g *Game) handleInventoryKey(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		g.state = StatePlaying
		return
	case tcell.KeyUp:
		g.moveSelection(-1)
		return
	case tcell.KeyDown:
		g.moveSelection(1)
		return
	case tcell.KeyEnter:
		g.useSelected(ctx)
		return
	}

	switch ev.Rune() {
	case 'i', 'q':
		g.state = StatePlaying
	case 'k':
		g.moveSelection(-1)
	case 'j':
		g.moveSelection(1)
	case 'd':
		g.dropSelected(ctx)
	}
}

func (g *Game) handleTargetingKey(ctx context.Context, ev *tcell.EventKey) {
	if dx, dy, ok := moveKey(ev); ok {
		g.moveCursor(dx, dy)
		return
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		g.cancelTargeting()
	case tcell.KeyEnter:
		g.confirmTarget(ctx)
	}
}

// moveKey maps arrows and vi keys, diagonals included, to a step.
func moveKey(ev *tcell.EventKey) (int, int, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return 0, -1, true
	case tcell.KeyDown:
		return 0, 1, true
	case tcell.KeyLeft:
		return -1, 0, true
	case tcell.KeyRight:
		return 1, 0, true
	}

	switch ev.Rune() {
	case 'k':
		return 0, -1, true
	case 'j':
		return 0, 1, true
	case 'h':
		return -1, 0, true
	case 'l':
		return 1, 0, true
	case 'y':
		return -1, -1, true
	case 'u':
		return 1, -1, true
	case 'b':
		return -1, 1, true
	case 'n':
		return 1, 1, true
	}
	return 0, 0, false
}
