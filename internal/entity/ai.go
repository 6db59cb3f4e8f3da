package entity

import (
	"fmt"
	"math/rand"

	"github.com/abromley/towerrak/internal/logger"
	"github.com/abromley/towerrak/internal/world"
)

// Board is a behaviour's view of the level: enough to look around, step,
// and fight without knowing anything about the game loop.
type Board interface {
	// Player returns the player's actor.
	Player() *Actor
	// IsBlocked reports whether a tile refuses movement, either a wall or
	// a living creature standing on it.
	IsBlocked(x, y int) bool
	// HasLineOfSight reports whether two tiles can see each other.
	HasLineOfSight(a, b world.Point) bool
	// MoveOrAttack steps the actor one tile, attacking any creature of the
	// opposing side already standing there.
	MoveOrAttack(self *Actor, dx, dy int)
	// Rand returns the level's random source.
	Rand() *rand.Rand
	// Post adds a line to the in-game message log.
	Post(text string)
}

// Behavior decides a creature's action each turn.
type Behavior interface {
	TakeTurn(b Board, self *Actor)
}

// Chase pursues the player once spotted: attack when adjacent, otherwise
// close the distance, sliding along the secondary axis when the direct
// step is blocked.
type Chase struct {
	// AggroRadius is how far the creature notices the player.
	AggroRadius int
}

// TakeTurn implements Behavior.
func (c *Chase) TakeTurn(b Board, self *Actor) {
	player := b.Player()
	if player == nil || !player.IsAlive() {
		return
	}

	selfPos := self.Pos()
	target := player.Pos()

	dist := selfPos.DistanceTo(target)

	// Adjacent, diagonals included: swing instead of stepping
	if dist < 2 {
		b.MoveOrAttack(self, sign(target.X-selfPos.X), sign(target.Y-selfPos.Y))
		return
	}

	radius := c.AggroRadius
	if radius <= 0 {
		radius = 8
	}
	if dist > float64(radius) || !b.HasLineOfSight(selfPos, target) {
		return
	}

	dx, dy := slideStep(b, self, target)
	if dx != 0 || dy != 0 {
		b.MoveOrAttack(self, dx, dy)
	}
}

// slideStep picks a one-tile step toward the target, favouring the axis
// with more ground to cover and falling back to the other when blocked.
func slideStep(b Board, self *Actor, target world.Point) (int, int) {
	dx := sign(target.X - self.X)
	dy := sign(target.Y - self.Y)

	canX := dx != 0 && !b.IsBlocked(self.X+dx, self.Y)
	canY := dy != 0 && !b.IsBlocked(self.X, self.Y+dy)

	if abs(target.X-self.X) >= abs(target.Y-self.Y) {
		if canX {
			return dx, 0
		}
		if canY {
			return 0, dy
		}
	} else {
		if canY {
			return 0, dy
		}
		if canX {
			return dx, 0
		}
	}
	return 0, 0
}

// Wander drifts one random step at a time, bumping into walls harmlessly.
type Wander struct{}

// TakeTurn implements Behavior.
func (Wander) TakeTurn(b Board, self *Actor) {
	b.MoveOrAttack(self, b.Rand().Intn(3)-1, b.Rand().Intn(3)-1)
}

// Confused replaces a creature's behaviour after a confusion scroll:
// random stumbling, swinging at whoever is in the way, until the duration
// runs out and the original behaviour comes back.
type Confused struct {
	Wrapped Behavior
	Turns   int
}

// TakeTurn implements Behavior.
func (c *Confused) TakeTurn(b Board, self *Actor) {
	if c.Turns <= 0 {
		self.AI = c.Wrapped
		logger.Log.WithField("actor", self.Name).Debug("confusion expired")
		b.Post(fmt.Sprintf("%s shakes off the confusion.", self.Name))
		return
	}
	c.Turns--
	b.MoveOrAttack(self, b.Rand().Intn(3)-1, b.Rand().Intn(3)-1)
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
