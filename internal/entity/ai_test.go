package entity

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/abromley/towerrak/internal/world"
)

type moveCall struct {
	actor  *Actor
	dx, dy int
}

// mockBoard records what a behaviour asks for without running a real level.
type mockBoard struct {
	player  *Actor
	blocked map[world.Point]bool
	los     bool
	rng     *rand.Rand
	moves   []moveCall
	posts   []string
}

func newMockBoard(player *Actor) *mockBoard {
	return &mockBoard{
		player:  player,
		blocked: make(map[world.Point]bool),
		los:     true,
		rng:     rand.New(rand.NewSource(42)),
	}
}

func (m *mockBoard) Player() *Actor {
	return m.player
}

func (m *mockBoard) IsBlocked(x, y int) bool {
	return m.blocked[world.Point{X: x, Y: y}]
}

func (m *mockBoard) HasLineOfSight(a, b world.Point) bool {
	return m.los
}

func (m *mockBoard) Rand() *rand.Rand {
	return m.rng
}

func (m *mockBoard) Post(text string) {
	m.posts = append(m.posts, text)
}

func (m *mockBoard) MoveOrAttack(self *Actor, dx, dy int) {
	m.moves = append(m.moves, moveCall{self, dx, dy})
}

func newTestMonster(x, y int) *Actor {
	return &Actor{
		Name:     "Dungo",
		X:        x,
		Y:        y,
		Creature: &Creature{HP: 5, MaxHP: 5, Attack: 2, Hostile: true},
	}
}

func TestChaseAttacksWhenAdjacent(t *testing.T) {
	player := newTestFighter()
	player.X, player.Y = 6, 5
	board := newMockBoard(player)

	monster := newTestMonster(5, 5)
	(&Chase{}).TakeTurn(board, monster)

	if len(board.moves) != 1 {
		t.Fatalf("Expected 1 move, got %d", len(board.moves))
	}
	if board.moves[0].dx != 1 || board.moves[0].dy != 0 {
		t.Errorf("Move = (%d,%d), want (1,0)", board.moves[0].dx, board.moves[0].dy)
	}
}

func TestChaseClosesDistance(t *testing.T) {
	player := newTestFighter()
	player.X, player.Y = 9, 5
	board := newMockBoard(player)

	monster := newTestMonster(5, 5)
	(&Chase{}).TakeTurn(board, monster)

	if len(board.moves) != 1 {
		t.Fatalf("Expected 1 move, got %d", len(board.moves))
	}
	if board.moves[0].dx != 1 || board.moves[0].dy != 0 {
		t.Errorf("Move = (%d,%d), want (1,0)", board.moves[0].dx, board.moves[0].dy)
	}
}

func TestChaseSlidesAroundObstacles(t *testing.T) {
	player := newTestFighter()
	player.X, player.Y = 9, 8
	board := newMockBoard(player)
	// The preferred eastward step is blocked
	board.blocked[world.Point{X: 6, Y: 5}] = true

	monster := newTestMonster(5, 5)
	(&Chase{}).TakeTurn(board, monster)

	if len(board.moves) != 1 {
		t.Fatalf("Expected 1 move, got %d", len(board.moves))
	}
	if board.moves[0].dx != 0 || board.moves[0].dy != 1 {
		t.Errorf("Move = (%d,%d), want the slide (0,1)", board.moves[0].dx, board.moves[0].dy)
	}
}

func TestChaseIgnoresDistantPlayer(t *testing.T) {
	player := newTestFighter()
	player.X, player.Y = 30, 5
	board := newMockBoard(player)

	monster := newTestMonster(5, 5)
	(&Chase{}).TakeTurn(board, monster)

	if len(board.moves) != 0 {
		t.Errorf("Monster beyond aggro radius should stand still, moved %d times", len(board.moves))
	}
}

func TestChaseNeedsLineOfSight(t *testing.T) {
	player := newTestFighter()
	player.X, player.Y = 9, 5
	board := newMockBoard(player)
	board.los = false

	monster := newTestMonster(5, 5)
	(&Chase{}).TakeTurn(board, monster)

	if len(board.moves) != 0 {
		t.Errorf("Monster without line of sight should stand still, moved %d times", len(board.moves))
	}
}

func TestConfusedStumblesThenRecovers(t *testing.T) {
	player := newTestFighter()
	player.X, player.Y = 9, 5
	board := newMockBoard(player)

	monster := newTestMonster(5, 5)
	original := &Chase{}
	confused := &Confused{Wrapped: original, Turns: 2}
	monster.AI = confused

	monster.AI.TakeTurn(board, monster)
	monster.AI.TakeTurn(board, monster)
	if len(board.moves) != 2 {
		t.Fatalf("Confused monster should stumble each turn, got %d moves", len(board.moves))
	}
	if monster.AI != Behavior(confused) {
		t.Fatal("Confusion should persist until the duration runs out")
	}

	// Duration exhausted: this turn restores the original behaviour
	monster.AI.TakeTurn(board, monster)
	if monster.AI != Behavior(original) {
		t.Error("Original behaviour should be restored")
	}
	if len(board.moves) != 2 {
		t.Errorf("The recovery turn should not move, got %d moves", len(board.moves))
	}
	if len(board.posts) == 0 || !strings.Contains(board.posts[0], "confusion") {
		t.Errorf("Recovery should be announced, posts = %v", board.posts)
	}
}

func TestWanderStaysOnBoard(t *testing.T) {
	player := newTestFighter()
	board := newMockBoard(player)

	monster := newTestMonster(5, 5)
	for i := 0; i < 10; i++ {
		(Wander{}).TakeTurn(board, monster)
	}

	if len(board.moves) != 10 {
		t.Fatalf("Wander should act every turn, got %d moves", len(board.moves))
	}
	for _, mv := range board.moves {
		if mv.dx < -1 || mv.dx > 1 || mv.dy < -1 || mv.dy > 1 {
			t.Errorf("Wander stepped too far: (%d,%d)", mv.dx, mv.dy)
		}
	}
}
