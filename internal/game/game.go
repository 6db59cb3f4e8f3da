package game

import (
	"context"
	"fmt"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/abromley/towerrak/internal/assets"
	"github.com/abromley/towerrak/internal/entity"
	"github.com/abromley/towerrak/internal/gamedata"
	"github.com/abromley/towerrak/internal/logger"
	"github.com/abromley/towerrak/internal/magic"
	"github.com/abromley/towerrak/internal/telemetry"
	"github.com/abromley/towerrak/internal/ui"
	"github.com/abromley/towerrak/internal/world"
)

// towerHeight is how many floors the tower has. The portal out sits on
// the top one, behind the relic.
const towerHeight = 5

// messageLimit is how much history the log keeps.
const messageLimit = 50

// Game holds the entire game state.
type Game struct {
	opts     Options
	screen   *ui.Screen
	renderer *ui.Renderer

	creatures *gamedata.CreatureRegistry
	items     *gamedata.ItemRegistry
	spells    *gamedata.SpellRegistry

	rng      *rand.Rand
	player   *entity.Actor
	floors   map[int]*Level
	level    *Level
	turn     int
	messages *MessageLog

	state       State
	targeting   *Targeting
	invSelected int
	running     bool
}

// New creates a new game instance.
func New(opts Options) (*Game, error) {
	creatures, err := gamedata.LoadCreatureRegistry()
	if err != nil {
		return nil, fmt.Errorf("load creatures: %w", err)
	}
	items, err := gamedata.LoadItemRegistry()
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	spells, err := gamedata.LoadSpellRegistry()
	if err != nil {
		return nil, fmt.Errorf("load spells: %w", err)
	}
	if creatures.GetByID("player") == nil {
		return nil, fmt.Errorf("creature data does not define a player")
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Log.WithField("seed", seed).Info("Starting run")

	library := assets.NewLibrary(filepath.Join(opts.DataDir, "graphics"))

	return &Game{
		opts:      opts,
		screen:    screen,
		renderer:  ui.NewRenderer(screen, library, ui.ParseMode(opts.RenderMode)),
		creatures: creatures,
		items:     items,
		spells:    spells,
		rng:       rand.New(rand.NewSource(seed)),
		floors:    make(map[int]*Level),
		messages:  NewMessageLog(messageLimit),
		state:     StatePlaying,
		running:   true,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")

	g.player = newPlayer(g.creatures.GetByID("player"), 0, 0)
	first := g.levelAt(ctx, 1)
	g.enterLevel(first, first.Dungeon.Entrance)

	initSpan.SetAttributes(
		attribute.Int("floor.rooms", len(first.Dungeon.Rooms)),
		attribute.Int("player.x", g.player.X),
		attribute.Int("player.y", g.player.Y),
	)
	initSpan.End()

	g.messages.Post("Welcome to the Tower of Rak! Find the magic rock and escape.")

	for g.running {
		g.render()
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

// levelAt returns the floor at the given depth, generating it on first
// visit. Revisited floors come back exactly as left.
func (g *Game) levelAt(ctx context.Context, depth int) *Level {
	if l, ok := g.floors[depth]; ok {
		return l
	}

	w, h := g.opts.MapWidth, g.opts.MapHeight
	if w <= 0 {
		w = world.DefaultWidth
	}
	if h <= 0 {
		h = world.DefaultHeight
	}

	dungeon := world.NewDungeon(w, h, g.rng)
	dungeon.Generate(ctx)

	l := NewLevel(depth, dungeon, g.player, g.rng, g.messages)
	placeFixtures(l, towerHeight, g.items)
	populateLevel(l, g.creatures, g.items)
	g.floors[depth] = l

	logger.Log.WithField("depth", depth).
		WithField("rooms", len(dungeon.Rooms)).
		Info("Generated floor")
	return l
}

// enterLevel puts the player on a floor at the given tile.
func (g *Game) enterLevel(l *Level, at world.Point) {
	if g.level != nil {
		g.level.RemoveActor(g.player)
	}
	g.level = l
	g.player.MoveTo(at)
	l.AddActor(g.player)
	g.updateFOV()
}

// changeFloor moves the player one floor. Climbing lands at the
// destination's entrance, next to its way back; descending lands by the
// stairs that lead up again.
func (g *Game) changeFloor(ctx context.Context, up bool) {
	depth := g.level.Depth - 1
	if up {
		depth = g.level.Depth + 1
	}
	if depth < 1 || depth > towerHeight {
		return
	}

	ctx, span := telemetry.Tracer("game").Start(ctx, "game.floor_change")
	defer span.End()
	span.SetAttributes(
		attribute.Int("floor.from", g.level.Depth),
		attribute.Int("floor.to", depth),
	)

	dest := g.levelAt(ctx, depth)
	at := dest.Dungeon.Exit
	if up {
		at = dest.Dungeon.Entrance
	}
	g.enterLevel(dest, at)

	if up {
		g.messages.Post("%s climbs the stairs to floor %d.", g.player.Name, depth)
	} else {
		g.messages.Post("%s heads back down to floor %d.", g.player.Name, depth)
	}
}

// playerMove spends the turn on one step or swing.
func (g *Game) playerMove(ctx context.Context, dx, dy int) {
	g.level.MoveOrAttack(g.player, dx, dy)
	g.advanceWorld(ctx)
}

// useStairs climbs stairs under the player matching the direction.
func (g *Game) useStairs(ctx context.Context, up bool) {
	f := g.level.FixtureAt(g.player.X, g.player.Y)
	if f == nil || f.Stairs == nil || f.Stairs.Up != up {
		g.messages.Post("There are no stairs that way here.")
		return
	}
	g.changeFloor(ctx, up)
}

// useHere activates whatever the player is standing on: stairs climb,
// the portal leaves the tower.
func (g *Game) useHere(ctx context.Context) {
	f := g.level.FixtureAt(g.player.X, g.player.Y)
	switch {
	case f == nil:
		g.messages.Post("There is nothing here to use.")
	case f.Stairs != nil:
		g.changeFloor(ctx, f.Stairs.Up)
	case f.Portal != nil:
		g.usePortal(f)
	}
}

// usePortal tries to leave the tower; without the relic it stays sealed.
func (g *Game) usePortal(portal *entity.Actor) {
	if !portal.Portal.Open {
		g.messages.PostColored(tcell.ColorBlue, "The portal is sealed. Something is missing...")
		return
	}
	g.state = StateWon
	g.messages.PostColored(tcell.ColorGreen, "%s steps through the portal and escapes the tower!", g.player.Name)
	logger.Log.WithField("turn", g.turn).Info("Player escaped, run won")
}

// carried returns the player's pack contents.
func (g *Game) carried() []*entity.Actor {
	if g.player.Container == nil {
		return nil
	}
	return g.player.Container.Items
}

// useItem activates an item from the pack: equipment toggles on or off,
// scrolls cast their spell, possibly after aiming.
func (g *Game) useItem(ctx context.Context, it *entity.Actor) {
	if it.Equipment != nil {
		g.level.ToggleEquip(it)
		g.advanceWorld(ctx)
		return
	}
	if it.Item == nil || it.Item.SpellID == "" {
		g.messages.Post("Nothing happens.")
		return
	}
	spell := g.spells.GetByID(it.Item.SpellID)
	if spell == nil {
		logger.Log.WithField("spell", it.Item.SpellID).Warn("Item names an unknown spell")
		g.messages.Post("Nothing happens.")
		return
	}

	if spec, ok := magic.TargetSpecFor(spell); ok {
		g.beginTargeting(it, spell, spec)
		return
	}

	// Untargeted spells fire on the spot. A refusal, like mending at
	// full health, spends nothing.
	if magic.Cast(ctx, g.level, g.player, spell, g.player.Pos()) {
		g.consumeItem(it)
		g.advanceWorld(ctx)
	}
}

// consumeItem destroys a consumable after a successful use.
func (g *Game) consumeItem(it *entity.Actor) {
	if it.Item != nil && it.Item.Consumable {
		g.player.Container.Remove(it)
	}
}

// openInventory shows the pack.
func (g *Game) openInventory() {
	g.state = StateInventory
	if g.invSelected >= len(g.carried()) {
		g.invSelected = 0
	}
}

// moveSelection steps the inventory cursor.
func (g *Game) moveSelection(delta int) {
	n := len(g.carried())
	if n == 0 {
		g.invSelected = 0
		return
	}
	g.invSelected += delta
	if g.invSelected < 0 {
		g.invSelected = 0
	}
	if g.invSelected >= n {
		g.invSelected = n - 1
	}
}

// useSelected uses the highlighted item and closes the pane.
func (g *Game) useSelected(ctx context.Context) {
	items := g.carried()
	if len(items) == 0 {
		g.state = StatePlaying
		return
	}
	it := items[g.invSelected]
	g.state = StatePlaying
	g.useItem(ctx, it)
}

// dropSelected drops the highlighted item and closes the pane.
func (g *Game) dropSelected(ctx context.Context) {
	items := g.carried()
	if len(items) == 0 {
		g.state = StatePlaying
		return
	}
	it := items[g.invSelected]
	g.state = StatePlaying
	if g.level.Drop(it) {
		g.advanceWorld(ctx)
	}
}

// render assembles the frame for the current state and draws it.
func (g *Game) render() {
	v := &ui.View{
		Dungeon:  g.level.Dungeon,
		Actors:   g.level.Actors,
		Player:   g.player,
		Depth:    g.level.Depth,
		Turn:     g.turn,
		Messages: g.messages.Recent(8),
	}

	if g.state == StateTargeting {
		v.Target = g.targetOverlay()
	}
	if g.state == StateInventory {
		v.Inventory = &ui.InventoryView{
			Items:    g.carried(),
			Selected: g.invSelected,
			Gold:     g.player.Container.Gold,
			Capacity: g.player.Container.Capacity,
		}
	}
	switch g.state {
	case StateGameOver:
		v.Banner = "GAME OVER"
	case StateWon:
		v.Banner = "YOU ESCAPED THE TOWER!"
	}

	g.renderer.Render(v)
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
