package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/abromley/towerrak/internal/assets"
	"github.com/abromley/towerrak/internal/entity"
	"github.com/abromley/towerrak/internal/gamedata"
	"github.com/abromley/towerrak/internal/logger"
	"github.com/abromley/towerrak/internal/world"
)

// Mode selects how tiles are drawn.
type Mode int

const (
	// ModeSprites draws sheet art with half-block characters.
	ModeSprites Mode = iota
	// ModeGlyphs draws one rune per tile.
	ModeGlyphs
)

// ParseMode maps a config string to a render mode. Unknown values get
// sprites, the default.
func ParseMode(s string) Mode {
	if s == "glyphs" {
		return ModeGlyphs
	}
	return ModeSprites
}

const (
	// hudRows is reserved at the bottom for the message log and status line.
	hudRows = 5

	// In sprite mode every map tile spans spriteTileW x spriteTileH cells.
	// A cell stacks two pixels via the upper-half block, so a tile works
	// out to a spriteTileW x spriteTileH*2 pixel grid shrunk from the
	// sheet's 16x16 art.
	spriteTileW = 4
	spriteTileH = 2
)

var (
	wallColor  = tcell.ColorDarkGray
	floorColor = tcell.ColorGray
)

// Renderer draws a View onto the terminal.
type Renderer struct {
	screen  *Screen
	library *assets.Library
	mode    Mode
	cam     Camera
}

// NewRenderer creates a renderer over the given screen. The library feeds
// sprite mode; glyph mode never touches it.
func NewRenderer(screen *Screen, library *assets.Library, mode Mode) *Renderer {
	return &Renderer{screen: screen, library: library, mode: mode}
}

// WorldAt maps a screen cell to the map tile drawn there in the last
// frame, so mouse clicks can land on tiles.
func (r *Renderer) WorldAt(x, y int) (world.Point, bool) {
	return r.cam.WorldAt(x, y)
}

// Render draws one full frame.
func (r *Renderer) Render(v *View) {
	r.screen.Clear()
	w, h := r.screen.Size()
	mapH := h - hudRows
	if mapH < 1 {
		mapH = 1
	}

	if r.mode == ModeSprites {
		if !r.renderSprites(v, w, mapH) {
			// Broken or missing art: glyphs for the rest of the run.
			r.mode = ModeGlyphs
			logger.Log.Warn("Sprite art unavailable, switching to glyph rendering")
		}
	}
	if r.mode == ModeGlyphs {
		r.renderGlyphs(v, w, mapH)
	}

	r.renderMessages(v, w, h)
	r.renderStatus(v, w, h)
	if v.Inventory != nil {
		r.renderInventory(v.Inventory, w, mapH)
	}
	if v.Banner != "" {
		r.renderBanner(v.Banner, w, mapH)
	}

	r.screen.Show()
}

// ==============================
// Sprite mode
// ==============================

func (r *Renderer) renderSprites(v *View, cellsW, cellsH int) bool {
	d := v.Dungeon
	cam := NewCamera(v.Player.Pos(), d.Width, d.Height, cellsW, cellsH, spriteTileW, spriteTileH)
	r.cam = cam
	top := topActors(v)

	// Aim overlay tiles get tinted; the aim point itself gets the mark art.
	tinted := make(map[world.Point]bool)
	var mark *world.Point
	if v.Target != nil {
		for _, p := range v.Target.Blast {
			tinted[p] = true
		}
		if n := len(v.Target.Line); n > 0 {
			for _, p := range v.Target.Line[:n-1] {
				tinted[p] = true
			}
			m := v.Target.Line[n-1]
			mark = &m
		}
	}

	for wy := cam.Y; wy < cam.Y+cam.Height; wy++ {
		for wx := cam.X; wx < cam.X+cam.Width; wx++ {
			if !d.InBounds(wx, wy) {
				continue
			}
			tile := d.TileAt(wx, wy)
			if !tile.Explored {
				continue
			}
			dark := !tile.Visible

			var art *image.RGBA
			var err error
			if tile.Kind == world.TileWall {
				art, err = r.library.Wall(tile.Style, dark)
			} else {
				art, err = r.library.Floor(tile.Style, tile.Variant, dark)
			}
			if err != nil {
				return false
			}

			pt := world.Point{X: wx, Y: wy}
			if a, ok := top[pt]; ok && tile.Visible && !a.Sprite.IsZero() {
				frames, err := r.library.Sprite(a.Sprite)
				if err != nil {
					return false
				}
				art = overlayFrame(art, frames[v.Turn%len(frames)])
			}
			if mark != nil && *mark == pt {
				if frames, err := r.library.Sprite(gamedata.SpriteTargetMark); err == nil {
					art = overlayFrame(art, frames[0])
				}
			}

			pix := tilePixels(art)
			if v.Target != nil && tinted[pt] {
				for py := range pix {
					for px := range pix[py] {
						pix[py][px] = blendRGBA(pix[py][px], v.Target.Color, 0.45)
					}
				}
			}

			sx, sy := cam.ToScreen(wx, wy)
			for row := 0; row < spriteTileH; row++ {
				for col := 0; col < spriteTileW; col++ {
					topPx := pix[row*2][col]
					botPx := pix[row*2+1][col]
					style := tcell.StyleDefault.
						Foreground(tcell.NewRGBColor(int32(topPx.R), int32(topPx.G), int32(topPx.B))).
						Background(tcell.NewRGBColor(int32(botPx.R), int32(botPx.G), int32(botPx.B)))
					r.screen.SetContent(sx+col, sy+row, '▀', style)
				}
			}
		}
	}
	return true
}

// overlayFrame draws a sprite over base art, skipping transparent pixels.
// The base comes from the library cache, so the result is a fresh copy.
func overlayFrame(base, sprite *image.RGBA) *image.RGBA {
	out := image.NewRGBA(base.Rect)
	copy(out.Pix, base.Pix)
	b := sprite.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := sprite.RGBAAt(x, y)
			if px.A > 0 {
				out.SetRGBA(x, y, px)
			}
		}
	}
	return out
}

// tilePixels shrinks a 16x16 cell to the coarse grid the terminal shows,
// averaging each block of source pixels. Fully transparent blocks stay
// zero and come out black.
func tilePixels(art *image.RGBA) [spriteTileH * 2][spriteTileW]color.RGBA {
	var out [spriteTileH * 2][spriteTileW]color.RGBA
	stepX := assets.CellWidth / spriteTileW
	stepY := assets.CellHeight / (spriteTileH * 2)
	for oy := range out {
		for ox := range out[oy] {
			var rSum, gSum, bSum, n uint32
			for dy := 0; dy < stepY; dy++ {
				for dx := 0; dx < stepX; dx++ {
					px := art.RGBAAt(ox*stepX+dx, oy*stepY+dy)
					if px.A == 0 {
						continue
					}
					rSum += uint32(px.R)
					gSum += uint32(px.G)
					bSum += uint32(px.B)
					n++
				}
			}
			if n == 0 {
				continue
			}
			out[oy][ox] = color.RGBA{R: uint8(rSum / n), G: uint8(gSum / n), B: uint8(bSum / n), A: 255}
		}
	}
	return out
}

// blendRGBA mixes an overlay color into a pixel.
func blendRGBA(px color.RGBA, over tcell.Color, t float64) color.RGBA {
	or, og, ob := over.RGB()
	base := colorful.Color{R: float64(px.R) / 255, G: float64(px.G) / 255, B: float64(px.B) / 255}
	topCol := colorful.Color{R: float64(or) / 255, G: float64(og) / 255, B: float64(ob) / 255}
	mixed := base.BlendRgb(topCol, t).Clamped()
	return color.RGBA{R: uint8(mixed.R * 255), G: uint8(mixed.G * 255), B: uint8(mixed.B * 255), A: 255}
}

// ==============================
// Glyph mode
// ==============================

func (r *Renderer) renderGlyphs(v *View, cellsW, cellsH int) {
	d := v.Dungeon
	cam := NewCamera(v.Player.Pos(), d.Width, d.Height, cellsW, cellsH, 1, 1)
	r.cam = cam
	top := topActors(v)

	for wy := cam.Y; wy < cam.Y+cam.Height; wy++ {
		for wx := cam.X; wx < cam.X+cam.Width; wx++ {
			if !d.InBounds(wx, wy) {
				continue
			}
			tile := d.TileAt(wx, wy)
			if !tile.Explored {
				continue
			}

			ch := tile.Rune()
			col := floorColor
			if tile.Kind == world.TileWall {
				col = wallColor
			}
			if !tile.Visible {
				col = dim(col)
			}

			if a, ok := top[world.Point{X: wx, Y: wy}]; ok && tile.Visible {
				ch = a.Glyph
				col = a.Color
			}

			sx, sy := cam.ToScreen(wx, wy)
			r.screen.SetContent(sx, sy, ch, tcell.StyleDefault.Foreground(col))
		}
	}

	if v.Target != nil {
		r.renderTargetGlyphs(v.Target, cam)
	}
}

func (r *Renderer) renderTargetGlyphs(t *TargetOverlay, cam Camera) {
	style := tcell.StyleDefault.Foreground(t.Color)
	for _, p := range t.Blast {
		if !cam.Contains(p.X, p.Y) {
			continue
		}
		sx, sy := cam.ToScreen(p.X, p.Y)
		r.screen.SetContent(sx, sy, '░', style)
	}
	for i, p := range t.Line {
		if !cam.Contains(p.X, p.Y) {
			continue
		}
		ch := '*'
		st := style
		if i == len(t.Line)-1 {
			ch = 'X'
			st = st.Bold(true)
		}
		sx, sy := cam.ToScreen(p.X, p.Y)
		r.screen.SetContent(sx, sy, ch, st)
	}
}

// dim darkens a color for terrain that is remembered but currently out of
// sight.
func dim(c tcell.Color) tcell.Color {
	cr, cg, cb := c.RGB()
	h, s, l := colorful.Color{R: float64(cr) / 255, G: float64(cg) / 255, B: float64(cb) / 255}.Hsl()
	dark := colorful.Hsl(h, s*0.6, l*0.35).Clamped()
	return tcell.NewRGBColor(int32(dark.R*255), int32(dark.G*255), int32(dark.B*255))
}

// ==============================
// HUD
// ==============================

func (r *Renderer) renderMessages(v *View, w, h int) {
	lines := hudRows - 1
	msgs := v.Messages
	if len(msgs) > lines {
		msgs = msgs[len(msgs)-lines:]
	}
	y := h - hudRows
	for _, m := range msgs {
		r.drawText(0, y, w, m.Text, tcell.StyleDefault.Foreground(m.Color))
		y++
	}
}

func (r *Renderer) renderStatus(v *View, w, h int) {
	hp, maxHP := 0, 0
	if v.Player.Creature != nil {
		hp, maxHP = v.Player.Creature.HP, v.Player.Creature.MaxHP
	}
	gold := 0
	if v.Player.Container != nil {
		gold = v.Player.Container.Gold
	}
	text := fmt.Sprintf("HP %d/%d  Atk %d  Def %d  Floor %d  Gold %d  Turn %d",
		hp, maxHP, v.Player.AttackPower(), v.Player.DefensePower(), v.Depth, gold, v.Turn)
	r.drawText(0, h-1, w, text, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
}

func (r *Renderer) renderInventory(inv *InventoryView, w, mapH int) {
	boxW := 32
	if boxW > w {
		boxW = w
	}
	boxH := len(inv.Items) + 4
	if boxH < 5 {
		boxH = 5
	}
	if boxH > mapH {
		boxH = mapH
	}
	x0 := w - boxW

	border := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for y := 0; y < boxH; y++ {
		for x := x0; x < x0+boxW; x++ {
			ch := ' '
			switch {
			case y == 0 && x == x0:
				ch = '┌'
			case y == 0 && x == x0+boxW-1:
				ch = '┐'
			case y == boxH-1 && x == x0:
				ch = '└'
			case y == boxH-1 && x == x0+boxW-1:
				ch = '┘'
			case y == 0 || y == boxH-1:
				ch = '─'
			case x == x0 || x == x0+boxW-1:
				ch = '│'
			}
			r.screen.SetContent(x, y, ch, border)
		}
	}
	r.drawText(x0+2, 0, boxW-4, " Inventory ", border.Bold(true))

	if len(inv.Items) == 0 {
		r.drawText(x0+2, 1, boxW-3, "(nothing)", tcell.StyleDefault.Foreground(tcell.ColorGray))
	}
	for i, it := range inv.Items {
		y := 1 + i
		if y >= boxH-2 {
			break
		}
		marker := ' '
		if it.Equipment != nil && it.Equipment.Equipped {
			marker = '*'
		}
		line := fmt.Sprintf("%c%c %s", marker, it.Glyph, it.Name)
		style := tcell.StyleDefault.Foreground(it.Color)
		if i == inv.Selected {
			style = style.Reverse(true)
		}
		r.drawText(x0+1, y, boxW-2, line, style)
	}

	purse := fmt.Sprintf("Gold %d", inv.Gold)
	if inv.Capacity > 0 {
		purse = fmt.Sprintf("Gold %d  %d/%d", inv.Gold, len(inv.Items), inv.Capacity)
	}
	r.drawText(x0+1, boxH-2, boxW-2, purse, tcell.StyleDefault.Foreground(tcell.ColorYellow))
}

func (r *Renderer) renderBanner(text string, w, mapH int) {
	pad := "  " + text + "  "
	x := (w - len([]rune(pad))) / 2
	if x < 0 {
		x = 0
	}
	style := tcell.StyleDefault.
		Foreground(tcell.ColorYellow).
		Background(tcell.ColorDarkRed).
		Bold(true)
	r.drawText(x, mapH/2, w, pad, style)
}

func (r *Renderer) drawText(x, y, maxW int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		if col >= x+maxW {
			break
		}
		r.screen.SetContent(col, y, ch, style)
		col++
	}
}

// topActors picks the actor to draw on each occupied tile: the player over
// living creatures, creatures over loot and remains, loot over fixtures.
func topActors(v *View) map[world.Point]*entity.Actor {
	top := make(map[world.Point]*entity.Actor)
	for _, a := range v.Actors {
		p := a.Pos()
		if cur, ok := top[p]; ok && actorRank(cur, v.Player) > actorRank(a, v.Player) {
			continue
		}
		top[p] = a
	}
	return top
}

func actorRank(a, player *entity.Actor) int {
	switch {
	case a == player:
		return 3
	case a.IsAlive():
		return 2
	case a.Item != nil || a.Creature != nil:
		return 1
	}
	return 0
}
