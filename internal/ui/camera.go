package ui

import "github.com/abromley/towerrak/internal/world"

// Camera maps world tiles onto a region of screen cells, keeping the focus
// tile centered and clamping at the map edges so the view never shows
// beyond the dungeon.
type Camera struct {
	// X, Y is the world tile in the view's top-left corner.
	X, Y int
	// Width, Height is the view size in tiles.
	Width, Height int

	tileW, tileH int
}

// NewCamera builds a camera over a cell region cellsW x cellsH where every
// tile occupies tileW x tileH cells.
func NewCamera(focus world.Point, mapW, mapH, cellsW, cellsH, tileW, tileH int) Camera {
	w := cellsW / tileW
	h := cellsH / tileH

	x := focus.X - w/2
	y := focus.Y - h/2
	if x > mapW-w {
		x = mapW - w
	}
	if y > mapH-h {
		y = mapH - h
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	return Camera{X: x, Y: y, Width: w, Height: h, tileW: tileW, tileH: tileH}
}

// Contains reports whether a world tile is inside the view.
func (c Camera) Contains(wx, wy int) bool {
	return wx >= c.X && wx < c.X+c.Width && wy >= c.Y && wy < c.Y+c.Height
}

// ToScreen converts a world tile to the screen cell of its top-left
// corner. Callers must check Contains first.
func (c Camera) ToScreen(wx, wy int) (int, int) {
	return (wx - c.X) * c.tileW, (wy - c.Y) * c.tileH
}

// WorldAt maps a screen cell back to the world tile drawn there. ok is
// false outside the view, including on a zero camera.
func (c Camera) WorldAt(sx, sy int) (world.Point, bool) {
	if c.tileW <= 0 || c.tileH <= 0 || sx < 0 || sy < 0 {
		return world.Point{}, false
	}
	wx := c.X + sx/c.tileW
	wy := c.Y + sy/c.tileH
	if !c.Contains(wx, wy) {
		return world.Point{}, false
	}
	return world.Point{X: wx, Y: wy}, true
}
