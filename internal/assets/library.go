package assets

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/abromley/towerrak/internal/gamedata"
	"github.com/abromley/towerrak/internal/logger"
)

// Library resolves sprite references against the sheets in a graphics
// directory, caching decoded sheets and extracted cells.
type Library struct {
	dir    string
	sheets map[string]*SpriteSheet
	broken map[string]bool
	anims  map[animKey][]*image.RGBA
	tiles  map[tileKey]*image.RGBA
}

type animKey struct {
	sheet  string
	col    string
	row    int
	frames int
}

type tileKey struct {
	wall     bool
	style    int
	variant  int
	explored bool
}

// NewLibrary creates a library rooted at the given graphics directory.
func NewLibrary(dir string) *Library {
	return &Library{
		dir:    dir,
		sheets: make(map[string]*SpriteSheet),
		broken: make(map[string]bool),
		anims:  make(map[animKey][]*image.RGBA),
		tiles:  make(map[tileKey]*image.RGBA),
	}
}

// sheet returns the named sheet, loading it on first use. A sheet that
// fails to load is remembered so the miss is only logged once.
func (l *Library) sheet(name string) (*SpriteSheet, error) {
	if s, ok := l.sheets[name]; ok {
		return s, nil
	}
	if l.broken[name] {
		return nil, fmt.Errorf("sheet %s unavailable", name)
	}
	s, err := LoadSheet(filepath.Join(l.dir, filepath.FromSlash(name)))
	if err != nil {
		l.broken[name] = true
		logger.Log.WithError(err).WithField("sheet", name).Warn("Sprite sheet unavailable")
		return nil, err
	}
	l.sheets[name] = s
	return s, nil
}

// Sprite resolves a reference to its animation frames. Results are cached;
// callers must not mutate the returned images.
func (l *Library) Sprite(ref gamedata.SpriteRef) ([]*image.RGBA, error) {
	if ref.IsZero() {
		return nil, fmt.Errorf("empty sprite reference")
	}
	key := animKey{sheet: ref.Sheet, col: ref.Column, row: ref.Row, frames: ref.Frames}
	if frames, ok := l.anims[key]; ok {
		return frames, nil
	}
	s, err := l.sheet(ref.Sheet)
	if err != nil {
		return nil, err
	}
	frames, err := s.Animation(ref.Column, ref.Row, ref.Frames)
	if err != nil {
		return nil, err
	}
	l.anims[key] = frames
	return frames, nil
}

// Wall returns the art for a wall tile style.
func (l *Library) Wall(style int, explored bool) (*image.RGBA, error) {
	key := tileKey{wall: true, style: style, explored: explored}
	if img, ok := l.tiles[key]; ok {
		return img, nil
	}
	s, err := l.sheet(gamedata.TileSheet)
	if err != nil {
		return nil, err
	}
	cell := wallCell(style, explored)
	img, err := s.Image(cell.Col, cell.Row)
	if err != nil {
		return nil, err
	}
	l.tiles[key] = img
	return img, nil
}

// Floor returns the art for a floor tile style. The variant picks among the
// style's alternate cells.
func (l *Library) Floor(style, variant int, explored bool) (*image.RGBA, error) {
	key := tileKey{style: style, variant: variant, explored: explored}
	if img, ok := l.tiles[key]; ok {
		return img, nil
	}
	s, err := l.sheet(gamedata.TileSheet)
	if err != nil {
		return nil, err
	}
	cell := floorCell(style, variant, explored)
	img, err := s.Image(cell.Col, cell.Row)
	if err != nil {
		return nil, err
	}
	l.tiles[key] = img
	return img, nil
}
