// Package assets loads sprite sheets from the graphics directory and slices
// them into the fixed-size cells the renderer draws.
package assets

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Cell dimensions of every sprite sheet in the graphics directory.
const (
	CellWidth  = 16
	CellHeight = 16
)

// ColumnIndex maps the lettered column labels the art was authored with to
// zero-based column numbers: 'A' is 0, 'a' through 'z' are 1-26, and "a1"
// through "g1" continue from 27.
func ColumnIndex(col string) (int, error) {
	switch len(col) {
	case 1:
		c := col[0]
		if c == 'A' {
			return 0, nil
		}
		if c >= 'a' && c <= 'z' {
			return int(c-'a') + 1, nil
		}
	case 2:
		c := col[0]
		if col[1] == '1' && c >= 'a' && c <= 'g' {
			return int(c-'a') + 27, nil
		}
	}
	return 0, fmt.Errorf("unknown sheet column %q", col)
}

// SpriteSheet slices fixed-size cells out of a decoded sheet image.
type SpriteSheet struct {
	name string
	img  image.Image
}

// LoadSheet reads and decodes a PNG sprite sheet from disk.
func LoadSheet(path string) (*SpriteSheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening sheet: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding sheet %s: %w", path, err)
	}
	return &SpriteSheet{name: path, img: img}, nil
}

// NewSheet wraps an already decoded image.
func NewSheet(name string, img image.Image) *SpriteSheet {
	return &SpriteSheet{name: name, img: img}
}

// Image extracts the cell at the given column letter and row. Magenta
// pixels become fully transparent.
func (s *SpriteSheet) Image(col string, row int) (*image.RGBA, error) {
	colIdx, err := ColumnIndex(col)
	if err != nil {
		return nil, err
	}
	return s.cell(colIdx, row)
}

// Animation extracts a sequence of consecutive cells starting at the given
// column letter and row, advancing along the row.
func (s *SpriteSheet) Animation(col string, row, frames int) ([]*image.RGBA, error) {
	colIdx, err := ColumnIndex(col)
	if err != nil {
		return nil, err
	}
	if frames < 1 {
		frames = 1
	}
	out := make([]*image.RGBA, 0, frames)
	for i := 0; i < frames; i++ {
		cell, err := s.cell(colIdx+i, row)
		if err != nil {
			return nil, err
		}
		out = append(out, cell)
	}
	return out, nil
}

func (s *SpriteSheet) cell(col, row int) (*image.RGBA, error) {
	bounds := s.img.Bounds()
	x0 := bounds.Min.X + col*CellWidth
	y0 := bounds.Min.Y + row*CellHeight
	if col < 0 || row < 0 || x0+CellWidth > bounds.Max.X || y0+CellHeight > bounds.Max.Y {
		return nil, fmt.Errorf("cell (%d,%d) outside sheet %s", col, row, s.name)
	}

	cell := image.NewRGBA(image.Rect(0, 0, CellWidth, CellHeight))
	for y := 0; y < CellHeight; y++ {
		for x := 0; x < CellWidth; x++ {
			c := color.RGBAModel.Convert(s.img.At(x0+x, y0+y)).(color.RGBA)
			if c.R == 0xFF && c.G == 0x00 && c.B == 0xFF {
				c = color.RGBA{}
			}
			cell.SetRGBA(x, y, c)
		}
	}
	return cell, nil
}
