package world

// Multipliers for transforming deltas into each of the 8 octants.
var fovMultipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// ApplyFOV recomputes fog-of-war from the observer's position using
// recursive shadowcasting. Tiles leaving the field of view go dark;
// anything seen is latched as explored for the rest of the floor.
func (d *Dungeon) ApplyFOV(origin Point, radius int) {
	for y := range d.Tiles {
		for x := range d.Tiles[y] {
			d.Tiles[y][x].Visible = false
		}
	}

	if radius <= 0 || !d.InBounds(origin.X, origin.Y) {
		return
	}

	// The observer's own tile is always visible
	d.reveal(origin.X, origin.Y)

	for i := 0; i < 8; i++ {
		d.castLight(origin.X, origin.Y, 1, 1.0, 0.0, radius,
			fovMultipliers[0][i], fovMultipliers[1][i],
			fovMultipliers[2][i], fovMultipliers[3][i])
	}
}

// IsVisible returns true if the tile is inside the current field of view.
func (d *Dungeon) IsVisible(x, y int) bool {
	if !d.InBounds(x, y) {
		return false
	}
	return d.Tiles[y][x].Visible
}

// IsExplored returns true if the tile has ever been seen.
func (d *Dungeon) IsExplored(x, y int) bool {
	if !d.InBounds(x, y) {
		return false
	}
	return d.Tiles[y][x].Explored
}

func (d *Dungeon) reveal(x, y int) {
	d.Tiles[y][x].Visible = true
	d.Tiles[y][x].Explored = true
}

func (d *Dungeon) castLight(cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int) {
	if start < end {
		return
	}

	radiusSq := float64(radius * radius)

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}
			dy = -j

			// Slopes bracketing the current cell
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			// Transform deltas into map coordinates
			x := cx + dx*xx + dy*xy
			y := cy + dx*yx + dy*yy

			if d.InBounds(x, y) && float64(dx*dx+dy*dy) < radiusSq {
				d.reveal(x, y)
			}

			if blocked {
				// Scanning along a wall run
				if d.BlocksSight(x, y) {
					newStart = rSlope
					continue
				}
				// The wall ended, open space resumes
				blocked = false
				start = newStart
			} else {
				// Open space hit a wall: shadow everything behind it
				if d.BlocksSight(x, y) && j < radius {
					blocked = true
					d.castLight(cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy)
					newStart = rSlope
				}
			}
		}
		if blocked {
			break
		}
	}
}
