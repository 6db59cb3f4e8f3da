package world

// Cardinal neighbour bits for autotile masks.
const (
	autotileN = 1
	autotileE = 2
	autotileS = 4
	autotileW = 8
)

// assignStyles computes the sprite style code for every tile once the
// layout is final.
//
// Wall tiles take the 4-bit mask of neighbouring walls (out of bounds
// counts as wall). Corner and tee masks whose enclosed diagonal opens onto
// floor switch to their doubled code (3 becomes 33, 11 becomes 111) so the
// renderer can pick the turned piece. Floor tiles take the mask of
// neighbouring walls and a random texture variant.
func (d *Dungeon) assignStyles() {
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			mask := d.wallMask(x, y)
			if d.Tiles[y][x].Kind == TileWall {
				d.Tiles[y][x].Style = d.refineCorner(x, y, mask)
			} else {
				d.Tiles[y][x].Style = mask
				d.Tiles[y][x].Variant = d.rng.Intn(60)
			}
		}
	}
}

// wallMask returns the N/E/S/W wall-adjacency bits for a position.
func (d *Dungeon) wallMask(x, y int) int {
	mask := 0
	if d.isWallOrEdge(x, y-1) {
		mask |= autotileN
	}
	if d.isWallOrEdge(x+1, y) {
		mask |= autotileE
	}
	if d.isWallOrEdge(x, y+1) {
		mask |= autotileS
	}
	if d.isWallOrEdge(x-1, y) {
		mask |= autotileW
	}
	return mask
}

func (d *Dungeon) isWallOrEdge(x, y int) bool {
	if !d.InBounds(x, y) {
		return true
	}
	return d.Tiles[y][x].Kind == TileWall
}

// refineCorner upgrades corner and tee masks to their doubled style code
// when the diagonal between two wall arms is open floor, which is where
// the wall run visually turns.
func (d *Dungeon) refineCorner(x, y, mask int) int {
	if mask < 2 || mask > 12 {
		return mask
	}

	pairs := []struct {
		bits   int
		dx, dy int
	}{
		{autotileN | autotileE, 1, -1},
		{autotileE | autotileS, 1, 1},
		{autotileS | autotileW, -1, 1},
		{autotileW | autotileN, -1, -1},
	}

	for _, p := range pairs {
		if mask&p.bits != p.bits {
			continue
		}
		nx, ny := x+p.dx, y+p.dy
		if d.InBounds(nx, ny) && d.Tiles[ny][nx].Kind == TileFloor {
			return mask*10 + mask%10
		}
	}
	return mask
}
