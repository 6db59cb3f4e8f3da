package world

// TilesInLine returns the Bresenham path from a to b clipped to the map.
// The order follows the walk from a, so index 0 is a itself whenever a is
// in bounds.
func (d *Dungeon) TilesInLine(a, b Point) []Point {
	pts := Line(a, b)
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		if d.InBounds(p.X, p.Y) {
			out = append(out, p)
		}
	}
	return out
}

// TilesInRadius returns every in-bounds tile within Euclidean distance r of
// center, the center included.
func (d *Dungeon) TilesInRadius(center Point, r int) []Point {
	if r < 0 {
		return nil
	}
	var out []Point
	for y := center.Y - r; y <= center.Y+r; y++ {
		for x := center.X - r; x <= center.X+r; x++ {
			if !d.InBounds(x, y) {
				continue
			}
			dx := x - center.X
			dy := y - center.Y
			if dx*dx+dy*dy <= r*r {
				out = append(out, Point{x, y})
			}
		}
	}
	return out
}

// ClipLine returns the path from a toward b truncated before the first
// sight-blocking tile past a. Aimed spells follow it, so a bolt can be
// stopped by a wall but never lands inside one.
func (d *Dungeon) ClipLine(a, b Point) []Point {
	line := d.TilesInLine(a, b)
	for i, p := range line {
		if i > 0 && d.BlocksSight(p.X, p.Y) {
			return line[:i]
		}
	}
	return line
}

// HasLineOfSight reports whether b can be seen from a. Walls strictly
// between the endpoints block; the endpoints themselves never do, so a
// creature standing in a doorway can still be seen.
func (d *Dungeon) HasLineOfSight(a, b Point) bool {
	for _, p := range Line(a, b) {
		if p == a || p == b {
			continue
		}
		if d.BlocksSight(p.X, p.Y) {
			return false
		}
	}
	return true
}
