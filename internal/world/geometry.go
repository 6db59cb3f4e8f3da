package world

import "math"

// Point is a tile coordinate on the map.
type Point struct {
	X, Y int
}

// DistanceTo returns the Euclidean distance to another point.
func (p Point) DistanceTo(o Point) float64 {
	dx := float64(o.X - p.X)
	dy := float64(o.Y - p.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// ChebyshevTo returns the board distance where diagonal steps count as one.
func (p Point) ChebyshevTo(o Point) int {
	dx := abs(o.X - p.X)
	dy := abs(o.Y - p.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// IsAdjacent returns true if o is one step away, diagonals included.
func (p Point) IsAdjacent(o Point) bool {
	return p != o && p.ChebyshevTo(o) <= 1
}

// Line returns the Bresenham tile path from a to b, both endpoints
// included. The first element is always a.
func Line(a, b Point) []Point {
	pts := []Point{a}
	if a == b {
		return pts
	}

	x0, y0 := a.X, a.Y
	x1, y1 := b.X, b.Y

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := sign(x1 - x0)
	sy := sign(y1 - y0)

	err := dx - dy
	for {
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
		pts = append(pts, Point{x0, y0})
	}
	return pts
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
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
