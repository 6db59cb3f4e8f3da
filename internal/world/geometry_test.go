package world

import "testing"

func TestLineEndpoints(t *testing.T) {
	a := Point{2, 3}
	b := Point{9, 7}

	pts := Line(a, b)
	if pts[0] != a {
		t.Errorf("Line should start at %v, got %v", a, pts[0])
	}
	if pts[len(pts)-1] != b {
		t.Errorf("Line should end at %v, got %v", b, pts[len(pts)-1])
	}
}

func TestLineSinglePoint(t *testing.T) {
	a := Point{4, 4}
	pts := Line(a, a)
	if len(pts) != 1 || pts[0] != a {
		t.Errorf("Degenerate line should be just the origin, got %v", pts)
	}
}

func TestLineStraightRuns(t *testing.T) {
	horizontal := Line(Point{0, 0}, Point{4, 0})
	if len(horizontal) != 5 {
		t.Errorf("Horizontal run should visit 5 tiles, got %d", len(horizontal))
	}
	for i, p := range horizontal {
		if p.Y != 0 || p.X != i {
			t.Errorf("Horizontal run tile %d wrong: %v", i, p)
		}
	}

	diagonal := Line(Point{0, 0}, Point{3, 3})
	if len(diagonal) != 4 {
		t.Errorf("Diagonal run should visit 4 tiles, got %d", len(diagonal))
	}
	for i, p := range diagonal {
		if p.X != i || p.Y != i {
			t.Errorf("Diagonal run tile %d wrong: %v", i, p)
		}
	}
}

func TestLineIsOrderedFromStart(t *testing.T) {
	a := Point{10, 2}
	b := Point{3, 8}

	pts := Line(a, b)
	for i := 1; i < len(pts); i++ {
		if !pts[i].IsAdjacent(pts[i-1]) {
			t.Errorf("Tiles %d and %d are not adjacent: %v -> %v", i-1, i, pts[i-1], pts[i])
		}
	}
}

func TestChebyshevDistance(t *testing.T) {
	cases := []struct {
		a, b Point
		want int
	}{
		{Point{0, 0}, Point{0, 0}, 0},
		{Point{0, 0}, Point{3, 0}, 3},
		{Point{0, 0}, Point{3, 3}, 3},
		{Point{5, 5}, Point{2, 9}, 4},
	}
	for _, c := range cases {
		if got := c.a.ChebyshevTo(c.b); got != c.want {
			t.Errorf("ChebyshevTo(%v, %v) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestIsAdjacent(t *testing.T) {
	center := Point{5, 5}
	if center.IsAdjacent(center) {
		t.Error("A point is not adjacent to itself")
	}
	if !center.IsAdjacent(Point{6, 6}) {
		t.Error("Diagonal neighbour should be adjacent")
	}
	if center.IsAdjacent(Point{7, 5}) {
		t.Error("Two tiles away should not be adjacent")
	}
}
