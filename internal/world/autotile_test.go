package world

import "testing"

func TestAutotileFloorMasks(t *testing.T) {
	d := dungeonFromStrings([]string{
		"#####",
		"#...#",
		"#...#",
		"#...#",
		"#####",
	})
	d.assignStyles()

	// Open center: no wall neighbours
	if got := d.Tiles[2][2].Style; got != 0 {
		t.Errorf("Center floor style = %d, want 0", got)
	}
	// Top-left floor corner: walls north and west
	if got := d.Tiles[1][1].Style; got != autotileN|autotileW {
		t.Errorf("Corner floor style = %d, want %d", got, autotileN|autotileW)
	}
	// Mid-left floor: wall west only
	if got := d.Tiles[2][1].Style; got != autotileW {
		t.Errorf("Edge floor style = %d, want %d", got, autotileW)
	}
}

func TestAutotileWallMasks(t *testing.T) {
	d := dungeonFromStrings([]string{
		"#####",
		"#...#",
		"#...#",
		"#...#",
		"#####",
	})
	d.assignStyles()

	// Top edge wall: wall runs east-west with more wall beyond the map edge
	if got := d.Tiles[0][2].Style; got != autotileN|autotileE|autotileW {
		t.Errorf("Top wall style = %d, want %d", got, autotileN|autotileE|autotileW)
	}
	// Left edge wall
	if got := d.Tiles[2][0].Style; got != autotileN|autotileS|autotileW {
		t.Errorf("Left wall style = %d, want %d", got, autotileN|autotileS|autotileW)
	}
	// Map corner: surrounded by wall on every side
	if got := d.Tiles[0][0].Style; got != 15 {
		t.Errorf("Map corner style = %d, want 15", got)
	}
}

func TestAutotileDoubledCorner(t *testing.T) {
	// The wall at (2,2) has arms north and east and open floor on the
	// enclosed diagonal, so its corner piece turns: style 3 becomes 33.
	d := dungeonFromStrings([]string{
		".....",
		"..#..",
		"..##.",
		".....",
		".....",
	})
	d.assignStyles()

	if got := d.Tiles[2][2].Style; got != 33 {
		t.Errorf("Turned corner style = %d, want 33", got)
	}
}

func TestAutotileVariantsReproducible(t *testing.T) {
	// Styles and variants come from the generation rng, so two identical
	// seeds must agree (checked map-wide by TestDungeonReproducibility);
	// here just confirm floors actually receive variants in range.
	d := openDungeon(12, 12)
	d.assignStyles()

	for y := 1; y < d.Height-1; y++ {
		for x := 1; x < d.Width-1; x++ {
			v := d.Tiles[y][x].Variant
			if v < 0 || v >= 60 {
				t.Fatalf("Variant out of range at (%d,%d): %d", x, y, v)
			}
		}
	}
}
