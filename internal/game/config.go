package game

// Options holds game configuration.
type Options struct {
	// Seed for random number generation, driving dungeon layout and
	// spawns. A seed of 0 means a random seed will be generated.
	Seed int64

	// RenderMode selects "sprites" or "glyphs".
	RenderMode string

	// DataDir is the root of the on-disk asset tree (data/graphics/...).
	DataDir string

	// MapWidth and MapHeight size each floor in tiles; zero uses the
	// defaults.
	MapWidth  int
	MapHeight int
}
