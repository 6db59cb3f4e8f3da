package assets

// sheetCell addresses one cell on the dungeon tile sheet.
type sheetCell struct {
	Col string
	Row int
}

// Explored tiles use the same cells shifted down this many rows, where the
// sheet carries a darkened copy of the art.
const exploredRowOffset = 10

// wallCells maps wall styles to their art on the dungeon sheet. Keys 0-15
// are the four-bit cardinal adjacency mask; the doubled codes cover wall
// runs that turn a corner around an open diagonal.
var wallCells = map[int]sheetCell{
	0:   {"a", 0},
	1:   {"c", 0},
	2:   {"b", 0},
	3:   {"A", 4},
	4:   {"e", 2},
	5:   {"e", 1},
	6:   {"A", 0},
	7:   {"e", 3},
	8:   {"a", 0},
	9:   {"e", 4},
	10:  {"b", 0},
	11:  {"a", 0},
	12:  {"e", 0},
	13:  {"A", 1},
	14:  {"a", 4},
	15:  {"a", 4},
	22:  {"e", 4},
	33:  {"A", 4},
	44:  {"e", 0},
	55:  {"A", 0},
	66:  {"c", 5},
	77:  {"d", 5},
	88:  {"e", 5},
	99:  {"f", 0},
	100: {"f", 1},
	111: {"f", 3},
	122: {"f", 2},
}

// floorCells maps floor styles to their art. Styles with several cells are
// drawn in alternates picked by the tile's variant.
var floorCells = map[int][]sheetCell{
	0:  {{"f", 6}, {"f", 7}, {"f", 8}, {"g", 6}, {"g", 7}, {"g", 8}, {"h", 6}, {"h", 7}, {"h", 8}, {"i", 6}, {"i", 7}, {"i", 8}},
	1:  {{"a", 6}, {"b", 6}, {"c", 6}, {"d", 6}},
	2:  {{"e", 6}, {"e", 7}, {"e", 8}},
	3:  {{"d", 1}},
	4:  {{"a", 7}, {"b", 7}, {"c", 7}, {"d", 7}},
	5:  {{"b", 1}},
	6:  {{"d", 3}},
	7:  {{"d", 1}},
	8:  {{"A", 6}, {"A", 7}, {"A", 8}},
	9:  {{"a", 1}},
	10: {{"a", 2}},
	11: {{"a", 1}},
	12: {{"a", 3}},
	13: {{"a", 1}},
	14: {{"a", 3}},
	15: {{"c", 2}},
}

// wallCell resolves a wall style to a sheet cell. Styles outside the
// vocabulary fall back to the plain wall.
func wallCell(style int, explored bool) sheetCell {
	cell, ok := wallCells[style]
	if !ok {
		cell = wallCells[0]
	}
	if explored {
		cell.Row += exploredRowOffset
	}
	return cell
}

// floorCell resolves a floor style and variant to a sheet cell.
func floorCell(style, variant int, explored bool) sheetCell {
	cells, ok := floorCells[style]
	if !ok {
		cells = floorCells[0]
	}
	cell := cells[variant%len(cells)]
	if explored {
		cell.Row += exploredRowOffset
	}
	return cell
}
