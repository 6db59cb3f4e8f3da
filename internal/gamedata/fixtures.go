package gamedata

// Sprite references for things built into the game rather than defined in a
// data file: stairs, the exit portal, creature remains, and the targeting
// cursor.
var (
	SpriteStairsUp     = SpriteRef{Sheet: "Objects/Tile.png", Column: "a", Row: 2, Frames: 1}
	SpriteStairsDown   = SpriteRef{Sheet: "Objects/Tile.png", Column: "b", Row: 2, Frames: 1}
	SpritePortalClosed = SpriteRef{Sheet: "Objects/Door.png", Column: "b", Row: 6, Frames: 1}
	SpritePortalOpen   = SpriteRef{Sheet: "Objects/Door.png", Column: "c", Row: 6, Frames: 2}
	SpriteRemains      = SpriteRef{Sheet: "Characters/Death.png", Column: "A", Row: 0, Frames: 9}
	SpriteTargetMark   = SpriteRef{Sheet: "menu/menugui.png", Column: "c1", Row: 2, Frames: 1}
)

// TileSheet is the sprite sheet holding the dungeon wall and floor art.
const TileSheet = "Objects/Dungeon_Tileset2.png"
