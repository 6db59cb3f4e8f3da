package magic

import (
	"github.com/gdamore/tcell/v2"

	"github.com/abromley/towerrak/internal/gamedata"
)

// TargetSpec describes how a spell is aimed. The input layer runs tile
// selection under these rules before Cast is called.
type TargetSpec struct {
	// MaxRange caps how far from the caster the cursor may travel.
	MaxRange int
	// Radius previews the blast area around the cursor.
	Radius int
	// StopAtWall clips the aiming line at the first wall.
	StopAtWall bool
	// StopAtCreature clips the aiming line at the first creature hit.
	StopAtCreature bool
	// SingleTile marks only the cursor tile instead of the whole line.
	SingleTile bool
	// Color tints the aiming overlay.
	Color tcell.Color
}

// TargetSpecFor returns the aiming rules for a spell. The second return is
// false for spells cast without a target.
func TargetSpecFor(def *gamedata.SpellDef) (TargetSpec, bool) {
	switch def.Kind {
	case gamedata.SpellLightning:
		return TargetSpec{
			MaxRange:   def.Range,
			StopAtWall: true,
			Color:      tcell.ColorYellow,
		}, true
	case gamedata.SpellFireball:
		return TargetSpec{
			MaxRange:       def.Range,
			Radius:         def.Radius,
			StopAtWall:     true,
			StopAtCreature: true,
			Color:          tcell.ColorRed,
		}, true
	case gamedata.SpellConfusion:
		return TargetSpec{
			MaxRange:   def.Range,
			StopAtWall: true,
			SingleTile: true,
			Color:      tcell.ColorGreen,
		}, true
	default:
		return TargetSpec{}, false
	}
}
