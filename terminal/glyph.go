package terminal

import (
	termbox "github.com/nsf/termbox-go"

	"sokoban/game/engine"
)

// Display glyphs for each cell. Entities win over tiles; an uncovered
// goal shows its marker, covered goals show whatever covers them.
const (
	GlyphPlayer = 'x'
	GlyphCrate  = '◻'
	GlyphBlock  = '◼'
	GlyphGoal   = '+'
	GlyphFloor  = '·'
	GlyphWall   = '█'
)

// GlyphFor picks the display glyph for one cell from its tile and entity
func GlyphFor(tile engine.TileKind, entity engine.EntityKind) rune {
	switch entity {
	case engine.EntityPlayer:
		return GlyphPlayer
	case engine.EntityCrate:
		return GlyphCrate
	case engine.EntityBlock:
		return GlyphBlock
	}

	switch tile {
	case engine.TileWall:
		return GlyphWall
	case engine.TileGoal:
		return GlyphGoal
	default:
		return GlyphFloor
	}
}

// colorFor picks the foreground attribute for one cell
func colorFor(tile engine.TileKind, entity engine.EntityKind) termbox.Attribute {
	switch entity {
	case engine.EntityPlayer:
		return termbox.ColorYellow | termbox.AttrBold
	case engine.EntityCrate:
		if tile == engine.TileGoal {
			return termbox.ColorGreen | termbox.AttrBold
		}
		return termbox.ColorCyan
	case engine.EntityBlock:
		return termbox.ColorRed
	}

	switch tile {
	case engine.TileWall:
		return termbox.ColorWhite
	case engine.TileGoal:
		return termbox.ColorGreen
	default:
		return termbox.ColorDefault
	}
}
