package terminal

import (
	"fmt"

	runewidth "github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"

	"sokoban/game/engine"
	"sokoban/game/session"
)

// cellWidth is the screen width of one grid cell. The crate glyphs are
// double-width in most terminal fonts, so every cell gets two columns
// and narrow glyphs are padded to keep rows aligned.
const cellWidth = 2

// Screen offsets for the board and status lines
const (
	boardTop  = 2
	boardLeft = 1
)

// Run drives the synchronous game loop until the player quits: read one
// command, resolve it fully through the session, redraw. It owns the
// termbox lifecycle.
func Run(sess *session.Session) error {
	if err := termbox.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer termbox.Close()

	if err := draw(sess); err != nil {
		return err
	}

	for {
		cmd := ReadCommand()

		switch cmd.Kind {
		case CommandQuit:
			return nil
		case CommandReset:
			if err := sess.Reset(); err != nil {
				return err
			}
		case CommandMove:
			if _, err := sess.Move(cmd.Direction); err != nil {
				// Integration bug, not a gameplay outcome: abort the loop
				return err
			}
		}

		if err := draw(sess); err != nil {
			return err
		}
	}
}

// draw renders the whole screen: title, board, status and help lines
func draw(sess *session.Session) error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return err
	}

	grid := sess.Grid()

	printAt(boardLeft, 0, termbox.ColorWhite|termbox.AttrBold, sess.Level().Name)

	for row := 0; row < grid.Height(); row++ {
		x := boardLeft
		for col := 0; col < grid.Width(); col++ {
			pos := engine.Position{Row: row, Col: col}
			tile, err := grid.TileAt(pos)
			if err != nil {
				return err
			}
			entity, err := grid.EntityAt(pos)
			if err != nil {
				return err
			}

			glyph := GlyphFor(tile, entity)
			termbox.SetCell(x, boardTop+row, glyph, colorFor(tile, entity), termbox.ColorDefault)

			// Pad narrow glyphs so single- and double-width cells line up
			for pad := runewidth.RuneWidth(glyph); pad < cellWidth; pad++ {
				termbox.SetCell(x+pad, boardTop+row, ' ', termbox.ColorDefault, termbox.ColorDefault)
			}
			x += cellWidth
		}
	}

	statusY := boardTop + grid.Height() + 1
	status := fmt.Sprintf("Moves: %d   Goals left: %d", sess.Moves(), grid.RemainingGoals())
	printAt(boardLeft, statusY, termbox.ColorDefault, status)

	if sess.Solved() {
		printAt(boardLeft, statusY+1, termbox.ColorGreen|termbox.AttrBold, "Solved! Press r to replay or q to quit.")
	} else {
		printAt(boardLeft, statusY+1, termbox.ColorDefault, "w/a/s/d or arrows to move, r to reset, q to quit")
	}

	return termbox.Flush()
}

// printAt writes a string starting at x,y, advancing by rune width
func printAt(x, y int, fg termbox.Attribute, text string) {
	for _, ch := range text {
		termbox.SetCell(x, y, ch, fg, termbox.ColorDefault)
		x += runewidth.RuneWidth(ch)
	}
}
