// Package terminal is the I/O boundary of the game: it renders the grid
// with termbox and maps raw key events to game commands.
//
// The engine never formats output and never sees key codes. The renderer
// reads tile and entity kinds per cell and picks a display glyph; the
// input mapper resolves w/a/s/d and the arrow keys to directions, r to
// reset and q or Escape to quit. Run drives the synchronous game loop:
// read one command, resolve it fully through the session, redraw.
package terminal
