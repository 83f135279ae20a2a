// Package session owns the lifecycle of one running game: it bridges the
// level loader and the puzzle engine.
//
// A Session is created from a validated level, holds the mutable grid,
// and preserves a snapshot of the initial entity layer for reset. Every
// move is delegated to the engine's resolver and followed by a win check;
// the caller (the terminal loop) only ever sees the resulting MoveResult.
//
// Usage:
//
//	lvl, err := level.LoadByName("levels", "default")
//	if err != nil {
//		log.Fatal(err)
//	}
//	sess, err := session.New(lvl)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := sess.Move(engine.Right)
//	if result.Solved {
//		// puzzle complete
//	}
//	sess.Reset() // back to the initial layout
//
// Reset restores the entity layer only: the tile layer never mutates.
// The cumulative move history survives resets while the per-attempt move
// counter starts over, so a player's total effort on a level is still
// visible after restarting it.
package session
