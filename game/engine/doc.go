// Package engine provides the core puzzle logic for the Sokoban game.
//
// The engine package implements the game mechanics including:
//   - The grid model: a static tile layer (floor, wall, goal) and a
//     mutable entity layer (player, movable and immovable crates)
//   - Move resolution with chained crate pushing
//   - Win detection over the goal tiles
//
// Core Types:
//
// Grid owns the two layers and is the unit of game state. Position and
// Direction describe cells and moves. AttemptMove resolves a requested
// move into a MoveOutcome (Moved, Blocked, Invalid) and mutates the
// entity layer only on Moved.
//
// Usage:
//
//	grid, err := engine.NewGrid(tiles)
//	if err != nil {
//		log.Fatal(err)
//	}
//	grid.SetEntity(engine.Position{Row: 1, Col: 1}, engine.EntityPlayer)
//
//	outcome, err := grid.AttemptMove(engine.Right)
//	if outcome == engine.Moved && grid.IsSolved() {
//		// puzzle complete
//	}
//
// Game Rules:
//
// The player moves one cell at a time in the four cardinal directions.
// Moving into a movable crate pushes it, and a whole line of movable
// crates is pushed together when the cell past the line is free. Walls,
// immovable crates and the grid boundary block movement. The puzzle is
// solved when every goal tile is covered by a movable crate.
//
// The engine is single-threaded and deterministic: a Grid must not be
// shared across goroutines without external synchronization.
package engine
