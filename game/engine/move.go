package engine

import "fmt"

// AttemptMove resolves a requested player move in the given direction.
//
// The outcome is Moved when the player advanced (pushing any chain of
// movable crates one cell along with it), Blocked when a wall, immovable
// crate, boundary, or a crate chain with no room behind it refused the
// move, and Invalid when the direction itself is malformed. The entity
// layer is mutated only on Moved, and atomically: either the player and
// the whole chain advance, or nothing does.
func (g *Grid) AttemptMove(d Direction) (MoveOutcome, error) {
	if !d.Valid() {
		return Invalid, fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}

	player, err := g.PlayerPosition()
	if err != nil {
		return Invalid, err
	}

	target := player.Step(d)
	if !g.InBounds(target) || g.tiles[target.Row][target.Col] == TileWall {
		return Blocked, nil
	}

	switch g.entities[target.Row][target.Col] {
	case EntityNone:
		// Open floor or uncovered goal: just step in
		g.entities[player.Row][player.Col] = EntityNone
		g.entities[target.Row][target.Col] = EntityPlayer
		return Moved, nil

	case EntityBlock:
		// Immovable crates are permanent obstacles regardless of what
		// lies beyond them
		return Blocked, nil

	case EntityCrate:
		end, ok := g.scanChain(target, d)
		if !ok {
			return Blocked, nil
		}
		// The chain is a uniform run of movable crates, so shifting the
		// whole run one cell is equivalent to placing one crate at the
		// open end and stepping the player into the first cell.
		g.entities[end.Row][end.Col] = EntityCrate
		g.entities[player.Row][player.Col] = EntityNone
		g.entities[target.Row][target.Col] = EntityPlayer
		return Moved, nil

	default:
		return Invalid, fmt.Errorf("%w: unexpected entity %s at %s", ErrInvariantViolation, g.entities[target.Row][target.Col], target)
	}
}

// CanMove reports whether a move in the given direction would succeed,
// without mutating the grid
func (g *Grid) CanMove(d Direction) bool {
	if !d.Valid() {
		return false
	}
	player, err := g.PlayerPosition()
	if err != nil {
		return false
	}

	target := player.Step(d)
	if !g.InBounds(target) || g.tiles[target.Row][target.Col] == TileWall {
		return false
	}

	switch g.entities[target.Row][target.Col] {
	case EntityNone:
		return true
	case EntityCrate:
		_, ok := g.scanChain(target, d)
		return ok
	default:
		return false
	}
}

// PossibleMoves returns all directions the player can currently move in
func (g *Grid) PossibleMoves() []Direction {
	var possible []Direction
	for _, d := range Directions {
		if g.CanMove(d) {
			possible = append(possible, d)
		}
	}
	return possible
}

// scanChain walks from the first crate cell along d past the contiguous
// run of movable crates and returns the first cell beyond it. ok is false
// when that cell is out of bounds, a wall, or an immovable crate, in
// which case the whole chain is stuck. The walk is bounded by the grid,
// so chains spanning the entire grid are handled without recursion.
func (g *Grid) scanChain(start Position, d Direction) (end Position, ok bool) {
	end = start
	for g.InBounds(end) && g.entities[end.Row][end.Col] == EntityCrate {
		end = end.Step(d)
	}
	if !g.InBounds(end) {
		return end, false
	}
	if g.tiles[end.Row][end.Col] == TileWall || g.entities[end.Row][end.Col] == EntityBlock {
		return end, false
	}
	return end, true
}
