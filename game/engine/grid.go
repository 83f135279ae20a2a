package engine

import "fmt"

// Grid owns the level state: the immutable tile layer, the mutable
// entity layer, and the goal positions cached at construction time.
type Grid struct {
	width    int
	height   int
	tiles    [][]TileKind
	entities [][]EntityKind
	goals    []Position
}

// NewGrid creates a grid from a rectangular tile layer. The entity layer
// starts empty; goal positions are collected from the tiles once here and
// never change afterwards.
func NewGrid(tiles [][]TileKind) (*Grid, error) {
	if len(tiles) == 0 || len(tiles[0]) == 0 {
		return nil, fmt.Errorf("grid must have at least one row and one column")
	}

	width := len(tiles[0])
	g := &Grid{
		width:    width,
		height:   len(tiles),
		tiles:    make([][]TileKind, len(tiles)),
		entities: make([][]EntityKind, len(tiles)),
	}

	for row, line := range tiles {
		if len(line) != width {
			return nil, fmt.Errorf("grid rows must have equal width: row %d has %d cells, expected %d", row, len(line), width)
		}
		g.tiles[row] = make([]TileKind, width)
		copy(g.tiles[row], line)
		g.entities[row] = make([]EntityKind, width)

		for col, tile := range line {
			if tile == TileGoal {
				g.goals = append(g.goals, Position{Row: row, Col: col})
			}
		}
	}

	return g, nil
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether the position lies inside the rectangular bounds
func (g *Grid) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < g.height && pos.Col >= 0 && pos.Col < g.width
}

// TileAt returns the tile kind at the given position
func (g *Grid) TileAt(pos Position) (TileKind, error) {
	if !g.InBounds(pos) {
		return TileFloor, fmt.Errorf("%w: %s", ErrOutOfBounds, pos)
	}
	return g.tiles[pos.Row][pos.Col], nil
}

// EntityAt returns the entity kind at the given position
func (g *Grid) EntityAt(pos Position) (EntityKind, error) {
	if !g.InBounds(pos) {
		return EntityNone, fmt.Errorf("%w: %s", ErrOutOfBounds, pos)
	}
	return g.entities[pos.Row][pos.Col], nil
}

// SetEntity overwrites the entity at the given position. Placing a
// non-empty entity on a wall tile is refused: walls and entities never
// coexist on a cell.
func (g *Grid) SetEntity(pos Position, kind EntityKind) error {
	if !g.InBounds(pos) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, pos)
	}
	if kind != EntityNone && g.tiles[pos.Row][pos.Col] == TileWall {
		return fmt.Errorf("%w: cannot place %s on wall at %s", ErrInvalidPlacement, kind, pos)
	}
	g.entities[pos.Row][pos.Col] = kind
	return nil
}

// PlayerPosition returns the unique position currently holding the
// player. A count other than one means the entity layer was corrupted by
// a caller and is reported as an invariant violation.
func (g *Grid) PlayerPosition() (Position, error) {
	var found Position
	count := 0
	for row := range g.entities {
		for col, kind := range g.entities[row] {
			if kind == EntityPlayer {
				found = Position{Row: row, Col: col}
				count++
			}
		}
	}
	if count != 1 {
		return Position{}, fmt.Errorf("%w: expected exactly 1 player, found %d", ErrInvariantViolation, count)
	}
	return found, nil
}

// GoalPositions returns the positions of all goal tiles, computed once at
// construction from the static layer
func (g *Grid) GoalPositions() []Position {
	goals := make([]Position, len(g.goals))
	copy(goals, g.goals)
	return goals
}

// EntitySnapshot returns a deep copy of the entity layer, suitable for
// restoring the grid later via RestoreEntities
func (g *Grid) EntitySnapshot() [][]EntityKind {
	snapshot := make([][]EntityKind, g.height)
	for row := range g.entities {
		snapshot[row] = make([]EntityKind, g.width)
		copy(snapshot[row], g.entities[row])
	}
	return snapshot
}

// RestoreEntities replaces the entity layer with a previously taken
// snapshot. The tile layer is untouched, it never mutates.
func (g *Grid) RestoreEntities(snapshot [][]EntityKind) error {
	if len(snapshot) != g.height {
		return fmt.Errorf("snapshot has %d rows, grid has %d", len(snapshot), g.height)
	}
	for row := range snapshot {
		if len(snapshot[row]) != g.width {
			return fmt.Errorf("snapshot row %d has %d cells, grid has %d", row, len(snapshot[row]), g.width)
		}
	}
	for row := range snapshot {
		copy(g.entities[row], snapshot[row])
	}
	return nil
}

// CountEntities counts the cells currently holding the given entity kind
func (g *Grid) CountEntities(kind EntityKind) int {
	count := 0
	for row := range g.entities {
		for _, e := range g.entities[row] {
			if e == kind {
				count++
			}
		}
	}
	return count
}

// CrateCount returns the total number of crates, movable and immovable
func (g *Grid) CrateCount() int {
	return g.CountEntities(EntityCrate) + g.CountEntities(EntityBlock)
}
