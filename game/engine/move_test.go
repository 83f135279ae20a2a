package engine

import (
	"errors"
	"testing"
)

// mustMove attempts a move and fails the test unless it yields the
// expected outcome without error.
func mustMove(t *testing.T, grid *Grid, d Direction, expected MoveOutcome) {
	t.Helper()
	outcome, err := grid.AttemptMove(d)
	if err != nil {
		t.Fatalf("AttemptMove(%s) returned error: %v", d, err)
	}
	if outcome != expected {
		t.Fatalf("AttemptMove(%s) = %s, expected %s", d, outcome, expected)
	}
}

func entityAt(t *testing.T, grid *Grid, row, col int) EntityKind {
	t.Helper()
	kind, err := grid.EntityAt(Position{Row: row, Col: col})
	if err != nil {
		t.Fatalf("EntityAt(%d,%d) failed: %v", row, col, err)
	}
	return kind
}

func TestMoveIntoOpenFloor(t *testing.T) {
	grid := gridFromRows(t, []string{
		"#####",
		"#@..#",
		"#####",
	})

	mustMove(t, grid, Right, Moved)

	if entityAt(t, grid, 1, 1) != EntityNone {
		t.Error("Expected old player cell to be empty")
	}
	if entityAt(t, grid, 1, 2) != EntityPlayer {
		t.Error("Expected player at (1,2)")
	}
}

func TestMoveIntoEmptyGoal(t *testing.T) {
	grid := gridFromRows(t, []string{
		"#####",
		"#@+.#",
		"#####",
	})

	mustMove(t, grid, Right, Moved)

	if entityAt(t, grid, 1, 2) != EntityPlayer {
		t.Error("Expected player standing on the goal tile")
	}
	tile, _ := grid.TileAt(Position{Row: 1, Col: 2})
	if tile != TileGoal {
		t.Error("Goal tile must not change when stepped on")
	}
}

func TestMoveBlockedByWall(t *testing.T) {
	grid := gridFromRows(t, []string{
		"###",
		"#@#",
		"###",
	})

	for _, d := range Directions {
		mustMove(t, grid, d, Blocked)
	}

	pos, err := grid.PlayerPosition()
	if err != nil {
		t.Fatalf("PlayerPosition failed: %v", err)
	}
	if pos != (Position{Row: 1, Col: 1}) {
		t.Errorf("Player moved while blocked, now at %s", pos)
	}
}

func TestMoveBlockedByBoundary(t *testing.T) {
	grid := gridFromRows(t, []string{"@"})

	for _, d := range Directions {
		mustMove(t, grid, d, Blocked)
	}
}

func TestMoveBlockedByImmovableCrate(t *testing.T) {
	grid := gridFromRows(t, []string{
		"#####",
		"#@X.#",
		"#####",
	})

	// The cell beyond the immovable crate is open, but immovable crates
	// are permanent obstacles regardless of what lies beyond them
	mustMove(t, grid, Right, Blocked)

	if entityAt(t, grid, 1, 2) != EntityBlock {
		t.Error("Immovable crate moved")
	}
	if entityAt(t, grid, 1, 1) != EntityPlayer {
		t.Error("Player moved while blocked")
	}
}

func TestPushCrateOntoFloor(t *testing.T) {
	grid := gridFromRows(t, []string{
		"#####",
		"#@$.#",
		"#####",
	})

	mustMove(t, grid, Right, Moved)

	if entityAt(t, grid, 1, 1) != EntityNone {
		t.Error("Expected old player cell to be empty")
	}
	if entityAt(t, grid, 1, 2) != EntityPlayer {
		t.Error("Expected player at (1,2)")
	}
	if entityAt(t, grid, 1, 3) != EntityCrate {
		t.Error("Expected crate pushed to (1,3)")
	}
}

func TestPushCrateOntoGoal(t *testing.T) {
	grid := gridFromRows(t, []string{
		"#####",
		"#@$+#",
		"#####",
	})

	mustMove(t, grid, Right, Moved)

	if entityAt(t, grid, 1, 3) != EntityCrate {
		t.Error("Expected crate pushed onto the goal")
	}
	if !grid.IsSolved() {
		t.Error("Expected puzzle solved after covering the only goal")
	}
}

func TestPushCrateIntoWall(t *testing.T) {
	grid := gridFromRows(t, []string{
		"####",
		"#@$#",
		"####",
	})

	mustMove(t, grid, Right, Blocked)

	if entityAt(t, grid, 1, 1) != EntityPlayer {
		t.Error("Player moved while push was blocked")
	}
	if entityAt(t, grid, 1, 2) != EntityCrate {
		t.Error("Crate moved while push was blocked")
	}
}

func TestPushCrateIntoImmovableCrate(t *testing.T) {
	grid := gridFromRows(t, []string{
		"#####",
		"#@$X#",
		"#####",
	})

	mustMove(t, grid, Right, Blocked)
}

func TestPushCrateOutOfBounds(t *testing.T) {
	grid := gridFromRows(t, []string{"@$"})

	mustMove(t, grid, Right, Blocked)

	if entityAt(t, grid, 0, 1) != EntityCrate {
		t.Error("Crate moved while push was blocked at the boundary")
	}
}

func TestPushChainIntoOpenCell(t *testing.T) {
	grid := gridFromRows(t, []string{
		"#######",
		"#@$$$.#",
		"#######",
	})

	before := grid.CrateCount()
	mustMove(t, grid, Right, Moved)

	// Every crate in the chain advances exactly one cell
	if entityAt(t, grid, 1, 2) != EntityPlayer {
		t.Error("Expected player at the chain's former head")
	}
	for col := 3; col <= 5; col++ {
		if entityAt(t, grid, 1, col) != EntityCrate {
			t.Errorf("Expected crate at (1,%d) after chain push", col)
		}
	}
	if got := grid.CrateCount(); got != before {
		t.Errorf("Crate count changed from %d to %d", before, got)
	}
}

func TestPushChainBlockedByWall(t *testing.T) {
	grid := gridFromRows(t, []string{
		"######",
		"#@$$$#",
		"######",
	})

	mustMove(t, grid, Right, Blocked)

	// The whole chain stays put: no partial shift
	if entityAt(t, grid, 1, 1) != EntityPlayer {
		t.Error("Player moved while chain was blocked")
	}
	for col := 2; col <= 4; col++ {
		if entityAt(t, grid, 1, col) != EntityCrate {
			t.Errorf("Chain crate at (1,%d) moved while blocked", col)
		}
	}
}

func TestPushChainBlockedByImmovableCrate(t *testing.T) {
	grid := gridFromRows(t, []string{
		"#######",
		"#@$$X.#",
		"#######",
	})

	mustMove(t, grid, Right, Blocked)
}

func TestPushChainBlockedByBoundary(t *testing.T) {
	grid := gridFromRows(t, []string{"@$$$"})

	mustMove(t, grid, Right, Blocked)
}

func TestPushChainSpanningWholeRow(t *testing.T) {
	// Chain length is unbounded by anything but the grid itself
	grid := gridFromRows(t, []string{"@$$$$$$$$$."})

	mustMove(t, grid, Right, Moved)

	if entityAt(t, grid, 0, 1) != EntityPlayer {
		t.Error("Expected player at (0,1)")
	}
	for col := 2; col <= 10; col++ {
		if entityAt(t, grid, 0, col) != EntityCrate {
			t.Errorf("Expected crate at (0,%d)", col)
		}
	}
}

func TestPushChainVertical(t *testing.T) {
	grid := gridFromRows(t, []string{
		"#.#",
		"#$#",
		"#$#",
		"#@#",
	})

	mustMove(t, grid, Up, Moved)

	if entityAt(t, grid, 0, 1) != EntityCrate {
		t.Error("Expected crate at (0,1)")
	}
	if entityAt(t, grid, 1, 1) != EntityCrate {
		t.Error("Expected crate at (1,1)")
	}
	if entityAt(t, grid, 2, 1) != EntityPlayer {
		t.Error("Expected player at (2,1)")
	}
}

func TestMoveInvalidDirection(t *testing.T) {
	grid := gridFromRows(t, []string{"@."})

	outcome, err := grid.AttemptMove(Direction(7))
	if outcome != Invalid {
		t.Errorf("Expected Invalid outcome, got %s", outcome)
	}
	if !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("Expected ErrInvalidDirection, got %v", err)
	}

	// The grid must be untouched
	if entityAt(t, grid, 0, 0) != EntityPlayer {
		t.Error("Grid mutated by invalid move")
	}
}

func TestMoveWithoutPlayer(t *testing.T) {
	grid := gridFromRows(t, []string{"..."})

	outcome, err := grid.AttemptMove(Right)
	if outcome != Invalid {
		t.Errorf("Expected Invalid outcome, got %s", outcome)
	}
	if !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("Expected ErrInvariantViolation, got %v", err)
	}
}

func TestMovePreservesInvariants(t *testing.T) {
	grid := gridFromRows(t, []string{
		"########",
		"#@$.$X.#",
		"#.$..+.#",
		"#..+...#",
		"########",
	})

	crates := grid.CrateCount()
	moves := []Direction{Right, Right, Down, Down, Left, Up, Right, Up, Left, Down, Right, Right, Right, Up, Down}

	for i, d := range moves {
		if _, err := grid.AttemptMove(d); err != nil {
			t.Fatalf("Move %d (%s) returned error: %v", i, d, err)
		}
		if _, err := grid.PlayerPosition(); err != nil {
			t.Fatalf("After move %d (%s): %v", i, d, err)
		}
		if got := grid.CrateCount(); got != crates {
			t.Fatalf("After move %d (%s): crate count changed from %d to %d", i, d, crates, got)
		}
	}
}

func TestCanMove(t *testing.T) {
	grid := gridFromRows(t, []string{
		"#####",
		"#@$.#",
		"#.X.#",
		"#####",
	})

	if !grid.CanMove(Right) {
		t.Error("Expected push right to be possible")
	}
	if !grid.CanMove(Down) {
		t.Error("Expected step down to be possible")
	}
	if grid.CanMove(Up) {
		t.Error("Expected move up to be blocked by wall")
	}
	if grid.CanMove(Left) {
		t.Error("Expected move left to be blocked by wall")
	}
	if grid.CanMove(Direction(9)) {
		t.Error("Expected invalid direction to be impossible")
	}

	// CanMove never mutates
	if entityAt(t, grid, 1, 1) != EntityPlayer {
		t.Error("CanMove mutated the grid")
	}
}

func TestPossibleMoves(t *testing.T) {
	grid := gridFromRows(t, []string{
		"###",
		"#@#",
		"#.#",
		"###",
	})

	possible := grid.PossibleMoves()
	if len(possible) != 1 || possible[0] != Down {
		t.Errorf("Expected possible moves [down], got %v", possible)
	}
}

// A 5x1 corridor: walls at both ends, the goal one cell past the crate.
// Pushing right solves the puzzle, and replaying the same inputs after
// wandering back reproduces the exact end state.
func TestCorridorExample(t *testing.T) {
	tiles := [][]TileKind{{TileWall, TileFloor, TileFloor, TileGoal, TileWall}}
	grid, err := NewGrid(tiles)
	if err != nil {
		t.Fatalf("Failed to build corridor: %v", err)
	}
	if err := grid.SetEntity(Position{Row: 0, Col: 1}, EntityPlayer); err != nil {
		t.Fatalf("Failed to place player: %v", err)
	}
	if err := grid.SetEntity(Position{Row: 0, Col: 2}, EntityCrate); err != nil {
		t.Fatalf("Failed to place crate: %v", err)
	}

	checkSolvedState := func(t *testing.T) {
		t.Helper()
		pos, err := grid.PlayerPosition()
		if err != nil {
			t.Fatalf("PlayerPosition failed: %v", err)
		}
		if pos != (Position{Row: 0, Col: 2}) {
			t.Errorf("Expected player at (0,2), got %s", pos)
		}
		if entityAt(t, grid, 0, 3) != EntityCrate {
			t.Error("Expected crate at (0,3)")
		}
		if !grid.IsSolved() {
			t.Error("Expected puzzle solved with crate on the goal")
		}
	}

	mustMove(t, grid, Right, Moved)
	checkSolvedState(t)

	// Walk away and back: deterministic, same end state
	mustMove(t, grid, Left, Moved)
	mustMove(t, grid, Left, Blocked) // wall at column 0
	mustMove(t, grid, Right, Moved)
	checkSolvedState(t)
}
