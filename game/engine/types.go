package engine

import "fmt"

// TileKind represents the static layer of a grid cell. The tile layer is
// fixed for the lifetime of a level.
type TileKind uint8

const (
	TileFloor TileKind = iota
	TileWall
	TileGoal
)

// String returns the string representation of the tile kind
func (t TileKind) String() string {
	switch t {
	case TileFloor:
		return "floor"
	case TileWall:
		return "wall"
	case TileGoal:
		return "goal"
	default:
		return "unknown"
	}
}

// EntityKind represents the dynamic layer of a grid cell. Every cell
// holds exactly one entity kind at any time.
type EntityKind uint8

const (
	EntityNone EntityKind = iota
	EntityPlayer
	EntityCrate // movable crate, the only entity that can be pushed
	EntityBlock // immovable crate, a permanent obstacle
)

// String returns the string representation of the entity kind
func (e EntityKind) String() string {
	switch e {
	case EntityNone:
		return "none"
	case EntityPlayer:
		return "player"
	case EntityCrate:
		return "crate"
	case EntityBlock:
		return "block"
	default:
		return "unknown"
	}
}

// IsCrate reports whether the entity is a crate of either kind
func (e EntityKind) IsCrate() bool {
	return e == EntityCrate || e == EntityBlock
}

// Position represents row,col coordinates on the grid. Row increases
// downward, Col increases to the right.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Step returns the position one cell away in the given direction
func (p Position) Step(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// String returns the position formatted as (row,col)
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction represents one of the four cardinal movement directions
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists all valid directions in a stable order
var Directions = []Direction{Up, Down, Left, Right}

// Delta returns the row,col offset for one step in this direction.
// Up decreases Row, Down increases Row.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Valid reports whether the direction is one of the four unit vectors
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// ParseDirection converts a direction name to a Direction
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// MoveOutcome is the three-way result of an attempted move
type MoveOutcome int

const (
	// Moved means the move was legal and the entity layer was mutated
	Moved MoveOutcome = iota
	// Blocked means the move was refused by a wall, an immovable crate,
	// the grid boundary, or a crate chain with no room behind it. The
	// grid is untouched. Blocked is a normal gameplay result, not an error.
	Blocked
	// Invalid means the request itself was malformed (caller bug)
	Invalid
)

// String returns the string representation of the move outcome
func (o MoveOutcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Blocked:
		return "blocked"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}
