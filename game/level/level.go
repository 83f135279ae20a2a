package level

import (
	"errors"
	"fmt"

	"sokoban/game/engine"
)

var (
	ErrLevelNotFound = errors.New("level not found")
	ErrInvalidLevel  = errors.New("invalid level")
)

// Grid dimension limits enforced at load time
const (
	MinDimension = 1
	MaxDimension = 64
)

// Cell kind names allowed as legend values
const (
	KindFloor        = "floor"
	KindWall         = "wall"
	KindGoal         = "goal"
	KindPlayer       = "player"
	KindCrate        = "crate"
	KindBlock        = "block"
	KindCrateOnGoal  = "crate_on_goal"
	KindPlayerOnGoal = "player_on_goal"
)

// Level is the on-disk level description: a named rectangular layout of
// characters plus an optional legend overriding the default glyph set.
type Level struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Width       int               `json:"width"`
	Height      int               `json:"height"`
	Layout      []string          `json:"layout"`
	Legend      map[string]string `json:"legend,omitempty"`
}

// DefaultLegend returns the canonical character set for level layouts
func DefaultLegend() map[string]string {
	return map[string]string{
		"#": KindWall,
		".": KindFloor,
		" ": KindFloor,
		"+": KindGoal,
		"@": KindPlayer,
		"$": KindCrate,
		"X": KindBlock,
		"*": KindCrateOnGoal,
		"!": KindPlayerOnGoal,
	}
}

// cell is the decoded meaning of one layout character
type cell struct {
	tile   engine.TileKind
	entity engine.EntityKind
}

// cellForKind maps a legend value to its tile and entity layers
func cellForKind(kind string) (cell, error) {
	switch kind {
	case KindFloor:
		return cell{engine.TileFloor, engine.EntityNone}, nil
	case KindWall:
		return cell{engine.TileWall, engine.EntityNone}, nil
	case KindGoal:
		return cell{engine.TileGoal, engine.EntityNone}, nil
	case KindPlayer:
		return cell{engine.TileFloor, engine.EntityPlayer}, nil
	case KindCrate:
		return cell{engine.TileFloor, engine.EntityCrate}, nil
	case KindBlock:
		return cell{engine.TileFloor, engine.EntityBlock}, nil
	case KindCrateOnGoal:
		return cell{engine.TileGoal, engine.EntityCrate}, nil
	case KindPlayerOnGoal:
		return cell{engine.TileGoal, engine.EntityPlayer}, nil
	default:
		return cell{}, fmt.Errorf("unknown cell kind %q", kind)
	}
}

// legend returns the effective legend for this level
func (l *Level) legend() map[string]string {
	if len(l.Legend) == 0 {
		return DefaultLegend()
	}
	return l.Legend
}

// Validate checks the level description and reports the first violation
// found, wrapped in ErrInvalidLevel. A level that validates cleanly is
// guaranteed to build into a playable grid.
func (l *Level) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidLevel)
	}

	if l.Width < MinDimension || l.Width > MaxDimension {
		return fmt.Errorf("%w: width must be between %d and %d, got %d", ErrInvalidLevel, MinDimension, MaxDimension, l.Width)
	}
	if l.Height < MinDimension || l.Height > MaxDimension {
		return fmt.Errorf("%w: height must be between %d and %d, got %d", ErrInvalidLevel, MinDimension, MaxDimension, l.Height)
	}

	if len(l.Layout) != l.Height {
		return fmt.Errorf("%w: layout must have %d rows to match height, got %d", ErrInvalidLevel, l.Height, len(l.Layout))
	}

	legend := l.legend()
	for char, kind := range legend {
		if len([]rune(char)) != 1 {
			return fmt.Errorf("%w: legend key %q must be a single character", ErrInvalidLevel, char)
		}
		if _, err := cellForKind(kind); err != nil {
			return fmt.Errorf("%w: legend[%q]: %v", ErrInvalidLevel, char, err)
		}
	}

	players := 0
	goals := 0
	crates := 0

	for row, line := range l.Layout {
		runes := []rune(line)
		if len(runes) != l.Width {
			return fmt.Errorf("%w: row %d must have %d characters to match width, got %d", ErrInvalidLevel, row+1, l.Width, len(runes))
		}

		for col, ch := range runes {
			kind, ok := legend[string(ch)]
			if !ok {
				return fmt.Errorf("%w: unknown character %q at row %d, col %d", ErrInvalidLevel, string(ch), row+1, col+1)
			}

			c, _ := cellForKind(kind)
			if c.entity == engine.EntityPlayer {
				players++
			}
			if c.entity == engine.EntityCrate {
				crates++
			}
			if c.tile == engine.TileGoal {
				goals++
			}
		}
	}

	if players == 0 {
		return fmt.Errorf("%w: layout must contain exactly one player, found none", ErrInvalidLevel)
	}
	if players > 1 {
		return fmt.Errorf("%w: layout must contain exactly one player, found %d", ErrInvalidLevel, players)
	}
	if goals == 0 {
		return fmt.Errorf("%w: layout must contain at least one goal", ErrInvalidLevel)
	}
	if crates < goals {
		return fmt.Errorf("%w: %d goals but only %d movable crates, level cannot be solved", ErrInvalidLevel, goals, crates)
	}

	return nil
}

// Build compiles the level into an engine grid: the tile layer from the
// layout, then the initial entities placed on top. The level is validated
// first so a returned grid always satisfies the engine invariants.
func (l *Level) Build() (*engine.Grid, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	legend := l.legend()
	tiles := make([][]engine.TileKind, l.Height)
	for row, line := range l.Layout {
		tiles[row] = make([]engine.TileKind, l.Width)
		for col, ch := range []rune(line) {
			c, _ := cellForKind(legend[string(ch)])
			tiles[row][col] = c.tile
		}
	}

	grid, err := engine.NewGrid(tiles)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLevel, err)
	}

	for row, line := range l.Layout {
		for col, ch := range []rune(line) {
			c, _ := cellForKind(legend[string(ch)])
			if c.entity == engine.EntityNone {
				continue
			}
			pos := engine.Position{Row: row, Col: col}
			if err := grid.SetEntity(pos, c.entity); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidLevel, err)
			}
		}
	}

	return grid, nil
}

// GoalCount returns the number of goal cells in the layout. The level
// must have been validated first.
func (l *Level) GoalCount() int {
	legend := l.legend()
	count := 0
	for _, line := range l.Layout {
		for _, ch := range line {
			if kind, ok := legend[string(ch)]; ok {
				if c, err := cellForKind(kind); err == nil && c.tile == engine.TileGoal {
					count++
				}
			}
		}
	}
	return count
}
