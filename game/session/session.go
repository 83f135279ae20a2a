package session

import (
	"fmt"
	"time"

	"sokoban/game/engine"
	"sokoban/game/level"
)

// MoveResult is what a resolved move reports back to the caller
type MoveResult struct {
	Outcome    engine.MoveOutcome `json:"outcome"`
	Solved     bool               `json:"solved"`
	MoveNumber int                `json:"move_number"`
}

// MoveRecord is one entry in the session's cumulative move history
type MoveRecord struct {
	Direction  engine.Direction   `json:"direction"`
	From       engine.Position    `json:"from"`
	To         engine.Position    `json:"to"`
	Outcome    engine.MoveOutcome `json:"outcome"`
	Solved     bool               `json:"solved"`
	MoveNumber int                `json:"move_number"`
}

// Session is the live game instance bound to one loaded level. It owns
// its grid exclusively; nothing else mutates the entity layer.
type Session struct {
	lvl       *level.Level
	grid      *engine.Grid
	initial   [][]engine.EntityKind
	history   []MoveRecord
	total     int // attempts across resets
	moves     int // successful moves since the last reset
	solved    bool
	createdAt time.Time
}

// New validates the level, builds its grid and snapshots the initial
// entity layer. A level that fails validation produces no session.
func New(lvl *level.Level) (*Session, error) {
	if lvl == nil {
		return nil, fmt.Errorf("level cannot be nil")
	}

	grid, err := lvl.Build()
	if err != nil {
		return nil, err
	}

	return &Session{
		lvl:       lvl,
		grid:      grid,
		initial:   grid.EntitySnapshot(),
		solved:    grid.IsSolved(),
		createdAt: time.Now(),
	}, nil
}

// Move resolves one requested direction against the grid, runs the win
// detector after a successful move, and records the attempt in the
// history. Errors indicate integration bugs, never gameplay outcomes.
func (s *Session) Move(d engine.Direction) (MoveResult, error) {
	from, err := s.grid.PlayerPosition()
	if err != nil {
		return MoveResult{Outcome: engine.Invalid}, err
	}

	outcome, err := s.grid.AttemptMove(d)
	if err != nil {
		return MoveResult{Outcome: outcome}, err
	}

	if outcome == engine.Moved {
		s.moves++
		s.solved = s.grid.IsSolved()
	}

	to := from
	if pos, perr := s.grid.PlayerPosition(); perr == nil {
		to = pos
	}

	s.total++
	s.history = append(s.history, MoveRecord{
		Direction:  d,
		From:       from,
		To:         to,
		Outcome:    outcome,
		Solved:     s.solved,
		MoveNumber: s.total,
	})

	return MoveResult{Outcome: outcome, Solved: s.solved, MoveNumber: s.total}, nil
}

// Reset restores the entity layer from the initial snapshot. The tile
// layer is untouched since it never mutates. The cumulative history and
// attempt total are preserved; the per-attempt move counter starts over.
func (s *Session) Reset() error {
	if err := s.grid.RestoreEntities(s.initial); err != nil {
		return fmt.Errorf("failed to restore initial entities: %w", err)
	}
	s.moves = 0
	s.solved = s.grid.IsSolved()
	return nil
}

// Grid returns the session's grid for rendering
func (s *Session) Grid() *engine.Grid {
	return s.grid
}

// Level returns the level this session was created from
func (s *Session) Level() *level.Level {
	return s.lvl
}

// Solved reports whether every goal is currently covered
func (s *Session) Solved() bool {
	return s.solved
}

// Moves returns the number of successful moves since the last reset
func (s *Session) Moves() int {
	return s.moves
}

// TotalMoves returns the number of attempted moves across all resets
func (s *Session) TotalMoves() int {
	return s.total
}

// History returns a copy of the cumulative move history
func (s *Session) History() []MoveRecord {
	history := make([]MoveRecord, len(s.history))
	copy(history, s.history)
	return history
}

// CreatedAt returns when the session was created
func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}
