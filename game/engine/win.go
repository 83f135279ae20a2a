package engine

// IsSolved reports whether every goal tile is currently covered by a
// movable crate. It never mutates the grid and runs in O(goals).
func (g *Grid) IsSolved() bool {
	for _, goal := range g.goals {
		if g.entities[goal.Row][goal.Col] != EntityCrate {
			return false
		}
	}
	return true
}

// RemainingGoals returns the number of goal tiles not yet covered by a
// movable crate
func (g *Grid) RemainingGoals() int {
	remaining := 0
	for _, goal := range g.goals {
		if g.entities[goal.Row][goal.Col] != EntityCrate {
			remaining++
		}
	}
	return remaining
}
