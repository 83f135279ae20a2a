// Package validate checks level JSON files in bulk and produces a
// printable report. It is the library behind the `sokoban validate`
// command. For each file it checks:
//   - JSON structure and required fields
//   - Rectangular layout matching the declared dimensions
//   - Legend characters and cell kinds
//   - Exactly one player, at least one goal, enough movable crates
package validate

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"sokoban/game/engine"
	"sokoban/game/level"
)

// Result captures the outcome of validating a single level file. Details
// carries informational lines for valid files.
type Result struct {
	File     string
	Valid    bool
	Problems []string
	Details  []string
}

// File validates one level file
func File(path string) Result {
	result := Result{
		File:  filepath.Base(path),
		Valid: true,
	}

	lvl, err := level.Load(path)
	if err != nil {
		result.Valid = false
		result.Problems = append(result.Problems, err.Error())
		return result
	}

	grid, err := lvl.Build()
	if err != nil {
		result.Valid = false
		result.Problems = append(result.Problems, err.Error())
		return result
	}

	result.Details = append(result.Details,
		fmt.Sprintf("Name: %s", lvl.Name),
		fmt.Sprintf("Grid: %dx%d", lvl.Width, lvl.Height),
		fmt.Sprintf("Goals: %d", len(grid.GoalPositions())),
		fmt.Sprintf("Movable crates: %d", grid.CountEntities(engine.EntityCrate)),
		fmt.Sprintf("Immovable crates: %d", grid.CountEntities(engine.EntityBlock)),
	)

	return result
}

// Dir validates every *.json file in the directory
func Dir(dir string) ([]Result, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	results := make([]Result, 0, len(files))
	for _, file := range files {
		results = append(results, File(file))
	}
	return results, nil
}

// Report writes a human-readable validation report and returns whether
// every file was valid
func Report(w io.Writer, results []Result) bool {
	allValid := true

	for _, result := range results {
		fmt.Fprintf(w, "\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Fprintln(w, "VALID")
			for _, detail := range result.Details {
				fmt.Fprintln(w, "  "+detail)
			}
		} else {
			allValid = false
			fmt.Fprintln(w, "INVALID")
			for _, problem := range result.Problems {
				fmt.Fprintln(w, "  - "+problem)
			}
		}
	}

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Fprintf(w, "All %d level files are valid\n", len(results))
	} else {
		fmt.Fprintln(w, "Some level files are invalid")
	}

	return allValid
}
