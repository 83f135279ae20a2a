package level

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads and validates a level from a JSON file
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrLevelNotFound, path)
		}
		return nil, fmt.Errorf("failed to read level file %s: %w", path, err)
	}

	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("failed to parse level file %s: %w", path, err)
	}

	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("level file %s: %w", path, err)
	}

	return &lvl, nil
}

// LoadByName loads a level by name from the given directory, appending
// the .json extension when missing
func LoadByName(dir, name string) (*Level, error) {
	filename := name
	if !strings.HasSuffix(filename, ".json") {
		filename = name + ".json"
	}
	return Load(filepath.Join(dir, filename))
}
