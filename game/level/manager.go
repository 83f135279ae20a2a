package level

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Info summarizes an available level for listing
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	File        string `json:"file"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Goals       int    `json:"goals"`
}

// Manager loads and caches levels from a directory
type Manager struct {
	dir    string
	levels map[string]*Level
	mu     sync.RWMutex
}

// NewManager creates a level manager over the given directory
func NewManager(dir string) (*Manager, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, fmt.Errorf("levels directory does not exist: %s", dir)
	}

	return &Manager{
		dir:    dir,
		levels: make(map[string]*Level),
	}, nil
}

// Dir returns the directory this manager reads from
func (m *Manager) Dir() string {
	return m.dir
}

// Load returns the level with the given name, reading and validating it
// on first use and serving the cached copy afterwards
func (m *Manager) Load(name string) (*Level, error) {
	m.mu.RLock()
	if lvl, exists := m.levels[name]; exists {
		m.mu.RUnlock()
		return lvl, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring the write lock
	if lvl, exists := m.levels[name]; exists {
		return lvl, nil
	}

	lvl, err := LoadByName(m.dir, name)
	if err != nil {
		return nil, err
	}

	m.levels[name] = lvl
	return lvl, nil
}

// List returns information about every level file in the directory,
// sorted by file name. Files that fail to parse are skipped. Listing
// only decodes the files; it does not validate them or touch the cache.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read levels directory: %w", err)
	}

	var infos []Info
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(m.dir, entry.Name()))
		if err != nil {
			continue
		}

		var lvl Level
		if err := json.Unmarshal(data, &lvl); err != nil {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".json")

		infos = append(infos, Info{
			Name:        lvl.Name,
			Description: lvl.Description,
			File:        name,
			Width:       lvl.Width,
			Height:      lvl.Height,
			Goals:       lvl.GoalCount(),
		})
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].File < infos[j].File })
	return infos, nil
}
