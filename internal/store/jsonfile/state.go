// Package jsonfile persists the whole store state as a single JSON blob
// on disk, written through on every mutation and loaded once at startup.
package jsonfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/hibi-cli/hibi/internal/core/task"
)

// StateStore implements task.StateStore using one JSON file.
type StateStore struct {
	path string
	mu   sync.Mutex
}

// NewStateStore creates a state store backed by the given file path.
func NewStateStore(path string) *StateStore {
	return &StateStore{path: path}
}

// Load reads the state blob from disk.
// A missing or empty file yields an empty state with no error; a corrupt
// blob returns the unmarshal error so the caller can decide the fallback.
func (s *StateStore) Load() (task.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return task.State{}, nil
		}
		return task.State{}, err
	}

	if len(data) == 0 {
		return task.State{}, nil
	}

	var state task.State
	if err := json.Unmarshal(data, &state); err != nil {
		return task.State{}, err
	}

	return state, nil
}

// Save writes the state blob to disk atomically.
func (s *StateStore) Save(state task.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tmp, s.path)
}
