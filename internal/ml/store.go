package ml

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
)

// Save writes the model artifact to path. The write goes to a temp file in
// the same directory and is renamed into place, so a concurrent Load never
// observes a half-written artifact.
func Save(m *Model, path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp artifact: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := gob.NewEncoder(tmp).Encode(m); err != nil {
		tmp.Close()
		return fmt.Errorf("encode model artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp artifact: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace model artifact: %w", err)
	}
	return nil
}

// Load reads a model artifact from path.
func Load(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var m Model
	if err := gob.NewDecoder(f).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}
	return &m, nil
}
