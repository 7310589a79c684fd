package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const fileVersion = 1

// document is the on-disk envelope shared by every file in the data dir.
type document[T any] struct {
	Version int       `json:"version"`
	SavedAt time.Time `json:"saved_at"`
	Data    T         `json:"data"`
}

func dataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	xdgData := os.Getenv("XDG_DATA_HOME")
	if xdgData == "" {
		xdgData = filepath.Join(home, ".local", "share")
	}

	dir := filepath.Join(xdgData, "toastee")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	return dir, nil
}

func dataPath(name string) (string, error) {
	dir, err := dataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

func save[T any](name string, data T) error {
	path, err := dataPath(name)
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(document[T]{
		Version: fileVersion,
		SavedAt: time.Now(),
		Data:    data,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}

	return writeAtomic(path, encoded)
}

// load reads a document written by save. A missing file yields the zero
// value and no error.
func load[T any](name string) (T, error) {
	var zero T
	path, err := dataPath(name)
	if err != nil {
		return zero, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return zero, nil
		}
		return zero, fmt.Errorf("failed to read %s: %w", name, err)
	}

	var doc document[T]
	if err := json.Unmarshal(raw, &doc); err != nil {
		return zero, fmt.Errorf("failed to unmarshal %s: %w", name, err)
	}
	if doc.Version != fileVersion {
		return zero, fmt.Errorf("unsupported %s version: %d", name, doc.Version)
	}

	return doc.Data, nil
}

func writeAtomic(path string, data []byte) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
