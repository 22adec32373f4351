package kvstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const fileExt = ".json"

// FS implements Provider with one file per key under a data directory.
type FS struct {
	root string // absolute path to the data directory
}

// NewFS creates a new FS provider rooted at the given directory.
// The directory must already exist.
func NewFS(root string) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("kvstore: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("kvstore: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("kvstore: root is not a directory: %s", abs)
	}
	return &FS{root: abs}, nil
}

// keyPath maps a key to a file path, rejecting anything that would
// escape the data directory.
func (f *FS) keyPath(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("kvstore: empty key")
	}
	cleaned := filepath.Clean(key)
	if filepath.IsAbs(cleaned) || strings.Contains(cleaned, "..") || strings.ContainsRune(cleaned, os.PathSeparator) {
		return "", fmt.Errorf("kvstore: invalid key: %s", key)
	}
	return filepath.Join(f.root, cleaned+fileExt), nil
}

// Get returns the raw bytes stored under key.
func (f *FS) Get(key string) ([]byte, error) {
	path, err := f.keyPath(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("kvstore: read %s: %w", key, err)
	}
	return data, nil
}

// Set atomically writes value: tmp file → fsync → rename.
func (f *FS) Set(key string, value []byte) error {
	path, err := f.keyPath(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(f.root, ".doko-tmp-*")
	if err != nil {
		return fmt.Errorf("kvstore: create temp: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(value); err != nil {
		return fmt.Errorf("kvstore: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("kvstore: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("kvstore: close temp: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("kvstore: rename: %w", err)
	}
	success = true
	return nil
}

// Remove deletes the file backing key, if present.
func (f *FS) Remove(key string) error {
	path, err := f.keyPath(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("kvstore: remove %s: %w", key, err)
	}
	return nil
}

// Keys lists every stored key.
func (f *FS) Keys() ([]string, error) {
	var out []string
	err := filepath.WalkDir(f.root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), fileExt) {
			return nil
		}
		out = append(out, strings.TrimSuffix(d.Name(), fileExt))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("kvstore: keys: %w", err)
	}
	return out, nil
}
