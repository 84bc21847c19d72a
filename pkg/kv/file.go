package kv

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// File persists all keys as a single JSON object. Every mutation rewrites
// the file through a rename so a crash never leaves a half-written state.
// Values are credentials, hence the 0600 mode.
type File struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

func OpenFile(path string) (*File, error) {
	f := &File{path: path, values: make(map[string]string)}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return f, nil
		}
		return nil, fmt.Errorf("read state file %s: %w", path, err)
	}

	if len(b) > 0 {
		if err := json.Unmarshal(b, &f.values); err != nil {
			return nil, fmt.Errorf("parse state file %s: %w", path, err)
		}
	}

	return f, nil
}

func (f *File) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	v, ok := f.values[key]
	return v, ok
}

func (f *File) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values[key] = value
	return f.flush()
}

func (f *File) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.values, key)
	return f.flush()
}

func (f *File) flush() error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}

	b, err := json.Marshal(f.values)
	if err != nil {
		return err
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}

	return os.Rename(tmp, f.path)
}
