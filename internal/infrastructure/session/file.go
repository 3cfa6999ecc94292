package session

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FileBackend is a durable storage area backed by a single JSON file,
// the desktop/CLI equivalent of the web client's localStorage entry.
type FileBackend struct {
	path string
}

func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

func (f *FileBackend) Read(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (f *FileBackend) Write(_ context.Context, data []byte) error {
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	// 0600: the record carries a bearer token.
	return os.WriteFile(f.path, data, 0o600)
}

func (f *FileBackend) Delete(_ context.Context) error {
	err := os.Remove(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
