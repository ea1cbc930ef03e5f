// Package pkg provides small reusable utilities for strata.
package pkg

import (
	"encoding/gob"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// DefaultSpillDir is used when no spill directory is configured.
var DefaultSpillDir = filepath.Join(os.TempDir(), "strata-spill")

// FileSpill is an append-only, gob-encoded sequence of items of type T kept on
// disk. It is safe for concurrent use; a batch is written contiguously.
type FileSpill[T any] interface {
	Len() uint64
	Path() string
	Append(item T) error
	AppendBatch(items []T) error
	Get(index uint64) (T, error)
	Range(f func(index uint64, item T) error) error
	Close() error
	// Remove closes the spill and deletes its file.
	Remove() error
}

type fileSpill[T any] struct {
	path    string
	file    *os.File
	encoder *gob.Encoder
	mu      sync.Mutex
	length  uint64
	closed  bool
}

// NewFileSpill creates a FileSpill backed by a new temporary file in dir.
// An empty dir uses DefaultSpillDir.
func NewFileSpill[T any](dir string) (FileSpill[T], error) {
	if dir == "" {
		dir = DefaultSpillDir
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		slog.Error("failed to create spill directory", "path", dir, "error", err)
		return nil, fmt.Errorf("failed to create spill directory: %w", err)
	}

	file, err := os.CreateTemp(dir, "spill-*.gob")
	if err != nil {
		slog.Error("failed to create spill file", "path", dir, "error", err)
		return nil, fmt.Errorf("failed to create spill file: %w", err)
	}

	slog.Debug("created filespill", "path", file.Name())

	return &fileSpill[T]{
		path:    file.Name(),
		file:    file,
		encoder: gob.NewEncoder(file),
	}, nil
}

// Path implements FileSpill.
func (f *fileSpill[T]) Path() string {
	return f.path
}

// Len implements FileSpill.
func (f *fileSpill[T]) Len() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.length
}

// Append implements FileSpill.
func (f *fileSpill[T]) Append(item T) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.encode(item)
}

// AppendBatch implements FileSpill. Items of one batch are never interleaved
// with items appended concurrently.
func (f *fileSpill[T]) AppendBatch(items []T) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, item := range items {
		if err := f.encode(item); err != nil {
			return err
		}
	}

	return nil
}

func (f *fileSpill[T]) encode(item T) error {
	if f.closed {
		return errors.New("filespill is closed")
	}

	if err := f.encoder.Encode(item); err != nil {
		slog.Error("failed to encode item", "path", f.path, "index", f.length, "error", err)
		return fmt.Errorf("failed to encode item: %w", err)
	}

	f.length++

	return nil
}

// Get implements FileSpill. It decodes from the start of the file.
func (f *fileSpill[T]) Get(index uint64) (T, error) {
	var (
		found T
		zero  T
	)

	f.mu.Lock()
	length := f.length
	f.mu.Unlock()

	if index >= length {
		slog.Warn("get index out of bounds", "path", f.path, "index", index, "length", length)
		return zero, fmt.Errorf("index %d out of bounds (length %d)", index, length)
	}

	errStop := errors.New("stop")

	err := f.Range(func(i uint64, item T) error {
		if i == index {
			found = item
			return errStop
		}

		return nil
	})
	if err != nil && !errors.Is(err, errStop) {
		return zero, err
	}

	return found, nil
}

// Range implements FileSpill.
func (f *fileSpill[T]) Range(fn func(index uint64, item T) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	file, err := os.Open(f.path)
	if err != nil {
		slog.Error("failed to open file for range", "path", f.path, "error", err)
		return fmt.Errorf("failed to open file: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close file", "path", f.path, "error", err)
		}
	}()

	decoder := gob.NewDecoder(file)

	for i := range f.length {
		// A fresh value per item so maps and slices do not leak between items.
		var item T
		if err := decoder.Decode(&item); err != nil {
			slog.Error("failed to decode item during range", "path", f.path, "index", i, "error", err)
			return fmt.Errorf("failed to decode item at index %d: %w", i, err)
		}

		if err := fn(i, item); err != nil {
			return err
		}
	}

	slog.Debug("range completed", "path", f.path, "count", f.length)

	return nil
}

// Close implements FileSpill. Items stay readable after Close.
func (f *fileSpill[T]) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.close()
}

func (f *fileSpill[T]) close() error {
	if f.closed {
		return nil
	}

	f.closed = true

	if err := f.file.Close(); err != nil {
		slog.Error("failed to close file", "path", f.path, "error", err)
		return err
	}

	slog.Debug("closed filespill", "path", f.path, "length", f.length)

	return nil
}

// Remove implements FileSpill.
func (f *fileSpill[T]) Remove() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.close(); err != nil {
		return err
	}

	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove spill file: %w", err)
	}

	return nil
}
