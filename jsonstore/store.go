// Package jsonstore persists a list of values as an indented JSON array in a
// single file.
//
// The whole file is rewritten on every Write. A file that cannot be decoded is
// copied aside to a backup file and read as an empty list, so that a corrupt
// file never prevents the application from starting.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/workbook"
)

// BackupPrefix is prepended to the file name to build the backup file name.
const BackupPrefix = "backup_"

// Store reads and writes a []T in a JSON file.
//
// A Store is not safe for concurrent use, and nothing prevents two processes
// from writing the same file.
type Store[T any] struct {
	path string
}

// Open returns a Store backed by an existing file.
func Open[T any](path string) (*Store[T], error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: store path should not be empty", workbook.ErrInvalidArgument)
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: store file %q does not exist", workbook.ErrInvalidArgument, path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open store %q: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: store path %q is a directory", workbook.ErrInvalidArgument, path)
	}
	return &Store[T]{path: path}, nil
}

// Create is like Open but creates the file, with an empty list, and its
// parent directories if they are missing.
func Create[T any](path string) (*Store[T], error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: store path should not be empty", workbook.ErrInvalidArgument)
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("could not create directory for store %q: %w", path, err)
		}
		s := &Store[T]{path: path}
		if err := s.Write(nil); err != nil {
			return nil, err
		}
		log.Printf("created empty store %q", path)
		return s, nil
	}
	return Open[T](path)
}

// Path returns the path of the file.
func (s *Store[T]) Path() string { return s.path }

// BackupPath returns the path where a corrupt file is copied.
func (s *Store[T]) BackupPath() string {
	dir, name := filepath.Split(s.path)
	return filepath.Join(dir, BackupPrefix+name)
}

// Write replaces the file content with items.
func (s *Store[T]) Write(items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode %q: %w", s.path, err)
	}
	if err := os.WriteFile(s.path, append(data, '\n'), 0644); err != nil {
		log.Printf("cannot write store %q: %v", s.path, err)
		return fmt.Errorf("cannot write %q: %w", s.path, err)
	}
	return nil
}

// Read returns the items in the file, in order.
//
// A missing file reads as an empty list. A file that cannot be decoded,
// including one holding a value that fails validation, is copied to
// BackupPath and also reads as an empty list.
func (s *Store[T]) Read() ([]T, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", s.path, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("store %q is corrupt, saving its content to %q: %v", s.path, s.BackupPath(), err)
		s.backup(data)
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Update reads the items, applies f and writes the result back.
// Nothing is written if f fails.
func (s *Store[T]) Update(f func([]T) ([]T, error)) error {
	items, err := s.Read()
	if err != nil {
		return err
	}
	items, err = f(items)
	if err != nil {
		return err
	}
	return s.Write(items)
}

func (s *Store[T]) backup(data []byte) {
	if err := os.WriteFile(s.BackupPath(), data, 0644); err != nil {
		log.Printf("cannot backup %q: %v", s.path, err)
	}
}
