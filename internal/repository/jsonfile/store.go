// Package jsonfile stores the task list as a pretty-printed JSON array.
//
// Writes replace the whole file and are not atomic. A file left truncated by
// a crash fails to decode and is then read as an empty list.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"argus/internal/config"
	"argus/internal/domain"
	apperrors "argus/internal/errors"
	"argus/internal/logging"
)

// Store binds Load and Persist to one storage location
type Store struct {
	cfg config.StorageConfig
}

// New creates a store for the document described by cfg
func New(cfg config.StorageConfig) *Store {
	return &Store{cfg: cfg}
}

// Path returns the document path
func (s *Store) Path() string {
	return s.cfg.Path()
}

// Load implements repository.Store
func (s *Store) Load(ctx context.Context) domain.TaskList {
	return Load(s.cfg)
}

// Persist implements repository.Store
func (s *Store) Persist(ctx context.Context, list domain.TaskList) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewStorageError("write tasks file", err)
	}
	return Persist(list, s.cfg)
}

// Close implements repository.Store
func (s *Store) Close() error {
	return nil
}

// Load reads the task document at cfg.Path(). A missing file, or one that
// fails to decode, is treated as "no tasks yet": the result is an empty
// list and the reason is only logged.
func Load(cfg config.StorageConfig) domain.TaskList {
	path := cfg.Path()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logging.Debugf("no task file at %s", path)
		} else {
			logging.Logger().Info("task file unreadable, starting empty", "path", path, "err", err)
		}
		return domain.TaskList{}
	}

	list, err := decode(data, path)
	if err != nil {
		logging.Logger().Info("task file not decodable, starting empty", "path", path, "err", err)
		return domain.TaskList{}
	}

	logging.Debugf("loaded %d tasks from %s", len(list), path)
	return list
}

// decode turns a document into a TaskList. Every failure is a DecodeError.
func decode(data []byte, source string) (domain.TaskList, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, apperrors.NewDecodeError(source, errors.New("empty document"))
	}

	if err := validateDocument(data); err != nil {
		return nil, apperrors.NewDecodeError(source, err)
	}

	var list domain.TaskList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, apperrors.NewDecodeError(source, err)
	}

	seen := make(map[string]int, len(list))
	for i, task := range list {
		if first, dup := seen[task.ID]; dup {
			return nil, apperrors.NewDecodeError(source,
				fmt.Errorf("duplicate id %q at positions %d and %d", task.ID, first+1, i+1))
		}
		seen[task.ID] = i
	}

	return list.Clone(), nil
}

// encode renders list as an indented JSON array with a trailing newline.
// A nil list encodes as []. HTML characters are written as-is.
func encode(list domain.TaskList) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(list.Clone()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Persist overwrites the document at cfg.Path() with list, creating the
// storage directory when needed.
func Persist(list domain.TaskList, cfg config.StorageConfig) error {
	path := cfg.Path()

	data, err := encode(list)
	if err != nil {
		return apperrors.NewStorageError("encode tasks", err)
	}

	if err := os.MkdirAll(cfg.Dir, cfg.Perm()); err != nil {
		return apperrors.NewStorageError("create storage directory", err).WithContext("path", cfg.Dir)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return apperrors.NewStorageError("write tasks file", err).WithContext("path", path)
	}

	logging.Debugf("persisted %d tasks to %s", len(list), path)
	return nil
}
