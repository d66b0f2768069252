// Package repository connects the in-memory TaskList to its persisted form.
package repository

import (
	"context"
	"fmt"

	"argus/internal/config"
	"argus/internal/domain"
	"argus/internal/repository/jsonfile"
	"argus/internal/repository/sqlite"
)

// Store loads and persists the whole TaskList.
//
// Load never fails: a missing or unreadable document yields an empty list.
// Persist replaces the stored document with list in full.
type Store interface {
	Load(ctx context.Context) domain.TaskList
	Persist(ctx context.Context, list domain.TaskList) error
	Close() error
}

// New creates the store selected by cfg.Storage.Backend
func New(cfg *config.Config) (Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendJSON, "":
		return jsonfile.New(cfg.Storage), nil
	case config.BackendSQLite:
		repo, err := sqlite.NewWithConfig(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize sqlite store: %w", err)
		}
		return repo, nil
	default:
		return nil, &config.ConfigError{Field: "storage.backend", Message: "unsupported backend " + cfg.Storage.Backend}
	}
}
