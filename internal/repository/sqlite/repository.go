// Package sqlite is an alternative task store keeping the list in a SQLite
// database. Persist replaces the table contents in a single transaction.
package sqlite

import (
	"context"
	"database/sql"
	"os"

	"argus/internal/config"
	"argus/internal/domain"
	"argus/internal/logging"
	"argus/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository stores a TaskList in SQLite
type Repository struct {
	db   *sql.DB
	path string
}

// New opens (creating if needed) the database at dbPath and migrates it
func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, HandleDatabaseError("open database", err)
	}
	// one connection keeps ":memory:" databases shared across calls
	db.SetMaxOpenConns(1)

	if err := migrations.RunMigrations(context.Background(), db); err != nil {
		db.Close()
		return nil, HandleDatabaseError("run migrations", err)
	}

	return &Repository{db: db, path: dbPath}, nil
}

// NewWithConfig creates the storage directory and opens the database at cfg.Path()
func NewWithConfig(cfg config.StorageConfig) (*Repository, error) {
	if err := os.MkdirAll(cfg.Dir, cfg.Perm()); err != nil {
		return nil, HandleDatabaseError("create storage directory", err)
	}
	return New(cfg.Path())
}

// Close closes the database connection
func (r *Repository) Close() error {
	return r.db.Close()
}

// Load returns the stored tasks ordered by position. Query failures are
// logged and yield an empty list, matching the JSON store.
func (r *Repository) Load(ctx context.Context) domain.TaskList {
	tasks, err := r.ListTasks(ctx)
	if err != nil {
		logging.Logger().Info("task database unreadable, starting empty", "path", r.path, "err", err)
		return domain.TaskList{}
	}
	logging.Debugf("loaded %d tasks from %s", len(tasks), r.path)
	return domain.TaskList(tasks)
}

// ListTasks retrieves all tasks ordered by position
func (r *Repository) ListTasks(ctx context.Context) ([]domain.Task, error) {
	query := `
	SELECT id, description, done, creation_date, removed
	FROM tasks
	ORDER BY position ASC`

	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// Persist replaces the stored tasks with list
func (r *Repository) Persist(ctx context.Context, list domain.TaskList) error {
	err := WithTx(ctx, r.db, "persist tasks", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
			return err
		}

		stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO tasks (position, id, description, done, creation_date, removed)
		VALUES (?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, task := range list {
			if _, err := stmt.ExecContext(ctx, i+1, task.ID, task.Description, task.Done, task.CreationDate, task.Removed); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logging.Debugf("persisted %d tasks to %s", len(list), r.path)
	return nil
}
