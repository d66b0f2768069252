package services

import (
	"context"

	"argus/internal/domain"
)

// TaskService defines the operations a user can perform on the task list.
// Positions are 1-based into the full list, removed tasks included.
type TaskService interface {
	// List returns a snapshot of the full list, removed tasks included
	List() domain.TaskList
	// Add validates and appends a new task, then persists the list
	Add(ctx context.Context, description string) (domain.Task, error)
	// Finish toggles the done flag of a task, then persists the list
	Finish(ctx context.Context, position int) (domain.Task, error)
	// Remove hides a task, then persists the list
	Remove(ctx context.Context, position int) (domain.Task, error)
	// Stats summarises the current list
	Stats() domain.Stats
}
