package services

import (
	"context"
	"sync"

	"argus/internal/config"
	"argus/internal/domain"
	"argus/internal/errors"
	"argus/internal/logging"
	"argus/internal/repository"
	"argus/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	mu        sync.Mutex
	store     repository.Store
	list      domain.TaskList
	validator *validation.DescriptionValidator
}

// NewTaskService loads the list from store once and serves it from memory
func NewTaskService(ctx context.Context, store repository.Store, cfg *config.Config) TaskService {
	list := store.Load(ctx)
	logging.Debugf("task service started with %d tasks", len(list))

	validator := validation.NewDescriptionValidator()
	if cfg != nil {
		validator = validation.NewDescriptionValidatorWithConfig(cfg)
	}

	return &taskServiceImpl{
		store:     store,
		list:      list.Clone(),
		validator: validator,
	}
}

// List returns a copy of the full list
func (s *taskServiceImpl) List() domain.TaskList {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Clone()
}

// Add creates a task from a trimmed, validated description
func (s *taskServiceImpl) Add(ctx context.Context, description string) (domain.Task, error) {
	trimmed, err := s.validator.GetValidDescription(description)
	if err != nil {
		return domain.Task{}, errors.NewValidationError("invalid description", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.list.Append(trimmed)
	if err != nil {
		return domain.Task{}, err
	}
	logging.Debugln("task added", "id", task.ID, "position", len(s.list))

	return task, s.persist(ctx)
}

// Finish toggles the done flag of the task at position
func (s *taskServiceImpl) Finish(ctx context.Context, position int) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.list.ToggleDone(position); err != nil {
		return domain.Task{}, err
	}
	task, _ := s.list.At(position)
	logging.Debugln("task toggled", "position", position, "done", task.Done)

	return task, s.persist(ctx)
}

// Remove hides the task at position; its position stays reserved
func (s *taskServiceImpl) Remove(ctx context.Context, position int) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.list.MarkRemoved(position); err != nil {
		return domain.Task{}, err
	}
	task, _ := s.list.At(position)
	logging.Debugln("task removed", "position", position)

	return task, s.persist(ctx)
}

// Stats summarises the current list
func (s *taskServiceImpl) Stats() domain.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Stats()
}

// persist writes the list; on failure the in-memory change is kept
func (s *taskServiceImpl) persist(ctx context.Context) error {
	if err := s.store.Persist(ctx, s.list.Clone()); err != nil {
		appErr, ok := errors.AsAppError(err)
		if !ok || !appErr.IsType(errors.ErrorTypeStorage) {
			appErr = errors.NewStorageError("persist tasks", err)
		}
		if path, ok := appErr.GetContext("path"); ok {
			logging.Error("failed to persist tasks", "path", path, "err", err)
		} else {
			logging.Error("failed to persist tasks", "err", err)
		}
		return appErr
	}
	return nil
}
