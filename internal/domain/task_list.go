package domain

import (
	"iter"
	"strconv"
	"strings"

	"argus/internal/errors"
)

// TaskList is the full ordered collection of tasks, removed ones included.
// Positions are 1-based indices into this slice and never shift: removal
// only sets a flag.
type TaskList []Task

// Stats summarises a TaskList.
type Stats struct {
	Total   int
	Visible int
	Done    int
	Removed int
}

// Len returns the number of tasks, removed ones included.
func (l TaskList) Len() int {
	return len(l)
}

// At returns the task at a 1-based position.
func (l TaskList) At(position int) (Task, error) {
	if err := l.checkPosition(position); err != nil {
		return Task{}, err
	}
	return l[position-1], nil
}

// Append adds a new task to the end of the list. The description is stored
// as given; it must contain something other than whitespace.
func (l *TaskList) Append(description string) (Task, error) {
	if strings.TrimSpace(description) == "" {
		return Task{}, errors.NewValidationError("description cannot be empty", nil)
	}

	task := NewTask(description)
	for l.hasID(task.ID) {
		task.ID = newID()
	}

	*l = append(*l, task)
	return task, nil
}

// ToggleDone flips the done flag of the task at a 1-based position.
func (l TaskList) ToggleDone(position int) error {
	if err := l.checkPosition(position); err != nil {
		return err
	}
	l[position-1].Done = !l[position-1].Done
	return nil
}

// MarkRemoved hides the task at a 1-based position. Removing twice is a no-op.
func (l TaskList) MarkRemoved(position int) error {
	if err := l.checkPosition(position); err != nil {
		return err
	}
	l[position-1].Removed = true
	return nil
}

// Visible yields the tasks that are not removed, paired with their position
// in the full list. The sequence can be ranged over any number of times.
func (l TaskList) Visible() iter.Seq2[int, Task] {
	return func(yield func(int, Task) bool) {
		for i, task := range l {
			if task.Removed {
				continue
			}
			if !yield(i+1, task) {
				return
			}
		}
	}
}

// Stats counts tasks by state. Done counts visible tasks only.
func (l TaskList) Stats() Stats {
	stats := Stats{Total: len(l)}
	for _, task := range l {
		if task.Removed {
			stats.Removed++
			continue
		}
		stats.Visible++
		if task.Done {
			stats.Done++
		}
	}
	return stats
}

// Clone returns a copy that shares no storage with l.
func (l TaskList) Clone() TaskList {
	if l == nil {
		return TaskList{}
	}
	clone := make(TaskList, len(l))
	copy(clone, l)
	return clone
}

func (l TaskList) checkPosition(position int) error {
	if position < 1 || position > len(l) {
		return errors.NewNotFoundError("task", strconv.Itoa(position)).WithContext("position", position)
	}
	return nil
}

func (l TaskList) hasID(id string) bool {
	for _, task := range l {
		if task.ID == id {
			return true
		}
	}
	return false
}
