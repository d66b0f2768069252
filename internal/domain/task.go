package domain

import (
	"time"

	"github.com/google/uuid"
)

// CreationDateLayout renders the local creation time, nanoseconds and offset included.
const CreationDateLayout = "2006-01-02 15:04:05.999999999 -07:00"

// timeNow and newID are variables that can be replaced in tests
var (
	timeNow = time.Now
	newID   = uuid.NewString
)

// Task represents one to-do item. Field order is the key order of the
// persisted document.
type Task struct {
	ID           string `json:"id"`
	Description  string `json:"description"`
	Done         bool   `json:"done"`
	CreationDate string `json:"creation_date"`
	Removed      bool   `json:"removed"`
}

// NewTask creates a new open Task with a fresh ID and the current local time.
func NewTask(description string) Task {
	return Task{
		ID:           newID(),
		Description:  description,
		CreationDate: timeNow().Format(CreationDateLayout),
	}
}

// Created parses the creation date back into a time.
func (t Task) Created() (time.Time, error) {
	return time.Parse(CreationDateLayout, t.CreationDate)
}

// Mark returns the checkbox character shown for the task.
func (t Task) Mark() rune {
	if t.Done {
		return 'x'
	}
	return ' '
}

// String returns the description for display purposes.
func (t Task) String() string {
	return t.Description
}
