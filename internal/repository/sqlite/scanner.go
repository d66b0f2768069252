package sqlite

import (
	"argus/internal/domain"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTask scans a single task row: id, description, done, creation_date, removed
func ScanTask(scanner Scanner) (domain.Task, error) {
	var task domain.Task
	err := scanner.Scan(
		&task.ID,
		&task.Description,
		&task.Done,
		&task.CreationDate,
		&task.Removed,
	)
	return task, err
}

// ScanTasks scans task rows in order
func ScanTasks(rows Rows) ([]domain.Task, error) {
	tasks := make([]domain.Task, 0)
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
