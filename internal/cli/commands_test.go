package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"argus/internal/domain"
	apperrors "argus/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCommand(t *testing.T) {
	tests := []struct {
		name     string
		seed     []string
		prepare  func(t *testing.T, app *App)
		expected []string
		absent   []string
	}{
		{
			name:     "empty list",
			expected: []string{"No tasks yet."},
		},
		{
			name:     "lists tasks with 1-based positions",
			seed:     []string{"buy milk", "call the bank"},
			expected: []string{"1. [ ] :: buy milk", "2. [ ] :: call the bank", "0 of 2 done"},
		},
		{
			name: "done task is marked",
			seed: []string{"buy milk", "call the bank"},
			prepare: func(t *testing.T, app *App) {
				_, err := app.service.Finish(context.Background(), 2)
				require.NoError(t, err)
			},
			expected: []string{"1. [ ] :: buy milk", "2. [x] :: call the bank", "1 of 2 done"},
		},
		{
			name: "removed task is hidden and positions are kept",
			seed: []string{"a", "b", "c"},
			prepare: func(t *testing.T, app *App) {
				_, err := app.service.Remove(context.Background(), 2)
				require.NoError(t, err)
			},
			expected: []string{"1. [ ] :: a", "3. [ ] :: c"},
			absent:   []string{":: b", "2. "},
		},
		{
			name: "all removed reads as empty",
			seed: []string{"a"},
			prepare: func(t *testing.T, app *App) {
				_, err := app.service.Remove(context.Background(), 1)
				require.NoError(t, err)
			},
			expected: []string{"No tasks yet."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, out := setupTestApp(t, "", tt.seed...)
			if tt.prepare != nil {
				tt.prepare(t, app)
			}

			err := app.Run(context.Background(), "list", nil)

			require.NoError(t, err)
			for _, line := range tt.expected {
				assert.Contains(t, out.String(), line)
			}
			for _, text := range tt.absent {
				assert.NotContains(t, out.String(), text)
			}
		})
	}
}

func TestListCommand_RejectsArguments(t *testing.T) {
	app, _, _ := setupTestApp(t, "")

	err := app.Run(context.Background(), "list", []string{"extra"})

	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeInvalidInput))
}

func TestListCommand_ShowsAges(t *testing.T) {
	app, _, out := setupTestApp(t, "")
	app.render.display.ShowAges = true

	created := time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC)
	origNow := timeNow
	timeNow = func() time.Time { return created.Add(3 * time.Minute) }
	defer func() { timeNow = origNow }()

	line := app.render.TaskLine(1, domain.Task{
		Description:  "buy milk",
		CreationDate: created.Format(domain.CreationDateLayout),
	})
	assert.Equal(t, "1. [ ] :: buy milk (3 minutes ago)", line)

	line = app.render.TaskLine(2, domain.Task{Description: "legacy", CreationDate: "not a date"})
	assert.Equal(t, "2. [ ] :: legacy", line, "unparseable dates show no age")
	assert.Empty(t, out.String())
}

func TestAddCommand(t *testing.T) {
	app, store, out := setupTestApp(t, "", "existing")

	err := app.Run(context.Background(), "add", []string{"buy", "milk"})

	require.NoError(t, err)
	assert.Equal(t, "Added task 2: buy milk\n", out.String())
	require.Len(t, store.list, 2)
	assert.Equal(t, "buy milk", store.list[1].Description)
}

func TestAddCommand_ValidationError(t *testing.T) {
	app, store, out := setupTestApp(t, "")

	err := app.Run(context.Background(), "add", []string{"  "})

	require.Error(t, err)
	assert.True(t, app.errHandler.IsValidationError(err))
	assert.Equal(t, "description can't be empty", app.errHandler.Message(err))
	assert.Empty(t, out.String())
	assert.Zero(t, store.persists)
}

func TestAddCommand_StorageErrorKeepsTask(t *testing.T) {
	app, store, out := setupTestApp(t, "")
	store.failWith = errors.New("read-only file system")

	err := app.Run(context.Background(), "add", []string{"buy milk"})

	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeStorage))
	assert.Contains(t, out.String(), "Added task 1: buy milk")
	assert.Equal(t, 1, app.service.List().Len())
}

func TestFinishCommand(t *testing.T) {
	app, store, out := setupTestApp(t, "", "buy milk")
	ctx := context.Background()

	require.NoError(t, app.Run(ctx, "finish", []string{"1"}))
	assert.True(t, store.list[0].Done)

	require.NoError(t, app.Run(ctx, "finish", []string{"1"}))
	assert.False(t, store.list[0].Done)

	assert.Equal(t, "Finished task 1: buy milk\nReopened task 1: buy milk\n", out.String())
}

func TestPositionCommands_Errors(t *testing.T) {
	tests := []struct {
		name      string
		command   string
		args      []string
		errorType apperrors.ErrorType
	}{
		{"finish non-numeric", "finish", []string{"abc"}, apperrors.ErrorTypeNotFound},
		{"finish zero", "finish", []string{"0"}, apperrors.ErrorTypeNotFound},
		{"finish negative", "finish", []string{"-1"}, apperrors.ErrorTypeNotFound},
		{"finish past end", "finish", []string{"4"}, apperrors.ErrorTypeNotFound},
		{"finish no args", "finish", nil, apperrors.ErrorTypeInvalidInput},
		{"remove past end", "remove", []string{"100"}, apperrors.ErrorTypeNotFound},
		{"remove non-numeric", "remove", []string{"two"}, apperrors.ErrorTypeNotFound},
		{"remove too many args", "remove", []string{"1", "2"}, apperrors.ErrorTypeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, store, out := setupTestApp(t, "", "a", "b", "c")

			err := app.Run(context.Background(), tt.command, tt.args)

			assert.True(t, apperrors.IsErrorType(err, tt.errorType), "got %v", err)
			assert.Empty(t, out.String())
			assert.Zero(t, store.persists)
		})
	}
}

func TestRemoveCommand(t *testing.T) {
	app, store, out := setupTestApp(t, "", "a", "b", "c")
	ctx := context.Background()

	require.NoError(t, app.Run(ctx, "remove", []string{"2"}))
	assert.Equal(t, "Removed task 2: b\n", out.String())
	assert.True(t, store.list[1].Removed)

	// removing again is accepted and changes nothing
	require.NoError(t, app.Run(ctx, "remove", []string{"2"}))
	assert.Len(t, store.list, 3)
}

func TestCommandRegistry(t *testing.T) {
	app, _, _ := setupTestApp(t, "")

	assert.Equal(t, []string{"add", "finish", "list", "menu", "remove"}, app.registry.Names())
	assert.Equal(t, "usage: argus [add|finish|list|menu|remove]", app.registry.GetUsage())

	err := app.Run(context.Background(), "start", nil)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeInvalidInput))
	assert.Contains(t, app.errHandler.Message(err), "usage: argus [add|finish|list|menu|remove]")
}
