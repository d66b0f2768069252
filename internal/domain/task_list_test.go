package domain

import (
	"fmt"
	"testing"
	"time"

	"argus/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newList(t *testing.T, descriptions ...string) TaskList {
	t.Helper()
	var list TaskList
	for _, d := range descriptions {
		_, err := list.Append(d)
		require.NoError(t, err)
	}
	return list
}

func visible(l TaskList) ([]int, []string) {
	var positions []int
	var descriptions []string
	for pos, task := range l.Visible() {
		positions = append(positions, pos)
		descriptions = append(descriptions, task.Description)
	}
	return positions, descriptions
}

func TestTaskList_Append(t *testing.T) {
	tests := []struct {
		name        string
		description string
		wantErr     bool
	}{
		{name: "plain description", description: "buy milk"},
		{name: "surrounding whitespace is kept", description: "  call mum  "},
		{name: "unicode", description: "réserver le train 🚆"},
		{name: "empty", description: "", wantErr: true},
		{name: "whitespace only", description: " \t\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := newList(t, "existing one", "existing two")
			before := list.Clone()

			task, err := list.Append(tt.description)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
				assert.Equal(t, before, list)
				return
			}
			require.NoError(t, err)
			require.Len(t, list, len(before)+1)
			last := list[len(list)-1]
			assert.Equal(t, task, last)
			assert.Equal(t, tt.description, last.Description)
			assert.False(t, last.Done)
			assert.False(t, last.Removed)
			for _, existing := range before {
				assert.NotEqual(t, existing.ID, last.ID)
			}
		})
	}
}

func TestTaskList_Append_RegeneratesCollidingID(t *testing.T) {
	fixClock(t, time.Now(), "dup", "dup", "fresh")

	list := newList(t, "first")
	task, err := list.Append("second")

	require.NoError(t, err)
	assert.Equal(t, "dup", list[0].ID)
	assert.Equal(t, "fresh", task.ID)
}

func TestTaskList_ToggleDone(t *testing.T) {
	list := newList(t, "a", "b", "c")
	original := list.Clone()

	require.NoError(t, list.ToggleDone(2))
	assert.True(t, list[1].Done)
	assert.False(t, list[0].Done)
	assert.False(t, list[2].Done)

	require.NoError(t, list.ToggleDone(2))
	assert.Equal(t, original, list, "double toggle is identity")
}

func TestTaskList_ToggleDone_RemovedTaskStillAddressable(t *testing.T) {
	list := newList(t, "a", "b")
	require.NoError(t, list.MarkRemoved(1))

	require.NoError(t, list.ToggleDone(1))
	assert.True(t, list[0].Done)
}

func TestTaskList_MarkRemoved(t *testing.T) {
	list := newList(t, "a", "b", "c")

	require.NoError(t, list.MarkRemoved(2))
	positions, descriptions := visible(list)
	assert.Equal(t, []int{1, 3}, positions)
	assert.Equal(t, []string{"a", "c"}, descriptions)
	assert.Equal(t, 3, list.Len(), "removal keeps the task in storage")

	afterFirst := list.Clone()
	require.NoError(t, list.MarkRemoved(2))
	assert.Equal(t, afterFirst, list, "second removal is a no-op")
}

func TestTaskList_OutOfRange(t *testing.T) {
	positions := []int{-1, 0, 4, 100}

	for _, pos := range positions {
		t.Run(fmt.Sprintf("position %d", pos), func(t *testing.T) {
			list := newList(t, "a", "b", "c")
			before := list.Clone()

			err := list.ToggleDone(pos)
			assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

			err = list.MarkRemoved(pos)
			assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

			_, err = list.At(pos)
			assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

			assert.Equal(t, before, list)
		})
	}
}

func TestTaskList_EmptyList(t *testing.T) {
	var list TaskList

	err := list.ToggleDone(1)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	assert.Empty(t, list)

	positions, _ := visible(list)
	assert.Empty(t, positions)
}

func TestTaskList_Visible_Restartable(t *testing.T) {
	list := newList(t, "a", "b", "c")
	require.NoError(t, list.MarkRemoved(1))

	first, _ := visible(list)
	second, _ := visible(list)
	assert.Equal(t, first, second)

	var seen []int
	for pos := range list.Visible() {
		seen = append(seen, pos)
		break
	}
	assert.Equal(t, []int{2}, seen, "early break stops iteration")
}

func TestTaskList_Stats(t *testing.T) {
	list := newList(t, "a", "b", "c", "d")
	require.NoError(t, list.ToggleDone(1))
	require.NoError(t, list.ToggleDone(2))
	require.NoError(t, list.MarkRemoved(2))

	assert.Equal(t, Stats{Total: 4, Visible: 3, Done: 1, Removed: 1}, list.Stats())
}

func TestTaskList_Clone(t *testing.T) {
	list := newList(t, "a")
	clone := list.Clone()
	clone[0].Done = true

	assert.False(t, list[0].Done)
	assert.NotNil(t, TaskList(nil).Clone())
}

func TestScenario_BuyMilk(t *testing.T) {
	var list TaskList

	_, err := list.Append("buy milk")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "buy milk", list[0].Description)

	require.NoError(t, list.ToggleDone(1))
	assert.True(t, list[0].Done)

	require.NoError(t, list.MarkRemoved(1))
	positions, _ := visible(list)
	assert.Empty(t, positions)
	assert.Equal(t, 1, list.Len())
}
