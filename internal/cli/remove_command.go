package cli

import (
	"context"

	"argus/internal/errors"
	"argus/internal/services"
	"argus/internal/validation"
)

// RemoveCommand handles the remove command
type RemoveCommand struct {
	app     *App
	service services.TaskService
}

// NewRemoveCommand creates a new remove command handler
func NewRemoveCommand(app *App) *RemoveCommand {
	return &RemoveCommand{app: app, service: app.service}
}

// Execute hides the task at the given position
func (c *RemoveCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("position", args, "remove takes exactly one position")
	}
	position, err := validation.ParsePosition(args[0])
	if err != nil {
		return err
	}
	return c.remove(ctx, position)
}

func (c *RemoveCommand) remove(ctx context.Context, position int) error {
	task, err := c.service.Remove(ctx, position)
	if err != nil && !c.app.errHandler.IsStorageError(err) {
		return err
	}
	c.app.printf("Removed task %d: %s\n", position, task.Description)
	return err
}
