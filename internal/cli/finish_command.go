package cli

import (
	"context"

	"argus/internal/errors"
	"argus/internal/services"
	"argus/internal/validation"
)

// FinishCommand handles the finish command
type FinishCommand struct {
	app     *App
	service services.TaskService
}

// NewFinishCommand creates a new finish command handler
func NewFinishCommand(app *App) *FinishCommand {
	return &FinishCommand{app: app, service: app.service}
}

// Execute toggles the done flag of the task at the given position
func (c *FinishCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("position", args, "finish takes exactly one position")
	}
	position, err := validation.ParsePosition(args[0])
	if err != nil {
		return err
	}
	return c.finish(ctx, position)
}

func (c *FinishCommand) finish(ctx context.Context, position int) error {
	task, err := c.service.Finish(ctx, position)
	if err != nil && !c.app.errHandler.IsStorageError(err) {
		return err
	}

	if task.Done {
		c.app.printf("Finished task %d: %s\n", position, task.Description)
	} else {
		c.app.printf("Reopened task %d: %s\n", position, task.Description)
	}
	return err
}
