package cli

import (
	"context"
	"strings"

	"argus/internal/services"
)

// AddCommand handles the add command
type AddCommand struct {
	app     *App
	service services.TaskService
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app, service: app.service}
}

// Execute adds a task whose description is the arguments joined by spaces
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	return c.add(ctx, strings.Join(args, " "))
}

func (c *AddCommand) add(ctx context.Context, description string) error {
	task, err := c.service.Add(ctx, description)
	if err != nil && !c.app.errHandler.IsStorageError(err) {
		return err
	}
	c.app.printf("Added task %d: %s\n", c.service.Stats().Total, task.Description)
	return err
}
