package cli

import (
	"context"

	"argus/internal/errors"
	"argus/internal/services"
)

// ListCommand handles the list command
type ListCommand struct {
	service services.TaskService
	render  *Renderer
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{service: app.service, render: app.render}
}

// Execute prints the visible tasks
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return errors.NewInvalidInputError("arguments", args, "list takes no arguments")
	}
	c.render.Tasks(c.service.List())
	return nil
}
