package cli

import (
	"context"
	"errors"
	"io"
	"strings"

	"argus/internal/validation"
)

type menuOption struct {
	key   string
	label string
}

var menuOptions = []menuOption{
	{"1", "List tasks"},
	{"2", "Add task"},
	{"3", "Finish task"},
	{"4", "Remove task"},
	{"5", "Exit"},
}

// cancelInput aborts a prompt and returns to the menu
const cancelInput = "q"

// MenuCommand runs the interactive session: a banner, then a menu loop
// until the user exits or stdin is closed
type MenuCommand struct {
	app    *App
	list   *ListCommand
	add    *AddCommand
	finish *FinishCommand
	remove *RemoveCommand
}

// NewMenuCommand creates a new interactive menu handler
func NewMenuCommand(app *App) *MenuCommand {
	return &MenuCommand{
		app:    app,
		list:   NewListCommand(app),
		add:    NewAddCommand(app),
		finish: NewFinishCommand(app),
		remove: NewRemoveCommand(app),
	}
}

// Execute runs the menu loop. End of input exits cleanly.
func (c *MenuCommand) Execute(ctx context.Context, args []string) error {
	c.app.render.Banner()
	err := c.loop(ctx)
	if errors.Is(err, io.EOF) {
		c.app.println()
		return nil
	}
	return err
}

func (c *MenuCommand) loop(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.app.println()
		c.app.render.Menu()
		choice, err := c.readLine()
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = c.list.Execute(ctx, nil)
		case "2":
			err = c.promptAdd(ctx)
		case "3":
			err = c.promptPosition(ctx, "finish", c.finish.finish)
		case "4":
			err = c.promptPosition(ctx, "remove", c.remove.remove)
		case "5", cancelInput:
			return nil
		default:
			c.app.println("Please choose a valid option")
		}
		if err != nil {
			return err
		}
	}
}

// promptAdd asks for a description until one is accepted or the user cancels
func (c *MenuCommand) promptAdd(ctx context.Context) error {
	for {
		c.app.printf("Please add a description (%s to cancel): ", cancelInput)
		line, err := c.readLine()
		if err != nil {
			return err
		}
		if line == cancelInput {
			c.app.println("Cancelled.")
			return nil
		}

		err = c.add.add(ctx, line)
		if err == nil {
			return nil
		}
		if done, err := c.report(err); done {
			return err
		}
	}
}

// promptPosition asks for a task position until action succeeds or the user cancels
func (c *MenuCommand) promptPosition(ctx context.Context, verb string, action func(context.Context, int) error) error {
	if c.app.service.Stats().Total == 0 {
		c.app.render.Tasks(nil)
		return nil
	}
	c.app.render.Tasks(c.app.service.List())

	for {
		c.app.printf("Enter the number of the task to %s (%s to cancel): ", verb, cancelInput)
		line, err := c.readLine()
		if err != nil {
			return err
		}
		if line == cancelInput {
			c.app.println("Cancelled.")
			return nil
		}

		position, err := validation.ParsePosition(line)
		if err == nil {
			err = action(ctx, position)
		}
		if err == nil {
			return nil
		}
		if done, err := c.report(err); done {
			return err
		}
	}
}

// report shows err to the user and tells whether the prompt is over.
// Input errors re-prompt; other recoverable errors end the prompt but not
// the session. Anything else ends the session.
func (c *MenuCommand) report(err error) (bool, error) {
	if !c.app.errHandler.IsRecoverable(err) {
		return true, err
	}
	c.app.render.Warning(c.app.errHandler.Message(err))
	return !c.app.errHandler.IsValidationError(err) && !c.app.errHandler.IsNotFoundError(err), nil
}

// readLine reads one line of input without its line ending. A final line
// without a newline is returned before io.EOF.
func (c *MenuCommand) readLine() (string, error) {
	line, err := c.app.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
