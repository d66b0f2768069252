package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"argus/internal/config"
	"argus/internal/services"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App represents the main CLI application
type App struct {
	service    services.TaskService
	config     *config.Config
	in         *bufio.Reader
	out        io.Writer
	render     *Renderer
	errHandler *ErrorHandler
	registry   *CommandRegistry
}

// NewApp creates a new CLI application reading prompts from in and writing
// listings to out
func NewApp(service services.TaskService, cfg *config.Config, in io.Reader, out io.Writer) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	app := &App{
		service:    service,
		config:     cfg,
		in:         bufio.NewReader(in),
		out:        out,
		render:     NewRenderer(out, cfg.Display),
		errHandler: NewErrorHandler(),
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// Run executes the named command with the given arguments
func (a *App) Run(ctx context.Context, commandName string, args []string) error {
	return a.registry.Execute(ctx, commandName, args)
}

func (a *App) println(args ...interface{}) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}
