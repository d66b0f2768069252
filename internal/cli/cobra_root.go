package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"argus/internal/config"
	"argus/internal/logging"
	"argus/internal/repository"
	"argus/internal/services"
)

// ServiceFactory builds the task service for a loaded configuration. The
// returned function releases whatever the service holds open.
type ServiceFactory func(ctx context.Context, cfg *config.Config) (services.TaskService, func() error, error)

// DefaultServiceFactory opens the configured store and loads the task list from it
func DefaultServiceFactory(ctx context.Context, cfg *config.Config) (services.TaskService, func() error, error) {
	store, err := repository.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	return services.NewTaskService(ctx, store, cfg), store.Close, nil
}

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	factory ServiceFactory
	in      io.Reader
	out     io.Writer

	app     *App
	release func() error
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(factory ServiceFactory, in io.Reader, out io.Writer) *RootCommand {
	root := &RootCommand{
		factory: factory,
		in:      in,
		out:     out,
	}

	root.cmd = &cobra.Command{
		Use:   "argus",
		Short: "A small command-line task list",
		Long: `Argus keeps a list of tasks in ~/.argus/data.json.

Run without a command to start the interactive menu.

EXAMPLES:
  argus                        # Interactive menu
  argus add "buy milk"         # Add a task
  argus list --ages            # List tasks with their age
  argus finish 2               # Mark task 2 done (again to reopen)
  argus remove 1               # Hide task 1; other numbers do not change

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > config file > defaults

  The config file is ~/.argus/config.toml (moved with ARGUS_CONFIG).

  Storage Configuration:
    ARGUS_DIR                    Storage directory (default: ~/.argus)
    ARGUS_FILENAME               Task file name (default: data.json, data.db for sqlite)
    ARGUS_BACKEND                Storage backend: json or sqlite (default: json)
    ARGUS_DIR_PERMISSIONS        Octal permissions for a created directory (default: 0755)

  Display Configuration:
    ARGUS_SHOW_AGES              Show task ages in listings (default: false)
    ARGUS_NO_COLOR               Disable styling (default: false)

  Validation Configuration:
    ARGUS_DESCRIPTION_MIN        Min description length (default: 1)
    ARGUS_DESCRIPTION_MAX        Max description length (default: 500)

  Application Configuration:
    ARGUS_LOG_LEVEL              debug, info, warn or error (default: warn)
    ARGUS_LOG_FORMAT             text, logfmt or json (default: text)
    ARGUS_VERBOSE                Enable verbose logging (default: false)
    ARGUS_DEBUG                  Force debug logging when set`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.app.Run(cmd.Context(), "menu", args)
		},
	}
	root.cmd.SetIn(in)
	root.cmd.SetOut(out)

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command with args and releases the store afterwards
func (r *RootCommand) Execute(ctx context.Context, args []string) error {
	if args == nil {
		args = []string{}
	}
	r.cmd.SetArgs(args)
	defer r.close()
	return r.cmd.ExecuteContext(ctx)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Storage configuration
	flags.String("dir", "", "Storage directory (overrides ARGUS_DIR)")
	flags.String("filename", "", "Task file name (overrides ARGUS_FILENAME)")
	flags.String("backend", "", "Storage backend: json or sqlite (overrides ARGUS_BACKEND)")

	// Display configuration
	flags.Bool("ages", false, "Show how long ago each task was created (overrides ARGUS_SHOW_AGES)")
	flags.Bool("no-color", false, "Disable styling (overrides ARGUS_NO_COLOR)")

	// Application configuration
	flags.String("log-level", "", "Log level (overrides ARGUS_LOG_LEVEL)")
	flags.BoolP("verbose", "v", false, "Enable verbose output (overrides ARGUS_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long:  "List the tasks that have not been removed. Numbers are stable: removing a task never renumbers the others.",
		Args:  cobra.NoArgs,
		RunE:  r.run("list"),
	}

	addCmd := &cobra.Command{
		Use:   "add [description]",
		Short: "Add a task",
		Long:  "Add a task. All arguments are joined with spaces to form the description.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  r.run("add"),
	}

	finishCmd := &cobra.Command{
		Use:   "finish [number]",
		Short: "Mark a task done, or reopen a done task",
		Args:  cobra.ExactArgs(1),
		RunE:  r.run("finish"),
	}

	removeCmd := &cobra.Command{
		Use:     "remove [number]",
		Aliases: []string{"rm"},
		Short:   "Remove a task from the list",
		Long:    "Remove a task from the list. The task keeps its number and stays in the task file.",
		Args:    cobra.ExactArgs(1),
		RunE:    r.run("remove"),
	}

	menuCmd := &cobra.Command{
		Use:   "menu",
		Short: "Start the interactive menu",
		Args:  cobra.NoArgs,
		RunE:  r.run("menu"),
	}

	r.cmd.AddCommand(
		listCmd,
		addCmd,
		finishCmd,
		removeCmd,
		menuCmd,
	)
}

func (r *RootCommand) run(name string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return r.app.Run(cmd.Context(), name, args)
	}
}

// setup resolves configuration, configures logging and builds the app
func (r *RootCommand) setup(cmd *cobra.Command) error {
	loader := config.NewLoader()
	cfg, err := loader.LoadWithOverrides(overridesFromFlags(cmd.Flags()))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	configureLogging(cfg)
	logging.Debugln("configuration loaded", "file", loader.FilePath(), "store", cfg.Storage.Path(), "backend", cfg.Storage.Backend)

	service, release, err := r.factory(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to open task store: %w", err)
	}
	r.release = release
	r.app = NewApp(service, cfg, r.in, r.out)
	return nil
}

func (r *RootCommand) close() {
	if r.release == nil {
		return
	}
	if err := r.release(); err != nil {
		logging.Warn("failed to close task store", "err", err)
	}
	r.release = nil
}

// overridesFromFlags collects the flags the user actually set
func overridesFromFlags(flags *pflag.FlagSet) *config.ConfigOverrides {
	overrides := &config.ConfigOverrides{}

	if flags.Changed("dir") {
		v, _ := flags.GetString("dir")
		overrides.Dir = &v
	}
	if flags.Changed("filename") {
		v, _ := flags.GetString("filename")
		overrides.Filename = &v
	}
	if flags.Changed("backend") {
		v, _ := flags.GetString("backend")
		overrides.Backend = &v
	}
	if flags.Changed("ages") {
		v, _ := flags.GetBool("ages")
		overrides.ShowAges = &v
	}
	if flags.Changed("no-color") {
		v, _ := flags.GetBool("no-color")
		overrides.NoColor = &v
	}
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		overrides.LogLevel = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		overrides.Verbose = &v
	}

	return overrides
}

// configureLogging applies the logging settings. Verbose raises the default
// warn level to info.
func configureLogging(cfg *config.Config) {
	level := cfg.Application.LogLevel
	if cfg.Application.Verbose && (level == "" || level == "warn") {
		level = "info"
	}
	logging.Configure(logging.Options{
		Level:     level,
		Format:    cfg.Application.LogFormat,
		Timestamp: cfg.Application.Verbose,
	})
}
