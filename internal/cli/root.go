// Package cli maps command-line arguments onto app.Command values.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nhle/todo/internal/app"
	"github.com/nhle/todo/internal/logging"
	"github.com/nhle/todo/internal/model"
	"github.com/nhle/todo/internal/store"
)

// Deps are the process-level collaborators of the command tree.
type Deps struct {
	// OpenStore opens the store at path. It is called at most once per run.
	OpenStore func(path string, log zerolog.Logger) (store.Store, error)

	// Interactive reports whether the user can answer prompts.
	Interactive func() bool

	// PromptMessage asks the user for a todo message.
	PromptMessage func(ctx context.Context) (string, error)

	// TermWidth returns the output width, or 0 when unknown.
	TermWidth func() int

	Version string
}

// DefaultDeps wires the real SQLite store and terminal detection.
func DefaultDeps(version string) Deps {
	return Deps{
		OpenStore: func(path string, log zerolog.Logger) (store.Store, error) {
			return store.NewSQLiteStore(path, store.WithLogger(log))
		},
		Interactive: func() bool {
			fd := os.Stdin.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
		PromptMessage: promptMessage,
		TermWidth: func() int {
			fd := int(os.Stdout.Fd())
			if !term.IsTerminal(fd) {
				return 0
			}
			w, _, err := term.GetSize(fd)
			if err != nil {
				return 0
			}
			return w
		},
		Version: version,
	}
}

// runner holds per-invocation state shared by the subcommands.
type runner struct {
	deps Deps

	configPath string
	dbPath     string
	debug      bool

	cfg   *model.AppConfig
	log   zerolog.Logger
	store store.Store
}

// Execute parses args, runs the selected command and releases the store.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer, deps Deps) error {
	r := &runner{deps: deps, log: zerolog.Nop()}
	root := r.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	defer r.close()
	return root.ExecuteContext(ctx)
}

func (r *runner) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "todo",
		Short:         "Track short text tasks in a local SQLite file",
		Version:       r.deps.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return r.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&r.configPath, "config", model.DefaultConfigPath(), "config file")
	flags.StringVar(&r.dbPath, "db", "", "database file (default from config, else "+model.DefaultDatabasePath+")")
	flags.BoolVar(&r.debug, "debug", false, "log SQL statements and diagnostics to stderr")

	root.AddCommand(
		r.addCommand(),
		r.listCommand(),
		r.doneCommand(),
		r.deleteCommand(),
		r.configCommand(),
	)

	return root
}

// setup loads config and the logger. The store is opened lazily so that
// help and config commands never touch the database.
func (r *runner) setup(cmd *cobra.Command) error {
	cfg, err := model.LoadConfig(r.configPath)
	if err != nil {
		return err
	}
	r.cfg = cfg

	level := cfg.Log.Level
	if r.debug {
		level = zerolog.DebugLevel.String()
	}
	log, err := logging.New(cmd.ErrOrStderr(), level)
	if err != nil {
		return err
	}
	r.log = log

	if r.dbPath == "" {
		r.dbPath = cfg.Database.Path
	}
	return nil
}

// app opens the store and returns a dispatcher writing to cmd's streams.
func (r *runner) app(cmd *cobra.Command) (*app.App, error) {
	if r.store == nil {
		s, err := r.deps.OpenStore(r.dbPath, r.log)
		if err != nil {
			return nil, err
		}
		r.store = s
	}

	width := 0
	if r.deps.TermWidth != nil {
		width = r.deps.TermWidth()
	}

	return app.New(r.store, app.Options{
		Out:        cmd.OutOrStdout(),
		ErrOut:     cmd.ErrOrStderr(),
		TimeFormat: r.cfg.Display.TimeFormat,
		Width:      width,
		Logger:     &r.log,
	}), nil
}

func (r *runner) dispatch(cmd *cobra.Command, c app.Command) error {
	a, err := r.app(cmd)
	if err != nil {
		return err
	}
	return a.Dispatch(cmd.Context(), c)
}

func (r *runner) close() {
	if r.store == nil {
		return
	}
	if err := r.store.Close(); err != nil {
		r.log.Warn().Err(err).Msg("closing store")
	}
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q: must be an integer", arg)
	}
	return id, nil
}
