// Package cli parses the command line and dispatches to commands.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"journal/internal/commands"
	"journal/internal/config"
	"journal/internal/exitcode"
	"journal/internal/logging"
	"journal/internal/service"
)

// ServiceFactory creates a Service from config.
// Used to inject the backend during dispatch.
type ServiceFactory func(ctx context.Context, cfg *config.Config, logger *log.Logger) (service.Service, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  ServiceFactory
}

// NewDispatcher creates a new dispatcher with the given registry and service factory.
func NewDispatcher(registry *commands.Registry, factory ServiceFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// globalFlags are accepted both before the command name and among the
// command's own flags.
type globalFlags struct {
	configDir string
	file      string
	color     string
	lock      bool
	quiet     bool
	debug     bool
}

// register binds the flags to fs, using the current values as defaults so
// flags given before the command carry over.
func (g *globalFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&g.configDir, "config", g.configDir, "")
	fs.StringVar(&g.file, "file", g.file, "")
	fs.StringVar(&g.file, "f", g.file, "")
	fs.StringVar(&g.color, "color", g.color, "")
	fs.BoolVar(&g.lock, "lock", g.lock, "")
	fs.BoolVar(&g.quiet, "quiet", g.quiet, "")
	fs.BoolVar(&g.debug, "debug", g.debug, "")
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves
	return fs
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	var g globalFlags
	fs := newFlagSet("journal")
	g.register(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return d.dispatch(ctx, "help", nil, &g, out, errOut)
		}
		return flagError(errOut, err)
	}

	// No command -> dispatch to "list" command with no args
	rest := fs.Args()
	if len(rest) == 0 {
		return d.dispatch(ctx, "list", nil, &g, out, errOut)
	}
	return d.dispatch(ctx, rest[0], rest[1:], &g, out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, g *globalFlags, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, g, out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, g *globalFlags, out, errOut io.Writer) int {
	fs := newFlagSet(cmd.Name())
	g.register(fs)
	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(out, "Usage: %s\n", cmd.Usage())
			return exitcode.Success
		}
		return flagError(errOut, err)
	}

	color, err := config.ParseColorMode(g.color)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}

	// Create config
	cfg, err := config.New(g.configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.ConfigError
	}
	cfg.Quiet = g.quiet
	cfg.Debug = g.debug
	cfg.Lock = cfg.Lock || g.lock
	if g.color != "" {
		cfg.Color = color
	}

	logger := logging.New(errOut, cfg.Debug)

	var svc service.Service
	if cmd.NeedsStore() {
		if err := cfg.ResolveFile(g.file); err != nil {
			fmt.Fprintf(errOut, "error: %s\n", err)
			return exitcode.ConfigError
		}
		logger.Debug("resolved task file", "path", cfg.File, "lock", cfg.Lock)

		if d.factory == nil {
			fmt.Fprintln(errOut, "error: no task backend configured")
			return exitcode.ConfigError
		}
		svc, err = d.factory(ctx, cfg, logger)
		if err != nil {
			fmt.Fprintf(errOut, "error: %s\n", err)
			return exitcode.StoreError
		}
	}

	// Run command
	return cmd.Run(ctx, cfg, svc, fs.Args(), out, errOut)
}

// flagError reports a flag parsing error in the CLI's own wording.
func flagError(errOut io.Writer, err error) int {
	errStr := err.Error()

	// Missing flag value
	if strings.HasPrefix(errStr, "flag needs an argument:") {
		flagName := strings.TrimSpace(strings.TrimPrefix(errStr, "flag needs an argument:"))
		fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", flagName)
		return exitcode.UserError
	}

	// Unknown flag
	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
		return exitcode.UserError
	}

	fmt.Fprintf(errOut, "error: %s\n", errStr)
	return exitcode.UserError
}
