package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"journal/internal/config"
	"journal/internal/exitcode"
	"journal/internal/output"
	"journal/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `journal` (no args) and `journal list`.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List all tasks" }
func (c *ListCmd) Usage() string     { return "journal list [common flags]" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		return usageError(errOut, fmt.Errorf("unexpected argument: %s", args[0]))
	}

	tasks, err := svc.List(ctx)
	if err != nil {
		return reportError(errOut, err)
	}

	style := output.NewStyle(out, cfg.Color, cfg.Location)
	output.FormatList(out, tasks, style, cfg.Quiet)
	return exitcode.Success
}
