package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"journal/internal/config"
	"journal/internal/service"
)

func init() {
	Register(&RemoveCmd{})
}

// RemoveCmd implements the remove command.
type RemoveCmd struct{}

func (c *RemoveCmd) Name() string      { return "remove" }
func (c *RemoveCmd) Aliases() []string { return []string{"rm"} }
func (c *RemoveCmd) Synopsis() string  { return "Remove a task from the list" }
func (c *RemoveCmd) Usage() string     { return "journal remove [common flags] <n>" }
func (c *RemoveCmd) NeedsStore() bool  { return true }

func (c *RemoveCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RemoveCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	num, err := ParseTaskNum(args)
	if err != nil {
		return usageError(errOut, err)
	}
	if len(args) > 1 {
		return usageError(errOut, fmt.Errorf("unexpected argument: %s", args[1]))
	}

	notice, err := svc.Remove(ctx, num)
	return finish(cfg, notice, err, out, errOut)
}
