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
	Register(&CompleteCmd{})
}

// CompleteCmd implements the complete command. Completing a finished task
// reopens it; either way the task moves to the end of the list.
type CompleteCmd struct{}

func (c *CompleteCmd) Name() string      { return "complete" }
func (c *CompleteCmd) Aliases() []string { return []string{"done"} }
func (c *CompleteCmd) Synopsis() string  { return "Toggle a task's completed state" }
func (c *CompleteCmd) Usage() string     { return "journal complete [common flags] <n>" }
func (c *CompleteCmd) NeedsStore() bool  { return true }

func (c *CompleteCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *CompleteCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	num, err := ParseTaskNum(args)
	if err != nil {
		return usageError(errOut, err)
	}
	if len(args) > 1 {
		return usageError(errOut, fmt.Errorf("unexpected argument: %s", args[1]))
	}

	notice, err := svc.Complete(ctx, num)
	return finish(cfg, notice, err, out, errOut)
}
