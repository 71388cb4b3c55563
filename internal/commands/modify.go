package commands

import (
	"context"
	"errors"
	"flag"
	"io"

	"journal/internal/config"
	"journal/internal/service"
)

func init() {
	Register(&ModifyCmd{})
}

// ModifyCmd implements the modify command.
type ModifyCmd struct{}

func (c *ModifyCmd) Name() string      { return "modify" }
func (c *ModifyCmd) Aliases() []string { return []string{"edit"} }
func (c *ModifyCmd) Synopsis() string  { return "Change the title of a pending task" }
func (c *ModifyCmd) Usage() string     { return "journal modify [common flags] <n> <title...>" }
func (c *ModifyCmd) NeedsStore() bool  { return true }

func (c *ModifyCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ModifyCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	num, err := ParseTaskNum(args)
	if err != nil {
		return usageError(errOut, err)
	}
	title := joinTitle(args[1:])
	if title == "" {
		return usageError(errOut, errors.New("title required"))
	}

	notice, err := svc.Modify(ctx, num, title)
	return finish(cfg, notice, err, out, errOut)
}
