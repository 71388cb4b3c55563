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
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return nil }
func (c *AddCmd) Synopsis() string  { return "Add a new task to the list" }
func (c *AddCmd) Usage() string     { return "journal add [common flags] <title...>" }
func (c *AddCmd) NeedsStore() bool  { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	title := joinTitle(args)
	if title == "" {
		return usageError(errOut, errors.New("title required"))
	}

	notice, err := svc.Add(ctx, title)
	return finish(cfg, notice, err, out, errOut)
}
