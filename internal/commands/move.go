package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"journal/internal/config"
	"journal/internal/service"
)

func init() {
	Register(&MoveCmd{})
}

// MoveCmd implements the move command.
type MoveCmd struct{}

func (c *MoveCmd) Name() string      { return "move" }
func (c *MoveCmd) Aliases() []string { return []string{"mv"} }
func (c *MoveCmd) Synopsis() string  { return "Move a task to a new position" }
func (c *MoveCmd) Usage() string     { return "journal move [common flags] <n> <position>" }
func (c *MoveCmd) NeedsStore() bool  { return true }

func (c *MoveCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *MoveCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	num, err := ParseTaskNum(args)
	if err != nil {
		return usageError(errOut, err)
	}
	if len(args) < 2 {
		return usageError(errOut, errors.New("new position required"))
	}
	if len(args) > 2 {
		return usageError(errOut, fmt.Errorf("unexpected argument: %s", args[2]))
	}
	pos, err := parseNumber("position", args[1])
	if err != nil {
		return usageError(errOut, err)
	}

	notice, err := svc.Move(ctx, num, pos)
	return finish(cfg, notice, err, out, errOut)
}
