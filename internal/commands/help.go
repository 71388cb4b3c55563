package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"journal/internal/config"
	"journal/internal/exitcode"
	"journal/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "journal help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  journal                                        List all tasks
  journal list [common flags]                    List all tasks (alias: ls)
  journal add [common flags] <title...>          Add a task after the last pending task
  journal remove [common flags] <n>              Remove task n (alias: rm)
  journal complete [common flags] <n>            Toggle task n done and move it to the end (alias: done)
  journal move [common flags] <n> <position>     Move task n among the pending tasks (alias: mv)
  journal modify [common flags] <n> <title...>   Change the title of pending task n (alias: edit)
  journal help
  journal version

Common flags (allowed before or after the command):
  -f, --file <path>              Task file (default ~/.journal-list.json, or $JOURNAL_FILE)
  --config <dir>                 Override config directory
  --color <auto|always|never>    Color completed tasks
  --lock                         Lock the task file while it is in use
  --quiet                        Suppress informational output
  --debug                        Print debug logs to stderr
`
