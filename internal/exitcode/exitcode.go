// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown command, task number out of range).
	UserError = 1

	// ConfigError indicates an unreadable settings file or unresolvable task file path.
	ConfigError = 2

	// StoreError indicates the task file could not be read, written or parsed.
	StoreError = 3
)
