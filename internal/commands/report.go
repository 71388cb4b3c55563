package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"journal/internal/config"
	"journal/internal/exitcode"
	"journal/internal/output"
	"journal/internal/service"
)

// finish reports the outcome of a mutating call: the error, else the
// notice, else "ok". Informational output honours --quiet.
func finish(cfg *config.Config, notice service.Notice, err error, out, errOut io.Writer) int {
	if err != nil {
		return reportError(errOut, err)
	}
	if cfg.Quiet {
		return exitcode.Success
	}
	if notice != "" {
		output.FormatNotice(out, notice)
	} else {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// reportError prints err and maps it to an exit code.
func reportError(errOut io.Writer, err error) int {
	var ioErr *service.IOError
	switch {
	case errors.Is(err, service.ErrIndexOutOfRange):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	case errors.Is(err, service.ErrCorruptStore):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.StoreError
	case errors.As(err, &ioErr):
		fmt.Fprintf(errOut, "error: store error: %v\n", err)
		return exitcode.StoreError
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(errOut, "error: cancelled")
		return exitcode.StoreError
	default:
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.StoreError
	}
}

// usageError prints a user error.
func usageError(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "error: %v\n", err)
	return exitcode.UserError
}
