package service

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange indicates a 1-based task number that is zero or past
// the end of the list.
var ErrIndexOutOfRange = errors.New("task number out of range")

// ErrCorruptStore indicates store contents that are neither empty nor a
// valid task list.
var ErrCorruptStore = errors.New("corrupt task store")

// IOError reports a failure to open, read, write or lock the store file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}

func outOfRange(n int) error {
	return fmt.Errorf("%w: %d", ErrIndexOutOfRange, n)
}
