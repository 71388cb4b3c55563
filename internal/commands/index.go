package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrTaskNumRequired indicates no task number was provided.
var ErrTaskNumRequired = errors.New("task number required")

// ParseTaskNum parses the 1-based task number in args[0]. Range checks are
// left to the service, which knows the list length.
func ParseTaskNum(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrTaskNumRequired
	}
	return parseNumber("task number", args[0])
}

// parseNumber accepts ASCII digits only, so signs and spaces are rejected.
func parseNumber(what, s string) (int, error) {
	if !isAllDigits(s) {
		return 0, fmt.Errorf("invalid %s: %s", what, s)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", what, s)
	}
	return n, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// joinTitle joins the remaining args into a title. Returns "" when the
// result is blank.
func joinTitle(args []string) string {
	title := strings.Join(args, " ")
	if strings.TrimSpace(title) == "" {
		return ""
	}
	return title
}
