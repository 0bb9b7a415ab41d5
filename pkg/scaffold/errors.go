package scaffold

import (
	"fmt"
	"strings"
)

// Fragments the GitHub API emits when a milestone title already exists.
// Text matching is fragile, but the gh api passthrough exposes nothing
// more structured; revisit if gh ever returns machine-readable errors.
var duplicateSignals = []string{
	"already_exists",
	"Validation Failed",
}

// CommandError represents a gh invocation that exited non-zero. The
// stderr text is preserved verbatim so reports can surface exactly what
// the external tool said.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

// Error implements the error interface
func (e *CommandError) Error() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("gh %s failed", strings.Join(e.Args, " "))
}

// Unwrap returns the underlying process error
func (e *CommandError) Unwrap() error {
	return e.Err
}

// IsDuplicate reports whether err carries the platform's duplicate or
// validation signal for an already-existing milestone.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, signal := range duplicateSignals {
		if strings.Contains(msg, signal) {
			return true
		}
	}
	return false
}
