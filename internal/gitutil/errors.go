package gitutil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samzong/check-commit/internal/gitcmd"
)

// ErrGitOperation matches every error returned by a failed git invocation.
var ErrGitOperation = errors.New("git operation failed")

// CommandError is returned when a git command exits non-zero.
// Stderr holds the captured error text of the command, untouched.
type CommandError struct {
	Action string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s: %s", e.Action, e.Stderr)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Action, e.Err)
	}
	return e.Action
}

func (e *CommandError) Unwrap() error { return e.Err }

func (e *CommandError) Is(target error) bool {
	return target == ErrGitOperation
}

// WrapGitError builds an error message that prefers git stderr output when present.
func WrapGitError(action string, result gitcmd.Result, err error) error {
	return &CommandError{
		Action: action,
		Stderr: strings.TrimSpace(string(result.Stderr)),
		Err:    err,
	}
}
