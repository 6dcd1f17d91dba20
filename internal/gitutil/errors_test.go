package gitutil

import (
	"errors"
	"testing"

	"github.com/samzong/check-commit/internal/gitcmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapGitError(t *testing.T) {
	cause := errors.New("exit status 1")

	t.Run("prefers stderr", func(t *testing.T) {
		err := WrapGitError("git pull --rebase failed",
			gitcmd.Result{Stderr: []byte("CONFLICT (content): Merge conflict in a.txt\n")}, cause)

		assert.Equal(t, "git pull --rebase failed: CONFLICT (content): Merge conflict in a.txt", err.Error())
		assert.ErrorIs(t, err, cause)
		assert.ErrorIs(t, err, ErrGitOperation)

		var cmdErr *CommandError
		require.ErrorAs(t, err, &cmdErr)
		assert.Equal(t, "CONFLICT (content): Merge conflict in a.txt", cmdErr.Stderr)
	})

	t.Run("falls back to cause", func(t *testing.T) {
		err := WrapGitError("git push failed", gitcmd.Result{}, cause)
		assert.Equal(t, "git push failed: exit status 1", err.Error())
	})

	t.Run("action only", func(t *testing.T) {
		err := &CommandError{Action: "git add failed"}
		assert.Equal(t, "git add failed", err.Error())
		assert.NoError(t, errors.Unwrap(err))
	})
}
