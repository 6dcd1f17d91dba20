package git

import (
	"bytes"
	"context"
	"testing"

	"github.com/samzong/check-commit/internal/gitutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_IsRepository(t *testing.T) {
	repo := NewTestRepo(t)
	ctx := context.Background()

	assert.True(t, NewClient(Options{Dir: repo.Dir}).IsRepository(ctx))
	assert.False(t, NewClient(Options{
		Dir: t.TempDir(),
		Env: []string{"GIT_CEILING_DIRECTORIES=/"},
	}).IsRepository(ctx))
}

func TestClient_TopLevel(t *testing.T) {
	repo := NewTestRepo(t)

	top, err := NewClient(Options{Dir: repo.Dir}).TopLevel(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RunGit(t, repo.Dir, "rev-parse", "--show-toplevel"), top)
}

func TestClient_Status(t *testing.T) {
	repo := NewTestRepo(t)
	client := NewClient(Options{Dir: repo.Dir})
	ctx := context.Background()

	status, err := client.Status(ctx)
	require.NoError(t, err)
	assert.Empty(t, status)

	WriteFile(t, repo.Dir, "new.txt", "hello\n")
	status, err = client.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, "?? new.txt", status)
}

func TestClient_FullSequence(t *testing.T) {
	repo := NewTestRepo(t)
	client := NewClient(Options{Dir: repo.Dir})
	ctx := context.Background()

	WriteFile(t, repo.Dir, "button.txt", "button\n")

	_, err := client.StageAll(ctx)
	require.NoError(t, err)
	_, err = client.PullRebase(ctx)
	require.NoError(t, err)
	_, err = client.Commit(ctx, "feat(ui): Add new button")
	require.NoError(t, err)
	_, err = client.Push(ctx)
	require.NoError(t, err)

	remoteLog := RunGit(t, repo.Dir, "--git-dir", repo.Remote, "log", "-1", "--format=%s", "main")
	assert.Equal(t, "feat(ui): Add new button", remoteLog)
}

func TestClient_PullRebaseIntegratesUpstream(t *testing.T) {
	repo := NewTestRepo(t)
	other := repo.Clone(t)
	WriteFile(t, other, "upstream.txt", "upstream\n")
	RunGit(t, other, "add", ".")
	RunGit(t, other, "commit", "-m", "feat: upstream change")
	RunGit(t, other, "push", "origin", "main")

	client := NewClient(Options{Dir: repo.Dir})
	WriteFile(t, repo.Dir, "local.txt", "local\n")

	_, err := client.PullRebase(context.Background())
	require.NoError(t, err)

	assert.FileExists(t, repo.Dir+"/upstream.txt")
	assert.FileExists(t, repo.Dir+"/local.txt")
}

func TestClient_CommitFailureCarriesStderr(t *testing.T) {
	repo := NewTestRepo(t)
	client := NewClient(Options{Dir: repo.Dir})

	_, err := client.Commit(context.Background(), "chore: nothing staged")
	require.Error(t, err)
	assert.ErrorIs(t, err, gitutil.ErrGitOperation)

	var cmdErr *gitutil.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, "git commit failed", cmdErr.Action)
}

func TestClient_PushFailureCarriesStderr(t *testing.T) {
	repo := NewTestRepo(t)
	RunGit(t, repo.Dir, "remote", "set-url", "origin", repo.Remote+"-missing")
	client := NewClient(Options{Dir: repo.Dir})

	_, err := client.Push(context.Background())
	require.Error(t, err)

	var cmdErr *gitutil.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.NotEmpty(t, cmdErr.Stderr)
	assert.Contains(t, err.Error(), cmdErr.Stderr)
}

func TestClient_VerboseEchoesOperations(t *testing.T) {
	repo := NewTestRepo(t)
	var logBuf bytes.Buffer
	client := NewClient(Options{Dir: repo.Dir, Verbose: true, Logger: &logBuf})

	_, err := client.Status(context.Background())
	require.NoError(t, err)
	_, err = client.StageAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Running: git status --short\nRunning: git add .\n", logBuf.String())
}
