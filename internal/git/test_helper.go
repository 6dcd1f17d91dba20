//go:build !prod

package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestRepo is a throwaway clone wired to a local bare remote.
type TestRepo struct {
	Dir    string
	Remote string
}

// NewTestRepo creates a bare remote and a clone with one pushed commit,
// both under t.TempDir(). The test is skipped when git is unavailable.
func NewTestRepo(t *testing.T) *TestRepo {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	root := t.TempDir()
	remote := filepath.Join(root, "remote.git")
	dir := filepath.Join(root, "work")

	RunGit(t, root, "init", "--bare", "--initial-branch=main", remote)
	RunGit(t, root, "clone", remote, dir)
	configureIdentity(t, dir)
	RunGit(t, dir, "symbolic-ref", "HEAD", "refs/heads/main")

	WriteFile(t, dir, "README.md", "# test\n")
	RunGit(t, dir, "add", "README.md")
	RunGit(t, dir, "commit", "-m", "chore: initial commit")
	RunGit(t, dir, "push", "-u", "origin", "main")

	repo := &TestRepo{Dir: dir, Remote: remote}
	VerifyTestIsolation(t, repo.Dir)
	return repo
}

// Clone makes a second working copy of the same remote, used to create
// upstream changes the first clone does not have yet.
func (r *TestRepo) Clone(t *testing.T) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "other")
	RunGit(t, filepath.Dir(dir), "clone", r.Remote, dir)
	configureIdentity(t, dir)
	return dir
}

// RunGit runs git in dir and fails the test on error.
func RunGit(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %s failed: %v\n%s", strings.Join(args, " "), err, out)
	}
	return strings.TrimSpace(string(out))
}

// WriteFile writes content to name inside dir.
func WriteFile(t *testing.T, dir, name, content string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func configureIdentity(t *testing.T, dir string) {
	t.Helper()

	RunGit(t, dir, "config", "user.name", "Test")
	RunGit(t, dir, "config", "user.email", "test@test.com")
	RunGit(t, dir, "config", "commit.gpgsign", "false")
	RunGit(t, dir, "config", "core.hooksPath", "/dev/null")
}

// VerifyTestIsolation fails the test when dir is not below the system temp dir.
func VerifyTestIsolation(t *testing.T, dir string) {
	t.Helper()

	tmp, err := filepath.EvalSymlinks(os.TempDir())
	if err != nil {
		tmp = os.TempDir()
	}
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		resolved = dir
	}
	if !strings.HasPrefix(resolved, tmp) {
		t.Fatalf("SAFETY: test repository %s is outside the temp directory %s", resolved, tmp)
	}
}
