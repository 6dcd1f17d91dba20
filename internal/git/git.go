// Package git wraps the git binary behind the handful of operations the
// commit workflow needs.
package git

import (
	"context"
	"io"

	"github.com/samzong/check-commit/internal/gitcmd"
	"github.com/samzong/check-commit/internal/gitutil"
)

// Options configures a Client.
type Options struct {
	Verbose bool
	Dir     string
	Env     []string
	Logger  io.Writer
}

// Client runs git in a single working directory.
type Client struct {
	runner gitcmd.Runner
}

func NewClient(opts Options) *Client {
	return &Client{
		runner: gitcmd.Runner{
			Verbose: opts.Verbose,
			Dir:     opts.Dir,
			Env:     opts.Env,
			Logger:  opts.Logger,
		},
	}
}

// IsRepository reports whether the working directory is inside a git work tree.
func (c *Client) IsRepository(ctx context.Context) bool {
	result, err := c.runner.Run(ctx, "rev-parse", "--is-inside-work-tree")
	return err == nil && result.StdoutString(true) == "true"
}

// TopLevel returns the absolute path of the repository root.
func (c *Client) TopLevel(ctx context.Context) (string, error) {
	result, err := c.runner.Run(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", gitutil.WrapGitError("git rev-parse failed", result, err)
	}
	return result.StdoutString(true), nil
}

// Status returns the short-format working tree status.
func (c *Client) Status(ctx context.Context) (string, error) {
	return c.exec(ctx, "git status failed", "status", "--short")
}

// StageAll stages every change in the working tree.
func (c *Client) StageAll(ctx context.Context) (string, error) {
	return c.exec(ctx, "git add failed", "add", ".")
}

// PullRebase replays local commits on top of upstream, stashing local
// changes for the duration of the rebase.
func (c *Client) PullRebase(ctx context.Context) (string, error) {
	return c.exec(ctx, "git pull --rebase failed", "pull", "--rebase", "--autostash")
}

// Commit records the staged changes with message.
func (c *Client) Commit(ctx context.Context, message string) (string, error) {
	return c.exec(ctx, "git commit failed", "commit", "-m", message)
}

// Push pushes the current branch to its upstream.
func (c *Client) Push(ctx context.Context) (string, error) {
	return c.exec(ctx, "git push failed", "push")
}

func (c *Client) exec(ctx context.Context, action string, args ...string) (string, error) {
	result, err := c.runner.RunLogged(ctx, args...)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", gitutil.WrapGitError(action, result, err)
	}
	return result.StdoutString(true), nil
}
