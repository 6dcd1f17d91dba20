package cmd

import (
	"context"
	"fmt"

	"github.com/samzong/check-commit/internal/config"
	"github.com/samzong/check-commit/internal/git"
	"github.com/samzong/check-commit/internal/workflow"
)

var (
	newGitClient = func() *git.Client {
		return git.NewClient(git.Options{Verbose: verbose, Dir: workDir, Logger: errWriter()})
	}

	newPrompter = func() workflow.Prompter {
		return &workflow.InteractivePrompter{ErrWriter: errWriter()}
	}
)

// checklistPath resolves the DoD file against the root of the current repository.
func checklistPath(ctx context.Context, client *git.Client) (string, error) {
	root, err := client.TopLevel(ctx)
	if err != nil {
		return "", fmt.Errorf("not inside a git repository: %w", err)
	}
	return config.ResolvePath(root, dodFile), nil
}
