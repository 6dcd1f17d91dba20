// Package workflow provides the commit workflow orchestration logic.
package workflow

import "context"

// GitClient is the version-control gateway the commit flow drives.
// Each call blocks until git exits and returns its captured output.
type GitClient interface {
	StageAll(ctx context.Context) (string, error)
	PullRebase(ctx context.Context) (string, error)
	Commit(ctx context.Context, message string) (string, error)
	Push(ctx context.Context) (string, error)
}

// Prompter asks the user about the Definition-of-Done checklist.
type Prompter interface {
	// ConfirmChecklist returns the indices of the items the user marked done.
	ConfirmChecklist(items []string) ([]int, error)
	// ConfirmProceedWithTodo asks whether to commit with pending items listed
	// as a TODO footer.
	ConfirmProceedWithTodo(pending int) (bool, error)
}
