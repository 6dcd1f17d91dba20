package workflow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/samzong/check-commit/internal/config"
	"github.com/samzong/check-commit/internal/formatter"
	"github.com/samzong/check-commit/internal/ui"
)

var (
	ErrIssueReferenceRequired = errors.New("missing required issue reference: the Definition of Done requires --issue")
	ErrInvalidRequest         = errors.New("invalid commit request")
)

// CommitRequest is the commit metadata supplied on the command line.
type CommitRequest struct {
	Type             string
	Scope            string
	Description      string
	SkipVerification bool
	IssueReference   string
}

type CommitOptions struct {
	DryRun    bool
	Verbose   bool
	OutWriter io.Writer
	ErrWriter io.Writer
	Logger    zerolog.Logger
}

// Result reports where a run stopped and the message it built, if any.
type Result struct {
	State   State
	Message formatter.Message
}

type CommitFlow struct {
	git       GitClient
	checklist *config.ChecklistConfig
	opts      CommitOptions
	prompter  Prompter
	state     State
}

func NewCommitFlow(git GitClient, checklist *config.ChecklistConfig, opts CommitOptions) *CommitFlow {
	if opts.OutWriter == nil {
		opts.OutWriter = os.Stdout
	}
	if opts.ErrWriter == nil {
		opts.ErrWriter = os.Stderr
	}
	if checklist == nil {
		checklist = &config.ChecklistConfig{}
	}
	return &CommitFlow{
		git:       git,
		checklist: checklist,
		opts:      opts,
		prompter:  &InteractivePrompter{ErrWriter: opts.ErrWriter},
		state:     StateStart,
	}
}

func (f *CommitFlow) SetPrompter(p Prompter) {
	f.prompter = p
}

// State returns the state the last Run stopped in.
func (f *CommitFlow) State() State {
	return f.state
}

// Run drives one commit from checklist evaluation to push. Declining the
// TODO prompt ends in StateAborted with a nil error; every other early exit
// ends in StateFailed. A failure after the commit step leaves the local
// commit in place.
func (f *CommitFlow) Run(ctx context.Context, req CommitRequest) (Result, error) {
	f.state = StateStart

	if err := validateRequest(req); err != nil {
		return f.fail(formatter.Message{}, err)
	}

	if f.checklist.IssueReferenceRequired && strings.TrimSpace(req.IssueReference) == "" {
		return f.fail(formatter.Message{}, ErrIssueReferenceRequired)
	}

	items, confirmed, proceed, err := f.evaluateChecklist(req)
	if err != nil {
		return f.fail(formatter.Message{}, err)
	}
	f.transition(StateChecklistEvaluated)

	if !proceed {
		f.transition(StateAborted)
		fmt.Fprintln(f.opts.ErrWriter, "Commit aborted by user, nothing was changed")
		return Result{State: f.state}, nil
	}

	msg := formatter.Build(req.Type, req.Scope, req.Description, items, confirmed, req.IssueReference)
	f.transition(StateMessageBuilt)
	ui.Info(f.opts.OutWriter, "Commit message will be:\n---\n%s\n---", msg.String())

	if f.opts.DryRun {
		fmt.Fprintln(f.opts.ErrWriter, "Dry run mode, no actual commit")
		return Result{State: f.state, Message: msg}, nil
	}

	if err := f.runGitSequence(ctx, msg.String()); err != nil {
		return f.fail(msg, err)
	}

	f.transition(StateDone)
	ui.Success(f.opts.OutWriter, "Successfully committed and pushed changes.")
	return Result{State: f.state, Message: msg}, nil
}

// evaluateChecklist returns the checklist items that feed the TODO footer,
// the indices the user confirmed, and whether the commit may proceed.
func (f *CommitFlow) evaluateChecklist(req CommitRequest) ([]string, []int, bool, error) {
	if req.SkipVerification {
		f.opts.Logger.Debug().Msg("checklist verification skipped")
		return nil, nil, true, nil
	}

	items := f.checklist.Items
	if len(items) == 0 {
		return nil, nil, true, nil
	}

	confirmed, err := f.prompter.ConfirmChecklist(items)
	if err != nil {
		return nil, nil, false, err
	}
	confirmed = normalizeIndices(confirmed, len(items))

	f.opts.Logger.Debug().
		Int("confirmed", len(confirmed)).
		Int("total", len(items)).
		Msg("checklist confirmed")

	if len(confirmed) == len(items) {
		return items, confirmed, true, nil
	}

	proceed, err := f.prompter.ConfirmProceedWithTodo(len(items) - len(confirmed))
	if err != nil {
		return nil, nil, false, err
	}
	return items, confirmed, proceed, nil
}

type gitStep struct {
	name    string
	next    State
	spinner string
	run     func(ctx context.Context) (string, error)
}

func (f *CommitFlow) runGitSequence(ctx context.Context, message string) error {
	steps := []gitStep{
		{name: "stage", next: StateStaged, run: f.git.StageAll},
		{name: "rebase-pull", next: StateRebased, spinner: "Pulling latest changes...", run: f.git.PullRebase},
		{name: "commit", next: StateCommitted, run: func(ctx context.Context) (string, error) {
			return f.git.Commit(ctx, message)
		}},
		{name: "push", next: StatePushed, spinner: "Pushing...", run: f.git.Push},
	}

	for _, step := range steps {
		output, err := f.runStep(ctx, step)
		if err != nil {
			return fmt.Errorf("%s step failed: %w", step.name, err)
		}
		f.opts.Logger.Debug().Str("step", step.name).Str("output", output).Msg("git step completed")
		f.transition(step.next)
	}
	return nil
}

func (f *CommitFlow) runStep(ctx context.Context, step gitStep) (string, error) {
	if step.spinner == "" || f.opts.Verbose {
		return step.run(ctx)
	}

	sp := ui.NewSpinner(step.spinner)
	sp.Start()
	defer sp.Stop()
	return step.run(ctx)
}

func (f *CommitFlow) transition(next State) {
	f.opts.Logger.Debug().Stringer("from", f.state).Stringer("to", next).Msg("commit workflow transition")
	f.state = next
}

func (f *CommitFlow) fail(msg formatter.Message, err error) (Result, error) {
	f.transition(StateFailed)
	return Result{State: f.state, Message: msg}, err
}

func validateRequest(req CommitRequest) error {
	if strings.TrimSpace(req.Type) == "" {
		return fmt.Errorf("%w: commit type is required", ErrInvalidRequest)
	}
	if strings.TrimSpace(req.Description) == "" {
		return fmt.Errorf("%w: commit message is required", ErrInvalidRequest)
	}
	return nil
}

// normalizeIndices drops duplicates and out-of-range values so the confirmed
// count can be compared against the item count.
func normalizeIndices(indices []int, n int) []int {
	seen := make(map[int]struct{}, len(indices))
	result := make([]int, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= n {
			continue
		}
		if _, ok := seen[idx]; ok {
			continue
		}
		seen[idx] = struct{}{}
		result = append(result, idx)
	}
	sort.Ints(result)
	return result
}
