package workflow

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

const (
	defaultFormWidth = 80
	minFormWidth     = 40
	formEdgeMargin   = 4
)

var (
	// ErrInteraction matches every failure to obtain an answer from the user.
	ErrInteraction = errors.New("interactive prompt failed")

	ErrNotInteractive = fmt.Errorf("%w: stdin is not a terminal, use --no-verify to skip the checklist", ErrInteraction)
	ErrPromptAborted  = fmt.Errorf("%w: prompt aborted", ErrInteraction)
)

// InteractivePrompter asks checklist questions with huh forms on the terminal.
type InteractivePrompter struct {
	ErrWriter  io.Writer
	Stdin      io.Reader
	Accessible bool
}

func (p *InteractivePrompter) ConfirmChecklist(items []string) ([]int, error) {
	if len(items) == 0 {
		return nil, nil
	}

	options := make([]huh.Option[int], len(items))
	for i, item := range items {
		options[i] = huh.NewOption(item, i)
	}

	var selected []int
	field := huh.NewMultiSelect[int]().
		Title("Definition of Done").
		Description("Mark every item this change satisfies (space to toggle, enter to submit).").
		Options(options...).
		Value(&selected)

	if err := p.run(field); err != nil {
		return nil, err
	}
	return selected, nil
}

func (p *InteractivePrompter) ConfirmProceedWithTodo(pending int) (bool, error) {
	proceed := false
	field := huh.NewConfirm().
		Title(fmt.Sprintf("%d checklist item(s) not confirmed.", pending)).
		Description("Commit anyway with a TODO footer listing them?").
		Affirmative("Yes").
		Negative("No").
		Value(&proceed)

	if err := p.run(field); err != nil {
		return false, err
	}
	return proceed, nil
}

func (p *InteractivePrompter) run(field huh.Field) error {
	stdin := p.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	errWriter := p.ErrWriter
	if errWriter == nil {
		errWriter = os.Stderr
	}

	f, ok := stdin.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return ErrNotInteractive
	}

	form := huh.NewForm(huh.NewGroup(field)).
		WithInput(stdin).
		WithOutput(errWriter).
		WithWidth(formWidth(errWriter)).
		WithAccessible(p.Accessible).
		WithShowHelp(true)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrPromptAborted
		}
		return fmt.Errorf("%w: %v", ErrInteraction, err)
	}
	return nil
}

// formWidth fits the form to the terminal behind w, falling back to a fixed width.
func formWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultFormWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultFormWidth
	}

	available := width - formEdgeMargin
	if available < minFormWidth {
		return minFormWidth
	}
	if available > defaultFormWidth {
		return defaultFormWidth
	}
	return available
}
