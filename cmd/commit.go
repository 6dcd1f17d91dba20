package cmd

import (
	"fmt"

	"github.com/samzong/check-commit/internal/committype"
	"github.com/samzong/check-commit/internal/config"
	"github.com/samzong/check-commit/internal/logging"
	"github.com/samzong/check-commit/internal/ui"
	"github.com/samzong/check-commit/internal/workflow"
	"github.com/spf13/cobra"
)

var (
	commitType    string
	commitScope   string
	commitMessage string
	issueRef      string
	noVerify      bool
	dryRun        bool
	commitCmd     = &cobra.Command{
		Use:   "commit",
		Short: "Check the Definition of Done, then commit and push",
		Long: `Walk through the Definition-of-Done checklist, compose a conventional commit ` +
			`message, then run git add, git pull --rebase --autostash, git commit and git push. ` +
			`The first failing step stops the sequence.

Use the imperative, present tense: "change" not "changed". Think of "This commit will...".

` + committype.HelpText(),
		Example: `  check-commit commit --type feat --scope api -m "Add user endpoint"
  check-commit commit -t fix -m "Handle empty input" --issue PROJ-42
  check-commit commit -t chore -m "Bump deps" --no-verify`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCommit(cmd)
		},
	}
)

func init() {
	flags := commitCmd.Flags()
	flags.StringVarP(&commitType, "type", "t", "", "Commit type (e.g. 'feat', 'fix', 'chore', 'docs')")
	flags.StringVarP(&commitScope, "scope", "s", "", "Optional scope of the commit")
	flags.StringVarP(&commitMessage, "message", "m", "", "The descriptive commit message")
	flags.StringVarP(&issueRef, "issue", "i", "", "Issue reference appended as a Refs: trailer")
	flags.BoolVar(&noVerify, "no-verify", false, "Skip the Definition-of-Done checklist")
	flags.BoolVar(&dryRun, "dry-run", false, "Compose the message only, do not run git")

	_ = commitCmd.MarkFlagRequired("type")
	_ = commitCmd.MarkFlagRequired("message")
	_ = commitCmd.RegisterFlagCompletionFunc("type",
		func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return committype.CompletionValues(toComplete), cobra.ShellCompDirectiveNoFileComp
		})

	rootCmd.AddCommand(commitCmd)
}

func runCommit(cmd *cobra.Command) error {
	ctx := cmd.Context()
	logger := logging.New(verbose, errWriter())
	client := newGitClient()

	path, err := checklistPath(ctx, client)
	if err != nil {
		return err
	}
	checklist, err := config.Load(path)
	if err != nil {
		return err
	}
	logger.Debug().
		Str("path", path).
		Int("items", len(checklist.Items)).
		Bool("issue_reference_required", checklist.IssueReferenceRequired).
		Msg("checklist loaded")

	if !committype.IsKnown(commitType) {
		ui.Warn(errWriter(), "Warning: %q is not a common commit type (see --help)", commitType)
	}

	fmt.Fprintln(outWriter(), "--- Committing changes ---")

	flow := workflow.NewCommitFlow(client, checklist, workflow.CommitOptions{
		DryRun:    dryRun,
		Verbose:   verbose,
		OutWriter: outWriter(),
		ErrWriter: errWriter(),
		Logger:    logger,
	})
	flow.SetPrompter(newPrompter())

	_, err = flow.Run(ctx, workflow.CommitRequest{
		Type:             commitType,
		Scope:            commitScope,
		Description:      commitMessage,
		SkipVerification: noVerify,
		IssueReference:   issueRef,
	})
	return err
}
