package cmd

import (
	"fmt"

	"github.com/samzong/check-commit/internal/ui"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current git status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runStatus(cmd)
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command) error {
	fmt.Fprintln(outWriter(), "--- Checking Git status ---")

	status, err := newGitClient().Status(cmd.Context())
	if err != nil {
		return err
	}
	if status == "" {
		status = "nothing to commit, working tree clean"
	}

	ui.Success(outWriter(), "Git Status:\n%s", status)
	return nil
}
