package cmd

import (
	"fmt"

	"github.com/samzong/check-commit/internal/config"
	"github.com/samzong/check-commit/internal/ui"
	"github.com/spf13/cobra"
)

var (
	initForce bool
	initCmd   = &cobra.Command{
		Use:   "init",
		Short: "Write a starter Definition-of-Done file to the repository root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd)
		},
	}
)

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing Definition-of-Done file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command) error {
	path, err := checklistPath(cmd.Context(), newGitClient())
	if err != nil {
		return err
	}

	if err := config.Write(path, config.DefaultChecklist(), initForce); err != nil {
		return err
	}

	ui.Success(outWriter(), "Wrote %s", path)
	fmt.Fprintln(outWriter(), "Edit the checklist to match your team's Definition of Done and commit the file.")
	return nil
}
