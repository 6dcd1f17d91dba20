package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	dodFile string
	// workDir is the repository git runs in; empty means the process working directory.
	workDir string
	rootCmd = &cobra.Command{
		Use:   "check-commit",
		Short: "check-commit - Definition-of-Done commit helper",
		Long: `check-commit streamlines a trunk-based git workflow. It walks you through ` +
			`your team's Definition-of-Done checklist, composes a conventional commit ` +
			`message, then stages, rebases onto upstream, commits and pushes in one go.`,
		Version:       fmt.Sprintf("%s (built at %s)", Version, BuildTime),
		SilenceErrors: true,
		SilenceUsage:  true,
	}
)

func Execute() error {
	return rootCmd.Execute()
}

// SetContext sets the context handed to every command.
func SetContext(ctx context.Context) {
	rootCmd.SetContext(ctx)
}

// RootCmd returns the root command, used by the man page generator.
func RootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Print every git command before running it")
	rootCmd.PersistentFlags().StringVar(&dodFile, "dod-file", "",
		"Definition-of-Done file, relative to the repository root (default is .dod.yml)")
}
