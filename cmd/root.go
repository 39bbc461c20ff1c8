package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/spiffcs/triagedesk/internal/log"
)

// New creates the root command with all subcommands registered.
func New() *cobra.Command {
	opts := &Options{Limit: 20}
	var tuiFlag, noTUIFlag bool

	rootCmd := &cobra.Command{
		Use:   "triagedesk",
		Short: "Review queue for AI-triaged GitHub issues",
		Long: `A CLI tool for working through AI-triaged GitHub issues.

It reads triage results from the remote issue store when configured, falls
back to the published snapshot, and keeps review statuses and an activity
log locally so a flaky network never blocks a review session.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Initialize(opts.Verbosity, os.Stderr)
			if tuiFlag {
				v := true
				opts.TUI = &v
			} else if noTUIFlag {
				v := false
				opts.TUI = &v
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReview(opts)
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().CountVarP(&opts.Verbosity, "verbose", "v", "Increase verbosity (-v, -vv, -vvv)")
	rootCmd.PersistentFlags().StringVarP(&opts.Format, "output", "o", "", "Output format (table, json, markdown)")
	rootCmd.Flags().BoolVar(&tuiFlag, "tui", false, "Force the interactive review queue")
	rootCmd.Flags().BoolVar(&noTUIFlag, "no-tui", false, "Disable the interactive review queue")
	rootCmd.MarkFlagsMutuallyExclusive("tui", "no-tui")

	rootCmd.AddCommand(NewCmdIssues(opts))
	rootCmd.AddCommand(NewCmdShow(opts))
	rootCmd.AddCommand(NewCmdStatus())
	rootCmd.AddCommand(NewCmdActivity(opts))
	rootCmd.AddCommand(NewCmdScans(opts))
	rootCmd.AddCommand(NewCmdInvestigations(opts))
	rootCmd.AddCommand(NewCmdConfig())
	rootCmd.AddCommand(NewCmdVersion())

	return rootCmd
}
