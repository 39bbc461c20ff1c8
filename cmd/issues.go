package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spiffcs/triagedesk/internal/model"
)

// NewCmdIssues creates the issues command.
func NewCmdIssues(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issues",
		Short: "List the triaged issue queue",
		Long: `List the triaged issue queue from the best available source.

The remote issue store is preferred; the published snapshot is the fallback.
Local status overrides are always applied.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIssues(opts)
		},
	}

	cmd.Flags().StringVar(&opts.Status, "status", "", "Filter by review status (pending, done, skipped, archived)")

	return cmd
}

func runIssues(opts *Options) error {
	svc, cfg, err := newService()
	if err != nil {
		return err
	}

	issues := svc.Issues(context.Background())
	if opts.Status != "" {
		issues = filterByStatus(issues, model.Status(opts.Status))
	}

	return formatterFor(opts, cfg).Issues(issues, os.Stdout)
}

func filterByStatus(issues []model.Issue, status model.Status) []model.Issue {
	filtered := make([]model.Issue, 0, len(issues))
	for _, issue := range issues {
		if issue.Status == status {
			filtered = append(filtered, issue)
		}
	}
	return filtered
}

// NewCmdShow creates the show command.
func NewCmdShow(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <number>",
		Short: "Show one issue with its full triage assessment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := parseIssueNumber(args[0])
			if err != nil {
				return err
			}
			return runShow(opts, number)
		},
	}
}

func runShow(opts *Options, number int) error {
	svc, cfg, err := newService()
	if err != nil {
		return err
	}

	issue := svc.Issue(context.Background(), number)
	if issue == nil {
		return fmt.Errorf("issue #%d not found", number)
	}

	return formatterFor(opts, cfg).Issue(*issue, os.Stdout)
}

func parseIssueNumber(arg string) (int, error) {
	var number int
	if _, err := fmt.Sscanf(arg, "%d", &number); err != nil || number <= 0 {
		return 0, fmt.Errorf("invalid issue number: %q", arg)
	}
	return number, nil
}
