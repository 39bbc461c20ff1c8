package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spiffcs/triagedesk/internal/model"
)

// NewCmdStatus creates the status command.
func NewCmdStatus() *cobra.Command {
	return &cobra.Command{
		Use:   "status <number> <status>",
		Short: "Set an issue's review status",
		Long: `Set an issue's review status.

The status is written to the local store first and then pushed to the remote
issue store. A remote failure never loses the update; the local copy stays
authoritative for this machine.

Common statuses: pending, done, skipped, archived.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := parseIssueNumber(args[0])
			if err != nil {
				return err
			}
			return runStatus(number, model.Status(args[1]))
		},
	}
}

func runStatus(number int, status model.Status) error {
	svc, _, err := newService()
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := svc.SetStatus(ctx, number, status); err != nil {
		return err
	}

	issue := svc.Issue(ctx, number)
	title := ""
	if issue != nil {
		title = issue.Title
	}
	_ = svc.RecordActivity(ctx, model.ActivityEntry{
		IssueNumber: number,
		IssueTitle:  title,
		Action:      "Status changed",
		Details:     string(status),
	})

	fmt.Printf("Issue #%d marked %s.\n", number, status.Display())
	return nil
}
