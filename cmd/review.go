package cmd

import (
	"context"

	"github.com/spiffcs/triagedesk/internal/tui"
)

// runReview is the default command: the interactive review queue, or the
// issue table when stdout is not a terminal.
func runReview(opts *Options) error {
	svc, cfg, err := newService()
	if err != nil {
		return err
	}

	useTUI := tui.ShouldUseTUI()
	if opts.TUI != nil {
		useTUI = *opts.TUI
	}
	if !useTUI {
		return runIssues(opts)
	}

	ctx := context.Background()
	issues := svc.Issues(ctx)
	return tui.Run(svc, issues, newPublisher(ctx, cfg))
}
