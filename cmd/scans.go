package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/spiffcs/triagedesk/internal/remote"
)

// NewCmdScans creates the scans command.
func NewCmdScans(opts *Options) *cobra.Command {
	var withInvestigations bool

	cmd := &cobra.Command{
		Use:   "scans",
		Short: "Show scan pipeline run history",
		Long: `Show the scan pipeline's run history from the remote issue store.

These are server-side observations with no offline meaning, so the command
prints an empty listing when no remote store is configured.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScans(opts, withInvestigations)
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "Maximum rows to show")
	cmd.Flags().IntVar(&opts.Offset, "offset", 0, "Pagination offset")
	cmd.Flags().BoolVar(&withInvestigations, "with-investigations", false, "Also show the investigation queue")

	return cmd
}

func runScans(opts *Options, withInvestigations bool) error {
	svc, cfg, err := newService()
	if err != nil {
		return err
	}

	ctx := context.Background()
	formatter := formatterFor(opts, cfg)

	if !withInvestigations {
		return formatter.Scans(svc.ScanHistory(ctx, opts.Limit, opts.Offset), os.Stdout)
	}

	// Both halves of the dashboard are independent remote queries.
	var scans remote.ScanPage
	var investigations remote.InvestigationPage

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		scans = svc.ScanHistory(gctx, opts.Limit, opts.Offset)
		return nil
	})
	g.Go(func() error {
		investigations = svc.Investigations(gctx, opts.Limit, opts.Offset)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if err := formatter.Scans(scans, os.Stdout); err != nil {
		return err
	}
	fmt.Println()
	return formatter.Investigations(investigations, os.Stdout)
}

// NewCmdInvestigations creates the investigations command.
func NewCmdInvestigations(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "investigations",
		Short: "Show the automated investigation queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInvestigations(opts)
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", 50, "Maximum rows to show")
	cmd.Flags().IntVar(&opts.Offset, "offset", 0, "Pagination offset")

	return cmd
}

func runInvestigations(opts *Options) error {
	svc, cfg, err := newService()
	if err != nil {
		return err
	}

	page := svc.Investigations(context.Background(), opts.Limit, opts.Offset)
	return formatterFor(opts, cfg).Investigations(page, os.Stdout)
}
