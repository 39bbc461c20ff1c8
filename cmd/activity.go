package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewCmdActivity creates the activity command.
func NewCmdActivity(opts *Options) *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show the review activity log",
		Long: `Show the review activity log, newest first.

The remote log is preferred; the local log is the fallback. --clear removes
the local log only, the remote record is append-only.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if clear {
				return runActivityClear()
			}
			return runActivity(opts)
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "Clear the local activity log")

	return cmd
}

func runActivity(opts *Options) error {
	svc, cfg, err := newService()
	if err != nil {
		return err
	}

	entries := svc.Activity(context.Background())
	return formatterFor(opts, cfg).Activity(entries, os.Stdout)
}

func runActivityClear() error {
	svc, _, err := newService()
	if err != nil {
		return err
	}

	if err := svc.ClearActivity(); err != nil {
		return err
	}
	fmt.Println("Local activity log cleared.")
	return nil
}
