package cmd

import (
	"context"
	"fmt"

	"github.com/spiffcs/triagedesk/config"
	"github.com/spiffcs/triagedesk/internal/desk"
	"github.com/spiffcs/triagedesk/internal/ghclient"
	"github.com/spiffcs/triagedesk/internal/localstore"
	"github.com/spiffcs/triagedesk/internal/log"
	"github.com/spiffcs/triagedesk/internal/output"
	"github.com/spiffcs/triagedesk/internal/remote"
	"github.com/spiffcs/triagedesk/internal/snapshot"
	"github.com/spiffcs/triagedesk/internal/tui"
)

// newService wires the three data tiers from the merged configuration.
func newService() (*desk.Service, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	local, err := localstore.NewStore()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open local store: %w", err)
	}

	svc := desk.New(
		remote.NewClient(cfg.APIBaseURL),
		snapshot.NewReader(cfg.SnapshotURL),
		local,
	)
	return svc, cfg, nil
}

// newPublisher builds the GitHub write client, or nil when token or repo is
// not configured. Review works fine without it; posting keys report why.
func newPublisher(ctx context.Context, cfg *config.Config) tui.Publisher {
	token := cfg.GetGitHubToken()
	owner, name, ok := cfg.SplitRepo()
	if token == "" || !ok {
		return nil
	}

	client, err := ghclient.NewClient(ctx, token, owner, name)
	if err != nil {
		log.Debug("github client unavailable", "error", err)
		return nil
	}
	return client
}

// formatterFor resolves the output format from the flag, falling back to the
// configured default.
func formatterFor(opts *Options, cfg *config.Config) output.Formatter {
	name := opts.Format
	if name == "" {
		name = cfg.DefaultFormat
	}
	return output.NewFormatter(output.Format(name))
}
