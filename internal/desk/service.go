// Package desk orchestrates the three data tiers behind one read/write
// contract: the remote issue store (authoritative, optional), the static
// snapshot (read-only fallback for issues), and the local store (durable
// leg of every write, fallback for activity).
//
// Every read degrades to an empty result rather than surfacing a network or
// storage error; every write's remote leg is fire-and-forget once the local
// leg has succeeded. There is no retry or reconciliation queue: a remote
// write lost to a transient failure stays local until the next explicit
// update. That limitation is deliberate.
package desk

import (
	"context"

	"github.com/spiffcs/triagedesk/internal/localstore"
	"github.com/spiffcs/triagedesk/internal/log"
	"github.com/spiffcs/triagedesk/internal/model"
	"github.com/spiffcs/triagedesk/internal/remote"
	"github.com/spiffcs/triagedesk/internal/snapshot"
)

// Service is the single entry point the UI calls.
type Service struct {
	remote   *remote.Client
	snapshot *snapshot.Reader
	local    *localstore.Store
}

// New creates a Service. remote may be unconfigured (empty base URL) and
// snapshot may have an empty URL; local must be non-nil.
func New(remoteClient *remote.Client, snapshotReader *snapshot.Reader, local *localstore.Store) *Service {
	return &Service{
		remote:   remoteClient,
		snapshot: snapshotReader,
		local:    local,
	}
}

// Issues returns the issue list from the best available tier, with local
// status overrides applied. Worst case is an empty list, never an error.
func (s *Service) Issues(ctx context.Context) []model.Issue {
	issues := s.fetchIssues(ctx)
	s.overlayStatuses(issues)
	return issues
}

func (s *Service) fetchIssues(ctx context.Context) []model.Issue {
	if s.remote.Configured() {
		issues, err := s.remote.Issues(ctx)
		if err == nil {
			return issues
		}
		log.Info("remote issue list unavailable, falling back to snapshot", "error", err)
	}
	return s.snapshot.Load(ctx)
}

// Issue returns a single issue or nil when not found. A remote 404 is
// authoritative: the store of record has spoken, and the snapshot is not
// consulted. Only a remote failure falls through to the snapshot.
func (s *Service) Issue(ctx context.Context, number int) *model.Issue {
	if s.remote.Configured() {
		issue, err := s.remote.Issue(ctx, number)
		if err == nil {
			s.overlayIssueStatus(issue)
			return issue
		}
		log.Info("remote issue fetch unavailable, scanning snapshot", "number", number, "error", err)
	}

	for _, issue := range s.snapshot.Load(ctx) {
		if issue.Number == number {
			found := issue
			s.overlayIssueStatus(&found)
			return &found
		}
	}
	return nil
}

// SetStatus updates an issue's review status. The local write is the
// durable record and the only one whose error surfaces; the remote PATCH is
// attempted afterwards and swallowed on failure.
func (s *Service) SetStatus(ctx context.Context, number int, status model.Status) error {
	if err := s.local.SetStatus(number, status); err != nil {
		return err
	}

	if s.remote.Configured() {
		if err := s.remote.SetStatus(ctx, number, status); err != nil {
			log.Debug("remote status write failed, local copy is authoritative", "number", number, "error", err)
		}
	}
	return nil
}

// RecordActivity appends an audit entry. The local store generates the ID
// and timestamp; the identical fully-formed entry is then posted to the
// remote store so both records share identity. Remote failure is swallowed.
func (s *Service) RecordActivity(ctx context.Context, entry model.ActivityEntry) error {
	full, err := s.local.AppendActivity(entry)
	if err != nil {
		return err
	}

	if s.remote.Configured() {
		if err := s.remote.RecordActivity(ctx, full); err != nil {
			log.Debug("remote activity write failed, local copy is authoritative", "id", full.ID, "error", err)
		}
	}
	return nil
}

// Activity returns the audit log, newest first. Remote is tried first; the
// local store is the fallback (the snapshot carries no activity data).
func (s *Service) Activity(ctx context.Context) []model.ActivityEntry {
	if s.remote.Configured() {
		entries, err := s.remote.Activity(ctx)
		if err == nil {
			return entries
		}
		log.Info("remote activity unavailable, falling back to local store", "error", err)
	}
	return s.local.Activity()
}

// ClearActivity removes the local activity log. The remote log has no
// clear operation.
func (s *Service) ClearActivity() error {
	return s.local.ClearActivity()
}

// Statuses exposes the local status-override mapping.
func (s *Service) Statuses() map[int]model.Status {
	return s.local.Statuses()
}

// ScanHistory returns a page of scan runs. Remote-only: these are
// server-observation queries with no offline meaning, so an unconfigured
// or failing remote yields an empty page.
func (s *Service) ScanHistory(ctx context.Context, limit, offset int) remote.ScanPage {
	if !s.remote.Configured() {
		return remote.ScanPage{}
	}
	page, err := s.remote.ScanHistory(ctx, limit, offset)
	if err != nil {
		log.Info("scan history unavailable", "error", err)
		return remote.ScanPage{}
	}
	return page
}

// Investigations returns a page of the investigation listing. Remote-only,
// same policy as ScanHistory.
func (s *Service) Investigations(ctx context.Context, limit, offset int) remote.InvestigationPage {
	if !s.remote.Configured() {
		return remote.InvestigationPage{}
	}
	page, err := s.remote.Investigations(ctx, limit, offset)
	if err != nil {
		log.Info("investigation list unavailable", "error", err)
		return remote.InvestigationPage{}
	}
	return page
}

// overlayStatuses applies local status overrides on top of whatever tier
// served the list. A local override reflects the reviewer's latest action
// even when the remote write was lost.
func (s *Service) overlayStatuses(issues []model.Issue) {
	overrides := s.local.Statuses()
	if len(overrides) == 0 {
		return
	}
	for i := range issues {
		if status, ok := overrides[issues[i].Number]; ok {
			issues[i].Status = status
		}
	}
}

func (s *Service) overlayIssueStatus(issue *model.Issue) {
	if issue == nil {
		return
	}
	if status, ok := s.local.Statuses()[issue.Number]; ok {
		issue.Status = status
	}
}
