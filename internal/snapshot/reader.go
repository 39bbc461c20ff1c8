// Package snapshot reads the static triage-results document published by
// the scan pipeline. It is the last-resort read tier: consulted only when
// the remote store is unconfigured or unreachable, and never written to.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spiffcs/triagedesk/internal/log"
	"github.com/spiffcs/triagedesk/internal/model"
	"github.com/spiffcs/triagedesk/internal/normalize"
)

// Reader fetches the versioned snapshot file over HTTP.
type Reader struct {
	url    string
	client *http.Client
	now    func() time.Time
}

// NewReader creates a Reader for the given snapshot URL. An empty URL
// yields a reader whose Load always returns nil.
func NewReader(url string) *Reader {
	return &Reader{
		url:    url,
		client: &http.Client{Timeout: 30 * time.Second},
		now:    time.Now,
	}
}

// NewReaderWithClient creates a Reader with a custom HTTP client (for
// testing).
func NewReaderWithClient(url string, client *http.Client) *Reader {
	return &Reader{url: url, client: client, now: time.Now}
}

// Load fetches the snapshot and returns the issues that carry triage data.
// Unscored issues are excluded: the review queue has nothing to show for
// them. Any fetch or decode failure returns nil; this tier never errors.
func (r *Reader) Load(ctx context.Context) []model.Issue {
	if r == nil || r.url == "" {
		return nil
	}

	// Cache-bust on every call so a stale cached document is never served.
	url := fmt.Sprintf("%s?v=%d", r.url, r.now().UnixMilli())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Debug("snapshot request build failed", "error", err)
		return nil
	}

	resp, err := r.client.Do(req)
	if err != nil {
		log.Debug("snapshot fetch failed", "error", err)
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		log.Debug("snapshot fetch returned non-OK", "status", resp.StatusCode)
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Debug("snapshot read failed", "error", err)
		return nil
	}

	raws, ok := decodeIssueDocument(body)
	if !ok {
		log.Debug("snapshot document unparseable")
		return nil
	}

	all := normalize.NormalizeList(raws)
	triaged := make([]model.Issue, 0, len(all))
	for _, issue := range all {
		if issue.Triage != nil {
			triaged = append(triaged, issue)
		}
	}

	log.Info("loaded snapshot", "issues", len(triaged))
	return triaged
}

// decodeIssueDocument accepts either a bare array of records or an object
// wrapper {"issues": [...]}.
func decodeIssueDocument(body []byte) ([]json.RawMessage, bool) {
	var raws []json.RawMessage
	if err := json.Unmarshal(body, &raws); err == nil {
		return raws, true
	}

	var wrapper struct {
		Issues []json.RawMessage `json:"issues"`
	}
	if err := json.Unmarshal(body, &wrapper); err == nil {
		return wrapper.Issues, true
	}
	return nil, false
}
