// Package remote is a thin typed client for the edge issue-store API. It is
// the authoritative tier: always tried first when a base URL is configured.
//
// Every operation distinguishes two outcomes the facade treats differently:
// a well-formed negative result (404 on a single issue, an empty list) and
// the single transient failure kind ErrUnavailable (unreachable host or
// non-2xx status), which triggers fallback.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spiffcs/triagedesk/internal/model"
	"github.com/spiffcs/triagedesk/internal/normalize"
)

// ErrUnavailable is the single failure kind for a remote that could not
// serve: transport errors, 5xx, and any other non-2xx status outside the
// negative results each operation defines.
var ErrUnavailable = errors.New("remote issue store unavailable")

// Client talks to the edge API at a configured base URL.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given base URL. An empty base URL
// produces an unconfigured client; callers check Configured before use.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientWithHTTP creates a client with a custom HTTP client (for
// testing).
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    httpClient,
	}
}

// Configured reports whether a base URL was supplied. Unconfigured means
// the remote tier is disabled entirely.
func (c *Client) Configured() bool {
	return c != nil && c.baseURL != ""
}

// Issues lists all issues, normalized to the canonical shape. The endpoint
// may return a bare array or an {issues: [...]} wrapper, in either wire
// shape.
func (c *Client) Issues(ctx context.Context) ([]model.Issue, error) {
	body, err := c.get(ctx, "/api/issues")
	if err != nil {
		return nil, err
	}

	raws, ok := decodeIssueDocument(body)
	if !ok {
		return nil, fmt.Errorf("%w: malformed issue list", ErrUnavailable)
	}
	return normalize.NormalizeList(raws), nil
}

// Issue fetches a single issue by number. A 404 is an authoritative
// negative result and returns (nil, nil); it is not a failure.
func (c *Client) Issue(ctx context.Context, number int) (*model.Issue, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/issues/%d", number), nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	issue, ok := normalize.Normalize(body)
	if !ok {
		return nil, fmt.Errorf("%w: malformed issue record", ErrUnavailable)
	}
	return &issue, nil
}

// SetStatus PATCHes a status update for one issue.
func (c *Client) SetStatus(ctx context.Context, number int, status model.Status) error {
	payload, err := json.Marshal(map[string]string{"status": string(status)})
	if err != nil {
		return err
	}

	resp, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/issues/%d/status", number), payload)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
	return nil
}

// Activity lists activity entries recorded on the remote store.
func (c *Client) Activity(ctx context.Context) ([]model.ActivityEntry, error) {
	body, err := c.get(ctx, "/api/activity")
	if err != nil {
		return nil, err
	}

	var entries []model.ActivityEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("%w: malformed activity list", ErrUnavailable)
	}
	return entries, nil
}

// RecordActivity POSTs a fully-formed entry. The caller supplies the ID and
// timestamp so the remote record matches the local one.
func (c *Client) RecordActivity(ctx context.Context, entry model.ActivityEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	resp, err := c.do(ctx, http.MethodPost, "/api/activity", payload)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
	return nil
}

// ScanPage is one page of scan-run history.
type ScanPage struct {
	Runs  []model.ScanRun `json:"runs"`
	Total int             `json:"total"`
}

// ScanHistory lists scan runs, newest first.
func (c *Client) ScanHistory(ctx context.Context, limit, offset int) (ScanPage, error) {
	body, err := c.get(ctx, fmt.Sprintf("/api/scan/history?limit=%d&offset=%d", limit, offset))
	if err != nil {
		return ScanPage{}, err
	}

	var page ScanPage
	if err := json.Unmarshal(body, &page); err != nil {
		return ScanPage{}, fmt.Errorf("%w: malformed scan history", ErrUnavailable)
	}
	return page, nil
}

// InvestigationPage is one page of the investigation listing.
type InvestigationPage struct {
	Investigations []model.InvestigationRow `json:"investigations"`
	Total          int                      `json:"total"`
}

// Investigations lists issues with a completed or pending investigation.
func (c *Client) Investigations(ctx context.Context, limit, offset int) (InvestigationPage, error) {
	body, err := c.get(ctx, fmt.Sprintf("/api/scan/investigations?limit=%d&offset=%d", limit, offset))
	if err != nil {
		return InvestigationPage{}, err
	}

	var page InvestigationPage
	if err := json.Unmarshal(body, &page); err != nil {
		return InvestigationPage{}, fmt.Errorf("%w: malformed investigation list", ErrUnavailable)
	}
	return page, nil
}

// get performs a GET and returns the body of a 2xx response.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return body, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return resp, nil
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
