package remote

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spiffcs/triagedesk/internal/model"
)

const flatIssue = `{
	"number": 1234,
	"title": "Test issue: DataGrid crash",
	"author": "testuser",
	"author_avatar": "https://avatars.githubusercontent.com/u/1?v=4",
	"created_at": "2025-01-15T10:00:00Z",
	"labels": "[\"bug\"]",
	"status": "pending",
	"type": "Bug",
	"priority": "High",
	"completeness": 80,
	"summary": "DataGrid crashes on sort",
	"checklist": "{\"hasReproSteps\":true,\"hasVersion\":true,\"hasExpectedBehavior\":true,\"hasEnvironment\":false,\"hasScreenshot\":false}",
	"suggested_labels": "[\"bug\"]"
}`

func TestIssuesAcceptsWrapperAndBareArray(t *testing.T) {
	for _, body := range []string{
		`{"issues": [` + flatIssue + `]}`,
		`[` + flatIssue + `]`,
	} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/issues" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			_, _ = w.Write([]byte(body))
		}))

		client := NewClientWithHTTP(srv.URL, srv.Client())
		issues, err := client.Issues(context.Background())
		if err != nil {
			t.Fatalf("Issues() error: %v", err)
		}
		if len(issues) != 1 {
			t.Fatalf("expected 1 issue, got %d", len(issues))
		}
		if issues[0].Triage == nil || issues[0].Triage.Priority != model.PriorityHigh {
			t.Errorf("issue not normalized: %+v", issues[0])
		}
		srv.Close()
	}
}

func TestIssuesUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClientWithHTTP(srv.URL, srv.Client())
	_, err := client.Issues(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}

	// Unreachable host is the same failure kind.
	dead := NewClient("http://127.0.0.1:1")
	if _, err := dead.Issues(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable for unreachable host, got %v", err)
	}
}

func TestIssueNotFoundIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := NewClientWithHTTP(srv.URL, srv.Client())
	issue, err := client.Issue(context.Background(), 9999)
	if err != nil {
		t.Fatalf("expected nil error for 404, got %v", err)
	}
	if issue != nil {
		t.Errorf("expected nil issue for 404, got %+v", issue)
	}
}

func TestIssueNormalizesFlatRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/issues/1234" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(flatIssue))
	}))
	defer srv.Close()

	client := NewClientWithHTTP(srv.URL, srv.Client())
	issue, err := client.Issue(context.Background(), 1234)
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}
	if issue == nil || issue.Triage == nil {
		t.Fatal("expected normalized issue with triage")
	}
	if issue.AuthorAvatar == "" {
		t.Error("author_avatar not mapped")
	}
}

func TestSetStatus(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	client := NewClientWithHTTP(srv.URL, srv.Client())
	if err := client.SetStatus(context.Background(), 1234, model.StatusDone); err != nil {
		t.Fatalf("SetStatus() error: %v", err)
	}
	if gotMethod != http.MethodPatch {
		t.Errorf("method = %s, want PATCH", gotMethod)
	}
	if gotPath != "/api/issues/1234/status" {
		t.Errorf("path = %s", gotPath)
	}
	if gotBody["status"] != "done" {
		t.Errorf("body status = %q, want done", gotBody["status"])
	}
}

func TestRecordActivityPostsFullEntry(t *testing.T) {
	var got model.ActivityEntry
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()

	entry := model.ActivityEntry{
		ID:          "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		Timestamp:   "2025-02-20T10:00:00Z",
		IssueNumber: 1234,
		IssueTitle:  "Test",
		Action:      "Posted comment",
	}

	client := NewClientWithHTTP(srv.URL, srv.Client())
	if err := client.RecordActivity(context.Background(), entry); err != nil {
		t.Fatalf("RecordActivity() error: %v", err)
	}
	if got.ID != entry.ID || got.Timestamp != entry.Timestamp {
		t.Errorf("remote entry identity differs: %+v", got)
	}
}

func TestScanHistoryPagination(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("limit") != "20" || r.URL.Query().Get("offset") != "40" {
			t.Errorf("pagination params missing: %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"runs": [{"id": 1, "status": "completed", "issues_found": 12}], "total": 41}`))
	}))
	defer srv.Close()

	client := NewClientWithHTTP(srv.URL, srv.Client())
	page, err := client.ScanHistory(context.Background(), 20, 40)
	if err != nil {
		t.Fatalf("ScanHistory() error: %v", err)
	}
	if page.Total != 41 || len(page.Runs) != 1 {
		t.Errorf("unexpected page: %+v", page)
	}
	if page.Runs[0].IssuesFound != 12 {
		t.Errorf("run not decoded: %+v", page.Runs[0])
	}
}

func TestInvestigations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/scan/investigations" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"investigations": [{"number": 7, "title": "deep dive", "priority": "High"}], "total": 1}`))
	}))
	defer srv.Close()

	client := NewClientWithHTTP(srv.URL, srv.Client())
	page, err := client.Investigations(context.Background(), 50, 0)
	if err != nil {
		t.Fatalf("Investigations() error: %v", err)
	}
	if len(page.Investigations) != 1 || page.Investigations[0].Number != 7 {
		t.Errorf("unexpected page: %+v", page)
	}
}

func TestConfigured(t *testing.T) {
	if NewClient("").Configured() {
		t.Error("empty base URL should not be configured")
	}
	if !NewClient("http://example.com/").Configured() {
		t.Error("non-empty base URL should be configured")
	}
}
