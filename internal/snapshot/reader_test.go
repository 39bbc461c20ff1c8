package snapshot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const snapshotDoc = `[
	{
		"number": 1234,
		"title": "Test issue: DataGrid crash",
		"url": "https://github.com/mui/mui-x/issues/1234",
		"author": "testuser",
		"authorAvatar": "https://avatars.githubusercontent.com/u/1?v=4",
		"createdAt": "2025-01-15T10:00:00Z",
		"labels": ["bug"],
		"body": "The DataGrid crashes when...",
		"status": "pending",
		"triage": {
			"type": "Bug",
			"component": "DataGrid",
			"priority": "High",
			"completeness": 80,
			"summary": "DataGrid crashes on sort",
			"classification": "Confirmed bug",
			"checklist": {"hasReproSteps":true,"hasVersion":true,"hasExpectedBehavior":true,"hasEnvironment":false,"hasScreenshot":false},
			"suggestedLabels": ["bug"],
			"suggestedAction": "Triage & Label",
			"suggestedComment": "Thanks."
		}
	},
	{
		"number": 99,
		"title": "Not yet scored",
		"status": "pending"
	}
]`

func TestLoadFiltersUnscoredIssues(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(snapshotDoc))
	}))
	defer srv.Close()

	reader := NewReaderWithClient(srv.URL, srv.Client())
	issues := reader.Load(context.Background())

	if len(issues) != 1 {
		t.Fatalf("expected 1 triaged issue, got %d", len(issues))
	}
	if issues[0].Number != 1234 {
		t.Errorf("expected issue 1234, got %d", issues[0].Number)
	}
	if issues[0].Triage == nil || issues[0].Triage.Type != "Bug" {
		t.Errorf("triage not preserved: %+v", issues[0].Triage)
	}
}

func TestLoadCacheBusts(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.URL.Query().Get("v"))
		_, _ = w.Write([]byte(`{"issues": []}`))
	}))
	defer srv.Close()

	reader := NewReaderWithClient(srv.URL, srv.Client())
	reader.Load(context.Background())
	reader.Load(context.Background())

	if len(seen) != 2 {
		t.Fatalf("expected 2 fetches, got %d", len(seen))
	}
	if seen[0] == "" || seen[1] == "" {
		t.Errorf("expected cache-bust parameter on every fetch, got %v", seen)
	}
}

func TestLoadWrapperShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"issues": [{"number": 1, "title": "wrapped", "triage": {"type": "Bug"}}]}`))
	}))
	defer srv.Close()

	reader := NewReaderWithClient(srv.URL, srv.Client())
	issues := reader.Load(context.Background())
	if len(issues) != 1 || issues[0].Title != "wrapped" {
		t.Errorf("wrapper shape not handled: %+v", issues)
	}
}

func TestLoadFailuresReturnNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	reader := NewReaderWithClient(srv.URL, srv.Client())
	if issues := reader.Load(context.Background()); issues != nil {
		t.Errorf("expected nil on server error, got %v", issues)
	}

	garbage := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer garbage.Close()

	reader = NewReaderWithClient(garbage.URL, garbage.Client())
	if issues := reader.Load(context.Background()); issues != nil {
		t.Errorf("expected nil on garbage body, got %v", issues)
	}

	reader = NewReader("")
	if issues := reader.Load(context.Background()); issues != nil {
		t.Errorf("expected nil for unconfigured reader, got %v", issues)
	}
}
