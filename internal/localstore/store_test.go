package localstore

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spiffcs/triagedesk/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	return NewStoreWithPaths(
		filepath.Join(dir, "statuses.json"),
		filepath.Join(dir, "activity.json"),
	)
}

func TestStatusesEmpty(t *testing.T) {
	store := newTestStore(t)
	if statuses := store.Statuses(); len(statuses) != 0 {
		t.Errorf("expected empty statuses, got %v", statuses)
	}
}

func TestSetStatusPersists(t *testing.T) {
	store := newTestStore(t)

	if err := store.SetStatus(1234, model.StatusDone); err != nil {
		t.Fatalf("SetStatus() error: %v", err)
	}
	if err := store.SetStatus(5678, model.StatusSkipped); err != nil {
		t.Fatalf("SetStatus() error: %v", err)
	}

	statuses := store.Statuses()
	if statuses[1234] != model.StatusDone {
		t.Errorf("status[1234] = %q, want done", statuses[1234])
	}
	if statuses[5678] != model.StatusSkipped {
		t.Errorf("status[5678] = %q, want skipped", statuses[5678])
	}

	// Overwriting one issue must not touch the other.
	if err := store.SetStatus(1234, model.StatusArchived); err != nil {
		t.Fatalf("SetStatus() error: %v", err)
	}
	statuses = store.Statuses()
	if statuses[1234] != model.StatusArchived {
		t.Errorf("status[1234] = %q, want archived", statuses[1234])
	}
	if statuses[5678] != model.StatusSkipped {
		t.Errorf("status[5678] = %q, want skipped after unrelated write", statuses[5678])
	}
}

func TestCorruptStatusFileReadsEmpty(t *testing.T) {
	store := newTestStore(t)
	if err := os.WriteFile(store.statusPath, []byte("{broken"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if statuses := store.Statuses(); len(statuses) != 0 {
		t.Errorf("expected empty statuses from corrupt file, got %v", statuses)
	}

	// Writes still work afterwards.
	if err := store.SetStatus(1, model.StatusDone); err != nil {
		t.Fatalf("SetStatus() after corruption: %v", err)
	}
	if store.Statuses()[1] != model.StatusDone {
		t.Error("expected write to succeed after corrupt read")
	}
}

func TestAppendActivityGeneratesIdentity(t *testing.T) {
	store := newTestStore(t)

	entry, err := store.AppendActivity(model.ActivityEntry{
		IssueNumber: 1234,
		IssueTitle:  "Test issue",
		Action:      "Posted comment",
	})
	if err != nil {
		t.Fatalf("AppendActivity() error: %v", err)
	}
	if entry.ID == "" {
		t.Error("expected generated ID")
	}
	if entry.Timestamp == "" {
		t.Error("expected generated timestamp")
	}

	entries := store.Activity()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].ID != entry.ID {
		t.Errorf("persisted ID %q differs from returned %q", entries[0].ID, entry.ID)
	}
}

func TestActivityNewestFirst(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 3; i++ {
		if _, err := store.AppendActivity(model.ActivityEntry{
			IssueNumber: i,
			Action:      "test",
		}); err != nil {
			t.Fatalf("AppendActivity() error: %v", err)
		}
	}

	entries := store.Activity()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].IssueNumber != 2 || entries[2].IssueNumber != 0 {
		t.Errorf("expected newest first, got order %d, %d, %d",
			entries[0].IssueNumber, entries[1].IssueNumber, entries[2].IssueNumber)
	}
}

func TestActivityCap(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 205; i++ {
		if _, err := store.AppendActivity(model.ActivityEntry{
			IssueNumber: i,
			Action:      fmt.Sprintf("action-%d", i),
		}); err != nil {
			t.Fatalf("AppendActivity() error: %v", err)
		}
	}

	entries := store.Activity()
	if len(entries) != maxActivityEntries {
		t.Fatalf("expected %d entries, got %d", maxActivityEntries, len(entries))
	}
	// The survivors are the 200 most recent, newest first.
	if entries[0].IssueNumber != 204 {
		t.Errorf("newest entry is %d, want 204", entries[0].IssueNumber)
	}
	if entries[len(entries)-1].IssueNumber != 5 {
		t.Errorf("oldest surviving entry is %d, want 5", entries[len(entries)-1].IssueNumber)
	}
}

func TestClearActivity(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.AppendActivity(model.ActivityEntry{Action: "test"}); err != nil {
		t.Fatalf("AppendActivity() error: %v", err)
	}
	if err := store.ClearActivity(); err != nil {
		t.Fatalf("ClearActivity() error: %v", err)
	}
	if entries := store.Activity(); len(entries) != 0 {
		t.Errorf("expected empty activity after clear, got %d entries", len(entries))
	}

	// Clearing an already-empty store is fine.
	if err := store.ClearActivity(); err != nil {
		t.Errorf("ClearActivity() on empty store: %v", err)
	}
}

func TestCorruptActivityReadsEmpty(t *testing.T) {
	store := newTestStore(t)
	if err := os.WriteFile(store.activityPath, []byte("[{bad"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if entries := store.Activity(); len(entries) != 0 {
		t.Errorf("expected empty activity from corrupt file, got %v", entries)
	}
}
