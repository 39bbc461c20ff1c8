// Package localstore persists reviewer state that must survive offline:
// per-issue status overrides and the activity log. It is the durable leg of
// every write and the last-resort read tier for activity.
package localstore

import (
	"encoding/json"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/spiffcs/triagedesk/internal/log"
	"github.com/spiffcs/triagedesk/internal/model"
)

// maxActivityEntries caps the activity log; the oldest entries are evicted
// first.
const maxActivityEntries = 200

// Store manages the two local namespaces as JSON files. Reads never fail:
// missing or corrupt data reads as empty. Writes are whole-file with
// last-writer-wins semantics (single-reviewer assumption).
type Store struct {
	statusPath   string
	activityPath string
	mu           sync.Mutex
}

// NewStore creates a store under the user cache directory.
func NewStore() (*Store, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(cacheDir, "triagedesk")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	return &Store{
		statusPath:   filepath.Join(dir, "statuses.json"),
		activityPath: filepath.Join(dir, "activity.json"),
	}, nil
}

// NewStoreWithPaths creates a store at the given paths (for testing).
func NewStoreWithPaths(statusPath, activityPath string) *Store {
	return &Store{statusPath: statusPath, activityPath: activityPath}
}

// Statuses returns the full status-override mapping. Missing or corrupt
// data reads as an empty mapping.
func (s *Store) Statuses() map[int]model.Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.readStatuses()
}

// SetStatus records a status override for one issue. The write is a
// read-modify-write of the whole mapping; other issues' overrides are
// preserved.
func (s *Store) SetStatus(number int, status model.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	statuses := s.readStatuses()
	statuses[number] = status

	data, err := json.MarshalIndent(statuses, "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(s.statusPath, data)
}

// Activity returns the activity log, newest first. Missing or corrupt data
// reads as empty.
func (s *Store) Activity() []model.ActivityEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.readActivity()
}

// AppendActivity prepends an entry to the activity log, generating its ID
// and timestamp, and prunes the log to the most recent entries. The fully
// formed entry is returned so callers can replay it to the remote store
// with identical identity.
func (s *Store) AppendActivity(entry model.ActivityEntry) (model.ActivityEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = newULID()
	entry.Timestamp = time.Now().UTC().Format(time.RFC3339)

	entries := append([]model.ActivityEntry{entry}, s.readActivity()...)
	if len(entries) > maxActivityEntries {
		entries = entries[:maxActivityEntries]
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return model.ActivityEntry{}, err
	}
	if err := writeAtomic(s.activityPath, data); err != nil {
		return model.ActivityEntry{}, err
	}
	return entry, nil
}

// ClearActivity removes all activity records.
func (s *Store) ClearActivity() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.activityPath)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Store) readStatuses() map[int]model.Status {
	statuses := make(map[int]model.Status)

	data, err := os.ReadFile(s.statusPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Debug("could not read statuses, starting fresh", "error", err)
		}
		return statuses
	}
	if err := json.Unmarshal(data, &statuses); err != nil {
		log.Debug("corrupt status file, starting fresh", "error", err)
		return make(map[int]model.Status)
	}
	return statuses
}

func (s *Store) readActivity() []model.ActivityEntry {
	data, err := os.ReadFile(s.activityPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Debug("could not read activity, starting fresh", "error", err)
		}
		return nil
	}

	var entries []model.ActivityEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Debug("corrupt activity file, starting fresh", "error", err)
		return nil
	}
	return entries
}

// writeAtomic writes data via a temp file and rename so a crash mid-write
// never leaves a truncated store.
func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// newULID generates a new ULID string.
func newULID() string {
	entropy := rand.New(rand.NewSource(time.Now().UnixNano()))
	return ulid.MustNew(ulid.Timestamp(time.Now()), ulid.Monotonic(entropy, 0)).String()
}
