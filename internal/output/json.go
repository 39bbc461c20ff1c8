package output

import (
	"encoding/json"
	"io"

	"github.com/spiffcs/triagedesk/internal/model"
	"github.com/spiffcs/triagedesk/internal/remote"
)

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	Pretty bool
}

func (f *JSONFormatter) encode(v any, w io.Writer) error {
	encoder := json.NewEncoder(w)
	if f.Pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(v)
}

// Issues outputs the issue list as JSON
func (f *JSONFormatter) Issues(issues []model.Issue, w io.Writer) error {
	if issues == nil {
		issues = []model.Issue{}
	}
	return f.encode(issues, w)
}

// Issue outputs a single issue as JSON
func (f *JSONFormatter) Issue(issue model.Issue, w io.Writer) error {
	return f.encode(issue, w)
}

// Activity outputs the audit log as JSON
func (f *JSONFormatter) Activity(entries []model.ActivityEntry, w io.Writer) error {
	if entries == nil {
		entries = []model.ActivityEntry{}
	}
	return f.encode(entries, w)
}

// Scans outputs scan run history as JSON
func (f *JSONFormatter) Scans(page remote.ScanPage, w io.Writer) error {
	return f.encode(page, w)
}

// Investigations outputs the investigation listing as JSON
func (f *JSONFormatter) Investigations(page remote.InvestigationPage, w io.Writer) error {
	return f.encode(page, w)
}
