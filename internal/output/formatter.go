// Package output renders issues, activity, and scan data for non-interactive
// commands. The interactive review queue lives in internal/tui.
package output

import (
	"io"

	"github.com/spiffcs/triagedesk/internal/model"
	"github.com/spiffcs/triagedesk/internal/remote"
)

// Format represents the output format
type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Formatter defines the interface for output formatters
type Formatter interface {
	Issues(issues []model.Issue, w io.Writer) error
	Issue(issue model.Issue, w io.Writer) error
	Activity(entries []model.ActivityEntry, w io.Writer) error
	Scans(page remote.ScanPage, w io.Writer) error
	Investigations(page remote.InvestigationPage, w io.Writer) error
}

// NewFormatter creates a formatter for the specified format
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Pretty: true}
	case FormatMarkdown:
		return &MarkdownFormatter{}
	default:
		return &TableFormatter{}
	}
}
