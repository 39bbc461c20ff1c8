package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/spiffcs/triagedesk/internal/model"
	"github.com/spiffcs/triagedesk/internal/remote"
)

// MarkdownFormatter formats output as Markdown, suitable for pasting into
// a GitHub comment or a report.
type MarkdownFormatter struct{}

// Issues outputs the issue list as a Markdown table
func (f *MarkdownFormatter) Issues(issues []model.Issue, w io.Writer) error {
	if len(issues) == 0 {
		fmt.Fprintln(w, "No triaged issues found.")
		return nil
	}

	fmt.Fprintln(w, "| Number | Type | Priority | Component | Title | Status |")
	fmt.Fprintln(w, "|--------|------|----------|-----------|-------|--------|")
	for _, issue := range issues {
		typeStr, priority, component := "-", "-", "-"
		if issue.Triage != nil {
			typeStr = string(issue.Triage.Type)
			priority = string(issue.Triage.Priority)
			if issue.Triage.Component != "" {
				component = issue.Triage.Component
			}
		}
		title := issue.Title
		if issue.URL != "" {
			title = fmt.Sprintf("[%s](%s)", escapePipes(issue.Title), issue.URL)
		}
		fmt.Fprintf(w, "| #%d | %s | %s | %s | %s | %s |\n",
			issue.Number, typeStr, priority, escapePipes(component), title, issue.Status.Display())
	}
	return nil
}

// Issue outputs a single issue as a Markdown section
func (f *MarkdownFormatter) Issue(issue model.Issue, w io.Writer) error {
	fmt.Fprintf(w, "## #%d %s\n\n", issue.Number, issue.Title)
	if issue.URL != "" {
		fmt.Fprintf(w, "%s\n\n", issue.URL)
	}
	fmt.Fprintf(w, "- Author: %s\n- Created: %s\n- Status: %s\n",
		issue.Author, issue.CreatedAt, issue.Status.Display())
	if len(issue.Labels) > 0 {
		fmt.Fprintf(w, "- Labels: %s\n", strings.Join(issue.Labels, ", "))
	}

	t := issue.Triage
	if t == nil {
		fmt.Fprintln(w, "\nNot yet triaged.")
		return nil
	}

	fmt.Fprintf(w, "\n### Triage\n\n")
	fmt.Fprintf(w, "- Type: %s\n- Priority: %s\n- Completeness: %d%%\n", t.Type, t.Priority, t.Completeness)
	if t.Component != "" {
		fmt.Fprintf(w, "- Component: %s\n", t.Component)
	}
	if t.Summary != "" {
		fmt.Fprintf(w, "- Summary: %s\n", t.Summary)
	}
	if len(t.SuggestedLabels) > 0 {
		fmt.Fprintf(w, "- Suggested labels: %s\n", strings.Join(t.SuggestedLabels, ", "))
	}
	if t.SuggestedComment != "" {
		fmt.Fprintf(w, "\n### Suggested comment\n\n%s\n", t.SuggestedComment)
	}
	return nil
}

// Activity outputs the audit log as a Markdown list
func (f *MarkdownFormatter) Activity(entries []model.ActivityEntry, w io.Writer) error {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No activity recorded.")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(w, "- `%s` #%d %s: %s", e.Timestamp, e.IssueNumber, escapePipes(e.IssueTitle), e.Action)
		if e.Details != "" {
			fmt.Fprintf(w, " (%s)", e.Details)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// Scans outputs scan run history as a Markdown table
func (f *MarkdownFormatter) Scans(page remote.ScanPage, w io.Writer) error {
	if len(page.Runs) == 0 {
		fmt.Fprintln(w, "No scan runs recorded.")
		return nil
	}
	fmt.Fprintln(w, "| Started | Status | Found | New | Updated |")
	fmt.Fprintln(w, "|---------|--------|-------|-----|---------|")
	for _, run := range page.Runs {
		fmt.Fprintf(w, "| %s | %s | %d | %d | %d |\n",
			run.StartedAt, run.Status, run.IssuesFound, run.IssuesNew, run.IssuesUpdated)
	}
	return nil
}

// Investigations outputs the investigation listing as a Markdown table
func (f *MarkdownFormatter) Investigations(page remote.InvestigationPage, w io.Writer) error {
	if len(page.Investigations) == 0 {
		fmt.Fprintln(w, "No investigations recorded.")
		return nil
	}
	fmt.Fprintln(w, "| Number | Title | Status | Component | Analyzed |")
	fmt.Fprintln(w, "|--------|-------|--------|-----------|----------|")
	for _, row := range page.Investigations {
		title := escapePipes(row.Title)
		if row.URL != "" {
			title = fmt.Sprintf("[%s](%s)", title, row.URL)
		}
		fmt.Fprintf(w, "| #%d | %s | %s | %s | %s |\n",
			row.Number, title, row.Status, escapePipes(row.Component), row.AnalyzedAt)
	}
	return nil
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
