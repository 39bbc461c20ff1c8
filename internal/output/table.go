package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/spiffcs/triagedesk/internal/format"
	"github.com/spiffcs/triagedesk/internal/model"
	"github.com/spiffcs/triagedesk/internal/remote"
)

// TableFormatter formats output as a terminal table
type TableFormatter struct{}

// hyperlink creates a clickable terminal hyperlink using OSC 8
// Format: \033]8;;URL\033\\TEXT\033]8;;\033\\
func hyperlink(text, url string) string {
	// Only use hyperlinks if stdout is a terminal
	if url == "" || !term.IsTerminal(int(os.Stdout.Fd())) {
		return text
	}
	return fmt.Sprintf("\033]8;;%s\033\\%s\033]8;;\033\\", url, text)
}

// Issues outputs the review queue as a table
func (f *TableFormatter) Issues(issues []model.Issue, w io.Writer) error {
	if len(issues) == 0 {
		fmt.Fprintln(w, "No triaged issues found.")
		return nil
	}

	const (
		colNumber    = 7
		colType      = 10
		colPriority  = 9
		colComponent = 16
		colTitle     = 44
		colStatus    = 16
	)

	fmt.Fprintf(w, "%-*s  %-*s  %-*s  %-*s  %-*s  %-*s  %s\n",
		colNumber, "Number",
		colType, "Type",
		colPriority, "Priority",
		colComponent, "Component",
		colTitle, "Title",
		colStatus, "Status",
		"Age")
	fmt.Fprintln(w, strings.Repeat("-", colNumber+colType+colPriority+colComponent+colTitle+colStatus+16))

	for _, issue := range issues {
		title, visibleTitleLen := format.TruncateToWidth(issue.Title, colTitle)
		linkedTitle := hyperlink(title, issue.URL)
		linkedTitle = format.PadRight(linkedTitle, visibleTitleLen, colTitle)

		typeStr, priorityStr, component := "-", "-", "-"
		if issue.Triage != nil {
			typeStr = string(issue.Triage.Type)
			priorityStr = colorPriority(issue.Triage.Priority)
			priorityStr = format.PadRight(priorityStr, len(issue.Triage.Priority), colPriority)
			if issue.Triage.Component != "" {
				component, _ = format.TruncateToWidth(issue.Triage.Component, colComponent)
			}
		}
		if issue.Triage == nil {
			priorityStr = format.PadRight(priorityStr, 1, colPriority)
		}

		fmt.Fprintf(w, "%-*d  %-*s  %s  %s  %s  %s  %s\n",
			colNumber, issue.Number,
			colType, typeStr,
			priorityStr,
			format.PadRight(component, format.DisplayWidth(component), colComponent),
			linkedTitle,
			format.PadRight(colorStatus(issue.Status), len(issue.Status.Display()), colStatus),
			format.AgeOf(issue.CreatedAt),
		)
	}

	printFooterSummary(issues, w)
	return nil
}

// Issue outputs a single issue in detail
func (f *TableFormatter) Issue(issue model.Issue, w io.Writer) error {
	fmt.Fprintf(w, "#%d %s\n", issue.Number, color.New(color.Bold).Sprint(issue.Title))
	if issue.URL != "" {
		fmt.Fprintf(w, "%s\n", issue.URL)
	}
	fmt.Fprintf(w, "Author: %s | Created: %s | Status: %s\n",
		issue.Author, format.FormatTimestamp(issue.CreatedAt), colorStatus(issue.Status))
	if len(issue.Labels) > 0 {
		fmt.Fprintf(w, "Labels: %s\n", strings.Join(issue.Labels, ", "))
	}

	t := issue.Triage
	if t == nil {
		fmt.Fprintln(w, "\nNot yet triaged.")
		return nil
	}

	fmt.Fprintf(w, "\n%s\n", color.New(color.Bold).Sprint("Triage"))
	fmt.Fprintf(w, "  Type: %s %s | Priority: %s | Completeness: %d%%\n",
		format.TypeIcon(t.Type), t.Type, colorPriority(t.Priority), t.Completeness)
	if t.Component != "" {
		fmt.Fprintf(w, "  Component: %s\n", t.Component)
	}
	if t.Classification != "" {
		fmt.Fprintf(w, "  Classification: %s\n", t.Classification)
	}
	if t.Summary != "" {
		fmt.Fprintf(w, "  Summary: %s\n", t.Summary)
	}
	if t.SuggestedAction != "" {
		fmt.Fprintf(w, "  Suggested action: %s\n", t.SuggestedAction)
	}
	if len(t.SuggestedLabels) > 0 {
		fmt.Fprintf(w, "  Suggested labels: %s\n", strings.Join(t.SuggestedLabels, ", "))
	}

	fmt.Fprintf(w, "  Checklist: %s\n", checklistSummary(t.Checklist))

	if t.SuggestedComment != "" {
		fmt.Fprintf(w, "\n%s\n%s\n", color.New(color.Bold).Sprint("Suggested comment"), t.SuggestedComment)
	}

	if inv := t.Investigation; inv != nil {
		fmt.Fprintf(w, "\n%s (%s)\n", color.New(color.Bold).Sprint("Investigation"), inv.Status)
		if inv.Approach != "" {
			fmt.Fprintf(w, "  Approach: %s\n", inv.Approach)
		}
		if inv.Conclusion != "" {
			fmt.Fprintf(w, "  Conclusion: %s\n", inv.Conclusion)
		}
		if inv.SuggestedFix != "" {
			fmt.Fprintf(w, "  Suggested fix: %s\n", inv.SuggestedFix)
		}
	}

	return nil
}

// Activity outputs the audit log, newest first
func (f *TableFormatter) Activity(entries []model.ActivityEntry, w io.Writer) error {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No activity recorded.")
		return nil
	}

	const colTitle = 40
	for _, e := range entries {
		title, width := format.TruncateToWidth(e.IssueTitle, colTitle)
		fmt.Fprintf(w, "%s  #%-6d %s  %s",
			format.FormatTimestamp(e.Timestamp),
			e.IssueNumber,
			format.PadRight(title, width, colTitle),
			e.Action)
		if e.Details != "" {
			fmt.Fprintf(w, " (%s)", e.Details)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// Scans outputs scan run history
func (f *TableFormatter) Scans(page remote.ScanPage, w io.Writer) error {
	if len(page.Runs) == 0 {
		fmt.Fprintln(w, "No scan runs recorded.")
		return nil
	}

	fmt.Fprintf(w, "%-18s  %-10s  %7s  %7s  %7s  %s\n",
		"Started", "Status", "Found", "New", "Updated", "Duration")
	for _, run := range page.Runs {
		fmt.Fprintf(w, "%-18s  %-10s  %7d  %7d  %7d  %s\n",
			format.FormatTimestamp(run.StartedAt),
			run.Status,
			run.IssuesFound,
			run.IssuesNew,
			run.IssuesUpdated,
			scanDuration(run))
	}
	fmt.Fprintf(w, "\n%d of %d runs\n", len(page.Runs), page.Total)
	return nil
}

// Investigations outputs the investigation listing
func (f *TableFormatter) Investigations(page remote.InvestigationPage, w io.Writer) error {
	if len(page.Investigations) == 0 {
		fmt.Fprintln(w, "No investigations recorded.")
		return nil
	}

	const colTitle = 44
	for _, row := range page.Investigations {
		title, width := format.TruncateToWidth(row.Title, colTitle)
		fmt.Fprintf(w, "#%-6d %s  %-12s  %-16s  %s\n",
			row.Number,
			format.PadRight(hyperlink(title, row.URL), width, colTitle),
			row.Status,
			row.Component,
			format.FormatTimestamp(row.AnalyzedAt))
	}
	fmt.Fprintf(w, "\n%d of %d investigations\n", len(page.Investigations), page.Total)
	return nil
}

// scanDuration renders the elapsed time of a finished run, "-" otherwise.
func scanDuration(run model.ScanRun) string {
	start, err := time.Parse(time.RFC3339, run.StartedAt)
	if err != nil {
		return "-"
	}
	finish, err := time.Parse(time.RFC3339, run.FinishedAt)
	if err != nil {
		return "-"
	}
	return finish.Sub(start).Round(time.Second).String()
}

// printFooterSummary prints counts of items that likely need a look next
func printFooterSummary(issues []model.Issue, w io.Writer) {
	var criticalCount, pendingCount, investigatedCount int

	for _, issue := range issues {
		if issue.Status == model.StatusPending {
			pendingCount++
		}
		if issue.Triage == nil {
			continue
		}
		if issue.Triage.Priority == model.PriorityCritical {
			criticalCount++
		}
		if issue.Triage.Investigation != nil {
			investigatedCount++
		}
	}

	if criticalCount == 0 && pendingCount == 0 && investigatedCount == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("━", 60))
	if criticalCount > 0 {
		fmt.Fprintf(w, "  %s %s critical issues need attention\n",
			color.RedString("●"),
			color.RedString("%d", criticalCount))
	}
	if pendingCount > 0 {
		fmt.Fprintf(w, "  %s %d issues awaiting review\n",
			color.CyanString("○"),
			pendingCount)
	}
	if investigatedCount > 0 {
		fmt.Fprintf(w, "  %d issues carry an automated investigation\n", investigatedCount)
	}
}

// checklistSummary renders the completeness checklist as compact pass/fail marks
func checklistSummary(c model.Checklist) string {
	mark := func(label string, ok bool) string {
		if ok {
			return color.GreenString("✓" + label)
		}
		return color.RedString("✗" + label)
	}
	return strings.Join([]string{
		mark("repro", c.HasReproSteps),
		mark("version", c.HasVersion),
		mark("expected", c.HasExpectedBehavior),
		mark("env", c.HasEnvironment),
		mark("screenshot", c.HasScreenshot),
	}, " ")
}

func colorPriority(p model.Priority) string {
	switch p {
	case model.PriorityCritical:
		return color.RedString(string(p))
	case model.PriorityHigh:
		return color.YellowString(string(p))
	case model.PriorityMedium:
		return color.CyanString(string(p))
	default:
		return color.WhiteString(string(p))
	}
}

func colorStatus(s model.Status) string {
	switch s {
	case model.StatusDone:
		return color.GreenString(s.Display())
	case model.StatusNeedsAttention:
		return color.RedString(s.Display())
	case model.StatusSkipped, model.StatusArchived:
		return color.WhiteString(s.Display())
	case model.StatusInDiscussion:
		return color.YellowString(s.Display())
	default:
		return color.CyanString(s.Display())
	}
}
