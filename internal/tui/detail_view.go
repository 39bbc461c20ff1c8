package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/spiffcs/triagedesk/internal/format"
	"github.com/spiffcs/triagedesk/internal/model"
)

// detailChromeLines is the number of lines used around the viewport
// (header line + footer help).
const detailChromeLines = 4

// renderDetailView renders the scrollable single-issue view
func renderDetailView(m ListModel) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n\n")
	b.WriteString(listHelpStyle.Render("j/k: scroll   esc: back   d: done   s: skip   c: comment   l: labels   o: open   q: quit"))

	if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(listStatusStyle.Render(m.statusMsg))
	}

	return b.String()
}

// renderDetailContent builds the viewport content for one issue.
func renderDetailContent(issue model.Issue, width int) string {
	if width < 20 {
		width = 80
	}
	wrap := func(s string) string { return wordwrap.String(s, width-2) }

	var b strings.Builder

	b.WriteString(detailTitleStyle.Render(fmt.Sprintf("#%d %s", issue.Number, issue.Title)))
	b.WriteString("\n")
	if issue.URL != "" {
		b.WriteString(detailLabelStyle.Render(issue.URL))
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n",
		detailLabelStyle.Render("Author:"), issue.Author,
		detailLabelStyle.Render("Created:"), format.FormatTimestamp(issue.CreatedAt),
		detailLabelStyle.Render("Status:"), issue.Status.Display(),
	))
	if len(issue.Labels) > 0 {
		b.WriteString(fmt.Sprintf("%s %s\n", detailLabelStyle.Render("Labels:"), strings.Join(issue.Labels, ", ")))
	}

	t := issue.Triage
	if t == nil {
		b.WriteString("\n")
		b.WriteString(listEmptyStyle.Render("Not yet triaged."))
		return b.String()
	}

	b.WriteString(detailSectionStyle.Render("Triage"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s %s   %s %s   %s %d%%\n",
		detailLabelStyle.Render("Type:"), format.TypeIcon(t.Type), t.Type,
		detailLabelStyle.Render("Priority:"), t.Priority,
		detailLabelStyle.Render("Completeness:"), t.Completeness,
	))
	if t.Component != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", detailLabelStyle.Render("Component:"), t.Component))
	}
	if t.Classification != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", detailLabelStyle.Render("Classification:"), t.Classification))
	}
	if t.Summary != "" {
		b.WriteString(wrap(t.Summary))
		b.WriteString("\n")
	}
	b.WriteString(renderChecklist(t.Checklist))
	b.WriteString("\n")
	if t.SuggestedAction != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", detailLabelStyle.Render("Suggested action:"), t.SuggestedAction))
	}
	if len(t.SuggestedLabels) > 0 {
		b.WriteString(fmt.Sprintf("%s %s\n", detailLabelStyle.Render("Suggested labels:"), strings.Join(t.SuggestedLabels, ", ")))
	}

	if t.SuggestedComment != "" {
		b.WriteString(detailSectionStyle.Render("Suggested comment"))
		b.WriteString("\n")
		b.WriteString(wrap(t.SuggestedComment))
		b.WriteString("\n")
	}

	if inv := t.Investigation; inv != nil {
		b.WriteString(detailSectionStyle.Render(fmt.Sprintf("Investigation (%s)", inv.Status)))
		b.WriteString("\n")
		if inv.Approach != "" {
			b.WriteString(fmt.Sprintf("%s %s\n", detailLabelStyle.Render("Approach:"), wrap(inv.Approach)))
		}
		if inv.PainPoints != "" {
			b.WriteString(fmt.Sprintf("%s %s\n", detailLabelStyle.Render("Pain points:"), wrap(inv.PainPoints)))
		}
		if inv.Conclusion != "" {
			b.WriteString(fmt.Sprintf("%s %s\n", detailLabelStyle.Render("Conclusion:"), wrap(inv.Conclusion)))
		}
		if inv.SuggestedFix != "" {
			b.WriteString(fmt.Sprintf("%s %s\n", detailLabelStyle.Render("Suggested fix:"), wrap(inv.SuggestedFix)))
		}
	}

	if issue.Body != "" {
		b.WriteString(detailSectionStyle.Render("Issue body"))
		b.WriteString("\n")
		b.WriteString(wrap(issue.Body))
		b.WriteString("\n")
	}

	return b.String()
}

// renderChecklist renders the completeness checklist as pass/fail marks.
func renderChecklist(c model.Checklist) string {
	mark := func(label string, ok bool) string {
		if ok {
			return checklistPassStyle.Render("✓ " + label)
		}
		return checklistFailStyle.Render("✗ " + label)
	}
	return detailLabelStyle.Render("Checklist: ") + strings.Join([]string{
		mark("repro", c.HasReproSteps),
		mark("version", c.HasVersion),
		mark("expected", c.HasExpectedBehavior),
		mark("env", c.HasEnvironment),
		mark("screenshot", c.HasScreenshot),
	}, "  ")
}
