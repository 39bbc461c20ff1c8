package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spiffcs/triagedesk/internal/format"
	"github.com/spiffcs/triagedesk/internal/model"
)

// Column widths for the queue listing
const (
	colNumber    = 6
	colType      = 8
	colPriority  = 9
	colComponent = 16
	colTitle     = 44
	colStatus    = 16
	colAge       = 5

	headerLines = 3
	footerLines = 3
)

// renderListView renders the complete queue listing
func renderListView(m ListModel) string {
	var b strings.Builder

	availableHeight := m.windowHeight - headerLines - footerLines

	b.WriteString("\n")
	b.WriteString(renderTitleBar(m))
	b.WriteString("\n\n")

	if len(m.issues) == 0 {
		b.WriteString(listEmptyStyle.Render("All caught up! No issues to review."))
		b.WriteString("\n\n")
		b.WriteString(renderHelp())
		return b.String()
	}

	b.WriteString(renderHeader())
	b.WriteString("\n")
	b.WriteString(listSeparatorStyle.Render(strings.Repeat("─", tableWidth())))
	b.WriteString("\n")

	start, end := calculateScrollWindow(m.cursor, len(m.issues), availableHeight)
	for i := start; i < end; i++ {
		b.WriteString(renderRow(m.issues[i], i == m.cursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderHelp())

	if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(listStatusStyle.Render(m.statusMsg))
	}

	return b.String()
}

// renderTitleBar renders the top line with queue counts and write activity
func renderTitleBar(m ListModel) string {
	pending := 0
	for _, issue := range m.issues {
		if issue.Status == model.StatusPending {
			pending++
		}
	}
	title := titleStyle.Render(fmt.Sprintf("Review queue — %d issues, %d pending", len(m.issues), pending))
	if m.busy > 0 {
		title += "  " + spinnerStyle.Render(m.spinner.View()) + listHelpStyle.Render(" saving…")
	}
	return title
}

// calculateScrollWindow determines which items to show based on cursor position
func calculateScrollWindow(cursor, total, viewHeight int) (start, end int) {
	if viewHeight < 1 {
		viewHeight = 1
	}
	if total <= viewHeight {
		return 0, total
	}

	start = cursor - viewHeight/2
	if start < 0 {
		start = 0
	}

	end = start + viewHeight
	if end > total {
		end = total
		start = end - viewHeight
		if start < 0 {
			start = 0
		}
	}

	return start, end
}

// renderHeader renders the table header
func renderHeader() string {
	return listHeaderStyle.Render(fmt.Sprintf(
		"  %-*s  %-*s  %-*s  %-*s  %-*s  %-*s  %s",
		colNumber, "Number",
		colType, "Type",
		colPriority, "Priority",
		colComponent, "Component",
		colTitle, "Title",
		colStatus, "Status",
		"Age",
	))
}

func tableWidth() int {
	return 2 + colNumber + 2 + colType + 2 + colPriority + 2 + colComponent + 2 + colTitle + 2 + colStatus + 2 + colAge
}

// renderRow renders a single issue row
func renderRow(issue model.Issue, selected bool) string {
	cursor := "  "
	if selected {
		cursor = applyStyle(listCursorStyle, "> ", selected)
	}

	number := fmt.Sprintf("#%-*d", colNumber-1, issue.Number)

	typeStr, priority, component := "-", "-", "-"
	priorityWidth := 1
	if issue.Triage != nil {
		typeStr = string(issue.Triage.Type)
		priority = renderPriority(issue.Triage.Priority, selected)
		priorityWidth = len(issue.Triage.Priority)
		if issue.Triage.Component != "" {
			component, _ = format.TruncateToWidth(issue.Triage.Component, colComponent)
		}
	}
	priority = format.PadRight(priority, priorityWidth, colPriority)

	title, titleWidth := format.TruncateToWidth(issue.Title, colTitle)
	title = format.PadRight(title, titleWidth, colTitle)

	status := renderStatus(issue.Status, selected)
	status = format.PadRight(status, len(issue.Status.Display()), colStatus)

	age := format.AgeOf(issue.CreatedAt)
	age = format.PadRight(age, format.DisplayWidth(age), colAge)

	row := fmt.Sprintf("%s%s  %-*s  %s  %s  %s  %s  %s",
		cursor,
		number,
		colType, typeStr,
		priority,
		format.PadRight(component, format.DisplayWidth(component), colComponent),
		title,
		status,
		age,
	)

	if selected {
		return listSelectedStyle.Width(tableWidth()).Render(row)
	}
	return row
}

// renderPriority renders the priority with appropriate styling
func renderPriority(p model.Priority, selected bool) string {
	switch p {
	case model.PriorityCritical:
		return applyStyle(listCriticalStyle, string(p), selected)
	case model.PriorityHigh:
		return applyStyle(listHighStyle, string(p), selected)
	case model.PriorityMedium:
		return applyStyle(listMediumStyle, string(p), selected)
	default:
		return applyStyle(listLowStyle, string(p), selected)
	}
}

// renderStatus renders the review status with appropriate styling
func renderStatus(s model.Status, selected bool) string {
	label := s.Display()
	switch s {
	case model.StatusDone:
		return applyStyle(listDoneStyle, label, selected)
	case model.StatusNeedsAttention:
		return applyStyle(listCriticalStyle, label, selected)
	case model.StatusSkipped, model.StatusArchived:
		return applyStyle(listDimStyle, label, selected)
	case model.StatusInDiscussion:
		return applyStyle(listHighStyle, label, selected)
	default:
		return applyStyle(listPendingStyle, label, selected)
	}
}

// renderHelp renders the help text
func renderHelp() string {
	return listHelpStyle.Render("j/k: nav   enter: detail   d: done   s: skip   a: archive   c: comment   l: labels   o: open   q: quit")
}

// applyStyle renders text with the given style when not selected.
// When selected, returns plain text to avoid ANSI reset codes that would
// interrupt the selected row's background highlight.
func applyStyle(s lipgloss.Style, text string, selected bool) string {
	if selected {
		return text
	}
	return s.Render(text)
}
