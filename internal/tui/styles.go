package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F1F5F9"))

	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	listHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#CBD5E1"))

	listSeparatorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#475569"))

	listSelectedStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#334155")).
				Foreground(lipgloss.Color("#F1F5F9")).
				Bold(true)

	listCursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60A5FA")).
			Bold(true)

	// Priority
	listCriticalStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#EF4444"))

	listHighStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B"))

	listMediumStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60A5FA"))

	listLowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF"))

	// Status
	listDoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#22C55E"))

	listPendingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#93C5FD"))

	listDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	listHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B"))

	listStatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60A5FA"))

	listEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")).
			Italic(true)

	// Detail view
	detailTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#F1F5F9"))

	detailLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#94A3B8"))

	detailSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#60A5FA")).
				MarginTop(1)

	checklistPassStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#22C55E"))

	checklistFailStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#EF4444"))
)
