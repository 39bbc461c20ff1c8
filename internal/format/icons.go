package format

import "github.com/spiffcs/triagedesk/internal/model"

// TypeIcon returns the marker shown next to an issue's triage type.
func TypeIcon(t model.IssueType) string {
	switch t {
	case model.TypeBug:
		return "\U0001F41B" // 🐛
	case model.TypeFeature:
		return "✨" // ✨
	case model.TypeQuestion:
		return "❓" // ❓
	default:
		return " "
	}
}

// PriorityMarker returns the compact single-cell marker for a priority.
func PriorityMarker(p model.Priority) string {
	switch p {
	case model.PriorityCritical:
		return "!!"
	case model.PriorityHigh:
		return "!"
	case model.PriorityMedium:
		return "-"
	case model.PriorityLow:
		return "."
	default:
		return " "
	}
}

// IconWidth is the display width reserved for the icon column (emoji=2 + space=1).
const IconWidth = 3
