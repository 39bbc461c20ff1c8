package format

import (
	"testing"

	"github.com/spiffcs/triagedesk/internal/model"
)

func TestTypeIcon(t *testing.T) {
	if TypeIcon(model.TypeBug) == TypeIcon(model.TypeFeature) {
		t.Error("bug and feature icons should differ")
	}
	if got := TypeIcon(model.IssueType("Unknown")); got != " " {
		t.Errorf("unknown type icon = %q, want blank", got)
	}
}

func TestPriorityMarker(t *testing.T) {
	tests := []struct {
		priority model.Priority
		want     string
	}{
		{model.PriorityCritical, "!!"},
		{model.PriorityHigh, "!"},
		{model.PriorityMedium, "-"},
		{model.PriorityLow, "."},
		{model.Priority(""), " "},
	}
	for _, tt := range tests {
		if got := PriorityMarker(tt.priority); got != tt.want {
			t.Errorf("PriorityMarker(%q) = %q, want %q", tt.priority, got, tt.want)
		}
	}
}
