package model

// Status is the review state of an issue.
type Status string

const (
	StatusPending  Status = "pending"
	StatusDone     Status = "done"
	StatusSkipped  Status = "skipped"
	StatusArchived Status = "archived"

	// Extended values accepted by the remote store. The core does not
	// validate transitions; the edge API owns the allowed set.
	StatusNeedsAttention Status = "needs-attention"
	StatusInDiscussion   Status = "in-discussion"
)

// Display returns a human-readable status label.
func (s Status) Display() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusDone:
		return "Done"
	case StatusSkipped:
		return "Skipped"
	case StatusArchived:
		return "Archived"
	case StatusNeedsAttention:
		return "Needs Attention"
	case StatusInDiscussion:
		return "In Discussion"
	default:
		return string(s)
	}
}

// IssueType classifies what kind of report an issue is.
type IssueType string

const (
	TypeBug      IssueType = "Bug"
	TypeFeature  IssueType = "Feature"
	TypeQuestion IssueType = "Question"
)

// Priority is the AI-assessed urgency of an issue.
type Priority string

const (
	PriorityCritical Priority = "Critical"
	PriorityHigh     Priority = "High"
	PriorityMedium   Priority = "Medium"
	PriorityLow      Priority = "Low"
)

// Checklist records which completeness criteria an issue report satisfies.
type Checklist struct {
	HasReproSteps       bool `json:"hasReproSteps"`
	HasVersion          bool `json:"hasVersion"`
	HasExpectedBehavior bool `json:"hasExpectedBehavior"`
	HasEnvironment      bool `json:"hasEnvironment"`
	HasScreenshot       bool `json:"hasScreenshot"`
}

// Investigation is the result of a deeper automated code investigation,
// produced for issues flagged "Investigate & Fix".
type Investigation struct {
	Status       string `json:"status"` // queued, in-progress, done
	Approach     string `json:"approach,omitempty"`
	PainPoints   string `json:"painPoints,omitempty"`
	Conclusion   string `json:"conclusion,omitempty"`
	Reasoning    string `json:"reasoning,omitempty"`
	SuggestedFix string `json:"suggestedFix,omitempty"`
	CompletedAt  string `json:"completedAt,omitempty"`
}

// Triage is the AI assessment of an issue.
type Triage struct {
	Type             IssueType      `json:"type"`
	Component        string         `json:"component"`
	Priority         Priority       `json:"priority"`
	Completeness     int            `json:"completeness"` // 0-100
	Summary          string         `json:"summary"`
	Classification   string         `json:"classification"`
	Checklist        Checklist      `json:"checklist"`
	SuggestedLabels  []string       `json:"suggestedLabels"`
	SuggestedAction  string         `json:"suggestedAction"`
	SuggestedComment string         `json:"suggestedComment"`
	Investigation    *Investigation `json:"investigation,omitempty"`
}

// Issue is the single canonical in-memory shape for a tracked issue.
// A nil Triage means the issue has not been scored yet.
type Issue struct {
	Number       int      `json:"number"`
	Title        string   `json:"title"`
	URL          string   `json:"url"`
	Author       string   `json:"author"`
	AuthorAvatar string   `json:"authorAvatar"`
	CreatedAt    string   `json:"createdAt"`
	Labels       []string `json:"labels"`
	Body         string   `json:"body"`
	Triage       *Triage  `json:"triage,omitempty"`
	Status       Status   `json:"status"`
}
