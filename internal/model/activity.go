package model

// ActivityEntry is an audit record of a reviewer action. Entries are
// append-only; ID and Timestamp are generated at append time.
type ActivityEntry struct {
	ID          string `json:"id"`
	Timestamp   string `json:"timestamp"`
	IssueNumber int    `json:"issueNumber"`
	IssueTitle  string `json:"issueTitle"`
	Action      string `json:"action"`
	Details     string `json:"details,omitempty"`
}
