package model

// ScanRun summarizes one run of the external scan pipeline. These rows are
// surfaced from the remote store as-is; the core never caches or rewrites
// them.
type ScanRun struct {
	ID            int    `json:"id"`
	StartedAt     string `json:"started_at"`
	FinishedAt    string `json:"finished_at"`
	IssuesFound   int    `json:"issues_found"`
	IssuesNew     int    `json:"issues_new"`
	IssuesUpdated int    `json:"issues_updated"`
	Status        string `json:"status"`
}

// InvestigationRow is one row of the remote investigation listing.
type InvestigationRow struct {
	Number        int    `json:"number"`
	Title         string `json:"title"`
	URL           string `json:"url"`
	Status        string `json:"status"`
	Component     string `json:"component"`
	Priority      string `json:"priority"`
	Investigation string `json:"investigation"`
	AnalyzedAt    string `json:"analyzed_at"`
}
