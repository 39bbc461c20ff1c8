// Package normalize reconciles the two wire shapes the issue sources emit:
// the nested shape used by snapshot files and scan payloads, and the flat
// joined-row shape returned by the edge API (issue columns with triage
// columns as siblings, JSON sub-fields stored as strings).
package normalize

import (
	"bytes"
	"encoding/json"

	"github.com/spiffcs/triagedesk/internal/model"
)

// rawIssue captures every field either wire shape may carry. Ambiguous
// fields (arrays in one shape, JSON-encoded strings in the other) stay raw
// until the branch is known.
type rawIssue struct {
	Number       *int            `json:"number"`
	Title        string          `json:"title"`
	URL          string          `json:"url"`
	Author       string          `json:"author"`
	AuthorAvatar string          `json:"authorAvatar"`
	AvatarSnake  string          `json:"author_avatar"`
	CreatedAt    string          `json:"createdAt"`
	CreatedSnake string          `json:"created_at"`
	Labels       json.RawMessage `json:"labels"`
	Body         string          `json:"body"`
	Status       string          `json:"status"`
	Triage       json.RawMessage `json:"triage"`

	// Flat joined triage columns.
	Type             string          `json:"type"`
	Component        string          `json:"component"`
	Priority         string          `json:"priority"`
	Completeness     *int            `json:"completeness"`
	Summary          string          `json:"summary"`
	Classification   string          `json:"classification"`
	Checklist        json.RawMessage `json:"checklist"`
	SuggestedLabels  json.RawMessage `json:"suggested_labels"`
	SuggestedAction  string          `json:"suggested_action"`
	SuggestedComment string          `json:"suggested_comment"`
	Investigation    json.RawMessage `json:"investigation"`
	AnalyzedAt       string          `json:"analyzed_at"`
}

// Normalize converts one raw issue record into the canonical Issue. It is
// total for any record carrying an issue number: malformed sub-fields
// resolve to their defaults instead of discarding the record. The second
// return value is false only when no number can be decoded.
func Normalize(raw json.RawMessage) (model.Issue, bool) {
	var r rawIssue
	if err := json.Unmarshal(raw, &r); err != nil || r.Number == nil {
		return model.Issue{}, false
	}

	// A populated nested triage object means the record is already in
	// canonical shape; pass it through without defaulting.
	if isObject(r.Triage) {
		var issue model.Issue
		if err := json.Unmarshal(raw, &issue); err == nil {
			return issue, true
		}
	}

	return flatten(&r), true
}

// NormalizeList converts a list of raw records, dropping only records with
// no issue number.
func NormalizeList(raws []json.RawMessage) []model.Issue {
	issues := make([]model.Issue, 0, len(raws))
	for _, raw := range raws {
		if issue, ok := Normalize(raw); ok {
			issues = append(issues, issue)
		}
	}
	return issues
}

// flatten builds a canonical Issue from the flat joined-row shape.
func flatten(r *rawIssue) model.Issue {
	issue := model.Issue{
		Number:       *r.Number,
		Title:        r.Title,
		URL:          r.URL,
		Author:       r.Author,
		AuthorAvatar: firstNonEmpty(r.AuthorAvatar, r.AvatarSnake),
		CreatedAt:    firstNonEmpty(r.CreatedAt, r.CreatedSnake),
		Labels:       stringList(r.Labels),
		Body:         r.Body,
		Status:       model.Status(firstNonEmpty(r.Status, string(model.StatusPending))),
	}

	if !hasAnalysis(r) {
		return issue
	}

	t := &model.Triage{
		Type:             model.IssueType(firstNonEmpty(r.Type, string(model.TypeBug))),
		Component:        r.Component,
		Priority:         model.Priority(firstNonEmpty(r.Priority, string(model.PriorityMedium))),
		Summary:          r.Summary,
		Classification:   r.Classification,
		Checklist:        checklist(r.Checklist),
		SuggestedLabels:  stringList(r.SuggestedLabels),
		SuggestedAction:  r.SuggestedAction,
		SuggestedComment: r.SuggestedComment,
		Investigation:    investigation(r.Investigation),
	}
	if r.Completeness != nil {
		t.Completeness = *r.Completeness
	}
	issue.Triage = t
	return issue
}

// hasAnalysis reports whether any triage column survived the LEFT JOIN.
// An unscored issue produces NULLs across the board and stays Triage-less.
func hasAnalysis(r *rawIssue) bool {
	return r.Type != "" || r.Priority != "" || r.Summary != "" ||
		r.Classification != "" || r.Completeness != nil ||
		notNull(r.Checklist) || notNull(r.SuggestedLabels) ||
		r.SuggestedAction != "" || r.SuggestedComment != "" ||
		notNull(r.Investigation) || r.AnalyzedAt != ""
}

// stringList decodes a field that arrives either as a JSON array or as a
// string containing serialized JSON. Malformed input yields an empty list.
func stringList(raw json.RawMessage) []string {
	if !notNull(raw) {
		return []string{}
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		if err := json.Unmarshal([]byte(encoded), &list); err == nil && list != nil {
			return list
		}
	}
	return []string{}
}

// checklist decodes the checklist field from either an object or a
// string-encoded object. Malformed input yields the all-false default.
func checklist(raw json.RawMessage) model.Checklist {
	if !notNull(raw) {
		return model.Checklist{}
	}

	var c model.Checklist
	if isObject(raw) {
		if err := json.Unmarshal(raw, &c); err == nil {
			return c
		}
		return model.Checklist{}
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		if err := json.Unmarshal([]byte(encoded), &c); err == nil {
			return c
		}
	}
	return model.Checklist{}
}

// investigation decodes the optional investigation field. Absent, null, or
// malformed input yields nil rather than an error.
func investigation(raw json.RawMessage) *model.Investigation {
	if !notNull(raw) {
		return nil
	}

	var inv model.Investigation
	if isObject(raw) {
		if err := json.Unmarshal(raw, &inv); err == nil {
			return &inv
		}
		return nil
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		if err := json.Unmarshal([]byte(encoded), &inv); err == nil {
			return &inv
		}
	}
	return nil
}

// isObject reports whether raw holds a JSON object.
func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// notNull reports whether raw holds a value other than JSON null.
func notNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
