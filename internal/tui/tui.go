// Package tui implements the interactive review queue.
package tui

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/spiffcs/triagedesk/internal/desk"
	"github.com/spiffcs/triagedesk/internal/model"
)

// Publisher posts review outcomes back to the issue tracker. It is nil when
// no GitHub token or repository is configured.
type Publisher interface {
	PostComment(ctx context.Context, number int, body string) (string, error)
	AddLabels(ctx context.Context, number int, labels []string) error
}

// Run starts the interactive review queue and blocks until it completes.
func Run(svc *desk.Service, issues []model.Issue, publisher Publisher) error {
	m := NewListModel(svc, issues, publisher)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// ShouldUseTUI returns true if the TUI should be used based on environment.
func ShouldUseTUI() bool {
	// Check if stdout is a TTY
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}

	// Check for CI environment variables
	ciVars := []string{
		"CI",
		"GITHUB_ACTIONS",
		"JENKINS_URL",
		"TRAVIS",
		"CIRCLECI",
		"GITLAB_CI",
		"BUILDKITE",
	}

	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return false
		}
	}

	return true
}
