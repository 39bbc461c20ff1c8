package tui

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/spiffcs/triagedesk/internal/desk"
	"github.com/spiffcs/triagedesk/internal/model"
)

// viewMode selects between the queue listing and the single-issue detail.
type viewMode int

const (
	modeList viewMode = iota
	modeDetail
)

// ListModel is the Bubble Tea model for the interactive review queue
type ListModel struct {
	svc       *desk.Service
	publisher Publisher

	issues []model.Issue
	cursor int
	mode   viewMode

	viewport     viewport.Model
	spinner      spinner.Model
	busy         int // in-flight write commands
	windowWidth  int
	windowHeight int
	statusMsg    string
	quitting     bool
}

// NewListModel creates a new review queue model
func NewListModel(svc *desk.Service, issues []model.Issue, publisher Publisher) ListModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return ListModel{
		svc:          svc,
		publisher:    publisher,
		issues:       issues,
		spinner:      s,
		viewport:     viewport.New(80, 20),
		windowWidth:  80,
		windowHeight: 24,
	}
}

// Init implements tea.Model
func (m ListModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model
func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - detailChromeLines
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case statusWrittenMsg:
		m.busy--
		if msg.err != nil {
			m.statusMsg = "Error: " + msg.err.Error()
		} else {
			m.applyStatus(msg.number, msg.status)
			m.statusMsg = fmt.Sprintf("#%d marked %s", msg.number, msg.status.Display())
		}
		return m, clearStatusAfter(2 * time.Second)

	case commentPostedMsg:
		m.busy--
		if msg.err != nil {
			m.statusMsg = "Error: " + msg.err.Error()
		} else {
			m.statusMsg = fmt.Sprintf("Comment posted on #%d", msg.number)
		}
		return m, clearStatusAfter(2 * time.Second)

	case labelsAppliedMsg:
		m.busy--
		if msg.err != nil {
			m.statusMsg = "Error: " + msg.err.Error()
		} else {
			m.statusMsg = fmt.Sprintf("Labels applied to #%d: %s", msg.number, strings.Join(msg.labels, ", "))
		}
		return m, clearStatusAfter(2 * time.Second)

	case clearStatusMsg:
		m.statusMsg = ""
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input
func (m ListModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == modeDetail {
		return m.handleDetailKey(msg)
	}

	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(m.issues)-1 {
			m.cursor++
		}
		return m, nil

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "g", "home":
		m.cursor = 0
		return m, nil

	case "G", "end":
		if len(m.issues) > 0 {
			m.cursor = len(m.issues) - 1
		}
		return m, nil

	case "d":
		return m.setStatus(model.StatusDone)

	case "s":
		return m.setStatus(model.StatusSkipped)

	case "a":
		return m.setStatus(model.StatusArchived)

	case "c":
		return m.postComment()

	case "l":
		return m.applyLabels()

	case "o":
		return m.openInBrowser()

	case "enter":
		return m.openDetail()
	}

	return m, nil
}

// handleDetailKey processes keyboard input while the detail view is open
func (m ListModel) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc", "enter":
		m.mode = modeList
		return m, nil

	case "d":
		return m.setStatus(model.StatusDone)

	case "s":
		return m.setStatus(model.StatusSkipped)

	case "c":
		return m.postComment()

	case "l":
		return m.applyLabels()

	case "o":
		return m.openInBrowser()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// current returns the issue under the cursor, or nil when the queue is empty.
func (m *ListModel) current() *model.Issue {
	if len(m.issues) == 0 || m.cursor >= len(m.issues) {
		return nil
	}
	return &m.issues[m.cursor]
}

// applyStatus updates the in-memory row after a confirmed write.
func (m *ListModel) applyStatus(number int, status model.Status) {
	for i := range m.issues {
		if m.issues[i].Number == number {
			m.issues[i].Status = status
			break
		}
	}
}

// setStatus kicks off an async status write for the current issue.
func (m ListModel) setStatus(status model.Status) (tea.Model, tea.Cmd) {
	issue := m.current()
	if issue == nil {
		return m, nil
	}

	number := issue.Number
	title := issue.Title
	svc := m.svc
	m.busy++

	return m, func() tea.Msg {
		ctx := context.Background()
		err := svc.SetStatus(ctx, number, status)
		if err == nil {
			_ = svc.RecordActivity(ctx, model.ActivityEntry{
				IssueNumber: number,
				IssueTitle:  title,
				Action:      "Status changed",
				Details:     string(status),
			})
		}
		return statusWrittenMsg{number: number, status: status, err: err}
	}
}

// postComment publishes the triage-suggested comment for the current issue.
func (m ListModel) postComment() (tea.Model, tea.Cmd) {
	issue := m.current()
	if issue == nil {
		return m, nil
	}
	if m.publisher == nil {
		m.statusMsg = "GitHub posting not configured (set GITHUB_TOKEN and repo)"
		return m, clearStatusAfter(2 * time.Second)
	}
	if issue.Triage == nil || issue.Triage.SuggestedComment == "" {
		m.statusMsg = "No suggested comment for this issue"
		return m, clearStatusAfter(2 * time.Second)
	}

	number := issue.Number
	title := issue.Title
	body := issue.Triage.SuggestedComment
	svc := m.svc
	publisher := m.publisher
	m.busy++

	return m, func() tea.Msg {
		ctx := context.Background()
		url, err := publisher.PostComment(ctx, number, body)
		if err == nil {
			_ = svc.RecordActivity(ctx, model.ActivityEntry{
				IssueNumber: number,
				IssueTitle:  title,
				Action:      "Posted comment",
				Details:     url,
			})
		}
		return commentPostedMsg{number: number, url: url, err: err}
	}
}

// applyLabels publishes the triage-suggested labels for the current issue.
func (m ListModel) applyLabels() (tea.Model, tea.Cmd) {
	issue := m.current()
	if issue == nil {
		return m, nil
	}
	if m.publisher == nil {
		m.statusMsg = "GitHub posting not configured (set GITHUB_TOKEN and repo)"
		return m, clearStatusAfter(2 * time.Second)
	}
	if issue.Triage == nil || len(issue.Triage.SuggestedLabels) == 0 {
		m.statusMsg = "No suggested labels for this issue"
		return m, clearStatusAfter(2 * time.Second)
	}

	number := issue.Number
	title := issue.Title
	labels := issue.Triage.SuggestedLabels
	svc := m.svc
	publisher := m.publisher
	m.busy++

	return m, func() tea.Msg {
		ctx := context.Background()
		err := publisher.AddLabels(ctx, number, labels)
		if err == nil {
			_ = svc.RecordActivity(ctx, model.ActivityEntry{
				IssueNumber: number,
				IssueTitle:  title,
				Action:      "Applied labels",
				Details:     strings.Join(labels, ", "),
			})
		}
		return labelsAppliedMsg{number: number, labels: labels, err: err}
	}
}

// openDetail switches to the scrollable detail view for the current issue.
func (m ListModel) openDetail() (tea.Model, tea.Cmd) {
	issue := m.current()
	if issue == nil {
		return m, nil
	}
	m.mode = modeDetail
	m.viewport.SetContent(renderDetailContent(*issue, m.viewport.Width))
	m.viewport.GotoTop()
	return m, nil
}

// openInBrowser opens the current issue in the default browser
func (m ListModel) openInBrowser() (tea.Model, tea.Cmd) {
	issue := m.current()
	if issue == nil {
		return m, nil
	}
	if issue.URL == "" {
		m.statusMsg = "No URL available"
		return m, clearStatusAfter(2 * time.Second)
	}
	return m, openURL(issue.URL)
}

// View implements tea.Model
func (m ListModel) View() string {
	if m.quitting {
		return ""
	}
	if m.mode == modeDetail {
		return renderDetailView(m)
	}
	return renderListView(m)
}

// Messages

type clearStatusMsg struct{}

type statusWrittenMsg struct {
	number int
	status model.Status
	err    error
}

type commentPostedMsg struct {
	number int
	url    string
	err    error
}

type labelsAppliedMsg struct {
	number int
	labels []string
	err    error
}

// clearStatusAfter returns a command that clears the status after a delay
func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// openURL opens a URL in the default browser
func openURL(url string) tea.Cmd {
	return func() tea.Msg {
		var cmd *exec.Cmd

		switch runtime.GOOS {
		case "darwin":
			cmd = exec.Command("open", url)
		case "linux":
			cmd = exec.Command("xdg-open", url)
		case "windows":
			cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
		default:
			return nil
		}

		_ = cmd.Start()
		return nil
	}
}
