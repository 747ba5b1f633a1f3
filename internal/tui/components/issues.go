package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	issueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff8787"))
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// IssueList renders triggered findings, or a fallback line when there are none.
type IssueList struct {
	items    []string
	fallback string
}

// NewIssueList creates an issue list component.
func NewIssueList(items []string, fallback string) IssueList {
	return IssueList{items: append([]string(nil), items...), fallback: fallback}
}

// View renders one line per issue.
func (l IssueList) View() string {
	if len(l.items) == 0 {
		return summaryStyle.Render(l.fallback)
	}
	lines := make([]string, len(l.items))
	for i, item := range l.items {
		lines[i] = issueStyle.Render("✗ " + item)
	}
	return strings.Join(lines, "\n")
}
