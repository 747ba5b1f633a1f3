package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	keyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true)
	keyDescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// KeyBinding is a single key hint.
type KeyBinding struct {
	Key  string
	Desc string
}

// Footer renders key hints separated by two spaces, above a top rule.
func Footer(bindings []KeyBinding) string {
	if len(bindings) == 0 {
		return ""
	}

	parts := make([]string, len(bindings))
	for i, b := range bindings {
		parts[i] = keyStyle.Render(b.Key) + " " + keyDescStyle.Render(b.Desc)
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(lipgloss.Color("240")).
		MarginTop(1).
		Render(strings.Join(parts, "  "))
}
