package lab

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/glasslab/internal/tui/components"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).MarginBottom(1)

	// statsStyle puts the readout on a light surface so the dark status
	// and crack-time colours stay legible.
	statsStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#f0f0f0")).
			Foreground(lipgloss.Color("#333333")).
			Padding(0, 1).
			MarginTop(1)

	statLabelStyle = lipgloss.NewStyle().Width(12)
	sectionStyle   = lipgloss.NewStyle().MarginTop(1)
)

func (m Model) keyHints() []components.KeyBinding {
	reveal := "reveal"
	if m.revealed {
		reveal = "hide"
	}
	return []components.KeyBinding{
		{Key: "ctrl+r", Desc: reveal},
		{Key: "esc", Desc: "quit"},
	}
}

// View renders the input, meter, stats and findings.
func (m Model) View() string {
	r := m.readout

	status := lipgloss.NewStyle().Bold(true)
	if r.StatusColor != "" {
		status = status.Foreground(lipgloss.Color(r.StatusColor))
	}
	crack := lipgloss.NewStyle()
	if r.CrackTimeColor != "" {
		crack = crack.Foreground(lipgloss.Color(r.CrackTimeColor))
	}

	stats := strings.Join([]string{
		status.Render(r.Status),
		statLabelStyle.Render("Entropy") + r.Entropy,
		statLabelStyle.Render("Pool") + r.Pool,
		statLabelStyle.Render("Crack time") + crack.Render(r.CrackTime),
	}, "\n")

	sections := []string{
		titleStyle.Render("Password Lab"),
		m.input.View(),
		m.meter.View(r.MeterPercent, r.MeterColor),
		statsStyle.Render(stats),
		sectionStyle.Render(components.NewIssueList(r.Issues, r.Summary).View()),
		components.Footer(m.keyHints()),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
