package studio

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/glasslab/internal/glass"
	"github.com/alexisbeaulieu97/glasslab/internal/tui/components"
)

var keyHints = []components.KeyBinding{
	{Key: "↑/↓", Desc: "select"},
	{Key: "←/→", Desc: "adjust"},
	{Key: "c", Desc: "copy css"},
	{Key: "esc", Desc: "quit"},
}

// View renders the controls, the preview and the generated CSS.
func (m Model) View() string {
	controls := m.renderControls()

	previewWidth := max(m.width-lipgloss.Width(controls)-4, 20)
	preview := renderPreview(previewInput{
		backdrop: m.backdrop,
		style:    m.style,
		params:   m.params,
		width:    previewWidth,
		height:   lipgloss.Height(controls),
	})

	body := lipgloss.JoinHorizontal(lipgloss.Top, controls, "  ", preview)

	sections := []string{
		titleStyle.Render("Glass Studio"),
		body,
		codeStyle.Render(m.style.CSS),
		components.Footer(keyHints),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderControls() string {
	labels := m.style.Labels
	rows := []string{
		m.row(fieldBlur, labels.Blur),
		m.row(fieldOpacity, labels.Opacity),
		m.row(fieldTint, m.tint.View()),
		m.row(fieldOutline, labels.Outline),
		m.row(fieldElevation, labels.Elevation),
		m.row(fieldNoise, labels.Noise),
		m.row(fieldEnvironment, environmentLabel(m.params.Environment)),
		"",
		m.copyButton(),
	}
	return strings.Join(rows, "\n")
}

func (m Model) row(f field, value string) string {
	marker := "  "
	style := labelStyle
	if m.focus == f {
		marker = "› "
		style = focusedLabelStyle
	}
	return marker + style.Render(f.String()) + valueStyle.Render(value)
}

func (m Model) copyButton() string {
	style := buttonStyle
	if m.focus == fieldCopy {
		style = focusedButtonStyle
	}
	switch m.copyLabel {
	case copiedLabel:
		style = style.Foreground(successColor)
	case copyFailedLabel:
		style = style.Foreground(errorColor)
	}
	return style.Render(m.copyLabel)
}

func environmentLabel(env glass.Environment) string {
	return fmt.Sprintf("‹ %s ›", env)
}
