package studio

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/glasslab/internal/glass"
	glerrors "github.com/alexisbeaulieu97/glasslab/pkg/errors"
)

// Update handles Bubble Tea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case copyResetMsg:
		// A later copy does not cancel an earlier reset, so the label may
		// revert before the newest delay has elapsed.
		m.copyLabel = copyIdleLabel
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus == fieldTint {
		return m.updateTint(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "shift+tab":
		cmd := m.setFocus(m.focus - 1)
		return m, cmd
	case "down", "tab":
		cmd := m.setFocus(m.focus + 1)
		return m, cmd
	}

	if m.focus == fieldTint {
		if msg.String() == "enter" {
			cmd := m.setFocus(m.focus + 1)
			return m, cmd
		}
		return m.updateTint(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "k":
		cmd := m.setFocus(m.focus - 1)
		return m, cmd
	case "j":
		cmd := m.setFocus(m.focus + 1)
		return m, cmd
	case "left", "h":
		m.adjust(-1)
	case "right", "l":
		m.adjust(1)
	case "c":
		return m.copyCSS()
	case "enter", " ":
		switch m.focus {
		case fieldCopy:
			return m.copyCSS()
		case fieldEnvironment:
			m.adjust(1)
		}
	}
	return m, nil
}

func (m Model) updateTint(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.tint, cmd = m.tint.Update(msg)
	if v := m.tint.Value(); v != m.params.Tint {
		m.params.Tint = v
		m.recompute()
	}
	return m, cmd
}

// adjust moves the focused slider or environment selector by dir.
func (m *Model) adjust(dir int) {
	switch m.focus {
	case fieldBlur:
		m.params.Blur = m.studio.Blur.Nudge(m.params.Blur, dir)
	case fieldOpacity:
		m.params.Opacity = m.studio.Opacity.Nudge(m.params.Opacity, dir)
	case fieldOutline:
		m.params.Outline = m.studio.Outline.Nudge(m.params.Outline, dir)
	case fieldElevation:
		m.params.Elevation = m.studio.Elevation.Nudge(m.params.Elevation, dir)
	case fieldNoise:
		m.params.Noise = m.studio.Noise.Nudge(m.params.Noise, dir)
	case fieldEnvironment:
		next := m.params.Environment.Next()
		if dir < 0 {
			next = m.params.Environment.Prev()
		}
		m.setEnvironment(next)
		return
	default:
		return
	}
	m.recompute()
}

func (m *Model) setEnvironment(env glass.Environment) {
	m.params.Environment = env
	m.backdrop = glass.ApplyEnvironment(m.backdrop, env)
	m.log.WithFields(map[string]any{"environment": string(env), "decorations": m.backdrop.Decorations}).Debug("environment changed")
}

func (m Model) copyCSS() (tea.Model, tea.Cmd) {
	if err := m.clip.WriteAll(m.style.CSS); err != nil {
		m.log.Error(glerrors.NewClipboardError(err), "copy failed")
		m.copyLabel = copyFailedLabel
	} else {
		m.log.Info("css copied")
		m.copyLabel = copiedLabel
	}
	return m, m.copyResetCmd()
}
