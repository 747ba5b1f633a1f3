package studio

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/glasslab/internal/config"
	"github.com/alexisbeaulieu97/glasslab/internal/glass"
)

type fakeClipboard struct {
	text  string
	err   error
	calls int
}

func (f *fakeClipboard) WriteAll(text string) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func newTestModel(t *testing.T, clip Clipboard) Model {
	t.Helper()
	settings := config.Default()
	settings.Studio.CopyReset = time.Millisecond
	return New(Options{Settings: settings, Clipboard: clip})
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

func TestNewAppliesDefaults(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, &fakeClipboard{})

	require.Equal(t, 16.0, m.Params().Blur)
	require.Equal(t, 0.25, m.Params().Opacity)
	require.Equal(t, "#ffffff", m.Params().Tint)
	require.Equal(t, glass.EnvironmentMesh, m.Params().Environment)
	require.Equal(t, "blur", m.Focused())
	require.Equal(t, copyIdleLabel, m.CopyLabel())
	require.Equal(t, glass.Compute(m.Params()), m.Style())
	require.Equal(t, []string{"#667eea", "#764ba2"}, m.Backdrop().Stops)
	require.Nil(t, m.Init())
}

func TestNewWithoutOptions(t *testing.T) {
	t.Parallel()

	m := New(Options{})
	require.Equal(t, 16.0, m.Params().Blur)
}

func TestFocusNavigationWraps(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, &fakeClipboard{})

	m, _ = press(t, m, "up")
	require.Equal(t, "copy", m.Focused())

	m, _ = press(t, m, "down")
	require.Equal(t, "blur", m.Focused())

	m, _ = press(t, m, "j", "tab")
	require.Equal(t, "tint", m.Focused())

	m, _ = press(t, m, "enter")
	require.Equal(t, "outline", m.Focused())

	m, _ = press(t, m, "k")
	require.Equal(t, "tint", m.Focused())
}

func TestSliderAdjustment(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, &fakeClipboard{})

	m, _ = press(t, m, "right", "l")
	require.Equal(t, 18.0, m.Params().Blur)
	require.Contains(t, m.Style().CSS, "backdrop-filter: blur(18px);")

	m, _ = press(t, m, "down", "right")
	require.Equal(t, 0.3, m.Params().Opacity)
	require.Contains(t, m.Style().CSS, "background: rgba(255, 255, 255, 0.3);")

	for i := 0; i < 30; i++ {
		m, _ = press(t, m, "right")
	}
	require.Equal(t, 1.0, m.Params().Opacity)

	m, _ = press(t, m, "up")
	for i := 0; i < 50; i++ {
		m, _ = press(t, m, "h")
	}
	require.Equal(t, 0.0, m.Params().Blur)
	require.Equal(t, "0px", m.Style().Labels.Blur)
}

func TestTintPassesThroughUnvalidated(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, &fakeClipboard{})

	m, _ = press(t, m, "down", "down", "backspace")
	require.Equal(t, "#fffff", m.Params().Tint)
	require.Equal(t, "255, 255, 15", m.Style().RGB.String())

	m, _ = press(t, m, "z")
	require.Equal(t, "#fffffz", m.Params().Tint)
	require.Equal(t, "255, 255, 15", m.Style().RGB.String())

	for i := 0; i < 7; i++ {
		m, _ = press(t, m, "backspace")
	}
	m, _ = press(t, m, "x")
	require.Equal(t, "x", m.Params().Tint)
	require.Contains(t, m.Style().CSS, "rgba(NaN, NaN, NaN, 0.25)")
}

func TestEnvironmentCycling(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, &fakeClipboard{})
	m, _ = press(t, m, "up", "up")
	require.Equal(t, "environment", m.Focused())

	m, _ = press(t, m, "right")
	require.Equal(t, glass.EnvironmentDeep, m.Params().Environment)
	require.Equal(t, []string{"#000428", "#004e92"}, m.Backdrop().Stops)
	require.True(t, m.Backdrop().Decorations)

	m, _ = press(t, m, "enter")
	require.Equal(t, glass.EnvironmentDark, m.Params().Environment)
	require.False(t, m.Backdrop().Decorations)
	dark := m.Backdrop().Background

	m, _ = press(t, m, " ")
	require.Equal(t, glass.EnvironmentDefault, m.Params().Environment)
	require.Equal(t, dark, m.Backdrop().Background)
	require.True(t, m.Backdrop().Decorations)

	m, _ = press(t, m, "right")
	require.Equal(t, glass.EnvironmentMesh, m.Params().Environment)

	m, _ = press(t, m, "left")
	require.Equal(t, glass.EnvironmentDefault, m.Params().Environment)
}

func TestEnvironmentDoesNotChangeCSS(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, &fakeClipboard{})
	before := m.Style()

	m, _ = press(t, m, "up", "up", "right")
	require.Equal(t, before.CSS, m.Style().CSS)
}

func TestCopySetsAndRevertsLabel(t *testing.T) {
	t.Parallel()

	clip := &fakeClipboard{}
	m := newTestModel(t, clip)

	m, cmd := press(t, m, "c")
	require.Equal(t, copiedLabel, m.CopyLabel())
	require.Equal(t, m.Style().CSS, clip.text)
	require.NotNil(t, cmd)

	msg := cmd()
	require.IsType(t, copyResetMsg{}, msg)

	next, _ := m.Update(msg)
	m = next.(Model)
	require.Equal(t, copyIdleLabel, m.CopyLabel())
}

func TestCopyFromButtonRow(t *testing.T) {
	t.Parallel()

	clip := &fakeClipboard{}
	m := newTestModel(t, clip)

	m, cmd := press(t, m, "up", "enter")
	require.Equal(t, copiedLabel, m.CopyLabel())
	require.Equal(t, 1, clip.calls)
	require.NotNil(t, cmd)
}

func TestCopyFailure(t *testing.T) {
	t.Parallel()

	clip := &fakeClipboard{err: errors.New("no clipboard")}
	m := newTestModel(t, clip)

	m, cmd := press(t, m, "c")
	require.Equal(t, copyFailedLabel, m.CopyLabel())
	require.Empty(t, clip.text)
	require.NotNil(t, cmd)
}

func TestQuitKeys(t *testing.T) {
	t.Parallel()

	for _, k := range []string{"q", "esc", "ctrl+c"} {
		k := k
		t.Run(k, func(t *testing.T) {
			t.Parallel()

			m := newTestModel(t, &fakeClipboard{})
			_, cmd := press(t, m, k)
			require.NotNil(t, cmd)
			require.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestQWhileEditingTint(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, &fakeClipboard{})
	m, _ = press(t, m, "down", "down", "q")
	require.Equal(t, "#ffffffq", m.Params().Tint)
}

func TestWindowSize(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, &fakeClipboard{})
	next, cmd := m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	require.Nil(t, cmd)
	require.Equal(t, 140, next.(Model).width)
}

func TestFocusingTintStartsCursor(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, &fakeClipboard{})

	m, cmd := press(t, m, "down")
	require.Nil(t, cmd)

	m, cmd = press(t, m, "down")
	require.Equal(t, "tint", m.Focused())
	require.NotNil(t, cmd)

	_, cmd = press(t, m, "enter")
	require.Nil(t, cmd)
}
