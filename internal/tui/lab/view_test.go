package lab

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestViewEmpty(t *testing.T) {
	t.Parallel()

	view := New(Options{}).View()
	require.Contains(t, view, "Password Lab")
	require.Contains(t, view, "STATUS: WAITING")
	require.Contains(t, view, "No patterns detected.")
	require.Contains(t, view, "0%")
}

func TestViewMasksInput(t *testing.T) {
	t.Parallel()

	m := typeText(t, New(Options{}), "secret")
	require.NotContains(t, m.View(), "secret")
	require.Contains(t, m.View(), "••••••")
	require.Contains(t, m.View(), "reveal")
}

func TestViewShowsFindings(t *testing.T) {
	t.Parallel()

	m := typeText(t, New(Options{}), "Qwerty1")
	view := m.View()
	require.Contains(t, view, "STATUS: CRITICAL")
	for _, issue := range m.Readout().Issues {
		require.Contains(t, view, "✗ "+issue)
	}
}

func TestViewNoIssues(t *testing.T) {
	t.Parallel()

	m := typeText(t, New(Options{}), "zyxwvutsrqponm")
	require.Contains(t, m.View(), "No obvious patterns detected. Good.")
	require.Contains(t, m.View(), "STATUS: FAIR")
}
