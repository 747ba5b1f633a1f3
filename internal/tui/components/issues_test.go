package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIssueListView(t *testing.T) {
	t.Parallel()

	t.Run("renders each issue", func(t *testing.T) {
		t.Parallel()
		view := NewIssueList([]string{"first", "second"}, "none").View()
		require.Contains(t, view, "✗ first")
		require.Contains(t, view, "✗ second")
		require.NotContains(t, view, "none")
		require.Equal(t, 2, len(strings.Split(view, "\n")))
	})

	t.Run("falls back when empty", func(t *testing.T) {
		t.Parallel()
		view := NewIssueList(nil, "No patterns detected.").View()
		require.Contains(t, view, "No patterns detected.")
	})

	t.Run("does not alias caller slice", func(t *testing.T) {
		t.Parallel()
		items := []string{"a"}
		list := NewIssueList(items, "")
		items[0] = "b"
		require.Contains(t, list.View(), "✗ a")
	})
}

func TestFooter(t *testing.T) {
	t.Parallel()

	require.Empty(t, Footer(nil))

	view := Footer([]KeyBinding{{Key: "q", Desc: "quit"}, {Key: "c", Desc: "copy"}})
	require.Contains(t, view, "q")
	require.Contains(t, view, "quit")
	require.Contains(t, view, "copy")
}
