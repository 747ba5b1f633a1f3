package password

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderEmpty(t *testing.T) {
	t.Parallel()

	r := Render(Assess(""))
	require.Equal(t, Readout{
		MeterPercent: 0,
		Status:       "STATUS: WAITING",
		Entropy:      "0 bits",
		Pool:         "0",
		CrackTime:    "Instant",
		Summary:      "No patterns detected.",
	}, r)
}

func TestRenderIssues(t *testing.T) {
	t.Parallel()

	r := Render(Assess("Qwerty1"))
	require.Equal(t, "STATUS: CRITICAL", r.Status)
	require.Equal(t, "#ff4d4d", r.MeterColor)
	require.Equal(t, "#ff4d4d", r.StatusColor)
	require.Equal(t, "11 bits", r.Entropy)
	require.Equal(t, "62", r.Pool)
	require.Equal(t, "Instant", r.CrackTime)
	require.Equal(t, "#d00", r.CrackTimeColor)
	require.Equal(t, []string{
		"Common 'Capital + word + number' pattern.",
		"Common keyboard sequences detected.",
	}, r.Issues)
	require.Empty(t, r.Summary)
}

func TestRenderFairUsesDarkStatusText(t *testing.T) {
	t.Parallel()

	r := Render(Assess("zyxwvutsrqponm"))
	require.Equal(t, "STATUS: FAIR", r.Status)
	require.Equal(t, "#ffff4d", r.MeterColor)
	require.Equal(t, "#000", r.StatusColor)
	require.Equal(t, "65 bits", r.Entropy)
	require.Equal(t, "7d", r.CrackTime)
	require.Equal(t, "#000", r.CrackTimeColor)
	require.Empty(t, r.Issues)
	require.Equal(t, "No obvious patterns detected. Good.", r.Summary)
}

func TestRenderClampsMeterOnly(t *testing.T) {
	t.Parallel()

	a := Assess("correct horse battery staple")
	r := Render(a)
	require.Equal(t, 100.0, r.MeterPercent)
	require.Greater(t, a.Bits, 100.0)
	require.Equal(t, "164 bits", r.Entropy)
	require.Equal(t, "STATUS: ELITE", r.Status)
}

func TestRenderPartialMeter(t *testing.T) {
	t.Parallel()

	a := Assess("Tr0ub4dor&3")
	r := Render(a)
	require.InDelta(t, a.Bits, r.MeterPercent, 1e-9)
	require.Equal(t, "72 bits", r.Entropy)
	require.Equal(t, "1 years", r.CrackTime)
}
