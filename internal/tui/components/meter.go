package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

const emptyMeterColor = "#444444"

// Meter renders a percentage as a solid coloured bar.
type Meter struct {
	width int
}

// NewMeter creates a meter whose bar is width cells wide.
func NewMeter(width int) Meter {
	if width < 1 {
		width = 1
	}
	return Meter{width: width}
}

// View renders percent (0-100) filled with color. Values outside the range are clamped.
func (m Meter) View(percent float64, color string) string {
	if color == "" {
		color = emptyMeterColor
	}
	ratio := math.Max(0, math.Min(1, percent/100))

	bar := progress.New(
		progress.WithSolidFill(color),
		progress.WithWidth(m.width),
		progress.WithoutPercentage(),
	)
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%3.0f%%", ratio*100))
	return lipgloss.JoinHorizontal(lipgloss.Left, bar.ViewAs(ratio), " ", label)
}
