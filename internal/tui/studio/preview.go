package studio

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/glasslab/internal/glass"
)

const (
	fallbackSurface = "#1a1a2e"
	// shadowAlpha matches the rgba(0, 0, 0, 0.25) box-shadow colour.
	shadowAlpha = 0.25
	blobGlyph   = "●"
	noiseGlyph  = "·"
)

var white = colorful.Color{R: 1, G: 1, B: 1}

// blobs are decorative shapes placed as fractions of the preview size.
var blobs = []struct {
	x, y  float64
	color string
}{
	{0.12, 0.2, "#ff6b9d"},
	{0.85, 0.3, "#ffd166"},
	{0.2, 0.85, "#4ecdc4"},
	{0.9, 0.9, "#a29bfe"},
}

// previewInput collects everything the preview depends on.
type previewInput struct {
	backdrop glass.Backdrop
	style    glass.Style
	params   glass.Params
	width    int
	height   int
}

// renderPreview draws the backdrop gradient, optional decorations and the
// glass card as width × height terminal cells.
func renderPreview(in previewInput) string {
	w, h := max(in.width, 8), max(in.height, 5)
	stops := parseStops(in.backdrop.Stops)

	left, right := w/5, w-w/5
	top, bottom := h/4, h-h/4
	hasShadow := in.params.Elevation > 0 && bottom < h

	blobAt := map[[2]int]string{}
	if in.backdrop.Decorations {
		for _, b := range blobs {
			blobAt[[2]int{int(b.x * float64(w-1)), int(b.y * float64(h-1))}] = b.color
		}
	}

	var rows []string
	for y := 0; y < h; y++ {
		var row strings.Builder
		for x := 0; x < w; x++ {
			bg := gradientAt(stops, x, y, w, h)
			inCard := x >= left && x < right && y >= top && y < bottom

			switch {
			case inCard:
				row.WriteString(cardCell(in, bg, x-left, y-top, right-left, bottom-top))
			case hasShadow && y == bottom && x > left && x <= right:
				shadow := bg.BlendRgb(colorful.Color{}, shadowAlpha)
				row.WriteString(cell(" ", shadow, shadow))
			default:
				if color, ok := blobAt[[2]int{x, y}]; ok {
					fg, err := colorful.Hex(color)
					if err != nil {
						fg = white
					}
					row.WriteString(cell(blobGlyph, fg, bg))
					continue
				}
				row.WriteString(cell(" ", bg, bg))
			}
		}
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}

// cardCell renders one cell of the card at local coordinates (cx, cy).
func cardCell(in previewInput, bg colorful.Color, cx, cy, cw, ch int) string {
	fill := bg
	if in.style.RGB.Valid() {
		fill = bg.BlendRgb(rgbColor(in.style.RGB), unit(in.params.Opacity))
	}
	border := fill.BlendRgb(white, unit(in.params.Outline))

	switch {
	case cy == 0 && cx == 0:
		return cell("╭", border, fill)
	case cy == 0 && cx == cw-1:
		return cell("╮", border, fill)
	case cy == ch-1 && cx == 0:
		return cell("╰", border, fill)
	case cy == ch-1 && cx == cw-1:
		return cell("╯", border, fill)
	case cy == 0 || cy == ch-1:
		return cell("─", border, fill)
	case cx == 0 || cx == cw-1:
		return cell("│", border, fill)
	}

	if noisy(cx, cy, in.params.Noise) {
		return cell(noiseGlyph, fill.BlendRgb(white, 0.3), fill)
	}
	return cell(" ", fill, fill)
}

func cell(glyph string, fg, bg colorful.Color) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg.Clamped().Hex())).
		Background(lipgloss.Color(bg.Clamped().Hex())).
		Render(glyph)
}

// noisy picks a stable pseudo-random subset of cells whose share is the noise level.
func noisy(x, y int, level float64) bool {
	if level <= 0 {
		return false
	}
	hash := uint32(x)*73856093 ^ uint32(y)*19349663
	return float64(hash%100) < unit(level)*100
}

func parseStops(stops []string) []colorful.Color {
	parsed := make([]colorful.Color, 0, len(stops))
	for _, s := range stops {
		if c, err := colorful.Hex(s); err == nil {
			parsed = append(parsed, c)
		}
	}
	if len(parsed) == 0 {
		c, _ := colorful.Hex(fallbackSurface)
		parsed = append(parsed, c)
	}
	return parsed
}

// gradientAt samples a 135deg gradient: top-left is the first stop and
// bottom-right the last.
func gradientAt(stops []colorful.Color, x, y, w, h int) colorful.Color {
	if len(stops) == 1 {
		return stops[0]
	}
	t := float64(x+y) / float64(w+h-2)
	pos := t * float64(len(stops)-1)
	i := int(math.Floor(pos))
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	return stops[i].BlendRgb(stops[i+1], pos-float64(i))
}

func rgbColor(c glass.RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R.Value) / 255,
		G: float64(c.G.Value) / 255,
		B: float64(c.B.Value) / 255,
	}.Clamped()
}

func unit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
