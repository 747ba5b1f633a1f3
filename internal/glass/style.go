package glass

import (
	"fmt"
	"strconv"
	"strings"
)

// Custom property names, in the order they are written.
const (
	VarBlur      = "--blur"
	VarOpacity   = "--opacity"
	VarTint      = "--tint"
	VarOutline   = "--outline"
	VarElevation = "--elevation"
	VarNoise     = "--noise"
)

// Var is a single CSS custom property assignment.
type Var struct {
	Name  string
	Value string
}

// Labels are the value readouts shown next to each control.
type Labels struct {
	Blur      string
	Opacity   string
	Outline   string
	Elevation string
	Noise     string
}

// Style is everything derived from one Params snapshot.
type Style struct {
	RGB    RGB
	Vars   []Var
	CSS    string
	Labels Labels
}

const cssTemplate = `background: rgba(%s, %s);
backdrop-filter: blur(%spx);
-webkit-backdrop-filter: blur(%spx);
border: 1px solid rgba(255, 255, 255, %s);
box-shadow: 0 10px %spx 0 rgba(0, 0, 0, 0.25);`

// Compute derives the custom properties, CSS text and labels for p.
func Compute(p Params) Style {
	rgb := HexToRGB(p.Tint)

	blur := FormatNumber(p.Blur)
	opacity := FormatNumber(p.Opacity)
	outline := FormatNumber(p.Outline)
	elevation := FormatNumber(p.Elevation)
	noise := FormatNumber(p.Noise)

	return Style{
		RGB: rgb,
		Vars: []Var{
			{Name: VarBlur, Value: blur + "px"},
			{Name: VarOpacity, Value: opacity},
			{Name: VarTint, Value: rgb.String()},
			{Name: VarOutline, Value: outline},
			{Name: VarElevation, Value: elevation + "px"},
			{Name: VarNoise, Value: noise},
		},
		CSS: fmt.Sprintf(cssTemplate, rgb, opacity, blur, blur, outline, elevation),
		Labels: Labels{
			Blur:      blur + "px",
			Opacity:   opacity,
			Outline:   outline,
			Elevation: elevation + "px",
			Noise:     noise,
		},
	}
}

// Lookup returns the value of the named custom property.
func (s Style) Lookup(name string) (string, bool) {
	for _, v := range s.Vars {
		if v.Name == name {
			return v.Value, true
		}
	}
	return "", false
}

// RootBlock renders the custom properties as a :root rule.
func (s Style) RootBlock() string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, v := range s.Vars {
		fmt.Fprintf(&b, "  %s: %s;\n", v.Name, v.Value)
	}
	b.WriteString("}")
	return b.String()
}

// FormatNumber renders v in the shortest form that parses back to v, so
// 16 stays "16" and 0.25 stays "0.25".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
