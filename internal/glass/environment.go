package glass

// Backdrop is the surface behind the glass card.
type Backdrop struct {
	// Background is the CSS background value.
	Background string
	// Stops are the gradient colours used for terminal previews.
	Stops []string
	// Decorations controls the floating blob layer.
	Decorations bool
}

var backdrops = map[Environment]Backdrop{
	EnvironmentMesh: {
		Background:  "linear-gradient(135deg, #667eea, #764ba2)",
		Stops:       []string{"#667eea", "#764ba2"},
		Decorations: true,
	},
	EnvironmentDeep: {
		Background:  "linear-gradient(135deg, #000428, #004e92)",
		Stops:       []string{"#000428", "#004e92"},
		Decorations: true,
	},
	EnvironmentDark: {
		Background:  "#0a0a0a",
		Stops:       []string{"#0a0a0a"},
		Decorations: false,
	},
}

// ApplyEnvironment returns the backdrop after switching to mode. Modes
// without a backdrop of their own keep the current background and only
// make the decorative layer visible again.
func ApplyEnvironment(current Backdrop, mode Environment) Backdrop {
	if next, ok := backdrops[mode]; ok {
		next.Stops = append([]string(nil), next.Stops...)
		return next
	}
	current.Decorations = true
	return current
}
