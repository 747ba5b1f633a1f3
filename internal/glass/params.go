package glass

// Environment selects the backdrop the glass card is previewed on.
type Environment string

const (
	EnvironmentMesh    Environment = "mesh"
	EnvironmentDeep    Environment = "deep"
	EnvironmentDark    Environment = "dark"
	EnvironmentDefault Environment = "default"
)

// Environments lists the selectable modes in cycling order.
var Environments = []Environment{EnvironmentMesh, EnvironmentDeep, EnvironmentDark, EnvironmentDefault}

// Next returns the mode after e in cycling order. Unknown modes restart the cycle.
func (e Environment) Next() Environment {
	for i, env := range Environments {
		if env == e {
			return Environments[(i+1)%len(Environments)]
		}
	}
	return Environments[0]
}

// Prev returns the mode before e in cycling order. Unknown modes map to the last mode.
func (e Environment) Prev() Environment {
	for i, env := range Environments {
		if env == e {
			return Environments[(i+len(Environments)-1)%len(Environments)]
		}
	}
	return Environments[len(Environments)-1]
}

// Params holds the current value of every studio control.
type Params struct {
	Blur        float64
	Opacity     float64
	Tint        string
	Outline     float64
	Elevation   float64
	Noise       float64
	Environment Environment
}
