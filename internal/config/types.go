package config

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/glasslab/internal/glass"
)

// Settings is the glasslab settings document. Every field has a built-in
// default, so a settings file only needs the keys it wants to change.
type Settings struct {
	Version  string `yaml:"version" validate:"required,semver"`
	LogLevel string `yaml:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	Studio   Studio `yaml:"studio"`
}

// Studio holds the starting values and control ranges for Glass Studio.
type Studio struct {
	CopyReset   time.Duration `yaml:"copy_reset" validate:"gt=0"`
	Blur        Range         `yaml:"blur"`
	Opacity     Range         `yaml:"opacity"`
	Outline     Range         `yaml:"outline"`
	Elevation   Range         `yaml:"elevation"`
	Noise       Range         `yaml:"noise"`
	Tint        string        `yaml:"tint"`
	Environment string        `yaml:"environment" validate:"required,oneof=mesh deep dark default"`
}

// Range describes a slider: its bounds, increment and starting value.
type Range struct {
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max" validate:"gtfield=Min"`
	Step    float64 `yaml:"step" validate:"gt=0"`
	Default float64 `yaml:"default"`
}

// Clamp limits v to the range bounds.
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Nudge moves v by steps increments and snaps the result onto the step
// grid inside the bounds, the way a range control does. The result is
// rounded to the precision of Step so 0.25 + 0.05 stays 0.3.
func (r Range) Nudge(v float64, steps int) float64 {
	if r.Step <= 0 {
		return r.Clamp(v)
	}
	n := math.Round((v-r.Min)/r.Step) + float64(steps)
	next := r.Clamp(r.Min + n*r.Step)

	decimals := max(decimalPlaces(r.Step), decimalPlaces(r.Min))
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(next, 'f', decimals, 64), 64)
	if err != nil {
		return next
	}
	return rounded
}

func decimalPlaces(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		Version:  "1.0",
		LogLevel: "info",
		Studio: Studio{
			CopyReset:   2 * time.Second,
			Blur:        Range{Min: 0, Max: 40, Step: 1, Default: 16},
			Opacity:     Range{Min: 0, Max: 1, Step: 0.05, Default: 0.25},
			Outline:     Range{Min: 0, Max: 1, Step: 0.05, Default: 0.3},
			Elevation:   Range{Min: 0, Max: 100, Step: 2, Default: 40},
			Noise:       Range{Min: 0, Max: 1, Step: 0.05, Default: 0.1},
			Tint:        "#ffffff",
			Environment: string(glass.EnvironmentMesh),
		},
	}
}

// Params returns the studio starting parameters.
func (s *Settings) Params() glass.Params {
	return glass.Params{
		Blur:        s.Studio.Blur.Default,
		Opacity:     s.Studio.Opacity.Default,
		Tint:        s.Studio.Tint,
		Outline:     s.Studio.Outline.Default,
		Elevation:   s.Studio.Elevation.Default,
		Noise:       s.Studio.Noise.Default,
		Environment: glass.Environment(s.Studio.Environment),
	}
}

func (s Studio) ranges() []namedRange {
	return []namedRange{
		{"blur", s.Blur},
		{"opacity", s.Opacity},
		{"outline", s.Outline},
		{"elevation", s.Elevation},
		{"noise", s.Noise},
	}
}

type namedRange struct {
	name string
	Range
}
