// Package lab is the Password Lab screen: a masked input with a live
// strength meter, status, stats and pattern findings.
package lab

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/glasslab/internal/logger"
	"github.com/alexisbeaulieu97/glasslab/internal/password"
	"github.com/alexisbeaulieu97/glasslab/internal/tui/components"
)

const meterWidth = 40

// Options configures a lab Model.
type Options struct {
	Logger *logger.Logger
}

// Model is the Bubble Tea state of the lab.
type Model struct {
	input      textinput.Model
	assessment password.Assessment
	readout    password.Readout
	meter      components.Meter
	revealed   bool
	log        *logger.Logger

	width  int
	height int
}

// New creates an empty, focused lab.
func New(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	input := textinput.New()
	input.Placeholder = "type a password"
	input.Prompt = "› "
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '•'
	input.Width = meterWidth
	input.Focus()

	m := Model{
		input: input,
		meter: components.NewMeter(meterWidth),
		log:   log.With("screen", "lab"),
		width: 80,
	}
	m.assess()
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Assessment returns the result for the current input.
func (m Model) Assessment() password.Assessment { return m.assessment }

// Readout returns the display values for the current input.
func (m Model) Readout() password.Readout { return m.readout }

// Revealed reports whether the input is shown in clear text.
func (m Model) Revealed() bool { return m.revealed }

func (m *Model) assess() {
	m.assessment = password.Assess(m.input.Value())
	m.readout = password.Render(m.assessment)
}
