// Package studio is the Glass Studio screen: sliders and inputs for the
// glass parameters, a live terminal preview and a copy-to-clipboard button.
package studio

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/glasslab/internal/config"
	"github.com/alexisbeaulieu97/glasslab/internal/glass"
	"github.com/alexisbeaulieu97/glasslab/internal/logger"
)

const (
	copyIdleLabel   = "COPY CSS"
	copiedLabel     = "COPIED!"
	copyFailedLabel = "COPY FAILED"
)

// field is a focusable row.
type field int

const (
	fieldBlur field = iota
	fieldOpacity
	fieldTint
	fieldOutline
	fieldElevation
	fieldNoise
	fieldEnvironment
	fieldCopy
	fieldCount
)

var fieldNames = map[field]string{
	fieldBlur:        "blur",
	fieldOpacity:     "opacity",
	fieldTint:        "tint",
	fieldOutline:     "outline",
	fieldElevation:   "elevation",
	fieldNoise:       "noise",
	fieldEnvironment: "environment",
	fieldCopy:        "copy",
}

func (f field) String() string { return fieldNames[f] }

// Clipboard receives the copied CSS text.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// SystemClipboard writes to the desktop clipboard.
var SystemClipboard Clipboard = systemClipboard{}

// copyResetMsg restores the copy button label.
type copyResetMsg struct{}

// neutralBackdrop is shown until an environment provides its own background.
var neutralBackdrop = glass.Backdrop{Background: "#1a1a2e", Stops: []string{"#1a1a2e", "#16213e"}, Decorations: true}

// Options configures a studio Model.
type Options struct {
	Settings  *config.Settings
	Clipboard Clipboard
	Logger    *logger.Logger
}

// Model is the Bubble Tea state of the studio.
type Model struct {
	studio    config.Studio
	params    glass.Params
	style     glass.Style
	backdrop  glass.Backdrop
	tint      textinput.Model
	focus     field
	copyLabel string
	clip      Clipboard
	log       *logger.Logger

	width  int
	height int
}

// New builds the studio from settings, applying the starting environment once.
func New(opts Options) Model {
	settings := opts.Settings
	if settings == nil {
		settings = config.Default()
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = SystemClipboard
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	params := settings.Params()

	tint := textinput.New()
	tint.Prompt = ""
	tint.CharLimit = 9
	tint.Width = 9
	tint.SetValue(params.Tint)

	m := Model{
		studio:    settings.Studio,
		params:    params,
		backdrop:  glass.ApplyEnvironment(neutralBackdrop, params.Environment),
		tint:      tint,
		focus:     fieldBlur,
		copyLabel: copyIdleLabel,
		clip:      clip,
		log:       log.With("screen", "studio"),
		width:     100,
		height:    30,
	}
	m.recompute()
	return m
}

// Init starts the program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Params returns the current control values.
func (m Model) Params() glass.Params { return m.params }

// Style returns the style derived from the current values.
func (m Model) Style() glass.Style { return m.style }

// Backdrop returns the current preview surface.
func (m Model) Backdrop() glass.Backdrop { return m.backdrop }

// CopyLabel returns the copy button text.
func (m Model) CopyLabel() string { return m.copyLabel }

// Focused returns the name of the focused row.
func (m Model) Focused() string { return m.focus.String() }

func (m *Model) recompute() {
	m.style = glass.Compute(m.params)
}

// setFocus moves focus to f, wrapping at both ends. Entering the tint row
// returns the input's cursor command.
func (m *Model) setFocus(f field) tea.Cmd {
	m.focus = (f + fieldCount) % fieldCount
	if m.focus == fieldTint {
		return m.tint.Focus()
	}
	m.tint.Blur()
	return nil
}

func (m Model) copyResetCmd() tea.Cmd {
	return tea.Tick(m.studio.CopyReset, func(time.Time) tea.Msg { return copyResetMsg{} })
}
