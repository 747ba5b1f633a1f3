// Package logger is the zerolog setup shared by the glasslab commands and screens.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// DefaultApp is stamped on every entry when Options.App is empty.
const DefaultApp = "glasslab"

// consoleTimeFormat keeps console lines short next to the CSS and
// assessment output on the same terminal.
const consoleTimeFormat = "15:04:05"

// Options configures a Logger.
//
// Commands log human readable lines to stderr. Interactive screens log JSON
// to a file, because the screen owns the terminal while it runs.
type Options struct {
	Level         string
	HumanReadable bool
	// Writer defaults to stderr.
	Writer io.Writer
	// App names the program in the "app" field.
	App string
}

// Logger wraps zerolog with the small surface glasslab needs.
type Logger struct {
	base zerolog.Logger
}

// New builds a Logger from opts. An unknown level is an error.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	app := opts.App
	if app == "" {
		app = DefaultApp
	}

	output := writer
	if opts.HumanReadable {
		output = zerolog.ConsoleWriter{
			Out:        writer,
			NoColor:    !isTerminal(writer),
			TimeFormat: consoleTimeFormat,
		}
	}

	base := zerolog.New(output).Level(level).With().Timestamp().Str("app", app).Logger()
	return &Logger{base: base}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	ctx := l.base.With()
	for key, value := range fields {
		ctx = ctx.Interface(key, value)
	}
	return &Logger{base: ctx.Logger()}
}

// With returns a derived logger carrying one string field, such as the
// screen or command name.
func (l *Logger) With(key, value string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Str(key, value).Logger()}
}

func (l *Logger) Info(msg string)  { l.emit(zerolog.InfoLevel, nil, msg) }
func (l *Logger) Debug(msg string) { l.emit(zerolog.DebugLevel, nil, msg) }
func (l *Logger) Warn(msg string)  { l.emit(zerolog.WarnLevel, nil, msg) }

// Error logs msg with err attached under "error".
func (l *Logger) Error(err error, msg string) { l.emit(zerolog.ErrorLevel, err, msg) }

func (l *Logger) emit(level zerolog.Level, err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.WithLevel(level)
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
