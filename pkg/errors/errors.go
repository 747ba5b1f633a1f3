package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures settings validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ClipboardError reports a failed clipboard write.
type ClipboardError struct {
	Err error
}

// NewClipboardError constructs a ClipboardError.
func NewClipboardError(err error) error {
	return &ClipboardError{Err: err}
}

func (e *ClipboardError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("clipboard error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *ClipboardError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// TerminalError indicates an interactive screen was requested without a terminal.
type TerminalError struct {
	Screen string
}

// NewTerminalError constructs a TerminalError for the named screen.
func NewTerminalError(screen string) error {
	return &TerminalError{Screen: screen}
}

func (e *TerminalError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s requires an interactive terminal", e.Screen)
}
