// Package errors provides structured error values for the textattrs module.
//
// Only the loader surfaces (pkg/theme, pkg/fontface) return errors; the core
// span structures treat misuse as a caller bug and panic instead. See the
// package documentation of pkg/rangemap.
package errors

import "fmt"

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindConfig indicates an invalid theme document.
	KindConfig
	// KindParse indicates a malformed value inside an otherwise valid
	// document, such as a bad color literal.
	KindParse
	// KindFont indicates a failure reading font metadata.
	KindFont
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindParse:
		return "parse"
	case KindFont:
		return "font"
	default:
		return "unknown"
	}
}

// Error represents a structured error.
type Error struct {
	// Op is the operation that failed (e.g., "theme.Load").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds an Error wrapping err.
func New(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// Newf builds an Error from a formatted message.
func Newf(op string, kind Kind, format string, args ...any) *Error {
	return &Error{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}
