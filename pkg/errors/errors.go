// Package errors provides structured error handling for isobox.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindGeometry indicates invalid box geometry.
	KindGeometry
	// KindConfig indicates a scene configuration error.
	KindConfig
	// KindEncode indicates an image or SVG encoding failure.
	KindEncode
	// KindRender indicates a canvas backend error.
	KindRender
)

func (k ErrorKind) String() string {
	switch k {
	case KindGeometry:
		return "geometry"
	case KindConfig:
		return "config"
	case KindEncode:
		return "encode"
	case KindRender:
		return "render"
	default:
		return "unknown"
	}
}

// Error represents a structured isobox error.
type Error struct {
	// Op is the operation that failed (e.g., "isometric.Render").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New constructs an Error wrapping err.
func New(op string, kind ErrorKind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// Newf constructs an Error from a format string.
func Newf(op string, kind ErrorKind, format string, args ...any) *Error {
	return &Error{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

// Handler receives errors reported by isobox components.
type Handler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
}
