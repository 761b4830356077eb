// Package errors provides structured error reporting for the picker engine.
//
// Nothing in the engine panics or returns an error for expected conditions
// (missing haptics, boundary reached, unknown locale). This package carries
// the cases that are genuinely exceptional: configuration failures, calendar
// precondition violations and panics recovered from frame or user callbacks.
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
	// KindCalendar indicates a calendar precondition failure.
	KindCalendar
	// KindConfig indicates a configuration load or parse failure.
	KindConfig
	// KindHaptics indicates a haptic coordinator failure.
	KindHaptics
	// KindLocale indicates a localisation failure.
	KindLocale
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindCalendar:
		return "calendar"
	case KindConfig:
		return "config"
	case KindHaptics:
		return "haptics"
	case KindLocale:
		return "locale"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// PickerError represents a structured error raised by the picker engine.
type PickerError struct {
	// Op is the operation that failed (e.g., "calendar.LunarMaxDay").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Column names the picker column involved, if any.
	Column string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *PickerError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s [%s] column=%s: %v", e.Op, e.Kind, e.Column, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *PickerError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "picker.tossFrame").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the picker engine.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *PickerError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
