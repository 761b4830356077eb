package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	// DefaultHandler is the global error handler.
	// It defaults to LogHandler with verbose=false.
	DefaultHandler ErrorHandler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler installs h as the global handler. Nil restores a quiet
// LogHandler.
func SetHandler(h ErrorHandler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		DefaultHandler = &LogHandler{}
	} else {
		DefaultHandler = h
	}
}

// getHandler returns the current error handler.
func getHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Wrap builds a PickerError for op, or returns nil when err is nil.
func Wrap(op string, kind ErrorKind, err error) error {
	if err == nil {
		return nil
	}
	return &PickerError{Op: op, Kind: kind, Err: err}
}

// Report sends an error to the global handler.
// If err.Timestamp is zero, it is set to the current time.
func Report(err *PickerError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandleError(err)
	}
}

// ReportPanic sends a panic error to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if h := getHandler(); h != nil {
		h.HandlePanic(err)
	}
}

// Recover reports a panic from a deferred call and swallows it, so a
// failing frame or user callback cannot take the host loop down.
// Usage: defer errors.Recover("picker.Column.onSnapFrame")
func Recover(op string) {
	if r := recover(); r != nil {
		reportRecovered(op, r)
	}
}

// RecoverWithCallback is Recover followed by callback(r), which can repair
// named results of the panicking function.
func RecoverWithCallback(op string, callback func(r any)) {
	if r := recover(); r != nil {
		reportRecovered(op, r)
		if callback != nil {
			callback(r)
		}
	}
}

func reportRecovered(op string, r any) {
	ReportPanic(&PanicError{
		Op:         op,
		Value:      r,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	})
}

// CaptureStack formats the stack of its caller's caller, one
// "function\n\tfile:line" entry per frame.
func CaptureStack() string {
	var pcs [32]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for more := true; more; {
		var f runtime.Frame
		f, more = frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
	}
	return sb.String()
}
