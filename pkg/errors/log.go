package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler is an ErrorHandler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Out overrides the destination. Nil means os.Stderr.
	Out io.Writer
}

func (h *LogHandler) out() io.Writer {
	if h.Out != nil {
		return h.Out
	}
	return os.Stderr
}

// HandleError logs a PickerError.
func (h *LogHandler) HandleError(err *PickerError) {
	if err == nil {
		return
	}
	w := h.out()
	if h.Verbose {
		fmt.Fprintf(w, "[picker error] %s [%s]", err.Op, err.Kind)
		if err.Column != "" {
			fmt.Fprintf(w, " column=%s", err.Column)
		}
		fmt.Fprintf(w, ": %v\n", err.Err)
		if err.StackTrace != "" {
			fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
		}
	} else {
		fmt.Fprintf(w, "[picker error] %s: %v\n", err.Op, err.Err)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.out()
	if err.Op != "" {
		fmt.Fprintf(w, "[picker panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "[picker panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}
