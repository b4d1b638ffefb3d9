package errors

import (
	"fmt"
	"os"
)

// LogHandler is a Handler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including error kinds and timestamps.
	Verbose bool
}

// HandleError logs an Error to stderr.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[isobox error] %s [%s] at %s: %v\n",
			err.Op, err.Kind, err.Timestamp.Format("15:04:05.000"), err.Err)
	} else {
		fmt.Fprintf(os.Stderr, "[isobox error] %s: %v\n", err.Op, err.Err)
	}
}
