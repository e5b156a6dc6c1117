package config

import (
	"fmt"
	"io"
	"os"
)

// ExitCodef writes a formatted error message to stderr and exits with code.
func ExitCodef(code int, format string, args ...any) {
	Fprintlnf(os.Stderr, format, args...)
	os.Exit(code)
}

// Fprintlnf writes a formatted diagnostic line to w, ignoring write errors
// since the process is about to report failure anyway.
func Fprintlnf(w io.Writer, format string, args ...any) {
	if w == nil {
		return
	}
	_, _ = fmt.Fprintf(w, format+"\n", args...)
}
