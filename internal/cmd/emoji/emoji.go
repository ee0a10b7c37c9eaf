// Package emoji provides the status symbols commands print on stderr.
package emoji

// Status symbols.
const (
	// Success marks a check that passed.
	Success = "✓"

	// Error marks a check that failed.
	Error = "✗"

	// Warning marks a recoverable problem.
	Warning = "!"

	// Info marks a plain note.
	Info = "i"
)

