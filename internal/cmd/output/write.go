package output

import (
	"io"

	"github.com/agentstation/dictmap/internal/cmd/table"
)

// Write renders a result: tabular formats get rows, the others get value.
// An empty format is detected from the terminal.
func Write(w io.Writer, format string, value any, rows table.Data) error {
	f := DetectFormat(format)
	if f.IsTabular() {
		return NewFormatter(f).Format(w, rows)
	}
	return NewFormatter(f).Format(w, value)
}
