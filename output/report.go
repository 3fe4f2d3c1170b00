// Package output renders validation results for people and tools.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/c360studio/modelspec/model"
)

// Format identifies a report output format.
type Format string

const (
	// FormatText is the human-readable report.
	FormatText Format = "text"
	// FormatJSON is the machine-readable report.
	FormatJSON Format = "json"
)

// IsValid returns true if the format is supported.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// Write renders the result in the given format.
func Write(w io.Writer, res *model.Result, format Format) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, res)
	case FormatText:
		return WriteText(w, res)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// WriteJSON renders the result as indented JSON, preserving path, message,
// and severity per finding.
func WriteJSON(w io.Writer, res *model.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// WriteText renders a human-readable report grouped by severity counts.
func WriteText(w io.Writer, res *model.Result) error {
	var sb strings.Builder

	for _, d := range res.Diagnostics {
		sb.WriteString(fmt.Sprintf("%-7s %s: %s\n", strings.ToUpper(d.Severity.String()), d.Path, d.Message))
	}

	if len(res.Diagnostics) == 0 {
		sb.WriteString("No findings.\n")
	} else {
		sb.WriteString(fmt.Sprintf("\n%d error(s), %d warning(s), %d info\n",
			res.Count(model.SeverityError),
			res.Count(model.SeverityWarning),
			res.Count(model.SeverityInfo)))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// ExitCode maps a result to a process exit status: 1 when any diagnostic
// is error severity, 0 otherwise.
func ExitCode(res *model.Result) int {
	if res.HasErrors() {
		return 1
	}
	return 0
}
