package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONReporter generates JSON reports.
type JSONReporter struct {
	pretty bool
}

// NewJSONReporter creates a new JSON reporter. When pretty is
// true, output is indented for readability.
func NewJSONReporter(pretty bool) *JSONReporter {
	return &JSONReporter{pretty: pretty}
}

// Render encodes the report as JSON.
func (j *JSONReporter) Render(r *Report) ([]byte, error) {
	if j.pretty {
		return json.MarshalIndent(r, "", "  ")
	}
	return json.Marshal(r)
}

// Write writes the JSON report to w.
func (j *JSONReporter) Write(w io.Writer, r *Report) error {
	data, err := j.Render(r)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
