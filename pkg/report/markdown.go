package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"digital.vasic.matchers/pkg/matcher"
)

// MarkdownReporter generates Markdown reports.
type MarkdownReporter struct {
	title string
}

// NewMarkdownReporter creates a Markdown reporter whose document
// starts with title.
func NewMarkdownReporter(title string) *MarkdownReporter {
	if title == "" {
		title = "Verification Report"
	}
	return &MarkdownReporter{title: title}
}

// Render produces the Markdown document.
func (m *MarkdownReporter) Render(r *Report) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", m.title))
	sb.WriteString(fmt.Sprintf(
		"**Generated:** %s\n\n",
		r.GeneratedAt.Format(time.RFC3339),
	))

	sb.WriteString("## Overview\n\n")
	sb.WriteString("| Check | Status | Duration |\n")
	sb.WriteString("|-------|--------|----------|\n")
	for _, o := range r.Outcomes {
		status := "PASSED"
		if !o.Passed {
			status = "FAILED"
		}
		sb.WriteString(fmt.Sprintf(
			"| %s | %s | %v |\n", escapeCell(o.Name), status, o.Duration,
		))
	}

	if r.Failed > 0 {
		sb.WriteString("\n## Failures\n")
		for _, o := range r.Outcomes {
			if o.Passed {
				continue
			}
			sb.WriteString(fmt.Sprintf("\n### %s\n\n", o.Name))
			sb.WriteString("```\n")
			sb.WriteString(matcher.FailureMessage(o.Result))
			sb.WriteString("\n```\n")
		}
	}

	sb.WriteString("\n## Statistics\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Total Checks | %d |\n", r.Total))
	sb.WriteString(fmt.Sprintf("| Passed | %d |\n", r.Passed))
	sb.WriteString(fmt.Sprintf("| Failed | %d |\n", r.Failed))
	sb.WriteString(fmt.Sprintf("| Pass Rate | %.0f%% |\n", r.PassRate()*100))
	sb.WriteString(fmt.Sprintf("| Total Duration | %v |\n", r.Duration))

	return []byte(sb.String()), nil
}

// Write writes the Markdown report to w.
func (m *MarkdownReporter) Write(w io.Writer, r *Report) error {
	data, err := m.Render(r)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// escapeCell keeps pipes in s from ending a table cell.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
