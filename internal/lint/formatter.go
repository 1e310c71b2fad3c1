package lint

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Formatter formats linting results for output.
type Formatter interface {
	Format(w io.Writer, result *Result, source string) error
}

// TextFormatter formats results as human-readable text.
type TextFormatter struct{}

// NewTextFormatter creates a text formatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format outputs results in human-readable text format.
func (f *TextFormatter) Format(w io.Writer, result *Result, source string) error {
	var b strings.Builder

	// Header
	fmt.Fprintf(&b, "Linting configuration: %s\n", source)
	b.WriteString(strings.Repeat("━", 60) + "\n\n")

	for _, issue := range result.Issues {
		f.formatIssue(&b, issue)
		b.WriteString("\n")
	}

	// Summary
	b.WriteString(strings.Repeat("━", 60) + "\n")
	b.WriteString("Results:\n")
	fmt.Fprintf(&b, "  %d link%s checked\n", result.LinksTotal, pluralize(result.LinksTotal))
	if result.PagesTotal > 0 {
		fmt.Fprintf(&b, "  %d page%s scanned\n", result.PagesTotal, pluralize(result.PagesTotal))
	}
	if n := result.WarningCount(); n > 0 {
		fmt.Fprintf(&b, "  %d warning%s (degraded navigation)\n", n, pluralize(n))
	}
	if n := result.InfoCount(); n > 0 {
		fmt.Fprintf(&b, "  %d info (legal, worth a look)\n", n)
	}
	b.WriteString("\n")

	// Final message
	switch {
	case result.HasWarnings():
		b.WriteString("⚠️  Navigation has warnings. The site builds, but some pages are hard to reach.\n")
	case len(result.Issues) > 0:
		b.WriteString("ℹ️  All issues are informational.\n")
	default:
		b.WriteString("✨ Navigation passes linting!\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// formatIssue formats a single issue.
func (f *TextFormatter) formatIssue(b *strings.Builder, issue Issue) {
	// Icon based on severity
	icon := "ℹ"
	if issue.Severity == SeverityWarning {
		icon = "⚠"
	}

	fmt.Fprintf(b, "%s %s\n", icon, issue.Location())
	fmt.Fprintf(b, "  %s [%s]: %s\n", issue.Severity, issue.Rule, issue.Message)

	// Explanation (indented)
	if issue.Explanation != "" {
		for line := range strings.SplitSeq(strings.TrimSpace(issue.Explanation), "\n") {
			fmt.Fprintf(b, "  %s\n", line)
		}
	}

	// Fix suggestion
	if issue.Fix != "" {
		fmt.Fprintf(b, "\n  Fix: %s\n", issue.Fix)
	}
}

// JSONFormatter formats results as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// JSONOutput represents the JSON output structure.
type JSONOutput struct {
	Source       string      `json:"source"`
	LinksTotal   int         `json:"links_total"`
	PagesTotal   int         `json:"pages_total"`
	WarningCount int         `json:"warning_count"`
	InfoCount    int         `json:"info_count"`
	Issues       []JSONIssue `json:"issues"`
}

// JSONIssue represents a single issue in JSON format.
type JSONIssue struct {
	Severity    string `json:"severity"`
	Rule        string `json:"rule"`
	Field       string `json:"field,omitempty"`
	FilePath    string `json:"file_path,omitempty"`
	Line        int    `json:"line,omitempty"`
	Message     string `json:"message"`
	Explanation string `json:"explanation,omitempty"`
	Fix         string `json:"fix,omitempty"`
}

// Format outputs results in JSON format.
func (f *JSONFormatter) Format(w io.Writer, result *Result, source string) error {
	output := JSONOutput{
		Source:       source,
		LinksTotal:   result.LinksTotal,
		PagesTotal:   result.PagesTotal,
		WarningCount: result.WarningCount(),
		InfoCount:    result.InfoCount(),
		Issues:       make([]JSONIssue, 0, len(result.Issues)),
	}

	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, JSONIssue{
			Severity:    issue.Severity.String(),
			Rule:        issue.Rule,
			Field:       issue.Field,
			FilePath:    issue.FilePath,
			Line:        issue.Line,
			Message:     issue.Message,
			Explanation: issue.Explanation,
			Fix:         issue.Fix,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// NewFormatter creates the appropriate formatter based on format string.
func NewFormatter(format string) Formatter {
	switch format {
	case "json":
		return NewJSONFormatter()
	default:
		return NewTextFormatter()
	}
}

// pluralize returns "s" if count != 1, otherwise empty string.
func pluralize(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
