package lint

import (
	"git.home.luguber.info/inful/docnav/internal/pages"
	"git.home.luguber.info/inful/docnav/internal/site"
)

// Severity indicates the importance level of a linting issue. Every issue is
// advisory; invalid configurations never reach the linter.
type Severity int

const (
	// SeverityInfo marks legal but unusual structure.
	SeverityInfo Severity = iota
	// SeverityWarning marks a degraded but functional site.
	SeverityWarning
)

// String returns the human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	default:
		return "UNKNOWN"
	}
}

// Issue represents a single advisory finding.
type Issue struct {
	Severity    Severity // Issue severity level
	Rule        string   // Rule identifier (e.g., "sidebar-link-unscoped")
	Field       string   // Configuration field path, empty for page findings
	FilePath    string   // Page file relative to the docs root, if any
	Line        int      // Line number in FilePath (0 if unknown)
	Message     string   // Brief description of the issue
	Explanation string   // Detailed explanation with context
	Fix         string   // Suggested fix
}

// Location renders where the issue was found.
func (i Issue) Location() string {
	switch {
	case i.FilePath != "" && i.Line > 0:
		return i.FilePath + ":" + itoa(i.Line)
	case i.FilePath != "":
		return i.FilePath
	default:
		return i.Field
	}
}

// Result contains all issues found during linting.
type Result struct {
	Issues     []Issue
	LinksTotal int // Configuration links examined
	PagesTotal int // Pages scanned, zero without a docs directory
}

// HasWarnings returns true if any warning-level issues exist.
func (r *Result) HasWarnings() bool {
	return r.WarningCount() > 0
}

// WarningCount returns the number of warning-level issues.
func (r *Result) WarningCount() int {
	return r.count(SeverityWarning)
}

// InfoCount returns the number of info-level issues.
func (r *Result) InfoCount() int {
	return r.count(SeverityInfo)
}

func (r *Result) count(s Severity) int {
	count := 0
	for _, issue := range r.Issues {
		if issue.Severity == s {
			count++
		}
	}
	return count
}

// Input is what rules inspect.
type Input struct {
	Config *site.Configuration
	// Pages is nil unless a docs directory was given.
	Pages *pages.Index
}

// Rule defines an advisory check over a configuration.
type Rule interface {
	// Name returns the unique identifier for this rule.
	Name() string

	// Check inspects the input and returns any issues found.
	Check(in Input) []Issue

	// AppliesTo returns true if this rule can run on the input.
	AppliesTo(in Input) bool
}

// Config contains configuration for the linter.
type Config struct {
	// Quiet drops informational issues.
	Quiet bool

	// Format specifies output format (text, json).
	Format string
}
