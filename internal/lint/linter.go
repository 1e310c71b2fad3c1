package lint

import (
	"log/slog"
	"strconv"

	"git.home.luguber.info/inful/docnav/internal/logfields"
)

// Linter runs the advisory rules over a validated configuration.
type Linter struct {
	cfg   *Config
	rules []Rule
}

// NewLinter creates a new linter with the given configuration.
func NewLinter(cfg *Config) *Linter {
	if cfg == nil {
		cfg = &Config{Format: "text"}
	}

	return &Linter{
		cfg: cfg,
		rules: []Rule{
			&UnscopedSidebarLinkRule{},
			&ForeignSectionRule{},
			&NavWithoutSidebarRule{},
			&DuplicateSiblingRule{},
			&EmptyNavGroupRule{},
			&UnusedSearchLocalesRule{},
			&FooterMarkupRule{},
			&FooterLinkRule{},
			&MissingPageRule{},
			&UnresolvedPageLinkRule{},
		},
	}
}

// Rules returns the names of all registered rules.
func (l *Linter) Rules() []string {
	names := make([]string, 0, len(l.rules))
	for _, r := range l.rules {
		names = append(names, r.Name())
	}
	return names
}

// Lint applies every applicable rule. Issues keep rule order, then the
// order in which each rule found them.
func (l *Linter) Lint(in Input) *Result {
	result := &Result{
		Issues:     []Issue{},
		LinksTotal: len(configLinks(in.Config)),
	}
	if in.Pages != nil {
		result.PagesTotal = in.Pages.Len()
	}

	for _, rule := range l.rules {
		if !rule.AppliesTo(in) {
			slog.Debug("Skipping rule", logfields.Rule(rule.Name()))
			continue
		}
		for _, issue := range rule.Check(in) {
			// Skip info in quiet mode
			if l.cfg.Quiet && issue.Severity == SeverityInfo {
				continue
			}
			result.Issues = append(result.Issues, issue)
		}
	}
	return result
}

// Failed reports whether the result should fail the run.
func (l *Linter) Failed(r *Result) bool {
	return !l.cfg.Quiet && r.HasWarnings()
}

func itoa(n int) string { return strconv.Itoa(n) }
