package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath     = "path"
	KeyPrefix   = "prefix"
	KeyRoute    = "route"
	KeyField    = "field"
	KeyRule     = "rule"
	KeyLocale   = "locale"
	KeyFormat   = "format"
	KeyCount    = "count"
	KeySeverity = "severity"
	KeyError    = "error"
)

func Path(p string) slog.Attr     { return slog.String(KeyPath, p) }
func Prefix(p string) slog.Attr   { return slog.String(KeyPrefix, p) }
func Route(r string) slog.Attr    { return slog.String(KeyRoute, r) }
func Field(f string) slog.Attr    { return slog.String(KeyField, f) }
func Rule(r string) slog.Attr     { return slog.String(KeyRule, r) }
func Locale(l string) slog.Attr   { return slog.String(KeyLocale, l) }
func Format(f string) slog.Attr   { return slog.String(KeyFormat, f) }
func Count(n int) slog.Attr       { return slog.Int(KeyCount, n) }
func Severity(s string) slog.Attr { return slog.String(KeySeverity, s) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
