package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ClassifiedError represents a structured error with category, severity, and context.
type ClassifiedError struct {
	category ErrorCategory
	severity ErrorSeverity
	message  string
	cause    error
	context  ErrorContext
}

// Error implements the standard error interface.
func (e *ClassifiedError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s:%s] %s", e.category, e.severity, e.message)

	var details []string
	if field, ok := e.context.GetString(ContextField); ok && field != "" {
		details = append(details, "field="+field)
	}
	if expected, ok := e.context.GetString(ContextExpected); ok && expected != "" {
		details = append(details, "expected="+expected)
	}
	if len(details) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(details, ", "))
	}
	if e.cause != nil {
		fmt.Fprintf(&b, ": %v", e.cause)
	}
	return b.String()
}

// Unwrap implements Go 1.13+ error unwrapping.
func (e *ClassifiedError) Unwrap() error {
	return e.cause
}

// Category returns the error category.
func (e *ClassifiedError) Category() ErrorCategory {
	return e.category
}

// Severity returns the error severity.
func (e *ClassifiedError) Severity() ErrorSeverity {
	return e.severity
}

// Message returns the error message.
func (e *ClassifiedError) Message() string {
	return e.message
}

// Cause returns the underlying error.
func (e *ClassifiedError) Cause() error {
	return e.cause
}

// Context returns a copy of the error context.
func (e *ClassifiedError) Context() ErrorContext {
	return e.context.Clone()
}

// Field returns the offending field path, if any.
func (e *ClassifiedError) Field() string {
	field, _ := e.context.GetString(ContextField)
	return field
}

// Expected returns the description of the expected shape, if any.
func (e *ClassifiedError) Expected() string {
	expected, _ := e.context.GetString(ContextExpected)
	return expected
}

// WithContext adds context to the error and returns a new error.
func (e *ClassifiedError) WithContext(key string, value any) *ClassifiedError {
	clone := *e
	clone.context = e.context.Clone().Set(key, value)
	return &clone
}

// WithContextMap adds multiple context values and returns a new error.
func (e *ClassifiedError) WithContextMap(ctx ErrorContext) *ClassifiedError {
	clone := *e
	clone.context = e.context.Merge(ctx)
	return &clone
}

// Is implements error comparison for Go 1.13+ error handling.
func (e *ClassifiedError) Is(target error) bool {
	if other, ok := target.(*ClassifiedError); ok {
		return e.category == other.category && e.message == other.message
	}
	return false
}

// IsCategory checks if the error belongs to a specific category.
func (e *ClassifiedError) IsCategory(category ErrorCategory) bool {
	return e.category == category
}

// IsFatal checks if the error is fatal (should stop execution).
func (e *ClassifiedError) IsFatal() bool {
	return e.severity == SeverityFatal
}

// IsClassified checks if any error in the chain is a ClassifiedError.
func IsClassified(err error) bool {
	_, ok := AsClassified(err)
	return ok
}

// AsClassified extracts the first ClassifiedError from the error chain.
func AsClassified(err error) (*ClassifiedError, bool) {
	var classified *ClassifiedError
	if stderrors.As(err, &classified) {
		return classified, true
	}
	return nil, false
}

// HasCategory checks if the error chain carries a ClassifiedError of the category.
func HasCategory(err error, category ErrorCategory) bool {
	if classified, ok := AsClassified(err); ok {
		return classified.IsCategory(category)
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal.
func GetCategory(err error) ErrorCategory {
	if classified, ok := AsClassified(err); ok {
		return classified.Category()
	}
	return CategoryInternal
}

// GetSeverity extracts the severity from an error, or returns SeverityError.
func GetSeverity(err error) ErrorSeverity {
	if classified, ok := AsClassified(err); ok {
		return classified.Severity()
	}
	return SeverityError
}

// NestField prefixes the field path of a classified error with parent.
// Errors that are not classified are returned unchanged.
//
//	NestField(err{field: "link"}, "nav[2]") -> field "nav[2].link"
//	NestField(err{field: "[0]"}, "items")   -> field "items[0]"
func NestField(err error, parent string) error {
	classified, ok := AsClassified(err)
	if !ok || parent == "" {
		return err
	}
	field := classified.Field()
	switch {
	case field == "":
		field = parent
	case strings.HasPrefix(field, "["):
		field = parent + field
	default:
		field = parent + "." + field
	}
	return classified.WithContext(ContextField, field)
}
