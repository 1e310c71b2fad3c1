// Package errors provides the classified error type used across docnav.
//
// Configuration problems are either fatal validation errors, raised while a
// site configuration is being constructed, or advisory findings reported by
// the lint rules. This package covers the first kind: a ClassifiedError
// carries a category, a severity and structured context (most importantly
// the offending field and the shape that was expected there).
//
// Example usage:
//
//	err := errors.ValidationError("sidebar prefix must start and end with '/'").
//		WithField(`themeConfig.sidebar["guide"]`).
//		WithExpected("path prefix such as /guide/").
//		Build()
package errors
