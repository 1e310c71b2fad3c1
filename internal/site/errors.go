package site

import (
	"slices"

	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

func invalid(field, expected, message string, value any) error {
	b := ferrors.ValidationError(message).WithField(field).WithExpected(expected)
	if value != nil {
		b = b.WithValue(value)
	}
	return b.Build()
}

func required(field, what string) error {
	return invalid(field, "non-empty string", what+" must not be empty", nil)
}

func nestField(err error, parent string) error {
	return ferrors.NestField(err, parent)
}

// cloneOrNil normalizes empty slices to nil so equal values compare equal
// regardless of how they were built.
func cloneOrNil[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return slices.Clone(s)
}
