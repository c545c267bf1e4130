package rdm

import (
	"errors"
	"fmt"
	"strings"
)

// Unpack and build errors.
var (
	ErrInsufficientData       = errors.New("insufficient data")
	ErrExtraData              = errors.New("extra data")
	ErrMismatchedGroupSize    = errors.New("data does not divide into whole group blocks")
	ErrMultipleVariableFields = errors.New("more than one variable sized field")
	ErrNestedVariableGroups   = errors.New("nested variable sized groups")
	ErrInconsistentDescriptor = errors.New("descriptor layout is not statically determinable")

	ErrInvalidToken = errors.New("invalid token")
	ErrTokenCount   = errors.New("wrong number of tokens")

	ErrInvalidConfig = errors.New("invalid configuration")
)

// FieldError annotates an error with the path of the field being processed.
type FieldError struct {
	FieldPath []string // e.g. ["sensors", "value"]
	Err       error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if len(e.FieldPath) == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("field %s: %v", e.Path(), e.Err)
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// Path returns the dotted field path.
func (e *FieldError) Path() string {
	return strings.Join(e.FieldPath, ".")
}

// fieldPath returns the path carried by err, or "".
func fieldPath(err error) string {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Path()
	}
	return ""
}
