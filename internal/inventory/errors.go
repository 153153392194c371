package inventory

import (
	"context"
	"errors"
	"fmt"
)

// FailureClass partitions collector failures by how the scan reacts to them.
type FailureClass int

const (
	// ClassAccessDenied means the caller lacks permission for this resource
	// kind in this scope. Many scopes legitimately lack a given permission,
	// so these are skipped without a failure record.
	ClassAccessDenied FailureClass = iota

	// ClassNotFound means the resource kind's API does not exist in this
	// scope, e.g. a region where the service is not offered. Skipped the
	// same way as access denials.
	ClassNotFound

	// ClassTransient covers every other failure. These are recorded as
	// failure records and the scan moves on. No retry is performed.
	ClassTransient
)

func (c FailureClass) String() string {
	switch c {
	case ClassAccessDenied:
		return "access_denied"
	case ClassNotFound:
		return "not_found"
	default:
		return "transient"
	}
}

// CollectionError wraps a cloud API failure with its classification.
type CollectionError struct {
	Class FailureClass
	Err   error
}

func (e *CollectionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Class, e.Err)
}

func (e *CollectionError) Unwrap() error {
	return e.Err
}

// AccessDenied classifies err as a permission failure.
func AccessDenied(err error) error {
	return &CollectionError{Class: ClassAccessDenied, Err: err}
}

// NotFound classifies err as the service being absent from the scope.
func NotFound(err error) error {
	return &CollectionError{Class: ClassNotFound, Err: err}
}

// Transient classifies err as an unexpected failure worth surfacing.
func Transient(err error) error {
	return &CollectionError{Class: ClassTransient, Err: err}
}

// ClassOf returns the failure class of err. Context deadline and
// cancellation errors, and anything not wrapped in a CollectionError,
// classify as transient.
func ClassOf(err error) FailureClass {
	var ce *CollectionError
	if errors.As(err, &ce) {
		if errors.Is(ce.Err, context.DeadlineExceeded) || errors.Is(ce.Err, context.Canceled) {
			return ClassTransient
		}
		return ce.Class
	}
	return ClassTransient
}
