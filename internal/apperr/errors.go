// Package apperr defines the error kinds surfaced by the warehouse usecases.
// Every failed operation leaves store state untouched and reports one of these.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindReferential
	KindNotFound
	KindUnauthenticated
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "VALIDATION"
	case KindConflict:
		return "CONFLICT"
	case KindReferential:
		return "REFERENTIAL"
	case KindNotFound:
		return "NOT_FOUND"
	case KindUnauthenticated:
		return "UNAUTHENTICATED"
	default:
		return "INTERNAL"
	}
}

type Error struct {
	Kind    Kind
	Message string
	// Count is the number of referencing records for KindReferential.
	Count int
	Err   error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Validationf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Conflictf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// Referential reports a deletion blocked by count referencing records.
func Referential(message string, count int) *Error {
	return &Error{Kind: KindReferential, Message: message, Count: count}
}

// NotFound reports an unknown id for the named entity.
func NotFound(entity string, id int) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s %d not found", entity, id)}
}

func NotFoundf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Unauthenticated(message string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: message}
}

// Internal wraps an unexpected failure (backend I/O and the like).
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	if err == nil {
		return false
	}
	return KindOf(err) == kind
}

func IsValidation(err error) bool      { return Is(err, KindValidation) }
func IsConflict(err error) bool        { return Is(err, KindConflict) }
func IsReferential(err error) bool     { return Is(err, KindReferential) }
func IsNotFound(err error) bool        { return Is(err, KindNotFound) }
func IsUnauthenticated(err error) bool { return Is(err, KindUnauthenticated) }

// ReferenceCount returns the referencing count carried by a referential error.
func ReferenceCount(err error) int {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindReferential {
		return e.Count
	}
	return 0
}
