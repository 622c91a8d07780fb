// Package mataerr defines the error taxonomy shared by the automaton and
// afa packages.
package mataerr

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrorCode tags the kind of failure a core operation reports. The set is
// closed: it mirrors the taxonomy a caller needs to branch on, not a
// human-facing message catalog.
type ErrorCode string

const (
	// OutOfBounds: a request references a State >= state-count.
	OutOfBounds ErrorCode = "out-of-bounds"
	// DirectionMismatch: post called on a downward-closed set, or pre on
	// an upward-closed set.
	DirectionMismatch ErrorCode = "direction-mismatch"
	// WrongType: construction received a section whose type tag does not
	// match the expected automaton kind.
	WrongType ErrorCode = "wrong-type"
	// Translation: serialization could not map a state or symbol through
	// the supplied dictionary.
	Translation ErrorCode = "translation"
	// InvalidTransitionLine: a body line had fewer than two tokens.
	InvalidTransitionLine ErrorCode = "invalid-transition-line"
	// Unimplemented: the requested operation is a documented stub.
	Unimplemented ErrorCode = "unimplemented"
)

// Error is the concrete error value every mataerr constructor wraps
// (with a stack trace) and returns; Code recovers it from the wrapper.
type Error struct {
	Code ErrorCode
	msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.msg)
}

// newf builds an *Error wrapped with errors.WithStack so that a caller
// who logs it later gets a stack trace pointing at the call site.
func newf(code ErrorCode, format string, args ...interface{}) error {
	return errors.WithStack(&Error{Code: code, msg: fmt.Sprintf(format, args...)})
}

// OutOfBoundsf reports a State/Symbol reference beyond the automaton's bounds.
func OutOfBoundsf(format string, args ...interface{}) error {
	return newf(OutOfBounds, format, args...)
}

// DirectionMismatchf reports post/pre called against the wrong ClosedSet direction.
func DirectionMismatchf(format string, args ...interface{}) error {
	return newf(DirectionMismatch, format, args...)
}

// WrongTypef reports a ParsedSection whose type tag doesn't match.
func WrongTypef(format string, args ...interface{}) error {
	return newf(WrongType, format, args...)
}

// Translationf reports a state/symbol that cannot be named during serialization.
func Translationf(format string, args ...interface{}) error {
	return newf(Translation, format, args...)
}

// InvalidTransitionLinef reports a body line with fewer than two tokens.
func InvalidTransitionLinef(format string, args ...interface{}) error {
	return newf(InvalidTransitionLine, format, args...)
}

// Unimplementedf reports a documented stub operation.
func Unimplementedf(format string, args ...interface{}) error {
	return newf(Unimplemented, format, args...)
}

// Code extracts the ErrorCode from err, if err (or something it wraps) is
// a *mataerr.Error.
func Code(err error) (ErrorCode, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return "", false
}

// Panic raises a precondition violation. Spec: out-of-bounds and
// direction-mismatch are contract violations detected by precondition
// checks, not expected in correct client code, so they abort the call
// stack immediately instead of threading back through every return
// signature.
func Panic(err error) {
	panic(err)
}
