package afa

import (
	"github.com/op/go-logging"

	"github.com/samo538/mata/core/mataerr"
)

var log = logging.MustGetLogger("afa")

// assert2 panics with a *mataerr.Error built from format/args when ok is
// false: direction mismatches are contract violations, not recoverable
// errors, so they panic rather than return.
func assert2(ok bool, format string, args ...interface{}) {
	if !ok {
		mataerr.Panic(mataerr.DirectionMismatchf(format, args...))
	}
}

func assertState(ok bool, format string, args ...interface{}) {
	if !ok {
		mataerr.Panic(mataerr.OutOfBoundsf(format, args...))
	}
}
