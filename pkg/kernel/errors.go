package kernel

import (
	"fmt"

	"github.com/pkg/errors"
)

// MisuseError is the loud, non-recoverable diagnostic for programmer
// error: reading an unassigned variable, posting with a mismatched
// argument count, passing an unknown enumerated option. Unlike
// ME_FAILED/SS_FAILED (expected over-constraint, never surfaced as an
// error), a MisuseError indicates the caller broke the library's contract
// and should not be recovered by search.
type MisuseError struct {
	// Site names the offending call site (e.g. "IntVarImp.Val",
	// "Space.CloneBase").
	Site string
	// Reason is a short human-readable explanation.
	Reason string
	cause  error
}

// Error implements the error interface.
func (e *MisuseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Site, e.Reason)
}

// Unwrap exposes the stack-traced cause for errors.Is/As and for
// github.com/pkg/errors' %+v stack formatting.
func (e *MisuseError) Unwrap() error { return e.cause }

// Misuse builds a MisuseError carrying a stack trace captured at the call
// site, via github.com/pkg/errors.WithStack.
func Misuse(site, reason string) *MisuseError {
	return &MisuseError{
		Site:   site,
		Reason: reason,
		cause:  errors.WithStack(fmt.Errorf("%s", reason)),
	}
}

// Misusef is Misuse with a formatted reason.
func Misusef(site, format string, args ...any) *MisuseError {
	return Misuse(site, fmt.Sprintf(format, args...))
}
