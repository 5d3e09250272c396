// Package sawyererr provides the error-kind hierarchy shared by the cursor,
// value-parser, and switch-parsing packages. It follows the same shape as a
// compiler error type: a message, an optional source position, and a kind
// that callers can branch on without string matching.
package sawyererr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sawyer-cli/sawyer/cursor"
)

// Kind discriminates the error categories a caller may need to branch on.
type Kind int

const (
	// KindSyntax covers a value parser that failed to match, or left
	// unexpected trailing text behind after a switch's arguments.
	KindSyntax Kind = iota
	// KindRange covers a parsed numeric value that does not fit the
	// destination's declared width.
	KindRange
	// KindMissingArgument covers a required switch argument that could not
	// be matched and has no default.
	KindMissingArgument
	// KindMissingSeparator covers a long switch whose value separator could
	// not be matched before its first argument.
	KindMissingSeparator
	// KindUnknownSwitch covers a token that looks like a switch but matches
	// no declared candidate.
	KindUnknownSwitch
	// KindRetentionViolation covers a retention policy rejecting a new
	// occurrence (SAVE_NONE saw a value, SAVE_ONE saw a duplicate key).
	KindRetentionViolation
	// KindInclusion covers a failure to open or tokenize an included
	// arguments file.
	KindInclusion
)

func (k Kind) String() string {
	switch k {
	case KindSyntax:
		return "SyntaxError"
	case KindRange:
		return "RangeError"
	case KindMissingArgument:
		return "MissingArgumentError"
	case KindMissingSeparator:
		return "MissingSeparatorError"
	case KindUnknownSwitch:
		return "UnknownSwitchError"
	case KindRetentionViolation:
		return "RetentionViolation"
	case KindInclusion:
		return "InclusionError"
	default:
		return "Error"
	}
}

// Error is the concrete error type produced by every parsing component.
// Switch is the literal token text as it appeared on the command line,
// when applicable; it is left blank for errors that are not anchored to a
// particular switch occurrence (e.g. most InclusionErrors).
type Error struct {
	Kind     Kind
	Message  string
	Switch   string
	Location cursor.Location
	cause    error
}

// New constructs an Error of the given kind with no source position.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Location: cursor.Nowhere}
}

// At constructs an Error anchored to the given switch token and location.
func At(kind Kind, loc cursor.Location, switchToken, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Switch: switchToken, Location: loc}
}

// Wrap annotates an existing error with a Kind, preserving it as the cause.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), cause: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Format(false)
}

// Unwrap exposes the wrapped cause, if any, for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is a *Error with the same Kind, so callers can
// write errors.Is(err, sawyererr.New(sawyererr.KindRange, "")) style checks,
// or more idiomatically use the Kind accessor directly.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// Format renders the error. The switch token, when set, always follows the
// kind in the message prefix; when withContext is true and a non-NOWHERE
// Location is present, the argument index and offset are appended.
func (e *Error) Format(withContext bool) string {
	var sb strings.Builder
	if e.Switch != "" {
		fmt.Fprintf(&sb, "%s: %s", e.Kind, e.Switch)
	} else {
		fmt.Fprintf(&sb, "%s", e.Kind)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Message)
	if withContext && !e.Location.IsNowhere() {
		fmt.Fprintf(&sb, " (at argument %d, offset %d)", e.Location.Idx, e.Location.Offset)
	}
	return sb.String()
}

// WithContext returns a copy of e anchored to switchToken and loc, preserving
// Kind and Message. Used to attach switch/location context to an error that
// originated deeper in a value parser, without losing its Kind (e.g. a
// RangeError must stay inspectable as such even after a Switch wraps it).
func (e *Error) WithContext(switchToken string, loc cursor.Location) *Error {
	c := *e
	c.Switch = switchToken
	c.Location = loc
	return &c
}

// KindOf extracts the Kind from err if it is (or wraps) a *Error, reporting
// ok=false otherwise.
func KindOf(err error) (Kind, bool) {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind, true
	}
	return 0, false
}
