// Package quote defines the error taxonomy shared by the sizing, costing
// and document-generation stages. Every failure surfaced to a caller
// carries a machine-readable kind next to its human-readable message.
package quote

import "fmt"

// Kind identifies a failure class.
type Kind string

const (
	KindInvalidInput          Kind = "invalid_input"
	KindUnknownLocation       Kind = "unknown_location"
	KindInvalidSelection      Kind = "invalid_selection"
	KindInfeasibleSizing      Kind = "infeasible_sizing"
	KindDivisionUndefined     Kind = "division_undefined"
	KindMaterializationFailed Kind = "materialization_failed"
)

// Error is a classified failure.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Errorf builds a classified error from a format string.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying cause.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// KindOf extracts the Kind from err, walking wrapped causes. Unclassified
// errors report KindMaterializationFailed only when they escaped a backend;
// callers that never touch a backend should treat "" as internal.
func KindOf(err error) Kind {
	for err != nil {
		if qe, ok := err.(*Error); ok {
			return qe.Kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return ""
}
