// Package fail defines the failure taxonomy that gencheck's core
// algebras escalate to callers.
//
// Shape is grounded on httperror's tagged error struct (a kind, a
// message, an optional wrapped cause reachable via Unwrap) — httperror's
// tags are HTTP status codes, which have no meaning here, so the tag is
// replaced with the taxonomy spec.md §6 defines.
package fail

import "fmt"

// Kind classifies a failure raised by the generator, registry, property,
// or driver layers.
type Kind string

const (
	KindPropertyFailed           Kind = "PropertyFailed"
	KindNondeterministicProperty Kind = "NondeterministicProperty"
	KindGeneratorExhausted       Kind = "GeneratorExhausted"
	KindAlreadyRegistered        Kind = "AlreadyRegistered"
	KindNotRegistered            Kind = "NotRegistered"
	KindInvalidArgument          Kind = "InvalidArgument"
)

// Error is the concrete error type for every taxonomy entry except
// PropertyFailed, which additionally carries the minimized input (see
// PropertyFailedError).
type Error struct {
	kind    Kind
	message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.kind, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.kind, e.message)
}

// Kind returns the failure's taxonomy classification.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the error message without the wrapped cause.
func (e *Error) Message() string { return e.message }

// Unwrap supports errors.As/errors.Is over the wrapped cause.
func (e *Error) Unwrap() error { return e.cause }

// New creates a taxonomy error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{kind: kind, message: message}
}

// Newf creates a taxonomy error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{kind: kind, message: fmt.Sprintf(format, args...)}
}

// Wrap creates a taxonomy error wrapping an underlying cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{kind: kind, message: message, cause: cause}
}

// Is reports whether err is a *Error of the given kind.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	if !ok {
		if pf, ok := err.(*PropertyFailedError); ok {
			return pf.Kind() == kind
		}
		return false
	}
	return e.kind == kind
}

// GeneratorExhausted reports that a Filter/SuchThat could not find a
// satisfying value within its retry budget.
func GeneratorExhausted(message string) *Error { return New(KindGeneratorExhausted, message) }

// GeneratorExhaustedf is GeneratorExhausted with a formatted message.
func GeneratorExhaustedf(format string, args ...any) *Error {
	return Newf(KindGeneratorExhausted, format, args...)
}

// AlreadyRegistered reports a duplicate registry registration.
func AlreadyRegistered(message string) *Error { return New(KindAlreadyRegistered, message) }

// AlreadyRegisteredf is AlreadyRegistered with a formatted message.
func AlreadyRegisteredf(format string, args ...any) *Error {
	return Newf(KindAlreadyRegistered, format, args...)
}

// NotRegistered reports that no arbitrary or factory matched a type.
func NotRegistered(message string) *Error { return New(KindNotRegistered, message) }

// NotRegisteredf is NotRegistered with a formatted message.
func NotRegisteredf(format string, args ...any) *Error {
	return Newf(KindNotRegistered, format, args...)
}

// InvalidArgument reports combinator misuse (e.g. an empty Frequency table).
func InvalidArgument(message string) *Error { return New(KindInvalidArgument, message) }

// InvalidArgumentf is InvalidArgument with a formatted message.
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(KindInvalidArgument, format, args...)
}

// NondeterministicProperty reports that the final replay of a minimized
// input did not reproduce the failure it was minimized from.
func NondeterministicProperty(message string) *Error {
	return New(KindNondeterministicProperty, message)
}

// PropertyFailedError reports a failed user assertion; it carries the
// label of the check and the (possibly minimized) offending value.
type PropertyFailedError struct {
	err   *Error
	Label string
	Value any
}

// PropertyFailed constructs the escalated failure for a failed Check.
func PropertyFailed(label string, value any) *PropertyFailedError {
	return &PropertyFailedError{
		err:   Newf(KindPropertyFailed, "Property '%s' failed for input:\n%v", label, value),
		Label: label,
		Value: value,
	}
}

// Kind returns the failure's taxonomy classification.
func (e *PropertyFailedError) Kind() Kind { return e.err.Kind() }

// Message returns the error message without the wrapped cause.
func (e *PropertyFailedError) Message() string { return e.err.Message() }

// Unwrap supports errors.As/errors.Is over the wrapped cause.
func (e *PropertyFailedError) Unwrap() error { return e.err.Unwrap() }

// Error implements the error interface.
func (e *PropertyFailedError) Error() string { return e.err.Error() }
