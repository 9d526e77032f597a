package fault

import (
	"fmt"
)

// Kind tags a fault. The core kinds below are the closed set the library
// itself produces; applications declare their own.
type Kind string

const (
	KindRequired      Kind = "required"
	KindInvalidFormat Kind = "invalid_format"
	KindOutOfRange    Kind = "out_of_range"
	KindNotAllowed    Kind = "not_allowed"
	KindPastDate      Kind = "past_date"
	KindFutureDate    Kind = "future_date"
	KindNotFound      Kind = "not_found"
	KindCanceled      Kind = "canceled"
	// KindExceptional marks a foreign failure captured at the Try boundary.
	KindExceptional Kind = "exceptional"
)

func (k Kind) String() string {
	return string(k)
}

// Error is a single typed failure.
type Error struct {
	Kind    Kind
	Field   string
	Message string
	Cause   error
}

// Sentinels for errors.Is. Two faults match when their kinds are equal.
var (
	ErrRequired      = Error{Kind: KindRequired}
	ErrInvalidFormat = Error{Kind: KindInvalidFormat}
	ErrOutOfRange    = Error{Kind: KindOutOfRange}
	ErrNotAllowed    = Error{Kind: KindNotAllowed}
	ErrPastDate      = Error{Kind: KindPastDate}
	ErrFutureDate    = Error{Kind: KindFutureDate}
	ErrNotFound      = Error{Kind: KindNotFound}
	ErrCanceled      = Error{Kind: KindCanceled}
	ErrExceptional   = Error{Kind: KindExceptional}
)

func New(kind Kind, message string) Error {
	return Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...any) Error {
	return Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap keeps cause reachable through errors.Unwrap.
func Wrap(kind Kind, cause error) Error {
	e := Error{Kind: kind, Cause: cause}
	if cause != nil {
		e.Message = cause.Error()
	}
	return e
}

// OnField returns a copy of e attached to field.
func (e Error) OnField(field string) Error {
	e.Field = field
	return e
}

// WithMessage returns a copy of e with a new message.
func (e Error) WithMessage(message string) Error {
	e.Message = message
	return e
}

func (e Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, msg)
	}
	return msg
}

func (e Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a fault of the same kind.
func (e Error) Is(target error) bool {
	switch t := target.(type) {
	case Error:
		return t.Kind == e.Kind
	case *Error:
		return t != nil && t.Kind == e.Kind
	default:
		return false
	}
}

// IsZero reports whether e was never set. A zero fault never comes out of
// the library's constructors.
func (e Error) IsZero() bool {
	return e.Kind == "" && e.Field == "" && e.Message == "" && e.Cause == nil
}

// Dispatch picks the handler registered for e's kind, falling back to
// otherwise when none matches.
func Dispatch[R any](e Error, cases map[Kind]func(Error) R, otherwise func(Error) R) R {
	if h, ok := cases[e.Kind]; ok {
		return h(e)
	}
	return otherwise(e)
}

// PanicError carries a value recovered from a panic.
type PanicError struct {
	Value any
}

func (p *PanicError) Error() string {
	return fmt.Sprintf("panic recovered: %v", p.Value)
}

func (p *PanicError) Unwrap() error {
	err, _ := p.Value.(error)
	return err
}
