package fault

import (
	"context"
	"errors"
	"reflect"
)

func isNil(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// Flatten splits errors built with errors.Join (or anything exposing
// Unwrap() []error) into their parts. A nil error gives an empty slice.
func Flatten(err error) []error {
	if isNil(err) {
		return []error{}
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, e := range joined.Unwrap() {
			out = append(out, Flatten(e)...)
		}
		return out
	}

	return []error{err}
}

// IsCancellation reports whether err comes from a canceled or expired context.
func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// From converts any error into the taxonomy. A fault is returned as it is.
// A recovered panic becomes KindExceptional even when it carries a fault, so
// Recovered still finds it. Several joined errors become one KindExceptional
// fault whose Cause lists every part. Context errors become KindCanceled and
// anything else is wrapped as KindExceptional.
func From(err error) Error {
	if f, ok := err.(Error); ok {
		return f
	}
	var p *PanicError
	if errors.As(err, &p) {
		return Wrap(KindExceptional, err)
	}
	if parts := joined(err); parts != nil {
		return Wrap(KindExceptional, Collect(parts)).WithMessage(err.Error())
	}
	var f Error
	if errors.As(err, &f) {
		return f
	}
	if IsCancellation(err) {
		return Wrap(KindCanceled, err)
	}
	return Wrap(KindExceptional, err)
}

// joined walks the single-unwrap chain of err and returns the first error
// holding more than one part. The walk stops at a fault, whose Cause is its own.
func joined(err error) error {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if _, ok := e.(Error); ok {
			return nil
		}
		if m, ok := e.(interface{ Unwrap() []error }); ok {
			if len(m.Unwrap()) > 1 {
				return e
			}
			return nil
		}
	}
	return nil
}

// Collect flattens err and converts each part with From.
func Collect(err error) Errors {
	parts := Flatten(err)
	out := make(Errors, 0, len(parts))
	for _, p := range parts {
		out = append(out, From(p))
	}
	return out
}
