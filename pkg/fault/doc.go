// Package fault is the error taxonomy shared by every ropkit container.
//
// A fault is a tagged value: its Kind says what went wrong, Field says where
// (optional), Message is human readable and Cause keeps a wrapped foreign
// error. Callers dispatch on Kind with a switch or with Dispatch.
//
// Key parts:
// - Error, Kind and the core kinds (Required, InvalidFormat, OutOfRange, ...)
// - Errors: an ordered collection produced by harvest-all validation
// - From/Flatten/Collect: the boundary that turns foreign errors into faults
//
// Domains extend the taxonomy by declaring their own kinds:
//
//	const KindInvalidNumberFormat fault.Kind = "invalid_number_format"
package fault
