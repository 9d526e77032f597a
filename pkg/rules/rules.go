// Package rules holds ready-made field validators. Every fault they produce
// carries the field name it was built with.
package rules

import (
	"cmp"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/ib-77/ropkit/pkg/fault"
	"github.com/ib-77/ropkit/pkg/rop"
	"github.com/ib-77/ropkit/pkg/validator"
)

// Required rejects blank strings.
func Required(field string) validator.Validator[string, fault.Error] {
	return validator.Of(
		func(s string) bool { return strings.TrimSpace(s) != "" },
		func(string) fault.Error { return fault.New(fault.KindRequired, "is required").OnField(field) },
	)
}

// Length bounds the rune count of a string, both ends inclusive. A max of
// zero or less means no upper bound.
func Length(field string, min, max int) validator.Validator[string, fault.Error] {
	return validator.Of(
		func(s string) bool {
			n := utf8.RuneCountInString(s)
			return n >= min && (max <= 0 || n <= max)
		},
		func(s string) fault.Error {
			if max <= 0 {
				return fault.Newf(fault.KindOutOfRange, "must be at least %d characters", min).OnField(field)
			}
			return fault.Newf(fault.KindOutOfRange, "must be %d to %d characters", min, max).OnField(field)
		},
	)
}

// Matches requires re to match the whole string. Failures are tagged with kind,
// so callers can report domain kinds such as an invalid number format.
func Matches(field string, re *regexp.Regexp, kind fault.Kind) validator.Validator[string, fault.Error] {
	whole := regexp.MustCompile(`^(?:` + re.String() + `)$`)
	return validator.Of(
		whole.MatchString,
		func(s string) fault.Error {
			return fault.Newf(kind, "%q does not match %s", s, re.String()).OnField(field)
		},
	)
}

func OneOf[T comparable](field string, allowed ...T) validator.Validator[T, fault.Error] {
	return validator.Of(
		func(v T) bool { return lo.Contains(allowed, v) },
		func(v T) fault.Error {
			return fault.Newf(fault.KindNotAllowed, "%v is not one of %v", v, allowed).OnField(field)
		},
	)
}

// Between accepts values in [min, max].
func Between[T cmp.Ordered](field string, min, max T) validator.Validator[T, fault.Error] {
	return validator.Of(
		func(v T) bool { return v >= min && v <= max },
		func(v T) fault.Error {
			return fault.Newf(fault.KindOutOfRange, "%v is outside [%v, %v]", v, min, max).OnField(field)
		},
	)
}

// UUID accepts any string google/uuid can parse.
func UUID(field string) validator.Validator[string, fault.Error] {
	return func(s string) rop.Outcome[string] {
		return rop.Map(ParseUUID(field)(s), func(uuid.UUID) string { return s })
	}
}

// ParseUUID is UUID that keeps the parsed value.
func ParseUUID(field string) func(string) rop.Outcome[uuid.UUID] {
	return func(s string) rop.Outcome[uuid.UUID] {
		id, err := uuid.Parse(s)
		if err != nil {
			return rop.Fail[uuid.UUID](fault.Wrap(fault.KindInvalidFormat, err).OnField(field))
		}
		return rop.Success(id)
	}
}

func NotNilUUID(field string) validator.Validator[uuid.UUID, fault.Error] {
	return validator.Of(
		func(id uuid.UUID) bool { return id != uuid.Nil },
		func(uuid.UUID) fault.Error {
			return fault.New(fault.KindRequired, "must not be the nil UUID").OnField(field)
		},
	)
}

// NotPast rejects instants before now(). The clock is read on every call.
func NotPast(field string, now func() time.Time) validator.Validator[time.Time, fault.Error] {
	return func(t time.Time) rop.Outcome[time.Time] {
		if ref := now(); t.Before(ref) {
			return rop.Fail[time.Time](fault.New(fault.KindPastDate, pastMessage(t, ref, "before")).OnField(field))
		}
		return rop.Success(t)
	}
}

// NotFuture rejects instants after now().
func NotFuture(field string, now func() time.Time) validator.Validator[time.Time, fault.Error] {
	return func(t time.Time) rop.Outcome[time.Time] {
		if ref := now(); t.After(ref) {
			return rop.Fail[time.Time](fault.New(fault.KindFutureDate, pastMessage(t, ref, "after")).OnField(field))
		}
		return rop.Success(t)
	}
}

func pastMessage(t, ref time.Time, rel string) string {
	return fmt.Sprintf("%s is %s %s", t.Format(time.RFC3339), rel, ref.Format(time.RFC3339))
}
