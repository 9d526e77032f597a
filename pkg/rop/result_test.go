package rop

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/ropkit/pkg/fault"
	"github.com/ib-77/ropkit/pkg/fn"
	"github.com/ib-77/ropkit/pkg/option"
)

var (
	errBoom = fault.New(fault.KindInvalidFormat, "boom")
	errNeg  = fault.New(fault.KindOutOfRange, "negative")
)

func TestSuccessAndFail(t *testing.T) {
	t.Parallel()

	ok := Success(5)
	if !ok.IsSuccess() || ok.IsFailure() || ok.Result() != 5 {
		t.Fatalf("expected success with 5, got: %v", ok)
	}

	bad := Fail[int](errBoom)
	if bad.IsSuccess() || !bad.IsFailure() || bad.Err() != errBoom {
		t.Fatalf("expected failure 'boom', got: %v", bad)
	}
	if bad.Result() != 0 {
		t.Fatalf("failure should expose the zero value, got %d", bad.Result())
	}

	v, err, isOk := ok.Get()
	assert.Equal(t, 5, v)
	assert.True(t, err.IsZero())
	assert.True(t, isOk)
}

func TestOkErr_WithPlainError(t *testing.T) {
	t.Parallel()

	cause := errors.New("plain")
	r := Err[int, error](cause)
	assert.Equal(t, cause, r.Err())
	assert.Equal(t, "Err(plain)", r.String())
	assert.Equal(t, "Ok(1)", Ok[int, error](1).String())
}

func TestMap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Success("3"), Map(Success(3), strconv.Itoa))

	called := false
	got := Map(Fail[int](errBoom), func(n int) string {
		called = true
		return strconv.Itoa(n)
	})
	assert.Equal(t, Fail[string](errBoom), got)
	assert.False(t, called)
}

type httpError struct {
	status int
}

func (e httpError) Error() string { return "status " + strconv.Itoa(e.status) }

func TestMapError(t *testing.T) {
	t.Parallel()

	toHTTP := func(e fault.Error) httpError {
		if e.Kind == fault.KindNotFound {
			return httpError{status: 404}
		}
		return httpError{status: 400}
	}

	got := MapError(Fail[int](fault.ErrNotFound), toHTTP)
	assert.Equal(t, httpError{status: 404}, got.Err())

	passed := MapError(Success(1), toHTTP)
	assert.Equal(t, Ok[int, httpError](1), passed)
}

func TestBiMap(t *testing.T) {
	t.Parallel()

	onOk := func(n int) string { return strconv.Itoa(n) }
	onErr := func(e fault.Error) error { return fmt.Errorf("wrapped: %w", e) }

	assert.Equal(t, "7", BiMap(Success(7), onOk, onErr).Result())

	failed := BiMap(Fail[int](errBoom), onOk, onErr)
	assert.ErrorIs(t, failed.Err(), fault.ErrInvalidFormat)
}

func TestBind_ShortCircuit(t *testing.T) {
	t.Parallel()

	calls := 0
	step := func(n int) Outcome[int] {
		calls++
		return Success(n + 1)
	}

	got := Bind(Bind(Fail[int](errBoom), step), step)

	assert.Equal(t, Fail[int](errBoom), got)
	assert.Equal(t, 0, calls, "no step runs after the first failure")
}

func TestBind_StopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	var trace []string
	positive := func(n int) Outcome[int] {
		trace = append(trace, "positive")
		if n < 0 {
			return Fail[int](errNeg)
		}
		return Success(n)
	}
	double := func(n int) Outcome[int] {
		trace = append(trace, "double")
		return Success(n * 2)
	}

	assert.Equal(t, Success(8), Bind(Bind(Success(4), positive), double))
	assert.Equal(t, Fail[int](errNeg), Bind(Bind(Success(-4), positive), double))
	assert.Equal(t, []string{"positive", "double", "positive"}, trace)
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Success(1), Flatten(Success(Success(1))))
	assert.Equal(t, Fail[int](errBoom), Flatten(Success(Fail[int](errBoom))))
	assert.Equal(t, Fail[int](errNeg), Flatten(Fail[Outcome[int]](errNeg)))
}

func TestMatch(t *testing.T) {
	t.Parallel()

	describe := func(r Outcome[int]) string {
		return Match(r,
			func(e fault.Error) string { return "rejected: " + e.Error() },
			func(n int) string { return "stored " + strconv.Itoa(n) })
	}

	assert.Equal(t, "stored 2", describe(Success(2)))
	assert.Equal(t, "rejected: boom", describe(Fail[int](errBoom)))
}

func TestForEach(t *testing.T) {
	t.Parallel()

	var oks []int
	var errs []fault.Error

	for _, r := range []Outcome[int]{Success(1), Fail[int](errBoom)} {
		r.ForEach(func(n int) { oks = append(oks, n) })
		r.ForEachError(func(e fault.Error) { errs = append(errs, e) })
	}

	assert.Equal(t, []int{1}, oks)
	assert.Equal(t, []fault.Error{errBoom}, errs)
}

func TestOrElse(t *testing.T) {
	t.Parallel()

	calls := 0
	fallback := func(fault.Error) Outcome[int] {
		calls++
		return Success(0)
	}

	assert.Equal(t, Success(3), Success(3).OrElse(fallback))
	assert.Equal(t, 0, calls)

	assert.Equal(t, Success(0), Fail[int](errBoom).OrElse(fallback))
	assert.Equal(t, 1, calls)
}

func TestEnsure(t *testing.T) {
	t.Parallel()

	nonNegative := func(n int) bool { return n >= 0 }
	onFalse := func(n int) fault.Error { return fault.Newf(fault.KindOutOfRange, "%d is negative", n) }

	assert.Equal(t, Success(1), Success(1).Ensure(nonNegative, onFalse))
	assert.Equal(t, "-1 is negative", Success(-1).Ensure(nonNegative, onFalse).Err().Message)
	assert.Equal(t, Fail[int](errBoom), Fail[int](errBoom).Ensure(nonNegative, onFalse))
}

func TestTry(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		assert.Equal(t, Success(42), Try(func() (int, error) { return 42, nil }))
	})

	t.Run("returned error becomes exceptional", func(t *testing.T) {
		cause := errors.New("disk full")
		r := Try(func() (int, error) { return 0, cause })

		require.True(t, r.IsFailure())
		assert.Equal(t, fault.KindExceptional, r.Err().Kind)
		assert.ErrorIs(t, r.Err(), cause)
	})

	t.Run("faults keep their kind", func(t *testing.T) {
		r := Try(func() (int, error) { return 0, fault.ErrNotFound })
		assert.Equal(t, fault.KindNotFound, r.Err().Kind)
	})

	t.Run("context errors become canceled", func(t *testing.T) {
		r := Try(func() (int, error) { return 0, context.DeadlineExceeded })
		assert.Equal(t, fault.KindCanceled, r.Err().Kind)
	})

	t.Run("panics are recovered", func(t *testing.T) {
		r := Try(func() (int, error) { panic("kaboom") })

		require.True(t, r.IsFailure())
		assert.Equal(t, fault.KindExceptional, r.Err().Kind)
		v, ok := Recovered(r.Err())
		require.True(t, ok)
		assert.Equal(t, "kaboom", v)
	})

	t.Run("joined faults are all kept", func(t *testing.T) {
		name := fault.New(fault.KindRequired, "missing").OnField("name")
		age := fault.New(fault.KindOutOfRange, "too old").OnField("age")

		for _, err := range []error{
			errors.Join(name, age),
			fault.Errors{name, age},
			fmt.Errorf("save contact: %w", errors.Join(name, age)),
		} {
			r := Try(func() (int, error) { return 0, err })

			require.True(t, r.IsFailure())
			assert.Equal(t, fault.KindExceptional, r.Err().Kind)
			var all fault.Errors
			require.True(t, errors.As(r.Err(), &all), err.Error())
			assert.Equal(t, []fault.Kind{fault.KindRequired, fault.KindOutOfRange}, all.Kinds())
			assert.ErrorIs(t, r.Err(), fault.ErrOutOfRange)
		}
	})

	t.Run("panicking with a fault stays a panic", func(t *testing.T) {
		r := Try(func() (int, error) { panic(errNeg) })

		require.True(t, r.IsFailure())
		assert.Equal(t, fault.KindExceptional, r.Err().Kind)
		v, ok := Recovered(r.Err())
		require.True(t, ok)
		assert.Equal(t, errNeg, v)
		assert.ErrorIs(t, r.Err(), fault.ErrOutOfRange)
	})
}

func TestTryWith(t *testing.T) {
	t.Parallel()

	adapt := func(err error) httpError { return httpError{status: 500} }

	r := TryWith(func() (string, error) { return "", errors.New("x") }, adapt)
	assert.Equal(t, httpError{status: 500}, r.Err())

	r = TryWith(func() (string, error) { panic(errors.New("y")) }, adapt)
	assert.Equal(t, httpError{status: 500}, r.Err())
}

func TestRun(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Success("ok"), Run(func() string { return "ok" }))

	var m map[string]int
	r := Run(func() int {
		m["x"] = 1
		return 1
	})
	assert.True(t, r.IsFailure())
	_, ok := Recovered(r.Err())
	assert.True(t, ok)

	_, ok = Recovered(errBoom)
	assert.False(t, ok)
}

func TestOptionConversions(t *testing.T) {
	t.Parallel()

	notFound := func() fault.Error { return fault.ErrNotFound }

	assert.Equal(t, Success(1), FromOption(option.Some(1), notFound))
	assert.Equal(t, Fail[int](fault.ErrNotFound), FromOption(option.None[int](), notFound))

	assert.Equal(t, option.Some(1), ToOption(Success(1)))
	assert.Equal(t, option.None[int](), ToOption(Fail[int](errBoom)))
}

func TestMoConversions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Success(1), FromMo(mo.Ok(1)))

	cause := errors.New("mo")
	r := FromMo(mo.Err[int](cause))
	assert.Equal(t, fault.KindExceptional, r.Err().Kind)

	v, err := ToMo(Success(2)).Get()
	assert.NoError(t, err)
	assert.Equal(t, 2, v)

	_, err = ToMo(Fail[int](errBoom)).Get()
	assert.ErrorIs(t, err, fault.ErrInvalidFormat)
}

func outcomeOf(x int, ok bool) Outcome[int] {
	if ok {
		return Success(x)
	}
	return Fail[int](fault.Newf(fault.KindOutOfRange, "%d", x))
}

func TestLaws(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	f := func(n int) int { return n - 3 }
	g := func(n int) string { return strconv.Itoa(n * 2) }
	fb := func(n int) Outcome[int] { return outcomeOf(n/3, n%3 != 0) }
	gb := func(n int) Outcome[string] { return Map(outcomeOf(n, n > -10), strconv.Itoa) }

	properties.Property("map identity", prop.ForAll(
		func(x int, ok bool) bool {
			r := outcomeOf(x, ok)
			return Map(r, fn.Identity[int]) == r
		},
		gen.Int(), gen.Bool(),
	))

	properties.Property("map composition", prop.ForAll(
		func(x int, ok bool) bool {
			r := outcomeOf(x, ok)
			return Map(Map(r, f), g) == Map(r, fn.Compose(f, g))
		},
		gen.Int(), gen.Bool(),
	))

	properties.Property("bind associativity", prop.ForAll(
		func(x int, ok bool) bool {
			r := outcomeOf(x, ok)
			left := Bind(Bind(r, fb), gb)
			right := Bind(r, func(n int) Outcome[string] { return Bind(fb(n), gb) })
			return left == right
		},
		gen.Int(), gen.Bool(),
	))

	properties.TestingRun(t)
}
