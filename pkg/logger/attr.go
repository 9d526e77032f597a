package logger

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/ib-77/ropkit/pkg/fault"
)

// Error puts err under "error". A nil error gives an empty Attr. Faults are
// logged as a group with their kind and field. An error made of several parts,
// such as fault.Errors or errors.Join, is logged as Faults.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	if len(fault.Flatten(err)) > 1 {
		return Faults(fault.Collect(err))
	}
	var f fault.Error
	if errors.As(err, &f) {
		return slog.Attr{Key: "error", Value: faultValue(f)}
	}
	return slog.Any("error", err)
}

// Errors groups non-nil errors under "errors", keyed by position.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Faults groups a fault list under "faults", keyed by position.
func Faults(fs []fault.Error) slog.Attr {
	if len(fs) == 0 {
		return slog.Attr{}
	}
	as := make([]slog.Attr, 0, len(fs))
	for i, f := range fs {
		as = append(as, slog.Attr{Key: strconv.Itoa(i), Value: faultValue(f)})
	}
	return slog.Attr{Key: "faults", Value: slog.GroupValue(as...)}
}

func Kind(k fault.Kind) slog.Attr {
	return slog.String("kind", string(k))
}

func faultValue(f fault.Error) slog.Value {
	attrs := []slog.Attr{Kind(f.Kind), slog.String("message", f.Error())}
	if f.Field != "" {
		attrs = append(attrs, slog.String("field", f.Field))
	}
	return slog.GroupValue(attrs...)
}
