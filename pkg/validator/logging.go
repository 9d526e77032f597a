package validator

import (
	"log/slog"

	"github.com/ib-77/ropkit/pkg/logger"
	"github.com/ib-77/ropkit/pkg/rop"
)

// WithLogging wraps v so every run is logged under name: debug on success,
// warn with the error on failure. The outcome is returned untouched.
func WithLogging[T any, E error](log *slog.Logger, name string, v Validator[T, E]) Validator[T, E] {
	if log == nil {
		return v
	}
	return func(in T) rop.Result[T, E] {
		res := v(in)
		if res.IsSuccess() {
			log.Debug("validator passed", slog.String("validator", name))
		} else {
			log.Warn("validator failed", slog.String("validator", name), logger.Error(res.Err()))
		}
		return res
	}
}
