package rop

func Map[T, R any, E error](r Result[T, E], onSuccess func(T) R) Result[R, E] {
	if r.isSuccess {
		return Ok[R, E](onSuccess(r.result))
	}
	return Err[R](r.err)
}

// MapError is the explicit point where one error domain is adapted to another.
func MapError[T any, E, F error](r Result[T, E], onError func(E) F) Result[T, F] {
	if r.isSuccess {
		return Ok[T, F](r.result)
	}
	return Err[T](onError(r.err))
}

// BiMap transforms whichever side is populated.
func BiMap[T, R any, E, F error](r Result[T, E], onSuccess func(T) R, onError func(E) F) Result[R, F] {
	if r.isSuccess {
		return Ok[R, F](onSuccess(r.result))
	}
	return Err[R](onError(r.err))
}

// Bind chains a fallible step. On failure the step is never called and the
// error is carried forward unchanged.
func Bind[T, R any, E error](r Result[T, E], onSuccess func(T) Result[R, E]) Result[R, E] {
	if r.isSuccess {
		return onSuccess(r.result)
	}
	return Err[R](r.err)
}

func Flatten[T any, E error](r Result[Result[T, E], E]) Result[T, E] {
	return Bind(r, func(inner Result[T, E]) Result[T, E] { return inner })
}

func Match[T any, E error, R any](r Result[T, E], onError func(E) R, onSuccess func(T) R) R {
	if r.isSuccess {
		return onSuccess(r.result)
	}
	return onError(r.err)
}
