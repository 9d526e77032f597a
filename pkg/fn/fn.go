package fn

// Unit is the informationless value, used where a function has to return
// something but has nothing to say.
type Unit = struct{}

// Curry turns a binary function into a chain of unary ones.
func Curry[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return f(a, b)
		}
	}
}

func Curry3[A, B, C, R any](f func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return func(c C) R {
				return f(a, b, c)
			}
		}
	}
}

func Curry4[A, B, C, D, R any](f func(A, B, C, D) R) func(A) func(B) func(C) func(D) R {
	return func(a A) func(B) func(C) func(D) R {
		return func(b B) func(C) func(D) R {
			return func(c C) func(D) R {
				return func(d D) R {
					return f(a, b, c, d)
				}
			}
		}
	}
}

// Uncurry is the inverse of Curry.
func Uncurry[A, B, R any](f func(A) func(B) R) func(A, B) R {
	return func(a A, b B) R {
		return f(a)(b)
	}
}

// Apply binds the first argument of f. The returned function calls f only
// when it receives the remaining argument.
func Apply[A, B, R any](f func(A, B) R, a A) func(B) R {
	return func(b B) R {
		return f(a, b)
	}
}

// Apply3 binds the first argument of a ternary function.
func Apply3[A, B, C, R any](f func(A, B, C) R, a A) func(B, C) R {
	return func(b B, c C) R {
		return f(a, b, c)
	}
}

// Compose is left to right: Compose(f, g)(x) == g(f(x)).
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

func Identity[A any](a A) A {
	return a
}

// Const returns a function that ignores its argument and always yields a.
func Const[B, A any](a A) func(B) A {
	return func(B) A {
		return a
	}
}

// Flip swaps the arguments of a binary function. Handy together with Apply
// when the dependency to bind is the second parameter.
func Flip[A, B, R any](f func(A, B) R) func(B, A) R {
	return func(b B, a A) R {
		return f(a, b)
	}
}
