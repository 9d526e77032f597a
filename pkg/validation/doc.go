// Package validation provides Validation[T, E], the applicative sibling of
// rop.Result. Where Bind stops at the first failure, Apply keeps going and
// concatenates every error it meets, so independent checks report all of
// their problems at once.
//
// Typical construction of a validated value:
//
//	validation.Apply(
//		validation.Apply(
//			validation.Valid[func(string) func(int) User, fault.Error](fn.Curry(NewUser)),
//			validateName(name)),
//		validateAge(age))
//
// Lift2 and Lift3 wrap exactly that pattern.
//
// Key operations:
// - Valid/Invalid: construct
// - Apply/Lift2/Lift3: combine independent validations, accumulating errors
// - Map/MapErrors: transform one side
// - Bind: sequential, dependent validation (short-circuits like rop.Bind)
// - Match: collapse to a plain value
// - Sequence/Traverse: validate slices
// - FromResult/ToResult: move between Result and Validation
package validation
