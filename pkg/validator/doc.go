// Package validator folds many small validators into one.
//
// A Validator is a plain function T -> rop.Result[T, E]; a Check is a
// function T -> validation.Validation[T, E]. Both are values: build them
// with closures, bind dependencies with fn.Apply, pass them around.
//
// Two policies decide how a sequence of validators is combined:
// - FailFast: stop at the first failure; later validators never run
// - HarvestAll: run every validator once, in order, and report all failures
//
// Aggregate picks the policy at runtime, which lets configuration decide.
// An empty sequence always succeeds.
package validator
