// Package chain provides a fluent wrapper around rop.Result for building
// synchronous railway pipelines.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a value
// - Then: bind to the next step (method keeps the type, function changes it)
// - ThenTry: call a (U, error) function, panics included, and classify its error
// - Map: transform the successful value
// - Ensure/OnFailure: side effects that leave the result untouched
// - OrElse/Or: recover with a lazy or an eager alternative
// - While/RepeatUntil: loop a step while the chain stays on the success track
// - Finally: collapse the chain into a final value
//
// Every step after a failure is skipped.
package chain
