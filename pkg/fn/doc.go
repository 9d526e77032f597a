// Package fn contains small function-level combinators used across ropkit.
//
// Highlights:
// - Curry/Curry3/Curry4/Uncurry: move between multi-argument and chained forms
// - Apply/Apply3: bind the first argument of a function (partial application)
// - Compose: left-to-right composition, Compose(f, g)(x) == g(f(x))
// - Identity/Const/Flip: helpers that make higher order code read better
//
// Partial application is the way effectful dependencies (a clock, a lookup)
// are handed to validators: bind the dependency first, pass the remaining
// function around as a plain value.
package fn
