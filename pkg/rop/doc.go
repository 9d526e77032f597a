// Package rop provides Result[T, E], the two-track value at the heart of
// railway-oriented programming: a computation is either on the success
// track carrying a T or on the failure track carrying an E.
//
// Highlights:
// - Ok/Err (and Success/Fail for the fault taxonomy): construct a Result
// - Map/MapError/BiMap: transform one or both tracks
// - Bind: chain fallible steps, stopping at the first failure
// - Match: collapse a Result into a plain value at a layer boundary
// - Try/TryWith/Run: capture errors and panics of foreign code as failures
// - FromOption/ToOption, FromMo/ToMo: conversions
package rop
