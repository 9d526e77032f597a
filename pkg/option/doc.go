// Package option provides Option[T], a value that is either present (Some)
// or absent (None). It replaces nil checks and comma-ok plumbing with
// composable operations.
//
// Highlights:
// - Some/None/Of/FromPtr: construct an Option
// - Map/Bind: transform or chain the present value; None passes through
// - Match: the single place where an Option becomes a plain value
// - ForEach/OrElse/Where: side effects, lazy fallbacks and filtering
// - Lookup/Find: adapt maps and slices into Option-returning lookups
// - FromMo/ToMo: interop with github.com/samber/mo
package option
