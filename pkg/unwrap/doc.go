// Package unwrap provides Option[T] and Result[T] containers together with
// an unchecked extraction capability for callers that have already proven,
// through their own program logic, that a payload is present.
//
// Highlights:
// - Some/None/FromPtr: construct Option[T]
// - Success/Fail/Of: construct Result[T]
// - MustUnwrap: checked extraction, panics on absence in every build mode
// - UnsafeUnwrap: unchecked extraction behind the Unwrapper interface
// - Take/UnwrapOr/Value: checked accessors for everyday use
//
// Build modes. By default the package is built checked: UnsafeUnwrap still
// verifies presence and panics with a diagnostic when it is violated, so
// precondition bugs surface during development. Building with
// -tags unwrapnocheck compiles the verification out: checksEnabled becomes a
// false constant, the guard branch in every UnsafeUnwrap body is removed as
// dead code, and extraction is a plain field load. Go has no
// undefined-behavior unreachable intrinsic, so branch elimination is obtained
// through constant folding rather than an optimizer hint; misuse under
// unwrapnocheck silently yields the zero-valued payload slot instead of
// arbitrary behavior.
//
// Extraction is consume-and-produce: treat a container as moved-from after
// unwrapping it. Go cannot enforce the move, but Take expresses it for
// Option when the container outlives the extraction.
//
// The two build modes are intentionally different and must stay that way:
// the unchecked mode's elided guard is the entire point of UnsafeUnwrap.
// Use MustUnwrap when uniform checking is wanted.
package unwrap
