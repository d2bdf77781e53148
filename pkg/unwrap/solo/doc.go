// Package solo contains single-value, synchronous combinators over the
// unwrap containers. These functions cover the everyday branching around
// Option[T] and Result[T] so callers reach for UnsafeUnwrap only at the
// points where presence is already proven.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Switch: move from Result[In] to Result[Out]
// - Map/Try: transform successful values, converting errors to failures
// - Tee: side-effect helper on success
// - Finally: reduce to a concrete value via success/error handlers
// - MapOpt/AndThen/OrElse/ToResult: the Option counterparts
package solo
