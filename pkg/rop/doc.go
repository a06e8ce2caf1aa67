// Package rop defines Result[T], a value that is either a success carrying T
// or a failure carrying an error.
//
// Failures are handled in one of three ways:
// - inspect: IsSuccess/Result/Err or Get for the (value, error) form
// - forward: FailFrom, or the combinators in solo and chain
// - abort: Unwrap, Expect and Must panic with an error wrapping the failure
package rop
