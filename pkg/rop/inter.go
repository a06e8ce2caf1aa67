package rop

import "time"

type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a result or an error
type WithError[T any] interface {
	ResultProvider[T]
	// Err returns the error if operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

// Unwrapper is the abort-on-failure side of a result.
type Unwrapper[T any] interface {
	WithError[T]
	// Unwrap panics on failure
	Unwrap() T
	// Expect panics on failure with msg in the panic error
	Expect(msg string) T
}

var _ Unwrapper[int] = Result[int]{}
