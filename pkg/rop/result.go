package rop

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNilFailure replaces a nil error passed to Fail.
	ErrNilFailure = errors.New("failure without error")
	// ErrEmptyResult is reported by Err on a zero value Result.
	ErrEmptyResult = errors.New("empty result")
)

type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		err:       nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	if IsNil(err) {
		err = ErrNilFailure
	}
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom carries a failure over to another value type, keeping the error,
// id and creation time untouched.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.Err(),
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	if r.IsEmpty() {
		return ErrEmptyResult
	}
	return r.err
}

// Get returns the result in the (value, error) form used by plain Go calls.
func (r Result[T]) Get() (T, error) {
	if r.isSuccess {
		return r.result, nil
	}
	var zero T
	return zero, r.Err()
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isSuccess
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// UnwrapOr returns the successful value or def on failure.
func (r Result[T]) UnwrapOr(def T) T {
	if r.isSuccess {
		return r.result
	}
	return def
}

// Unwrap returns the successful value and panics on failure.
// The panic value is an error wrapping the failure.
func (r Result[T]) Unwrap() T {
	if r.isSuccess {
		return r.result
	}
	panic(fmt.Errorf("called Unwrap on a failed result: %w", r.Err()))
}

// Expect is Unwrap with a caller supplied message prefixed to the panic error.
func (r Result[T]) Expect(msg string) T {
	if r.isSuccess {
		return r.result
	}
	panic(fmt.Errorf("%s: %w", msg, r.Err()))
}

// Must applies the Unwrap policy to a (value, error) pair.
func Must[T any](v T, err error) T {
	if err != nil {
		return Fail[T](err).Unwrap()
	}
	return v
}

// FromPair converts a (value, error) pair to a Result.
func FromPair[T any](v T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Success(v)
}
