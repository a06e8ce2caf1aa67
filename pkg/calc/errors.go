package calc

import (
	"errors"
	"fmt"
)

var (
	// ErrCannotDivide is the failure of Divide when the divisor is zero.
	ErrCannotDivide = errors.New("Cannot divide by zero") //nolint:staticcheck // ST1005: printed verbatim

	// ErrDivisionByZero is the cause carried by a DivisionByZero Error.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrParse matches any ParseFailure Error via errors.Is.
	ErrParse = errors.New("parse failure")
)

// Kind enumerates the failure causes of ParseAndDoubleKind.
type Kind int

const (
	KindUnknown Kind = iota
	DivisionByZero
	ParseFailure
)

func (k Kind) String() string {
	switch k {
	case DivisionByZero:
		return "DivisionByZero"
	case ParseFailure:
		return "ParseFailure"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the single failure type of ParseAndDoubleKind.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case DivisionByZero:
		return ErrDivisionByZero.Error()
	case ParseFailure:
		return fmt.Sprintf("%s: %v", ErrParse, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports a match against the sentinel of e's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrParse:
		return e.Kind == ParseFailure
	case ErrDivisionByZero:
		return e.Kind == DivisionByZero
	}
	return false
}

// FromParseError converts a parse failure into a ParseFailure Error.
// An error that is already an *Error is returned as is.
func FromParseError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: ParseFailure, Err: err}
}

func divisionByZero() *Error {
	return &Error{Kind: DivisionByZero, Err: ErrDivisionByZero}
}

// KindOf returns the Kind of the first *Error in err's chain,
// or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
