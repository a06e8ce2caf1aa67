package calc

import (
	"context"
	"strconv"

	"github.com/ib-77/roperr/pkg/rop"
	"github.com/ib-77/roperr/pkg/rop/chain"
)

// Divide returns a / b, truncated toward zero, or ErrCannotDivide.
func Divide(a, b int) rop.Result[int] {
	if b == 0 {
		return rop.Fail[int](ErrCannotDivide)
	}
	return rop.Success(a / b)
}

// ParseAndDouble parses s as a 32-bit decimal integer and doubles it.
// A parse failure is returned unchanged as a *strconv.NumError.
func ParseAndDouble(s string) rop.Result[int] {
	c := chain.ThenTry(chain.FromValue(context.Background(), s), parse)
	return chain.Map(c, double).Result()
}

// ParseAndDoubleKind is ParseAndDouble with every failure reported as an
// *Error: ParseFailure for bad input, DivisionByZero for a zero value.
func ParseAndDoubleKind(s string) rop.Result[int] {
	c := chain.ThenTry(chain.FromValue(context.Background(), s), parse).
		MapError(toKind).
		Check(nonZero)
	return chain.Map(c, double).Result()
}

func parse(_ context.Context, s string) (int, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func double(_ context.Context, n int) int {
	return n * 2
}

func toKind(_ context.Context, err error) error {
	return FromParseError(err)
}

func nonZero(_ context.Context, n int) error {
	if n == 0 {
		return divisionByZero()
	}
	return nil
}
