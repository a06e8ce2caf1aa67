package rop

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccess(t *testing.T) {
	t.Parallel()
	r := Success(5)

	assert.True(t, r.IsSuccess())
	assert.False(t, r.IsFailure())
	assert.False(t, r.IsEmpty())
	assert.Equal(t, 5, r.Result())
	assert.NoError(t, r.Err())
	assert.NotEqual(t, uuid.Nil, r.Id())
	assert.False(t, r.CreatedAt().IsZero())
}

func TestFail(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	r := Fail[int](err)

	assert.False(t, r.IsSuccess())
	assert.True(t, r.IsFailure())
	assert.Same(t, err, r.Err())
	assert.Equal(t, 0, r.Result())
}

func TestFail_NilError(t *testing.T) {
	t.Parallel()
	r := Fail[int](nil)

	assert.True(t, r.IsFailure())
	assert.False(t, r.IsEmpty())
	assert.ErrorIs(t, r.Err(), ErrNilFailure)
}

func TestZeroValueIsFailure(t *testing.T) {
	t.Parallel()
	var r Result[string]

	assert.True(t, r.IsEmpty())
	assert.True(t, r.IsFailure())
	assert.ErrorIs(t, r.Err(), ErrEmptyResult)
}

func TestFailFrom_KeepsErrorAndId(t *testing.T) {
	t.Parallel()
	_, perr := strconv.Atoi("x")
	in := Fail[string](perr)
	out := FailFrom[string, int](in)

	assert.True(t, out.IsFailure())
	assert.Same(t, perr, out.Err())
	assert.Equal(t, in.Id(), out.Id())
	assert.Equal(t, in.CreatedAt(), out.CreatedAt())
}

func TestGet(t *testing.T) {
	t.Parallel()

	v, err := Success("ok").Get()
	require.NoError(t, err)
	assert.Equal(t, "ok", v)

	v, err = Fail[string](errors.New("bad")).Get()
	assert.EqualError(t, err, "bad")
	assert.Empty(t, v)
}

func TestFromPair(t *testing.T) {
	t.Parallel()

	assert.True(t, FromPair(1, nil).IsSuccess())

	r := FromPair(1, errors.New("bad"))
	assert.True(t, r.IsFailure())
	assert.EqualError(t, r.Err(), "bad")
}

func TestUnwrapOr(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 3, Success(3).UnwrapOr(7))
	assert.Equal(t, 7, Fail[int](errors.New("x")).UnwrapOr(7))
}

func TestUnwrap_Success(t *testing.T) {
	t.Parallel()
	assert.NotPanics(t, func() {
		assert.Equal(t, 84, Success(84).Unwrap())
	})
}

func TestUnwrap_FailurePanics(t *testing.T) {
	t.Parallel()
	cause := errors.New("boom")

	assert.PanicsWithError(t, "called Unwrap on a failed result: boom", func() {
		Fail[int](cause).Unwrap()
	})
}

func TestExpect_FailurePanicsWithMessage(t *testing.T) {
	t.Parallel()
	cause := errors.New("invalid syntax")

	defer func() {
		rec := recover()
		require.NotNil(t, rec)
		err, ok := rec.(error)
		require.True(t, ok, "panic value must be an error, got %T", rec)
		assert.EqualError(t, err, "Failed to parse number: invalid syntax")
		assert.ErrorIs(t, err, cause)
	}()

	Fail[int](cause).Expect("Failed to parse number")
	t.Fatal("Expect must not return on failure")
}

func TestExpect_Success(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "v", Success("v").Expect("unused"))
}

func TestMust(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 12, Must(strconv.Atoi("12")))
	assert.Panics(t, func() {
		Must(strconv.Atoi("twelve"))
	})
}

func TestGetErrors(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GetErrors(nil))

	single := errors.New("one")
	assert.Equal(t, []error{single}, GetErrors(single))

	joined := errors.Join(errors.New("a"), errors.New("b"))
	assert.Len(t, GetErrors(joined), 2)
}

func TestAppendError(t *testing.T) {
	t.Parallel()
	a, b, c := errors.New("a"), errors.New("b"), errors.New("c")

	err := AppendError(nil, a)
	err = AppendError(err, nil)
	err = AppendError(err, b)
	err = AppendError(err, c)

	errs := GetErrors(err)
	require.Len(t, errs, 3)
	assert.Same(t, a, errs[0])
	assert.Same(t, b, errs[1])
	assert.Same(t, c, errs[2])
}

func TestIsNil(t *testing.T) {
	t.Parallel()
	var p *int

	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(p))
	assert.False(t, IsNil(1))
}
