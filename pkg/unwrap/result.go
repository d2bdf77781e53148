package unwrap

import (
	"time"

	"github.com/google/uuid"
)

// Result holds either a success value of T or a failure error. Each Result
// carries an id and creation time for correlation in logs and tests.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
}

func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		err:       nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Of lifts a conventional (value, error) return into a Result: failure when
// err is non-nil, success otherwise.
func Of[T any](v T, err error) Result[T] {
	if !IsNil(err) {
		return Fail[T](err)
	}
	return Success(v)
}

func (r Result[T]) Result() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
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

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// MustUnwrap returns the success value. It panics with the failure error if
// the Result is a failure, in every build mode.
func (r Result[T]) MustUnwrap() T {
	if !r.isSuccess {
		panic(r.err)
	}
	return r.value
}

// UnsafeUnwrap returns the success value without checking for failure. The
// caller must have already established success. With the unwrapnocheck build
// tag the guard branch compiles away entirely; without it a failure Result
// halts with a diagnostic. The failure error is not inspected on the halt
// path.
func (r Result[T]) UnsafeUnwrap() T {
	if checksEnabled && !r.isSuccess {
		unreachable("unwrap: UnsafeUnwrap of failure Result")
	}
	return r.value
}
