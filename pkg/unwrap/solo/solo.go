package solo

import (
	"github.com/ib-77/unwrap/pkg/unwrap"
)

func Succeed[T any](input T) unwrap.Result[T] {
	return unwrap.Success(input)
}

func Fail[T any](err error) unwrap.Result[T] {
	return unwrap.Fail[T](err)
}

func Switch[In any, Out any](input unwrap.Result[In],
	onSuccess func(r In) unwrap.Result[Out]) unwrap.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return unwrap.Fail[Out](input.Err())
}

func Map[In any, Out any](input unwrap.Result[In],
	onSuccess func(r In) Out) unwrap.Result[Out] {

	if input.IsSuccess() {
		return unwrap.Success(onSuccess(input.Result()))
	}
	return unwrap.Fail[Out](input.Err())
}

func Tee[T any](input unwrap.Result[T],
	onSuccess func(r unwrap.Result[T])) unwrap.Result[T] {

	if input.IsSuccess() {
		onSuccess(input)
	}

	return input
}

func Try[In any, Out any](input unwrap.Result[In],
	onTryExecute func(r In) (Out, error)) unwrap.Result[Out] {

	if input.IsSuccess() {

		out, err := onTryExecute(input.Result())
		if err != nil {
			return unwrap.Fail[Out](err)
		}

		return unwrap.Success(out)
	}

	return unwrap.Fail[Out](input.Err())
}

func Finally[In, Out any](input unwrap.Result[In],
	onSuccess func(r In) Out,
	onError func(err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return onError(input.Err())
}

func MapOpt[In any, Out any](input unwrap.Option[In],
	onSome func(v In) Out) unwrap.Option[Out] {

	if input.IsSome() {
		return unwrap.Some(onSome(input.UnsafeUnwrap()))
	}
	return unwrap.None[Out]()
}

func AndThen[In any, Out any](input unwrap.Option[In],
	onSome func(v In) unwrap.Option[Out]) unwrap.Option[Out] {

	if input.IsSome() {
		return onSome(input.UnsafeUnwrap())
	}
	return unwrap.None[Out]()
}

func OrElse[T any](input unwrap.Option[T],
	alternative func() unwrap.Option[T]) unwrap.Option[T] {

	if input.IsSome() {
		return input
	}
	return alternative()
}

// ToResult converts an Option to a Result, failing with absentErr when the
// Option holds nothing.
func ToResult[T any](input unwrap.Option[T], absentErr error) unwrap.Result[T] {
	if input.IsSome() {
		return unwrap.Success(input.UnsafeUnwrap())
	}
	return unwrap.Fail[T](absentErr)
}
