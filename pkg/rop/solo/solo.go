package solo

import (
	"context"
	"errors"

	"github.com/ib-77/tristate/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func PartialSucceed[T any](input T, mild error) rop.Result[T] {
	return rop.PartialSuccess(input, mild)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.FailAt[T](err, 1)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T] {
	return andValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {
	return andValidate(ctx, input, validate)
}

// andValidate fails at the caller of its exported wrapper.
func andValidate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {

	if input.Succeeded() {
		if isValid, errMsg := validate(ctx, input.GetOk()); !isValid {
			return rop.FailAt[T](errors.New(errMsg), 2)
		}
	}
	return input
}

func ValidateAll[T any](
	ctx context.Context,
	input rop.Result[T],
	breakOnError bool, // exit on first error
	inputsF ...func(ctx context.Context, in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	var err error
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current rop.Result[T]) rop.Result[T] {

			if current.IsFailure() {
				e := rop.GetErrors(err)
				e = append(e, current.Err())
				err = errors.Join(e...)
			}

			if rop.IsNil(err) {
				return current
			}

			return rop.Fail[T](err)
		},
		inputsF...,
	)
}

func Switch[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	if input.Succeeded() {
		return degrade(input, onSuccess(ctx, input.GetOk()))
	}
	return propagate[In, Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	if input.Succeeded() {
		return degrade(input, rop.Success(onSuccess(ctx, input.GetOk())))
	}
	return propagate[In, Out](input)
}

func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	if input.Succeeded() {
		onSuccess(ctx, input)
	}

	return input
}

func TeeIf[T any](ctx context.Context,
	input rop.Result[T],
	condition func(ctx context.Context, r rop.Result[T]) bool,
	onSuccessAndCondition func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	if input.Succeeded() {
		if condition(ctx, input) {
			onSuccessAndCondition(ctx, input)
		}
	}

	return input
}

// TeePartial runs onDegraded for partial successes only, e.g. to log the
// mild error.
func TeePartial[T any](ctx context.Context,
	input rop.Result[T],
	onDegraded func(ctx context.Context, r T, mild error)) rop.Result[T] {

	if input.SucceededPartially() {
		onDegraded(ctx, input.GetOk(), input.Err())
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error)) rop.Result[T] {

	if input.Succeeded() {
		onSuccess(ctx, input.GetOk())
	} else {
		onError(ctx, failure(input))
	}

	return input
}

func DoubleMap[In any, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) rop.Result[Out] {

	if input.Succeeded() {
		return degrade(input, rop.Success(onSuccess(ctx, input.GetOk())))
	}

	onError(ctx, failure(input))
	return propagate[In, Out](input)
}

func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	if input.Succeeded() {
		out, err := onTryExecute(ctx, input.GetOk())
		if err != nil {
			return rop.FailAt[Out](err, 1)
		}

		return degrade(input, rop.Success(out))
	}

	return propagate[In, Out](input)
}

func FailOnError[T any](ctx context.Context, input rop.Result[T],
	maybeErr func(ctx context.Context, in T) error) rop.Result[T] {
	if input.Succeeded() {
		if err := maybeErr(ctx, input.GetOk()); err != nil {
			return rop.FailAt[T](err, 1)
		}
	}
	return input
}

// Finally collapses input into a value. A nil onPartial routes partial
// successes to onSuccess.
func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onPartial func(ctx context.Context, r In, mild error) Out,
	onError func(ctx context.Context, err error) Out) Out {

	if input.SucceededPartially() && onPartial != nil {
		return onPartial(ctx, input.GetOk(), input.Err())
	} else if input.Succeeded() {
		return onSuccess(ctx, input.GetOk())
	} else {
		return onError(ctx, failure(input))
	}
}

func Join[T any](ctx context.Context,
	input rop.Result[T],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current rop.Result[T]) rop.Result[T],
	inputsF ...func(ctx context.Context, in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	if len(inputsF) == 0 || concat == nil || !rop.IsNil(ctx.Err()) {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if !rop.IsNil(ctx.Err()) {
		return finalResult
	}

	if finalResult.Succeeded() || !breakOnError {
		for _, in := range inputsF[1:] {
			if !rop.IsNil(ctx.Err()) {
				return finalResult
			}

			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.IsFailure() && breakOnError {
				return nextRes
			} else {
				finalResult = nextRes
			}
		}
	}
	return finalResult
}

// degrade carries the mild error of a partial input over to a full success
// derived from it.
func degrade[In, Out any](input rop.Result[In], out rop.Result[Out]) rop.Result[Out] {
	if input.SucceededPartially() && out.State() == rop.StateSuccess {
		return rop.PartialSuccess(out.GetOk(), input.Err())
	}
	return out
}

func propagate[In, Out any](input rop.Result[In]) rop.Result[Out] {
	if input.IsFailure() {
		return rop.FailFrom[In, Out](input)
	}
	return rop.Result[Out]{}
}

func failure[T any](input rop.Result[T]) error {
	if err := input.Err(); err != nil {
		return err
	}
	_, err := input.Get()
	return err
}
