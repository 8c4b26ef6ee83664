package solo

import (
	"context"

	"github.com/ib-77/opresult/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err rop.OperationError) rop.Result[T] {
	return rop.Fail[T](err)
}

func Validate[T any](ctx context.Context, input T, code, domain string,
	validate func(ctx context.Context, in T) []rop.ValidationResult) rop.Result[T] {
	return AndValidate(ctx, Succeed(input), code, domain, validate)
}

// AndValidate fails a successful input with a ValidationError when validate
// reports any result. Other states pass through.
func AndValidate[T any](ctx context.Context, input rop.Result[T], code, domain string,
	validate func(ctx context.Context, in T) []rop.ValidationResult) rop.Result[T] {

	if input.IsSuccess() {
		if results := validate(ctx, input.Value()); len(results) > 0 {
			return rop.ValidationFailed[T](code, domain, results)
		}
	}
	return input
}

// ValidateAll runs every validator on a successful input and collects their
// results into a single ValidationError
func ValidateAll[T any](ctx context.Context, input rop.Result[T], code, domain string,
	validators ...func(ctx context.Context, in T) []rop.ValidationResult) rop.Result[T] {

	if !input.IsSuccess() {
		return input
	}

	var results []rop.ValidationResult
	for _, validate := range validators {
		if ctx.Err() != nil {
			return rop.Cancelled[T]()
		}
		results = append(results, validate(ctx, input.Value())...)
	}

	if len(results) > 0 {
		return rop.ValidationFailed[T](code, domain, results)
	}
	return input
}

func Switch[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return rop.Propagate[In, Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Success(onSuccess(ctx, input.Value()))
	}
	return rop.Propagate[In, Out](input)
}

func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func TeeIf[T any](ctx context.Context,
	input rop.Result[T],
	condition func(ctx context.Context, r rop.Result[T]) bool,
	onSuccessAndCondition func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	if input.IsSuccess() {
		if condition(ctx, input) {
			onSuccessAndCondition(ctx, input)
		}
	}

	return input
}

// Try calls onTryExecute on a successful input and converts a returned error
// with rop.FromErr
func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	if input.IsSuccess() {
		out, err := onTryExecute(ctx, input.Value())
		if err != nil {
			return rop.FromErr[Out](err)
		}

		return rop.Success(out)
	}

	return rop.Propagate[In, Out](input)
}

func FailOnError[T any](ctx context.Context, input rop.Result[T],
	maybeErr func(ctx context.Context, in T) error) rop.Result[T] {
	if input.IsSuccess() {
		if err := maybeErr(ctx, input.Value()); err != nil {
			return rop.FromErr[T](err)
		}
	}
	return input
}

// Finally reduces the input with the handler of its state. Unlike rop.Match
// every state has a handler; an Unknown input goes to onCancel.
func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err rop.OperationError) Out,
	onUnchanged func(ctx context.Context, r In) Out,
	onCancel func(ctx context.Context) Out) Out {

	switch {
	case input.IsSuccess():
		return onSuccess(ctx, input.Value())
	case input.IsError():
		return onError(ctx, input.Err())
	case input.IsUnchanged():
		return onUnchanged(ctx, input.Value())
	default:
		return onCancel(ctx)
	}
}
