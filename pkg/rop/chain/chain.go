package chain

import (
	"context"

	"github.com/ib-77/opresult/pkg/rop"
	"github.com/ib-77/opresult/pkg/rop/solo"
)

// Chain carries a rop.Result and the context its steps run with
type Chain[T any] struct {
	ctx    context.Context
	result rop.Result[T]
}

// Start begins a chain at result
func Start[T any](ctx context.Context, result rop.Result[T]) *Chain[T] {
	return &Chain[T]{ctx: ctx, result: result}
}

// FromValue begins a chain at a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, rop.Success(value))
}

// step runs the next stage of the chain. A successful result whose context
// is already done becomes Cancelled without running the stage.
func step[T, U any](c *Chain[T], next func(rop.Result[T]) rop.Result[U]) *Chain[U] {
	if c.result.IsSuccess() && c.ctx.Err() != nil {
		return Start(c.ctx, rop.Cancelled[U]())
	}
	return Start(c.ctx, next(c.result))
}

func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) rop.Result[U]) *Chain[U] {
	return step(c, func(in rop.Result[T]) rop.Result[U] {
		return solo.Switch(c.ctx, in, onSuccess)
	})
}

// ThenTry runs a (U, error) function; its error is converted with rop.FromErr
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return step(c, func(in rop.Result[T]) rop.Result[U] {
		return solo.Try(c.ctx, in, tryOnSuccess)
	})
}

func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return step(c, func(in rop.Result[T]) rop.Result[U] {
		return solo.Map(c.ctx, in, onSuccess)
	})
}

// Validate fails the chain with a rop.ValidationError when validators report
// any result. All validators run and their results are collected.
func (c *Chain[T]) Validate(code, domain string,
	validators ...func(context.Context, T) []rop.ValidationResult) *Chain[T] {
	return step(c, func(in rop.Result[T]) rop.Result[T] {
		return solo.ValidateAll(c.ctx, in, code, domain, validators...)
	})
}

// Ensure runs a side effect on success and keeps the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return step(c, func(in rop.Result[T]) rop.Result[T] {
		return solo.Tee(c.ctx, in, func(ctx context.Context, r rop.Result[T]) {
			onSuccess(ctx, r.Value())
		})
	})
}

// Result returns the current result
func (c *Chain[T]) Result() rop.Result[T] {
	return c.result
}

// Outcome returns the current result without its value
func (c *Chain[T]) Outcome() rop.Outcome {
	return c.result.Outcome()
}

// Unwrap ends the chain the way rop.Result.Unwrap does
func (c *Chain[T]) Unwrap() (T, error) {
	return c.result.Unwrap()
}

// Finally collapses the chain with rop.Match
func Finally[T, U any](c *Chain[T], handlers rop.ValueHandlers[T, U]) (U, error) {
	return rop.Match(c.result, handlers)
}
