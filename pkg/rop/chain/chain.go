package chain

import (
	"context"

	"github.com/ib-77/tristate/pkg/rop"
	"github.com/ib-77/tristate/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result rop.Result[T]
}

// Start creates a new chain from a rop.Result
func Start[T any](ctx context.Context, result rop.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: rop.Success(value),
	}
}

// Result returns the underlying rop.Result
func (c *Chain[T]) Result() rop.Result[T] {
	return c.result
}

// Outcome returns the underlying rop.Result without its payload
func (c *Chain[T]) Outcome() rop.Outcome {
	return c.result.Outcome()
}

// Then chains a function that returns rop.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) rop.Result[U]) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Switch[T, U](c.ctx, c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Try[T, U](c.ctx, c.result, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Map[T, U](c.ctx, c.result, onSuccess),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		result: solo.Tee[T](c.ctx, c.result,
			func(ctx context.Context, result rop.Result[T]) {
				onSuccess(ctx, result.GetOk())
			}),
	}
}

// Degraded performs a side effect on partial success only
func (c *Chain[T]) Degraded(onDegraded func(context.Context, T, error)) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.TeePartial[T](c.ctx, c.result, onDegraded),
	}
}

// Check returns the chain unchanged on success and panics with the chain's
// error otherwise
func (c *Chain[T]) Check() *Chain[T] {
	rop.CheckAt(c.result, 1)
	return c
}

// Escalate returns the chain's error, if any, with the caller recorded
func (c *Chain[T]) Escalate() error {
	return rop.EscalateAt(c.result, 1)
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U,
	onPartial func(context.Context, T, error) U, onFailure func(context.Context, error) U) U {
	return solo.Finally[T, U](c.ctx, c.result, onSuccess, onPartial, onFailure)
}
