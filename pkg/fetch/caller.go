// Package fetch wraps API functions with an observable loading/error/data
// lifecycle, replacing the reactive composables of the web console. State is
// mutex-guarded; overlapping calls on the same instance are not deduplicated
// and the call that settles last wins.
package fetch

import (
	"context"
	"sync"

	"github.com/drawhub-lab/client/pkg/errorx"
)

type Caller[A, T any] struct {
	mu        sync.Mutex
	fn        func(context.Context, A) (T, error)
	onSuccess func(T)
	onError   func(errorx.Error)

	data    T
	hasData bool
	loading bool
	err     *errorx.Error
}

type CallerOption[A, T any] func(*Caller[A, T])

// OnSuccess fires synchronously after the state has been updated.
func OnSuccess[A, T any](fn func(T)) CallerOption[A, T] {
	return func(c *Caller[A, T]) { c.onSuccess = fn }
}

func OnError[A, T any](fn func(errorx.Error)) CallerOption[A, T] {
	return func(c *Caller[A, T]) { c.onError = fn }
}

func NewCaller[A, T any](fn func(context.Context, A) (T, error), opts ...CallerOption[A, T]) *Caller[A, T] {
	c := &Caller[A, T]{fn: fn}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Execute runs the wrapped function. The previous error is cleared up
// front, loading holds for the duration of the call and is always released,
// success or failure.
func (c *Caller[A, T]) Execute(ctx context.Context, arg A) (T, error) {
	c.mu.Lock()
	c.err = nil
	c.loading = true
	c.mu.Unlock()

	result, err := c.fn(ctx, arg)

	c.mu.Lock()
	c.loading = false
	if err != nil {
		norm := errorx.Normalize(err)
		c.err = &norm
		c.mu.Unlock()

		if c.onError != nil {
			c.onError(norm)
		}

		var zero T
		return zero, norm
	}

	c.data = result
	c.hasData = true
	c.mu.Unlock()

	if c.onSuccess != nil {
		c.onSuccess(result)
	}

	return result, nil
}

func (c *Caller[A, T]) Data() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.data, c.hasData
}

func (c *Caller[A, T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.loading
}

func (c *Caller[A, T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.err == nil {
		return nil
	}

	return *c.err
}

func (c *Caller[A, T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	c.data = zero
	c.hasData = false
	c.loading = false
	c.err = nil
}
