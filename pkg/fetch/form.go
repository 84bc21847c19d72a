package fetch

import (
	"context"
	"sync"

	"github.com/drawhub-lab/client/pkg/errorx"
)

// Form tracks one submit-style call. Success turns true only after an
// error-free resolution and is cleared again at the start of the next
// submit.
type Form[T, R any] struct {
	mu        sync.Mutex
	fn        func(context.Context, T) (R, error)
	onSuccess func(R)
	onError   func(errorx.Error)

	loading bool
	success bool
	err     *errorx.Error
}

type FormOption[T, R any] func(*Form[T, R])

func FormOnSuccess[T, R any](fn func(R)) FormOption[T, R] {
	return func(f *Form[T, R]) { f.onSuccess = fn }
}

func FormOnError[T, R any](fn func(errorx.Error)) FormOption[T, R] {
	return func(f *Form[T, R]) { f.onError = fn }
}

func NewForm[T, R any](fn func(context.Context, T) (R, error), opts ...FormOption[T, R]) *Form[T, R] {
	f := &Form[T, R]{fn: fn}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

func (f *Form[T, R]) Submit(ctx context.Context, data T) (R, error) {
	f.mu.Lock()
	f.err = nil
	f.success = false
	f.loading = true
	f.mu.Unlock()

	result, err := f.fn(ctx, data)

	f.mu.Lock()
	f.loading = false
	if err != nil {
		norm := errorx.Normalize(err)
		f.err = &norm
		f.mu.Unlock()

		if f.onError != nil {
			f.onError(norm)
		}

		var zero R
		return zero, norm
	}

	f.success = true
	f.mu.Unlock()

	if f.onSuccess != nil {
		f.onSuccess(result)
	}

	return result, nil
}

func (f *Form[T, R]) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.loading
}

func (f *Form[T, R]) Success() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.success
}

func (f *Form[T, R]) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err == nil {
		return nil
	}

	return *f.err
}

func (f *Form[T, R]) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.loading = false
	f.success = false
	f.err = nil
}
