package cassandra

import (
	"context"
	"sync"

	"github.com/cassbridge/cassbridge/pkg/cassbridge/logging"
)

// Future is the outcome of an asynchronous operation. It settles exactly once, with a value or an
// error. At most one success callback and one failure callback can be registered. Callbacks
// registered before settlement run on the goroutine that settles the Future, before Await returns;
// callbacks registered afterwards run immediately on the registering goroutine.
//
// A callback registered before settlement must not Await its own Future or wait on Done: both are
// released only after the callback returns. The value passed to the callback is the settled value.
type Future[T any] struct {
	mu        sync.Mutex
	done      chan struct{}
	settled   bool
	value     T
	err       error
	onSuccess func(T)
	onFailure func(error)
	logger    Logger
}

func newFuture[T any](logger Logger) *Future[T] {
	return &Future[T]{done: make(chan struct{}), logger: logger}
}

func failedFuture[T any](logger Logger, err error) *Future[T] {
	f := newFuture[T](logger)
	f.fail(err)

	return f
}

func (f *Future[T]) succeed(v T) {
	f.settle(v, nil)
}

func (f *Future[T]) fail(err error) {
	var zero T

	f.settle(zero, err)
}

func (f *Future[T]) settle(v T, err error) {
	f.mu.Lock()
	if f.settled {
		f.mu.Unlock()

		return
	}

	f.settled, f.value, f.err = true, v, err
	onSuccess, onFailure := f.onSuccess, f.onFailure
	f.mu.Unlock()

	if err != nil {
		if onFailure != nil {
			f.run(func() { onFailure(err) })
		}
	} else if onSuccess != nil {
		f.run(func() { onSuccess(v) })
	}

	close(f.done)
}

// run calls fn and logs a panic instead of letting it unwind into the settling goroutine.
func (f *Future[T]) run(fn func()) {
	defer func() {
		if re := recover(); re != nil && f.logger != nil {
			logging.LogPanic(re, f.logger)
		}
	}()

	fn()
}

// OnSuccess registers fn to receive the value once the Future succeeds. fn must not Await f.
func (f *Future[T]) OnSuccess(fn func(T)) error {
	if fn == nil {
		return ErrNilCallback
	}

	f.mu.Lock()
	if f.onSuccess != nil {
		f.mu.Unlock()

		return &ExecutionError{Err: ErrCallbackRegistered}
	}

	f.onSuccess = fn
	settled, v, err := f.settled, f.value, f.err
	f.mu.Unlock()

	if settled && err == nil {
		f.run(func() { fn(v) })
	}

	return nil
}

// OnFailure registers fn to receive the error once the Future fails. fn must not Await f.
func (f *Future[T]) OnFailure(fn func(error)) error {
	if fn == nil {
		return ErrNilCallback
	}

	f.mu.Lock()
	if f.onFailure != nil {
		f.mu.Unlock()

		return &ExecutionError{Err: ErrCallbackRegistered}
	}

	f.onFailure = fn
	settled, err := f.settled, f.err
	f.mu.Unlock()

	if settled && err != nil {
		f.run(func() { fn(err) })
	}

	return nil
}

// Await blocks until the Future settles or ctx is done. Returning because of ctx does not cancel the
// operation.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T

		return zero, ctx.Err()
	}
}

// Done is closed once the Future has settled and its callbacks have returned.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

func (f *Future[T]) Settled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.settled
}
