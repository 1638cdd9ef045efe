package vecpool

// Unit is the payload of futures that carry no value, only success or
// failure. It is the Status-free counterpart used with WaitAll.
type Unit = struct{}

// Future is the asynchronous handle for a submitted task. It is completed
// exactly once by the worker that ran the task.
//
// Futures are not cancelable; a task that has been admitted always runs.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// complete publishes the result and releases all waiters.
// Must be called exactly once.
func (f *Future[T]) complete(val T, err error) {
	f.val = val
	f.err = err
	close(f.done)
}

// Done returns a channel that is closed when the task has finished.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the task has finished and returns its result.
// It is safe to call Wait multiple times and from multiple goroutines.
func (f *Future[T]) Wait() (T, error) {
	<-f.done
	return f.val, f.err
}

// Err blocks until the task has finished and returns its failure, if any.
func (f *Future[T]) Err() error {
	<-f.done
	return f.err
}
