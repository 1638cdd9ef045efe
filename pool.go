package vecpool

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// noCopy triggers go vet's copylocks check when a Pool is copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Pool is a fixed-size group of workers draining a bounded task queue.
//
// The queue capacity is threads*queueFactor and is fixed at construction;
// when it is full, submission blocks rather than dropping or failing.
// A Pool owns live workers and an in-flight queue, so it must not be
// copied after construction; use it through the *Pool returned by New.
//
// Pools live for the lifetime of the process. There is no Stop: an admitted
// task always runs to completion.
type Pool struct {
	noCopy noCopy //nolint:unused // vet copylocks marker

	name  string
	queue chan func()

	mu    sync.Mutex      // guards stops
	stops []chan struct{} // one per worker not yet asked to retire

	size     atomic.Int64 // configured thread count
	inFlight atomic.Int64
	nextID   atomic.Int64

	limiter *rate.Limiter       // nil when submission is unthrottled
	slots   *semaphore.Weighted // nil when in-flight work is uncapped

	logger *Logger
	noPrio bool
}

// New creates a pool with the given number of worker threads. Workers are
// labeled namePrefix-<id> in diagnostics. threads must be positive.
func New(threads int, namePrefix string, optFns ...Option) (*Pool, error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(o)
	}

	if threads <= 0 {
		o.logger.Error("invalid pool thread count", "pool", namePrefix, "threads", threads)
		return nil, ErrInvalidThreadCount
	}

	p := &Pool{
		name:   namePrefix,
		queue:  make(chan func(), threads*o.queueFactor),
		logger: o.logger,
		noPrio: o.disablePrio,
	}
	if o.submitRate > 0 {
		burst := o.submitBurst
		if burst <= 0 {
			burst = 1
		}
		p.limiter = rate.NewLimiter(o.submitRate, burst)
	}
	if o.maxInFlight > 0 {
		p.slots = semaphore.NewWeighted(o.maxInFlight)
	}

	p.mu.Lock()
	p.spawnLocked(threads)
	p.mu.Unlock()
	p.size.Store(int64(threads))

	p.logger.LogPoolInit(namePrefix, threads, cap(p.queue))

	return p, nil
}

// Go submits fn to the pool and returns a Future for its result. Go blocks
// while the queue is full (and, if configured, while the submit throttle or
// in-flight cap deny admission); it returns as soon as the task is admitted,
// not when it runs.
//
// A panic inside fn is recovered into the Future as ErrTaskPanicked.
func Go[T any](p *Pool, fn func() (T, error)) *Future[T] {
	f, err := GoCtx(context.Background(), p, fn)
	if err != nil {
		// Background context cannot be canceled; admission always succeeds.
		panic(err)
	}
	return f
}

// GoCtx is like Go but abandons admission when ctx is canceled. The context
// bounds admission only; once admitted, the task is not cancelable.
func GoCtx[T any](ctx context.Context, p *Pool, fn func() (T, error)) (*Future[T], error) {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	if p.slots != nil {
		if err := p.slots.Acquire(ctx, 1); err != nil {
			return nil, err
		}
	}

	f := newFuture[T]()
	run := func() {
		defer p.taskDone()
		defer func() {
			if r := recover(); r != nil {
				var zero T
				f.complete(zero, fmt.Errorf("%w: %v", ErrTaskPanicked, r))
			}
		}()

		val, err := fn()
		f.complete(val, err)
	}

	p.inFlight.Add(1)

	select {
	case p.queue <- run:
		return f, nil
	case <-ctx.Done():
		p.taskDone()
		return nil, ctx.Err()
	}
}

// Submit submits a task that carries no value, only success or failure.
// See Go for admission semantics.
func (p *Pool) Submit(fn func() error) *Future[Unit] {
	return Go(p, func() (Unit, error) { return Unit{}, fn() })
}

// SubmitCtx is like Submit but abandons admission when ctx is canceled.
func (p *Pool) SubmitCtx(ctx context.Context, fn func() error) (*Future[Unit], error) {
	return GoCtx(ctx, p, func() (Unit, error) { return Unit{}, fn() })
}

// Size returns the configured thread count.
func (p *Pool) Size() int {
	return int(p.size.Load())
}

// SetSize changes the thread count. n must be positive; n == 0 is reported
// and leaves the pool unchanged. Growing spawns additional workers; when
// shrinking, excess workers finish their current task and then exit, so the
// observed worker count may lag the configured one. In-flight tasks are
// never aborted, and the queue capacity is unchanged.
func (p *Pool) SetSize(n int) error {
	if n <= 0 {
		p.logger.Error("invalid pool thread count", "pool", p.name, "threads", n)
		return ErrInvalidThreadCount
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	cur := len(p.stops)
	switch {
	case n > cur:
		p.spawnLocked(n - cur)
	case n < cur:
		for _, stop := range p.stops[n:] {
			close(stop)
		}
		p.stops = p.stops[:n]
	}

	p.size.Store(int64(n))

	if n != cur {
		p.logger.LogResize(p.name, cur, n)
	}

	return nil
}

// InFlight returns the number of admitted tasks that have not finished.
func (p *Pool) InFlight() int {
	return int(p.inFlight.Load())
}

// QueueDepth returns the number of admitted tasks not yet picked up by a
// worker.
func (p *Pool) QueueDepth() int {
	return len(p.queue)
}

// QueueCap returns the fixed queue capacity (threads at construction time
// multiplied by the queue factor).
func (p *Pool) QueueCap() int {
	return cap(p.queue)
}

func (p *Pool) taskDone() {
	p.inFlight.Add(-1)
	if p.slots != nil {
		p.slots.Release(1)
	}
}

// spawnLocked starts n workers. Caller must hold p.mu.
func (p *Pool) spawnLocked(n int) {
	for i := 0; i < n; i++ {
		stop := make(chan struct{})
		p.stops = append(p.stops, stop)

		worker := fmt.Sprintf("%s-%d", p.name, p.nextID.Add(1))
		go p.run(worker, stop)
	}
}

// run is the worker loop: pull a task, execute it to completion, repeat.
// A retired worker finishes its current task before exiting.
func (p *Pool) run(worker string, stop <-chan struct{}) {
	p.lowerWorkerPriority(worker)

	for {
		select {
		case <-stop:
			p.logger.Debug("worker exiting", "worker", worker)
			return
		default:
		}

		select {
		case <-stop:
			p.logger.Debug("worker exiting", "worker", worker)
			return
		case fn := <-p.queue:
			fn()
		}
	}
}
