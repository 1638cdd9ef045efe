package vecpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Class is a workload category with its own dedicated pool, isolating the
// performance characteristics of index building from query search.
type Class int

const (
	ClassBuild Class = iota
	ClassSearch
)

func (c Class) String() string {
	switch c {
	case ClassBuild:
		return "build"
	case ClassSearch:
		return "search"
	default:
		return "unknown"
	}
}

// Registry lazily creates and holds one Pool per workload class.
//
// At most one pool per class is ever constructed for the life of the
// Registry; once created, a pool is never replaced, only resized in place.
// The pool pointer is published atomically so the fast path (pool already
// exists) takes no lock; the per-class mutex is held only across the
// creation decision.
type Registry struct {
	logger  *Logger
	optFns  []Option
	entries [2]registryEntry
}

type registryEntry struct {
	mu   sync.Mutex
	pool atomic.Pointer[Pool]
}

// NewRegistry creates an empty registry. The given options are applied to
// every pool the registry creates.
func NewRegistry(optFns ...Option) *Registry {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(o)
	}
	return &Registry{
		logger: o.logger,
		optFns: optFns,
	}
}

// Init creates the pool for the given class with n threads. If the pool
// already exists, Init is a no-op that logs the existing size; it never
// resizes. n must be positive.
func (r *Registry) Init(class Class, n int) error {
	if n <= 0 {
		r.logger.Error("invalid pool thread count", "class", class.String(), "threads", n)
		return ErrInvalidThreadCount
	}

	e := &r.entries[class]
	if e.pool.Load() == nil {
		e.mu.Lock()
		defer e.mu.Unlock()

		if e.pool.Load() == nil {
			p, err := New(n, "vecpool_"+class.String(), r.optFns...)
			if err != nil {
				return err
			}
			e.pool.Store(p)
			r.logger.Info("global pool initialized", "class", class.String(), "threads", n)
			return nil
		}
	}

	r.logger.Info("global pool already initialized",
		"class", class.String(),
		"threads", e.pool.Load().Size(),
	)
	return nil
}

// SetSize resizes the pool for the given class, creating it with n threads
// if it does not exist yet. n must be positive.
func (r *Registry) SetSize(class Class, n int) error {
	e := &r.entries[class]

	p := e.pool.Load()
	if p == nil {
		return r.Init(class, n)
	}

	if err := p.SetSize(n); err != nil {
		return err
	}

	r.logger.Info("global pool resized", "class", class.String(), "threads", p.Size())
	return nil
}

// Get returns the pool for the given class, creating it with one thread per
// detected CPU if it does not exist yet. Get never returns nil.
func (r *Registry) Get(class Class) *Pool {
	e := &r.entries[class]

	if p := e.pool.Load(); p != nil {
		return p
	}

	// NumCPU is always positive, so Init cannot fail here.
	_ = r.Init(class, runtime.NumCPU())

	return e.pool.Load()
}

// peek returns the pool for the given class without creating it.
func (r *Registry) peek(class Class) *Pool {
	return r.entries[class].pool.Load()
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry behind the package-level
// pool functions.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// InitGlobalBuildPool creates the process-wide build pool with n threads.
// A no-op if the build pool already exists.
func InitGlobalBuildPool(n int) error {
	return defaultRegistry.Init(ClassBuild, n)
}

// InitGlobalSearchPool creates the process-wide search pool with n threads.
// A no-op if the search pool already exists.
func InitGlobalSearchPool(n int) error {
	return defaultRegistry.Init(ClassSearch, n)
}

// SetGlobalBuildPoolSize resizes the process-wide build pool, creating it
// first if needed.
func SetGlobalBuildPoolSize(n int) error {
	return defaultRegistry.SetSize(ClassBuild, n)
}

// SetGlobalSearchPoolSize resizes the process-wide search pool, creating it
// first if needed.
func SetGlobalSearchPoolSize(n int) error {
	return defaultRegistry.SetSize(ClassSearch, n)
}

// GlobalBuildPool returns the process-wide build pool, creating it sized to
// runtime.NumCPU() if needed.
func GlobalBuildPool() *Pool {
	return defaultRegistry.Get(ClassBuild)
}

// GlobalSearchPool returns the process-wide search pool, creating it sized
// to runtime.NumCPU() if needed.
func GlobalSearchPool() *Pool {
	return defaultRegistry.Get(ClassSearch)
}
