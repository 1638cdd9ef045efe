package vecpool

// Runtime is the narrow view of a nested data-parallel runtime whose
// process-global thread budget must be coordinated with the outer pools.
// The parallel subpackage provides the in-repo implementation; environments
// without a nested runtime can use NoopRuntime.
type Runtime interface {
	MaxThreads() int
	SetMaxThreads(n int)
}

// NoopRuntime satisfies Runtime for environments without a nested parallel
// runtime. MaxThreads reports zero and SetMaxThreads does nothing.
type NoopRuntime struct{}

func (NoopRuntime) MaxThreads() int   { return 0 }
func (NoopRuntime) SetMaxThreads(int) {}

// ScopedBudget temporarily overrides a nested runtime's thread budget and
// restores the prior budget on Close. The prior budget is the build pool's
// size when the build pool exists, otherwise the runtime's own current
// setting.
//
// ScopedBudget mutates runtime-global state: guards over the same runtime
// must be strictly nested and confined to one goroutine at a time.
type ScopedBudget struct {
	rt    Runtime
	prior int
}

// ScopedBudget overrides rt's thread budget to n for the scope of the
// returned guard. If n is not positive, the budget is set to the prior
// value (i.e. "use the default").
func (r *Registry) ScopedBudget(rt Runtime, n int) *ScopedBudget {
	prior := rt.MaxThreads()
	if p := r.peek(ClassBuild); p != nil {
		prior = p.Size()
	}

	if n > 0 {
		rt.SetMaxThreads(n)
	} else {
		rt.SetMaxThreads(prior)
	}

	return &ScopedBudget{rt: rt, prior: prior}
}

// NewScopedBudget is ScopedBudget on the default registry.
func NewScopedBudget(rt Runtime, n int) *ScopedBudget {
	return defaultRegistry.ScopedBudget(rt, n)
}

// Close restores the thread budget observed when the guard was created.
// Intended for defer at the top of the coordinated scope.
func (s *ScopedBudget) Close() {
	s.rt.SetMaxThreads(s.prior)
}
