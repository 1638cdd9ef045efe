// Package parallel is a small data-parallel runtime used inside index build
// and search tasks. It exposes a process-global thread budget (the analog
// of an OpenMP max-threads setting) and a bounded parallel-for built on it.
//
// The budget is deliberately global: tasks running on a vecpool worker
// share it, and vecpool.ScopedBudget saves and restores it around nested
// parallel sections to avoid oversubscribing CPUs.
package parallel

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

var maxThreads atomic.Int64

func init() {
	maxThreads.Store(int64(runtime.NumCPU()))
}

// MaxThreads returns the current thread budget for parallel sections.
func MaxThreads() int {
	return int(maxThreads.Load())
}

// SetMaxThreads sets the thread budget for parallel sections. Values below
// one reset the budget to the number of detected CPUs.
func SetMaxThreads(n int) {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	maxThreads.Store(int64(n))
}

// For runs fn(0) through fn(n-1) with at most MaxThreads invocations in
// flight and waits for all of them. The first error cancels the shared
// context and is returned; iterations not yet started observe the
// cancellation and are skipped.
func For(ctx context.Context, n int, fn func(i int) error) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(MaxThreads())

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(i)
		})
	}

	return g.Wait()
}

// Runtime adapts the package-global budget to the narrow get/set interface
// vecpool.ScopedBudget coordinates against.
type Runtime struct{}

// Default returns the Runtime for the package-global budget.
func Default() Runtime { return Runtime{} }

func (Runtime) MaxThreads() int     { return MaxThreads() }
func (Runtime) SetMaxThreads(n int) { SetMaxThreads(n) }
