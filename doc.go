// Package vecpool provides bounded, named worker pools for the compute-heavy
// background work of a vector-search engine: index building and query search.
//
// A Pool owns a fixed group of workers draining a bounded task queue.
// Submission applies backpressure (it blocks when the queue is full) and
// returns a Future that eventually carries the task's result or failure.
// Worker OS threads run at lowered scheduling priority on Linux so heavy
// index builds do not starve foreground request handling.
//
// # Quick Start
//
//	pool, _ := vecpool.New(8, "ivf-build")
//
//	futs := make([]*vecpool.Future[vecpool.Status], 0, len(chunks))
//	for _, chunk := range chunks {
//	    chunk := chunk
//	    futs = append(futs, vecpool.Go(pool, func() (vecpool.Status, error) {
//	        return buildPartition(chunk)
//	    }))
//	}
//	if st, err := vecpool.WaitAllSuccess(futs); err != nil || st != vecpool.StatusSuccess {
//	    // handle the first failure of the batch
//	}
//
// # Global pools
//
// Most callers share two process-wide pools, one per workload class:
//
//	vecpool.InitGlobalBuildPool(8)
//	pool := vecpool.GlobalSearchPool() // lazily sized to runtime.NumCPU()
//
// The package-level functions delegate to a default Registry. Code that
// prefers dependency injection can construct its own Registry instead.
//
// # Nested parallelism
//
// Tasks that fan out through a data-parallel runtime (see the parallel
// subpackage) should bound that runtime's thread budget for the duration of
// the task to avoid oversubscription:
//
//	guard := vecpool.NewScopedBudget(parallel.Default(), 1)
//	defer guard.Close()
package vecpool
