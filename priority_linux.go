//go:build linux

package vecpool

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// lowestPriority is the weakest normal scheduling priority (nice value).
const lowestPriority = 19

// lowerWorkerPriority pins the worker goroutine to its OS thread and drops
// the thread to the lowest normal scheduling priority, so index builds and
// searches yield to foreground threads. The goroutine stays pinned for its
// lifetime; when it exits, the Go runtime discards the deprioritized thread
// instead of returning it to the scheduler pool.
//
// A failed priority change is non-fatal: the worker runs at default
// priority on an unpinned thread.
func (p *Pool) lowerWorkerPriority(worker string) {
	if p.noPrio {
		return
	}

	runtime.LockOSThread()

	if err := unix.Setpriority(unix.PRIO_PROCESS, unix.Gettid(), lowestPriority); err != nil {
		runtime.UnlockOSThread()
		p.logger.LogWorkerPriority(worker, err)
		return
	}

	p.logger.LogWorkerPriority(worker, nil)
}
