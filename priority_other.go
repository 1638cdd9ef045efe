//go:build !linux

package vecpool

// lowerWorkerPriority is a no-op on platforms without per-thread scheduling
// priorities; workers run at default priority.
func (p *Pool) lowerWorkerPriority(string) {}
