package vecpool

// WaitAll blocks until every future in futs has completed, then returns the
// first raised error in sequence order, or nil if all tasks finished clean.
// Use with Unit futures from Submit; WaitAllSuccess additionally inspects
// status codes.
func WaitAll[T any](futs []*Future[T]) error {
	var firstErr error
	for _, f := range futs {
		if err := f.Err(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// WaitAllSuccess blocks until every future in futs has completed and
// reduces the batch to a single outcome. A raised error from any task wins
// over status codes and is returned (first in sequence order); otherwise
// the first non-success status in sequence order is returned; otherwise
// StatusSuccess.
func WaitAllSuccess(futs []*Future[Status]) (Status, error) {
	var firstErr error
	first := StatusSuccess

	for _, f := range futs {
		st, err := f.Wait()
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if first == StatusSuccess && st != StatusSuccess {
			first = st
		}
	}

	if firstErr != nil {
		return StatusSuccess, firstErr
	}

	return first, nil
}
