package analyzer

import (
	"sync"
)

// ParallelProcess calls process on every item of list concurrently, and
// returns once all calls have finished.
func ParallelProcess[T any](
	list []T,
	process func(idx int, item T),
) {
	wg := sync.WaitGroup{}
	wg.Add(len(list))
	for idx, item := range list {
		go func(idx int, item T) {
			process(idx, item)
			wg.Done()
		}(idx, item)
	}
	wg.Wait()
}
