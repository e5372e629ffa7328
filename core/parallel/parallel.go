// Package parallel splits index ranges across goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// DefaultThreshold is the row count below which Range runs inline.
const DefaultThreshold = 1000

// Run divides [0, items) into one contiguous chunk per CPU and calls fn for
// each chunk concurrently. It returns after every chunk has finished.
func Run(items int, fn func(start, end int)) {
	if items <= 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items
	}
	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for start := 0; start < items; start += chunkSize {
		end := start + chunkSize
		if end > items {
			end = items
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// Range calls fn(0, items) inline when items <= threshold and falls back to
// Run otherwise. fn must only write to indices inside its own chunk.
func Range(items, threshold int, fn func(start, end int)) {
	if items <= 0 {
		return
	}
	if items <= threshold {
		fn(0, items)
		return
	}
	Run(items, fn)
}
