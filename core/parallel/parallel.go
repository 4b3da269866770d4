// Package parallel splits index ranges across goroutines.
//
// Ranges are contiguous and disjoint, so callers that write only to slots in
// their own [start, end) need no locking.
package parallel

import (
	"runtime"
	"sync"
)

// Workers resolves a configured thread count: values <= 0 mean one worker per CPU.
func Workers(numThreads int) int {
	if numThreads <= 0 {
		return runtime.NumCPU()
	}
	return numThreads
}

// Parallelize divides items into one contiguous range per CPU core and
// executes fn for each range (start, end) in parallel.
func Parallelize(items int, fn func(start, end int)) {
	ParallelizeWorkers(items, runtime.NumCPU(), fn)
}

// ParallelizeWorkers is Parallelize with an explicit worker count.
// It returns after every fn call has finished.
func ParallelizeWorkers(items, workers int, fn func(start, end int)) {
	if items <= 0 {
		return
	}

	numWorkers := Workers(workers)
	if numWorkers > items {
		numWorkers = items // No need for more workers than items
	}
	if numWorkers == 1 {
		fn(0, items)
		return
	}

	// Ceiling division so the last range absorbs the remainder
	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// ParallelizeWithThreshold runs fn inline over the whole range when items does
// not exceed threshold, and in parallel otherwise.
func ParallelizeWithThreshold(items, threshold, workers int, fn func(start, end int)) {
	if items <= 0 {
		return
	}
	if items <= threshold {
		fn(0, items)
		return
	}
	ParallelizeWorkers(items, workers, fn)
}
