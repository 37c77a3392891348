package glide

import "sync"

// task calls fn for every element of data, split in contiguous chunks across
// workersCount goroutines. fn receives the index of the element, so results can be
// stored by position and read back in order.
func task[T any](workersCount int, data []T, fn func(i int, data T)) {
	if workersCount <= 1 || len(data) <= 1 {
		for i, d := range data {
			fn(i, d)
		}
		return
	}

	var wg sync.WaitGroup
	dataSize := len(data)
	chunkSize := (dataSize + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		start, end := workerID*chunkSize, min((workerID+1)*chunkSize, dataSize)
		if start >= end {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i, data[i])
			}
		}(start, end)
	}
	wg.Wait()
}
