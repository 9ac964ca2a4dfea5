package gltransform

import "sync"

const DEFAULT_WORKERS = 1

// BuildAll composes the transform of every pose, in input order.
// The poses are split into contiguous chunks, one goroutine per chunk.
func BuildAll(workers int, poses []Pose) []Transform {
	out := make([]Transform, len(poses))
	task(max(DEFAULT_WORKERS, workers), len(poses), func(i int) {
		out[i] = poses[i].Transform()
	})
	return out
}

func task(workersCount int, dataSize int, fn func(i int)) {
	var wg sync.WaitGroup
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
				fn(i)
			}
		}(start, end)
	}
	wg.Wait()
}
