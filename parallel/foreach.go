// Package parallel contains parallel ForEach() plus the other concurrency primitives used in training.
package parallel

import "sync"

// ForEach executes a for loop with a limited number of concurrent goroutines.
// Each goroutine processes one integer, from 0 to length.
func ForEach(length, limit int, body func(i int)) {
	if limit <= 0 {
		limit = 1
	}
	if length <= 0 {
		return
	}

	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup
	wg.Add(length)

	for i := 0; i < length; i++ {
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			body(i)
		}(i)
	}

	wg.Wait()
}

// ForEachChunk is ForEach over chunks of size chunk, calling body with the half open range [from, to)
func ForEachChunk(length, chunk, limit int, body func(from, to int)) {
	if chunk <= 0 {
		chunk = 1
	}
	ForEach((length+chunk-1)/chunk, limit, func(c int) {
		from := c * chunk
		to := from + chunk
		if to > length {
			to = length
		}
		body(from, to)
	})
}
