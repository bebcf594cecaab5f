package leet

import (
	"fmt"
	"sync"
)

var expandFn = Expand // seam

// Run expands each word in order and concatenates the results
func Run(words []string, dict Dictionary) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		out = append(out, Expand(w, dict)...)
	}
	return out
}

// RunParallel expands every word on its own goroutine and returns the same slice Run would
func RunParallel(words []string, dict Dictionary) []string {
	return RunBounded(words, dict, 0)
}

// RunBounded is RunParallel with at most workers goroutines in flight
// workers <= 0 means one goroutine per word.
// A panic inside a worker is re-raised here once every worker has finished
func RunBounded(words []string, dict Dictionary, workers int) []string {
	if len(words) == 0 {
		return []string{}
	}
	if workers <= 0 || workers > len(words) {
		workers = len(words)
	}

	// each worker owns slot i, so collection order is input order
	type slot struct {
		xs    []string
		panic any
	}
	slots := make([]slot, len(words))

	sem := make(chan struct{}, workers)
	wg := sync.WaitGroup{}

	for i := range words {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer func() {
				if v := recover(); v != nil {
					slots[i].panic = v
				}
				<-sem
				wg.Done()
			}()
			slots[i].xs = expandFn(words[i], dict)
		}(i)
	}
	wg.Wait()

	n := 0
	for i := range slots {
		if v := slots[i].panic; v != nil {
			panic(fmt.Sprintf("leet: worker for word %d (%q) panicked: %v", i, words[i], v))
		}
		n += len(slots[i].xs)
	}
	out := make([]string, 0, n)
	for i := range slots {
		out = append(out, slots[i].xs...)
	}
	return out
}
