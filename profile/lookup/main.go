// Profiling:
// go build ./profile/lookup
// go tool pprof -http=":8000" -nodefraction=0.001 ./lookup cpu.prof

package main

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/Olle-Lukowski/otter"
)

func main() {
	// CPU Profiling
	f, _ := os.Create("cpu.prof")
	_ = pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	count := 50
	iters := 10000
	entities := 100000
	run(count, iters, entities)

	// Memory Profiling
	memFile, _ := os.Create("mem.prof")
	defer memFile.Close()
	runtime.GC() // Trigger garbage collection
	_ = pprof.WriteHeapProfile(memFile)
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		idx := otter.NewIndex()
		ents := idx.CreateManyTo(numEntities, nil)

		alive := 0
		for range iters {
			for _, e := range ents {
				if idx.IsAlive(e) {
					alive++
				}
			}
		}
		_ = alive
	}
}
