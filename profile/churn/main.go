// Profiling:
// go build ./profile/churn
// go tool pprof -http=":8000" -nodefraction=0.001 ./churn mem.pprof

package main

import (
	"github.com/Olle-Lukowski/otter"
	"github.com/pkg/profile"
)

func main() {
	count := 50
	iters := 10000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		idx := otter.NewIndex()
		ents := make([]otter.Entity, 0, numEntities)

		for range iters {
			ents = idx.CreateManyTo(numEntities, ents[:0])
			for _, e := range ents {
				idx.Destroy(e)
			}
		}
	}
}
