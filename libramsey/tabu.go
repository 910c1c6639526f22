package libramsey

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/ramsey-systems/goramsey/goramsey"
)

// TabuOpts configures one tabu descent.
type TabuOpts struct {
	Order    int
	Pattern  goramsey.PatternSpec
	Seed     int64
	MaxSteps int // 0 means no step cap
}

// TabuResult reports the outcome of a descent.
type TabuResult struct {
	Coloring  *Coloring
	Score     int64
	Steps     int
	Succeeded bool
}

// TabuSearch runs a steepest-descent walk with an infinite tabu tenure: every
// coloring visited is hashed and never revisited.  Among the non-tabu edge
// flips, a lowest-delta flip is chosen at random.  The walk stops at score
// zero, when every neighbor is tabu, when MaxSteps runs out, or when stop is
// set by another worker.
func TabuSearch(opts TabuOpts, stop *atomic.Bool) (*TabuResult, error) {
	if opts.Order < 2 || opts.Order > goramsey.MaxVtx {
		return nil, errors.Wrapf(goramsey.ErrBadOrder, "order %d not in [2,%d]", opts.Order, goramsey.MaxVtx)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	cl, err := RandomColoring(rng, opts.Order, opts.Pattern)
	if err != nil {
		return nil, err
	}

	visited := make(map[uint64]struct{})
	visited[cl.Hash()] = struct{}{}

	score := cl.Score()
	res := &TabuResult{
		Coloring: cl,
	}

	type flip struct {
		u, v int
	}
	var ties []flip

	for score > 0 {
		if stop != nil && stop.Load() {
			break
		}
		if opts.MaxSteps > 0 && res.Steps >= opts.MaxSteps {
			break
		}

		bestDelta := int64(0)
		haveMove := false
		ties = ties[:0]
		for u := 0; u < opts.Order; u++ {
			for v := u + 1; v < opts.Order; v++ {
				if _, seen := visited[cl.HashAfterFlip(u, v)]; seen {
					continue
				}
				delta := cl.FlipDelta(u, v)
				if !haveMove || delta < bestDelta {
					haveMove = true
					bestDelta = delta
					ties = ties[:0]
				}
				if delta == bestDelta {
					ties = append(ties, flip{u, v})
				}
			}
		}
		if !haveMove {
			break
		}

		move := ties[rng.Intn(len(ties))]
		cl.Flip(move.u, move.v)
		visited[cl.Hash()] = struct{}{}
		score += bestDelta
		res.Steps++
	}

	res.Score = score
	res.Succeeded = score == 0
	return res, nil
}

// ParallelTabu runs numWorkers descents with seeds derived from the master
// seed, each from its own random start.  The first descent to reach score
// zero signals the others to stop; its result is returned.  If none succeeds,
// the lowest-scoring result is returned with Succeeded false.
func ParallelTabu(opts TabuOpts, numWorkers int) (*TabuResult, error) {
	if numWorkers < 1 {
		numWorkers = 1
	}

	seedRng := rand.New(rand.NewSource(opts.Seed))
	seeds := make([]int64, numWorkers)
	for i := range seeds {
		seeds[i] = seedRng.Int63()
	}

	var stop atomic.Bool
	results := make([]*TabuResult, numWorkers)
	errs := make([]error, numWorkers)

	started := time.Now()
	klog.Infof("tabu search for %v at order %d on %d workers", opts.Pattern, opts.Order, numWorkers)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			wopts := opts
			wopts.Seed = seeds[i]
			res, err := TabuSearch(wopts, &stop)
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = res
			if res.Succeeded {
				stop.Store(true)
			}
		}(i)
	}
	wg.Wait()

	var best *TabuResult
	for i, res := range results {
		if errs[i] != nil {
			return nil, errs[i]
		}
		if best == nil || res.Score < best.Score ||
			(res.Succeeded && !best.Succeeded) {
			best = res
		}
	}

	if best.Succeeded {
		klog.Infof("witness found at order %d after %d steps in %v", opts.Order, best.Steps, time.Since(started))
	} else {
		klog.Infof("no witness at order %d, best score %d in %v", opts.Order, best.Score, time.Since(started))
	}
	return best, nil
}
