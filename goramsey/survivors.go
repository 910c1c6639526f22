package goramsey

import (
	"fmt"
	"io"
)

// SurvivorCounts tallies, per graph order, how many graphs survived both
// pruning predicates during a search run.  Each run (or each worker in a
// parallelized run) owns its own accumulator; workers merge explicitly when
// they finish, so no instance is ever shared across goroutines.
type SurvivorCounts struct {
	counts [MaxVtx + 1]uint64
}

// Record counts one survivor of the given order.
func (sc *SurvivorCounts) Record(order int) {
	if order < 1 || order > MaxVtx {
		panic(fmt.Sprintf("survivor order %d out of range", order))
	}
	sc.counts[order]++
}

// Count returns the number of recorded survivors of the given order.
// An out of bounds order returns 0.
func (sc *SurvivorCounts) Count(order int) uint64 {
	if order < 1 || order > MaxVtx {
		return 0
	}
	return sc.counts[order]
}

// Merge adds the counts accumulated by another worker into sc.
func (sc *SurvivorCounts) Merge(other *SurvivorCounts) {
	for i, n := range other.counts {
		sc.counts[i] += n
	}
}

func (sc *SurvivorCounts) Reset() {
	sc.counts = [MaxVtx + 1]uint64{}
}

// WriteReport emits one line per order from 3 up to maxOrder.
func (sc *SurvivorCounts) WriteReport(w io.Writer, maxOrder int) {
	if maxOrder > MaxVtx {
		maxOrder = MaxVtx
	}
	for i := 3; i <= maxOrder; i++ {
		fmt.Fprintf(w, "Nv=%d, num ramsey graphs generated: %d\n", i, sc.counts[i])
	}
}
