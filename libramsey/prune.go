package libramsey

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/ramsey-systems/goramsey/goramsey"
)

// Pruner implements the two pruning hooks of an incremental graph search for
// (B_k0, B_k1)-good graphs: colorings whose color-0 graph has no k0-page book
// and whose color-1 graph (the complement) has no k1-page book.
//
// Preprune and Prune are pure decision procedures apart from the survivor
// tally; each call depends only on the graph, its order, and the fixed page
// counts.  The Pruner owns no goroutines and never blocks.
type Pruner struct {
	k0, k1  int
	counts  *goramsey.SurvivorCounts
	maxSeen int
}

// NewPruner returns a Pruner for the given page counts, recording survivors
// into counts.  A nil counts gets a private accumulator.
func NewPruner(k0, k1 int, counts *goramsey.SurvivorCounts) (*Pruner, error) {
	if k0 < 1 || k1 < 1 {
		return nil, errors.Wrapf(goramsey.ErrBadPageCount, "got (%d,%d)", k0, k1)
	}
	if counts == nil {
		counts = &goramsey.SurvivorCounts{}
	}
	return &Pruner{
		k0:     k0,
		k1:     k1,
		counts: counts,
	}, nil
}

// Init emits a one-time diagnostic identifying the configured page counts.
func (p *Pruner) Init() {
	klog.Infof("pruning for (B%d,B%d)-graphs", p.k0, p.k1)
}

// Preprune is called when the search is about to extend the graph to include
// vertex n's edges.  True means the branch cannot lead to a witness: the
// direct (color 0) graph already contains a k0-page book.  Read-only.
func (p *Pruner) Preprune(X *Graph, n, maxn int) bool {
	p.checkCall(X, n, maxn)
	return X.ContainsBook(n-1, p.k0)
}

// Prune is called once vertex n's edges are finalized.  It checks the
// complement (color 1) graph for a k1-page book, restoring the direct
// coloring before returning on every path.  On survival the counter for
// order n is incremented exactly once.
func (p *Pruner) Prune(X *Graph, n, maxn int) bool {
	p.checkCall(X, n, maxn)
	if X.WithComplement(func(Xc *Graph) bool {
		return Xc.ContainsBook(n-1, p.k1)
	}) {
		return true
	}
	p.counts.Record(n)
	return false
}

// Counts exposes the survivor accumulator, e.g. for merging workers.
func (p *Pruner) Counts() *goramsey.SurvivorCounts {
	return p.counts
}

// Summary writes the survivor tally for every order from 3 up to the final
// order this Pruner saw.  Call once, after the search completes.
func (p *Pruner) Summary(w io.Writer, totalProcessed uint64, cpu time.Duration) {
	fmt.Fprintf(w, "graphs processed: %d, cpu: %v\n", totalProcessed, cpu)
	p.counts.WriteReport(w, p.maxSeen)
}

// A wrong boolean out of either predicate would silently corrupt the whole
// exhaustive search, so call contract violations stop the process.
func (p *Pruner) checkCall(X *Graph, n, maxn int) {
	if n < 1 || n > maxn || maxn > goramsey.MaxVtx {
		panic(fmt.Sprintf("prune call out of range: n=%d maxn=%d", n, maxn))
	}
	if X.VtxCount() != n {
		panic(fmt.Sprintf("prune call order mismatch: n=%d graph order %d", n, X.VtxCount()))
	}
	if n > p.maxSeen {
		p.maxSeen = n
	}
}
