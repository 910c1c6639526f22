package libramsey

import (
	"io"
	"time"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/ramsey-systems/goramsey/goramsey"
)

// EngineMaxOrder caps the exhaustive search: each extension step enumerates
// every edge subset toward the existing vertices as a single word mask, and
// canonical dedup walks vertex permutations, so large orders are out of reach
// anyway.
const EngineMaxOrder = 32

// Engine drives the exhaustive search for (B_k0,B_k1)-good graphs: it extends
// a start graph one vertex at a time, trying every edge subset toward the
// existing vertices, and walks only branches that pass both pruning hooks and
// are not isomorphic to a graph already visited at the same order.
//
// The walk is strictly sequential; the Pruner blocks it on every hook call.
// Parallel composition happens outside: give each worker its own Engine over
// a disjoint start set and merge the survivor accumulators when all finish.
type Engine struct {
	maxOrder  int
	pruner    *Pruner
	seen      []*redblacktree.Tree // canonical encodings visited, per order
	processed uint64
	started   time.Time
	elapsed   time.Duration
}

// NewEngine returns an Engine that searches up to maxOrder vertices,
// consulting pruner at every extension.
func NewEngine(pruner *Pruner, maxOrder int) (*Engine, error) {
	if maxOrder < 3 || maxOrder > EngineMaxOrder {
		return nil, errors.Wrapf(goramsey.ErrBadOrder, "max order %d not in [3,%d]", maxOrder, EngineMaxOrder)
	}
	eng := &Engine{
		maxOrder: maxOrder,
		pruner:   pruner,
		seen:     make([]*redblacktree.Tree, maxOrder+1),
	}
	for i := range eng.seen {
		eng.seen[i] = redblacktree.NewWith(utils.StringComparator)
	}
	return eng, nil
}

// EnumerateWitnesses runs the search and streams every surviving graph of the
// target order.  The caller drains the returned stream; Summary may be called
// once the stream closes.
func (eng *Engine) EnumerateWitnesses() *GraphStream {
	next := NewGraphStream()

	go func() {
		eng.started = time.Now()
		eng.pruner.Init()
		klog.Infof("exhaustive search up to order %d", eng.maxOrder)

		X := NewGraph(nil)
		X.AddVtx(goramsey.VtxSet{})
		eng.walk(X, next)
		X.Reclaim()

		eng.elapsed = time.Since(eng.started)
		klog.Infof("search done: %d extensions processed in %v", eng.processed, eng.elapsed)
		for i := 2; i <= eng.maxOrder; i++ {
			klog.V(2).Infof("order %d: %d canonical graphs visited, %d survived",
				i, eng.seen[i].Size(), eng.pruner.Counts().Count(i))
		}
		next.Close()
	}()

	return next
}

// walk extends X by one vertex in every possible way.  Each candidate passes
// through the hook sequence: Preprune on the direct color, canonical dedup,
// then Prune on the complement color.  X is returned in the state it came in.
func (eng *Engine) walk(X *Graph, out *GraphStream) {
	n := X.VtxCount()

	var keyBuf [64]byte
	for mask := uint64(0); mask < 1<<uint(n); mask++ {
		var adj goramsey.VtxSet
		adj[0] = mask

		X.AddVtx(adj)
		eng.processed++
		child := n + 1

		if eng.pruner.Preprune(X, child, eng.maxOrder) {
			X.PopVtx()
			continue
		}

		canon := string(X.AppendCanonical(keyBuf[:0]))
		if _, dup := eng.seen[child].Get(canon); dup {
			X.PopVtx()
			continue
		}
		eng.seen[child].Put(canon, nil)

		if eng.pruner.Prune(X, child, eng.maxOrder) {
			X.PopVtx()
			continue
		}

		if child == eng.maxOrder {
			if out != nil {
				out.PushGraph(X)
			}
		} else {
			eng.walk(X, out)
		}
		X.PopVtx()
	}
}

// NumProcessed returns the number of candidate extensions examined so far.
func (eng *Engine) NumProcessed() uint64 {
	return eng.processed
}

// NumVisited returns how many non-isomorphic graphs of the given order the
// walk reached (surviving Preprune, before the complement check).
func (eng *Engine) NumVisited(order int) int {
	if order < 0 || order >= len(eng.seen) {
		return 0
	}
	return eng.seen[order].Size()
}

// Summary reports the survivor tally for the completed run.
func (eng *Engine) Summary(w io.Writer) {
	eng.pruner.Summary(w, eng.processed, eng.elapsed)
}
