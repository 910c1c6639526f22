package libramsey

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/ramsey-systems/goramsey/goramsey"
)

// CountForbidden independently recounts the forbidden patterns in both colors
// of X: color 0 is X itself, color 1 its complement within the complete graph
// on X's vertices.  The count is rebuilt on gonum graphs with none of the
// bitset shortcuts the detector and scorer use, so it cross-checks them.
func CountForbidden(X *Graph, pattern goramsey.PatternSpec) (n0, n1 int64) {
	n := X.VtxCount()

	g0 := simple.NewUndirectedGraph()
	g1 := simple.NewUndirectedGraph()
	for v := 0; v < n; v++ {
		g0.AddNode(simple.Node(v))
		g1.AddNode(simple.Node(v))
	}
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if X.HasEdge(u, v) {
				g0.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
			} else {
				g1.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
			}
		}
	}

	switch pattern.Kind {
	case goramsey.Wheels:
		n0 = countWheelsIn(g0, n, pattern.Size0)
		n1 = countWheelsIn(g1, n, pattern.Size1)
	default:
		n0 = countBooksIn(g0, n, pattern.Size0)
		n1 = countBooksIn(g1, n, pattern.Size1)
	}
	return
}

// VerifyWitness checks that X carries no forbidden pattern in either color.
func VerifyWitness(X *Graph, pattern goramsey.PatternSpec) error {
	n0, n1 := CountForbidden(X, pattern)
	if n0 > 0 || n1 > 0 {
		return errors.Errorf("not a %v witness: %d patterns in color 0, %d in color 1", pattern, n0, n1)
	}
	return nil
}

func countBooksIn(g graph.Undirected, n, pages int) int64 {
	total := int64(0)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if !g.HasEdgeBetween(int64(u), int64(v)) {
				continue
			}
			common := 0
			for w := 0; w < n; w++ {
				if w == u || w == v {
					continue
				}
				if g.HasEdgeBetween(int64(u), int64(w)) && g.HasEdgeBetween(int64(v), int64(w)) {
					common++
				}
			}
			total += comb(common, pages)
		}
	}
	return total
}

// countWheelsIn counts wheels on `size` vertices: each hub in turn, each
// rim cycle of length size-1 inside the hub's neighborhood counted once.
func countWheelsIn(g graph.Undirected, n, size int) int64 {
	rim := size - 1
	total := int64(0)
	for hub := 0; hub < n; hub++ {
		var nbrs []int
		for w := 0; w < n; w++ {
			if w != hub && g.HasEdgeBetween(int64(hub), int64(w)) {
				nbrs = append(nbrs, w)
			}
		}
		total += countCyclesAmong(g, nbrs, rim)
	}
	return total
}

// countCyclesAmong counts cycles of the given length whose vertices all come
// from verts.  The lowest vertex on each cycle anchors it, and its two cycle
// neighbors are taken as an unordered pair, so every cycle counts once.
func countCyclesAmong(g graph.Undirected, verts []int, length int) int64 {
	total := int64(0)
	for i, anchor := range verts {
		rest := verts[i+1:]
		if len(rest) < length-1 {
			break
		}
		for si, s := range rest {
			if !g.HasEdgeBetween(int64(anchor), int64(s)) {
				continue
			}
			for _, t := range rest[si+1:] {
				if !g.HasEdgeBetween(int64(anchor), int64(t)) {
					continue
				}
				avail := make(map[int]bool, len(rest))
				for _, w := range rest {
					avail[w] = true
				}
				delete(avail, s)
				delete(avail, t)
				total += countPathsAmong(g, s, t, avail, length-3)
			}
		}
	}
	return total
}

func countPathsAmong(g graph.Undirected, s, t int, avail map[int]bool, internal int) int64 {
	if internal == 0 {
		if g.HasEdgeBetween(int64(s), int64(t)) {
			return 1
		}
		return 0
	}
	total := int64(0)
	for w, ok := range avail {
		if !ok || !g.HasEdgeBetween(int64(t), int64(w)) {
			continue
		}
		avail[w] = false
		total += countPathsAmong(g, s, w, avail, internal-1)
		avail[w] = true
	}
	return total
}
