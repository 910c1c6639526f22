package libramsey

import (
	"io"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/ramsey-systems/goramsey/goramsey"
)

// zobrist holds one random word per edge slot and color-1 membership; the
// coloring hash is the XOR of the words of all color-1 edges, so a flip
// updates it in O(1).  Seeded deterministically so hashes are stable across
// runs of the same process build.
var zobrist [goramsey.MaxVtx][goramsey.MaxVtx]uint64

func init() {
	rng := rand.New(rand.NewSource(0x52616d736579)) // "Ramsey"
	for u := 0; u < goramsey.MaxVtx; u++ {
		for v := u + 1; v < goramsey.MaxVtx; v++ {
			w := rng.Uint64()
			zobrist[u][v] = w
			zobrist[v][u] = w
		}
	}
}

// Coloring is a 2-edge-coloring of the complete graph on a fixed vertex set,
// held as one adjacency row per vertex per color.  It supports the local
// search moves of the tabu finder: score a coloring by the number of
// monochromatic forbidden patterns it contains, evaluate the score change of
// flipping one edge without touching the coloring, then apply the flip.
type Coloring struct {
	order   int
	pattern goramsey.PatternSpec
	nbrs    [2][]goramsey.VtxSet
	hash    uint64
}

// NewColoring returns an all-color-0 coloring of the given order.
func NewColoring(order int, pattern goramsey.PatternSpec) (*Coloring, error) {
	if order < 2 || order > goramsey.MaxVtx {
		return nil, errors.Wrapf(goramsey.ErrBadOrder, "order %d not in [2,%d]", order, goramsey.MaxVtx)
	}
	cl := &Coloring{
		order:   order,
		pattern: pattern,
	}
	cl.nbrs[0] = make([]goramsey.VtxSet, order)
	cl.nbrs[1] = make([]goramsey.VtxSet, order)
	for u := 0; u < order; u++ {
		cl.nbrs[0][u].FlipBelow(order)
		cl.nbrs[0][u].Unset(u)
	}
	return cl, nil
}

// RandomColoring returns a uniformly random 2-coloring of the complete graph.
func RandomColoring(rng *rand.Rand, order int, pattern goramsey.PatternSpec) (*Coloring, error) {
	cl, err := NewColoring(order, pattern)
	if err != nil {
		return nil, err
	}
	for u := 0; u < order; u++ {
		for v := u + 1; v < order; v++ {
			if rng.Intn(2) == 1 {
				cl.Flip(u, v)
			}
		}
	}
	return cl, nil
}

func (cl *Coloring) Order() int {
	return cl.order
}

func (cl *Coloring) Pattern() goramsey.PatternSpec {
	return cl.pattern
}

// Hash returns the XOR edge hash of the coloring.
func (cl *Coloring) Hash() uint64 {
	return cl.hash
}

// HashAfterFlip returns the hash the coloring would have after flipping
// (u,v), without performing the flip.
func (cl *Coloring) HashAfterFlip(u, v int) uint64 {
	return cl.hash ^ zobrist[u][v]
}

// ColorOf returns the color of edge (u,v).
func (cl *Coloring) ColorOf(u, v int) int {
	if cl.nbrs[1][u].Test(v) {
		return 1
	}
	return 0
}

// Flip moves edge (u,v) to the other color, updating both adjacency rows and
// the hash.
func (cl *Coloring) Flip(u, v int) {
	from := cl.ColorOf(u, v)
	to := 1 - from
	cl.nbrs[from][u].Unset(v)
	cl.nbrs[from][v].Unset(u)
	cl.nbrs[to][u].Set(v)
	cl.nbrs[to][v].Set(u)
	cl.hash ^= zobrist[u][v]
}

// common returns the common neighborhood of u and v in the given color.
// Neither endpoint is ever a member.
func (cl *Coloring) common(c, u, v int) goramsey.VtxSet {
	return cl.nbrs[c][u].And(cl.nbrs[c][v])
}

// forbiddenSize returns the configured forbidden size for a color: page count
// for books, total vertex count for wheels.
func (cl *Coloring) forbiddenSize(c int) int {
	if c == 0 {
		return cl.pattern.Size0
	}
	return cl.pattern.Size1
}

// Score counts the monochromatic forbidden patterns over both colors.
// Zero means the coloring is a witness.
func (cl *Coloring) Score() int64 {
	if cl.pattern.Kind == goramsey.Wheels {
		return cl.countWheels()
	}
	return cl.countBooks()
}

// FlipDelta returns the score change that flipping edge (u,v) would cause.
// The coloring is not modified.
func (cl *Coloring) FlipDelta(u, v int) int64 {
	if cl.pattern.Kind == goramsey.Wheels {
		return cl.wheelFlipDelta(u, v)
	}
	return cl.bookFlipDelta(u, v)
}

// countBooks sums, over every edge, the number of ways to choose the
// required pages among the spine's common neighbors in the edge's color.
func (cl *Coloring) countBooks() int64 {
	total := int64(0)
	for u := 0; u < cl.order; u++ {
		for v := u + 1; v < cl.order; v++ {
			c := cl.ColorOf(u, v)
			total += comb(cl.common(c, u, v).Count(), cl.forbiddenSize(c))
		}
	}
	return total
}

func (cl *Coloring) bookFlipDelta(u, v int) int64 {
	from := cl.ColorOf(u, v)
	to := 1 - from
	kOld := cl.forbiddenSize(from)
	kNew := cl.forbiddenSize(to)

	newNbrs := cl.common(to, u, v)
	oldNbrs := cl.common(from, u, v)

	// Books with (u,v) as the spine.
	delta := comb(newNbrs.Count(), kNew)
	delta -= comb(oldNbrs.Count(), kOld)

	// New books with (u,v) incident to a page: w pairs with u or v as the
	// spine, and the remaining endpoint of (u,v) becomes one of the pages.
	for w := newNbrs.NextBit(-1); w >= 0; w = newNbrs.NextBit(w) {
		delta += comb(cl.common(to, u, w).Count(), kNew-1)
		delta += comb(cl.common(to, v, w).Count(), kNew-1)
	}

	// Old books with (u,v) incident to a page.  Here u, v, and w are all
	// mutually adjacent in the losing color, so the non-spine endpoint of
	// (u,v) already sits in the common neighborhood of the spine and must
	// not be double-counted as a page.
	for w := oldNbrs.NextBit(-1); w >= 0; w = oldNbrs.NextBit(w) {
		delta -= comb(cl.common(from, u, w).Count()-1, kOld-1)
		delta -= comb(cl.common(from, v, w).Count()-1, kOld-1)
	}

	return delta
}

// countWheels counts, for each hub vertex and color, the cycles of the
// required rim length inside the hub's neighborhood.
func (cl *Coloring) countWheels() int64 {
	total := int64(0)
	for hub := 0; hub < cl.order; hub++ {
		for c := 0; c < 2; c++ {
			total += cl.countCyclesIn(cl.forbiddenSize(c)-1, c, cl.nbrs[c][hub])
		}
	}
	return total
}

// countCyclesIn counts cycles of the given length and color induced on the
// vertex set possible.  Rotation symmetry is broken by fixing the lowest
// remaining vertex on the cycle; reflection symmetry by choosing its two
// cycle-neighbors as an unordered pair.
func (cl *Coloring) countCyclesIn(length, c int, possible goramsey.VtxSet) int64 {
	num := int64(0)
	pv := possible

	for pv.Count() >= length-1 {
		vtx := pv.NextBit(-1)
		pv.Unset(vtx)

		cand := pv.And(cl.nbrs[c][vtx])
		for s := cand.NextBit(-1); s >= 0; s = cand.NextBit(s) {
			for t := cand.NextBit(s); t >= 0; t = cand.NextBit(t) {
				rest := pv
				rest.Unset(s)
				rest.Unset(t)
				num += cl.countPaths(s, t, c, rest, length-3)
			}
		}
	}
	return num
}

// countPaths counts monochromatic paths from s to t with exactly internal
// inner vertices, all drawn from possible.  Each path is counted once: the
// recursion fixes the vertex adjacent to t, then shortens the path.
func (cl *Coloring) countPaths(s, t, c int, possible goramsey.VtxSet, internal int) int64 {
	if internal == 0 {
		if cl.nbrs[c][s].Test(t) {
			return 1
		}
		return 0
	}
	num := int64(0)
	cand := possible.And(cl.nbrs[c][t])
	for last := cand.NextBit(-1); last >= 0; last = cand.NextBit(last) {
		rest := possible
		rest.Unset(last)
		num += cl.countPaths(s, last, c, rest, internal-1)
	}
	return num
}

func (cl *Coloring) wheelFlipDelta(u, v int) int64 {
	from := cl.ColorOf(u, v)
	to := 1 - from
	sizeOld := cl.forbiddenSize(from)
	sizeNew := cl.forbiddenSize(to)

	newNbrs := cl.common(to, u, v)
	oldNbrs := cl.common(from, u, v)

	delta := int64(0)

	// Wheels with (u,v) on the rim: the hub adjoins both, and the rest of
	// the rim is a path from u to v through the hub's neighborhood.
	for hub := newNbrs.NextBit(-1); hub >= 0; hub = newNbrs.NextBit(hub) {
		possible := cl.nbrs[to][hub]
		possible.Unset(u)
		possible.Unset(v)
		delta += cl.countPaths(u, v, to, possible, sizeNew-3)
	}
	for hub := oldNbrs.NextBit(-1); hub >= 0; hub = oldNbrs.NextBit(hub) {
		possible := cl.nbrs[from][hub]
		possible.Unset(u)
		possible.Unset(v)
		delta -= cl.countPaths(u, v, from, possible, sizeOld-3)
	}

	// Wheels with u or v as the hub: two rim vertices adjoin both u and v,
	// and the rest of the rim is a path between them.
	for _, hub := range [2]int{u, v} {
		for s := newNbrs.NextBit(-1); s >= 0; s = newNbrs.NextBit(s) {
			for t := newNbrs.NextBit(s); t >= 0; t = newNbrs.NextBit(t) {
				possible := cl.nbrs[to][hub]
				possible.Unset(s)
				possible.Unset(t)
				delta += cl.countPaths(s, t, to, possible, sizeNew-4)
			}
		}
		for s := oldNbrs.NextBit(-1); s >= 0; s = oldNbrs.NextBit(s) {
			for t := oldNbrs.NextBit(s); t >= 0; t = oldNbrs.NextBit(t) {
				possible := cl.nbrs[from][hub]
				possible.Unset(u)
				possible.Unset(v)
				possible.Unset(s)
				possible.Unset(t)
				delta -= cl.countPaths(s, t, from, possible, sizeOld-4)
			}
		}
	}

	return delta
}

// Graph extracts the color-0 graph of the coloring.
func (cl *Coloring) Graph() *Graph {
	X := NewGraph(nil)
	for u := 0; u < cl.order; u++ {
		X.AddVtx(goramsey.VtxSet{})
	}
	for u := 0; u < cl.order; u++ {
		row := cl.nbrs[0][u]
		for v := row.NextBit(u); v >= 0; v = row.NextBit(v) {
			X.SetEdge(u, v)
		}
	}
	return X
}

// WriteMatrix writes the color adjacency matrix, Sage-pasteable like the
// saved constructions of the original searches.
func (cl *Coloring) WriteMatrix(out io.Writer) {
	for u := 0; u < cl.order; u++ {
		open := "["
		if u == 0 {
			open = "[["
		}
		io.WriteString(out, open)
		for v := 0; v < cl.order; v++ {
			if v > 0 {
				io.WriteString(out, ",")
			}
			if u == v {
				io.WriteString(out, "0")
			} else if cl.ColorOf(u, v) == 1 {
				io.WriteString(out, "1")
			} else {
				io.WriteString(out, "0")
			}
		}
		if u == cl.order-1 {
			io.WriteString(out, "]]\n")
		} else {
			io.WriteString(out, "],\n")
		}
	}
}

// comb is the binomial coefficient C(n, k), 0 when k < 0 or n < k.
func comb(n, k int) int64 {
	if k < 0 || n < k {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}
	if k > n-k {
		k = n - k
	}
	num := int64(1)
	for i := 1; i <= k; i++ {
		num = num * int64(n-k+i) / int64(i)
	}
	return num
}
