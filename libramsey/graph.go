package libramsey

import (
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/ramsey-systems/goramsey/goramsey"
)

var graphPool = sync.Pool{
	New: func() any {
		return &Graph{}
	},
}

// NewGraph returns a pooled Graph initialized as a copy of Xsrc, or empty if
// Xsrc is nil.
func NewGraph(Xsrc *Graph) *Graph {
	X := graphPool.Get().(*Graph)
	X.Init(Xsrc)
	return X
}

// Graph is a simple undirected graph of order up to goramsey.MaxVtx, stored
// as one adjacency row per vertex.  Every mutator writes both endpoints of an
// edge, so the rows stay symmetric by construction; AssertConsistent exists
// for callers that hand rows in from outside.
type Graph struct {
	vtxCount int
	rows     [goramsey.MaxVtx]goramsey.VtxSet
}

func (X *Graph) Init(Xsrc *Graph) {
	if Xsrc == nil {
		for v := 0; v < X.vtxCount; v++ {
			X.rows[v] = goramsey.VtxSet{}
		}
		X.vtxCount = 0
		return
	}
	for v := 0; v < X.vtxCount; v++ {
		X.rows[v] = goramsey.VtxSet{}
	}
	X.vtxCount = Xsrc.vtxCount
	copy(X.rows[:X.vtxCount], Xsrc.rows[:Xsrc.vtxCount])
}

// Reclaim recycles this Graph instance into a pool for reuse.
// Caller asserts that no more references to this instance will persist.
func (X *Graph) Reclaim() {
	graphPool.Put(X)
}

// MakeCopy returns a new pooled copy of this instance.
func (X *Graph) MakeCopy() *Graph {
	return NewGraph(X)
}

func (X *Graph) VtxCount() int {
	return X.vtxCount
}

// Row returns the adjacency row of vertex v by value.
func (X *Graph) Row(v int) goramsey.VtxSet {
	if v < 0 || v >= X.vtxCount {
		panic(fmt.Sprintf("vertex %d out of range (order %d)", v, X.vtxCount))
	}
	return X.rows[v]
}

// AddVtx appends a vertex adjacent to every vertex in adj.
// All members of adj must be existing vertices.
func (X *Graph) AddVtx(adj goramsey.VtxSet) {
	n := X.vtxCount
	if n >= goramsey.MaxVtx {
		panic("graph capacity exceeded")
	}
	if hi := adj.NextBit(n - 1); hi >= 0 {
		panic(fmt.Sprintf("new vertex adjacent to nonexistent vertex %d", hi))
	}
	X.rows[n] = adj
	for v := adj.NextBit(-1); v >= 0; v = adj.NextBit(v) {
		X.rows[v].Set(n)
	}
	X.vtxCount = n + 1
}

// PopVtx removes the most recently added vertex and all its edges.
func (X *Graph) PopVtx() {
	if X.vtxCount == 0 {
		panic("PopVtx on empty graph")
	}
	n := X.vtxCount - 1
	adj := X.rows[n]
	for v := adj.NextBit(-1); v >= 0; v = adj.NextBit(v) {
		X.rows[v].Unset(n)
	}
	X.rows[n] = goramsey.VtxSet{}
	X.vtxCount = n
}

func (X *Graph) SetEdge(u, v int) {
	X.checkPair(u, v)
	X.rows[u].Set(v)
	X.rows[v].Set(u)
}

func (X *Graph) ClearEdge(u, v int) {
	X.checkPair(u, v)
	X.rows[u].Unset(v)
	X.rows[v].Unset(u)
}

func (X *Graph) HasEdge(u, v int) bool {
	return u != v && u >= 0 && v >= 0 && u < X.vtxCount && v < X.vtxCount &&
		X.rows[u].Test(v)
}

func (X *Graph) NumEdges() int {
	total := 0
	for v := 0; v < X.vtxCount; v++ {
		total += X.rows[v].Count()
	}
	return total / 2
}

func (X *Graph) checkPair(u, v int) {
	if u == v || u < 0 || v < 0 || u >= X.vtxCount || v >= X.vtxCount {
		panic(fmt.Sprintf("bad edge (%d,%d) for order %d", u, v, X.vtxCount))
	}
}

// AssertConsistent panics if any row disagrees with its mirror or carries a
// self loop.  A silent asymmetry here would corrupt every pruning decision
// downstream, so this is a hard stop rather than an error return.
func (X *Graph) AssertConsistent() {
	n := X.vtxCount
	for u := 0; u < n; u++ {
		row := X.rows[u]
		if row.Test(u) {
			panic(fmt.Sprintf("self loop at vertex %d", u))
		}
		if hi := row.NextBit(n - 1); hi >= 0 {
			panic(fmt.Sprintf("vertex %d adjacent to out-of-range vertex %d", u, hi))
		}
		for v := row.NextBit(u); v >= 0; v = row.NextBit(v) {
			if !X.rows[v].Test(u) {
				panic(fmt.Sprintf("asymmetric edge (%d,%d)", u, v))
			}
		}
	}
}

// complement flips every edge and non-edge among the current vertices,
// leaving the diagonal clear.
func (X *Graph) complement() {
	n := X.vtxCount
	for v := 0; v < n; v++ {
		X.rows[v].FlipBelow(n)
		X.rows[v].Unset(v)
	}
}

// WithComplement runs fn against the complement of X and returns its result.
// The direct form of X is restored on every exit path, including a panic in
// fn: the graph handed back to the caller is bit-for-bit the graph handed in.
func (X *Graph) WithComplement(fn func(Xc *Graph) bool) bool {
	X.complement()
	defer X.complement()
	return fn(X)
}

// IsEqual returns true if both graphs have identical order and rows.
func (X *Graph) IsEqual(Y *Graph) bool {
	if X.vtxCount != Y.vtxCount {
		return false
	}
	for v := 0; v < X.vtxCount; v++ {
		if X.rows[v] != Y.rows[v] {
			return false
		}
	}
	return true
}

// WriteAsString writes a text form of X selected by opts.
// The edge list form uses one-based vertex IDs and round-trips through
// ParseGraphExpr; the matrix form is a Sage-pasteable adjacency matrix.
func (X *Graph) WriteAsString(out io.Writer, opts goramsey.PrintOpts) {
	if opts.Label != "" {
		fmt.Fprintf(out, "%s,", opts.Label)
	}
	if opts.EdgeList {
		io.WriteString(out, X.edgeListString())
	}
	if opts.Matrix {
		if opts.EdgeList {
			io.WriteString(out, "\n")
		}
		X.writeMatrix(out)
	}
}

func (X *Graph) edgeListString() string {
	n := X.vtxCount
	var b []byte
	b = append(b, 'n', '=')
	b = strconv.AppendInt(b, int64(n), 10)
	for u := 0; u < n; u++ {
		row := X.rows[u]
		for v := row.NextBit(u); v >= 0; v = row.NextBit(v) {
			b = append(b, ',')
			b = strconv.AppendInt(b, int64(u+1), 10)
			b = append(b, '-')
			b = strconv.AppendInt(b, int64(v+1), 10)
		}
	}
	return string(b)
}

func (X *Graph) writeMatrix(out io.Writer) {
	n := X.vtxCount
	io.WriteString(out, "[")
	for u := 0; u < n; u++ {
		if u > 0 {
			io.WriteString(out, ",\n ")
		}
		io.WriteString(out, "[")
		for v := 0; v < n; v++ {
			if v > 0 {
				io.WriteString(out, ",")
			}
			if X.rows[u].Test(v) {
				io.WriteString(out, "1")
			} else {
				io.WriteString(out, "0")
			}
		}
		io.WriteString(out, "]")
	}
	io.WriteString(out, "]\n")
}

func (X *Graph) String() string {
	return X.edgeListString()
}
