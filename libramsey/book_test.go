package libramsey_test

import (
	"testing"

	"github.com/ramsey-systems/goramsey/goramsey"
	"github.com/ramsey-systems/goramsey/libramsey"
)

// naiveContainsBook checks every adjacent pair as a spine with no shortcuts.
func naiveContainsBook(X *libramsey.Graph, k int) bool {
	if k <= 0 {
		return true
	}
	n := X.VtxCount()
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if !X.HasEdge(u, v) {
				continue
			}
			common := 0
			for w := 0; w < n; w++ {
				if w != u && w != v && X.HasEdge(u, w) && X.HasEdge(v, w) {
					common++
				}
			}
			if common >= k {
				return true
			}
		}
	}
	return false
}

func TestContainsBookDirect(t *testing.T) {
	// Spine 1-2 with pages 3 and 4
	X := mustParse(t, "1-2,1-3,2-3,1-4,2-4")
	defer X.Reclaim()

	if !X.ContainsBook(3, 2) {
		t.Fatal("B2 not found")
	}
	if X.ContainsBook(3, 3) {
		t.Fatal("phantom B3")
	}

	// Removing one page edge leaves only a single page per spine
	X.ClearEdge(1, 3)
	if X.ContainsBook(3, 2) {
		t.Fatal("B2 found after page removed")
	}
	if !X.ContainsBook(3, 1) {
		t.Fatal("B1 not found")
	}
}

func TestContainsBookSingleVertex(t *testing.T) {
	X := libramsey.NewGraph(nil)
	defer X.Reclaim()
	X.AddVtx(goramsey.VtxSet{})
	if X.ContainsBook(0, 2) {
		t.Fatal("book in a single vertex")
	}
}

func TestContainsBookComplete(t *testing.T) {
	// In K5 every edge has 3 common neighbors
	X := mustParse(t, "1-2,1-3,1-4,1-5,2-3,2-4,2-5,3-4,3-5,4-5")
	defer X.Reclaim()

	if !X.ContainsBook(4, 3) {
		t.Fatal("B3 not found in K5")
	}
	if X.ContainsBook(4, 4) {
		t.Fatal("phantom B4 in K5")
	}
}

func TestContainsBookZeroPages(t *testing.T) {
	X := mustParse(t, "1,2")
	defer X.Reclaim()
	if !X.ContainsBook(1, 0) {
		t.Fatal("k=0 must always hold")
	}
}

func TestContainsBookNeedsNewVertex(t *testing.T) {
	// The book lives entirely among vertices 1..4; vertex 5 is isolated.
	// With 5 as the newest vertex there is nothing incident to check.
	X := mustParse(t, "1-2,1-3,2-3,1-4,2-4,5")
	defer X.Reclaim()

	if X.ContainsBook(4, 2) {
		t.Fatal("detector looked beyond the newest vertex")
	}
}

// The incremental detector assumes every proper prefix of the vertex order is
// book-free.  Walk all graphs up to order 6 the way the search builds them,
// and compare the incremental verdict against the naive recount at each step.
func TestContainsBookMatchesNaive(t *testing.T) {
	for k := 1; k <= 4; k++ {
		X := libramsey.NewGraph(nil)
		X.AddVtx(goramsey.VtxSet{})
		checked := 0
		var walk func()
		walk = func() {
			n := X.VtxCount()
			if n >= 6 {
				return
			}
			for mask := uint64(0); mask < 1<<uint(n); mask++ {
				var adj goramsey.VtxSet
				adj[0] = mask
				X.AddVtx(adj)
				checked++

				got := X.ContainsBook(n, k)
				want := naiveContainsBook(X, k)
				if got != want {
					t.Fatalf("k=%d graph %v: incremental %v, naive %v", k, X, got, want)
				}
				if !got {
					walk()
				}
				X.PopVtx()
			}
		}
		walk()
		X.Reclaim()
		if checked == 0 {
			t.Fatal("walk checked nothing")
		}
	}
}
