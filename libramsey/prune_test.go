package libramsey_test

import (
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/ramsey-systems/goramsey/goramsey"
	"github.com/ramsey-systems/goramsey/libramsey"
)

func TestNewPrunerRejectsBadPageCounts(t *testing.T) {
	for _, pair := range [][2]int{{0, 8}, {2, 0}, {-1, -1}} {
		_, err := libramsey.NewPruner(pair[0], pair[1], nil)
		if !errors.Is(err, goramsey.ErrBadPageCount) {
			t.Fatalf("(%d,%d): err %v", pair[0], pair[1], err)
		}
	}
}

func TestPrunePredicates(t *testing.T) {
	var counts goramsey.SurvivorCounts
	p, err := libramsey.NewPruner(2, 2, &counts)
	if err != nil {
		t.Fatal(err)
	}

	// Spine 1-2 with pages 3 and 4: a B2 in color 0
	X := mustParse(t, "1-2,1-3,2-3,1-4,2-4")
	if !p.Preprune(X, 4, 10) {
		t.Fatal("Preprune missed a direct B2")
	}
	X.Reclaim()

	// Empty graph on 5 vertices: the complement is K5, full of B2s
	X = mustParse(t, "1,2,3,4,5")
	before := X.MakeCopy()
	if p.Preprune(X, 5, 10) {
		t.Fatal("Preprune fired on an empty color 0")
	}
	if !p.Prune(X, 5, 10) {
		t.Fatal("Prune missed a B2 in the complement")
	}
	if !X.IsEqual(before) {
		t.Fatal("Prune did not restore the graph")
	}
	if counts.Count(5) != 0 {
		t.Fatal("pruned graph counted as survivor")
	}
	X.Reclaim()
	before.Reclaim()

	// C5 is self-complementary and has no B2 in either color
	X = mustParse(t, "1-2-3-4-5-1")
	before = X.MakeCopy()
	if p.Preprune(X, 5, 10) {
		t.Fatal("Preprune fired on C5")
	}
	if p.Prune(X, 5, 10) {
		t.Fatal("Prune fired on C5")
	}
	if !X.IsEqual(before) {
		t.Fatal("Prune did not restore the graph")
	}
	if counts.Count(5) != 1 {
		t.Fatalf("survivor count %d", counts.Count(5))
	}

	// A second survival at the same order increments again
	if p.Prune(X, 5, 10) {
		t.Fatal("Prune verdict changed")
	}
	if counts.Count(5) != 2 {
		t.Fatalf("survivor count %d", counts.Count(5))
	}
	X.Reclaim()
	before.Reclaim()
}

// With page counts beyond what 4 vertices can form, an edgeless graph passes
// both predicates and counts as a survivor.
func TestPruneEdgelessSurvives(t *testing.T) {
	var counts goramsey.SurvivorCounts
	p, err := libramsey.NewPruner(8, 8, &counts)
	if err != nil {
		t.Fatal(err)
	}

	X := mustParse(t, "1,2,3,4")
	defer X.Reclaim()

	if p.Preprune(X, 4, 10) {
		t.Fatal("Preprune fired")
	}
	if p.Prune(X, 4, 10) {
		t.Fatal("Prune fired")
	}
	if counts.Count(4) != 1 {
		t.Fatalf("survivor count %d", counts.Count(4))
	}
}

func TestPruneCallContract(t *testing.T) {
	p, _ := libramsey.NewPruner(2, 8, nil)
	X := mustParse(t, "1-2-3")
	defer X.Reclaim()

	mustPanic := func(fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Fatal("no panic")
			}
		}()
		fn()
	}

	mustPanic(func() { p.Preprune(X, 4, 10) }) // order mismatch
	mustPanic(func() { p.Prune(X, 3, 2) })     // n > maxn
	mustPanic(func() { p.Preprune(X, 0, 10) })
}

func TestPrunerSummary(t *testing.T) {
	var counts goramsey.SurvivorCounts
	p, _ := libramsey.NewPruner(2, 2, &counts)

	X := mustParse(t, "1-2-3-4-5-1")
	p.Prune(X, 5, 10)
	X.Reclaim()

	var b strings.Builder
	p.Summary(&b, 42, time.Second)
	out := b.String()
	if !strings.Contains(out, "graphs processed: 42") {
		t.Fatalf("summary:\n%s", out)
	}
	if !strings.Contains(out, "Nv=5, num ramsey graphs generated: 1") {
		t.Fatalf("summary:\n%s", out)
	}
}
