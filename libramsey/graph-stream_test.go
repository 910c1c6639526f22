package libramsey_test

import (
	"strings"
	"testing"

	"github.com/ramsey-systems/goramsey/goramsey"
	"github.com/ramsey-systems/goramsey/libramsey"
)

func TestStreamGraphAndPull(t *testing.T) {
	X := mustParse(t, "1-2-3")
	defer X.Reclaim()

	stream := libramsey.StreamGraph(X)
	Y := stream.PullGraph()
	if Y == nil || !Y.IsEqual(X) {
		t.Fatal("pulled graph differs")
	}
	Y.Reclaim()
	if Z := stream.PullGraph(); Z != nil {
		t.Fatal("stream not closed after single graph")
	}
}

func TestStreamPrintStage(t *testing.T) {
	X := mustParse(t, "1-2")
	defer X.Reclaim()

	var b strings.Builder
	n := libramsey.StreamGraph(X).
		Print(&b, goramsey.PrintOpts{Label: "pair", EdgeList: true}).
		PullAll()
	if n != 1 {
		t.Fatalf("pulled %d", n)
	}
	if b.String() != "pair,000001,n=2,1-2\n" {
		t.Fatalf("printed %q", b.String())
	}
}

type stubCatalog struct {
	entries []goramsey.Witness
}

func (cat *stubCatalog) TryAddGraph(X goramsey.WitnessState) bool { return false }
func (cat *stubCatalog) IsReadOnly() bool                         { return true }
func (cat *stubCatalog) NumWitnesses(order int) int64             { return 0 }
func (cat *stubCatalog) Close() error                             { return nil }

func (cat *stubCatalog) Select(sel goramsey.WitnessSelector, onHit goramsey.OnWitnessHit) {
	for _, w := range cat.entries {
		onHit <- w
	}
}

func TestSelectSkipsUnreadableEntries(t *testing.T) {
	X := mustParse(t, "1-2-3")
	defer X.Reclaim()

	cat := &stubCatalog{
		entries: []goramsey.Witness{
			{Order: 5, Canonical: []byte{5}}, // truncated encoding
			{Order: 3, Canonical: X.AppendCanonical(nil)},
		},
	}

	n := libramsey.SelectFromCatalog(cat, goramsey.WitnessSelector{}).PullAll()
	if n != 1 {
		t.Fatalf("pulled %d", n)
	}
}

func TestStreamAddToDedups(t *testing.T) {
	adder := &memAdder{seen: map[string]struct{}{}}

	X := mustParse(t, "1-2-3")
	defer X.Reclaim()

	out := libramsey.NewGraphStream()
	go func() {
		out.PushGraph(X)
		out.PushGraph(X) // duplicate, dropped by the adder
		out.Close()
	}()

	n := out.AddTo(adder).PullAll()
	if n != 1 {
		t.Fatalf("forwarded %d", n)
	}
	if len(adder.seen) != 1 {
		t.Fatalf("added %d", len(adder.seen))
	}
}
