package goramsey_test

import (
	"strings"
	"testing"

	"github.com/ramsey-systems/goramsey/goramsey"
)

func TestVtxSetBasics(t *testing.T) {
	var a goramsey.VtxSet

	if !a.IsEmpty() {
		t.Fatal("zero value not empty")
	}

	// Straddle the word boundary on purpose
	for _, i := range []int{0, 5, 63, 64, 100, 127} {
		a.Set(i)
	}
	if a.Count() != 6 {
		t.Fatalf("count %d", a.Count())
	}
	if !a.Test(63) || !a.Test(64) || a.Test(62) {
		t.Fatal("word boundary bits wrong")
	}

	a.Unset(63)
	if a.Test(63) || a.Count() != 5 {
		t.Fatal("unset failed")
	}

	want := []int{0, 5, 64, 100, 127}
	got := []int{}
	for i := a.NextBit(-1); i >= 0; i = a.NextBit(i) {
		got = append(got, i)
	}
	if len(got) != len(want) {
		t.Fatalf("walk %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("walk %v", got)
		}
	}

	if a.NextBit(127) != -1 {
		t.Fatal("NextBit past end")
	}
	if a.String() != "{0 5 64 100 127}" {
		t.Fatalf("string %q", a.String())
	}
}

func TestVtxSetAnd(t *testing.T) {
	var a, b goramsey.VtxSet
	a.Set(1)
	a.Set(64)
	a.Set(70)
	b.Set(64)
	b.Set(70)
	b.Set(99)

	ab := a.And(b)
	if ab.Count() != 2 || !ab.Test(64) || !ab.Test(70) {
		t.Fatalf("and %v", ab)
	}

	// a and b untouched
	if a.Count() != 3 || b.Count() != 3 {
		t.Fatal("operands modified")
	}
}

func TestVtxSetFlipBelow(t *testing.T) {
	var a goramsey.VtxSet
	a.Set(3)
	a.Set(68)

	a.FlipBelow(70)
	if a.Test(3) || a.Test(68) {
		t.Fatal("set bits not flipped")
	}
	if !a.Test(0) || !a.Test(69) || a.Test(70) {
		t.Fatal("flip range wrong")
	}
	if a.Count() != 68 {
		t.Fatalf("count %d", a.Count())
	}

	a.FlipBelow(70)
	if a.Count() != 2 || !a.Test(3) || !a.Test(68) {
		t.Fatal("flip not an involution")
	}
}

func TestSurvivorCounts(t *testing.T) {
	var sc goramsey.SurvivorCounts

	sc.Record(3)
	sc.Record(3)
	sc.Record(5)
	if sc.Count(3) != 2 || sc.Count(4) != 0 || sc.Count(5) != 1 {
		t.Fatal("record miscounted")
	}

	var other goramsey.SurvivorCounts
	other.Record(3)
	other.Record(6)
	sc.Merge(&other)
	if sc.Count(3) != 3 || sc.Count(6) != 1 {
		t.Fatal("merge miscounted")
	}

	var b strings.Builder
	sc.WriteReport(&b, 6)
	report := b.String()
	if !strings.Contains(report, "Nv=3, num ramsey graphs generated: 3") {
		t.Fatalf("report:\n%s", report)
	}
	if !strings.Contains(report, "Nv=4, num ramsey graphs generated: 0") {
		t.Fatalf("report:\n%s", report)
	}

	sc.Reset()
	if sc.Count(3) != 0 {
		t.Fatal("reset failed")
	}
}
