package goramsey

import (
	"math/bits"
	"strconv"
	"strings"
)

const (
	// MaxVtx is the largest graph order the toolkit supports.
	MaxVtx = 128

	wordBits = 64
	vtxWords = MaxVtx / wordBits
)

// VtxSet is a fixed-capacity set of vertex indices in [0, MaxVtx), backed by
// an array of machine words.  The zero value is the empty set.  It is the
// adjacency row type for every graph in this module; intersection, population
// count, and ascending bit scan are the only primitives the detectors need.
type VtxSet [vtxWords]uint64

func (a *VtxSet) Set(i int) {
	a[i/wordBits] |= 1 << uint(i%wordBits)
}

func (a *VtxSet) Unset(i int) {
	a[i/wordBits] &^= 1 << uint(i%wordBits)
}

func (a VtxSet) Test(i int) bool {
	return a[i/wordBits]&(1<<uint(i%wordBits)) != 0
}

// And returns the intersection of a and b.
func (a VtxSet) And(b VtxSet) VtxSet {
	var out VtxSet
	for w := range a {
		out[w] = a[w] & b[w]
	}
	return out
}

// Count returns the number of vertices in the set.
func (a VtxSet) Count() int {
	n := 0
	for _, w := range a {
		n += bits.OnesCount64(w)
	}
	return n
}

// NextBit returns the lowest set bit strictly after pos, or -1 when none
// remains.  Pass pos = -1 to scan from the start.  Repeated calls with the
// previous result walk the set in ascending order.
func (a VtxSet) NextBit(pos int) int {
	from := pos + 1
	if from >= MaxVtx {
		return -1
	}
	w := from / wordBits
	word := a[w] & (^uint64(0) << uint(from%wordBits))
	for {
		if word != 0 {
			return w*wordBits + bits.TrailingZeros64(word)
		}
		w++
		if w >= vtxWords {
			return -1
		}
		word = a[w]
	}
}

// FlipBelow complements the membership of every index in [0, n).
func (a *VtxSet) FlipBelow(n int) {
	for w := 0; n > 0 && w < vtxWords; w++ {
		if n >= wordBits {
			a[w] = ^a[w]
			n -= wordBits
		} else {
			a[w] ^= (uint64(1) << uint(n)) - 1
			n = 0
		}
	}
}

func (a VtxSet) IsEmpty() bool {
	for _, w := range a {
		if w != 0 {
			return false
		}
	}
	return true
}

func (a VtxSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i := a.NextBit(-1); i >= 0; i = a.NextBit(i) {
		if b.Len() > 1 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(i))
	}
	b.WriteByte('}')
	return b.String()
}
