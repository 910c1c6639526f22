package libramsey

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/ramsey-systems/goramsey/goramsey"
)

// AppendCanonical appends a canonical encoding of X: one order byte followed
// by the lexicographically smallest packed upper-triangle bitmap over all
// vertex relabelings.  Isomorphic graphs produce identical bytes.
//
// The minimization walks every permutation, so this is only suitable for the
// small orders the exhaustive search operates at.  Candidate orderings are
// abandoned as soon as a completed byte of the partial encoding exceeds the
// best bitmap found so far.
func (X *Graph) AppendCanonical(in []byte) []byte {
	n := X.vtxCount
	out := append(in, byte(n))
	if n < 2 {
		return out
	}

	encLen := (n*(n-1)/2 + 7) / 8

	var cc canonCtx
	cc.X = X
	cc.n = n
	cc.best = cc.bestBuf[:encLen]
	for i := range cc.best {
		cc.best[i] = 0xFF
	}
	cc.enc = cc.encBuf[:encLen]

	var perm [goramsey.MaxVtx]int
	var used [goramsey.MaxVtx]bool
	cc.place(0, 0, perm[:n], used[:n])

	return append(out, cc.best...)
}

type canonCtx struct {
	X       *Graph
	n       int
	best    []byte
	enc     []byte
	bestBuf [goramsey.MaxVtx * goramsey.MaxVtx / 16]byte
	encBuf  [goramsey.MaxVtx * goramsey.MaxVtx / 16]byte
}

// place assigns new label `level` to each unused vertex in turn, appending
// that vertex's edge bits toward the already placed vertices.  Every bit in
// [0, bitPos) has been written by the current path, so completed bytes are
// safe to compare against best; trailing pad bits of the last byte are never
// written and stay zero.
func (cc *canonCtx) place(level, bitPos int, perm []int, used []bool) {
	if level == cc.n {
		if bytes.Compare(cc.enc, cc.best) < 0 {
			copy(cc.best, cc.enc)
		}
		return
	}

	for cand := 0; cand < cc.n; cand++ {
		if used[cand] {
			continue
		}
		perm[level] = cand
		used[cand] = true

		row := cc.X.rows[cand]
		pos := bitPos
		worse := false
		for i := 0; i < level; i++ {
			byteIdx := pos >> 3
			mask := byte(0x80) >> uint(pos&7)
			cc.enc[byteIdx] &^= mask
			if row.Test(perm[i]) {
				cc.enc[byteIdx] |= mask
			}
			if pos&7 == 7 && prefixAbove(cc.enc, cc.best, byteIdx) {
				worse = true
				break
			}
			pos++
		}
		if !worse {
			cc.place(level+1, pos, perm, used)
		}

		used[cand] = false
	}
}

// prefixAbove reports whether enc[:upto+1] exceeds best[:upto+1].
func prefixAbove(enc, best []byte, upto int) bool {
	for i := 0; i <= upto; i++ {
		if enc[i] != best[i] {
			return enc[i] > best[i]
		}
	}
	return false
}

// InitFromCanonical rebuilds a graph from an encoding produced by
// AppendCanonical (or any graph encoded in the same layout).
func (X *Graph) InitFromCanonical(enc []byte) error {
	X.Init(nil)
	if len(enc) < 1 {
		return errors.Wrap(goramsey.ErrBadEncoding, "empty")
	}
	n := int(enc[0])
	if n > goramsey.MaxVtx {
		return errors.Wrapf(goramsey.ErrBadEncoding, "order %d exceeds max %d", n, goramsey.MaxVtx)
	}
	encLen := 0
	if n >= 2 {
		encLen = (n*(n-1)/2 + 7) / 8
	}
	if len(enc) != 1+encLen {
		return errors.Wrapf(goramsey.ErrBadEncoding, "length %d for order %d", len(enc), n)
	}

	for v := 0; v < n; v++ {
		X.AddVtx(goramsey.VtxSet{})
	}
	pos := 0
	body := enc[1:]
	for v := 1; v < n; v++ {
		for u := 0; u < v; u++ {
			if body[pos>>3]&(byte(0x80)>>uint(pos&7)) != 0 {
				X.SetEdge(u, v)
			}
			pos++
		}
	}
	return nil
}
