package libramsey

// ContainsBook reports whether X contains a book with k or more pages: two
// adjacent "spine" vertices sharing at least k common neighbors.
//
// Precondition: the subgraph induced on the vertices before newVtx is already
// known to be book-free for this k.  Any book in X must then involve newVtx,
// either as a spine vertex or as a page, so every qualifying spine edge has at
// least one endpoint in the neighborhood of newVtx and only those spines are
// scanned.  Detection is existential; the scan order does not affect the
// result.
func (X *Graph) ContainsBook(newVtx, k int) bool {
	if k <= 0 {
		return true
	}
	adjNew := X.Row(newVtx)

	for v1 := adjNew.NextBit(-1); v1 >= 0; v1 = adjNew.NextBit(v1) {
		neighV1 := X.rows[v1]

		// Spine (newVtx, v1): pages are the common neighbors of both.
		if neighV1.And(adjNew).Count() >= k {
			return true
		}

		// Spine (v1, v2) with newVtx as one of the pages.  Scanning v2
		// upward from v1 is enough: a spine pair with v2 < v1 is met
		// again with the roles reversed when the outer loop reaches v2.
		for v2 := neighV1.NextBit(v1); v2 >= 0; v2 = neighV1.NextBit(v2) {
			if neighV1.And(X.rows[v2]).Count() >= k {
				return true
			}
		}
	}
	return false
}
