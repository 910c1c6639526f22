package goramsey

import "fmt"

// PatternKind names the family of forbidden monochromatic subgraphs.
type PatternKind int32

const (
	Books PatternKind = iota
	Wheels
)

func (kind PatternKind) String() string {
	switch kind {
	case Books:
		return "B"
	case Wheels:
		return "W"
	}
	return "?"
}

// PatternSpec is a two-color forbidden pattern, e.g. B2:B8 or W5:W7.
//
// For books, Size is the page count (B_k has a spine edge plus k pages).
// For wheels, Size is the total vertex count (W_k is a hub plus a (k-1)-cycle).
type PatternSpec struct {
	Kind  PatternKind
	Size0 int // forbidden size in color 0
	Size1 int // forbidden size in color 1
}

func (ps PatternSpec) String() string {
	k := ps.Kind.String()
	return fmt.Sprintf("%s%d:%s%d", k, ps.Size0, k, ps.Size1)
}

// WitnessState is the read surface a catalog needs from a stored graph.
type WitnessState interface {
	VtxCount() int

	// AppendCanonical appends a canonical encoding of the graph: two
	// isomorphic graphs produce identical bytes.
	AppendCanonical(in []byte) []byte
}

// GraphAdder accepts graphs into a collection, deduplicating by canonical form.
type GraphAdder interface {

	// TryAddGraph adds X if no isomorphic copy is present.
	// Returns true if X did not exist and was added.
	TryAddGraph(X WitnessState) bool
}

// Witness is a catalog entry: a canonically encoded graph of a given order.
type Witness struct {
	Order     int
	Canonical []byte
}

// OnWitnessHit receives catalog entries matching a selection.
// Each Canonical slice is an independent copy the receiver may retain.
type OnWitnessHit chan<- Witness

// WitnessSelector bounds a catalog scan by graph order.
type WitnessSelector struct {
	MinOrder int
	MaxOrder int
}

// CatalogOpts specifies params for opening a witness catalog.
type CatalogOpts struct {
	DbPathName string // omit for an in-memory db
	ReadOnly   bool   // open in read-only mode
	MaxOrder   int    // largest graph order the catalog will hold
}

// Catalog wraps a database of canonical witness encodings.
type Catalog interface {
	GraphAdder

	// Returns true if this catalog was opened for read-only access.
	IsReadOnly() bool

	// NumWitnesses returns the number of stored graphs of the given order.
	// An out of bounds order returns 0.
	NumWitnesses(order int) int64

	// Select fires onHit with every stored witness matching sel,
	// in ascending order of graph order.
	Select(sel WitnessSelector, onHit OnWitnessHit)

	Close() error
}

// CatalogContext is a container for open / active Catalog instances.
type CatalogContext interface {

	// Attaches the given Catalog to this context.
	AttachCatalog(cat Catalog)

	// Detaches the given Catalog from this context.
	DetachCatalog(cat Catalog)

	// Signals all open catalogs to close, then closes.
	Close()

	// Signals when Close() has completed and all open Catalogs have been closed.
	Done() <-chan struct{}
}

// PrintOpts specifies what is emitted when printing a graph.
type PrintOpts struct {
	Label    string // prefix label
	EdgeList bool   // if set, prints the one-line edge-list expression
	Matrix   bool   // if set, prints the adjacency matrix
}

// DefaultPrintOpts prints the compact edge-list form.
var DefaultPrintOpts = PrintOpts{
	EdgeList: true,
}
