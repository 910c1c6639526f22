package goramsey

import "errors"

// Errors
var (
	ErrBadPattern      = errors.New("bad pattern spec")
	ErrBadPageCount    = errors.New("page count must be positive")
	ErrBadOrder        = errors.New("graph order out of range")
	ErrBadGraphExpr    = errors.New("bad graph expression")
	ErrBadVtxID        = errors.New("bad vertex ID")
	ErrBadEncoding     = errors.New("bad witness encoding")
	ErrBadCatalogParam = errors.New("bad catalog param")
	ErrCatalogReadOnly = errors.New("catalog is read-only")
	ErrBooksOnly       = errors.New("exhaustive search supports book patterns only")
)
