package catalog

import (
	"encoding/binary"
	"runtime"

	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"

	"github.com/ramsey-systems/goramsey/goramsey"
)

/***

Catalog database format:

	gCatalogStateKey => catalogState

	CanonicalEncoding => nil
		...

Each witness entry's key is its canonical encoding: one order byte followed
by the packed upper-triangle bitmap of the minimal relabeling.  The leading
order byte means a single-byte prefix scan enumerates all witnesses of one
order, and orders come out ascending in a full iteration.

***/

var (
	gCatalogStateKey = []byte{0x00, 0x00, 0x01}
)

const (
	kMajorVers = 2026
	kMinorVers = 1
)

// catalogState is the persisted db header.  Encoding is fixed-width
// big-endian: MajorVers, MinorVers, MaxOrder (uint16 each), then one uint64
// witness count per order 0..MaxOrder.
type catalogState struct {
	MajorVers    uint16
	MinorVers    uint16
	MaxOrder     uint16
	NumWitnesses []uint64
}

func (state *catalogState) Marshal(in []byte) []byte {
	out := binary.BigEndian.AppendUint16(in, state.MajorVers)
	out = binary.BigEndian.AppendUint16(out, state.MinorVers)
	out = binary.BigEndian.AppendUint16(out, state.MaxOrder)
	for _, count := range state.NumWitnesses {
		out = binary.BigEndian.AppendUint64(out, count)
	}
	return out
}

func (state *catalogState) Unmarshal(val []byte) error {
	if len(val) < 6 {
		return errors.Wrap(goramsey.ErrBadEncoding, "catalog state header")
	}
	state.MajorVers = binary.BigEndian.Uint16(val[0:2])
	state.MinorVers = binary.BigEndian.Uint16(val[2:4])
	state.MaxOrder = binary.BigEndian.Uint16(val[4:6])
	val = val[6:]
	if len(val) != 8*int(state.MaxOrder+1) {
		return errors.Wrap(goramsey.ErrBadEncoding, "catalog state counts")
	}
	state.NumWitnesses = make([]uint64, state.MaxOrder+1)
	for i := range state.NumWitnesses {
		state.NumWitnesses[i] = binary.BigEndian.Uint64(val[8*i:])
	}
	return nil
}

// catalog is a db wrapper for a witness catalog
type catalog struct {
	ctx        goramsey.CatalogContext
	readOnly   bool
	stateDirty bool
	state      catalogState
	db         *badger.DB
}

func OpenCatalog(ctx goramsey.CatalogContext, opts goramsey.CatalogOpts) (goramsey.Catalog, error) {

	if opts.MaxOrder > goramsey.MaxVtx {
		return nil, errors.Wrapf(goramsey.ErrBadCatalogParam, "MaxOrder %d exceeds %d", opts.MaxOrder, goramsey.MaxVtx)
	}

	cat := &catalog{
		ctx:      ctx,
		readOnly: opts.ReadOnly,
	}

	dbOpts := badger.DefaultOptions(opts.DbPathName)
	dbOpts.ReadOnly = opts.ReadOnly
	dbOpts.DetectConflicts = false // single writer, so disable for performance
	dbOpts.Logger = nil

	// Badger for windows currently does not support read-only mode
	if runtime.GOOS == "windows" {
		dbOpts.ReadOnly = false
	}

	var err error

	if len(opts.DbPathName) == 0 {
		if opts.ReadOnly {
			return nil, errors.Wrap(goramsey.ErrBadCatalogParam, "DbPathName must be specified for read-only catalog")
		}
		dbOpts.InMemory = true
	}

	cat.db, err = badger.Open(dbOpts)
	if err != nil {
		return nil, err
	}

	// Once the db is open, the catalog ctx blocks until the catalog closes
	ctx.AttachCatalog(cat)

	err = cat.loadState()
	if err == badger.ErrKeyNotFound {
		err = nil
		maxOrder := opts.MaxOrder
		if maxOrder <= 0 {
			maxOrder = goramsey.MaxVtx
		}
		cat.stateDirty = true
		cat.state.MajorVers = kMajorVers
		cat.state.MinorVers = kMinorVers
		cat.state.MaxOrder = uint16(maxOrder)
		cat.state.NumWitnesses = make([]uint64, maxOrder+1)
	}

	if err == nil {
		if cat.state.MajorVers != kMajorVers || cat.state.MinorVers != kMinorVers {
			err = errors.New("catalog version is incompatible")
		} else if opts.MaxOrder > int(cat.state.MaxOrder) {
			// An unset MaxOrder accepts whatever an existing catalog holds;
			// only an explicit request larger than the stored bound fails.
			err = errors.New("catalog's MaxOrder is below the requested MaxOrder")
		}
	}

	if err != nil {
		cat.Close()
		return nil, err
	}

	return cat, nil
}

func (cat *catalog) loadState() error {
	err := cat.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gCatalogStateKey)
		if err == nil {
			err = item.Value(func(val []byte) error {
				return cat.state.Unmarshal(val)
			})
		}
		return err
	})
	return err
}

func (cat *catalog) flushState() error {
	if cat.stateDirty && !cat.readOnly {
		err := cat.db.Update(func(txn *badger.Txn) error {
			var buf [1024]byte
			return txn.Set(gCatalogStateKey, cat.state.Marshal(buf[:0]))
		})
		if err != nil {
			return errors.Wrap(err, "flushing catalog state")
		}
		cat.stateDirty = false
	}
	return nil
}

func (cat *catalog) Close() error {
	err := cat.flushState()
	if cat.db != nil {
		cat.db.Close()
		cat.db = nil
		cat.ctx.DetachCatalog(cat)
		cat.ctx = nil
	}
	return err
}

func (cat *catalog) IsReadOnly() bool {
	return cat.readOnly
}

func (cat *catalog) NumWitnesses(order int) int64 {
	if order <= 0 || order >= len(cat.state.NumWitnesses) {
		return 0
	}
	return int64(cat.state.NumWitnesses[order])
}

// TryAddGraph adds the given graph if no isomorphic copy is present.
//
// If true is returned, X was not present and was added.
func (cat *catalog) TryAddGraph(X goramsey.WitnessState) bool {
	if cat.readOnly {
		return false
	}

	order := X.VtxCount()
	if order <= 0 || order >= len(cat.state.NumWitnesses) {
		return false
	}

	var keyBuf [256]byte
	key := X.AppendCanonical(keyBuf[:0])

	txn := cat.db.NewTransaction(true)
	defer txn.Discard()

	_, err := txn.Get(key)
	if err != badger.ErrKeyNotFound {
		if err != nil {
			panic(err)
		}
		return false
	}

	if err := txn.Set(key, nil); err != nil {
		panic(err)
	}
	if err := txn.Commit(); err != nil {
		panic(err)
	}

	cat.state.NumWitnesses[order]++
	cat.stateDirty = true
	return true
}

// Select fires onHit with every witness in [sel.MinOrder, sel.MaxOrder],
// ascending by order.
//
// Each emitted Canonical slice is a copy the receiver may retain.
func (cat *catalog) Select(sel goramsey.WitnessSelector, onHit goramsey.OnWitnessHit) {
	if sel.MinOrder < 1 {
		sel.MinOrder = 1
	}
	if sel.MaxOrder <= 0 || sel.MaxOrder > goramsey.MaxVtx {
		sel.MaxOrder = goramsey.MaxVtx
	}

	txn := cat.db.NewTransaction(false)
	defer txn.Discard()

	it := txn.NewIterator(badger.IteratorOptions{
		PrefetchValues: false,
	})
	defer it.Close()

	minKey := [1]byte{byte(sel.MinOrder)}
	for it.Seek(minKey[:]); it.Valid(); it.Next() {
		curKey := it.Item().Key()
		if len(curKey) == 0 {
			continue
		}
		order := int(curKey[0])
		if order > sel.MaxOrder {
			break
		}
		// The state header key sorts before every witness key
		if order < sel.MinOrder {
			continue
		}
		onHit <- goramsey.Witness{
			Order:     order,
			Canonical: append([]byte(nil), curKey...),
		}
	}
}
