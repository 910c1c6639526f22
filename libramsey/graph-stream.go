package libramsey

import (
	"fmt"
	"io"
	"strings"

	"github.com/plan-systems/klog"

	"github.com/ramsey-systems/goramsey/goramsey"
)

// GraphStream is a channel pipeline of Graph instances.  Ownership of each
// Graph travels with it: a stage that drops a graph must Reclaim it.
type GraphStream struct {
	Outlet chan *Graph
}

func NewGraphStream() *GraphStream {
	stream := &GraphStream{
		Outlet: make(chan *Graph),
	}
	return stream
}

// StreamGraph returns a stream that emits a single copy of X and closes.
func StreamGraph(X *Graph) *GraphStream {
	next := NewGraphStream()

	go func() {
		next.Outlet <- X.MakeCopy()
		next.Close()
	}()

	return next
}

func (stream *GraphStream) Close() {
	if stream.Outlet != nil {
		close(stream.Outlet)
	}
}

// PushGraph sends a copy of X downstream.
func (stream *GraphStream) PushGraph(X *Graph) {
	stream.Outlet <- X.MakeCopy()
}

func (stream *GraphStream) PullGraph() *Graph {
	X := <-stream.Outlet
	return X
}

// PullAll drains the stream, reclaiming every graph, and returns the count.
func (stream *GraphStream) PullAll() int {
	count := int(0)
	for X := range stream.Outlet {
		count++
		X.Reclaim()
	}
	return count
}

// Print writes each passing graph to out and forwards it downstream.
func (stream *GraphStream) Print(out io.Writer, opts goramsey.PrintOpts) *GraphStream {
	next := &GraphStream{
		Outlet: make(chan *Graph, 1),
	}

	go func() {
		buf := strings.Builder{}
		buf.Grow(256)

		count := 0
		for X := range stream.Outlet {
			if len(opts.Label) > 0 {
				buf.WriteString(opts.Label)
				buf.WriteByte(',')
			}

			count++
			fmt.Fprintf(&buf, "%06d,", count)
			X.WriteAsString(&buf, goramsey.PrintOpts{
				EdgeList: opts.EdgeList,
				Matrix:   opts.Matrix,
			})
			buf.WriteByte('\n')
			io.WriteString(out, buf.String())
			buf.Reset()
			next.Outlet <- X
		}
		next.Close()
	}()

	return next
}

// AddTo offers each passing graph to target, forwarding only the ones that
// were not already present.
func (stream *GraphStream) AddTo(target goramsey.GraphAdder) *GraphStream {
	next := &GraphStream{
		Outlet: make(chan *Graph, 1),
	}

	go func() {
		for X := range stream.Outlet {
			wasAdded := target.TryAddGraph(X)
			if wasAdded {
				next.Outlet <- X
			} else {
				X.Reclaim()
			}
		}
		next.Close()
	}()

	return next
}

// SelectFromCatalog streams every catalog witness matching sel, decoded back
// into Graph instances.
func SelectFromCatalog(cat goramsey.Catalog, sel goramsey.WitnessSelector) *GraphStream {
	next := &GraphStream{
		Outlet: make(chan *Graph, 1),
	}

	onHit := make(chan goramsey.Witness, 4)

	go func() {
		cat.Select(sel, onHit)
		close(onHit)
	}()

	go func() {
		for hit := range onHit {
			X := NewGraph(nil)
			if err := X.InitFromCanonical(hit.Canonical); err != nil {
				X.Reclaim()
				klog.Errorf("skipping unreadable catalog entry of order %d: %v", hit.Order, err)
				continue
			}
			next.Outlet <- X
		}
		next.Close()
	}()

	return next
}
