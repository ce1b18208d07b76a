package maxflow

import "github.com/katalvlaran/flownet/graph"

// residualStore holds the residual capacity of every arc, forward and
// reverse, in one dense table indexed by signed arc id.
//
// For a forward arc a, residual(a) = capacity(a) - flow(a), and for its
// reverse ^a the capacity is zero by definition, so residual(^a) = flow(a).
// The pair therefore encodes both the constant capacity
// (residual(a) + residual(^a)) and the current flow without a separate
// flow table, and a push is one paired update that preserves the sum.
type residualStore struct {
	offset int            // arc reservation; index of forward arc 0
	table  []FlowQuantity // len 2*offset: reverse arcs below, forward above
}

// init sizes the store for arcReserve forward arcs and zeroes it.
func (r *residualStore) init(arcReserve int) {
	r.offset = arcReserve
	r.table = make([]FlowQuantity, 2*arcReserve)
}

// residual returns the residual capacity of the signed arc a.
func (r *residualStore) residual(a graph.ArcID) FlowQuantity {
	return r.table[int(a)+r.offset]
}

// set overwrites the residual capacity of the signed arc a.
func (r *residualStore) set(a graph.ArcID, q FlowQuantity) {
	r.table[int(a)+r.offset] = q
}

// push moves q units of flow across a: the residual of a shrinks while the
// residual of ^a grows by the same amount. q may be negative (cycle
// cancellation pushes flow backwards); the caller guarantees both residuals
// stay nonnegative.
func (r *residualStore) push(q FlowQuantity, a graph.ArcID) {
	r.table[int(a)+r.offset] -= q
	r.table[int(^a)+r.offset] += q
}

// setCapacityAndClearFlow resets the forward arc a to capacity q with no
// flow on it.
func (r *residualStore) setCapacityAndClearFlow(a graph.ArcID, q FlowQuantity) {
	r.set(a, q)
	r.set(^a, 0)
}
