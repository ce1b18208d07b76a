// Package graph provides a compact, arc-indexed directed graph designed for
// residual-network algorithms.
//
// # Representation
//
// Every arc added with AddArc is a *forward* arc and receives a nonnegative
// ArcID. Its paired *reverse* arc exists implicitly and is addressed by the
// bitwise complement of the forward id:
//
//	Opposite(a) == ^a, so Opposite(Opposite(a)) == a
//
// Forward arcs occupy ids 0..NumArcs()-1 and reverse arcs occupy
// -1..-NumArcs(). Head and Tail are defined for both signs:
//
//	Head(^a) == Tail(a)  and  Tail(^a) == Head(a)
//
// This signed-id scheme lets flow algorithms store per-arc state (residual
// capacities, for instance) in a single dense table covering both directions,
// and derive the flow on an arc purely from the residual of its opposite.
//
// # Iteration
//
// Incidence is stored as intrusive linked lists of signed arc ids, so three
// traversal orders are available for a node v:
//
//   - outgoing arcs of v (forward arcs with Tail == v)
//   - incoming arcs of v (forward arcs with Head == v)
//   - incident arcs of v (outgoing plus reverses of incoming — every arc
//     leaving v in the residual sense)
//
// Incident iteration can resume from an arbitrary arc id, which residual
// algorithms use to restart a scan at a remembered position:
//
//	for a := g.FirstIncidentArc(v); a != graph.NilArc; a = g.NextIncidentArc(a) {
//		...
//	}
//
// # Determinism
//
// Arcs appear in each incidence list in reverse insertion order, and the
// order never changes after construction. Algorithms that enumerate arcs
// therefore behave identically across runs for the same build sequence.
//
// The container is not safe for concurrent mutation; build it fully, then
// share it read-only.
package graph
