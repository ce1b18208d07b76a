// Package maxflow computes maximum s→t flows on graph.Static networks with
// the highest-label push–relabel method and the global relabeling heuristic.
//
// The algorithm follows Goldberg & Tarjan ("A new approach to the maximum
// flow problem", STOC 1986): it maintains a preflow — a flow whose
// conservation constraint is relaxed so nodes may hold positive *excess* —
// and a *height* (potential) per node, and repeatedly pushes excess along
// admissible arcs or relabels stuck nodes until no interior excess can reach
// the sink. A second phase then cancels flow cycles and drains the remaining
// excess back to the source, so the result is a genuine flow, not merely a
// preflow.
//
// # Key mechanics
//
//   - Residual encoding: only residual capacities are stored, in one dense
//     table indexed by signed arc id. The flow on a forward arc a is the
//     residual of its reverse arc ^a; capacities are the invariant sum
//     Residual(a) + Residual(^a).
//   - Highest-label selection: active nodes are scheduled by a two-stack
//     priority queue whose push precondition (priority >= max-1) is exactly
//     the guarantee push–relabel provides, making every operation O(1).
//   - Global relabeling: a reverse BFS from the sink periodically resets
//     every height to its true residual distance-to-sink and, while
//     traversing, steals excess back along the BFS arcs.
//   - Overflow defense: the total flow out of the source is clamped to
//     MaxFlowQuantity; if a feasible flow beyond that ceiling exists, Solve
//     reports IntOverflow and the computed flow remains valid and maximal
//     up to the ceiling.
//
// # Usage
//
//	g := graph.New(4, 5)
//	g.AddNodes(4)
//	a0, _ := g.AddArc(0, 1)
//	a1, _ := g.AddArc(1, 3)
//	s := maxflow.New(g, 0, 3)
//	_ = s.SetArcCapacity(a0, 5)
//	_ = s.SetArcCapacity(a1, 3)
//	if s.Solve() && s.Status() == maxflow.Optimal {
//		fmt.Println(s.OptimalFlow()) // 3
//	}
//
// After a successful Solve, Flow, Capacity, OptimalFlow, SourceSideMinCut
// and SinkSideMinCut describe the solution; SetArcCapacity invalidates it
// and drops the status back to NotSolved.
//
// The solver is single-threaded and not reentrant: one instance, one Solve
// at a time. It borrows the graph read-only and owns all per-node and
// per-arc working state.
//
// Complexity: O(n²·√m) time with the highest-level selection rule,
// O(n + m) memory beyond the graph.
package maxflow
