package maxflow

import (
	"fmt"

	"github.com/katalvlaran/flownet/graph"
)

// Solver computes a maximum s→t flow on a graph.Static using highest-label
// push–relabel with global relabeling.
//
// Construct with New, assign capacities with SetArcCapacity, then call
// Solve. The solver borrows the graph read-only and owns all per-node and
// per-arc working state; it is not safe for concurrent use and Solve must
// not be invoked recursively.
type Solver struct {
	graph  *graph.Static
	source graph.NodeID
	sink   graph.NodeID
	status Status

	// excess[v] = inflow - outflow at v. Nonnegative everywhere except the
	// source, whose excess is minus the total flow pushed out of it. The
	// cycle-cancellation pass may break the sign invariant transiently.
	excess []FlowQuantity

	// potential[v] is the height of v: a lower bound on the residual
	// distance from v to the sink, or, once >= NumNodes, a proof that v
	// cannot reach the sink at all. The source is pinned at NumNodes.
	potential []nodeHeight

	// firstAdmissible[v] is a resume hint for the discharge scan. It may go
	// stale after a global relabel; the relaxed relabel recovers from that.
	firstAdmissible []graph.ArcID

	residual residualStore
	active   restrictedPushQueue

	// Reverse-BFS scratch for globalUpdate and the cut extractors.
	inBFSQueue []bool
	bfsQueue   []graph.NodeID
}

// New returns a solver for the maximum flow from source to sink on g.
//
// source and sink need not be valid nodes of g: an out-of-graph endpoint is
// treated as disconnected and Solve reports an optimal flow of zero. All
// capacities start at zero; set them with SetArcCapacity before solving.
func New(g *graph.Static, source, sink graph.NodeID) *Solver {
	s := &Solver{
		graph:  g,
		source: source,
		sink:   sink,
		status: NotSolved,
	}

	nodeReserve := g.NodeReservation()
	s.excess = make([]FlowQuantity, nodeReserve)
	s.potential = make([]nodeHeight, nodeReserve)
	s.firstAdmissible = make([]graph.ArcID, nodeReserve)
	for i := range s.firstAdmissible {
		s.firstAdmissible[i] = graph.NilArc
	}
	s.bfsQueue = make([]graph.NodeID, 0, nodeReserve)
	s.residual.init(g.ArcReservation())

	return s
}

// Graph returns the graph this solver operates on.
func (s *Solver) Graph() *graph.Static { return s.graph }

// Source returns the source node id.
func (s *Solver) Source() graph.NodeID { return s.source }

// Sink returns the sink node id.
func (s *Solver) Sink() graph.NodeID { return s.sink }

// Status reports the outcome of the last Solve: NotSolved if Solve was
// never called or the problem has been edited since, otherwise Optimal or
// IntOverflow.
func (s *Solver) Status() Status { return s.status }

// SetArcCapacity sets the capacity of the forward arc to newCapacity and
// invalidates any previous solution.
//
// If the arc currently carries flow and the new capacity still leaves
// nonnegative free capacity, the flow is preserved; otherwise the arc is
// reset to zero flow. Either way the status drops to NotSolved, and Solve
// rebuilds all residuals from capacities, so the transient shape is never
// observed.
func (s *Solver) SetArcCapacity(arc graph.ArcID, newCapacity FlowQuantity) error {
	if newCapacity < 0 {
		return fmt.Errorf("%w: arc %d capacity %d", ErrNegativeCapacity, arc, newCapacity)
	}
	if !s.graph.IsArcDirect(arc) {
		return fmt.Errorf("%w: arc %d", ErrNotForwardArc, arc)
	}

	freeCapacity := s.residual.residual(arc)
	capacityDelta := newCapacity - s.Capacity(arc)
	if capacityDelta == 0 {
		return nil // Nothing to do.
	}
	s.status = NotSolved
	if freeCapacity+capacityDelta >= 0 {
		// Increasing the capacity, or reducing it by no more than the free
		// capacity: adjust the forward residual and keep the flow.
		s.residual.set(arc, freeCapacity+capacityDelta)
	} else {
		// The reduction eats into the current flow: reset the arc.
		s.residual.setCapacityAndClearFlow(arc, newCapacity)
	}

	return nil
}

// Solve computes the maximum flow. It returns true when a solution was
// produced; inspect Status for Optimal versus IntOverflow.
func (s *Solver) Solve() bool {
	s.status = NotSolved
	s.initializePreflow()

	// Source and sink are specified independently of the graph: an invalid
	// endpoint behaves like a disconnected one.
	if !s.graph.IsNodeValid(s.source) || !s.graph.IsNodeValid(s.sink) {
		s.status = Optimal

		return true
	}

	s.refineWithGlobalUpdate()

	s.status = Optimal
	if s.OptimalFlow() == MaxFlowQuantity && s.AugmentingPathExists() {
		// The true maximum exceeds what FlowQuantity can represent. The
		// computed flow is still feasible and equals MaxFlowQuantity.
		s.status = IntOverflow
	}

	return true
}

// OptimalFlow returns the value of the flow found by the last Solve.
func (s *Solver) OptimalFlow() FlowQuantity {
	if !s.graph.IsNodeValid(s.sink) {
		return 0
	}

	return s.excess[s.sink]
}

// Flow returns the flow carried by arc. For a forward arc this is the
// residual capacity of its reverse partner; for a reverse arc it is the
// negated residual, per flow antisymmetry.
func (s *Solver) Flow(arc graph.ArcID) FlowQuantity {
	if s.graph.IsArcDirect(arc) {
		return s.residual.residual(^arc)
	}

	return -s.residual.residual(arc)
}

// Capacity returns the capacity of arc: the residual sum for a forward arc,
// zero for a reverse arc.
func (s *Solver) Capacity(arc graph.ArcID) FlowQuantity {
	if s.graph.IsArcDirect(arc) {
		return s.residual.residual(arc) + s.residual.residual(^arc)
	}

	return 0
}

// SourceSideMinCut returns the nodes reachable from the source in the
// residual graph. After an Optimal solve, the arcs leaving this set form a
// minimum cut.
func (s *Solver) SourceSideMinCut() []graph.NodeID {
	return s.computeReachableNodes(s.source, false)
}

// SinkSideMinCut returns the nodes that can reach the sink in the residual
// graph. When this set is the complement of SourceSideMinCut, the minimum
// cut is unique.
func (s *Solver) SinkSideMinCut() []graph.NodeID {
	return s.computeReachableNodes(s.sink, true)
}

// AugmentingPathExists reports whether the residual graph still contains a
// path with positive capacity from source to sink.
func (s *Solver) AugmentingPathExists() bool {
	if !s.graph.IsNodeValid(s.source) || !s.graph.IsNodeValid(s.sink) {
		return false
	}

	// Depth-first reachability from the source over positive residuals.
	g := s.graph
	isReached := make([]bool, g.NumNodes())
	toProcess := make([]graph.NodeID, 0, g.NumNodes())

	toProcess = append(toProcess, s.source)
	isReached[s.source] = true
	for len(toProcess) > 0 {
		node := toProcess[len(toProcess)-1]
		toProcess = toProcess[:len(toProcess)-1]
		for a := g.FirstIncidentArc(node); a != graph.NilArc; a = g.NextIncidentArc(a) {
			if s.residual.residual(a) > 0 {
				head := g.Head(a)
				if !isReached[head] {
					isReached[head] = true
					toProcess = append(toProcess, head)
				}
			}
		}
	}

	return isReached[s.sink]
}

// Validate checks that the last solve produced a genuine maximum flow:
// conservation at interior nodes, source/sink antisymmetry, nonnegative
// residuals and capacities, and the absence of an augmenting path (unless
// the optimum hit the overflow ceiling). It returns nil on success.
//
// This is an assertion-grade check for tests and debugging; Solve does not
// depend on it.
func (s *Solver) Validate() error {
	sourceExcess := FlowQuantity(0)
	if s.graph.IsNodeValid(s.source) {
		sourceExcess = s.excess[s.source]
	}
	if sourceExcess != -s.OptimalFlow() {
		return fmt.Errorf("%w: excess[source] = %d, excess[sink] = %d",
			ErrNotFlow, sourceExcess, s.OptimalFlow())
	}
	for node := graph.NodeID(0); int(node) < s.graph.NumNodes(); node++ {
		if node != s.source && node != s.sink && s.excess[node] != 0 {
			return fmt.Errorf("%w: excess[%d] = %d", ErrNotFlow, node, s.excess[node])
		}
	}
	for arc := graph.ArcID(0); int(arc) < s.graph.NumArcs(); arc++ {
		direct := s.residual.residual(arc)
		opposite := s.residual.residual(^arc)
		if direct < 0 {
			return fmt.Errorf("%w: residual[%d] = %d", ErrNegativeResidual, arc, direct)
		}
		if opposite < 0 {
			return fmt.Errorf("%w: residual[%d] = %d", ErrNegativeResidual, ^arc, opposite)
		}
		if direct+opposite < 0 {
			return fmt.Errorf("%w: capacity[%d] = %d", ErrNegativeResidual, arc, direct+opposite)
		}
	}
	if s.OptimalFlow() < MaxFlowQuantity && s.AugmentingPathExists() {
		return ErrNotOptimal
	}

	return nil
}

// isAdmissible reports whether arc can carry a push from tail: positive
// residual and an exact one-step height drop.
func (s *Solver) isAdmissible(tail graph.NodeID, arc graph.ArcID) bool {
	return s.residual.residual(arc) > 0 &&
		s.potential[tail] == s.potential[s.graph.Head(arc)]+1
}

// isActive reports whether node is an interior node holding excess.
func (s *Solver) isActive(node graph.NodeID) bool {
	return node != s.source && node != s.sink && s.excess[node] > 0
}

// pushFlow moves flow units across arc (tail must be Tail(arc)) and updates
// the excesses at both endpoints. flow is negative during cycle
// cancellation, which is the only caller allowed to push backwards.
func (s *Solver) pushFlow(flow FlowQuantity, tail graph.NodeID, arc graph.ArcID) {
	s.residual.push(flow, arc)
	s.excess[tail] -= flow
	s.excess[s.graph.Head(arc)] += flow
}

// initializePreflow clears all state left by a previous solve: zero
// excesses, residuals rebuilt from capacities, heights reset to zero with
// the source pinned at NumNodes, and all discharge hints forgotten.
//
// Saturating the source's outgoing arcs is deliberately left to
// saturateOutgoingArcsFromSource, which handles the overflow ceiling.
func (s *Solver) initializePreflow() {
	for i := range s.excess {
		s.excess[i] = 0
	}
	for arc := graph.ArcID(0); int(arc) < s.graph.NumArcs(); arc++ {
		s.residual.setCapacityAndClearFlow(arc, s.Capacity(arc))
	}
	for i := range s.potential {
		s.potential[i] = 0
	}
	if s.graph.IsNodeValid(s.source) {
		s.potential[s.source] = nodeHeight(s.graph.NumNodes())
	}
	for i := range s.firstAdmissible {
		s.firstAdmissible[i] = graph.NilArc
	}
}

// saturateOutgoingArcsFromSource pushes as much flow as possible out of the
// source along arcs whose heads can still reach the sink. It returns true
// if any flow was pushed.
//
// The net flow out of the source is clamped so it never exceeds
// MaxFlowQuantity; once the ceiling is hit the push is truncated and the
// remaining arcs are left untouched.
func (s *Solver) saturateOutgoingArcsFromSource() bool {
	g := s.graph
	numNodes := nodeHeight(g.NumNodes())

	// Nothing more can be pushed once either endpoint sits at the ceiling.
	if s.excess[s.sink] == MaxFlowQuantity {
		return false
	}
	if s.excess[s.source] == -MaxFlowQuantity {
		return false
	}

	flowPushed := false
	for arc := g.FirstOutgoingArc(s.source); arc != graph.NilArc; arc = g.NextOutgoingArc(arc) {
		flow := s.residual.residual(arc)

		// The admissibility test specialized for the source: any residual
		// arc whose head still has a chance to reach the sink.
		if flow == 0 || s.potential[g.Head(arc)] >= numNodes {
			continue
		}

		currentFlowOutOfSource := -s.excess[s.source]
		cappedFlow := MaxFlowQuantity - currentFlowOutOfSource
		if cappedFlow < flow {
			// Push only what keeps the total at the ceiling. cappedFlow can
			// be zero only if an earlier arc already filled it, in which
			// case some flow was pushed this call.
			if cappedFlow == 0 {
				return true
			}
			s.pushFlow(cappedFlow, s.source, arc)

			return true
		}
		s.pushFlow(flow, s.source, arc)
		flowPushed = true
	}

	return flowPushed
}

// discharge pushes the excess of node along admissible arcs, activating
// newly loaded neighbors, and relabels the node whenever the scan runs dry.
// It returns when the excess is gone or the node's height proves it can no
// longer reach the sink.
func (s *Solver) discharge(node graph.NodeID) {
	g := s.graph
	numNodes := nodeHeight(g.NumNodes())

	for {
		for arc := s.firstAdmissible[node]; arc != graph.NilArc; arc = g.NextIncidentArc(arc) {
			if !s.isAdmissible(node, arc) {
				continue
			}
			head := g.Head(arc)
			if s.excess[head] == 0 {
				// The push below activates head. Pushing the sink here is
				// harmless: it never enters the discharge loop.
				s.active.Push(head, s.potential[head])
			}
			delta := s.excess[node]
			if r := s.residual.residual(arc); r < delta {
				delta = r
			}
			s.pushFlow(delta, node, arc)
			if s.excess[node] == 0 {
				s.firstAdmissible[node] = arc // arc may still be admissible

				return
			}
		}
		s.relabel(node)

		// Heights >= NumNodes cannot reach the sink; leave the remaining
		// excess for pushFlowExcessBackToSource.
		if s.potential[node] >= numNodes {
			return
		}
	}
}

// relabel raises node to one above the lowest height among its residual
// neighbors and records the minimizing arc as the new discharge hint.
//
// The relaxed variant: the scan stops at the first arc admissible at the
// current height, which is then the true first admissible arc. This keeps
// stale firstAdmissible hints harmless — a futile scan is followed by a
// relabel that repairs the hint.
func (s *Solver) relabel(node graph.NodeID) {
	g := s.graph
	minHeight := nodeHeight(1<<31 - 1)
	firstAdmissible := graph.NilArc
	for arc := g.FirstIncidentArc(node); arc != graph.NilArc; arc = g.NextIncidentArc(arc) {
		if s.residual.residual(arc) <= 0 {
			continue
		}
		headHeight := s.potential[g.Head(arc)]
		if headHeight < minHeight {
			minHeight = headHeight
			firstAdmissible = arc

			// An admissible arc at the current height: stop right there.
			if minHeight+1 == s.potential[node] {
				break
			}
		}
	}

	// An active node always has at least one residual arc (the one its
	// excess arrived on), so firstAdmissible is set here.
	s.potential[node] = minHeight + 1
	s.firstAdmissible[node] = firstAdmissible
}

// globalUpdate recomputes every height as the exact distance-to-sink in the
// residual graph via a reverse breadth-first search, then reseeds the
// active queue.
//
// The source is pre-marked so its height stays pinned at NumNodes even when
// overflow clamping left it reachable. While visiting, excess sitting on a
// reached node is first pulled back along the BFS arc ("excess stealing"),
// which often drains whole regions without any discharge work. Nodes the
// search never reaches can help neither the sink nor the source, and are
// parked at height 2n-1 so they drop out of active consideration.
func (s *Solver) globalUpdate() {
	g := s.graph
	numNodes := g.NumNodes()

	s.bfsQueue = s.bfsQueue[:0]
	if cap(s.inBFSQueue) < numNodes {
		s.inBFSQueue = make([]bool, numNodes)
	} else {
		s.inBFSQueue = s.inBFSQueue[:numNodes]
		for i := range s.inBFSQueue {
			s.inBFSQueue[i] = false
		}
	}
	s.inBFSQueue[s.sink] = true
	s.inBFSQueue[s.source] = true
	s.bfsQueue = append(s.bfsQueue, s.sink)

	for queueIndex := 0; queueIndex != len(s.bfsQueue); queueIndex++ {
		node := s.bfsQueue[queueIndex]
		candidateDistance := s.potential[node] + 1
		for arc := g.FirstIncidentArc(node); arc != graph.NilArc; arc = g.NextIncidentArc(arc) {
			head := g.Head(arc)
			if s.inBFSQueue[head] {
				continue
			}

			// Reverse traversal: the residual arc head→node is ^arc.
			oppositeArc := ^arc
			if s.residual.residual(oppositeArc) <= 0 {
				continue
			}

			// Steal head's excess before deciding whether to label it: if
			// the pull saturates the reverse arc, head is no longer a
			// residual neighbor at this distance.
			if s.excess[head] > 0 {
				flow := s.excess[head]
				if r := s.residual.residual(oppositeArc); r < flow {
					flow = r
				}
				s.pushFlow(flow, head, oppositeArc)
				if s.residual.residual(oppositeArc) == 0 {
					continue
				}
			}

			// No need to touch firstAdmissible here; the relaxed relabel
			// copes with hints that predate the new heights.
			s.potential[head] = candidateDistance
			s.inBFSQueue[head] = true
			s.bfsQueue = append(s.bfsQueue, head)
		}
	}

	// Park every unreached node out of active range. This also prevents the
	// overflow clamp from cycling: without it, a dead-end source neighbor
	// would be re-saturated forever.
	for node := graph.NodeID(0); int(node) < numNodes; node++ {
		if !s.inBFSQueue[node] {
			s.potential[node] = nodeHeight(2*numNodes - 1)
		}
	}

	// Reseed the active queue in BFS order, i.e. nondecreasing height,
	// which respects the queue's restricted-push contract. Entry 0 is the
	// sink and is skipped.
	for i := 1; i < len(s.bfsQueue); i++ {
		node := s.bfsQueue[i]
		if s.excess[node] > 0 {
			s.active.Push(node, s.potential[node])
		}
	}
}

// refineWithGlobalUpdate is the optimization driver: saturate the source,
// discharge active nodes highest-first with periodic global relabels, then
// convert the preflow into a flow, repeating while the overflow clamp left
// saturable source arcs behind.
func (s *Solver) refineWithGlobalUpdate() {
	nodeReserve := s.graph.NodeReservation()
	skipActiveNode := make([]int, nodeReserve)

	// Usually one pass saturates every source arc and the loop runs once.
	// When more than MaxFlowQuantity could leave the source, excess returns
	// to the source between rounds and previously saturated arcs become
	// eligible again, so we must loop until no push succeeds.
	for s.saturateOutgoingArcsFromSource() {
		numSkipped := 1
		for numSkipped > 0 {
			numSkipped = 0
			for i := range skipActiveNode {
				skipActiveNode[i] = 0
			}
			skipActiveNode[s.sink] = 2
			skipActiveNode[s.source] = 2
			s.globalUpdate()
			for !s.active.IsEmpty() {
				node := s.active.Pop()
				if skipActiveNode[node] > 1 {
					if node != s.sink && node != s.source {
						numSkipped++
					}

					continue
				}
				oldHeight := s.potential[node]
				s.discharge(node)

				// A discharge that lifts a node by more than one step is
				// the signature of ping-pong pushing between neighbors cut
				// off from the sink; the next global update fixes their
				// heights far more cheaply. Skip such nodes after two
				// strikes until then.
				if s.potential[node] > oldHeight+1 {
					skipActiveNode[node]++
				}
			}
		}

		// Two-phase finish: the preflow above already determines the value
		// of the maximum flow and the min-cut; returning the stranded
		// excess turns it into a circulation-free flow.
		s.pushFlowExcessBackToSource()
	}
}

// pushFlowExcessBackToSource converts the preflow into a flow by draining
// the excess stranded on interior nodes back to the source.
//
// Phase one runs a depth-first search from the source over the arcs
// carrying positive flow, cancelling every flow cycle it closes (the flow
// subgraph must be acyclic for the return phase). Phase two walks the
// DFS tree in reverse topological order and pushes each node's excess
// backwards along its incoming flow arcs until it vanishes; with cycles
// gone, the excess cannot get stuck before reaching the source.
//
// Cancelling a cycle temporarily breaks the height invariant; callers must
// run globalUpdate before any further discharge.
func (s *Solver) pushFlowExcessBackToSource() {
	g := s.graph
	numNodes := g.NumNodes()

	// stored: settled nodes, already emitted to reverseTopologicalOrder
	// (the sink is never stored). visited but not stored: the nodes on the
	// current DFS branch.
	stored := make([]bool, numNodes)
	visited := make([]bool, numNodes)
	stored[s.sink] = true
	visited[s.sink] = true
	visited[s.source] = true

	// arcStack holds the arcs still to explore; the current node is the
	// head of its top. indexBranch indexes the arcs forming the branch from
	// the source to the current node.
	var arcStack []graph.ArcID
	var indexBranch []int
	var reverseTopologicalOrder []graph.NodeID

	// Seed with the source's flow-carrying arcs so the source itself never
	// enters the order.
	for arc := g.FirstOutgoingArc(s.source); arc != graph.NilArc; arc = g.NextOutgoingArc(arc) {
		if s.Flow(arc) > 0 {
			arcStack = append(arcStack, arc)
		}
	}

	for len(arcStack) > 0 {
		node := g.Head(arcStack[len(arcStack)-1])

		// A visited top means the DFS just backtracked here: settle the
		// node and move on.
		if visited[node] {
			if !stored[node] {
				stored[node] = true
				reverseTopologicalOrder = append(reverseTopologicalOrder, node)
				indexBranch = indexBranch[:len(indexBranch)-1]
			}
			arcStack = arcStack[:len(arcStack)-1]

			continue
		}

		// Fresh node: extend the branch and queue its flow-carrying arcs.
		visited[node] = true
		indexBranch = append(indexBranch, len(arcStack)-1)

		for arc := g.FirstOutgoingArc(node); arc != graph.NilArc; arc = g.NextOutgoingArc(arc) {
			flow := s.Flow(arc)
			head := g.Head(arc)
			if flow <= 0 || stored[head] {
				continue
			}
			if !visited[head] {
				arcStack = append(arcStack, arc)

				continue
			}

			// head is on the current branch: a flow cycle. Locate where the
			// branch meets it.
			cycleBegin := len(indexBranch)
			for cycleBegin > 0 && g.Head(arcStack[indexBranch[cycleBegin-1]]) != head {
				cycleBegin--
			}

			// The cancelable amount is the minimum flow along the cycle;
			// remember the first arc that will saturate.
			maxFlow := flow
			firstSaturatedIndex := len(indexBranch)
			for i := len(indexBranch) - 1; i >= cycleBegin; i-- {
				arcOnCycle := arcStack[indexBranch[i]]
				if f := s.Flow(arcOnCycle); f <= maxFlow {
					maxFlow = f
					firstSaturatedIndex = i
				}
			}

			// Cancel the cycle. Nodes whose outgoing cycle arc saturated
			// are un-visited so the DFS reconsiders them; excesses are
			// untouched since the pushes telescope around the cycle.
			s.pushFlow(-maxFlow, node, arc)
			for i := len(indexBranch) - 1; i >= cycleBegin; i-- {
				arcOnCycle := arcStack[indexBranch[i]]
				s.pushFlow(-maxFlow, g.Tail(arcOnCycle), arcOnCycle)
				if i >= firstSaturatedIndex {
					visited[g.Head(arcOnCycle)] = false
				}
			}

			// Backtrack to just before the first saturated arc. If the
			// current node survived, keep scanning its arcs.
			if firstSaturatedIndex < len(indexBranch) {
				arcStack = arcStack[:indexBranch[firstSaturatedIndex]]
				indexBranch = indexBranch[:firstSaturatedIndex]

				break
			}
		}
	}

	// Return phase: leaves first, push each node's excess backwards along
	// incoming flow arcs until it is gone.
	for _, node := range reverseTopologicalOrder {
		if s.excess[node] == 0 {
			continue
		}
		for in := g.FirstIncomingArc(node); in != graph.NilArc; in = g.NextIncomingArc(in) {
			oppositeArc := ^in
			if s.residual.residual(oppositeArc) <= 0 {
				continue
			}
			flow := s.excess[node]
			if r := s.residual.residual(oppositeArc); r < flow {
				flow = r
			}
			s.pushFlow(flow, node, oppositeArc)
			if s.excess[node] == 0 {
				break
			}
		}
	}
}

// computeReachableNodes returns the nodes reachable from start through
// positive residual arcs, or, when reverse is true, the nodes that can
// reach start (traversal over opposite residuals).
func (s *Solver) computeReachableNodes(start graph.NodeID, reverse bool) []graph.NodeID {
	// A start outside the graph reaches only itself; source and sink are
	// specified independently of the graph, so this case is reachable.
	if !s.graph.IsNodeValid(start) {
		return []graph.NodeID{start}
	}

	g := s.graph
	numNodes := g.NumNodes()
	s.bfsQueue = s.bfsQueue[:0]
	if cap(s.inBFSQueue) < numNodes {
		s.inBFSQueue = make([]bool, numNodes)
	} else {
		s.inBFSQueue = s.inBFSQueue[:numNodes]
		for i := range s.inBFSQueue {
			s.inBFSQueue[i] = false
		}
	}

	s.bfsQueue = append(s.bfsQueue, start)
	s.inBFSQueue[start] = true
	for queueIndex := 0; queueIndex != len(s.bfsQueue); queueIndex++ {
		node := s.bfsQueue[queueIndex]
		for arc := g.FirstIncidentArc(node); arc != graph.NilArc; arc = g.NextIncidentArc(arc) {
			head := g.Head(arc)
			if s.inBFSQueue[head] {
				continue
			}
			residualArc := arc
			if reverse {
				residualArc = ^arc
			}
			if s.residual.residual(residualArc) == 0 {
				continue
			}
			s.inBFSQueue[head] = true
			s.bfsQueue = append(s.bfsQueue, head)
		}
	}

	result := make([]graph.NodeID, len(s.bfsQueue))
	copy(result, s.bfsQueue)

	return result
}
