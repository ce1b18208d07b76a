package graph

// Static is an append-only directed graph with paired arcs.
//
// Nodes and forward arcs are created through AddNode/AddNodes and AddArc;
// reverse arcs come into existence together with their forward partner and
// are addressed as ^a. After construction the graph is immutable and may be
// shared read-only between any number of algorithm instances.
//
// Memory layout:
//   - heads, tails: endpoint tables indexed by forward arc id.
//   - firstIncident: head of each node's incidence list (signed arc ids).
//   - nextForward, nextReverse: intrusive "next incident arc" links for the
//     forward (a >= 0) and reverse (^a) half of the signed id space.
type Static struct {
	nodeReserve int
	arcReserve  int

	heads []NodeID
	tails []NodeID

	firstIncident []ArcID
	nextForward   []ArcID // next incident arc after forward arc a, indexed by a
	nextReverse   []ArcID // next incident arc after reverse arc ^a, indexed by a
}

// New returns an empty graph with memory reserved for nodeReserve nodes and
// arcReserve forward arcs. Reservations are hints: the graph grows past them
// on demand, and NodeReservation/ArcReservation report the grown values.
//
// Complexity: Time O(nodeReserve + arcReserve), Space O(nodeReserve + arcReserve).
func New(nodeReserve, arcReserve int) *Static {
	if nodeReserve < 0 {
		nodeReserve = 0
	}
	if arcReserve < 0 {
		arcReserve = 0
	}

	return &Static{
		nodeReserve:   nodeReserve,
		arcReserve:    arcReserve,
		heads:         make([]NodeID, 0, arcReserve),
		tails:         make([]NodeID, 0, arcReserve),
		firstIncident: make([]ArcID, 0, nodeReserve),
		nextForward:   make([]ArcID, 0, arcReserve),
		nextReverse:   make([]ArcID, 0, arcReserve),
	}
}

// NumNodes returns the number of nodes added so far.
func (g *Static) NumNodes() int { return len(g.firstIncident) }

// NumArcs returns the number of forward arcs added so far.
func (g *Static) NumArcs() int { return len(g.heads) }

// NodeReservation returns the node capacity this graph was sized for.
// It is always >= NumNodes() and is the length algorithms should use when
// allocating dense per-node state.
func (g *Static) NodeReservation() int {
	if g.NumNodes() > g.nodeReserve {
		return g.NumNodes()
	}

	return g.nodeReserve
}

// ArcReservation returns the forward-arc capacity this graph was sized for.
// It is always >= NumArcs().
func (g *Static) ArcReservation() int {
	if g.NumArcs() > g.arcReserve {
		return g.NumArcs()
	}

	return g.arcReserve
}

// AddNode appends a new node and returns its id.
func (g *Static) AddNode() NodeID {
	id := NodeID(len(g.firstIncident))
	g.firstIncident = append(g.firstIncident, NilArc)

	return id
}

// AddNodes appends count nodes at once; a convenience for builders that know
// the node count upfront.
func (g *Static) AddNodes(count int) {
	for i := 0; i < count; i++ {
		g.AddNode()
	}
}

// AddArc creates a forward arc tail→head together with its implicit reverse
// arc and returns the forward id. Both endpoints must already exist.
//
// Complexity: Time O(1) amortized.
func (g *Static) AddArc(tail, head NodeID) (ArcID, error) {
	if tail < 0 || head < 0 {
		return NilArc, ErrNegativeNode
	}
	if !g.IsNodeValid(tail) || !g.IsNodeValid(head) {
		return NilArc, ErrNodeNotFound
	}

	arc := ArcID(len(g.heads))
	g.heads = append(g.heads, head)
	g.tails = append(g.tails, tail)

	// Prepend the forward arc to tail's incidence list and the reverse arc
	// to head's incidence list.
	g.nextForward = append(g.nextForward, g.firstIncident[tail])
	g.firstIncident[tail] = arc
	g.nextReverse = append(g.nextReverse, g.firstIncident[head])
	g.firstIncident[head] = ^arc

	return arc, nil
}

// IsNodeValid reports whether v is a node of this graph.
func (g *Static) IsNodeValid(v NodeID) bool {
	return v >= 0 && int(v) < len(g.firstIncident)
}

// IsArcValid reports whether a addresses a forward or reverse arc of this
// graph.
func (g *Static) IsArcValid(a ArcID) bool {
	if a >= 0 {
		return int(a) < len(g.heads)
	}

	return a != NilArc && int(^a) < len(g.heads)
}

// IsArcDirect reports whether a is a valid forward arc.
func (g *Static) IsArcDirect(a ArcID) bool { return a >= 0 && int(a) < len(g.heads) }

// Opposite returns the paired arc: the reverse of a forward arc and vice
// versa. Opposite(Opposite(a)) == a for every valid a.
func (g *Static) Opposite(a ArcID) ArcID { return ^a }

// Head returns the node a points to. For a reverse arc this is the tail of
// its forward partner.
func (g *Static) Head(a ArcID) NodeID {
	if a >= 0 {
		return g.heads[a]
	}

	return g.tails[^a]
}

// Tail returns the node a leaves. For a reverse arc this is the head of its
// forward partner.
func (g *Static) Tail(a ArcID) NodeID {
	if a >= 0 {
		return g.tails[a]
	}

	return g.heads[^a]
}

// FirstIncidentArc returns the first arc (signed id) leaving v in the
// residual sense: a forward arc with Tail == v or the reverse of an arc with
// Head == v. NilArc when v has none.
func (g *Static) FirstIncidentArc(v NodeID) ArcID {
	if !g.IsNodeValid(v) {
		return NilArc
	}

	return g.firstIncident[v]
}

// NextIncidentArc returns the incident arc following a in Tail(a)'s
// incidence list, or NilArc at the end. The argument must be a valid signed
// arc id; iteration may therefore resume from any previously returned id.
func (g *Static) NextIncidentArc(a ArcID) ArcID {
	if a >= 0 {
		return g.nextForward[a]
	}

	return g.nextReverse[^a]
}

// FirstOutgoingArc returns the first forward arc leaving v, or NilArc.
func (g *Static) FirstOutgoingArc(v NodeID) ArcID {
	return g.skipReverse(g.FirstIncidentArc(v))
}

// NextOutgoingArc returns the forward arc following a in the incidence list
// of Tail(a), or NilArc.
func (g *Static) NextOutgoingArc(a ArcID) ArcID {
	return g.skipReverse(g.NextIncidentArc(a))
}

// FirstIncomingArc returns the first forward arc entering v, or NilArc.
func (g *Static) FirstIncomingArc(v NodeID) ArcID {
	return g.reverseToIncoming(g.skipForward(g.FirstIncidentArc(v)))
}

// NextIncomingArc returns the forward arc entering Head(a) after a. The
// argument is the forward arc previously returned by First/NextIncomingArc.
func (g *Static) NextIncomingArc(a ArcID) ArcID {
	return g.reverseToIncoming(g.skipForward(g.NextIncidentArc(^a)))
}

// skipReverse advances a along the incidence list until it is a forward arc
// or the list ends.
func (g *Static) skipReverse(a ArcID) ArcID {
	for a != NilArc && a < 0 {
		a = g.NextIncidentArc(a)
	}

	return a
}

// skipForward advances a along the incidence list until it is a reverse arc
// or the list ends.
func (g *Static) skipForward(a ArcID) ArcID {
	for a != NilArc && a >= 0 {
		a = g.NextIncidentArc(a)
	}

	return a
}

// reverseToIncoming maps a reverse incident arc to the forward arc entering
// the iterated node, preserving the NilArc terminator.
func (g *Static) reverseToIncoming(a ArcID) ArcID {
	if a == NilArc {
		return NilArc
	}

	return ^a
}
