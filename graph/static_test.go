package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/flownet/graph"
)

// StaticSuite exercises construction, accessors and iteration of Static.
type StaticSuite struct {
	suite.Suite
}

// collectIncident drains the incident-arc list of v.
func collectIncident(g *graph.Static, v graph.NodeID) []graph.ArcID {
	var out []graph.ArcID
	for a := g.FirstIncidentArc(v); a != graph.NilArc; a = g.NextIncidentArc(a) {
		out = append(out, a)
	}

	return out
}

// collectOutgoing drains the outgoing-arc list of v.
func collectOutgoing(g *graph.Static, v graph.NodeID) []graph.ArcID {
	var out []graph.ArcID
	for a := g.FirstOutgoingArc(v); a != graph.NilArc; a = g.NextOutgoingArc(a) {
		out = append(out, a)
	}

	return out
}

// collectIncoming drains the incoming-arc list of v.
func collectIncoming(g *graph.Static, v graph.NodeID) []graph.ArcID {
	var out []graph.ArcID
	for a := g.FirstIncomingArc(v); a != graph.NilArc; a = g.NextIncomingArc(a) {
		out = append(out, a)
	}

	return out
}

// TestBuild covers node/arc creation and counters.
func (s *StaticSuite) TestBuild() {
	g := graph.New(3, 2)
	require.Equal(s.T(), 0, g.NumNodes())
	require.Equal(s.T(), 3, g.NodeReservation())
	require.Equal(s.T(), 2, g.ArcReservation())

	g.AddNodes(3)
	require.Equal(s.T(), 3, g.NumNodes())

	a0, err := g.AddArc(0, 1)
	require.NoError(s.T(), err)
	a1, err := g.AddArc(1, 2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), graph.ArcID(0), a0)
	require.Equal(s.T(), graph.ArcID(1), a1)
	require.Equal(s.T(), 2, g.NumArcs())
}

// TestBuildErrors covers endpoint validation.
func (s *StaticSuite) TestBuildErrors() {
	g := graph.New(2, 1)
	g.AddNodes(2)

	_, err := g.AddArc(0, 5)
	require.ErrorIs(s.T(), err, graph.ErrNodeNotFound)

	_, err = g.AddArc(-1, 1)
	require.ErrorIs(s.T(), err, graph.ErrNegativeNode)
}

// TestReservationGrowth: adding past the reservation grows the counters.
func (s *StaticSuite) TestReservationGrowth() {
	g := graph.New(1, 0)
	g.AddNodes(4)
	require.Equal(s.T(), 4, g.NumNodes())
	require.Equal(s.T(), 4, g.NodeReservation())

	_, err := g.AddArc(0, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, g.ArcReservation())
}

// TestEndpoints checks Head/Tail for both arc signs and the Opposite
// involution.
func (s *StaticSuite) TestEndpoints() {
	g := graph.New(2, 1)
	g.AddNodes(2)
	a, err := g.AddArc(0, 1)
	require.NoError(s.T(), err)

	require.Equal(s.T(), graph.NodeID(0), g.Tail(a))
	require.Equal(s.T(), graph.NodeID(1), g.Head(a))

	opp := g.Opposite(a)
	require.Equal(s.T(), a, g.Opposite(opp))
	require.Equal(s.T(), graph.NodeID(1), g.Tail(opp))
	require.Equal(s.T(), graph.NodeID(0), g.Head(opp))
}

// TestValidity checks the validity predicates and sentinels.
func (s *StaticSuite) TestValidity() {
	g := graph.New(2, 1)
	g.AddNodes(2)
	a, _ := g.AddArc(0, 1)

	require.True(s.T(), g.IsNodeValid(0))
	require.False(s.T(), g.IsNodeValid(2))
	require.False(s.T(), g.IsNodeValid(graph.NilNode))

	require.True(s.T(), g.IsArcValid(a))
	require.True(s.T(), g.IsArcValid(g.Opposite(a)))
	require.False(s.T(), g.IsArcValid(1))
	require.False(s.T(), g.IsArcValid(graph.NilArc))

	require.True(s.T(), g.IsArcDirect(a))
	require.False(s.T(), g.IsArcDirect(g.Opposite(a)))
}

// TestIncidence verifies the three traversal orders on a small star.
func (s *StaticSuite) TestIncidence() {
	// 0→1, 0→2, 1→0: node 0 has two outgoing and one incoming arc.
	g := graph.New(3, 3)
	g.AddNodes(3)
	a01, _ := g.AddArc(0, 1)
	a02, _ := g.AddArc(0, 2)
	a10, _ := g.AddArc(1, 0)

	// Incidence lists are in reverse insertion order: the reverse of the
	// incoming arc first, then the outgoing arcs newest-first.
	require.Equal(s.T(), []graph.ArcID{g.Opposite(a10), a02, a01}, collectIncident(g, 0))
	require.Equal(s.T(), []graph.ArcID{a02, a01}, collectOutgoing(g, 0))
	require.Equal(s.T(), []graph.ArcID{a10}, collectIncoming(g, 0))

	// Node 1 sees its own outgoing arc plus the reverse of 0→1.
	require.Equal(s.T(), []graph.ArcID{a10}, collectOutgoing(g, 1))
	require.Equal(s.T(), []graph.ArcID{a01}, collectIncoming(g, 1))

	// Node 2 has no outgoing arcs.
	require.Empty(s.T(), collectOutgoing(g, 2))
	require.Equal(s.T(), []graph.ArcID{a02}, collectIncoming(g, 2))
}

// TestIncidentResume verifies that incident iteration can resume from a
// remembered position.
func (s *StaticSuite) TestIncidentResume() {
	g := graph.New(2, 4)
	g.AddNodes(2)
	for i := 0; i < 4; i++ {
		_, err := g.AddArc(0, 1)
		require.NoError(s.T(), err)
	}

	full := collectIncident(g, 0)
	require.Len(s.T(), full, 4)

	// Resuming from the second arc yields the tail of the full walk.
	var resumed []graph.ArcID
	for a := full[1]; a != graph.NilArc; a = g.NextIncidentArc(a) {
		resumed = append(resumed, a)
	}
	require.Equal(s.T(), full[1:], resumed)
}

// TestHeadTailPairing: for every forward arc, Head(^a) == Tail(a).
func (s *StaticSuite) TestHeadTailPairing() {
	g := graph.New(4, 5)
	g.AddNodes(4)
	pairs := [][2]graph.NodeID{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {1, 3}}
	for _, p := range pairs {
		a, err := g.AddArc(p[0], p[1])
		require.NoError(s.T(), err)
		require.Equal(s.T(), g.Tail(a), g.Head(g.Opposite(a)))
		require.Equal(s.T(), g.Head(a), g.Tail(g.Opposite(a)))
	}
}

// Entry point for running the suite.
func TestStaticSuite(t *testing.T) {
	suite.Run(t, new(StaticSuite))
}
