package maxflow

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flownet/graph"
)

// TestQueuePopOrder verifies that pushes obeying the restricted-push
// contract pop in nonincreasing priority order.
func TestQueuePopOrder(t *testing.T) {
	var q restrictedPushQueue
	require.True(t, q.IsEmpty())

	// Priorities follow the push–relabel pattern: each push is >= max-1.
	q.Push(1, 3)
	q.Push(2, 2) // max-1
	q.Push(3, 4)
	q.Push(4, 3) // max-1
	q.Push(5, 5)
	q.Push(6, 4) // max-1

	var got []graph.NodeID
	for !q.IsEmpty() {
		got = append(got, q.Pop())
	}
	require.Equal(t, []graph.NodeID{5, 6, 3, 4, 1, 2}, got)
}

// TestQueueLIFOTies verifies that elements pushed at equal priority pop in
// LIFO order.
func TestQueueLIFOTies(t *testing.T) {
	var q restrictedPushQueue
	q.Push(10, 7)
	q.Push(11, 7)
	q.Push(12, 7)

	require.Equal(t, graph.NodeID(12), q.Pop())
	require.Equal(t, graph.NodeID(11), q.Pop())
	require.Equal(t, graph.NodeID(10), q.Pop())
	require.True(t, q.IsEmpty())
}

// TestQueueClear verifies Clear empties the queue without breaking reuse.
func TestQueueClear(t *testing.T) {
	var q restrictedPushQueue
	q.Push(1, 0)
	q.Push(2, 1)
	q.Clear()
	require.True(t, q.IsEmpty())

	q.Push(3, 2)
	require.Equal(t, graph.NodeID(3), q.Pop())
	require.True(t, q.IsEmpty())
}

// TestQueueAlternatingParity exercises the even/odd split across a longer
// nondecreasing-then-draining sequence.
func TestQueueAlternatingParity(t *testing.T) {
	var q restrictedPushQueue
	for prio := nodeHeight(0); prio < 10; prio++ {
		q.Push(graph.NodeID(prio), prio)
	}

	last := nodeHeight(10)
	for !q.IsEmpty() {
		node := q.Pop()
		// Node id equals the priority it was pushed at.
		require.LessOrEqual(t, nodeHeight(node), last)
		last = nodeHeight(node)
	}
}
