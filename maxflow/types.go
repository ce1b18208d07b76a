// Package maxflow type declarations: flow quantities, solver status, and
// sentinel errors for capacity edits.
package maxflow

import (
	"errors"
	"math"
)

// FlowQuantity is the signed integer type used for capacities, flows and
// excesses. It must be wide enough to sum all arc capacities.
type FlowQuantity = int64

// MaxFlowQuantity is the largest representable flow. It doubles as the
// overflow ceiling: the net flow out of the source never exceeds it.
const MaxFlowQuantity FlowQuantity = math.MaxInt64

// nodeHeight is the potential ("height") of a node. Heights never exceed
// 2·NumNodes, so the node id type is wide enough.
type nodeHeight = int32

// Status describes the outcome of the last Solve.
type Status int

const (
	// NotSolved is the initial status, restored whenever the problem data
	// are edited.
	NotSolved Status = iota

	// Optimal means Solve found a maximum flow.
	Optimal

	// IntOverflow means a feasible flow larger than MaxFlowQuantity exists;
	// the computed flow is valid and equal to MaxFlowQuantity.
	IntOverflow
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case NotSolved:
		return "NOT_SOLVED"
	case Optimal:
		return "OPTIMAL"
	case IntOverflow:
		return "INT_OVERFLOW"
	default:
		return "UNKNOWN"
	}
}

// Sentinel errors for capacity edits and validation.
var (
	// ErrNegativeCapacity is returned by SetArcCapacity for capacity < 0.
	ErrNegativeCapacity = errors.New("maxflow: negative arc capacity")

	// ErrNotForwardArc is returned by SetArcCapacity when the arc id is not
	// a valid forward arc of the solver's graph.
	ErrNotForwardArc = errors.New("maxflow: not a forward arc")

	// ErrNotFlow is returned by Validate when node excesses do not describe
	// a flow (conservation or antisymmetry violated).
	ErrNotFlow = errors.New("maxflow: excess is not a flow")

	// ErrNegativeResidual is returned by Validate when a residual capacity
	// or an implied initial capacity is negative.
	ErrNegativeResidual = errors.New("maxflow: negative residual capacity")

	// ErrNotOptimal is returned by Validate when an augmenting path remains
	// although the optimum is below MaxFlowQuantity.
	ErrNotOptimal = errors.New("maxflow: augmenting path remains")
)
