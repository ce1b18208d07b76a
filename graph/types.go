// Package graph type and error declarations: identifier types, sentinels,
// and the validation errors shared by the builder methods.
package graph

import (
	"errors"
	"math"
)

// NodeID identifies a node. Valid nodes are 0..NumNodes()-1.
type NodeID int32

// ArcID identifies an arc. Nonnegative ids are forward arcs; the bitwise
// complement ^a of a forward id addresses its paired reverse arc.
type ArcID int32

// NilArc is the "no arc" sentinel. It terminates incidence lists and is
// never a valid arc id.
const NilArc ArcID = math.MinInt32

// NilNode is the "no node" sentinel.
const NilNode NodeID = -1

// Sentinel errors for graph construction.
var (
	// ErrNodeNotFound indicates an arc endpoint that is not a valid node.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrNegativeNode indicates a negative node id passed to AddArc.
	ErrNegativeNode = errors.New("graph: negative node id")
)
