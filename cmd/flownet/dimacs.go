package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/flownet/graph"
)

// dimacsProblem is a parsed DIMACS max-flow instance. Node ids are
// zero-based (the format is one-based on the wire).
type dimacsProblem struct {
	graph      *graph.Static
	arcs       []graph.ArcID
	capacities []int64
	source     graph.NodeID
	sink       graph.NodeID
}

// Sentinel errors for DIMACS parsing.
var (
	errDimacsSyntax    = errors.New("dimacs: malformed line")
	errDimacsNoProblem = errors.New("dimacs: missing problem line")
	errDimacsEndpoints = errors.New("dimacs: source or sink undeclared")
)

// parseDIMACS reads a DIMACS "max" instance:
//
//	c <comment>
//	p max <nodes> <arcs>
//	n <id> s|t
//	a <tail> <head> <capacity>
//
// The problem line must precede node and arc descriptors; unknown
// descriptors are rejected.
func parseDIMACS(r io.Reader) (*dimacsProblem, error) {
	var p *dimacsProblem
	sourceSeen, sinkSeen := false, false

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "c":
			continue

		case "p":
			if len(fields) != 4 || fields[1] != "max" {
				return nil, fmt.Errorf("%w %d: want \"p max N M\"", errDimacsSyntax, lineNo)
			}
			numNodes, err := strconv.Atoi(fields[2])
			if err != nil || numNodes < 0 {
				return nil, fmt.Errorf("%w %d: bad node count", errDimacsSyntax, lineNo)
			}
			numArcs, err := strconv.Atoi(fields[3])
			if err != nil || numArcs < 0 {
				return nil, fmt.Errorf("%w %d: bad arc count", errDimacsSyntax, lineNo)
			}
			g := graph.New(numNodes, numArcs)
			g.AddNodes(numNodes)
			p = &dimacsProblem{graph: g, source: graph.NilNode, sink: graph.NilNode}

		case "n":
			if p == nil {
				return nil, errDimacsNoProblem
			}
			if len(fields) != 3 {
				return nil, fmt.Errorf("%w %d: want \"n ID s|t\"", errDimacsSyntax, lineNo)
			}
			id, err := strconv.Atoi(fields[1])
			if err != nil || id < 1 {
				return nil, fmt.Errorf("%w %d: bad node id", errDimacsSyntax, lineNo)
			}
			switch fields[2] {
			case "s":
				p.source = graph.NodeID(id - 1)
				sourceSeen = true
			case "t":
				p.sink = graph.NodeID(id - 1)
				sinkSeen = true
			default:
				return nil, fmt.Errorf("%w %d: node flag %q", errDimacsSyntax, lineNo, fields[2])
			}

		case "a":
			if p == nil {
				return nil, errDimacsNoProblem
			}
			if len(fields) != 4 {
				return nil, fmt.Errorf("%w %d: want \"a U V CAP\"", errDimacsSyntax, lineNo)
			}
			tail, err := strconv.Atoi(fields[1])
			if err != nil || tail < 1 {
				return nil, fmt.Errorf("%w %d: bad tail", errDimacsSyntax, lineNo)
			}
			head, err := strconv.Atoi(fields[2])
			if err != nil || head < 1 {
				return nil, fmt.Errorf("%w %d: bad head", errDimacsSyntax, lineNo)
			}
			capacity, err := strconv.ParseInt(fields[3], 10, 64)
			if err != nil || capacity < 0 {
				return nil, fmt.Errorf("%w %d: bad capacity", errDimacsSyntax, lineNo)
			}
			arc, err := p.graph.AddArc(graph.NodeID(tail-1), graph.NodeID(head-1))
			if err != nil {
				return nil, fmt.Errorf("dimacs: line %d: %w", lineNo, err)
			}
			p.arcs = append(p.arcs, arc)
			p.capacities = append(p.capacities, capacity)

		default:
			return nil, fmt.Errorf("%w %d: descriptor %q", errDimacsSyntax, lineNo, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dimacs: read: %w", err)
	}
	if p == nil {
		return nil, errDimacsNoProblem
	}
	if !sourceSeen || !sinkSeen {
		return nil, errDimacsEndpoints
	}

	return p, nil
}
