package maxflow

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/flownet/graph"
)

// FlowModel is a self-contained snapshot of a flow problem: the node set
// with source/sink markers and every forward arc with its capacity. It
// decouples problem interchange from the solver state and marshals to YAML.
type FlowModel struct {
	// Problem identifies the problem family; always "max_flow" for models
	// produced by Solver.CreateFlowModel.
	Problem string `yaml:"problem"`

	// Nodes lists every node. The source carries supply +1 and the sink
	// supply -1; plain nodes omit the field.
	Nodes []FlowModelNode `yaml:"nodes"`

	// Arcs lists every forward arc with its current capacity.
	Arcs []FlowModelArc `yaml:"arcs"`
}

// FlowModelNode is one node of a FlowModel.
type FlowModelNode struct {
	ID     int32 `yaml:"id"`
	Supply int64 `yaml:"supply,omitempty"`
}

// FlowModelArc is one forward arc of a FlowModel.
type FlowModelArc struct {
	Tail     int32 `yaml:"tail"`
	Head     int32 `yaml:"head"`
	Capacity int64 `yaml:"capacity"`
}

// CreateFlowModel exports the solver's current problem (not its solution):
// topology and capacities as last set, independent of solve status.
func (s *Solver) CreateFlowModel() FlowModel {
	model := FlowModel{Problem: "max_flow"}
	for n := graph.NodeID(0); int(n) < s.graph.NumNodes(); n++ {
		node := FlowModelNode{ID: int32(n)}
		if n == s.source {
			node.Supply = 1
		}
		if n == s.sink {
			node.Supply = -1
		}
		model.Nodes = append(model.Nodes, node)
	}
	for a := graph.ArcID(0); int(a) < s.graph.NumArcs(); a++ {
		model.Arcs = append(model.Arcs, FlowModelArc{
			Tail:     int32(s.graph.Tail(a)),
			Head:     int32(s.graph.Head(a)),
			Capacity: s.Capacity(a),
		})
	}

	return model
}

// EncodeYAML writes the model to w as a YAML document.
func (m FlowModel) EncodeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("maxflow: encode flow model: %w", err)
	}

	return enc.Close()
}

// DecodeFlowModel reads one YAML flow model document from r.
func DecodeFlowModel(r io.Reader) (FlowModel, error) {
	var m FlowModel
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return FlowModel{}, fmt.Errorf("maxflow: decode flow model: %w", err)
	}

	return m, nil
}
