package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flownet/graph"
	"github.com/katalvlaran/flownet/maxflow"
)

const sampleInstance = `c Diamond with a cross arc.
p max 4 5
n 1 s
n 4 t
a 1 2 10
a 1 3 10
a 2 3 2
a 2 4 4
a 3 4 9
`

// TestParseDIMACS checks a well-formed instance end to end.
func TestParseDIMACS(t *testing.T) {
	p, err := parseDIMACS(strings.NewReader(sampleInstance))
	require.NoError(t, err)
	require.Equal(t, 4, p.graph.NumNodes())
	require.Equal(t, 5, p.graph.NumArcs())
	require.Equal(t, graph.NodeID(0), p.source)
	require.Equal(t, graph.NodeID(3), p.sink)
	require.Equal(t, []int64{10, 10, 2, 4, 9}, p.capacities)

	s := maxflow.New(p.graph, p.source, p.sink)
	for i, arc := range p.arcs {
		require.NoError(t, s.SetArcCapacity(arc, p.capacities[i]))
	}
	require.True(t, s.Solve())
	require.Equal(t, int64(13), s.OptimalFlow())
}

// TestParseDIMACSErrors covers the rejection paths.
func TestParseDIMACSErrors(t *testing.T) {
	cases := map[string]string{
		"missing problem line": "a 1 2 3\n",
		"wrong problem kind":   "p min 2 1\na 1 2 3\n",
		"short arc line":       "p max 2 1\nn 1 s\nn 2 t\na 1 2\n",
		"negative capacity":    "p max 2 1\nn 1 s\nn 2 t\na 1 2 -5\n",
		"unknown descriptor":   "p max 2 1\nn 1 s\nn 2 t\nx 1 2 3\n",
		"bad node flag":        "p max 2 1\nn 1 q\nn 2 t\na 1 2 3\n",
		"arc endpoint range":   "p max 2 1\nn 1 s\nn 2 t\na 1 9 3\n",
		"no endpoints":         "p max 2 1\na 1 2 3\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseDIMACS(strings.NewReader(input))
			require.Error(t, err)
		})
	}
}

// TestSolveCommand runs the CLI end to end against a temp instance.
func TestSolveCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "instance.max")
	require.NoError(t, os.WriteFile(path, []byte(sampleInstance), 0o644))

	root := newRootCmd()
	var out strings.Builder
	root.SetOut(&out)
	root.SetArgs([]string{"solve", "--cut", path})
	require.NoError(t, root.Execute())

	require.Contains(t, out.String(), "status: OPTIMAL")
	require.Contains(t, out.String(), "optimal flow: 13")
	require.Contains(t, out.String(), "source-side cut:")
}
