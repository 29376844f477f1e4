// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gremlin/core"
)

func kinGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	for _, e := range [][3]string{
		{"thor", "jord", "parents"},  // e1
		{"thor", "odin", "parents"},  // e2
		{"magni", "thor", "parents"}, // e3
		{"thor", "sif", "spouse"},    // e4
		{"baldr", "odin", "parents"}, // e5
	} {
		_, err := g.AddEdge(e[0], e[1], e[2])
		require.NoError(t, err)
	}

	return g
}

func TestEdgesOfInsertionOrder(t *testing.T) {
	g := kinGraph(t)

	all, err := g.EdgesOf("thor", nil)
	require.NoError(t, err)
	require.Equal(t, []string{"e1", "e2", "e3", "e4"}, edgeIDs(all))

	parents, err := g.EdgesOf("thor", core.LabeledAs("parents"))
	require.NoError(t, err)
	require.Equal(t, []string{"e1", "e2", "e3"}, edgeIDs(parents))

	outgoing, err := g.EdgesOf("thor", g.IsOutgoing)
	require.NoError(t, err)
	require.Equal(t, []string{"e1", "e2", "e4"}, edgeIDs(outgoing))

	_, err = g.EdgesOf("loki", nil)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.EdgesOf("", nil)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestEdgesOfNilGraph(t *testing.T) {
	var g *core.Graph

	_, err := g.EdgesOf("thor", nil)
	require.ErrorIs(t, err, core.ErrNilGraph)
	_, err = g.IncidentEdges("thor")
	require.ErrorIs(t, err, core.ErrNilGraph)
}

func TestEndpointsOfConsultsEverySlot(t *testing.T) {
	g := kinGraph(t)
	e, err := g.GetEdge("e2")
	require.NoError(t, err)

	var consulted []string
	ends, err := g.EndpointsOf(e, func(n string) bool {
		consulted = append(consulted, n)
		return n != "thor"
	})
	require.NoError(t, err)
	require.Equal(t, []string{"thor", "odin"}, consulted)
	require.Equal(t, []string{"odin"}, ends)

	ends, err = g.EndpointsOf(e, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"thor", "odin"}, ends)

	_, err = g.EndpointsOf(nil, nil)
	require.ErrorIs(t, err, core.ErrNilEdge)
	_, err = g.EndpointsOf(&core.Edge{From: "a"}, nil)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestDirectionClassification(t *testing.T) {
	g := core.NewMixedGraph(core.WithDirected(true))
	directedID, _ := g.AddEdge("a", "b", "x")
	undirectedID, _ := g.AddEdge("a", "c", "x", core.WithEdgeDirected(false))
	directed, _ := g.GetEdge(directedID)
	undirected, _ := g.GetEdge(undirectedID)

	tests := []struct {
		node     string
		edge     *core.Edge
		in, out  bool
		scenario string
	}{
		{"a", directed, false, true, "directed source"},
		{"b", directed, true, false, "directed target"},
		{"c", directed, false, false, "not incident"},
		{"a", undirected, true, true, "undirected from"},
		{"c", undirected, true, true, "undirected to"},
		{"a", nil, false, false, "nil edge"},
	}
	for _, tc := range tests {
		t.Run(tc.scenario, func(t *testing.T) {
			require.Equal(t, tc.in, g.IsIncoming(tc.node, tc.edge))
			require.Equal(t, tc.out, g.IsOutgoing(tc.node, tc.edge))
		})
	}
}

func TestNeighborhoods(t *testing.T) {
	g := kinGraph(t)

	out, err := g.Neighbors("thor")
	require.NoError(t, err)
	require.Equal(t, []string{"e1", "e2", "e4"}, edgeIDs(out))

	in, err := g.InEdges("odin")
	require.NoError(t, err)
	require.Equal(t, []string{"e2", "e5"}, edgeIDs(in))

	ids, err := g.NeighborIDs("thor")
	require.NoError(t, err)
	require.Equal(t, []string{"jord", "odin", "sif"}, ids)

	adj := g.AdjacencyList()
	require.Equal(t, []string{"e1", "e2", "e4"}, adj["thor"])
}

func TestIncidentEdgesUndirectedAndLoops(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, _ = g.AddEdge("a", "b", "x")
	_, _ = g.AddEdge("a", "a", "self")

	inc, err := g.IncidentEdges("a")
	require.NoError(t, err)
	require.Equal(t, []string{"e1", "e2"}, edgeIDs(inc))

	inc, err = g.IncidentEdges("b")
	require.NoError(t, err)
	require.Equal(t, []string{"e1"}, edgeIDs(inc))

	in, err := g.InEdges("b")
	require.NoError(t, err)
	require.Equal(t, []string{"e1"}, edgeIDs(in))
}

func TestLabeledAs(t *testing.T) {
	e := &core.Edge{Label: "parents"}
	require.True(t, core.LabeledAs()("x", e))
	require.True(t, core.LabeledAs("spouse", "parents")("x", e))
	require.False(t, core.LabeledAs("spouse")("x", e))
}
