// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: CloneEmpty, Clone, Clear.
// Policy:
//   - Clones preserve flags, edge IDs, labels and insertion order; Properties maps are shared.

package core

import "sync/atomic"

// CloneEmpty returns a new Graph with the same flags and vertices but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph(g.flagOptions()...)
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	var id string
	var v *Vertex
	for id, v = range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Properties: v.Properties}
	}

	return clone
}

// Clone returns a deep copy of vertices, edges and both adjacency indexes.
// Edge Properties maps are shared with the source graph.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var e, ne *Edge
	for _, e = range g.edges {
		ne = &Edge{
			ID:         e.ID,
			From:       e.From,
			To:         e.To,
			Label:      e.Label,
			Directed:   e.Directed,
			Properties: e.Properties,
			seq:        e.seq,
		}
		clone.edges[ne.ID] = ne
		indexEdge(clone, ne)
	}

	return clone
}

// Clear drops all vertices and edges and resets the edge ID counter; flags are preserved.
func (g *Graph) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacencyList = make(map[string]map[string]map[string]struct{})
	g.inbound = make(map[string]map[string]map[string]struct{})
	atomic.StoreUint64(&g.nextEdgeID, 0)
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()
}

// flagOptions rebuilds the GraphOption list that reproduces g's flags. Caller holds muVert.
func (g *Graph) flagOptions() []GraphOption {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	if g.allowMixed {
		opts = append(opts, WithMixedEdges())
	}

	return opts
}
