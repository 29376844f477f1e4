// SPDX-License-Identifier: MIT
//
// File: access.go
// Role: Predicate-filtered enumeration used by traversal engines (EdgesOf, EndpointsOf)
// and structural direction classification (IsIncoming, IsOutgoing).
// Determinism:
//   - EdgesOf enumerates incident edges in insertion order.
//   - EndpointsOf enumerates the two endpoint slots in order From, To.
// Concurrency:
//   - EdgesOf snapshots the incident set under read locks and calls keep after releasing them,
//     so predicates may call back into the graph.

package core

// EdgesOf returns the edges incident to vertex id (either direction, each once) for which
// keep returns true. A nil keep accepts every edge.
//
// Implementation:
//   - Stage 1: Snapshot IncidentEdges(id) under read locks.
//   - Stage 2: Filter the snapshot with keep outside the locks.
//
// Errors:
//   - ErrNilGraph: if g is nil.
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(d log d + d·k) where k is the cost of keep, Space O(d).
func (g *Graph) EdgesOf(id string, keep func(string, *Edge) bool) ([]*Edge, error) {
	edges, err := g.IncidentEdges(id)
	if err != nil {
		return nil, err
	}
	if keep == nil {
		return edges, nil
	}

	out := edges[:0]
	for _, e := range edges {
		if keep(id, e) {
			out = append(out, e)
		}
	}

	return out, nil
}

// EndpointsOf returns the endpoint vertex IDs of e accepted by keep, in slot order (From, To).
// keep is consulted once per slot, so a self-loop reports its vertex twice.
// A nil keep accepts every slot.
//
// Errors:
//   - ErrNilEdge: if e is nil.
//   - ErrEmptyVertexID: if the edge carries an empty endpoint.
func (g *Graph) EndpointsOf(e *Edge, keep func(string) bool) ([]string, error) {
	if e.IsNil() {
		return nil, ErrNilEdge
	}
	if e.From == "" || e.To == "" {
		return nil, ErrEmptyVertexID
	}

	out := make([]string, 0, 2)
	for _, id := range [2]string{e.From, e.To} {
		if keep == nil || keep(id) {
			out = append(out, id)
		}
	}

	return out, nil
}

// IsOutgoing reports whether e leaves id: e.From == id, or e is undirected and touches id.
func (g *Graph) IsOutgoing(id string, e *Edge) bool {
	if e.IsNil() {
		return false
	}

	return e.From == id || (!e.Directed && e.To == id)
}

// IsIncoming reports whether e arrives at id: e.To == id, or e is undirected and touches id.
func (g *Graph) IsIncoming(id string, e *Edge) bool {
	if e.IsNil() {
		return false
	}

	return e.To == id || (!e.Directed && e.From == id)
}

// LabeledAs returns an edge predicate, in the shape EdgesOf expects, that accepts
// edges whose Label is one of labels. With no labels every edge is accepted.
func LabeledAs(labels ...string) func(string, *Edge) bool {
	if len(labels) == 0 {
		return func(string, *Edge) bool { return true }
	}
	set := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		set[l] = struct{}{}
	}

	return func(_ string, e *Edge) bool {
		_, ok := set[e.Label]
		return ok
	}
}
