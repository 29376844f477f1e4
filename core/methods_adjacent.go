// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, InEdges, IncidentEdges, NeighborIDs, AdjacencyList)
// and the index helpers used by mutators.
// Determinism:
//   - Edge slices are sorted by insertion order; NeighborIDs() is sorted lex asc.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.
//   - Helpers are called only under the muEdgeAdj write lock by mutating code.

package core

import "sort"

// Neighbors returns the edges leaving id: directed edges with e.From == id plus every
// undirected edge touching id. Self-loops appear once.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	seen := make(map[string]struct{})
	out := collectBucket(g, g.adjacencyList[id], seen, nil)
	sortEdges(out)

	return out, nil
}

// InEdges returns the edges arriving at id: directed edges with e.To == id plus every
// undirected edge touching id.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) InEdges(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	seen := make(map[string]struct{})
	out := collectBucket(g, g.inbound[id], seen, nil)
	out = collectBucket(g, g.adjacencyList[id], seen, out, func(e *Edge) bool { return !e.Directed })
	sortEdges(out)

	return out, nil
}

// IncidentEdges returns every edge touching id in either direction, each exactly once,
// in insertion order.
//
// Implementation:
//   - Stage 1: Validate g and id, take read locks (muVert -> muEdgeAdj).
//   - Stage 2: Union the outgoing bucket (adjacencyList[id]) and the inbound bucket (inbound[id]).
//   - Stage 3: Sort by insertion sequence.
//
// Errors:
//   - ErrNilGraph, ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) IncidentEdges(id string) ([]*Edge, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	return incidentLocked(g, id), nil
}

// NeighborIDs returns the unique set of vertex IDs reachable over one edge of Neighbors(id),
// sorted lexicographically ascending.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		if e.From == id {
			seen[e.To] = struct{}{}
			continue
		}
		if !e.Directed && e.To == id {
			seen[e.From] = struct{}{}
		}
	}

	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// AdjacencyList returns a snapshot mapping each vertex ID to its outgoing edge IDs
// (undirected edges on both sides), each slice in insertion order.
//
// Notes:
//   - Map key iteration order is not deterministic; use Vertices() for a stable key order.
func (g *Graph) AdjacencyList() map[string][]string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	result := make(map[string][]string, len(g.adjacencyList))
	for from, toMap := range g.adjacencyList {
		var buf []*Edge
		for _, edgeMap := range toMap {
			for eid := range edgeMap {
				buf = append(buf, g.edges[eid])
			}
		}
		sortEdges(buf)
		ids := make([]string, len(buf))
		for i, e := range buf {
			ids[i] = e.ID
		}
		result[from] = ids
	}

	return result
}

// incidentLocked unions outgoing and inbound buckets of id. Caller holds muEdgeAdj.
func incidentLocked(g *Graph, id string) []*Edge {
	seen := make(map[string]struct{})
	out := collectBucket(g, g.adjacencyList[id], seen, nil)
	out = collectBucket(g, g.inbound[id], seen, out)
	sortEdges(out)

	return out
}

// collectBucket appends every edge referenced by bucket that is not yet in seen
// and passes all keep filters.
func collectBucket(g *Graph, bucket map[string]map[string]struct{}, seen map[string]struct{}, out []*Edge, keep ...func(*Edge) bool) []*Edge {
	var eid string
	for _, edgeSet := range bucket {
		for eid = range edgeSet {
			if _, dup := seen[eid]; dup {
				continue
			}
			e := g.edges[eid]
			if e.IsNil() || !passesAll(e, keep) {
				continue
			}
			seen[eid] = struct{}{}
			out = append(out, e)
		}
	}

	return out
}

func passesAll(e *Edge, keep []func(*Edge) bool) bool {
	for _, k := range keep {
		if !k(e) {
			return false
		}
	}

	return true
}

// indexEdge registers e in adjacencyList and, for directed edges, in inbound.
func indexEdge(g *Graph, e *Edge) {
	ensureBucket(g.adjacencyList, e.From, e.To)
	g.adjacencyList[e.From][e.To][e.ID] = struct{}{}

	if e.Directed {
		ensureBucket(g.inbound, e.To, e.From)
		g.inbound[e.To][e.From][e.ID] = struct{}{}
		return
	}
	if e.From != e.To {
		ensureBucket(g.adjacencyList, e.To, e.From)
		g.adjacencyList[e.To][e.From][e.ID] = struct{}{}
	}
}

// ensureBucket guarantees that index[a] and index[a][b] are initialized.
func ensureBucket(index map[string]map[string]map[string]struct{}, a, b string) {
	if index[a] == nil {
		index[a] = make(map[string]map[string]struct{})
	}
	if index[a][b] == nil {
		index[a][b] = make(map[string]struct{})
	}
}

// removeAdjacency deletes every index entry for e.
func removeAdjacency(g *Graph, e *Edge) {
	dropFromBucket(g.adjacencyList, e.From, e.To, e.ID)
	if e.Directed {
		dropFromBucket(g.inbound, e.To, e.From, e.ID)
		return
	}
	if e.From != e.To {
		dropFromBucket(g.adjacencyList, e.To, e.From, e.ID)
	}
}

func dropFromBucket(index map[string]map[string]map[string]struct{}, a, b, eid string) {
	if m := index[a][b]; m != nil {
		delete(m, eid)
		if len(m) == 0 {
			delete(index[a], b)
		}
	}
}

// cleanupAdjacency prunes empty buckets from both indexes.
func cleanupAdjacency(g *Graph) {
	for _, index := range []map[string]map[string]map[string]struct{}{g.adjacencyList, g.inbound} {
		for u, toMap := range index {
			for v, edgeSet := range toMap {
				if len(edgeSet) == 0 {
					delete(toMap, v)
				}
			}
			if len(toMap) == 0 {
				delete(index, u)
			}
		}
	}
}
