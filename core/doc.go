// Package core provides a thread-safe in-memory labeled multigraph that
// doubles as the reference Graph Access Surface for the query engine.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Global vs. per-edge orientation in “mixed” graphs (WithMixedEdges + WithEdgeDirected)
//   - Labeled edges with an arbitrary property payload (AddEdge label, WithEdgeProperty)
//   - Vertex properties (SetVertexProperty, VertexProperty)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] and, for directed edges, inbound[to][from][edgeID]
//   - Collision-free atomic Edge.ID generation (“e1”, “e2”, …) that also fixes
//     the enumeration order of incident edges
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Traversal surface:
//
//	EdgesOf(id, keep)        // incident edges in insertion order, filtered by keep(id, e)
//	EndpointsOf(e, keep)     // endpoint slots From, To filtered by keep(endpoint)
//	IsIncoming(id, e)        // e arrives at id (or is undirected and touches id)
//	IsOutgoing(id, e)        // e leaves id (or is undirected and touches id)
//
// *Graph satisfies query.Graph[string, *core.Edge]; vertex IDs are the node references and
// *Edge pointers are the edge references.
//
// Core Methods:
//
//	AddVertex(id) error                         // O(1)
//	RemoveVertex(id) error                      // O(E)
//	AddEdge(from, to, label, opts...) (id, err) // O(1) amortized
//	RemoveEdge(edgeID) error                    // O(V) bucket cleanup
//	Neighbors(id) / InEdges(id) / IncidentEdges(id)
//	Vertices() / Edges() / EdgesByLabel(label)
//	Degree(id) (in, out, undirected, err)
//	Clone() / CloneEmpty() / Clear()
//	Stats() *GraphStats
//
// Errors:
//
//	ErrNilGraph              accessor called on a nil *Graph
//	ErrEmptyVertexID         zero-length vertex ID
//	ErrVertexNotFound        missing vertex
//	ErrEdgeNotFound          missing edge
//	ErrNilEdge               nil edge handed to an accessor
//	ErrLoopNotAllowed        self-loop when loops disabled
//	ErrMultiEdgeNotAllowed   parallel edge when multi-edges disabled
//	ErrMixedEdgesNotAllowed  per-edge override without mixed-mode
package core
