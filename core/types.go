// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, GraphOption, EdgeOption, sentinel errors and the NewGraph constructor.
// Policy:
//   - Storage is guarded by two locks: muVert (vertices) and muEdgeAdj (edges + both adjacency indexes).
//   - Lock order is always muVert -> muEdgeAdj.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates a method was called on a nil *Graph.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNilEdge indicates a nil *Edge was handed to an edge accessor.
	ErrNilEdge = errors.New("core: edge is nil")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrMixedEdgesNotAllowed indicates a per-edge direction override when mixed-edges are disabled.
	ErrMixedEdgesNotAllowed = errors.New("core: mixed-mode per-edge overrides not allowed")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Properties stores arbitrary key-value data and is shared on shallow clones.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Properties stores arbitrary user data. It is not deep-copied by Clone.
	Properties map[string]interface{}
}

// Edge represents a labeled connection between two vertices.
//
// Each Edge has a unique ID, endpoints From→To, a free-form Label used by traversal
// predicates, and a Directed flag that overrides the Graph's default directedness when
// mixed edges are enabled.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Label names the relation carried by the edge (e.g. "parents").
	Label string

	// Directed indicates this edge is one-way (true) or bidirectional (false).
	Directed bool

	// Properties stores arbitrary per-edge payload. It is not deep-copied by Clone.
	Properties map[string]interface{}

	// seq is the insertion sequence number; enumeration order of incident edges.
	seq uint64
}

// IsNil reports whether e is a nil pointer.
func (e *Edge) IsNil() bool { return e == nil }

// IsLoop reports whether the edge starts and ends at the same vertex.
func (e *Edge) IsLoop() bool { return e != nil && e.From == e.To }

// Property returns the edge property stored under key.
func (e *Edge) Property(key string) (interface{}, bool) {
	if e == nil || e.Properties == nil {
		return nil, false
	}
	v, ok := e.Properties[key]

	return v, ok
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the default directedness for all new edges
// (true = directed, false = undirected).
func WithDirected(defaultDirected bool) GraphOption {
	return func(g *Graph) { g.directed = defaultDirected }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMixedEdges lets per-edge directedness overrides take effect.
func WithMixedEdges() GraphOption {
	return func(g *Graph) { g.allowMixed = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeDirected overrides the Graph's default directedness for this edge.
// Requires a mixed graph unless the value equals the graph default.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *Edge) { e.Directed = directed }
}

// WithEdgeProperty attaches one key/value pair to the edge payload.
func WithEdgeProperty(key string, value interface{}) EdgeOption {
	return func(e *Edge) {
		if e.Properties == nil {
			e.Properties = make(map[string]interface{})
		}
		e.Properties[key] = value
	}
}

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	DirectedDefault     bool
	AllowsMulti         bool
	AllowsLoops         bool
	MixedMode           bool
	VertexCount         int
	EdgeCount           int
	DirectedEdgeCount   int
	UndirectedEdgeCount int
	LabelCounts         map[string]int
}

// Graph is the core in-memory labeled multigraph.
//
// It supports directed vs. undirected edges, parallel edges (multi-edges) and self-loops.
// muVert protects vertices; muEdgeAdj protects edges, adjacencyList and inbound.
// nextEdgeID is an atomic counter for unique Edge.ID generation and insertion order.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges, adjacencyList, inbound

	// Configuration flags
	directed   bool // default directedness
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops
	allowMixed bool // allow per-edge directedness

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacencyList[from][to][edgeID]; undirected edges are mirrored as [to][from].
	adjacencyList map[string]map[string]map[string]struct{}

	// inbound[to][from][edgeID] for directed edges only, so incoming edges
	// can be enumerated without scanning the catalog.
	inbound map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, no loops, no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
		inbound:       make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
