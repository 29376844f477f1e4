package query

// Graph is the read-only access surface a traversal needs.
//
// N identifies nodes and E identifies edges; both are compared by ==, so they
// should be stable handles (IDs or pointers) owned by the graph. The surface must
// not be mutated while a Query over it is running.
type Graph[N, E comparable] interface {
	// EdgesOf returns the edges incident to n, in a stable order, for which keep
	// returns true. A nil keep accepts every edge.
	EdgesOf(n N, keep func(N, E) bool) ([]E, error)

	// EndpointsOf returns the endpoints of e accepted by keep. keep must be
	// consulted once for every endpoint slot of e, including the one the
	// traversal came from; the engine relies on this to validate arity.
	EndpointsOf(e E, keep func(N) bool) ([]N, error)

	// IsIncoming reports whether e arrives at n.
	IsIncoming(n N, e E) bool

	// IsOutgoing reports whether e leaves n.
	IsOutgoing(n N, e E) bool
}
