package query

import "fmt"

// edgeStage moves each input gremlin across the edges incident to its node.
//
// For the current input it buffers the edges accepted by the direction filter
// and the edge predicate, then expands them one at a time into the endpoints
// accepted by the direction filter and the endpoint predicate. Every accepted
// endpoint becomes a gremlin with the input's checkpoints.
type edgeStage[N, E comparable] struct {
	name       string
	mode       Direction
	edgeOK     EdgePredicate[N, E]
	endpointOK EndpointPredicate[N, E]

	// run state
	current Gremlin[N]
	edges   []E
	edgeAt  int
	nodes   []N
	nodeAt  int
}

func newEdgeStage[N, E comparable](name string, mode Direction, edgeOK EdgePredicate[N, E], endpointOK EndpointPredicate[N, E]) *edgeStage[N, E] {
	return &edgeStage[N, E]{
		name:       name,
		mode:       mode,
		edgeOK:     edgeOK,
		endpointOK: endpointOK,
	}
}

// Step emits the next buffered endpoint. When both buffers are drained it pulls
// one new input; if that input has no candidates the stage answers NeedInput
// rather than pulling again, so each call makes at most one EdgesOf request.
func (s *edgeStage[N, E]) Step(g Graph[N, E], up Upstream[N]) (Result[N], error) {
	loaded := false
	for {
		if s.nodeAt < len(s.nodes) {
			n := s.nodes[s.nodeAt]
			s.nodeAt++

			return ProducedResult(s.current.GoTo(n)), nil
		}

		if s.edgeAt < len(s.edges) {
			e := s.edges[s.edgeAt]
			s.edgeAt++
			if err := s.expand(g, e); err != nil {
				return ExhaustedResult[N](), err
			}
			continue
		}

		if loaded {
			return NeedInputResult[N](), nil
		}

		res, err := up.Pull()
		if err != nil || res.Outcome != Produced {
			return res, err
		}
		if err = s.load(g, res.Gremlin); err != nil {
			return ExhaustedResult[N](), err
		}
		loaded = true
	}
}

// load buffers the candidate edges of in.Node.
func (s *edgeStage[N, E]) load(g Graph[N, E], in Gremlin[N]) error {
	s.current = in
	s.nodes, s.nodeAt = s.nodes[:0], 0
	s.edges, s.edgeAt = nil, 0

	edges, err := g.EdgesOf(in.Node, func(n N, e E) bool {
		return s.admitEdge(g, n, e)
	})
	if err != nil {
		return fmt.Errorf("query: %s: edges of %v: %w", s.name, in.Node, err)
	}
	s.edges = edges

	return nil
}

// expand buffers the accepted endpoints of e and checks that e really connects
// the current node to at least one other slot.
func (s *edgeStage[N, E]) expand(g Graph[N, E], e E) error {
	from := s.current.Node
	slots, sawSource := 0, false

	nodes, err := g.EndpointsOf(e, func(en N) bool {
		slots++
		if en == from {
			sawSource = true
		}

		return s.admitEndpoint(g, from, e, en)
	})
	if err != nil {
		return fmt.Errorf("query: %s: endpoints of %v: %w", s.name, e, err)
	}
	if slots < 2 || !sawSource {
		return fmt.Errorf("%w: %s: edge %v reports %d endpoint slot(s), source %v present=%t",
			ErrMalformedTraversalArity, s.name, e, slots, from, sawSource)
	}
	s.nodes, s.nodeAt = nodes, 0

	return nil
}

func (s *edgeStage[N, E]) admitEdge(g Graph[N, E], n N, e E) bool {
	switch s.mode {
	case Incoming:
		if !g.IsIncoming(n, e) {
			return false
		}
	case Outgoing:
		if !g.IsOutgoing(n, e) {
			return false
		}
	}

	return s.edgeOK == nil || s.edgeOK(n, e)
}

// admitEndpoint never returns the node the traversal came from; directional
// modes additionally require the endpoint to sit on the far side of e.
func (s *edgeStage[N, E]) admitEndpoint(g Graph[N, E], n N, e E, en N) bool {
	if en == n {
		return false
	}
	switch s.mode {
	case Incoming:
		if !g.IsOutgoing(en, e) {
			return false
		}
	case Outgoing:
		if !g.IsIncoming(en, e) {
			return false
		}
	}

	return s.endpointOK == nil || s.endpointOK(n, e, en)
}

func (s *edgeStage[N, E]) Reset() {
	var zero Gremlin[N]
	s.current = zero
	s.edges, s.edgeAt = nil, 0
	s.nodes, s.nodeAt = nil, 0
}

func (s *edgeStage[N, E]) Name() string { return s.name }
