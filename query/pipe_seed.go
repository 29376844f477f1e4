package query

// seedStage emits one fresh gremlin per configured node, repeats included.
// It ignores its upstream.
type seedStage[N, E comparable] struct {
	nodes []N

	next int
}

func newSeedStage[N, E comparable](nodes []N) *seedStage[N, E] {
	cp := make([]N, len(nodes))
	copy(cp, nodes)

	return &seedStage[N, E]{nodes: cp}
}

func (s *seedStage[N, E]) Step(Graph[N, E], Upstream[N]) (Result[N], error) {
	if s.next >= len(s.nodes) {
		return ExhaustedResult[N](), nil
	}
	n := s.nodes[s.next]
	s.next++

	return ProducedResult(NewGremlin(n)), nil
}

func (s *seedStage[N, E]) Reset() { s.next = 0 }

func (s *seedStage[N, E]) Name() string { return "seed" }
