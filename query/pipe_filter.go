package query

// filterStage passes the gremlins accepted by keep and silently drops the rest.
type filterStage[N, E comparable] struct {
	keep func(N, Gremlin[N]) bool
}

func newFilterStage[N, E comparable](keep func(N, Gremlin[N]) bool) *filterStage[N, E] {
	return &filterStage[N, E]{keep: keep}
}

// Step keeps pulling until an input is accepted, so rejections never reach the driver.
func (s *filterStage[N, E]) Step(_ Graph[N, E], up Upstream[N]) (Result[N], error) {
	for {
		res, err := up.Pull()
		if err != nil || res.Outcome != Produced {
			return res, err
		}
		if s.keep(res.Gremlin.Node, res.Gremlin) {
			return res, nil
		}
	}
}

func (s *filterStage[N, E]) Reset() {}

func (s *filterStage[N, E]) Name() string { return "filter" }

// uniqueStage emits each node at most once per run, whatever path reached it.
type uniqueStage[N, E comparable] struct {
	seen map[N]struct{}
}

func newUniqueStage[N, E comparable]() *uniqueStage[N, E] {
	return &uniqueStage[N, E]{seen: make(map[N]struct{})}
}

func (s *uniqueStage[N, E]) Step(_ Graph[N, E], up Upstream[N]) (Result[N], error) {
	for {
		res, err := up.Pull()
		if err != nil || res.Outcome != Produced {
			return res, err
		}
		if _, dup := s.seen[res.Gremlin.Node]; dup {
			continue
		}
		s.seen[res.Gremlin.Node] = struct{}{}

		return res, nil
	}
}

func (s *uniqueStage[N, E]) Reset() { clear(s.seen) }

func (s *uniqueStage[N, E]) Name() string { return "unique" }
