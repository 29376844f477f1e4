package query

import "sort"

// Gremlin is a traversal token: the node a path currently sits on plus the
// named checkpoints recorded along the way.
//
// Gremlins are values. The checkpoint map is shared between copies and never
// written in place; WithCheckpoint allocates a fresh map, so copying a Gremlin
// costs at most O(#checkpoints).
type Gremlin[N comparable] struct {
	// Node is the current node of the path.
	Node N

	checkpoints map[string]N
}

// NewGremlin returns a gremlin on n with no checkpoints.
func NewGremlin[N comparable](n N) Gremlin[N] {
	return Gremlin[N]{Node: n}
}

// Checkpoint returns the node recorded under label.
func (g Gremlin[N]) Checkpoint(label string) (N, bool) {
	n, ok := g.checkpoints[label]

	return n, ok
}

// Checkpoints returns a copy of the checkpoint map.
func (g Gremlin[N]) Checkpoints() map[string]N {
	out := make(map[string]N, len(g.checkpoints))
	for k, v := range g.checkpoints {
		out[k] = v
	}

	return out
}

// Labels returns the recorded checkpoint names sorted lexicographically.
func (g Gremlin[N]) Labels() []string {
	labels := make([]string, 0, len(g.checkpoints))
	for k := range g.checkpoints {
		labels = append(labels, k)
	}
	sort.Strings(labels)

	return labels
}

// GoTo returns a gremlin on n carrying the same checkpoints.
func (g Gremlin[N]) GoTo(n N) Gremlin[N] {
	g.Node = n

	return g
}

// WithCheckpoint returns a gremlin whose checkpoints additionally map label to
// the current node, overwriting any previous entry for label.
func (g Gremlin[N]) WithCheckpoint(label string) Gremlin[N] {
	cp := make(map[string]N, len(g.checkpoints)+1)
	for k, v := range g.checkpoints {
		cp[k] = v
	}
	cp[label] = g.Node
	g.checkpoints = cp

	return g
}
