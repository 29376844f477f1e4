package query_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gremlin/core"
	"github.com/katalvlaran/gremlin/query"
	"github.com/katalvlaran/gremlin/yamlgraph"
)

// kinQuery is the Query shape used against core graphs.
type kinQuery = query.Query[string, *core.Edge]

// parents accepts "parents" edges only.
var parents = core.LabeledAs("parents")

// loadNorse decodes testdata/norse.yaml or fails the test.
func loadNorse(t testing.TB) *core.Graph {
	t.Helper()
	g, err := yamlgraph.LoadFile(filepath.Join("testdata", "norse.yaml"))
	require.NoError(t, err)

	return g
}

func newQuery(g *core.Graph, opts ...query.Option) *kinQuery {
	return query.New[string, *core.Edge](g, opts...)
}

// stubGraph is a hand-built access surface over string edges. ends lists the
// endpoint slots of each edge; incident lists the edges of each node in order.
type stubGraph struct {
	incident map[string][]string
	ends     map[string][]string
	from     map[string]string
	calls    int
}

func (s *stubGraph) EdgesOf(n string, keep func(string, string) bool) ([]string, error) {
	s.calls++
	var out []string
	for _, e := range s.incident[n] {
		if keep == nil || keep(n, e) {
			out = append(out, e)
		}
	}

	return out, nil
}

func (s *stubGraph) EndpointsOf(e string, keep func(string) bool) ([]string, error) {
	var out []string
	for _, n := range s.ends[e] {
		if keep == nil || keep(n) {
			out = append(out, n)
		}
	}

	return out, nil
}

func (s *stubGraph) IsOutgoing(n, e string) bool { return s.from[e] == n }

func (s *stubGraph) IsIncoming(n, e string) bool {
	for _, en := range s.ends[e] {
		if en == n && s.from[e] != n {
			return true
		}
	}

	return false
}
