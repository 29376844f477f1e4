package query_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gremlin/core"
	"github.com/katalvlaran/gremlin/query"
)

// NorseSuite runs kinship traversals over testdata/norse.yaml.
type NorseSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *NorseSuite) SetupSuite() {
	s.g = loadNorse(s.T())
}

func (s *NorseSuite) run(q *kinQuery) []string {
	got, err := q.Run()
	require.NoError(s.T(), err)

	return got
}

// TestParents checks out(parents) yields both parents in edge order.
func (s *NorseSuite) TestParents() {
	got := s.run(newQuery(s.g).Seed("thor").Out(parents))
	require.Equal(s.T(), []string{"jord", "odin"}, got)
}

// TestChildren checks in(parents) yields every child.
func (s *NorseSuite) TestChildren() {
	got := s.run(newQuery(s.g).Seed("thor").In(parents))
	require.Equal(s.T(), []string{"magni", "modi", "thrud"}, got)
}

// TestSiblingsWithRepeats keeps one result per parent path.
func (s *NorseSuite) TestSiblingsWithRepeats() {
	got := s.run(newQuery(s.g).Seed("thor").Out(parents).In(parents))
	require.Equal(s.T(), []string{"thor", "thor", "baldr", "hodr", "vidar"}, got)
}

// TestSiblingsUnique collapses repeats to the true sibling set.
func (s *NorseSuite) TestSiblingsUnique() {
	got := s.run(newQuery(s.g).Seed("thor").Out(parents).In(parents).Unique())
	require.Equal(s.T(), []string{"thor", "baldr", "hodr", "vidar"}, got)
}

// TestSiblingsExceptSelf removes the starting node by checkpoint.
func (s *NorseSuite) TestSiblingsExceptSelf() {
	got := s.run(newQuery(s.g).Seed("thor").As("me").Out(parents).In(parents).Unique().Except("me"))
	require.Equal(s.T(), []string{"baldr", "hodr", "vidar"}, got)
}

// TestBackToChild returns to a labeled node after walking past it.
func (s *NorseSuite) TestBackToChild() {
	got := s.run(newQuery(s.g).Seed("fjorgynn").In(parents).As("x").In(parents).Back("x").Unique())
	require.Equal(s.T(), []string{"frigg"}, got)
}

// TestBackKeepsOtherCheckpoints checks Back leaves unrelated checkpoints usable.
func (s *NorseSuite) TestBackKeepsOtherCheckpoints() {
	got := s.run(newQuery(s.g).
		Seed("thor").As("me").
		Out(parents).As("parent").
		In(parents).Back("parent").
		Except("me"))
	// every sibling path returns to its parent, none of which is thor
	require.Equal(s.T(), []string{"jord", "odin", "odin", "odin", "odin"}, got)
}

// TestFilterByName keeps the subsequence whose name does not start with "o".
func (s *NorseSuite) TestFilterByName() {
	got := s.run(newQuery(s.g).Seed("thor", "odin", "odr").Filter(func(n string) bool {
		return !strings.HasPrefix(n, "o")
	}))
	require.Equal(s.T(), []string{"thor"}, got)
}

// TestFilterGremlinUsesCheckpoints filters grandparents on the same side as the parent.
func (s *NorseSuite) TestFilterGremlinUsesCheckpoints() {
	got := s.run(newQuery(s.g).
		Seed("thor").Out(parents).As("parent").Out(parents).
		FilterGremlin(func(n string, gr query.Gremlin[string]) bool {
			p, ok := gr.Checkpoint("parent")
			return ok && p == "odin" && n != "bestla"
		}))
	require.Equal(s.T(), []string{"bor"}, got)
}

// TestFollowEdgesAnyLabel walks every incident edge in insertion order.
func (s *NorseSuite) TestFollowEdgesAnyLabel() {
	got := s.run(newQuery(s.g).Seed("thor").FollowEdges(nil, nil))
	require.Equal(s.T(), []string{"jord", "odin", "magni", "modi", "thrud", "sif"}, got)
}

// TestFollowEdgesEndpointPredicate filters endpoints by edge payload.
func (s *NorseSuite) TestFollowEdgesEndpointPredicate() {
	mothers := func(_ string, e *core.Edge, _ string) bool {
		role, _ := e.Property("role")
		return role == "mother"
	}
	got := s.run(newQuery(s.g).Seed("thor", "modi").FollowEdges(parents, mothers))
	require.Equal(s.T(), []string{"jord", "sif"}, got)
}

// TestOutAnyLabel includes spouse edges.
func (s *NorseSuite) TestOutAnyLabel() {
	got := s.run(newQuery(s.g).Seed("thor").Out(nil))
	require.Equal(s.T(), []string{"jord", "odin", "sif"}, got)
}

// TestIsolatedNode yields nothing without error.
func (s *NorseSuite) TestIsolatedNode() {
	got := s.run(newQuery(s.g).Seed("odr").Out(nil).In(nil))
	require.Empty(s.T(), got)
}

// TestSeedOrderAcrossInputs emits all targets of one input before the next.
func (s *NorseSuite) TestSeedOrderAcrossInputs() {
	got := s.run(newQuery(s.g).Seed("thor", "odr", "baldr").Out(parents))
	require.Equal(s.T(), []string{"jord", "odin", "frigg", "odin"}, got)
}

// TestUnknownSeedNode surfaces the graph error.
func (s *NorseSuite) TestUnknownSeedNode() {
	_, err := newQuery(s.g).Seed("loki").Out(parents).Run()
	require.ErrorIs(s.T(), err, core.ErrVertexNotFound)
}

// TestEmptyStage stops everything upstream.
func (s *NorseSuite) TestEmptyStage() {
	q := newQuery(s.g).Seed("thor").Empty().Out(parents)
	require.Equal(s.T(), 3, q.CountStages())
	require.Empty(s.T(), s.run(q))
}

func TestNorseSuite(t *testing.T) {
	suite.Run(t, new(NorseSuite))
}
