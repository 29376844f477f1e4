// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gremlin/core"
)

const (
	nWriters = 8
	nReaders = 8
	nRounds  = 50
)

// TestConcurrentReadersAndWriters mixes AddEdge with EdgesOf/EndpointsOf under -race.
func TestConcurrentReadersAndWriters(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	require.NoError(t, g.AddVertex("hub"))

	var eg errgroup.Group
	for w := 0; w < nWriters; w++ {
		eg.Go(func() error {
			for i := 0; i < nRounds; i++ {
				if _, err := g.AddEdge("hub", fmt.Sprintf("w%d-%d", w, i), "spoke"); err != nil {
					return err
				}
			}
			return nil
		})
	}
	for r := 0; r < nReaders; r++ {
		eg.Go(func() error {
			for i := 0; i < nRounds; i++ {
				edges, err := g.EdgesOf("hub", g.IsOutgoing)
				if err != nil {
					return err
				}
				for _, e := range edges {
					if _, err := g.EndpointsOf(e, nil); err != nil {
						return err
					}
				}
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait())

	edges, err := g.EdgesOf("hub", nil)
	require.NoError(t, err)
	require.Len(t, edges, nWriters*nRounds)
	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		seen[e.ID] = struct{}{}
	}
	require.Len(t, seen, nWriters*nRounds, "edge IDs must be unique")
}
