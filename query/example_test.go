package query_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gremlin/core"
	"github.com/katalvlaran/gremlin/query"
)

// ExampleQuery_Run finds Thor's siblings: the other children of his parents.
func ExampleQuery_Run() {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	for _, e := range [][2]string{
		{"thor", "jord"}, {"thor", "odin"},
		{"baldr", "frigg"}, {"baldr", "odin"},
		{"vidar", "gridr"}, {"vidar", "odin"},
	} {
		_, _ = g.AddEdge(e[0], e[1], "parents")
	}

	parents := core.LabeledAs("parents")
	siblings, err := query.New[string, *core.Edge](g).
		Seed("thor").As("me").
		Out(parents).In(parents).
		Unique().Except("me").
		Run()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(siblings)
	// Output: [baldr vidar]
}

// ExampleQuery_All stops pulling as soon as the loop breaks.
func ExampleQuery_All() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("a", "b", "next")
	_, _ = g.AddEdge("b", "c", "next")
	_, _ = g.AddEdge("c", "d", "next")

	q := query.New[string, *core.Edge](g).Seed("a", "b", "c").Out(nil)
	for n, err := range q.All(context.Background()) {
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(n)
		if n == "c" {
			break
		}
	}
	// Output:
	// b
	// c
}

// ExampleQuery_Back returns to a labeled node after exploring beyond it.
func ExampleQuery_Back() {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	_, _ = g.AddEdge("baldr", "frigg", "parents")
	_, _ = g.AddEdge("hodr", "frigg", "parents")
	_, _ = g.AddEdge("frigg", "fjorgynn", "parents")

	parents := core.LabeledAs("parents")
	q := query.New[string, *core.Edge](g).
		Seed("fjorgynn").In(parents).As("mother").
		In(parents).Back("mother")

	res, _ := q.Run()
	fmt.Println(res, q.CountStages())

	q.Reset()
	res, _ = q.Unique().Run()
	fmt.Println(res, q.CountStages())
	// Output:
	// [frigg frigg] 5
	// [frigg] 6
}
