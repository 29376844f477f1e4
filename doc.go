// Package gremlin is the root of a small library for lazy, Gremlin-style
// traversals over labeled multigraphs.
//
// Packages:
//
//	core/        thread-safe in-memory labeled multigraph with the traversal access surface
//	query/       Gremlin tokens, stages, pipelines and the fluent Query builder
//	yamlgraph/   decode a core.Graph from a YAML document
//	dsl/         parse v("thor").out("parents").unique() into a bound query
//	logger/      zap logger construction for the command line
//	cmd/         cobra commands; cmd/gremlinq is the binary
//
// Quick start:
//
//	g, _ := yamlgraph.LoadFile("norse.yaml")
//	siblings, err := query.New[string, *core.Edge](g).
//		Seed("thor").As("me").
//		Out(core.LabeledAs("parents")).In(core.LabeledAs("parents")).
//		Unique().Except("me").
//		Run()
package gremlin
