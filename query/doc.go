// Package query provides lazy, composable traversal pipelines over any graph
// that implements the small Graph access surface.
//
// What
//
//   - A Query chains stages that move traversal tokens (Gremlin values) across
//     a graph one at a time:
//   - Seed       start paths on caller-given nodes, repeats included
//   - FollowEdges / In / Out   cross incident edges by direction and predicate
//   - Filter / FilterGremlin   keep paths by node, or by node plus checkpoints
//   - Unique     emit each node once per run
//   - As / Except / Back       record, exclude and return to named checkpoints
//   - Empty      produce nothing
//   - Then       append any custom Stage
//   - Run collects all results; All yields them lazily as an iter.Seq2.
//
// Pull model
//
//	Running a query repeatedly steps the last stage. Each stage pulls from the
//	stage before it only when it needs another input, so no stage materializes
//	more than the candidate edges and endpoints of its current input node.
//	A Step returns one of three outcomes:
//	  - Produced   a gremlin is ready for the next stage
//	  - NeedInput  progress was made but nothing is ready; step again
//	  - Exhausted  nothing more will ever be produced
//
// Ordering
//
//	Results follow the depth-first, upstream-first pull order: for
//	Seed(a, b).Out(p) every target of a is produced before any target of b,
//	and targets of one node follow the graph's EdgesOf order.
//
// Lifecycle
//
//	A pipeline may run once. Running again, or appending a stage, fails with
//	ErrPipelineAlreadyRun until Reset clears every stage's buffers, cursors
//	and uniqueness set. Reset stays usable after any error, but an invalid
//	stage (empty label, nil predicate, nil stage) keeps failing every run:
//	build a new Query instead.
//
// Missing checkpoints
//
//	By default Back drops a path whose label was never recorded and Except
//	lets it pass. WithStrictLabels turns both cases into ErrUnknownCheckpointLabel.
//
// Observability
//
//	WithLogger (zap), WithMetrics (Prometheus) and WithTracer (OpenTelemetry)
//	instrument each run; every run carries a fresh run_id.
//
// Complexity
//
//   - Time:   O(total edges and endpoints examined), one EdgesOf call per input node
//   - Memory: O(candidates of the current node per edge stage + distinct nodes per Unique)
package query
