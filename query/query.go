package query

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Query binds a Pipeline to a Graph and exposes the fluent builder.
//
// Builder methods return the same *Query so calls chain. The first builder
// failure is kept and returned by Err and by every run; stages requested after
// it are not added. Only a rejected append to a pipeline that already ran is
// cleared by Reset. A Query is not safe for concurrent use; independent queries
// over the same unchanging graph may run concurrently.
type Query[N, E comparable] struct {
	graph    Graph[N, E]
	pipeline *Pipeline[N, E]
	opts     Options

	initErr error // survives Reset
	err     error // first builder error
}

// New returns an empty Query over g.
//
// A nil g or an invalid option does not panic; the failure is reported by Err
// and by Run.
func New[N, E comparable](g Graph[N, E], opts ...Option) *Query[N, E] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	q := &Query[N, E]{
		graph:    g,
		pipeline: NewPipeline[N, E](),
		opts:     o,
		initErr:  o.err,
	}
	if g == nil {
		q.initErr = ErrNilGraph
	}

	return q
}

// Err returns the first construction or builder error, if any.
func (q *Query[N, E]) Err() error {
	if q.initErr != nil {
		return q.initErr
	}

	return q.err
}

// Graph returns the graph the query is bound to.
func (q *Query[N, E]) Graph() Graph[N, E] { return q.graph }

// Pipeline returns the underlying pipeline.
func (q *Query[N, E]) Pipeline() *Pipeline[N, E] { return q.pipeline }

// CountStages returns the number of stages built so far.
func (q *Query[N, E]) CountStages() int { return q.pipeline.CountStages() }

func (q *Query[N, E]) fail(err error) *Query[N, E] {
	if q.err == nil {
		q.err = err
	}

	return q
}

// Then appends a caller-supplied stage.
func (q *Query[N, E]) Then(s Stage[N, E]) *Query[N, E] {
	if q.err != nil {
		return q
	}
	if err := q.pipeline.Append(s); err != nil {
		return q.fail(err)
	}

	return q
}

// Seed starts paths at nodes, in order, repeats included.
func (q *Query[N, E]) Seed(nodes ...N) *Query[N, E] {
	return q.Then(newSeedStage[N, E](nodes))
}

// FollowEdges moves along every incident edge accepted by edge to every other
// endpoint accepted by endpoint. Nil predicates accept everything.
func (q *Query[N, E]) FollowEdges(edge EdgePredicate[N, E], endpoint EndpointPredicate[N, E]) *Query[N, E] {
	return q.Then(newEdgeStage("followEdges", All, edge, endpoint))
}

// In moves from each node to the sources of its incoming edges accepted by edge.
func (q *Query[N, E]) In(edge EdgePredicate[N, E]) *Query[N, E] {
	return q.Then(newEdgeStage[N, E]("in", Incoming, edge, nil))
}

// Out moves from each node to the targets of its outgoing edges accepted by edge.
func (q *Query[N, E]) Out(edge EdgePredicate[N, E]) *Query[N, E] {
	return q.Then(newEdgeStage[N, E]("out", Outgoing, edge, nil))
}

// Filter keeps the paths whose current node satisfies keep.
func (q *Query[N, E]) Filter(keep func(N) bool) *Query[N, E] {
	if keep == nil {
		return q.fail(fmt.Errorf("%w: filter predicate cannot be nil", ErrOptionViolation))
	}

	return q.Then(newFilterStage[N, E](func(n N, _ Gremlin[N]) bool { return keep(n) }))
}

// FilterGremlin is Filter with access to the path's checkpoints.
func (q *Query[N, E]) FilterGremlin(keep func(N, Gremlin[N]) bool) *Query[N, E] {
	if keep == nil {
		return q.fail(fmt.Errorf("%w: filter predicate cannot be nil", ErrOptionViolation))
	}

	return q.Then(newFilterStage[N, E](keep))
}

// Unique drops every path whose current node was already emitted during the run.
func (q *Query[N, E]) Unique() *Query[N, E] {
	return q.Then(newUniqueStage[N, E]())
}

// As records the current node under label.
func (q *Query[N, E]) As(label string) *Query[N, E] {
	if label == "" {
		return q.fail(fmt.Errorf("%w: as", ErrEmptyLabel))
	}

	return q.Then(&asStage[N, E]{label: label})
}

// Except drops paths currently standing on the node recorded under label.
func (q *Query[N, E]) Except(label string) *Query[N, E] {
	if label == "" {
		return q.fail(fmt.Errorf("%w: except", ErrEmptyLabel))
	}

	return q.Then(&exceptStage[N, E]{label: label, strict: q.opts.StrictLabels})
}

// Back returns each path to the node recorded under label.
func (q *Query[N, E]) Back(label string) *Query[N, E] {
	if label == "" {
		return q.fail(fmt.Errorf("%w: back", ErrEmptyLabel))
	}

	return q.Then(&backStage[N, E]{label: label, strict: q.opts.StrictLabels})
}

// Empty appends a stage that produces nothing.
func (q *Query[N, E]) Empty() *Query[N, E] {
	return q.Then(emptyStage[N, E]{})
}

// Reset clears all run state so the query can be extended or run again.
// Stage configuration is kept, and so is any invalid-stage error: the pipeline
// it left behind is shorter than the one requested.
func (q *Query[N, E]) Reset() {
	q.pipeline.Reset()
	if errors.Is(q.err, ErrPipelineAlreadyRun) {
		q.err = nil
	}
}

// Run executes the query and returns the produced nodes in order.
func (q *Query[N, E]) Run() ([]N, error) {
	return q.RunContext(context.Background())
}

// RunContext is Run with cancellation checked between pulls.
func (q *Query[N, E]) RunContext(ctx context.Context) ([]N, error) {
	out := make([]N, 0)
	err := q.execute(ctx, func(n N) bool {
		out = append(out, n)
		return true
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// All returns the results as a lazy sequence. Each node is pulled through the
// pipeline on demand and breaking out of the loop stops the run. A failure is
// yielded once, with the zero node, as the last pair.
//
// Iterating counts as a run: iterate again only after Reset.
func (q *Query[N, E]) All(ctx context.Context) iter.Seq2[N, error] {
	return func(yield func(N, error) bool) {
		err := q.execute(ctx, func(n N) bool { return yield(n, nil) })
		if err != nil {
			var zero N
			yield(zero, err)
		}
	}
}

func (q *Query[N, E]) execute(ctx context.Context, yield func(N) bool) error {
	stages := q.pipeline.CountStages()
	log := q.opts.Logger.With(zap.String("run_id", uuid.NewString()))

	ctx, span := q.opts.Tracer.Start(ctx, "query.Run",
		trace.WithAttributes(attribute.Int("gremlin.stages", stages)))
	defer span.End()

	start := time.Now()
	results := 0
	err := q.Err()
	if err == nil {
		log.Debug("query run started",
			zap.Int("stages", stages),
			zap.Strings("pipeline", q.pipeline.StageNames()))

		err = q.pipeline.drive(ctx, q.graph, func(n N) bool {
			results++
			return yield(n)
		})
	}
	elapsed := time.Since(start)

	span.SetAttributes(attribute.Int("gremlin.results", results))
	q.opts.Metrics.observe(outcomeOf(err), results, elapsed)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Warn("query run failed",
			zap.Error(err),
			zap.Int("results", results),
			zap.Duration("elapsed", elapsed))

		return err
	}

	log.Debug("query run finished",
		zap.Int("results", results),
		zap.Duration("elapsed", elapsed))

	return nil
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, ErrPipelineAlreadyRun):
		return outcomeAlreadyRun
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return outcomeCanceled
	default:
		return outcomeError
	}
}
