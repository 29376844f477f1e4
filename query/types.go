// Options and error definitions for traversal pipelines.

package query

import (
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Sentinel errors for pipeline construction and execution.
var (
	// ErrPipelineAlreadyRun is returned when a pipeline is run or extended
	// after a run without an intervening Reset.
	ErrPipelineAlreadyRun = errors.New("query: pipeline already run; call Reset first")

	// ErrUnknownCheckpointLabel is returned in strict mode when Back or Except
	// reference a label the gremlin never recorded.
	ErrUnknownCheckpointLabel = errors.New("query: unknown checkpoint label")

	// ErrMalformedTraversalArity is returned when the graph reports an edge whose
	// endpoint slots cannot be reconciled with the node it was enumerated from.
	ErrMalformedTraversalArity = errors.New("query: malformed traversal arity")

	// ErrNilGraph is returned if a nil graph is bound to a Query.
	ErrNilGraph = errors.New("query: graph is nil")

	// ErrNilStage is returned when a nil Stage is appended to a Pipeline.
	ErrNilStage = errors.New("query: stage is nil")

	// ErrEmptyLabel is returned when As, Except or Back receive an empty label.
	ErrEmptyLabel = errors.New("query: checkpoint label is empty")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("query: invalid option supplied")
)

const tracerName = "gremlin/query"

// Option configures Query behavior via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by Run.
type Option func(*Options)

// Options holds parameters shared by every stage of a Query.
type Options struct {
	// StrictLabels turns a missing checkpoint in Back/Except into ErrUnknownCheckpointLabel
	// instead of dropping (Back) or passing (Except) the gremlin.
	StrictLabels bool

	// Logger receives run lifecycle events. Defaults to zap.NewNop().
	Logger *zap.Logger

	// Metrics, if non-nil, records run counts, result counts and durations.
	Metrics *Metrics

	// Tracer opens one span per run. Defaults to the global otel tracer.
	Tracer trace.Tracer

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - lenient labels
//   - no-op logger
//   - no metrics
//   - global otel tracer
func DefaultOptions() Options {
	return Options{
		StrictLabels: false,
		Logger:       zap.NewNop(),
		Tracer:       otel.Tracer(tracerName),
	}
}

// WithStrictLabels makes Back and Except fail on labels that were never recorded.
func WithStrictLabels() Option {
	return func(o *Options) { o.StrictLabels = true }
}

// WithLogger sets the logger used for run lifecycle events.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.err = fmt.Errorf("%w: logger cannot be nil", ErrOptionViolation)
			return
		}
		o.Logger = l
	}
}

// WithMetrics attaches a Metrics collector created by NewMetrics.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) {
		if m == nil {
			o.err = fmt.Errorf("%w: metrics cannot be nil", ErrOptionViolation)
			return
		}
		o.Metrics = m
	}
}

// WithTracer overrides the tracer used for run spans.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracer = t
		}
	}
}

// Direction selects which incident edges an edge-traversal stage follows.
type Direction uint8

const (
	// All follows every incident edge regardless of orientation.
	All Direction = iota
	// Incoming follows edges arriving at the current node.
	Incoming
	// Outgoing follows edges leaving the current node.
	Outgoing
)

func (d Direction) String() string {
	switch d {
	case All:
		return "all"
	case Incoming:
		return "in"
	case Outgoing:
		return "out"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// EdgePredicate decides whether edge e incident to node n is followed.
type EdgePredicate[N, E comparable] func(n N, e E) bool

// EndpointPredicate decides whether endpoint of edge e, reached from node n, is emitted.
type EndpointPredicate[N, E comparable] func(n N, e E, endpoint N) bool
