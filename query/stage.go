package query

import "fmt"

// Outcome tags the result of one Stage.Step call.
type Outcome uint8

const (
	// Exhausted means the stage will never produce another gremlin.
	Exhausted Outcome = iota
	// NeedInput asks the driver to step the stage again; upstream made progress
	// but nothing is ready yet.
	NeedInput
	// Produced carries a gremlin for the next stage.
	Produced
)

func (o Outcome) String() string {
	switch o {
	case Exhausted:
		return "exhausted"
	case NeedInput:
		return "need-input"
	case Produced:
		return "produced"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}

// Result is the tagged value returned by Stage.Step. Gremlin is set only when
// Outcome is Produced.
type Result[N comparable] struct {
	Outcome Outcome
	Gremlin Gremlin[N]
}

// ProducedResult wraps g as a Produced result.
func ProducedResult[N comparable](g Gremlin[N]) Result[N] {
	return Result[N]{Outcome: Produced, Gremlin: g}
}

// NeedInputResult returns a NeedInput result.
func NeedInputResult[N comparable]() Result[N] {
	return Result[N]{Outcome: NeedInput}
}

// ExhaustedResult returns an Exhausted result.
func ExhaustedResult[N comparable]() Result[N] {
	return Result[N]{Outcome: Exhausted}
}

// Upstream is the previous link of a pipeline as seen by a stage.
type Upstream[N comparable] interface {
	// Pull steps the previous stage once.
	Pull() (Result[N], error)
}

// Stage is one step of a pipeline.
//
// Step may call up.Pull any number of times but must return after bounded work:
// the candidates it already buffers plus, when it starts on a new input node, a
// single EdgesOf call. Reset clears run state (buffers, cursors, seen sets) and
// keeps configuration.
type Stage[N, E comparable] interface {
	Step(g Graph[N, E], up Upstream[N]) (Result[N], error)
	Reset()
}

// namer is implemented by stages that can describe themselves in logs.
type namer interface {
	Name() string
}

// stageName returns s.Name() when available, else its Go type.
func stageName(s any) string {
	if n, ok := s.(namer); ok {
		return n.Name()
	}

	return fmt.Sprintf("%T", s)
}

// exhaustedSource is the upstream of the first stage.
type exhaustedSource[N comparable] struct{}

func (exhaustedSource[N]) Pull() (Result[N], error) { return ExhaustedResult[N](), nil }

// link binds a stage to its graph and upstream so it can act as an Upstream itself.
type link[N, E comparable] struct {
	stage Stage[N, E]
	graph Graph[N, E]
	up    Upstream[N]
}

func (l *link[N, E]) Pull() (Result[N], error) {
	return l.stage.Step(l.graph, l.up)
}

// emptyStage never produces anything.
type emptyStage[N, E comparable] struct{}

func (emptyStage[N, E]) Step(Graph[N, E], Upstream[N]) (Result[N], error) {
	return ExhaustedResult[N](), nil
}

func (emptyStage[N, E]) Reset() {}

func (emptyStage[N, E]) Name() string { return "empty" }
