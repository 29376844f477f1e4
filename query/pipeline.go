package query

import (
	"context"
	"fmt"
)

// Pipeline is an ordered chain of stages driven by pulling its last stage.
//
// A Pipeline is either fresh or ran. Running or appending to a pipeline that
// already ran fails with ErrPipelineAlreadyRun until Reset is called.
// A Pipeline is not safe for concurrent use.
type Pipeline[N, E comparable] struct {
	stages []Stage[N, E]
	ran    bool
}

// NewPipeline returns an empty, fresh pipeline.
func NewPipeline[N, E comparable]() *Pipeline[N, E] {
	return &Pipeline[N, E]{}
}

// Append adds s as the new last stage.
func (p *Pipeline[N, E]) Append(s Stage[N, E]) error {
	if p.ran {
		return fmt.Errorf("%w: append %s", ErrPipelineAlreadyRun, stageName(s))
	}
	if s == nil {
		return ErrNilStage
	}
	p.stages = append(p.stages, s)

	return nil
}

// CountStages returns the number of stages in the pipeline.
func (p *Pipeline[N, E]) CountStages() int { return len(p.stages) }

// HasRun reports whether the pipeline ran since construction or the last Reset.
func (p *Pipeline[N, E]) HasRun() bool { return p.ran }

// StageNames describes the stages in order.
func (p *Pipeline[N, E]) StageNames() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = stageName(s)
	}

	return names
}

// Reset clears the run state of every stage and the ran mark. Stage
// configuration is kept.
func (p *Pipeline[N, E]) Reset() {
	for _, s := range p.stages {
		s.Reset()
	}
	p.ran = false
}

// Run drives the pipeline against g and collects the node of every produced
// gremlin, in production order.
func (p *Pipeline[N, E]) Run(g Graph[N, E]) ([]N, error) {
	out := make([]N, 0)
	err := p.drive(context.Background(), g, func(n N) bool {
		out = append(out, n)
		return true
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// drive marks the pipeline as ran and hands produced nodes to yield until the
// last stage is exhausted, yield returns false, ctx is done, or a stage fails.
func (p *Pipeline[N, E]) drive(ctx context.Context, g Graph[N, E], yield func(N) bool) error {
	if p.ran {
		return ErrPipelineAlreadyRun
	}
	if g == nil {
		return ErrNilGraph
	}
	p.ran = true
	if len(p.stages) == 0 {
		return nil
	}

	var up Upstream[N] = exhaustedSource[N]{}
	for _, s := range p.stages {
		up = &link[N, E]{stage: s, graph: g, up: up}
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := up.Pull()
		if err != nil {
			return err
		}
		switch res.Outcome {
		case Exhausted:
			return nil
		case NeedInput:
			continue
		case Produced:
			if !yield(res.Gremlin.Node) {
				return nil
			}
		default:
			return fmt.Errorf("query: stage %s returned %s", stageName(p.stages[len(p.stages)-1]), res.Outcome)
		}
	}
}
