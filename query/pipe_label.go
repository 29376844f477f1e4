package query

import "fmt"

// asStage records the current node under label on every gremlin that passes.
type asStage[N, E comparable] struct {
	label string
}

func (s *asStage[N, E]) Step(_ Graph[N, E], up Upstream[N]) (Result[N], error) {
	res, err := up.Pull()
	if err != nil || res.Outcome != Produced {
		return res, err
	}

	return ProducedResult(res.Gremlin.WithCheckpoint(s.label)), nil
}

func (s *asStage[N, E]) Reset() {}

func (s *asStage[N, E]) Name() string { return "as(" + s.label + ")" }

// exceptStage drops gremlins standing on the node recorded under label.
// A gremlin without that checkpoint passes, or fails the run when strict.
type exceptStage[N, E comparable] struct {
	label  string
	strict bool
}

func (s *exceptStage[N, E]) Step(_ Graph[N, E], up Upstream[N]) (Result[N], error) {
	for {
		res, err := up.Pull()
		if err != nil || res.Outcome != Produced {
			return res, err
		}
		at, ok := res.Gremlin.Checkpoint(s.label)
		if !ok {
			if s.strict {
				return ExhaustedResult[N](), fmt.Errorf("%w: except(%q) at node %v",
					ErrUnknownCheckpointLabel, s.label, res.Gremlin.Node)
			}

			return res, nil
		}
		if at != res.Gremlin.Node {
			return res, nil
		}
	}
}

func (s *exceptStage[N, E]) Reset() {}

func (s *exceptStage[N, E]) Name() string { return "except(" + s.label + ")" }

// backStage moves each gremlin back to the node recorded under label.
// Checkpoints are left as they are. A gremlin without that checkpoint is
// dropped, or fails the run when strict.
type backStage[N, E comparable] struct {
	label  string
	strict bool
}

func (s *backStage[N, E]) Step(_ Graph[N, E], up Upstream[N]) (Result[N], error) {
	for {
		res, err := up.Pull()
		if err != nil || res.Outcome != Produced {
			return res, err
		}
		at, ok := res.Gremlin.Checkpoint(s.label)
		if ok {
			return ProducedResult(res.Gremlin.GoTo(at)), nil
		}
		if s.strict {
			return ExhaustedResult[N](), fmt.Errorf("%w: back(%q) at node %v",
				ErrUnknownCheckpointLabel, s.label, res.Gremlin.Node)
		}
	}
}

func (s *backStage[N, E]) Reset() {}

func (s *backStage[N, E]) Name() string { return "back(" + s.label + ")" }
