package dsl

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/gremlin/core"
	"github.com/katalvlaran/gremlin/query"
)

// Query is the query shape produced by Build.
type Query = query.Query[string, *core.Edge]

// arity bounds the argument count of a step; max < 0 means unbounded.
type arity struct{ min, max int }

// binder appends one step to q.
type binder func(q *Query, g *core.Graph, args []string) *Query

type stepDef struct {
	arity arity
	bind  binder
}

var steps = map[string]stepDef{
	"v": {arity{1, -1}, func(q *Query, _ *core.Graph, args []string) *Query {
		return q.Seed(args...)
	}},
	"e": {arity{0, -1}, func(q *Query, _ *core.Graph, args []string) *Query {
		return q.FollowEdges(core.LabeledAs(args...), nil)
	}},
	"in": {arity{0, -1}, func(q *Query, _ *core.Graph, args []string) *Query {
		return q.In(core.LabeledAs(args...))
	}},
	"out": {arity{0, -1}, func(q *Query, _ *core.Graph, args []string) *Query {
		return q.Out(core.LabeledAs(args...))
	}},
	"has": {arity{2, 2}, func(q *Query, g *core.Graph, args []string) *Query {
		key, want := args[0], args[1]
		return q.Filter(func(n string) bool {
			v, ok := g.VertexProperty(n, key)
			return ok && fmt.Sprint(v) == want
		})
	}},
	"is": {arity{1, -1}, func(q *Query, _ *core.Graph, args []string) *Query {
		return q.Filter(func(n string) bool { return slices.Contains(args, n) })
	}},
	"not": {arity{1, -1}, func(q *Query, _ *core.Graph, args []string) *Query {
		return q.Filter(func(n string) bool { return !slices.Contains(args, n) })
	}},
	"as": {arity{1, 1}, func(q *Query, _ *core.Graph, args []string) *Query {
		return q.As(args[0])
	}},
	"except": {arity{1, 1}, func(q *Query, _ *core.Graph, args []string) *Query {
		return q.Except(args[0])
	}},
	"back": {arity{1, 1}, func(q *Query, _ *core.Graph, args []string) *Query {
		return q.Back(args[0])
	}},
	"unique": {arity{0, 0}, func(q *Query, _ *core.Graph, _ []string) *Query {
		return q.Unique()
	}},
	"empty": {arity{0, 0}, func(q *Query, _ *core.Graph, _ []string) *Query {
		return q.Empty()
	}},
}

// StepNames returns the supported step names, sorted.
func StepNames() []string {
	names := make([]string, 0, len(steps))
	for name := range steps {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// Build parses src and binds every step to a new query over g.
//
// Supported steps:
//
//	v(id, ...)          seed
//	e(label, ...)       follow edges with any of the labels, either direction
//	in(label, ...)      follow incoming edges; no labels means any label
//	out(label, ...)     follow outgoing edges; no labels means any label
//	has(key, value)     keep vertices whose property key prints as value
//	is(id, ...)         keep the listed vertices
//	not(id, ...)        drop the listed vertices
//	as(name)            record a checkpoint
//	except(name)        drop paths standing on the checkpoint
//	back(name)          return to the checkpoint
//	unique()            drop repeated vertices
//	empty()             produce nothing
func Build(src string, g *core.Graph, opts ...query.Option) (*Query, error) {
	parsed, err := Parse(src)
	if err != nil {
		return nil, err
	}

	var surface query.Graph[string, *core.Edge]
	if g != nil {
		surface = g
	}
	q := query.New[string, *core.Edge](surface, opts...)

	for _, st := range parsed {
		def, ok := steps[st.Name]
		if !ok {
			return nil, fmt.Errorf("%w %q at %s", ErrUnknownStep, st.Name, st.Pos)
		}
		n := len(st.Args)
		if n < def.arity.min || (def.arity.max >= 0 && n > def.arity.max) {
			return nil, fmt.Errorf("%w: %s at %s takes %s, got %d", ErrArity, st.Name, st.Pos, def.arity, n)
		}
		def.bind(q, g, st.Args)
	}
	if err = q.Err(); err != nil {
		return nil, err
	}

	return q, nil
}

func (a arity) String() string {
	switch {
	case a.max < 0:
		return fmt.Sprintf("at least %d argument(s)", a.min)
	case a.min == a.max:
		return fmt.Sprintf("%d argument(s)", a.min)
	default:
		return fmt.Sprintf("%d to %d arguments", a.min, a.max)
	}
}
