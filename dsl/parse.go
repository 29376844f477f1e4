// Package dsl parses a compact textual traversal chain, such as
//
//	v("thor").as("me").out("parents").in("parents").unique().except("me")
//
// and binds it to a query over a core.Graph.
package dsl

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/scanner"
)

// Sentinel errors for parsing and binding.
var (
	// ErrSyntax is returned for malformed chains; the message carries the position.
	ErrSyntax = errors.New("dsl: syntax error")

	// ErrUnknownStep is returned for a step name Build does not know.
	ErrUnknownStep = errors.New("dsl: unknown step")

	// ErrArity is returned when a step receives the wrong number of arguments.
	ErrArity = errors.New("dsl: wrong number of arguments")
)

// Step is one parsed call of the chain.
type Step struct {
	Name string
	Args []string
	Pos  scanner.Position
}

// String renders the step with quoted arguments.
func (s Step) String() string {
	quoted := make([]string, len(s.Args))
	for i, a := range s.Args {
		quoted[i] = strconv.Quote(a)
	}

	return s.Name + "(" + strings.Join(quoted, ", ") + ")"
}

// parser wraps a text/scanner and keeps its first error.
type parser struct {
	s   scanner.Scanner
	tok rune
	err error
}

// Parse splits src into steps. Arguments may be double-quoted or raw strings,
// bare identifiers or numbers; all are returned as plain strings.
func Parse(src string) ([]Step, error) {
	p := &parser{}
	p.s.Init(strings.NewReader(src))
	p.s.Filename = "query"
	p.s.Mode = scanner.ScanIdents | scanner.ScanStrings | scanner.ScanRawStrings |
		scanner.ScanInts | scanner.ScanFloats | scanner.SkipComments | scanner.ScanComments
	p.s.Error = func(s *scanner.Scanner, msg string) {
		if p.err == nil {
			p.err = fmt.Errorf("%w at %s: %s", ErrSyntax, s.Pos(), msg)
		}
	}

	p.next()
	if p.tok == scanner.EOF && p.err == nil {
		return nil, fmt.Errorf("%w: empty query", ErrSyntax)
	}

	var steps []Step
	for {
		st, err := p.step()
		if err != nil {
			return nil, err
		}
		steps = append(steps, st)

		switch p.tok {
		case scanner.EOF:
			if p.err != nil {
				return nil, p.err
			}
			return steps, nil
		case '.':
			p.next()
		default:
			return nil, p.unexpected("'.' or end of query")
		}
	}
}

func (p *parser) next() {
	p.tok = p.s.Scan()
}

func (p *parser) unexpected(want string) error {
	if p.err != nil {
		return p.err
	}
	found := p.s.TokenText()
	if p.tok == scanner.EOF {
		found = "end of query"
	}

	return fmt.Errorf("%w at %s: expected %s, found %q", ErrSyntax, p.s.Position, want, found)
}

// step parses ident "(" [arg {"," arg}] ")" and leaves the following token in p.tok.
func (p *parser) step() (Step, error) {
	if p.tok != scanner.Ident {
		return Step{}, p.unexpected("step name")
	}
	st := Step{Name: p.s.TokenText(), Pos: p.s.Position}

	p.next()
	if p.tok != '(' {
		return Step{}, p.unexpected("'('")
	}

	p.next()
	if p.tok == ')' {
		p.next()
		return st, nil
	}
	for {
		arg, err := p.arg()
		if err != nil {
			return Step{}, err
		}
		st.Args = append(st.Args, arg)

		p.next()
		switch p.tok {
		case ',':
			p.next()
		case ')':
			p.next()
			return st, nil
		default:
			return Step{}, p.unexpected("',' or ')'")
		}
	}
}

func (p *parser) arg() (string, error) {
	if p.err != nil {
		return "", p.err
	}
	switch p.tok {
	case scanner.String, scanner.RawString:
		v, err := strconv.Unquote(p.s.TokenText())
		if err != nil {
			return "", fmt.Errorf("%w at %s: %v", ErrSyntax, p.s.Position, err)
		}
		return v, nil
	case scanner.Ident, scanner.Int, scanner.Float:
		return p.s.TokenText(), nil
	case '-':
		p.next()
		if p.tok != scanner.Int && p.tok != scanner.Float {
			return "", p.unexpected("number after '-'")
		}
		return "-" + p.s.TokenText(), nil
	default:
		return "", p.unexpected("argument")
	}
}
