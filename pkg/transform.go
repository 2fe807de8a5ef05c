package arrowc

// Target AST, shaped like the output language. Built once per source
// program and never mutated after the transformer returns.

type TargetProgram struct {
	Body []Node
}

type Node interface{}

type FunctionExpr struct {
	Params []*Atom
	Body   *BlockExpr
}

type BlockExpr struct {
	Body []*ReturnExpr
}

type ReturnExpr struct {
	Arguments []*Atom
}

type AtomKind int

const (
	AtomIdentifier AtomKind = iota
	AtomLiteral
	AtomOperator
)

// Atom is a leaf of the target tree: an identifier, a number literal or an
// operator, rendered verbatim by the generator.
type Atom struct {
	Kind AtomKind
	Name string
}

// section tags which part of the enclosing function a leaf belongs to.
type section int

const (
	sectionParams section = iota
	sectionBody
)

type Transformer struct{}

func NewTransformer() *Transformer {
	return &Transformer{}
}

// Do lowers a source Program into a TargetProgram. Each ArrowFunc becomes a
// FunctionExpr whose block holds exactly one return statement; leaves land
// either in the parameter list or in that return's arguments depending on
// the section they were visited under.
func (t *Transformer) Do(prog *Program) (*TargetProgram, error) {
	target := &TargetProgram{}

	for _, expr := range prog.Body {
		switch e := expr.(type) {
		case *ArrowFunc:
			fn, err := t.function(e)
			if err != nil {
				return nil, err
			}

			target.Body = append(target.Body, fn)
		default:
			// Leaves outside any function render as their own line
			atom, err := t.atom(expr)
			if err != nil {
				return nil, err
			}

			target.Body = append(target.Body, atom)
		}
	}

	return target, nil
}

func (t *Transformer) function(src *ArrowFunc) (*FunctionExpr, error) {
	ret := &ReturnExpr{}
	fn := &FunctionExpr{
		Body: &BlockExpr{
			Body: []*ReturnExpr{ret},
		},
	}

	if err := t.leaves(fn, ret, sectionParams, src.Params); err != nil {
		return nil, err
	}

	if err := t.leaves(fn, ret, sectionBody, src.Body); err != nil {
		return nil, err
	}

	return fn, nil
}

// leaves lowers the children of one section of a function. The open
// function and its return statement are explicit arguments; the transformer
// never reaches back into the growing target tree to find them.
func (t *Transformer) leaves(fn *FunctionExpr, ret *ReturnExpr, sec section, exprs []Expr) error {
	for _, expr := range exprs {
		atom, err := t.atom(expr)
		if err != nil {
			return err
		}

		switch sec {
		case sectionParams:
			fn.Params = append(fn.Params, atom)
		case sectionBody:
			ret.Arguments = append(ret.Arguments, atom)
		}
	}

	return nil
}

func (t *Transformer) atom(expr Expr) (*Atom, error) {
	switch e := expr.(type) {
	case *Identifier:
		return &Atom{Kind: AtomIdentifier, Name: e.Name}, nil
	case *LiteralExpr:
		return &Atom{Kind: AtomLiteral, Name: e.Value}, nil
	case *OperatorExpr:
		return &Atom{Kind: AtomOperator, Name: string(e.Operation)}, nil
	default:
		return nil, &TraversalError{Node: expr}
	}
}
