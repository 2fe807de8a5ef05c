package arrowc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransformer(t *testing.T) {
	cases := []struct {
		data   []Expr
		expect []Node
	}{
		{
			[]Expr{
				&ArrowFunc{
					Params: []Expr{
						&Identifier{Name: "x"},
						&Identifier{Name: "y"},
					},
					Body: []Expr{
						&Identifier{Name: "x"},
						&OperatorExpr{Operation: BinaryAddition},
						&Identifier{Name: "y"},
					},
				},
			},
			[]Node{
				&FunctionExpr{
					Params: []*Atom{
						{Kind: AtomIdentifier, Name: "x"},
						{Kind: AtomIdentifier, Name: "y"},
					},
					Body: &BlockExpr{
						Body: []*ReturnExpr{
							{
								Arguments: []*Atom{
									{Kind: AtomIdentifier, Name: "x"},
									{Kind: AtomOperator, Name: "+"},
									{Kind: AtomIdentifier, Name: "y"},
								},
							},
						},
					},
				},
			},
		},
		{
			// The block always holds exactly one return, even with no body
			[]Expr{
				&ArrowFunc{
					Params: []Expr{
						&Identifier{Name: "n"},
					},
				},
			},
			[]Node{
				&FunctionExpr{
					Params: []*Atom{
						{Kind: AtomIdentifier, Name: "n"},
					},
					Body: &BlockExpr{
						Body: []*ReturnExpr{{}},
					},
				},
			},
		},
		{
			// Sibling functions lower independently
			[]Expr{
				&ArrowFunc{
					Params: []Expr{&Identifier{Name: "a"}},
					Body:   []Expr{&Identifier{Name: "a"}},
				},
				&ArrowFunc{
					Params: []Expr{&Identifier{Name: "b"}},
					Body:   []Expr{&LiteralExpr{Typ: LiteralNumber, Value: "7"}},
				},
			},
			[]Node{
				&FunctionExpr{
					Params: []*Atom{{Kind: AtomIdentifier, Name: "a"}},
					Body: &BlockExpr{
						Body: []*ReturnExpr{
							{Arguments: []*Atom{{Kind: AtomIdentifier, Name: "a"}}},
						},
					},
				},
				&FunctionExpr{
					Params: []*Atom{{Kind: AtomIdentifier, Name: "b"}},
					Body: &BlockExpr{
						Body: []*ReturnExpr{
							{Arguments: []*Atom{{Kind: AtomLiteral, Name: "7"}}},
						},
					},
				},
			},
		},
		{
			// Bare top-level leaves become atoms on the program body
			[]Expr{
				&LiteralExpr{Typ: LiteralNumber, Value: "42"},
				&Identifier{Name: "x"},
			},
			[]Node{
				&Atom{Kind: AtomLiteral, Name: "42"},
				&Atom{Kind: AtomIdentifier, Name: "x"},
			},
		},
	}

	for _, c := range cases {
		got, err := NewTransformer().Do(&Program{Body: c.data})

		assert.NoError(t, err)
		assert.Equal(t, &TargetProgram{Body: c.expect}, got)
	}
}

type bogusExpr struct{}

func TestTransformerRejectsUnknownNodes(t *testing.T) {
	prog := &Program{
		Body: []Expr{
			&ArrowFunc{
				Params: []Expr{&bogusExpr{}},
			},
		},
	}

	got, err := NewTransformer().Do(prog)
	assert.Nil(t, got)
	assert.IsType(t, &TraversalError{}, err)
}
