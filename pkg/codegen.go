package arrowc

import (
	"fmt"
	"strings"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Do renders a target program to text. Top-level entries are joined with
// newlines; an unknown node aborts with a *GenerationError.
func (g *Generator) Do(prog *TargetProgram) (string, error) {
	var out strings.Builder
	for i, node := range prog.Body {
		text, err := g.node(node)
		if err != nil {
			return "", err
		}

		out.WriteString(text)

		if i != len(prog.Body)-1 {
			out.WriteString("\n")
		}
	}

	return out.String(), nil
}

func (g *Generator) node(node Node) (string, error) {
	switch n := node.(type) {
	case *FunctionExpr:
		return g.function(n)
	case *BlockExpr:
		return g.block(n)
	case *ReturnExpr:
		return g.ret(n), nil
	case *Atom:
		return n.Name, nil
	default:
		return "", &GenerationError{Message: fmt.Sprintf("unknown target node %T", node)}
	}
}

func (g *Generator) function(fn *FunctionExpr) (string, error) {
	var out strings.Builder
	out.WriteString("function (")

	for i, param := range fn.Params {
		out.WriteString(param.Name)

		if i != len(fn.Params)-1 {
			out.WriteString(", ")
		}
	}
	out.WriteString(") ")

	body, err := g.block(fn.Body)
	if err != nil {
		return "", err
	}
	out.WriteString(body)

	return out.String(), nil
}

func (g *Generator) block(block *BlockExpr) (string, error) {
	var out strings.Builder
	out.WriteString("{\n")

	for _, stmt := range block.Body {
		out.WriteString(g.ret(stmt))
		out.WriteString("\n")
	}
	out.WriteString("}")

	return out.String(), nil
}

func (g *Generator) ret(ret *ReturnExpr) string {
	var out strings.Builder
	out.WriteString("\treturn")

	for _, arg := range ret.Arguments {
		out.WriteString(" ")
		out.WriteString(arg.Name)
	}

	return out.String()
}
