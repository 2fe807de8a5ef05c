package arrowc

import (
	"fmt"
	"strconv"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

type ValueLookup struct {
	vals map[string]value.Value
}

func NewValueLookup() *ValueLookup {
	return &ValueLookup{
		vals: make(map[string]value.Value),
	}
}

func (l *ValueLookup) Inherit(t2 *ValueLookup) {
	for k, v := range t2.vals {
		l.Set(k, v)
	}
}

func (l *ValueLookup) Get(id string) (value.Value, bool) {
	val, ok := l.vals[id]
	return val, ok
}

func (l *ValueLookup) Set(id string, val value.Value) {
	l.vals[id] = val
}

type LLVMIRBuilder struct {
	mod    *ir.Module
	block  *ir.Block
	values *ValueLookup
}

func NewLLVMIRBuilder() *LLVMIRBuilder {
	builder := &LLVMIRBuilder{
		mod:    ir.NewModule(),
		values: NewValueLookup(),
	}

	defineBuiltins(builder)
	return builder
}

// function lowers one arrow function into an IR function. Parameters are
// i32 and the flat body folds left to right, so x + y * z compiles as
// (x + y) * z.
func (b *LLVMIRBuilder) function(name string, expr *ArrowFunc) (*ir.Func, error) {
	var params []*ir.Param
	for _, param := range expr.Params {
		id, ok := param.(*Identifier)
		if !ok {
			return nil, &GenerationError{Message: fmt.Sprintf("parameter must be an identifier, got %T", param)}
		}

		params = append(params, ir.NewParam(id.Name, types.I32))
	}

	retType := types.Type(types.I32)
	if len(expr.Body) == 0 {
		retType = types.Void
	}

	f := b.mod.NewFunc(name, retType, params...)
	b.values.Set(name, f)

	prevBlock := b.block
	b.block = f.NewBlock("")

	prevVals := b.values
	b.values = NewValueLookup()
	b.values.Inherit(prevVals)

	defer func() {
		b.block = prevBlock
		b.values = prevVals
	}()

	for _, param := range f.Params {
		b.values.Set(param.Name(), param)
	}

	if len(expr.Body) == 0 {
		b.block.NewRet(nil)
		return f, nil
	}

	result, err := b.fold(expr.Body)
	if err != nil {
		return nil, err
	}

	b.block.NewRet(result)
	return f, nil
}

// fold reduces an alternating operand/operator sequence to a single value,
// appending the arithmetic to the current block.
func (b *LLVMIRBuilder) fold(exprs []Expr) (value.Value, error) {
	acc, err := b.operand(exprs[0])
	if err != nil {
		return nil, err
	}

	for i := 1; i < len(exprs); i += 2 {
		op, ok := exprs[i].(*OperatorExpr)
		if !ok {
			return nil, &GenerationError{Message: fmt.Sprintf("expected an operator, got %T", exprs[i])}
		}

		if i+1 >= len(exprs) {
			return nil, &GenerationError{Message: fmt.Sprintf("operator '%s' is missing its right operand", op.Operation)}
		}

		rhs, err := b.operand(exprs[i+1])
		if err != nil {
			return nil, err
		}

		acc, err = b.binary(op.Operation, acc, rhs)
		if err != nil {
			return nil, err
		}
	}

	return acc, nil
}

func (b *LLVMIRBuilder) binary(op BinaryOp, v1, v2 value.Value) (value.Value, error) {
	switch op {
	case BinaryAddition:
		return b.block.NewAdd(v1, v2), nil
	case BinarySubtraction:
		return b.block.NewSub(v1, v2), nil
	case BinaryMultiplication:
		return b.block.NewMul(v1, v2), nil
	case BinaryDivision:
		return b.block.NewSDiv(v1, v2), nil
	default:
		return nil, &GenerationError{Message: fmt.Sprintf("unexpected binary op '%s'", op)}
	}
}

func (b *LLVMIRBuilder) operand(expr Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *Identifier:
		val, ok := b.values.Get(e.Name)
		if !ok {
			return nil, &GenerationError{Message: "undefined identifier '" + e.Name + "'"}
		}

		return val, nil
	case *LiteralExpr:
		v, err := strconv.ParseInt(e.Value, 10, 32)
		if err != nil {
			return nil, &GenerationError{Message: "number '" + e.Value + "' does not fit an i32"}
		}

		return constant.NewInt(types.I32, v), nil
	case *OperatorExpr:
		return nil, &GenerationError{Message: fmt.Sprintf("operator '%s' is missing its left operand", e.Operation)}
	default:
		return nil, &GenerationError{Message: fmt.Sprintf("cannot lower %T to a value", expr)}
	}
}

// LLVMGenerator lowers the source AST to an LLVM module. Arrow functions
// become i32 functions named __lambda0, __lambda1 and so on; the first
// nullary one is wrapped in a main that prints its result.
type LLVMGenerator struct {
	ast *Program
}

func NewLLVMGenerator(ast *Program) *LLVMGenerator {
	return &LLVMGenerator{
		ast: ast,
	}
}

func (g *LLVMGenerator) Do() (*ir.Module, error) {
	builder := NewLLVMIRBuilder()

	wrapped := false
	count := 0
	for _, stmt := range g.ast.Body {
		fn, ok := stmt.(*ArrowFunc)
		if !ok {
			// Bare leaves have no meaning at the IR level
			continue
		}

		f, err := builder.function(fmt.Sprintf("__lambda%d", count), fn)
		if err != nil {
			return nil, err
		}
		count++

		if !wrapped && len(fn.Params) == 0 && len(fn.Body) > 0 {
			if err := builder.wrapMain(f); err != nil {
				return nil, err
			}

			wrapped = true
		}
	}

	return builder.mod, nil
}
