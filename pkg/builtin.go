package arrowc

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
)

func defineBuiltins(b *LLVMIRBuilder) {
	defineBuiltinFunc(b, "print", builtinPrint)
}

type funcDefinition = func(mod *ir.Module) *ir.Func

func defineBuiltinFunc(b *LLVMIRBuilder, name string, definition funcDefinition) {
	f := definition(b.mod)
	f.SetName(name)
	b.values.Set(name, f)
}

// builtinPrint wraps libc printf with a "%d\n" format so i32 results can be
// written out by generated code.
func builtinPrint(mod *ir.Module) *ir.Func {
	f := mod.NewFunc("", types.Void, ir.NewParam("v", types.I32))
	b := f.NewBlock("")

	printf := mod.NewFunc("printf", types.I32, ir.NewParam("format", types.I8Ptr))
	printf.Sig.Variadic = true

	zero := constant.NewInt(types.I32, 0)

	format := constant.NewCharArrayFromString("%d\n")
	formatGlob := mod.NewGlobalDef("._printf_fmt", format)

	fmtAddr := constant.NewGetElementPtr(types.NewArray(3, types.I8), formatGlob, zero, zero)

	b.NewCall(printf, fmtAddr, f.Params[0])

	b.NewRet(nil)

	return f
}

// wrapMain emits a main that calls a nullary lambda and prints its result,
// so a module compiled from a closed expression runs standalone.
func (b *LLVMIRBuilder) wrapMain(f *ir.Func) error {
	printFn, ok := b.values.Get("print")
	if !ok {
		return &GenerationError{Message: "print builtin is not defined"}
	}

	main := b.mod.NewFunc("main", types.I32)
	blk := main.NewBlock("")

	result := blk.NewCall(f)
	blk.NewCall(printFn, result)
	blk.NewRet(constant.NewInt(types.I32, 0))

	return nil
}
