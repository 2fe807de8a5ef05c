package arrowc

import (
	"io"
	"strings"
)

// Compiler runs the full pipeline: text -> tokens -> source AST -> target
// AST -> text. The first failure aborts and no partial output is returned.
type Compiler struct{}

func NewCompiler() *Compiler {
	return &Compiler{}
}

func (c *Compiler) Compile(filename string) (string, error) {
	lexer, err := NewLexer(filename)
	if err != nil {
		return "", err
	}

	return c.compile(NewParser(lexer))
}

func (c *Compiler) CompileFromReader(reader io.Reader) (string, error) {
	return c.compile(NewParser(NewLexerFromReader(reader)))
}

func (c *Compiler) CompileString(source string) (string, error) {
	return c.CompileFromReader(strings.NewReader(source))
}

func (c *Compiler) compile(p *Parser) (string, error) {
	ast, err := p.Run()
	if err != nil {
		return "", err
	}

	target, err := NewTransformer().Do(ast)
	if err != nil {
		return "", err
	}

	return NewGenerator().Do(target)
}

// CompileIR runs the lexer and parser, then lowers the source AST straight
// to textual LLVM IR instead of the default backend.
func (c *Compiler) CompileIR(source string) (string, error) {
	parser := NewParser(NewLexerFromString(source))

	ast, err := parser.Run()
	if err != nil {
		return "", err
	}

	mod, err := NewLLVMGenerator(ast).Do()
	if err != nil {
		return "", err
	}

	return mod.String(), nil
}
