package arrowc

import "fmt"

// SyntaxError reports an input the lexer cannot tokenize, such as an
// unrecognized character or a '=' that is not part of an arrow.
type SyntaxError struct {
	Message string
}

func (e *SyntaxError) Error() string {
	return "syntax error: " + e.Message
}

// ParseError reports an unexpected token kind or a premature end of input.
type ParseError struct {
	Message string
	Token   Token
}

func (e *ParseError) Error() string {
	if e.Token.Typ == TokenEOF {
		return fmt.Sprintf("parse error: %s: unexpected end of input", e.Message)
	}

	return fmt.Sprintf("parse error: %s: got '%s'", e.Message, e.Token.Value)
}

// TraversalError reports a source node the transformer does not know,
// meaning the parser produced a malformed tree.
type TraversalError struct {
	Node Expr
}

func (e *TraversalError) Error() string {
	return fmt.Sprintf("traversal error: unknown source node %T", e.Node)
}

// GenerationError reports a target node the generator does not know, or a
// source construct the LLVM backend cannot lower.
type GenerationError struct {
	Message string
}

func (e *GenerationError) Error() string {
	return "generation error: " + e.Message
}
