package arrowc

// Parser builds a Program from a token stream by recursive descent with a
// single buffered token of lookahead.
type Parser struct {
	tokenizer Tokenizer
	buf       *Token
}

func NewParser(tokenizer Tokenizer) *Parser {
	return &Parser{
		tokenizer: tokenizer,
	}
}

// Run drives the tokenizer and parses until the input is exhausted. The
// first failure aborts the parse; no partial program is returned.
func (p *Parser) Run() (*Program, error) {
	go p.tokenizer.Run()

	prog := &Program{}
	for p.peek().Typ != TokenEOF {
		expr, err := p.statement()
		if err != nil {
			p.drain()
			return nil, err
		}

		if expr != nil {
			prog.Body = append(prog.Body, expr)
		}
	}

	return prog, nil
}

// drain consumes the rest of the token stream so an aborted parse never
// leaves the tokenizer blocked sending on its channel.
func (p *Parser) drain() {
	for tok := p.tokenizer.Get(); tok.isValid(); tok = p.tokenizer.Get() {
	}
}

func (p *Parser) peek() Token {
	if p.buf == nil {
		temp := p.next()
		p.buf = &temp
	}

	return *p.buf
}

func (p *Parser) next() Token {
	if p.buf != nil {
		if !p.buf.isValid() {
			// If an invalid token is buffered, don't try to get more tokens
			return *p.buf
		}

		temp := p.buf
		p.buf = nil

		return *temp
	}

	tok := p.tokenizer.Get()
	if !tok.isValid() {
		// If a token is invalid (such as Error or EOF) keep it buffered since no more valid tokens are expected
		p.buf = &tok
	}

	return tok
}

func (p *Parser) check(typ TokenType) bool {
	return p.peek().Typ == typ
}

func (p *Parser) statement() (Expr, error) {
	switch tok := p.peek(); tok.Typ {
	case TokenError:
		p.next()
		return nil, &SyntaxError{Message: tok.Value}
	case TokenNumber:
		return &LiteralExpr{
			Typ:   LiteralNumber,
			Value: p.next().Value,
		}, nil
	case TokenIdentifier:
		return &Identifier{
			Name: p.next().Value,
		}, nil
	case TokenPlus, TokenMinus, TokenMulti, TokenDiv:
		return &OperatorExpr{
			Operation: BinaryOp(p.next().Value),
		}, nil
	case TokenComma:
		// Separators split parameters but carry no meaning of their own
		p.next()
		return nil, nil
	case TokenOpenParentheses:
		return p.arrowFunc()
	case TokenArrow:
		p.next()
		return nil, &ParseError{Message: "arrow without a parameter list", Token: tok}
	default:
		p.next()
		return nil, &ParseError{Message: "unexpected token", Token: tok}
	}
}

// arrowFunc parses a parenthesised parameter list and, if an arrow follows,
// the body expressions belonging to it. The in-progress function is handed
// to arrowBody directly, so the body can never attach to the wrong sibling.
func (p *Parser) arrowFunc() (Expr, error) {
	p.next() // Skip the '('

	fn := &ArrowFunc{}
	for !p.check(TokenCloseParentheses) {
		if p.check(TokenEOF) {
			return nil, &ParseError{Message: "unclosed parameter list", Token: p.peek()}
		}

		if p.check(TokenArrow) {
			return nil, &ParseError{Message: "arrow inside an unclosed parameter list", Token: p.peek()}
		}

		expr, err := p.statement()
		if err != nil {
			return nil, err
		}

		if expr != nil {
			fn.Params = append(fn.Params, expr)
		}
	}
	p.next() // Skip the ')'

	if p.check(TokenArrow) {
		p.next() // Skip the '=>'

		if err := p.arrowBody(fn); err != nil {
			return nil, err
		}
	}

	return fn, nil
}

// arrowBody fills fn.Body until the input ends or a new '(' starts a
// sibling function.
func (p *Parser) arrowBody(fn *ArrowFunc) error {
	for !p.check(TokenEOF) && !p.check(TokenOpenParentheses) {
		expr, err := p.statement()
		if err != nil {
			return err
		}

		if expr != nil {
			fn.Body = append(fn.Body, expr)
		}
	}

	return nil
}
