package arrowc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

type TokenType uint64
type stateFunc func(l *Lexer) stateFunc

//go:generate stringer -type=TokenType -trimprefix=Token
const (
	EOF rune = 0

	TokenError TokenType = iota
	TokenEOF
	TokenNumber
	TokenIdentifier

	TokenPlus
	TokenMinus
	TokenMulti
	TokenDiv
	TokenArrow
	TokenComma
	TokenOpenParentheses
	TokenCloseParentheses
)

var operatorTable = map[string]TokenType{
	"+":  TokenPlus,
	"-":  TokenMinus,
	"*":  TokenMulti,
	"/":  TokenDiv,
	"=>": TokenArrow,
	",":  TokenComma,
	"(":  TokenOpenParentheses,
	")":  TokenCloseParentheses,
}

type Token struct {
	Typ   TokenType
	Value string
}

func (t Token) isValid() bool {
	return t.Typ != TokenError && t.Typ != TokenEOF
}

type Tokenizer interface {
	Run()
	Get() Token
}

type Lexer struct {
	reader *bufio.Reader
	done   chan Token
}

func NewLexer(filename string) (*Lexer, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	return NewLexerFromReader(f), nil
}

func NewLexerFromReader(reader io.Reader) *Lexer {
	return &Lexer{
		reader: bufio.NewReader(reader),
		done:   make(chan Token),
	}
}

func NewLexerFromString(source string) *Lexer {
	return NewLexerFromReader(strings.NewReader(source))
}

func (l *Lexer) Chan() chan Token {
	return l.done
}

func (l *Lexer) Get() Token {
	return <-l.done
}

func (l *Lexer) Run() {
	for state := defaultState; state != nil; {
		state = state(l)
	}

	close(l.done)
}

// RunBlocking drains the lexer into a slice. An error token aborts the run
// and is surfaced as a *SyntaxError.
func (l *Lexer) RunBlocking() ([]Token, error) {
	go l.Run()

	var tokens []Token
	for {
		t := <-l.Chan()
		if t.Typ == TokenEOF {
			return tokens, nil
		}

		if t.Typ == TokenError {
			return nil, &SyntaxError{Message: t.Value}
		}

		tokens = append(tokens, t)
	}
}

func defaultState(l *Lexer) stateFunc {
	for {
		switch r := l.peek(); {
		case r == EOF:
			l.next()
			l.emitValue(TokenEOF, "")
			return nil
		case unicode.IsSpace(r):
			l.next()
			continue
		case '0' <= r && r <= '9':
			return numberState
		case unicode.IsLetter(r):
			return identifierState
		default:
			return operatorState
		}
	}
}

func numberState(l *Lexer) stateFunc {
	var num strings.Builder
	for r := l.peek(); '0' <= r && r <= '9'; r = l.peek() {
		num.WriteRune(l.next())
	}

	return l.emitValue(TokenNumber, num.String())
}

func identifierState(l *Lexer) stateFunc {
	var id strings.Builder
	for r := l.peek(); unicode.IsLetter(r); r = l.peek() {
		id.WriteRune(l.next())
	}

	return l.emitValue(TokenIdentifier, id.String())
}

func operatorState(l *Lexer) stateFunc {
	r := l.next()
	if r == '=' { // An equals sign is only valid as the start of an arrow
		op := string(r) + string(l.peek())
		if tok, ok := operatorTable[op]; ok {
			l.next() // Skip the '>'
			return l.emitValue(tok, op)
		}

		if l.peek() == EOF {
			return l.errorf("expected '>' after '=', got end of input")
		}

		return l.errorf("expected '>' after '=', got '%c'", l.peek())
	}

	if tok, ok := operatorTable[string(r)]; ok {
		return l.emitValue(tok, string(r))
	}

	return l.errorf("invalid symbol '%c'", r)
}

func (l *Lexer) errorf(format string, args ...interface{}) stateFunc {
	l.done <- Token{
		Typ:   TokenError,
		Value: fmt.Sprintf(format, args...),
	}

	return nil
}

func (l *Lexer) emitValue(t TokenType, val string) stateFunc {
	l.done <- Token{
		Typ:   t,
		Value: val,
	}

	return defaultState
}

func (l *Lexer) peek() rune {
	r := l.next()
	_ = l.reader.UnreadRune()

	return r
}

func (l *Lexer) next() rune {
	r, _, err := l.reader.ReadRune()
	if err != nil {
		if err == io.EOF {
			return EOF
		}

		return utf8.RuneError
	}

	return r
}
