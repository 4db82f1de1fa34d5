package naka

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

type lexer struct {
	input string

	pos   Position
	ch    rune
	width int
}

func newLexer(source, input string) *lexer {
	l := &lexer{input: input, pos: newPosition(source, input)}
	l.decode()
	return l
}

// Tokenize converts text into a token sequence terminated by an EOF token.
// On failure the returned slice is nil and err is a *Error.
func Tokenize(source, text string) ([]Token, error) {
	tokens, err := newLexer(source, text).tokenize()
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

func (l *lexer) decode() {
	if l.pos.Offset >= len(l.input) {
		l.ch = 0
		l.width = 0
		return
	}
	l.ch, l.width = utf8.DecodeRuneInString(l.input[l.pos.Offset:])
}

func (l *lexer) advance() {
	l.pos = l.pos.Advance(l.ch, l.width)
	l.decode()
}

func (l *lexer) atEOF() bool {
	return l.width == 0
}

func (l *lexer) tokenize() ([]Token, *Error) {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens, nil
		}
	}
}

// NextToken scans one token. After EOF it keeps returning EOF.
func (l *lexer) NextToken() (Token, *Error) {
	l.skipWhitespace()

	if l.atEOF() {
		return Token{Kind: TokenEOF, Start: l.pos, End: l.pos}, nil
	}

	switch {
	case l.ch == '+':
		return l.single(TokenPlus), nil
	case l.ch == '-':
		return l.single(TokenMinus), nil
	case l.ch == '*':
		return l.single(TokenStar), nil
	case l.ch == '/':
		return l.single(TokenSlash), nil
	case l.ch == '(':
		return l.single(TokenLParen), nil
	case l.ch == ')':
		return l.single(TokenRParen), nil
	case isDigit(l.ch):
		return l.readNumber()
	default:
		start := l.pos
		illegal := l.ch
		if illegal == utf8.RuneError && l.width == 1 {
			l.advance()
			return Token{}, newError(ErrIllegalCharacter, start, l.pos, "%q", l.input[start.Offset:l.pos.Offset])
		}
		l.advance()
		return Token{}, newError(ErrIllegalCharacter, start, l.pos, "%c", illegal)
	}
}

func (l *lexer) single(kind TokenKind) Token {
	start := l.pos
	l.advance()
	return Token{Kind: kind, Start: start, End: l.pos}
}

func (l *lexer) skipWhitespace() {
	for {
		switch l.ch {
		case ' ', '\t', '\r', '\n':
			l.advance()
		default:
			return
		}
	}
}

// readNumber consumes digits and at most one dot. A second dot ends the
// literal and is left for the next scan.
func (l *lexer) readNumber() (Token, *Error) {
	var sb strings.Builder
	start := l.pos
	dots := 0

	for !l.atEOF() && (isDigit(l.ch) || l.ch == '.') {
		if l.ch == '.' {
			if dots == 1 {
				break
			}
			dots++
		}
		sb.WriteRune(l.ch)
		l.advance()
	}

	literal := sb.String()
	if dots == 0 {
		value, err := strconv.ParseInt(literal, 10, 64)
		if err != nil {
			return Token{}, newError(ErrInvalidSyntax, start, l.pos, "invalid integer literal %s", literal)
		}
		return Token{Kind: TokenInt, Value: NewInt(value), Start: start, End: l.pos}, nil
	}

	value, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return Token{}, newError(ErrInvalidSyntax, start, l.pos, "invalid float literal %s", literal)
	}
	return Token{Kind: TokenFloat, Value: NewFloat(value), Start: start, End: l.pos}, nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
