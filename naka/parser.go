package naka

import (
	"slices"

	"github.com/sirupsen/logrus"
)

// ParseResult carries the outcome of parsing: exactly one of Node and Err
// is set.
type ParseResult struct {
	Node Node
	Err  *Error
}

// Ok reports whether parsing produced a tree.
func (r ParseResult) Ok() bool {
	return r.Err == nil
}

// Unpack returns the result as a conventional (Node, error) pair.
func (r ParseResult) Unpack() (Node, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Node, nil
}

type parser struct {
	tokens []Token
	index  int
	cur    Token

	log   logrus.FieldLogger
	trace bool
}

func newParser(tokens []Token, log logrus.FieldLogger) *parser {
	if n := len(tokens); n == 0 {
		tokens = []Token{{Kind: TokenEOF}}
	} else if tokens[n-1].Kind != TokenEOF {
		last := tokens[n-1].End
		tokens = append(slices.Clip(tokens), Token{Kind: TokenEOF, Start: last, End: last})
	}
	if log == nil {
		log = discardLogger()
	}
	p := &parser{tokens: tokens, index: -1, log: log, trace: levelEnabled(log, logrus.TraceLevel)}
	p.advance()
	return p
}

// Parse builds an expression tree from tokens produced by Tokenize.
func Parse(tokens []Token) ParseResult {
	return parseTokens(tokens, nil)
}

func parseTokens(tokens []Token, log logrus.FieldLogger) ParseResult {
	node, err := newParser(tokens, log).parse()
	if err != nil {
		return ParseResult{Err: err}
	}
	return ParseResult{Node: node}
}

// advance moves the cursor forward, stopping on the final token.
func (p *parser) advance() Token {
	if p.index+1 < len(p.tokens) {
		p.index++
		p.cur = p.tokens[p.index]
	}
	return p.cur
}

func (p *parser) parse() (Node, *Error) {
	node, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind != TokenEOF {
		return nil, newError(ErrInvalidSyntax, p.cur.Start, p.cur.End, "expected '+', '-', '*' or '/'")
	}
	return node, nil
}

func (p *parser) expr() (Node, *Error) {
	return p.binaryOperation(p.term, sumOperators)
}

func (p *parser) term() (Node, *Error) {
	return p.binaryOperation(p.factor, productOperators)
}

func (p *parser) factor() (Node, *Error) {
	tok := p.cur

	switch {
	case slices.Contains(signOperators, tok.Kind):
		p.advance()
		operand, err := p.factor()
		if err != nil {
			return nil, err
		}
		return p.reduce(&UnaryOp{Operator: tok, Operand: operand}), nil

	case tok.IsLiteral():
		p.advance()
		return p.reduce(&NumberLiteral{Token: tok}), nil

	case tok.Kind == TokenLParen:
		p.advance()
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		if p.cur.Kind != TokenRParen {
			return nil, newError(ErrInvalidSyntax, tok.Start, tok.End, "expected ')'")
		}
		p.advance()
		return inner, nil
	}

	return nil, newError(ErrInvalidSyntax, tok.Start, tok.End, "expected int or float")
}

// binaryOperation parses operand (op operand)* and folds the chain to the
// left, so a - b - c becomes (a - b) - c.
func (p *parser) binaryOperation(operand func() (Node, *Error), operators []TokenKind) (Node, *Error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}

	for slices.Contains(operators, p.cur.Kind) {
		op := p.cur
		p.advance()

		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = p.reduce(&BinaryOp{Operator: op, Left: left, Right: right})
	}

	return left, nil
}

func (p *parser) reduce(node Node) Node {
	if !p.trace {
		return node
	}
	p.log.WithFields(logrus.Fields{
		"node":  node.String(),
		"next":  tokenLabel(p.cur.Kind),
		"index": p.index,
	}).Trace("reduce")
	return node
}
