package naka

import "fmt"

// TokenKind identifies the lexical category of a token.
type TokenKind string

const (
	TokenNone   TokenKind = "NONE"
	TokenEOF    TokenKind = "EOF"
	TokenInt    TokenKind = "INT"
	TokenFloat  TokenKind = "FLOAT"
	TokenPlus   TokenKind = "PLUS"
	TokenMinus  TokenKind = "MINUS"
	TokenStar   TokenKind = "MUL"
	TokenSlash  TokenKind = "DIV"
	TokenLParen TokenKind = "LPAREN"
	TokenRParen TokenKind = "RPAREN"
)

// Token captures lexical information for the parser. Value is only
// meaningful for INT and FLOAT tokens.
type Token struct {
	Kind  TokenKind
	Value Number
	Start Position
	End   Position
}

// IsLiteral reports whether the token carries a numeric value.
func (t Token) IsLiteral() bool {
	return t.Kind == TokenInt || t.Kind == TokenFloat
}

func (t Token) String() string {
	if t.IsLiteral() {
		return fmt.Sprintf("%s:%s", t.Kind, t.Value)
	}
	return string(t.Kind)
}

// Symbol returns the source spelling of an operator or delimiter token.
func (k TokenKind) Symbol() string {
	switch k {
	case TokenPlus:
		return "+"
	case TokenMinus:
		return "-"
	case TokenStar:
		return "*"
	case TokenSlash:
		return "/"
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	default:
		return ""
	}
}

func tokenLabel(k TokenKind) string {
	switch k {
	case TokenEOF:
		return "end of input"
	case TokenInt:
		return "integer"
	case TokenFloat:
		return "float"
	case TokenNone:
		return "nothing"
	default:
		return fmt.Sprintf("%q", k.Symbol())
	}
}
