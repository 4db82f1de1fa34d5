package naka

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeNumbers(t *testing.T) {
	tests := []struct {
		input string
		kind  TokenKind
		value Number
	}{
		{"0", TokenInt, NewInt(0)},
		{"42", TokenInt, NewInt(42)},
		{"007", TokenInt, NewInt(7)},
		{"3.14", TokenFloat, NewFloat(3.14)},
		{"10.0", TokenFloat, NewFloat(10)},
		{"1.", TokenFloat, NewFloat(1)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := Tokenize("test", tt.input)
			require.NoError(t, err)
			require.Len(t, tokens, 2)

			tok := tokens[0]
			assert.Equal(t, tt.kind, tok.Kind)
			assert.True(t, tt.value.Equal(tok.Value), "got %s", tok.Value)
			assert.Equal(t, 0, tok.Start.Offset)
			assert.Equal(t, len(tt.input), tok.End.Offset)
			assert.Equal(t, TokenEOF, tokens[1].Kind)
		})
	}
}

func TestTokenizeOperatorsAndPositions(t *testing.T) {
	tokens, err := Tokenize("calc.naka", "1 +\n (2*3)/4-5")
	require.NoError(t, err)

	kinds := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []TokenKind{
		TokenInt, TokenPlus, TokenLParen, TokenInt, TokenStar, TokenInt,
		TokenRParen, TokenSlash, TokenInt, TokenMinus, TokenInt, TokenEOF,
	}, kinds)

	plus := tokens[1]
	assert.Equal(t, 2, plus.Start.Offset)
	assert.Equal(t, 0, plus.Start.Line)
	assert.Equal(t, 2, plus.Start.Column)
	assert.Equal(t, 3, plus.End.Offset)

	lparen := tokens[2]
	assert.Equal(t, 5, lparen.Start.Offset)
	assert.Equal(t, 1, lparen.Start.Line)
	assert.Equal(t, 1, lparen.Start.Column)
	assert.Equal(t, "calc.naka", lparen.Start.Source)

	eof := tokens[len(tokens)-1]
	assert.Equal(t, eof.Start, eof.End)
	assert.Equal(t, len("1 +\n (2*3)/4-5"), eof.Start.Offset)
}

func TestTokenizeEmptyInput(t *testing.T) {
	tokens, err := Tokenize("test", " \t\r\n ")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, TokenEOF, tokens[0].Kind)
}

func TestTokenizeIllegalCharacter(t *testing.T) {
	for _, input := range []string{"@", "#", "x", "é", "\x00"} {
		t.Run(input, func(t *testing.T) {
			tokens, err := Tokenize("test", input)
			assert.Nil(t, tokens)

			var lexErr *Error
			require.ErrorAs(t, err, &lexErr)
			assert.True(t, lexErr.IsKind(ErrIllegalCharacter))
			assert.True(t, ErrIllegalCharacter.Is(lexErr.Cause()))
			assert.Equal(t, input, lexErr.Details)
			assert.Equal(t, 0, lexErr.Start.Offset)
			assert.Equal(t, len(input), lexErr.End.Offset)
			assert.Equal(t, 1, lexErr.End.Column)
		})
	}
}

func TestTokenizeIllegalCharacterDiscardsTokens(t *testing.T) {
	tokens, err := Tokenize("test", "1 + 2 $ 3")
	assert.Nil(t, tokens)

	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, "$", lexErr.Details)
	assert.Equal(t, 6, lexErr.Start.Offset)
	assert.Equal(t, 7, lexErr.End.Offset)
}

func TestTokenizeSecondDotFailsOnNextScan(t *testing.T) {
	_, err := Tokenize("test", "1.2.3")

	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
	assert.True(t, lexErr.IsKind(ErrIllegalCharacter))
	assert.Equal(t, ".", lexErr.Details)
	assert.Equal(t, 3, lexErr.Start.Offset)
	assert.Equal(t, 4, lexErr.End.Offset)
}

func TestTokenizeIntegerOverflow(t *testing.T) {
	_, err := Tokenize("test", "99999999999999999999")

	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
	assert.True(t, lexErr.IsKind(ErrInvalidSyntax))
	assert.Equal(t, 20, lexErr.End.Offset)
}

func TestTokenRenderingRoundTrip(t *testing.T) {
	tokens, err := Tokenize("test", "12 + 0.5 * (3. - 7) / 2")
	require.NoError(t, err)

	for _, tok := range tokens[:len(tokens)-1] {
		text := tok.Kind.Symbol()
		if tok.IsLiteral() {
			text = tok.Value.String()
		}
		again, err := Tokenize("test", text)
		require.NoError(t, err, "re-tokenizing %q", text)
		require.Len(t, again, 2)
		assert.Equal(t, tok.Kind, again[0].Kind)
		assert.True(t, tok.Value.Equal(again[0].Value))
	}
}

func TestTokenString(t *testing.T) {
	tokens, err := Tokenize("test", "7 2.5 -")
	require.NoError(t, err)
	assert.Equal(t, "INT:7", tokens[0].String())
	assert.Equal(t, "FLOAT:2.5", tokens[1].String())
	assert.Equal(t, "MINUS", tokens[2].String())
	assert.Equal(t, "EOF", tokens[3].String())
}

func TestPositionAdvance(t *testing.T) {
	start := newPosition("a", "x\ny")
	next := start.Advance('x', 1)
	assert.Equal(t, 0, start.Offset, "advance must not mutate the receiver")
	assert.Equal(t, Position{Offset: 1, Line: 0, Column: 1, Source: "a", Text: "x\ny"}, next)

	afterNewline := next.Advance('\n', 1)
	assert.Equal(t, 2, afterNewline.Offset)
	assert.Equal(t, 1, afterNewline.Line)
	assert.Equal(t, 0, afterNewline.Column)
	assert.Equal(t, "a:2:1", afterNewline.String())
}
