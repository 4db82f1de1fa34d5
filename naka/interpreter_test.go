package naka

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		input string
		want  Number
	}{
		{"1-2-3", NewInt(-4)},
		{"2+3*4", NewInt(14)},
		{"(2+3)*4", NewInt(20)},
		{"--5", NewInt(5)},
		{"-5", NewInt(-5)},
		{"+5", NewInt(5)},
		{"-(2-7)", NewInt(5)},
		{"10 - 2 * 3 + 1", NewInt(5)},
		{"7/2", NewFloat(3.5)},
		{"8/4", NewFloat(2)},
		{"1.5 + 1", NewFloat(2.5)},
		{"2 * 0.25", NewFloat(0.5)},
		{"-1.5", NewFloat(-1.5)},
		{"3.0 - 1", NewFloat(2)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			value, err := Evaluate(mustParse(t, tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want.Kind(), value.Kind())
			assert.True(t, tt.want.Equal(value), "expected %s, got %s", tt.want, value)
		})
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	tests := []struct {
		input string
		start int
		end   int
	}{
		{"1/0", 2, 3},
		{"1 / (2 - 2)", 5, 10},
		{"4 / 0.0", 4, 7},
		{"(1/0) + 1", 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Evaluate(mustParse(t, tt.input))

			var evalErr *Error
			require.ErrorAs(t, err, &evalErr)
			assert.True(t, evalErr.IsKind(ErrArithmetic))
			assert.Equal(t, "Arithmetic Error", evalErr.Category())
			assert.Equal(t, "division by zero", evalErr.Details)
			assert.Equal(t, tt.start, evalErr.Start.Offset)
			assert.Equal(t, tt.end, evalErr.End.Offset)
		})
	}
}

func TestEvaluateNilNode(t *testing.T) {
	_, err := Evaluate(nil)
	assert.Error(t, err)
}

func TestNumberString(t *testing.T) {
	assert.Equal(t, "-4", NewInt(-4).String())
	assert.Equal(t, "2.0", NewFloat(2).String())
	assert.Equal(t, "3.5", NewFloat(3.5).String())
	assert.Equal(t, "-0.25", NewFloat(-0.25).String())
	assert.Equal(t, "int", NewInt(1).Kind().String())
	assert.Equal(t, "float", NewFloat(1).Kind().String())
	assert.False(t, NewInt(2).Equal(NewFloat(2)))
}
