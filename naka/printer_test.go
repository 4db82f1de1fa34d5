package naka

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1+2", "1 + 2"},
		{"(1-2)-3", "1 - 2 - 3"},
		{"1-(2-3)", "1 - (2 - 3)"},
		{"1+(2+3)", "1 + (2 + 3)"},
		{"2*(3+4)", "2 * (3 + 4)"},
		{"(2*3)+4", "2 * 3 + 4"},
		{"8/(4*2)", "8 / (4 * 2)"},
		{"-(1+2)", "-(1 + 2)"},
		{"--5", "--5"},
		{"2*-3", "2 * -3"},
		{"-1*2", "-1 * 2"},
		{"(((7)))", "7"},
		{"1.", "1.0"},
		{"  3.25 ", "3.25"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(mustParse(t, tt.input)))
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	inputs := []string{
		"1 - (2 - (3 - 4))",
		"-(-(1 * (2 / 3)))",
		"((1 + 2) * (3 - 4)) / -5.5",
		"+1 - +2",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			original := mustParse(t, input)
			reparsed := mustParse(t, Format(original))
			require.Equal(t, original.String(), reparsed.String())
		})
	}
}

func TestFormatNil(t *testing.T) {
	assert.Equal(t, "", Format(nil))
}
