package naka

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineEval(t *testing.T) {
	engine := NewEngine(Config{})
	value, err := engine.Eval("(1 + 2) * 3")
	require.NoError(t, err)
	assert.True(t, NewInt(9).Equal(value))
	assert.Equal(t, DefaultSourceName, engine.SourceName())
}

func TestEngineCompileExposesTokensAndTree(t *testing.T) {
	engine := NewEngine(Config{SourceName: "inline"})
	script, err := engine.Compile("4 / 2")
	require.NoError(t, err)

	assert.Equal(t, "4 / 2", script.Source())
	assert.Len(t, script.Tokens(), 4)
	assert.Equal(t, "(INT:4, DIV, INT:2)", script.Root().String())
	assert.Equal(t, "inline", script.Tokens()[0].Start.Source)

	value, err := script.Eval()
	require.NoError(t, err)
	assert.True(t, NewFloat(2).Equal(value))
}

func TestEngineReportsSourceName(t *testing.T) {
	engine := NewEngine(Config{SourceName: "answers.naka"})
	_, err := engine.Eval("1 +")

	var syntaxErr *Error
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, "Invalid Syntax: expected int or float\nFile: answers.naka, line 1", syntaxErr.Error())
}

func TestEngineStopsAtFirstStageError(t *testing.T) {
	engine := NewEngine(Config{})

	_, err := engine.Eval("1 / 0 + @")
	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
	assert.True(t, lexErr.IsKind(ErrIllegalCharacter))

	_, err = engine.Eval("1 / 0")
	var evalErr *Error
	require.ErrorAs(t, err, &evalErr)
	assert.True(t, evalErr.IsKind(ErrArithmetic))
}

func TestEngineTokenize(t *testing.T) {
	tokens, err := NewEngine(Config{}).Tokenize("1+2")
	require.NoError(t, err)
	assert.Len(t, tokens, 4)
}

func TestEngineLogsStagesWithRunID(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	engine := NewEngine(Config{Logger: logger})
	_, err := engine.Eval("2 * 21")
	require.NoError(t, err)

	entries := hook.AllEntries()
	require.Len(t, entries, 3)
	assert.Equal(t, "tokenized", entries[0].Message)
	assert.Equal(t, "parsed", entries[1].Message)
	assert.Equal(t, "evaluated", entries[2].Message)

	runID := entries[0].Data["run_id"]
	assert.NotEmpty(t, runID)
	for _, entry := range entries {
		assert.Equal(t, runID, entry.Data["run_id"])
		assert.Equal(t, DefaultSourceName, entry.Data["source"])
	}
	assert.Equal(t, 4, entries[0].Data["tokens"])
	assert.Equal(t, "42", entries[2].Data["value"])

	hook.Reset()
	_, err = engine.Eval("1")
	require.NoError(t, err)
	assert.NotEqual(t, runID, hook.LastEntry().Data["run_id"])
}

func TestEngineLogsFailures(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	_, err := NewEngine(Config{Logger: logger}).Eval("(1")
	require.Error(t, err)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "parse failed", hook.LastEntry().Message)
	assert.Equal(t, err, hook.LastEntry().Data[logrus.ErrorKey])
}
