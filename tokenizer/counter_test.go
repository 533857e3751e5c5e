package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhitespaceCounter_CountTokens(t *testing.T) {
	t.Parallel()

	c := WhitespaceCounter{}
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"   ", 0},
		{"hello", 1},
		{"These are some words", 4},
		{"word1   word2  word3     word4 word5    some  more   text ", 8},
	}
	for _, tt := range tests {
		got, err := c.CountTokens(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
	assert.Equal(t, "whitespace", c.Name())
}

func TestEstimatorCounter_CountTokens(t *testing.T) {
	t.Parallel()

	e := NewEstimatorCounter(0)

	got, err := e.CountTokens("")
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = e.CountTokens("a")
	require.NoError(t, err)
	assert.Equal(t, 1, got, "non-empty text counts at least one token")

	got, err = e.CountTokens("abcdefghijklmnop")
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	got, err = e.CountTokens("日本語日本語")
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	got, err = NewEstimatorCounter(2).CountTokens("abcdefgh")
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	assert.Equal(t, "estimator", e.Name())
}

type fixedCounter int

func (f fixedCounter) CountTokens(string) (int, error) { return int(f), nil }
func (f fixedCounter) Name() string                    { return "fixed" }

func TestGetCounter(t *testing.T) {
	c, err := GetCounter("whitespace")
	require.NoError(t, err)
	assert.Equal(t, "whitespace", c.Name())

	c, err = GetCounter("estimator-cjk")
	require.NoError(t, err)
	assert.Equal(t, "estimator", c.Name())

	_, err = GetCounter("bpe")
	require.ErrorIs(t, err, ErrUnknownCounter)
	assert.Equal(t, "whitespace", GetCounterOr("bpe").Name())

	RegisterCounter("fixed", fixedCounter(7))
	c, err = GetCounter("fixed")
	require.NoError(t, err)
	n, err := c.CountTokens("anything")
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}
