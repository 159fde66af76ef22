package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	t.Run("numbers and operators", func(t *testing.T) {
		tokens, err := Tokenize("3 4 + 2 *")
		require.NoError(t, err)
		require.Len(t, tokens, 5)

		assert.Equal(t, NUMBER, tokens[0].Type)
		assert.Equal(t, 3.0, tokens[0].Value)
		assert.Equal(t, PLUS, tokens[2].Type)
		assert.Equal(t, MULTIPLY, tokens[4].Type)
		assert.Equal(t, 4, tokens[4].Pos)
	})

	t.Run("signed literals are numbers", func(t *testing.T) {
		tokens, err := Tokenize("-5.5 +0")
		require.NoError(t, err)
		require.Len(t, tokens, 2)

		assert.Equal(t, NUMBER, tokens[0].Type)
		assert.Equal(t, -5.5, tokens[0].Value)
		assert.Equal(t, NUMBER, tokens[1].Type)
		assert.Equal(t, 0.0, tokens[1].Value)
	})

	t.Run("empty input yields no tokens", func(t *testing.T) {
		tokens, err := Tokenize("")
		require.NoError(t, err)
		assert.Empty(t, tokens)
	})

	t.Run("extra whitespace is ignored", func(t *testing.T) {
		tokens, err := Tokenize("  1\t 2\n + ")
		require.NoError(t, err)
		assert.Len(t, tokens, 3)
	})

	t.Run("unrecognized token", func(t *testing.T) {
		_, err := Tokenize("1 x +")

		var ee *EvalError
		require.ErrorAs(t, err, &ee)
		assert.Equal(t, InvalidToken, ee.Kind)
		assert.Equal(t, "x", ee.Token)
		assert.Equal(t, 1, ee.Pos)
	})
}

func TestTokenType_String(t *testing.T) {
	assert.Equal(t, "NUMBER", NUMBER.String())
	assert.Equal(t, "PLUS", PLUS.String())
	assert.Equal(t, "DIVIDE", DIVIDE.String())
	assert.Equal(t, "UNKNOWN", TokenType(42).String())
}
