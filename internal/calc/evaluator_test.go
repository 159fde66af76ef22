package calc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateString(t *testing.T) {
	cases := []struct {
		expr string
		want float64
	}{
		{"3 4 +", 7},
		{"5 1 2 + 4 * + 3 -", 14},
		{"3 4 + 2 *", 14},
		{"10 2 / 3 +", 8},
		{"5 6 - 2 *", -2},
		{"-5.5 -2.5 +", -8},
		{"-10 -2 *", 20},
		{"+0 +0 -", 0},
		{"0 0 +", 0},
		{"42", 42},
		{"-3.25", -3.25},
	}

	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			got, err := EvaluateString(tc.expr)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEvaluateString_Deterministic(t *testing.T) {
	first, err := EvaluateString("5 1 2 + 4 * + 3 -")
	require.NoError(t, err)

	second, err := EvaluateString("5 1 2 + 4 * + 3 -")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEvaluateString_DivisionByZero(t *testing.T) {
	for _, expr := range []string{"4 0 /", "8 0 /", "1 5 5 - /"} {
		t.Run(expr, func(t *testing.T) {
			_, err := EvaluateString(expr)

			var ee *EvalError
			require.ErrorAs(t, err, &ee)
			assert.Equal(t, DivisionByZero, ee.Kind)
		})
	}
}

func TestEvaluateString_InsufficientOperands(t *testing.T) {
	_, err := EvaluateString("1 +")

	var ee *EvalError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, InsufficientOperands, ee.Kind)
	assert.Equal(t, "+", ee.Token)
	assert.Equal(t, 1, ee.Pos)
}

func TestEvaluateString_MalformedExpression(t *testing.T) {
	for _, expr := range []string{"", "   ", "1 2", "1 2 3 +"} {
		t.Run("expr="+expr, func(t *testing.T) {
			_, err := EvaluateString(expr)

			var ee *EvalError
			require.ErrorAs(t, err, &ee)
			assert.Equal(t, MalformedExpression, ee.Kind)
		})
	}
}

func TestEvaluateString_InvalidToken(t *testing.T) {
	_, err := EvaluateString("1 x +")

	var ee *EvalError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, InvalidToken, ee.Kind)
	assert.Equal(t, "x", ee.Token)
	assert.Equal(t, 1, ee.Pos)
}

func TestEvaluate_NoPartialResultOnFailure(t *testing.T) {
	tokens, err := Tokenize("1 2 + +")
	require.NoError(t, err)

	got, err := Evaluate(tokens)
	require.Error(t, err)
	assert.Zero(t, got)

	// The failure must surface as the typed error, never a plain one.
	var ee *EvalError
	assert.True(t, errors.As(err, &ee))
}
