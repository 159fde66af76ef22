// Package calc implements the RPN (Reverse Polish Notation) evaluation
// engine: tokenization, stack-based evaluation and the typed error taxonomy
// the HTTP layer maps onto user-facing responses. All functions are pure and
// safe for concurrent use; each call owns a private evaluation stack.
package calc

// Evaluate processes tokens strictly left to right over a private stack.
// Numbers are pushed; an operator pops the right then the left operand and
// pushes the single result back. After the last token the stack must hold
// exactly one value, which is the result.
func Evaluate(tokens []Token) (float64, error) {
	stack := make([]float64, 0, len(tokens))

	for _, tok := range tokens {
		if !tok.IsOperator() {
			stack = append(stack, tok.Value)
			continue
		}

		if len(stack) < 2 {
			return 0, &EvalError{Kind: InsufficientOperands, Token: tok.Literal, Pos: tok.Pos}
		}
		right := stack[len(stack)-1]
		left := stack[len(stack)-2]
		stack = stack[:len(stack)-2]

		var v float64
		switch tok.Type {
		case PLUS:
			v = left + right
		case MINUS:
			v = left - right
		case MULTIPLY:
			v = left * right
		case DIVIDE:
			if right == 0 {
				return 0, &EvalError{Kind: DivisionByZero, Token: tok.Literal, Pos: tok.Pos}
			}
			v = left / right
		}
		stack = append(stack, v)
	}

	if len(stack) != 1 {
		return 0, &EvalError{Kind: MalformedExpression}
	}
	return stack[0], nil
}

// EvaluateString tokenizes and evaluates a whitespace-delimited RPN
// expression in one call.
func EvaluateString(expr string) (float64, error) {
	tokens, err := Tokenize(expr)
	if err != nil {
		return 0, err
	}
	return Evaluate(tokens)
}
