package calc

import (
	"strconv"
	"strings"
)

// Tokenize splits a whitespace-delimited RPN expression into tokens and
// classifies each as a numeric literal or an operator. Signed literals such
// as "-5.5" or "+0" are numbers, not operator applications. Anything that is
// neither fails with an InvalidToken error naming the offending token.
func Tokenize(input string) ([]Token, error) {
	fields := strings.Fields(input)
	tokens := make([]Token, 0, len(fields))

	for i, f := range fields {
		switch f {
		case "+":
			tokens = append(tokens, Token{Type: PLUS, Literal: f, Pos: i})
		case "-":
			tokens = append(tokens, Token{Type: MINUS, Literal: f, Pos: i})
		case "*":
			tokens = append(tokens, Token{Type: MULTIPLY, Literal: f, Pos: i})
		case "/":
			tokens = append(tokens, Token{Type: DIVIDE, Literal: f, Pos: i})
		default:
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, newInvalidToken(f, i)
			}
			tokens = append(tokens, Token{Type: NUMBER, Literal: f, Value: v, Pos: i})
		}
	}

	return tokens, nil
}
