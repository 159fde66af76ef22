package calc

import "fmt"

type ErrorKind int

const (
	// InvalidToken marks a token that is neither a numeric literal nor one
	// of the four supported operators.
	InvalidToken ErrorKind = iota
	// InsufficientOperands marks an operator applied with fewer than two
	// values on the stack.
	InsufficientOperands
	// DivisionByZero marks a division whose right-hand operand is zero.
	DivisionByZero
	// MalformedExpression marks an expression whose stack does not reduce
	// to exactly one value (empty input included).
	MalformedExpression
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidToken:
		return "invalid_token"
	case InsufficientOperands:
		return "insufficient_operands"
	case DivisionByZero:
		return "division_by_zero"
	case MalformedExpression:
		return "malformed_expression"
	default:
		return "unknown"
	}
}

// EvalError is the only error type the evaluator produces. Token and Pos
// identify the offending token where one exists; MalformedExpression carries
// neither since the defect is the expression shape, not a single token.
type EvalError struct {
	Kind  ErrorKind
	Token string
	Pos   int
}

func (e *EvalError) Error() string {
	switch e.Kind {
	case InvalidToken:
		return fmt.Sprintf("invalid token %q at position %d", e.Token, e.Pos)
	case InsufficientOperands:
		return fmt.Sprintf("operator %q at position %d has insufficient operands", e.Token, e.Pos)
	case DivisionByZero:
		return fmt.Sprintf("division by zero at position %d", e.Pos)
	case MalformedExpression:
		return "malformed expression: does not reduce to a single value"
	default:
		return "unknown evaluation error"
	}
}

func newInvalidToken(literal string, pos int) *EvalError {
	return &EvalError{Kind: InvalidToken, Token: literal, Pos: pos}
}
