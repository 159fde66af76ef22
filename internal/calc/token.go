package calc

type TokenType int

const (
	NUMBER TokenType = iota
	PLUS
	MINUS
	MULTIPLY
	DIVIDE
)

func (t TokenType) String() string {
	switch t {
	case NUMBER:
		return "NUMBER"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case MULTIPLY:
		return "MULTIPLY"
	case DIVIDE:
		return "DIVIDE"
	default:
		return "UNKNOWN"
	}
}

// Token is one element of an RPN expression: a numeric literal or an operator.
// Value is only meaningful for NUMBER tokens. Pos is the 0-based index of the
// token in the whitespace-split expression.
type Token struct {
	Type    TokenType
	Literal string
	Value   float64
	Pos     int
}

// IsOperator reports whether the token consumes operands from the stack.
func (t Token) IsOperator() bool {
	return t.Type != NUMBER
}
