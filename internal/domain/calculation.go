package domain

import (
	"time"

	"github.com/google/uuid"
)

// Calculation is one stored history record: the raw RPN expression as the
// user submitted it and the numeric result it evaluated to.
type Calculation struct {
	ID         uuid.UUID `json:"id"`
	Expression string    `json:"expression"`
	Result     float64   `json:"result"`
	CreatedAt  time.Time `json:"createdAt"`
}
