package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/nbogalheiro/npi-calculator/internal/domain"
)

type CalculateRequest struct {
	Expression string `json:"expression" form:"expression"`
}

type CalculationResponse struct {
	ID         uuid.UUID `json:"id"`
	Expression string    `json:"expression"`
	Result     float64   `json:"result"`
	CreatedAt  time.Time `json:"createdAt"`
}

func NewCalculationResponse(c domain.Calculation) CalculationResponse {
	return CalculationResponse{
		ID:         c.ID,
		Expression: c.Expression,
		Result:     c.Result,
		CreatedAt:  c.CreatedAt,
	}
}
