package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nbogalheiro/npi-calculator/internal/domain"
)

type Storer struct {
	db *pgxpool.Pool
}

func NewStorer(pool *ConnectionPool) *Storer {
	return &Storer{db: pool.conn}
}

func (s *Storer) Save(ctx context.Context, calculation domain.Calculation) (uuid.UUID, error) {
	if calculation.ID == uuid.Nil {
		calculation.ID = uuid.New()
	}
	if calculation.CreatedAt.IsZero() {
		calculation.CreatedAt = time.Now()
	}

	cmd := `
        INSERT INTO calculations (id, expression, result, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id;
    `
	var id uuid.UUID
	err := s.db.QueryRow(
		ctx,
		cmd,
		calculation.ID,
		calculation.Expression,
		calculation.Result,
		calculation.CreatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("failed to insert calculation: %w", err)
	}

	return id, nil
}
