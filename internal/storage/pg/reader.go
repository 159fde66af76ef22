package pg

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nbogalheiro/npi-calculator/internal/domain"
	"github.com/nbogalheiro/npi-calculator/pkg/pagination"
)

type Reader struct {
	db *pgxpool.Pool
}

func NewReader(pool *ConnectionPool) *Reader {
	return &Reader{db: pool.conn}
}

func (r *Reader) List(ctx context.Context, page, size int) (*pagination.OffsetResult[domain.Calculation], error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM calculations`).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count calculations: %w", err)
	}

	listSQL := `
		SELECT id, expression, result, created_at
		FROM calculations
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	offset := (page - 1) * size

	rows, err := r.db.Query(ctx, listSQL, size, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list calculations: %w", err)
	}
	defer rows.Close()

	var items []domain.Calculation
	for rows.Next() {
		var c domain.Calculation
		if err := rows.Scan(&c.ID, &c.Expression, &c.Result, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan calculation: %w", err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read calculation rows: %w", err)
	}

	return pagination.NewOffsetResult(items, total, page, size), nil
}

func (r *Reader) ListAll(ctx context.Context) ([]domain.Calculation, error) {
	listSQL := `
		SELECT id, expression, result, created_at
		FROM calculations
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list calculations: %w", err)
	}
	defer rows.Close()

	var items []domain.Calculation
	for rows.Next() {
		var c domain.Calculation
		if err := rows.Scan(&c.ID, &c.Expression, &c.Result, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan calculation: %w", err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read calculation rows: %w", err)
	}

	return items, nil
}
