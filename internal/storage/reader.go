package storage

import (
	"context"

	"github.com/nbogalheiro/npi-calculator/internal/domain"
	"github.com/nbogalheiro/npi-calculator/pkg/pagination"
)

// Reader retrieves the calculation history.
type Reader interface {
	// List returns one page of history, newest first.
	List(ctx context.Context, page, size int) (*pagination.OffsetResult[domain.Calculation], error)
	// ListAll returns the entire history in insertion order, oldest first.
	// Used by the CSV export, which always dumps the full table.
	ListAll(ctx context.Context) ([]domain.Calculation, error)
}
