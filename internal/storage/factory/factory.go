package factory

import (
	"context"
	"fmt"

	"github.com/nbogalheiro/npi-calculator/internal/storage"
	"github.com/nbogalheiro/npi-calculator/internal/storage/in_mem"
	"github.com/nbogalheiro/npi-calculator/internal/storage/pg"
	"github.com/nbogalheiro/npi-calculator/pkg/server"
)

// Store bundles the persistence collaborators one backend provides. Both
// interfaces share a single connection pool for the pg backend.
type Store struct {
	Storer storage.Storer
	Reader storage.Reader
	Health server.HealthChecker
}

// NewStore creates the storage collaborators for the configured backend.
func NewStore(ctx context.Context, cfg *StorageConfig) (*Store, error) {
	switch cfg.Type {
	case storage.PG:
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}

		return &Store{
			Storer: pg.NewStorer(pool),
			Reader: pg.NewReader(pool),
			Health: pg.NewHealthChecker(pool),
		}, nil

	case storage.InMem:
		s := in_mem.NewStore()
		return &Store{
			Storer: s,
			Reader: s,
			Health: server.NewOkHealthChecker(),
		}, nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
