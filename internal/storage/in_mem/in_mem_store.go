package in_mem

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nbogalheiro/npi-calculator/internal/domain"
	"github.com/nbogalheiro/npi-calculator/pkg/pagination"
)

// Store keeps the calculation history in process memory. It backs local
// development without a database and the router tests. Records are held in
// insertion order; no dedup, identical expressions create independent rows.
type Store struct {
	storageLock sync.RWMutex
	storage     []domain.Calculation
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Save(ctx context.Context, calculation domain.Calculation) (uuid.UUID, error) {
	if calculation.ID == uuid.Nil {
		calculation.ID = uuid.New()
	}
	if calculation.CreatedAt.IsZero() {
		calculation.CreatedAt = time.Now()
	}

	s.storageLock.Lock()
	defer s.storageLock.Unlock()
	s.storage = append(s.storage, calculation)

	return calculation.ID, nil
}

func (s *Store) List(ctx context.Context, page, size int) (*pagination.OffsetResult[domain.Calculation], error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	total := len(s.storage)
	offset := (page - 1) * size

	items := make([]domain.Calculation, 0, size)
	// Newest first: walk the slice backwards from the offset.
	for i := total - 1 - offset; i >= 0 && len(items) < size; i-- {
		items = append(items, s.storage[i])
	}

	return pagination.NewOffsetResult(items, int64(total), page, size), nil
}

func (s *Store) ListAll(ctx context.Context) ([]domain.Calculation, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	all := make([]domain.Calculation, len(s.storage))
	copy(all, s.storage)
	return all, nil
}
