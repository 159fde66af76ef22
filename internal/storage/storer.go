package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/nbogalheiro/npi-calculator/internal/domain"
)

// Storer persists one successfully evaluated calculation per call. The
// evaluator itself never touches storage; callers invoke Save only after a
// successful evaluation.
type Storer interface {
	Save(ctx context.Context, calculation domain.Calculation) (uuid.UUID, error)
}

type Type string

const (
	PG    Type = "pg"
	InMem Type = "in_mem"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}
