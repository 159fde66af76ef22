package factory

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/nbogalheiro/npi-calculator/internal/storage"
	"github.com/nbogalheiro/npi-calculator/internal/storage/pg"
)

type StorageConfig struct {
	storage.Type
	Pg *pg.PoolConfig
}

// LoadEnv resolves the persistence backend from the environment. DATABASE_URL
// is the single setting that selects the store: when it is set the service
// runs on Postgres, otherwise it falls back to the in-memory history.
// STORAGE_TYPE overrides the inference when both make sense.
func LoadEnv() (*StorageConfig, error) {
	connStr := os.Getenv("DATABASE_URL")

	storageType := storage.Type(os.Getenv("STORAGE_TYPE"))
	if storageType == "" {
		if connStr != "" {
			storageType = storage.PG
		} else {
			slog.Info("DATABASE_URL is not set, using in-memory storage")
			storageType = storage.InMem
		}
	}

	if storageType != storage.PG && storageType != storage.InMem {
		slog.Error("Invalid STORAGE_TYPE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid STORAGE_TYPE environment variable value: %s, expected one of %v",
			storageType,
			[]storage.Type{storage.PG, storage.InMem})
	}

	var pgCfg *pg.PoolConfig
	if storageType == storage.PG {
		if connStr == "" {
			slog.Error("DATABASE_URL is not set for pg storage")
			return nil, fmt.Errorf("DATABASE_URL is not set for pg storage")
		}
		pgCfg = &pg.PoolConfig{ConnStr: connStr}
	}

	return &StorageConfig{
		Type: storageType,
		Pg:   pgCfg,
	}, nil
}
