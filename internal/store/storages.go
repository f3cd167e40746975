package store

import (
	"context"

	"github.com/MKhiriev/go-vault-gate/internal/config"
	"github.com/MKhiriev/go-vault-gate/internal/logger"
	"github.com/MKhiriev/go-vault-gate/migrations"
)

// Storages aggregates every persistence dependency of the service layer.
type Storages struct {
	StoredRequestStorage StoredRequestStorage
}

// NewStorages selects the persistence backend: PostgreSQL when a database
// DSN is configured (running embedded migrations first), otherwise the
// JSON-file store.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN != "" {
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		if err = migrations.Migrate(db.DB); err != nil {
			return nil, err
		}
		return &Storages{StoredRequestStorage: NewStoredRequestRepository(db, log)}, nil
	}

	fileStore, err := NewFileStorage(cfg.File.Path)
	if err != nil {
		return nil, err
	}
	log.Info().Str("func", "NewStorages").Msg("using file-backed stored request storage")
	return &Storages{StoredRequestStorage: fileStore}, nil
}
