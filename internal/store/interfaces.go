package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-vault-gate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// StoredRequestStorage persists at most one StoredRequest per ticket.
//
// Get returns (nil, nil) when no request exists for the ticket: absence is a
// valid non-error outcome distinct from failure.
type StoredRequestStorage interface {
	Get(ctx context.Context, ticketID string) (*models.StoredRequest, error)

	// Save upserts the request under its ticket identifier, overwriting any
	// previous draft in place.
	Save(ctx context.Context, request models.StoredRequest) error

	// Clear removes the ticket's request. Clearing an absent request is not
	// an error.
	Clear(ctx context.Context, ticketID string) error

	// DeleteOlderThan purges requests saved before cutoff and returns how
	// many were removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
