// Package adapter provides transport-layer abstractions for communicating
// with the password-vault backend and the ticketing platform.
//
// The abstractions decouple the session and workflow layers from the
// underlying protocol. The package ships HTTP/REST implementations built on
// resty; error values defined in errors.go are mapped from HTTP status codes
// by mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling. Fetch-style calls translate a not-found answer into a
// (nil, nil) result: "absent" is a valid non-error outcome distinct from
// failure.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-vault-gate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// VaultAdapter defines communication with the password-vault backend.
type VaultAdapter interface {
	// FetchSchema returns the declarative field schema for a secret type, or
	// (nil, nil) when the backend has no template for it.
	FetchSchema(ctx context.Context, typeID string) (*models.Schema, error)

	// FetchSecretDetails returns one stored secret's value, or (nil, nil)
	// when no record with that UID exists.
	FetchSecretDetails(ctx context.Context, uid string) (*models.StoredSecretValue, error)

	// ResolveReference fetches the record a reference UID points at, or
	// (nil, nil) when the reference is stale.
	ResolveReference(ctx context.Context, uid string) (*models.StoredSecretValue, error)

	// Execute submits an approved action for execution against the vault.
	// The payload is opaque to the backend contract; the result carries the
	// backend's message and, for create actions, the new entity identifier.
	Execute(ctx context.Context, ticketID string, payload models.ExecutePayload) (models.ExecuteResult, error)
}

// PlatformAdapter defines communication with the ticketing platform.
type PlatformAdapter interface {
	// FetchRole answers whether the current operator is an administrator for
	// the given ticket.
	FetchRole(ctx context.Context, ticketID string) (models.RoleLookupResult, error)

	// Reject posts the administrator's rejection reason back to the ticket.
	Reject(ctx context.Context, ticketID, reason string) (models.OperationResult, error)
}
