package service

import (
	"context"

	"github.com/MKhiriev/go-vault-gate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// WorkflowService owns the approval lifecycle of every ticket: edit sessions,
// stored-request persistence, and the role-gated transitions between the
// requester's draft and the administrator's execute/reject decision.
type WorkflowService interface {
	// OpenTicket establishes (or re-enters) the ticket's edit session. The
	// operator's role is looked up first; a stored request, when present, is
	// loaded verbatim for the administrator and pre-populates the requester's
	// re-entered draft.
	OpenTicket(ctx context.Context, ticketID string, req models.OpenTicketRequest) (models.TicketView, error)

	// ChangeType switches the active secret type mid-edit through the
	// record-type transition controller.
	ChangeType(ctx context.Context, ticketID string, req models.TypeChangeRequest) (models.TicketView, error)

	// SaveRequest validates and persists the requester's draft, overwriting
	// any previous stored request for the ticket in place.
	SaveRequest(ctx context.Context, ticketID string, body models.SaveRequestBody) (models.SaveResult, error)

	// ClearRequest discards the requester's own pending stored request. This
	// is the only deletion path available to the requester role.
	ClearRequest(ctx context.Context, ticketID string) (models.OperationResult, error)

	// Execute submits the (possibly edited) buffer for execution. On backend
	// success the stored request is cleared and the session is locked for a
	// cooldown interval.
	Execute(ctx context.Context, ticketID string, edits models.SaveRequestBody) (models.ExecuteResult, error)

	// Reject posts the administrator's mandatory rejection reason, clears the
	// stored request and resets the session to a blank requester state.
	Reject(ctx context.Context, ticketID string, body models.RejectRequestBody) (models.OperationResult, error)
}

// ReferenceService exposes the shared address-reference cache to the panel.
// Pending-creation placeholder UIDs are answered from the owning session's
// locally entered data instead of the backend.
type ReferenceService interface {
	Resolve(ctx context.Context, uid string, bypass bool) models.ReferenceView
	Remove(uid string)
}

// PendingAddressSource looks up the locally entered address data behind a
// pending-creation placeholder UID.
type PendingAddressSource interface {
	PendingAddress(uid string) (models.PendingAddress, bool)
}

// AppInfoService reports the running build's version information.
type AppInfoService interface {
	GetAppBuildInfo(ctx context.Context) models.AppBuildInfo
}
