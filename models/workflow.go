package models

import "time"

// WorkflowState is the approval lifecycle state of one ticket.
type WorkflowState string

const (
	StateEditingRequester     WorkflowState = "editing_requester"
	StateSaved                WorkflowState = "saved"
	StateEditingAdministrator WorkflowState = "editing_administrator"
	StateExecuted             WorkflowState = "executed"
	StateRejected             WorkflowState = "rejected"
	StateCleared              WorkflowState = "cleared"
)

// TicketView is the panel-facing snapshot of one ticket's edit session.
type TicketView struct {
	TicketID       string        `json:"ticketId"`
	Role           Role          `json:"role"`
	State          WorkflowState `json:"state"`
	SelectedAction ActionID      `json:"selectedAction,omitempty"`
	SecretType     string        `json:"secretType,omitempty"`

	// StandardFieldsOnly signals that the active schema produced no usable
	// field entries and the panel should fall back to title/notes only.
	StandardFieldsOnly bool `json:"standardFieldsOnly,omitempty"`

	Descriptors  []FieldDescriptor `json:"descriptors,omitempty"`
	Buffer       EditBuffer        `json:"buffer,omitempty"`
	CustomFields []CustomField     `json:"customFields,omitempty"`

	SelectedEntities []string         `json:"selectedEntities,omitempty"`
	TempAddressData  []PendingAddress `json:"tempAddressData,omitempty"`
	AssignedReviewer string           `json:"assignedReviewer,omitempty"`

	// CooldownUntil is set while the session is locked after a successful
	// execute and refuses new actions.
	CooldownUntil *time.Time `json:"cooldownUntil,omitempty"`
}
