package models

// OpenTicketRequest identifies which entity (if any) the panel opened the
// ticket with. Reopening the same entity preserves the saved draft; opening a
// different entity resets the session cleanly.
type OpenTicketRequest struct {
	SelectedAction ActionID `json:"selectedAction,omitempty"`
	RecordUID      string   `json:"recordUid,omitempty"`
	SecretType     string   `json:"secretType,omitempty"`
}

// TypeChangeRequest asks the session to switch the active secret type mid-edit.
type TypeChangeRequest struct {
	NewType string `json:"newType"`
}

// SaveRequestBody is the requester's draft submitted for persistence.
type SaveRequestBody struct {
	SelectedAction   ActionID         `json:"selectedAction"`
	EditBuffer       EditBuffer       `json:"editBuffer"`
	SelectedEntities []string         `json:"selectedEntities,omitempty"`
	TempAddressData  []PendingAddress `json:"tempAddressData,omitempty"`
}

// SaveResult reports the outcome of persisting a StoredRequest.
type SaveResult struct {
	Success          bool   `json:"success"`
	Message          string `json:"message,omitempty"`
	AssignedReviewer string `json:"assignedReviewer,omitempty"`
}

// ExecutePayload is the command handed to the vault backend when an
// administrator submits the (possibly edited) buffer for execution. Fields
// carries the stored wire shape: sub-field edits are recomposed back into
// nested composite values before submission.
type ExecutePayload struct {
	ActionID         ActionID         `json:"actionId"`
	RecordUID        string           `json:"recordUid,omitempty"`
	SecretType       string           `json:"secretType,omitempty"`
	Title            string           `json:"title,omitempty"`
	Notes            string           `json:"notes,omitempty"`
	Fields           []FieldEntry     `json:"fields"`
	CustomFields     []CustomField    `json:"customFields,omitempty"`
	SelectedEntities []string         `json:"selectedEntities,omitempty"`
	TempAddressData  []PendingAddress `json:"tempAddressData,omitempty"`
}

// ExecuteResult is the vault backend's answer to an execute call.
type ExecuteResult struct {
	Success         bool   `json:"success"`
	Message         string `json:"message,omitempty"`
	CreatedEntityID string `json:"createdEntityId,omitempty"`
}

// RejectRequestBody carries the administrator's mandatory rejection reason.
type RejectRequestBody struct {
	Reason string `json:"reason"`
}

// RoleLookupResult is the ticketing platform's role answer for one ticket.
type RoleLookupResult struct {
	IsAdministrator bool `json:"isAdministrator"`
}

// OperationResult is the generic success/message envelope for clear and
// reject outcomes.
type OperationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
