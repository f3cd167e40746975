package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ActionID identifies the secret-management action a ticket requests.
type ActionID string

const (
	ActionCreateSecret      ActionID = "create_secret"
	ActionUpdateSecret      ActionID = "update_secret"
	ActionShareRecord       ActionID = "share_record"
	ActionShareFolder       ActionID = "share_folder"
	ActionFolderPermissions ActionID = "change_folder_permissions"
)

// IsUpdateMode reports whether the action edits an existing secret rather
// than creating a new one. Update mode changes how a mid-edit secret-type
// switch is handled: previously displayed values must not leak into the new
// type's fields.
func (a ActionID) IsUpdateMode() bool {
	return a == ActionUpdateSecret
}

// Known reports whether a is one of the supported actions.
func (a ActionID) Known() bool {
	switch a {
	case ActionCreateSecret, ActionUpdateSecret, ActionShareRecord,
		ActionShareFolder, ActionFolderPermissions:
		return true
	default:
		return false
	}
}

// PendingAddress carries locally entered data for an address record that is
// created inline during editing and does not exist on the backend yet. It is
// resolved to a real identifier only at submission time.
type PendingAddress struct {
	UID     string       `json:"uid"`
	Title   string       `json:"title"`
	Address AddressValue `json:"address"`
}

// PendingUIDPrefix marks reference UIDs of not-yet-persisted records.
// The resolver skips them entirely.
const PendingUIDPrefix = "pending:"

// NewPendingUID mints a placeholder UID for an inline-created record.
func NewPendingUID() string {
	return PendingUIDPrefix + uuid.NewString()
}

// IsPendingUID reports whether uid is a pending-creation placeholder.
func IsPendingUID(uid string) bool {
	return strings.HasPrefix(uid, PendingUIDPrefix)
}

// StoredRequest is the persisted draft of one ticket's pending action, shared
// between the requester and administrator views of that ticket. At most one
// StoredRequest exists per ticket; saving again overwrites it in place.
type StoredRequest struct {
	TicketID         string           `json:"ticketId"`
	SelectedAction   ActionID         `json:"selectedAction"`
	EditBuffer       EditBuffer       `json:"editBuffer"`
	SelectedEntities []string         `json:"selectedEntities,omitempty"`
	TempAddressData  []PendingAddress `json:"tempAddressData,omitempty"`
	AssignedReviewer string           `json:"assignedReviewer,omitempty"`
	Timestamp        time.Time        `json:"timestamp"`
}
