// Package session owns the single active edit session of one ticket: the
// shared edit buffer, the compiled descriptor list, and the record-type
// transition controller that rebuilds both when the selected secret type
// changes mid-edit.
//
// All mutations of one session happen under its mutex; no two mapping or
// compilation passes run concurrently against the same buffer.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-vault-gate/internal/logger"
	"github.com/MKhiriev/go-vault-gate/internal/mapping"
	"github.com/MKhiriev/go-vault-gate/internal/template"
	"github.com/MKhiriev/go-vault-gate/models"
	"github.com/google/uuid"
)

// SchemaSource provides the vault backend's declarative templates and stored
// secret values.
type SchemaSource interface {
	// FetchSchema returns the schema for a secret type, or (nil, nil) when
	// the backend has no template for it.
	FetchSchema(ctx context.Context, typeID string) (*models.Schema, error)

	// FetchSecretDetails returns one stored secret, or (nil, nil) when the
	// entity does not exist.
	FetchSecretDetails(ctx context.Context, uid string) (*models.StoredSecretValue, error)
}

// AddressResolver resolves foreign address references for inline display.
type AddressResolver interface {
	Resolve(ctx context.Context, uid string, bypass bool) models.AddressCacheEntry
}

// DefaultGuardWindow bounds how long mapping writes are dropped after a
// stored-request restore begins. The guard expires unconditionally so a lost
// completion signal can never leave the session stuck.
const DefaultGuardWindow = 3 * time.Second

// Session is the edit state of one ticket.
type Session struct {
	mu sync.Mutex

	ticketID    string
	action      models.ActionID
	homeCountry string
	guardWindow time.Duration

	schemas  SchemaSource
	resolver AddressResolver
	log      *logger.Logger

	secretType         string
	standardFieldsOnly bool
	descriptors        []models.FieldDescriptor
	buffer             models.EditBuffer
	customFields       []models.CustomField
	selectedEntities   []string
	tempAddresses      []models.PendingAddress

	// Snapshot captured at initial load; the return-to-original policy
	// restores it verbatim.
	originalType        string
	originalBuffer      models.EditBuffer
	originalDescriptors []models.FieldDescriptor
	originalCustoms     []models.CustomField

	// Restore guard: while restoreToken is set and unexpired, mapping writes
	// from type transitions are dropped so they cannot overwrite a restore
	// still in flight. A new Load or Restore supersedes the active token.
	restoreToken string
	restoreUntil time.Time
}

// New constructs an empty session for ticketID. guardWindow <= 0 selects
// DefaultGuardWindow.
func New(ticketID string, schemas SchemaSource, resolver AddressResolver, homeCountry string, guardWindow time.Duration, log *logger.Logger) *Session {
	if guardWindow <= 0 {
		guardWindow = DefaultGuardWindow
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Session{
		ticketID:    ticketID,
		homeCountry: homeCountry,
		guardWindow: guardWindow,
		schemas:     schemas,
		resolver:    resolver,
		log:         log,
		buffer:      models.EditBuffer{},
	}
}

// Load initializes the session for an action and, when recordUID names an
// existing entity, maps its stored value onto the compiled descriptors. The
// resulting state is snapshotted as the "original" for later return-to-original
// transitions.
func (s *Session) Load(ctx context.Context, action models.ActionID, recordUID, secretType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	descs, standardOnly := s.compileType(ctx, secretType)

	var stored *models.StoredSecretValue
	if recordUID != "" && !models.IsPendingUID(recordUID) {
		details, err := s.schemas.FetchSecretDetails(ctx, recordUID)
		if err != nil {
			s.log.Err(err).
				Str("ticket_id", s.ticketID).
				Str("record_uid", recordUID).
				Msg("failed to fetch secret details, loading blank form")
		}
		stored = details
	}

	res := mapping.Map(descs, stored, s.homeCountry)
	if stored == nil {
		res.Buffer[models.KeyType] = secretType
		if recordUID != "" {
			res.Buffer[models.KeyRecordUID] = recordUID
		}
	}

	s.action = action
	s.secretType = secretType
	s.standardFieldsOnly = standardOnly
	s.descriptors = descs
	s.buffer = res.Buffer
	s.customFields = res.CustomFields
	s.selectedEntities = nil
	s.tempAddresses = nil
	s.restoreToken = "" // a fresh load supersedes any in-flight restore

	s.originalType = secretType
	s.originalBuffer = res.Buffer.Clone()
	s.originalDescriptors = descs
	s.originalCustoms = append([]models.CustomField(nil), res.CustomFields...)

	s.resolveReferencesLocked(ctx, true)
	return nil
}

// ChangeType runs the record-type transition controller for a mid-edit switch
// to newType. The write is dropped while a stored-request restore is in
// flight; the superseding restore fully replaces the buffer anyway.
func (s *Session) ChangeType(ctx context.Context, newType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.restoreActiveLocked(time.Now()) {
		s.log.Debug().
			Str("ticket_id", s.ticketID).
			Str("new_type", newType).
			Msg("type change dropped: stored-request restore in flight")
		return nil
	}
	if newType == "" || newType == s.secretType {
		return nil
	}

	switch ChoosePolicy(newType, s.originalType, s.action) {
	case PolicyReturnToOriginal:
		s.buffer = s.originalBuffer.Clone()
		s.descriptors = s.originalDescriptors
		s.customFields = append([]models.CustomField(nil), s.originalCustoms...)
		s.secretType = s.originalType
		s.standardFieldsOnly = len(s.originalDescriptors) == 0

	case PolicyBlankSwitch:
		descs, standardOnly := s.compileType(ctx, newType)
		s.descriptors = descs
		s.standardFieldsOnly = standardOnly
		s.buffer = BlankBuffer(s.buffer.GetString(models.KeyRecordUID), newType)
		s.customFields = nil
		s.secretType = newType

	case PolicyCarryForward:
		descs, standardOnly := s.compileType(ctx, newType)
		buffer, customs := CarryForward(s.buffer, descs, newType)
		s.descriptors = descs
		s.standardFieldsOnly = standardOnly
		s.buffer = buffer
		s.customFields = customs
		s.secretType = newType
	}

	// Display text of a carried reference depends on the resolved target,
	// so re-resolution bypasses the cache even for an unchanged UID.
	s.resolveReferencesLocked(ctx, true)
	return nil
}

// Restore loads a persisted StoredRequest verbatim into the session and arms
// the restore guard for the configured window.
func (s *Session) Restore(ctx context.Context, req *models.StoredRequest) {
	if req == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.restoreToken = uuid.NewString()
	s.restoreUntil = time.Now().Add(s.guardWindow)

	s.action = req.SelectedAction
	s.buffer = req.EditBuffer.Clone()
	s.secretType = s.buffer.GetString(models.KeyType)
	s.selectedEntities = append([]string(nil), req.SelectedEntities...)
	s.tempAddresses = normalizePending(req.TempAddressData)
	s.customFields = nil

	descs, standardOnly := s.compileType(ctx, s.secretType)
	s.descriptors = descs
	s.standardFieldsOnly = standardOnly

	if s.originalType == "" {
		s.originalType = s.secretType
		s.originalBuffer = s.buffer.Clone()
		s.originalDescriptors = descs
	}

	s.resolveReferencesLocked(ctx, true)
}

// ApplyEdits replaces the session's form data with the panel's current edits.
// User edits are never gated by the restore guard.
func (s *Session) ApplyEdits(buffer models.EditBuffer, entities []string, tempAddresses []models.PendingAddress) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if buffer != nil {
		s.buffer = buffer.Clone()
		if t := s.buffer.GetString(models.KeyType); t != "" {
			s.secretType = t
		}
	}
	if entities != nil {
		s.selectedEntities = append([]string(nil), entities...)
	}
	if tempAddresses != nil {
		s.tempAddresses = normalizePending(tempAddresses)
	}
}

// PendingAddress finds the locally entered address data behind a
// pending-creation placeholder UID held by this session.
func (s *Session) PendingAddress(uid string) (models.PendingAddress, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.tempAddresses {
		if p.UID == uid {
			return p, true
		}
	}
	return models.PendingAddress{}, false
}

// normalizePending copies the incoming pending addresses, minting a
// placeholder UID for entries the panel submitted without one.
func normalizePending(in []models.PendingAddress) []models.PendingAddress {
	out := append([]models.PendingAddress(nil), in...)
	for i := range out {
		if out[i].UID == "" {
			out[i].UID = models.NewPendingUID()
		}
	}
	return out
}

// Reset returns the session to a blank editing state, discarding all form
// data and snapshots. Used after a rejection.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.action = ""
	s.secretType = ""
	s.standardFieldsOnly = false
	s.descriptors = nil
	s.buffer = models.EditBuffer{}
	s.customFields = nil
	s.selectedEntities = nil
	s.tempAddresses = nil
	s.originalType = ""
	s.originalBuffer = nil
	s.originalDescriptors = nil
	s.originalCustoms = nil
	s.restoreToken = ""
}

// Snapshot returns a copy of the session's current form state.
func (s *Session) Snapshot() (models.ActionID, string, models.EditBuffer, []models.FieldDescriptor, []models.CustomField, []string, []models.PendingAddress) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.action,
		s.secretType,
		s.buffer.Clone(),
		append([]models.FieldDescriptor(nil), s.descriptors...),
		append([]models.CustomField(nil), s.customFields...),
		append([]string(nil), s.selectedEntities...),
		append([]models.PendingAddress(nil), s.tempAddresses...)
}

// StandardFieldsOnly reports whether the active schema produced no usable
// descriptors and the panel fell back to title/notes only.
func (s *Session) StandardFieldsOnly() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.standardFieldsOnly
}

// Action returns the session's selected action.
func (s *Session) Action() models.ActionID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.action
}

// compileType fetches and compiles the schema for typeID. All failures are
// non-fatal: the session degrades to "standard fields only".
func (s *Session) compileType(ctx context.Context, typeID string) ([]models.FieldDescriptor, bool) {
	if typeID == "" {
		return nil, true
	}

	schema, err := s.schemas.FetchSchema(ctx, typeID)
	if err != nil {
		s.log.Err(err).
			Str("ticket_id", s.ticketID).
			Str("type", typeID).
			Msg("schema fetch failed, standard fields only")
		return nil, true
	}
	if schema == nil || schema.Empty() {
		return nil, true
	}

	descs := template.Compile(*schema)
	return descs, len(descs) == 0
}

// resolveReferencesLocked re-resolves every reference-kind value currently in
// the buffer. Callers hold s.mu.
func (s *Session) resolveReferencesLocked(ctx context.Context, bypass bool) {
	if s.resolver == nil {
		return
	}

	for _, d := range s.descriptors {
		if d.InputKind != models.InputReference {
			continue
		}
		if uid := s.buffer.GetString(d.Name); uid != "" {
			s.resolver.Resolve(ctx, uid, bypass)
		}
	}
}

func (s *Session) restoreActiveLocked(now time.Time) bool {
	return s.restoreToken != "" && now.Before(s.restoreUntil)
}
