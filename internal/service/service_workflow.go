package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-vault-gate/internal/adapter"
	"github.com/MKhiriev/go-vault-gate/internal/config"
	"github.com/MKhiriev/go-vault-gate/internal/logger"
	"github.com/MKhiriev/go-vault-gate/internal/resolver"
	"github.com/MKhiriev/go-vault-gate/internal/session"
	"github.com/MKhiriev/go-vault-gate/internal/store"
	"github.com/MKhiriev/go-vault-gate/internal/template"
	"github.com/MKhiriev/go-vault-gate/internal/validators"
	"github.com/MKhiriev/go-vault-gate/models"
)

// workflowService is the approval workflow state machine. One edit session
// exists per ticket; the shared resolver cache and the stored-request storage
// are the only state crossing session boundaries.
//
// Failures of a save, execute or reject leave the workflow state and the
// stored request untouched so the operation can be retried.
type workflowService struct {
	vaultAdapter         adapter.VaultAdapter
	platformAdapter      adapter.PlatformAdapter
	storedRequestStorage store.StoredRequestStorage
	resolverCache        *resolver.Cache
	saveValidator        validators.Validator

	homeCountry     string
	defaultReviewer string
	cooldown        time.Duration
	guardWindow     time.Duration

	logger *logger.Logger
	now    func() time.Time

	mu        sync.Mutex
	sessions  map[string]*session.Session
	states    map[string]models.WorkflowState
	cooldowns map[string]time.Time
}

func NewWorkflowService(
	storedRequestStorage store.StoredRequestStorage,
	vaultAdapter adapter.VaultAdapter,
	platformAdapter adapter.PlatformAdapter,
	resolverCache *resolver.Cache,
	cfg config.App,
	logger *logger.Logger,
) WorkflowService {
	return &workflowService{
		vaultAdapter:         vaultAdapter,
		platformAdapter:      platformAdapter,
		storedRequestStorage: storedRequestStorage,
		resolverCache:        resolverCache,
		saveValidator:        validators.NewSaveRequestValidator(),
		homeCountry:          cfg.HomeCountry,
		defaultReviewer:      cfg.DefaultReviewer,
		cooldown:             cfg.CooldownDuration,
		guardWindow:          cfg.RestoreGuardWindow,
		logger:               logger,
		now:                  time.Now,
		sessions:             make(map[string]*session.Session),
		states:               make(map[string]models.WorkflowState),
		cooldowns:            make(map[string]time.Time),
	}
}

func (w *workflowService) OpenTicket(ctx context.Context, ticketID string, req models.OpenTicketRequest) (models.TicketView, error) {
	role, err := w.fetchRole(ctx, ticketID)
	if err != nil {
		return models.TicketView{}, err
	}

	// Visibility of a stored request depends on role, so the lookup above
	// must have completed before this fetch is attempted.
	stored, err := w.storedRequestStorage.Get(ctx, ticketID)
	if err != nil {
		w.logger.Err(err).Str("func", "OpenTicket").Str("ticket_id", ticketID).Msg("stored request fetch failed")
		return models.TicketView{}, fmt.Errorf("stored request fetch failed: %w", err)
	}

	sess := w.sessionFor(ticketID)

	switch {
	case stored != nil:
		sess.Restore(ctx, stored)
		if role == models.RoleAdministrator {
			w.setState(ticketID, models.StateEditingAdministrator)
		} else {
			// Re-entrant draft: the requester continues editing the saved
			// request; saving again overwrites it in place.
			w.setState(ticketID, models.StateEditingRequester)
		}

	case role == models.RoleAdministrator:
		return models.TicketView{}, ErrNoStoredRequest

	default:
		if req.SelectedAction != "" && !req.SelectedAction.Known() {
			return models.TicketView{}, fmt.Errorf("%w: %q", validators.ErrUnknownAction, req.SelectedAction)
		}
		if err = sess.Load(ctx, req.SelectedAction, req.RecordUID, req.SecretType); err != nil {
			return models.TicketView{}, err
		}
		w.setState(ticketID, models.StateEditingRequester)
	}

	view := w.buildView(ticketID, role, sess)
	if stored != nil {
		view.AssignedReviewer = stored.AssignedReviewer
	}
	return view, nil
}

func (w *workflowService) ChangeType(ctx context.Context, ticketID string, req models.TypeChangeRequest) (models.TicketView, error) {
	role, err := w.fetchRole(ctx, ticketID)
	if err != nil {
		return models.TicketView{}, err
	}
	if until, active := w.cooldownActive(ticketID); active {
		return models.TicketView{}, fmt.Errorf("%w (until %s)", ErrCooldownActive, until.Format(time.RFC3339))
	}

	sess, ok := w.lookupSession(ticketID)
	if !ok {
		return models.TicketView{}, ErrNoActiveSession
	}
	if err = sess.ChangeType(ctx, req.NewType); err != nil {
		return models.TicketView{}, err
	}

	return w.buildView(ticketID, role, sess), nil
}

func (w *workflowService) SaveRequest(ctx context.Context, ticketID string, body models.SaveRequestBody) (models.SaveResult, error) {
	role, err := w.fetchRole(ctx, ticketID)
	if err != nil {
		return models.SaveResult{}, err
	}
	if role != models.RoleRequester {
		return models.SaveResult{}, ErrNotRequester
	}
	if until, active := w.cooldownActive(ticketID); active {
		return models.SaveResult{}, fmt.Errorf("%w (until %s)", ErrCooldownActive, until.Format(time.RFC3339))
	}

	if err = w.saveValidator.Validate(ctx, body); err != nil {
		return models.SaveResult{}, fmt.Errorf("%w: %w", ErrSaveValidation, err)
	}

	// Reviewer assignment survives re-saves of an already assigned draft.
	reviewer := w.defaultReviewer
	if existing, getErr := w.storedRequestStorage.Get(ctx, ticketID); getErr == nil && existing != nil && existing.AssignedReviewer != "" {
		reviewer = existing.AssignedReviewer
	}

	request := models.StoredRequest{
		TicketID:         ticketID,
		SelectedAction:   body.SelectedAction,
		EditBuffer:       body.EditBuffer.Clone(),
		SelectedEntities: body.SelectedEntities,
		TempAddressData:  body.TempAddressData,
		AssignedReviewer: reviewer,
		Timestamp:        w.now(),
	}
	if err = w.storedRequestStorage.Save(ctx, request); err != nil {
		w.logger.Err(err).Str("func", "SaveRequest").Str("ticket_id", ticketID).Msg("stored request save failed")
		return models.SaveResult{}, fmt.Errorf("stored request save failed: %w", err)
	}

	w.sessionFor(ticketID).ApplyEdits(body.EditBuffer, body.SelectedEntities, body.TempAddressData)
	w.setState(ticketID, models.StateSaved)

	return models.SaveResult{
		Success:          true,
		Message:          "request saved and awaiting review",
		AssignedReviewer: reviewer,
	}, nil
}

func (w *workflowService) ClearRequest(ctx context.Context, ticketID string) (models.OperationResult, error) {
	role, err := w.fetchRole(ctx, ticketID)
	if err != nil {
		return models.OperationResult{}, err
	}
	if role != models.RoleRequester {
		return models.OperationResult{}, ErrNotRequester
	}

	if err = w.storedRequestStorage.Clear(ctx, ticketID); err != nil {
		w.logger.Err(err).Str("func", "ClearRequest").Str("ticket_id", ticketID).Msg("stored request clear failed")
		return models.OperationResult{}, fmt.Errorf("stored request clear failed: %w", err)
	}

	if sess, ok := w.lookupSession(ticketID); ok {
		sess.Reset()
	}
	w.setState(ticketID, models.StateCleared)

	return models.OperationResult{Success: true, Message: "pending request discarded"}, nil
}

func (w *workflowService) Execute(ctx context.Context, ticketID string, edits models.SaveRequestBody) (models.ExecuteResult, error) {
	role, err := w.fetchRole(ctx, ticketID)
	if err != nil {
		return models.ExecuteResult{}, err
	}
	if role != models.RoleAdministrator {
		return models.ExecuteResult{}, ErrNotAdministrator
	}
	if until, active := w.cooldownActive(ticketID); active {
		return models.ExecuteResult{}, fmt.Errorf("%w (until %s)", ErrCooldownActive, until.Format(time.RFC3339))
	}

	stored, err := w.storedRequestStorage.Get(ctx, ticketID)
	if err != nil {
		w.logger.Err(err).Str("func", "Execute").Str("ticket_id", ticketID).Msg("stored request fetch failed")
		return models.ExecuteResult{}, fmt.Errorf("stored request fetch failed: %w", err)
	}
	if stored == nil {
		return models.ExecuteResult{}, ErrNoStoredRequest
	}

	sess, ok := w.lookupSession(ticketID)
	if !ok {
		sess = w.sessionFor(ticketID)
		sess.Restore(ctx, stored)
	}
	if edits.EditBuffer != nil || edits.SelectedEntities != nil || edits.TempAddressData != nil {
		sess.ApplyEdits(edits.EditBuffer, edits.SelectedEntities, edits.TempAddressData)
	}

	payload := w.buildExecutePayload(sess)
	result, err := w.vaultAdapter.Execute(ctx, ticketID, payload)
	if err != nil {
		w.logger.Err(err).Str("func", "Execute").Str("ticket_id", ticketID).Msg("execute submission failed")
		return models.ExecuteResult{}, fmt.Errorf("execute submission failed: %w", err)
	}

	if clearErr := w.storedRequestStorage.Clear(ctx, ticketID); clearErr != nil {
		// The action already ran; the sweeper will reap the stale request.
		w.logger.Err(clearErr).Str("func", "Execute").Str("ticket_id", ticketID).Msg("stored request clear after execute failed")
	}
	w.setState(ticketID, models.StateExecuted)
	w.armCooldown(ticketID)

	return result, nil
}

func (w *workflowService) Reject(ctx context.Context, ticketID string, body models.RejectRequestBody) (models.OperationResult, error) {
	role, err := w.fetchRole(ctx, ticketID)
	if err != nil {
		return models.OperationResult{}, err
	}
	if role != models.RoleAdministrator {
		return models.OperationResult{}, ErrNotAdministrator
	}
	if body.Reason == "" {
		return models.OperationResult{}, ErrReasonRequired
	}

	result, err := w.platformAdapter.Reject(ctx, ticketID, body.Reason)
	if err != nil {
		w.logger.Err(err).Str("func", "Reject").Str("ticket_id", ticketID).Msg("reject submission failed")
		return models.OperationResult{}, fmt.Errorf("reject submission failed: %w", err)
	}

	if clearErr := w.storedRequestStorage.Clear(ctx, ticketID); clearErr != nil {
		w.logger.Err(clearErr).Str("func", "Reject").Str("ticket_id", ticketID).Msg("stored request clear after reject failed")
	}
	if sess, ok := w.lookupSession(ticketID); ok {
		sess.Reset()
	}
	w.setState(ticketID, models.StateRejected)

	return result, nil
}

// fetchRole resolves the operator's role for the ticket. It runs first in
// every operation: all later behavior, including stored-request visibility,
// is gated on its answer.
func (w *workflowService) fetchRole(ctx context.Context, ticketID string) (models.Role, error) {
	lookup, err := w.platformAdapter.FetchRole(ctx, ticketID)
	if err != nil {
		w.logger.Err(err).Str("func", "fetchRole").Str("ticket_id", ticketID).Msg("role lookup failed")
		return "", fmt.Errorf("%w: %w", ErrRoleLookupFailed, err)
	}
	return models.RoleFromLookup(lookup.IsAdministrator), nil
}

func (w *workflowService) sessionFor(ticketID string) *session.Session {
	w.mu.Lock()
	defer w.mu.Unlock()

	sess, ok := w.sessions[ticketID]
	if !ok {
		sess = session.New(ticketID, w.vaultAdapter, w.resolverCache, w.homeCountry, w.guardWindow, w.logger)
		w.sessions[ticketID] = sess
	}
	return sess
}

func (w *workflowService) lookupSession(ticketID string) (*session.Session, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	sess, ok := w.sessions[ticketID]
	return sess, ok
}

// PendingAddress searches the active edit sessions for the locally entered
// data behind a pending-creation placeholder UID.
func (w *workflowService) PendingAddress(uid string) (models.PendingAddress, bool) {
	w.mu.Lock()
	sessions := make([]*session.Session, 0, len(w.sessions))
	for _, sess := range w.sessions {
		sessions = append(sessions, sess)
	}
	w.mu.Unlock()

	for _, sess := range sessions {
		if p, ok := sess.PendingAddress(uid); ok {
			return p, true
		}
	}
	return models.PendingAddress{}, false
}

func (w *workflowService) setState(ticketID string, state models.WorkflowState) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.states[ticketID] = state
}

func (w *workflowService) stateOf(ticketID string) models.WorkflowState {
	w.mu.Lock()
	defer w.mu.Unlock()

	state, ok := w.states[ticketID]
	if !ok {
		return models.StateEditingRequester
	}
	return state
}

func (w *workflowService) armCooldown(ticketID string) {
	if w.cooldown <= 0 {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.cooldowns[ticketID] = w.now().Add(w.cooldown)
}

func (w *workflowService) cooldownActive(ticketID string) (time.Time, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	until, ok := w.cooldowns[ticketID]
	if !ok || !w.now().Before(until) {
		return time.Time{}, false
	}
	return until, true
}

func (w *workflowService) buildView(ticketID string, role models.Role, sess *session.Session) models.TicketView {
	action, secretType, buffer, descriptors, customFields, entities, tempAddresses := sess.Snapshot()

	view := models.TicketView{
		TicketID:           ticketID,
		Role:               role,
		State:              w.stateOf(ticketID),
		SelectedAction:     action,
		SecretType:         secretType,
		StandardFieldsOnly: sess.StandardFieldsOnly(),
		Descriptors:        descriptors,
		Buffer:             buffer,
		CustomFields:       customFields,
		SelectedEntities:   entities,
		TempAddressData:    tempAddresses,
	}
	if until, active := w.cooldownActive(ticketID); active {
		view.CooldownUntil = &until
	}
	return view
}

// buildExecutePayload snapshots the session into the outgoing command.
// Sub-field edits are recomposed back into the backend's nested value shapes.
// In update mode a masked value still equal to the mask marker means the
// operator never touched it; it is elided so placeholder bullets are not
// written over a stored secret.
func (w *workflowService) buildExecutePayload(sess *session.Session) models.ExecutePayload {
	action, secretType, buffer, descriptors, customFields, entities, tempAddresses := sess.Snapshot()

	if action.IsUpdateMode() {
		for key, value := range buffer {
			if s, ok := value.(string); ok && s == models.MaskMarker {
				delete(buffer, key)
			}
		}
	}

	return models.ExecutePayload{
		ActionID:         action,
		RecordUID:        buffer.GetString(models.KeyRecordUID),
		SecretType:       secretType,
		Title:            buffer.GetString(models.KeyTitle),
		Notes:            buffer.GetString(models.KeyNotes),
		Fields:           template.Recompose(descriptors, buffer),
		CustomFields:     customFields,
		SelectedEntities: entities,
		TempAddressData:  tempAddresses,
	}
}
