package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("application version is not specified")

	// Role gating. The messages double as the role-aware guidance the panel
	// shows next to a blocked transition.
	ErrNotAdministrator = errors.New("you are not an administrator for this ticket, contact one to review the request")
	ErrNotRequester     = errors.New("only the ticket requester may perform this action")

	ErrRoleLookupFailed = errors.New("role lookup failed, check the integration configuration")

	ErrNoActiveSession = errors.New("no active edit session, open the ticket first")
	ErrNoStoredRequest = errors.New("no stored request awaiting review for this ticket")
	ErrReasonRequired  = errors.New("a rejection reason is required")
	ErrCooldownActive  = errors.New("the previous request was just executed, wait before starting a new action")

	ErrSaveValidation = errors.New("request validation failed")
)
