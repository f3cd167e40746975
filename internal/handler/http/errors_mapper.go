package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-vault-gate/internal/service"
	"github.com/MKhiriev/go-vault-gate/internal/store"
	"github.com/MKhiriev/go-vault-gate/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrNotAdministrator: http.StatusForbidden,
	service.ErrNotRequester:     http.StatusForbidden,
	service.ErrRoleLookupFailed: http.StatusBadGateway,
	service.ErrNoActiveSession:  http.StatusConflict,
	service.ErrNoStoredRequest:  http.StatusNotFound,
	service.ErrReasonRequired:   http.StatusBadRequest,
	service.ErrCooldownActive:   http.StatusConflict,
	service.ErrSaveValidation:   http.StatusBadRequest,

	validators.ErrUnknownAction:      http.StatusBadRequest,
	validators.ErrEmptyTitle:         http.StatusBadRequest,
	validators.ErrEmptySecretType:    http.StatusBadRequest,
	validators.ErrEmptyRecordUID:     http.StatusBadRequest,
	validators.ErrNoEditedFields:     http.StatusBadRequest,
	validators.ErrNoSelectedEntities: http.StatusBadRequest,
	validators.ErrEmptyDestination:   http.StatusBadRequest,
	validators.ErrNoPermissionFlags:  http.StatusBadRequest,

	store.ErrBuildingSQLQuery:      http.StatusInternalServerError,
	store.ErrExecutingQuery:        http.StatusInternalServerError,
	store.ErrScanningRow:           http.StatusInternalServerError,
	store.ErrEncodingRequest:       http.StatusInternalServerError,
	store.ErrDecodingRequest:       http.StatusInternalServerError,
	store.ErrStoredRequestNotSaved: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
