package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-vault-gate/internal/logger"
	"github.com/MKhiriev/go-vault-gate/models"
)

// storedRequestRepository is the PostgreSQL-backed implementation of
// [StoredRequestStorage]. Draft payloads (edit buffer, selected entities,
// pending address data) are stored as JSONB columns; the database opaquely
// holds the panel's form state.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so all database interactions are traced with
// structured fields (ticket_id, affected row counts, etc.).
type storedRequestRepository struct {
	*DB
	logger *logger.Logger
}

// NewStoredRequestRepository constructs a [StoredRequestStorage] backed by
// the provided database connection and logger.
func NewStoredRequestRepository(db *DB, logger *logger.Logger) StoredRequestStorage {
	return &storedRequestRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *storedRequestRepository) Get(ctx context.Context, ticketID string) (*models.StoredRequest, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetStoredRequestQuery(ticketID)
	if err != nil {
		log.Err(err).
			Str("func", "storedRequestRepository.Get").
			Str("ticket_id", ticketID).
			Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.DB.QueryRowContext(ctx, query, args...)

	var (
		request          models.StoredRequest
		editBuffer       []byte
		selectedEntities []byte
		tempAddressData  []byte
		assignedReviewer sql.NullString
	)

	scanErr := row.Scan(
		&request.TicketID,
		&request.SelectedAction,
		&editBuffer,
		&selectedEntities,
		&tempAddressData,
		&assignedReviewer,
		&request.Timestamp,
	)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return nil, nil
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "storedRequestRepository.Get").
			Str("ticket_id", ticketID).
			Msg("failed to scan stored request row")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	if err = decodeRequestPayload(&request, editBuffer, selectedEntities, tempAddressData); err != nil {
		log.Err(err).
			Str("func", "storedRequestRepository.Get").
			Str("ticket_id", ticketID).
			Msg("failed to decode stored request payload")
		return nil, err
	}
	request.AssignedReviewer = assignedReviewer.String

	return &request, nil
}

func (r *storedRequestRepository) Save(ctx context.Context, request models.StoredRequest) error {
	log := logger.FromContext(ctx)

	editBuffer, selectedEntities, tempAddressData, err := encodeRequestPayload(request)
	if err != nil {
		log.Err(err).
			Str("func", "storedRequestRepository.Save").
			Str("ticket_id", request.TicketID).
			Msg("failed to encode stored request payload")
		return err
	}

	query, args, err := buildUpsertStoredRequestQuery(
		request.TicketID,
		string(request.SelectedAction),
		editBuffer,
		selectedEntities,
		tempAddressData,
		request.AssignedReviewer,
		request.Timestamp,
	)
	if err != nil {
		log.Err(err).
			Str("func", "storedRequestRepository.Save").
			Str("ticket_id", request.TicketID).
			Msg("failed to build upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "storedRequestRepository.Save").
			Str("ticket_id", request.TicketID).
			Msg("failed to execute upsert for stored request")
		return r.errorClassifier.Classify(err)
	}

	return nil
}

func (r *storedRequestRepository) Clear(ctx context.Context, ticketID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildClearStoredRequestQuery(ticketID)
	if err != nil {
		log.Err(err).
			Str("func", "storedRequestRepository.Clear").
			Str("ticket_id", ticketID).
			Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "storedRequestRepository.Clear").
			Str("ticket_id", ticketID).
			Msg("failed to execute delete for stored request")
		return r.errorClassifier.Classify(err)
	}

	return nil
}

func (r *storedRequestRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteExpiredQuery(cutoff)
	if err != nil {
		log.Err(err).
			Str("func", "storedRequestRepository.DeleteOlderThan").
			Time("cutoff", cutoff).
			Msg("failed to build delete query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "storedRequestRepository.DeleteOlderThan").
			Time("cutoff", cutoff).
			Msg("failed to execute delete for expired stored requests")
		return 0, r.errorClassifier.Classify(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected, nil
}

func encodeRequestPayload(request models.StoredRequest) (editBuffer, selectedEntities, tempAddressData []byte, err error) {
	if editBuffer, err = json.Marshal(request.EditBuffer); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %w", ErrEncodingRequest, err)
	}
	if selectedEntities, err = json.Marshal(request.SelectedEntities); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %w", ErrEncodingRequest, err)
	}
	if tempAddressData, err = json.Marshal(request.TempAddressData); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %w", ErrEncodingRequest, err)
	}
	return editBuffer, selectedEntities, tempAddressData, nil
}

func decodeRequestPayload(request *models.StoredRequest, editBuffer, selectedEntities, tempAddressData []byte) error {
	if len(editBuffer) > 0 {
		if err := json.Unmarshal(editBuffer, &request.EditBuffer); err != nil {
			return fmt.Errorf("%w: %w", ErrDecodingRequest, err)
		}
	}
	if len(selectedEntities) > 0 {
		if err := json.Unmarshal(selectedEntities, &request.SelectedEntities); err != nil {
			return fmt.Errorf("%w: %w", ErrDecodingRequest, err)
		}
	}
	if len(tempAddressData) > 0 {
		if err := json.Unmarshal(tempAddressData, &request.TempAddressData); err != nil {
			return fmt.Errorf("%w: %w", ErrDecodingRequest, err)
		}
	}
	return nil
}
