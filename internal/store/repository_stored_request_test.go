package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-vault-gate/internal/logger"
	"github.com/MKhiriev/go-vault-gate/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestStoredRequestRepo(t *testing.T) (*storedRequestRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &storedRequestRepository{
		DB:     &DB{DB: db, logger: l, errorClassifier: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestStoredRequestGet_Success(t *testing.T) {
	repo, mock, db := newTestStoredRequestRepo(t)
	defer db.Close()

	savedAt := time.Now()
	rows := sqlmock.
		NewRows(storedRequestColumns).
		AddRow(
			"JIRA-1001",
			"update_secret",
			[]byte(`{"recordUid":"rec-1","type":"login","login":"mario"}`),
			[]byte(`["rec-1"]`),
			[]byte(`[]`),
			"alice",
			savedAt,
		)

	mock.ExpectQuery("SELECT .+ FROM stored_requests").
		WithArgs("JIRA-1001").
		WillReturnRows(rows)

	request, err := repo.Get(context.Background(), "JIRA-1001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if request == nil {
		t.Fatal("expected stored request, got nil")
	}
	if request.SelectedAction != models.ActionUpdateSecret {
		t.Errorf("expected update_secret, got %s", request.SelectedAction)
	}
	if request.EditBuffer.GetString("login") != "mario" {
		t.Errorf("expected login=mario, got %q", request.EditBuffer.GetString("login"))
	}
	if request.AssignedReviewer != "alice" {
		t.Errorf("expected reviewer alice, got %q", request.AssignedReviewer)
	}
	if len(request.SelectedEntities) != 1 || request.SelectedEntities[0] != "rec-1" {
		t.Errorf("unexpected selected entities: %v", request.SelectedEntities)
	}
}

func TestStoredRequestGet_NullReviewer(t *testing.T) {
	repo, mock, db := newTestStoredRequestRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows(storedRequestColumns).
		AddRow("JIRA-1001", "create_secret", []byte(`{}`), []byte(`[]`), []byte(`[]`), nil, time.Now())

	mock.ExpectQuery("SELECT .+ FROM stored_requests").
		WillReturnRows(rows)

	request, err := repo.Get(context.Background(), "JIRA-1001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if request.AssignedReviewer != "" {
		t.Errorf("expected empty reviewer, got %q", request.AssignedReviewer)
	}
}

func TestStoredRequestGet_NotFound(t *testing.T) {
	repo, mock, db := newTestStoredRequestRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM stored_requests").
		WithArgs("JIRA-9999").
		WillReturnError(sql.ErrNoRows)

	request, err := repo.Get(context.Background(), "JIRA-9999")
	if err != nil {
		t.Fatalf("absence is not an error, got: %v", err)
	}
	if request != nil {
		t.Fatalf("expected nil request, got %+v", request)
	}
}

func TestStoredRequestGet_CorruptPayload(t *testing.T) {
	repo, mock, db := newTestStoredRequestRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows(storedRequestColumns).
		AddRow("JIRA-1001", "create_secret", []byte(`{not json`), []byte(`[]`), []byte(`[]`), "alice", time.Now())

	mock.ExpectQuery("SELECT .+ FROM stored_requests").
		WillReturnRows(rows)

	_, err := repo.Get(context.Background(), "JIRA-1001")
	if !errors.Is(err, ErrDecodingRequest) {
		t.Fatalf("expected ErrDecodingRequest, got %v", err)
	}
}

func TestStoredRequestSave_Success(t *testing.T) {
	repo, mock, db := newTestStoredRequestRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO stored_requests").
		WithArgs(
			"JIRA-1001",
			"create_secret",
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
			"security-team",
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), models.StoredRequest{
		TicketID:         "JIRA-1001",
		SelectedAction:   models.ActionCreateSecret,
		EditBuffer:       models.EditBuffer{models.KeyTitle: "Prod DB"},
		AssignedReviewer: "security-team",
		Timestamp:        time.Now(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStoredRequestSave_IntegrityViolation(t *testing.T) {
	repo, mock, db := newTestStoredRequestRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO stored_requests").
		WillReturnError(pgError(pgerrcode.CheckViolation))

	err := repo.Save(context.Background(), models.StoredRequest{TicketID: "JIRA-1001"})
	if !errors.Is(err, ErrStoredRequestNotSaved) {
		t.Fatalf("expected ErrStoredRequestNotSaved, got %v", err)
	}
}

func TestStoredRequestClear(t *testing.T) {
	repo, mock, db := newTestStoredRequestRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM stored_requests").
		WithArgs("JIRA-1001").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Clear(context.Background(), "JIRA-1001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStoredRequestDeleteOlderThan(t *testing.T) {
	repo, mock, db := newTestStoredRequestRepo(t)
	defer db.Close()

	cutoff := time.Now().Add(-24 * time.Hour)

	mock.ExpectExec("DELETE FROM stored_requests").
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 3))

	removed, err := repo.DeleteOlderThan(context.Background(), cutoff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != 3 {
		t.Errorf("expected 3 removed rows, got %d", removed)
	}
}

func TestStoredRequestDeleteOlderThan_DBError(t *testing.T) {
	repo, mock, db := newTestStoredRequestRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM stored_requests").
		WillReturnError(errors.New("db network error"))

	_, err := repo.DeleteOlderThan(context.Background(), time.Now())
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
