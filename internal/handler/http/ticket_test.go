package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-vault-gate/internal/config"
	"github.com/MKhiriev/go-vault-gate/internal/logger"
	"github.com/MKhiriev/go-vault-gate/internal/mock"
	"github.com/MKhiriev/go-vault-gate/internal/service"
	"github.com/MKhiriev/go-vault-gate/internal/utils"
	"github.com/MKhiriev/go-vault-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testIssuer  = "gate-server"
	testSignKey = "test-sign-key"
)

// newTestRouter wires a full router around the given workflow service mock so
// requests travel the same middleware chain as in production.
func newTestRouter(t *testing.T, workflow service.WorkflowService) http.Handler {
	t.Helper()

	h := NewHandler(
		&service.Services{WorkflowService: workflow},
		config.App{TokenSignKey: testSignKey, TokenIssuer: testIssuer},
		logger.Nop(),
	)
	return h.Init()
}

func authorizedRequest(t *testing.T, method, target string, body io.Reader) *http.Request {
	t.Helper()

	token, err := utils.GenerateJWTToken(testIssuer, "operator-1", time.Hour, testSignKey)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Authorization", "Bearer "+token.SignedString)
	return req
}

func encodeBody(t *testing.T, v any) io.Reader {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buf).Encode(v))
	return buf
}

func TestOpenTicket_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	workflow := mock.NewMockWorkflowService(ctrl)

	workflow.EXPECT().
		OpenTicket(gomock.Any(), "JIRA-1001", models.OpenTicketRequest{SelectedAction: models.ActionCreateSecret}).
		Return(models.TicketView{
			TicketID: "JIRA-1001",
			Role:     models.RoleRequester,
			State:    models.StateEditingRequester,
		}, nil)

	router := newTestRouter(t, workflow)
	req := authorizedRequest(t, http.MethodPost, "/api/tickets/JIRA-1001/open",
		encodeBody(t, models.OpenTicketRequest{SelectedAction: models.ActionCreateSecret}))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var view models.TicketView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	assert.Equal(t, models.RoleRequester, view.Role)
	assert.Equal(t, models.StateEditingRequester, view.State)
}

func TestOpenTicket_EmptyBodyAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	workflow := mock.NewMockWorkflowService(ctrl)

	workflow.EXPECT().
		OpenTicket(gomock.Any(), "JIRA-1001", models.OpenTicketRequest{}).
		Return(models.TicketView{TicketID: "JIRA-1001"}, nil)

	router := newTestRouter(t, workflow)
	req := authorizedRequest(t, http.MethodPost, "/api/tickets/JIRA-1001/open", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOpenTicket_InvalidJSON(t *testing.T) {
	router := newTestRouter(t, mock.NewMockWorkflowService(gomock.NewController(t)))
	req := authorizedRequest(t, http.MethodPost, "/api/tickets/JIRA-1001/open", strings.NewReader(`{bad json}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOpenTicket_NoStoredRequestMapsToNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	workflow := mock.NewMockWorkflowService(ctrl)

	workflow.EXPECT().
		OpenTicket(gomock.Any(), "JIRA-1001", gomock.Any()).
		Return(models.TicketView{}, service.ErrNoStoredRequest)

	router := newTestRouter(t, workflow)
	req := authorizedRequest(t, http.MethodPost, "/api/tickets/JIRA-1001/open", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChangeType_NoSessionMapsToConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	workflow := mock.NewMockWorkflowService(ctrl)

	workflow.EXPECT().
		ChangeType(gomock.Any(), "JIRA-1001", models.TypeChangeRequest{NewType: "sshKey"}).
		Return(models.TicketView{}, service.ErrNoActiveSession)

	router := newTestRouter(t, workflow)
	req := authorizedRequest(t, http.MethodPost, "/api/tickets/JIRA-1001/type",
		encodeBody(t, models.TypeChangeRequest{NewType: "sshKey"}))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSaveRequest_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	workflow := mock.NewMockWorkflowService(ctrl)

	workflow.EXPECT().
		SaveRequest(gomock.Any(), "JIRA-1001", gomock.Any()).
		Return(models.SaveResult{Success: true, AssignedReviewer: "security-team"}, nil)

	router := newTestRouter(t, workflow)
	req := authorizedRequest(t, http.MethodPost, "/api/tickets/JIRA-1001/request",
		encodeBody(t, models.SaveRequestBody{
			SelectedAction: models.ActionCreateSecret,
			EditBuffer:     models.EditBuffer{models.KeyTitle: "Prod DB", models.KeyType: "login"},
		}))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result models.SaveResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.True(t, result.Success)
	assert.Equal(t, "security-team", result.AssignedReviewer)
}

func TestSaveRequest_ValidationErrorMapsToBadRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	workflow := mock.NewMockWorkflowService(ctrl)

	workflow.EXPECT().
		SaveRequest(gomock.Any(), "JIRA-1001", gomock.Any()).
		Return(models.SaveResult{}, service.ErrSaveValidation)

	router := newTestRouter(t, workflow)
	req := authorizedRequest(t, http.MethodPost, "/api/tickets/JIRA-1001/request",
		encodeBody(t, models.SaveRequestBody{SelectedAction: models.ActionCreateSecret}))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClearRequest_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	workflow := mock.NewMockWorkflowService(ctrl)

	workflow.EXPECT().
		ClearRequest(gomock.Any(), "JIRA-1001").
		Return(models.OperationResult{Success: true}, nil)

	router := newTestRouter(t, workflow)
	req := authorizedRequest(t, http.MethodDelete, "/api/tickets/JIRA-1001/request", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestExecute_ForbiddenForRequester(t *testing.T) {
	ctrl := gomock.NewController(t)
	workflow := mock.NewMockWorkflowService(ctrl)

	workflow.EXPECT().
		Execute(gomock.Any(), "JIRA-1001", gomock.Any()).
		Return(models.ExecuteResult{}, service.ErrNotAdministrator)

	router := newTestRouter(t, workflow)
	req := authorizedRequest(t, http.MethodPost, "/api/tickets/JIRA-1001/execute", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestExecute_CooldownMapsToConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	workflow := mock.NewMockWorkflowService(ctrl)

	workflow.EXPECT().
		Execute(gomock.Any(), "JIRA-1001", gomock.Any()).
		Return(models.ExecuteResult{}, service.ErrCooldownActive)

	router := newTestRouter(t, workflow)
	req := authorizedRequest(t, http.MethodPost, "/api/tickets/JIRA-1001/execute", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestReject_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	workflow := mock.NewMockWorkflowService(ctrl)

	workflow.EXPECT().
		Reject(gomock.Any(), "JIRA-1001", models.RejectRequestBody{Reason: "policy violation"}).
		Return(models.OperationResult{Success: true}, nil)

	router := newTestRouter(t, workflow)
	req := authorizedRequest(t, http.MethodPost, "/api/tickets/JIRA-1001/reject",
		encodeBody(t, models.RejectRequestBody{Reason: "policy violation"}))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReject_MissingReasonMapsToBadRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	workflow := mock.NewMockWorkflowService(ctrl)

	workflow.EXPECT().
		Reject(gomock.Any(), "JIRA-1001", models.RejectRequestBody{}).
		Return(models.OperationResult{}, service.ErrReasonRequired)

	router := newTestRouter(t, workflow)
	req := authorizedRequest(t, http.MethodPost, "/api/tickets/JIRA-1001/reject", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
