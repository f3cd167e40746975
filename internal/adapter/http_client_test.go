package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-vault-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVaultAdapter_FetchSchema(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/vault/templates/login", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Schema{
			TypeID: "login",
			Fields: []models.SchemaField{{Ref: "login"}, {Ref: "password", Required: true}},
		})
	}))
	defer srv.Close()

	vault := NewHTTPVaultAdapter(HTTPClientConfig{BaseURL: srv.URL, Token: "test-token"})

	schema, err := vault.FetchSchema(context.Background(), "login")
	require.NoError(t, err)
	require.NotNil(t, schema)
	assert.Equal(t, "login", schema.TypeID)
	require.Len(t, schema.Fields, 2)
	assert.True(t, schema.Fields[1].Required)
}

func TestVaultAdapter_FetchSchemaAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	vault := NewHTTPVaultAdapter(HTTPClientConfig{BaseURL: srv.URL})

	schema, err := vault.FetchSchema(context.Background(), "unknownType")
	require.NoError(t, err, "an absent template is a valid non-error outcome")
	assert.Nil(t, schema)
}

func TestVaultAdapter_FetchSchemaServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	vault := NewHTTPVaultAdapter(HTTPClientConfig{BaseURL: srv.URL})

	_, err := vault.FetchSchema(context.Background(), "login")
	require.ErrorIs(t, err, ErrInternalServerError)
}

func TestVaultAdapter_FetchSecretDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/vault/records/rec-1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.StoredSecretValue{
			UID:   "rec-1",
			Title: "Corporate VPN",
			Type:  "login",
		})
	}))
	defer srv.Close()

	vault := NewHTTPVaultAdapter(HTTPClientConfig{BaseURL: srv.URL})

	record, err := vault.FetchSecretDetails(context.Background(), "rec-1")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "Corporate VPN", record.Title)
}

func TestVaultAdapter_ResolveReferenceStale(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	vault := NewHTTPVaultAdapter(HTTPClientConfig{BaseURL: srv.URL})

	record, err := vault.ResolveReference(context.Background(), "stale-uid")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestVaultAdapter_Execute(t *testing.T) {
	var received models.ExecutePayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/vault/tickets/JIRA-1001/execute", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.ExecuteResult{
			Success:         true,
			CreatedEntityID: "rec-42",
		})
	}))
	defer srv.Close()

	vault := NewHTTPVaultAdapter(HTTPClientConfig{BaseURL: srv.URL})

	result, err := vault.Execute(context.Background(), "JIRA-1001", models.ExecutePayload{
		ActionID:   models.ActionCreateSecret,
		SecretType: "login",
		Title:      "Prod DB",
		Fields:     []models.FieldEntry{{Type: "login", Value: []any{"dbadmin"}}},
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "rec-42", result.CreatedEntityID)
	assert.Equal(t, models.ActionCreateSecret, received.ActionID)
	assert.Equal(t, "Prod DB", received.Title)
	require.Len(t, received.Fields, 1)
	assert.Equal(t, "login", received.Fields[0].Type)
}

func TestPlatformAdapter_FetchRole(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/platform/tickets/JIRA-1001/role", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.RoleLookupResult{IsAdministrator: true})
	}))
	defer srv.Close()

	platform := NewHTTPPlatformAdapter(HTTPClientConfig{BaseURL: srv.URL})

	result, err := platform.FetchRole(context.Background(), "JIRA-1001")
	require.NoError(t, err)
	assert.True(t, result.IsAdministrator)
}

func TestPlatformAdapter_FetchRoleBadGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	platform := NewHTTPPlatformAdapter(HTTPClientConfig{BaseURL: srv.URL})

	_, err := platform.FetchRole(context.Background(), "JIRA-1001")
	require.ErrorIs(t, err, ErrBadGateway)
}

func TestPlatformAdapter_Reject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/platform/tickets/JIRA-1001/reject", r.URL.Path)

		var body models.RejectRequestBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "policy violation", body.Reason)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.OperationResult{Success: true, Message: "rejection posted"})
	}))
	defer srv.Close()

	platform := NewHTTPPlatformAdapter(HTTPClientConfig{BaseURL: srv.URL})

	result, err := platform.Reject(context.Background(), "JIRA-1001", "policy violation")
	require.NoError(t, err)
	assert.True(t, result.Success)
}
