package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-vault-gate/internal/logger"
	"github.com/MKhiriev/go-vault-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSchemaSource struct {
	schemas map[string]*models.Schema
	secrets map[string]*models.StoredSecretValue
	err     error
}

func (f *fakeSchemaSource) FetchSchema(_ context.Context, typeID string) (*models.Schema, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.schemas[typeID], nil
}

func (f *fakeSchemaSource) FetchSecretDetails(_ context.Context, uid string) (*models.StoredSecretValue, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.secrets[uid], nil
}

type fakeResolver struct {
	calls []resolveCall
}

type resolveCall struct {
	uid    string
	bypass bool
}

func (f *fakeResolver) Resolve(_ context.Context, uid string, bypass bool) models.AddressCacheEntry {
	f.calls = append(f.calls, resolveCall{uid: uid, bypass: bypass})
	return models.AddressCacheEntry{UID: uid, State: models.CacheResolved}
}

func loginSchema() *models.Schema {
	return &models.Schema{
		TypeID: "login",
		Fields: []models.SchemaField{
			{Ref: "title", Required: true},
			{Ref: "login", Required: true},
			{Ref: "password", Required: true},
			{Ref: "url"},
		},
	}
}

func sshKeySchema() *models.Schema {
	return &models.Schema{
		TypeID: "sshKey",
		Fields: []models.SchemaField{
			{Ref: "title", Required: true},
			{Ref: "login"},
			{Ref: "keyPair", Required: true},
		},
	}
}

func newTestSession(t *testing.T, guardWindow time.Duration) (*Session, *fakeSchemaSource, *fakeResolver) {
	t.Helper()

	source := &fakeSchemaSource{
		schemas: map[string]*models.Schema{
			"login":  loginSchema(),
			"sshKey": sshKeySchema(),
		},
		secrets: map[string]*models.StoredSecretValue{
			"rec-1": {
				UID:   "rec-1",
				Title: "Corporate VPN",
				Type:  "login",
				Fields: []models.FieldEntry{
					{Type: "login", Value: []any{"mario"}},
					{Type: "password", Value: []any{"hunter2"}},
				},
			},
		},
	}
	resolver := &fakeResolver{}

	return New("ticket-1", source, resolver, "United States", guardWindow, logger.Nop()), source, resolver
}

func TestSession_LoadExistingRecord(t *testing.T) {
	sess, _, _ := newTestSession(t, 0)

	err := sess.Load(context.Background(), models.ActionUpdateSecret, "rec-1", "login")
	require.NoError(t, err)

	_, secretType, buffer, descs, _, _, _ := sess.Snapshot()
	assert.Equal(t, "login", secretType)
	assert.Equal(t, "rec-1", buffer[models.KeyRecordUID])
	assert.Equal(t, "Corporate VPN", buffer[models.KeyTitle])
	assert.Equal(t, "mario", buffer["login"])
	assert.Equal(t, models.MaskMarker, buffer["password"])
	assert.NotEmpty(t, descs)
	assert.False(t, sess.StandardFieldsOnly())
}

func TestSession_LoadBlankForm(t *testing.T) {
	sess, _, _ := newTestSession(t, 0)

	err := sess.Load(context.Background(), models.ActionCreateSecret, "", "login")
	require.NoError(t, err)

	_, _, buffer, _, _, _, _ := sess.Snapshot()
	assert.Equal(t, "login", buffer[models.KeyType])
	assert.NotContains(t, buffer, models.KeyRecordUID)
}

func TestSession_SchemaFailureDegradesToStandardFields(t *testing.T) {
	sess, source, _ := newTestSession(t, 0)
	source.err = errors.New("backend down")

	err := sess.Load(context.Background(), models.ActionCreateSecret, "", "login")
	require.NoError(t, err)
	assert.True(t, sess.StandardFieldsOnly())
}

func TestSession_ReturnToOriginalIsIdempotent(t *testing.T) {
	sess, _, _ := newTestSession(t, 0)
	ctx := context.Background()

	require.NoError(t, sess.Load(ctx, models.ActionCreateSecret, "rec-1", "login"))
	_, _, original, _, _, _, _ := sess.Snapshot()

	require.NoError(t, sess.ChangeType(ctx, "sshKey"))
	_, midType, _, _, _, _, _ := sess.Snapshot()
	assert.Equal(t, "sshKey", midType)

	require.NoError(t, sess.ChangeType(ctx, "login"))
	_, backType, restored, _, _, _, _ := sess.Snapshot()
	assert.Equal(t, "login", backType)
	assert.Equal(t, original, restored)
}

func TestSession_UpdateModeBlankSwitch(t *testing.T) {
	sess, _, _ := newTestSession(t, 0)
	ctx := context.Background()

	require.NoError(t, sess.Load(ctx, models.ActionUpdateSecret, "rec-1", "login"))
	require.NoError(t, sess.ChangeType(ctx, "sshKey"))

	_, secretType, buffer, _, customs, _, _ := sess.Snapshot()
	assert.Equal(t, "sshKey", secretType)
	assert.Equal(t, models.EditBuffer{
		models.KeyRecordUID: "rec-1",
		models.KeyType:      "sshKey",
	}, buffer)
	assert.Empty(t, customs)
}

func TestSession_CreateModeCarriesForward(t *testing.T) {
	sess, _, _ := newTestSession(t, 0)
	ctx := context.Background()

	require.NoError(t, sess.Load(ctx, models.ActionCreateSecret, "rec-1", "login"))
	require.NoError(t, sess.ChangeType(ctx, "sshKey"))

	_, _, buffer, _, _, _, _ := sess.Snapshot()
	// login exists in both templates and is carried by exact match.
	assert.Equal(t, "mario", buffer["login"])
	assert.Equal(t, "sshKey", buffer[models.KeyType])
	assert.Equal(t, "Corporate VPN", buffer[models.KeyTitle])
}

func TestSession_RestoreGuardDropsTypeChanges(t *testing.T) {
	sess, _, _ := newTestSession(t, time.Minute)
	ctx := context.Background()

	sess.Restore(ctx, &models.StoredRequest{
		TicketID:       "ticket-1",
		SelectedAction: models.ActionCreateSecret,
		EditBuffer: models.EditBuffer{
			models.KeyType:  "login",
			models.KeyTitle: "Saved Draft",
			"login":         "mario",
		},
	})

	require.NoError(t, sess.ChangeType(ctx, "sshKey"))

	_, secretType, buffer, _, _, _, _ := sess.Snapshot()
	assert.Equal(t, "login", secretType)
	assert.Equal(t, "Saved Draft", buffer[models.KeyTitle])
}

func TestSession_RestoreGuardExpires(t *testing.T) {
	sess, _, _ := newTestSession(t, 20*time.Millisecond)
	ctx := context.Background()

	sess.Restore(ctx, &models.StoredRequest{
		TicketID:       "ticket-1",
		SelectedAction: models.ActionCreateSecret,
		EditBuffer:     models.EditBuffer{models.KeyType: "login"},
	})

	time.Sleep(40 * time.Millisecond)

	require.NoError(t, sess.ChangeType(ctx, "sshKey"))
	_, secretType, _, _, _, _, _ := sess.Snapshot()
	assert.Equal(t, "sshKey", secretType)
}

func TestSession_LoadSupersedesRestoreGuard(t *testing.T) {
	sess, _, _ := newTestSession(t, time.Minute)
	ctx := context.Background()

	sess.Restore(ctx, &models.StoredRequest{
		TicketID:       "ticket-1",
		SelectedAction: models.ActionCreateSecret,
		EditBuffer:     models.EditBuffer{models.KeyType: "login"},
	})
	require.NoError(t, sess.Load(ctx, models.ActionCreateSecret, "", "login"))

	require.NoError(t, sess.ChangeType(ctx, "sshKey"))
	_, secretType, _, _, _, _, _ := sess.Snapshot()
	assert.Equal(t, "sshKey", secretType)
}

func TestSession_RestoreLoadsStoredRequestVerbatim(t *testing.T) {
	sess, _, _ := newTestSession(t, time.Minute)

	sess.Restore(context.Background(), &models.StoredRequest{
		TicketID:       "ticket-1",
		SelectedAction: models.ActionShareRecord,
		EditBuffer: models.EditBuffer{
			models.KeyType: "login",
			"destination":  "ops-team@example.com",
		},
		SelectedEntities: []string{"rec-1"},
		TempAddressData:  []models.PendingAddress{{UID: "pending:1", Title: "HQ"}},
	})

	action, _, buffer, _, _, entities, tempAddresses := sess.Snapshot()
	assert.Equal(t, models.ActionShareRecord, action)
	assert.Equal(t, "ops-team@example.com", buffer["destination"])
	assert.Equal(t, []string{"rec-1"}, entities)
	require.Len(t, tempAddresses, 1)
	assert.Equal(t, "pending:1", tempAddresses[0].UID)
}

func TestSession_TypeChangeReResolvesReferencesWithBypass(t *testing.T) {
	source := &fakeSchemaSource{
		schemas: map[string]*models.Schema{
			"billing": {
				TypeID: "billing",
				Fields: []models.SchemaField{{Ref: "addressRef"}},
			},
			"other": {
				TypeID: "other",
				Fields: []models.SchemaField{{Ref: "addressRef"}},
			},
		},
	}
	resolver := &fakeResolver{}
	sess := New("ticket-1", source, resolver, "", 0, logger.Nop())
	ctx := context.Background()

	require.NoError(t, sess.Load(ctx, models.ActionCreateSecret, "", "billing"))
	sess.ApplyEdits(models.EditBuffer{
		models.KeyType: "billing",
		"addressRef":   "addr-77",
	}, nil, nil)
	resolver.calls = nil

	require.NoError(t, sess.ChangeType(ctx, "other"))

	require.NotEmpty(t, resolver.calls)
	assert.Equal(t, resolveCall{uid: "addr-77", bypass: true}, resolver.calls[0])
}

func TestSession_Reset(t *testing.T) {
	sess, _, _ := newTestSession(t, 0)
	ctx := context.Background()

	require.NoError(t, sess.Load(ctx, models.ActionUpdateSecret, "rec-1", "login"))
	sess.Reset()

	action, secretType, buffer, descs, customs, entities, tempAddresses := sess.Snapshot()
	assert.Empty(t, string(action))
	assert.Empty(t, secretType)
	assert.Empty(t, buffer)
	assert.Empty(t, descs)
	assert.Empty(t, customs)
	assert.Empty(t, entities)
	assert.Empty(t, tempAddresses)
}

func TestSession_ApplyEditsMintsPendingUIDs(t *testing.T) {
	sess, _, _ := newTestSession(t, time.Minute)

	sess.ApplyEdits(nil, nil, []models.PendingAddress{
		{Title: "New Warehouse"},
		{UID: "pending:existing", Title: "HQ"},
	})

	_, _, _, _, _, _, tempAddresses := sess.Snapshot()
	require.Len(t, tempAddresses, 2)

	assert.True(t, models.IsPendingUID(tempAddresses[0].UID))
	assert.Equal(t, "pending:existing", tempAddresses[1].UID)
}

func TestSession_PendingAddressLookup(t *testing.T) {
	sess, _, _ := newTestSession(t, time.Minute)

	sess.ApplyEdits(nil, nil, []models.PendingAddress{
		{UID: "pending:42", Title: "New Warehouse", Address: models.AddressValue{City: "Springfield"}},
	})

	p, ok := sess.PendingAddress("pending:42")
	require.True(t, ok)
	assert.Equal(t, "New Warehouse", p.Title)
	assert.Equal(t, "Springfield", p.Address.City)

	_, ok = sess.PendingAddress("pending:unknown")
	assert.False(t, ok)
}
