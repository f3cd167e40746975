package template

import (
	"testing"

	"github.com/MKhiriev/go-vault-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecompose_ScalarsBecomeSingleEntries(t *testing.T) {
	descs := Compile(models.Schema{
		TypeID: "login",
		Fields: []models.SchemaField{
			{Ref: "login", Required: true},
			{Ref: "url"},
		},
	})

	buffer := models.EditBuffer{
		models.KeyTitle: "Corporate VPN",
		"login":         "mario",
		"url":           "https://vpn.example.com",
	}

	entries := Recompose(descs, buffer)

	require.Len(t, entries, 2)
	assert.Equal(t, models.FieldEntry{Type: "login", Value: []any{"mario"}}, entries[0])
	assert.Equal(t, models.FieldEntry{Type: "url", Value: []any{"https://vpn.example.com"}}, entries[1])
}

func TestRecompose_SubFieldsGroupIntoNestedValue(t *testing.T) {
	descs := Compile(models.Schema{
		TypeID: "contact",
		Fields: []models.SchemaField{
			{Ref: "phone"},
		},
	})

	buffer := models.EditBuffer{
		"phone_region": "+1",
		"phone_number": "555-1212",
		"phone_type":   "Work",
	}

	entries := Recompose(descs, buffer)

	require.Len(t, entries, 1)
	assert.Equal(t, "phone", entries[0].Type)
	require.Len(t, entries[0].Value, 1)
	assert.Equal(t, map[string]any{
		"region": "+1",
		"number": "555-1212",
		"type":   "Work",
	}, entries[0].Value[0])
}

func TestRecompose_EmptyAndAbsentValuesOmitted(t *testing.T) {
	descs := Compile(models.Schema{
		TypeID: "login",
		Fields: []models.SchemaField{
			{Ref: "login"},
			{Ref: "url"},
			{Ref: "phone"},
		},
	})

	buffer := models.EditBuffer{
		"login":        "mario",
		"url":          "",
		"phone_number": "",
	}

	entries := Recompose(descs, buffer)

	require.Len(t, entries, 1)
	assert.Equal(t, "login", entries[0].Type)
}

func TestRecompose_ReferenceStaysScalar(t *testing.T) {
	descs := Compile(models.Schema{
		TypeID: "billing",
		Fields: []models.SchemaField{
			{Ref: "addressRef"},
		},
	})

	buffer := models.EditBuffer{"addressRef": "addr-77"}

	entries := Recompose(descs, buffer)

	require.Len(t, entries, 1)
	assert.Equal(t, models.FieldEntry{Type: "addressRef", Value: []any{"addr-77"}}, entries[0])
}
