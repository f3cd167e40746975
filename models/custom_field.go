package models

import "strings"

// CustomField is a dynamically surfaced editable field for a stored attribute
// that has no corresponding descriptor in the currently active schema, or that
// lost the tie-break for an already-filled descriptor slot.
//
// Custom fields are recomputed on every mapping pass and never persisted
// independently of the edit buffer.
type CustomField struct {
	ID                string `json:"id"`
	CleanLabel        string `json:"cleanLabel"`
	Value             string `json:"value"`
	OriginalFieldName string `json:"originalFieldName"`
}

// CleanFieldLabel derives a presentable label from a raw field name by
// stripping any "parentType_" prefix and title-casing what remains
// (e.g. "custom_totp" → "Totp", "phone_number" → "Number").
func CleanFieldLabel(name string) string {
	if idx := strings.LastIndex(name, "_"); idx >= 0 && idx < len(name)-1 {
		name = name[idx+1:]
	}
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
