package models

// Flat keys that survive every record-type transition verbatim.
const (
	KeyTitle     = "title"
	KeyNotes     = "notes"
	KeyRecordUID = "recordUid"
	KeyType      = "type"
)

// MaskMarker is the placeholder written into the buffer for masked input
// kinds instead of the stored cleartext. A masked value still equal to the
// marker at submission time means "unchanged" and is elided from the outgoing
// payload.
const MaskMarker = "••••••••"

// EditBuffer is the flat form data of the active edit session: a mapping from
// descriptor name to primitive value (string, bool, or []string). The buffer
// is owned exclusively by one session; it is replaced wholesale on
// secret-type or entity switch and mutated field-by-field otherwise.
type EditBuffer map[string]any

// Clone returns a deep copy. Slice values are copied; scalars are value types.
func (b EditBuffer) Clone() EditBuffer {
	if b == nil {
		return nil
	}

	out := make(EditBuffer, len(b))
	for k, v := range b {
		if s, ok := v.([]string); ok {
			cp := make([]string, len(s))
			copy(cp, s)
			out[k] = cp
			continue
		}
		out[k] = v
	}

	return out
}

// GetString returns the value under key as a string, or "" when the key is
// absent or holds a non-string value.
func (b EditBuffer) GetString(key string) string {
	s, _ := b[key].(string)
	return s
}

// NonEmpty reports whether key holds a value that counts as filled in:
// a non-empty string, true, or a non-empty slice.
func (b EditBuffer) NonEmpty(key string) bool {
	switch v := b[key].(type) {
	case string:
		return v != ""
	case bool:
		return v
	case []string:
		return len(v) > 0
	default:
		return v != nil
	}
}

// IsCoreKey reports whether key identifies the entity rather than one of its
// type-specific attributes. Core keys are carried verbatim through every
// transition policy.
func IsCoreKey(key string) bool {
	switch key {
	case KeyTitle, KeyNotes, KeyRecordUID, KeyType:
		return true
	default:
		return false
	}
}
