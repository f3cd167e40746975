package session

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/go-vault-gate/models"
)

// Policy selects how the edit buffer is rebuilt when the active secret type
// changes mid-edit.
type Policy string

const (
	// PolicyReturnToOriginal discards in-progress edits and restores the
	// snapshot captured at initial load. Switching A→B→A always yields the
	// exact state at first load of A.
	PolicyReturnToOriginal Policy = "return_to_original"

	// PolicyBlankSwitch builds a minimal buffer of identifier + new type.
	// Update operations change only attributes the operator explicitly edits,
	// so values from an unrelated type must not leak into the new fields.
	PolicyBlankSwitch Policy = "blank_switch"

	// PolicyCarryForward re-compiles descriptors for the new type and carries
	// every non-empty buffer key into the new descriptor set where a match
	// exists, demoting the rest to custom fields.
	PolicyCarryForward Policy = "carry_forward"
)

// ChoosePolicy picks the transition policy for a type change. Returning to
// the type the entity was originally loaded with always wins; otherwise the
// action's mode decides between blank switch and carry-forward.
func ChoosePolicy(newType, originalType string, action models.ActionID) Policy {
	if originalType != "" && newType == originalType {
		return PolicyReturnToOriginal
	}
	if action.IsUpdateMode() {
		return PolicyBlankSwitch
	}
	return PolicyCarryForward
}

// BlankBuffer is the blank-switch result: only the entity identifier and the
// newly selected type survive.
func BlankBuffer(recordUID, newType string) models.EditBuffer {
	buffer := models.EditBuffer{models.KeyType: newType}
	if recordUID != "" {
		buffer[models.KeyRecordUID] = recordUID
	}
	return buffer
}

// CarryForward rebuilds old against descs for the new type.
//
// For every non-empty key the match order is: exact descriptor name, then a
// suffix/substring match (so a bare sub-field name still finds its
// "parentType_subField" descriptor), then demotion to a custom field. Core
// keys are preserved verbatim and the type key is overwritten with newType.
func CarryForward(old models.EditBuffer, descs []models.FieldDescriptor, newType string) (models.EditBuffer, []models.CustomField) {
	buffer := make(models.EditBuffer, len(old))
	var customs []models.CustomField

	byName := make(map[string]bool, len(descs))
	for _, d := range descs {
		byName[d.Name] = true
	}

	keys := make([]string, 0, len(old))
	for k := range old {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if models.IsCoreKey(key) {
			buffer[key] = old[key]
			continue
		}
		if !old.NonEmpty(key) {
			continue
		}

		if byName[key] {
			// A bare sub-field key sorted earlier may already have claimed
			// this slot by suffix match; the loser demotes instead of being
			// silently overwritten.
			if _, taken := buffer[key]; !taken {
				buffer[key] = old[key]
				continue
			}
		} else if match, ok := matchBySuffix(key, descs); ok {
			if _, taken := buffer[match]; !taken {
				buffer[match] = old[key]
				continue
			}
		}

		customs = append(customs, models.CustomField{
			ID:                "carry_" + key,
			CleanLabel:        models.CleanFieldLabel(key),
			Value:             stringValue(old[key]),
			OriginalFieldName: key,
		})
	}

	buffer[models.KeyType] = newType
	return buffer, customs
}

// matchBySuffix finds the first descriptor whose name ends in "_"+key or
// otherwise contains key, in descriptor order.
func matchBySuffix(key string, descs []models.FieldDescriptor) (string, bool) {
	for _, d := range descs {
		if strings.HasSuffix(d.Name, "_"+key) {
			return d.Name, true
		}
	}
	for _, d := range descs {
		if strings.Contains(d.Name, key) {
			return d.Name, true
		}
	}
	return "", false
}

func stringValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		return strings.Join(t, ", ")
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprint(v)
	}
}
