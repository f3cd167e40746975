package template

import (
	"github.com/MKhiriev/go-vault-gate/models"
)

// Recompose inverts the flattening pass: descriptor-named buffer values are
// folded back into the backend's stored wire shape. Sub-field descriptors of
// one composite type group into a single entry carrying a nested object;
// scalar and reference descriptors each become one entry with the value as-is.
//
// Only keys named by a descriptor participate; core identity keys and carried
// custom values travel outside the field list. Empty strings are treated as
// never-entered and omitted.
func Recompose(descs []models.FieldDescriptor, buffer models.EditBuffer) []models.FieldEntry {
	var entries []models.FieldEntry
	compositeAt := make(map[models.CompositeKind]int)

	for _, d := range descs {
		value, ok := buffer[d.Name]
		if !ok {
			continue
		}
		if s, isStr := value.(string); isStr && s == "" {
			continue
		}

		if !d.IsSubField() {
			entries = append(entries, models.FieldEntry{
				Type:  d.Name,
				Value: []any{value},
			})
			continue
		}

		idx, exists := compositeAt[d.ParentType]
		if !exists {
			entries = append(entries, models.FieldEntry{
				Type:  string(d.ParentType),
				Value: []any{map[string]any{}},
			})
			idx = len(entries) - 1
			compositeAt[d.ParentType] = idx
		}
		entries[idx].Value[0].(map[string]any)[d.SubField] = value
	}

	return entries
}
