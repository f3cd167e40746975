// Package mapping populates an edit buffer from a stored secret's field
// entries against a compiled descriptor list, demoting everything the active
// template cannot place into custom fields so that no stored attribute is
// silently dropped.
package mapping

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/MKhiriev/go-vault-gate/internal/template"
	"github.com/MKhiriev/go-vault-gate/models"
)

// Result is one mapping pass's output: a buffer restricted to descriptor
// names plus the core identity keys, and the custom fields surfaced for
// unplaceable stored entries. Custom fields are recomputed on every pass.
type Result struct {
	Buffer       models.EditBuffer
	CustomFields []models.CustomField
}

// Map produces the edit buffer for stored against descs.
//
// Per stored entry, in backend order: the entry's value is decomposed by its
// type-specific rule and written to the matching descriptor slots. The first
// occurrence of a duplicated type wins the direct slot; every later occurrence
// becomes a custom field labeled with the entry's own label or its 1-based
// occurrence index. Entries with no matching descriptor become custom fields
// with cleaned labels. Masked descriptors receive the mask marker, never the
// stored cleartext.
//
// Note the tie-break depends on the stored value's field order, which is
// backend-determined; it is preserved here for compatibility with existing
// records.
func Map(descs []models.FieldDescriptor, stored *models.StoredSecretValue, homeCountry string) Result {
	buffer := make(models.EditBuffer, len(descs)+4)
	res := Result{Buffer: buffer}

	byName := make(map[string]models.FieldDescriptor, len(descs))
	for _, d := range descs {
		byName[d.Name] = d
	}

	if stored == nil {
		return res
	}

	buffer[models.KeyRecordUID] = stored.UID
	buffer[models.KeyType] = stored.Type
	if stored.Title != "" {
		buffer[models.KeyTitle] = stored.Title
	}
	if stored.Notes != "" {
		buffer[models.KeyNotes] = stored.Notes
	}

	occurrences := make(map[string]int, len(stored.Fields))
	filled := make(map[string]bool, len(descs))

	for i, entry := range stored.Fields {
		occurrences[entry.Type]++
		occ := occurrences[entry.Type]

		parts, usable := template.Decompose(entry)
		if !usable {
			// Shape mismatch or empty value: keep whatever primitive form
			// survives, or skip the entry entirely.
			if display, ok := template.DisplayValue(entry, homeCountry); ok {
				res.CustomFields = append(res.CustomFields, customField(i, entry, occ, display))
			}
			continue
		}

		if _, composite := models.CompositeKindOf(entry.Type); composite {
			mapComposite(&res, byName, filled, i, entry, occ, parts, homeCountry)
			continue
		}

		mapScalar(&res, byName, filled, i, entry, occ, parts[entry.Type], homeCountry)
	}

	return res
}

// mapComposite writes each decomposed sub-field into its synthesized
// descriptor slot. Sub-fields whose descriptor was narrowed away by the
// schema sample demote individually, so every stored attribute stays
// represented. A later entry of an already-mapped composite type demotes
// to one custom field carrying the whole display string.
func mapComposite(
	res *Result,
	byName map[string]models.FieldDescriptor,
	filled map[string]bool,
	index int,
	entry models.FieldEntry,
	occurrence int,
	parts map[string]string,
	homeCountry string,
) {
	if occurrence > 1 || filled[entry.Type] {
		if display, ok := template.DisplayValue(entry, homeCountry); ok {
			res.CustomFields = append(res.CustomFields, customField(index, entry, occurrence, display))
		}
		return
	}

	subs := make([]string, 0, len(parts))
	for sub := range parts {
		subs = append(subs, sub)
	}
	sort.Strings(subs)

	placed := false
	var leftovers []string
	for _, sub := range subs {
		name := entry.Type + "_" + sub
		if desc, exists := byName[name]; exists {
			res.Buffer[name] = maskedOrValue(desc, parts[sub])
			placed = true
			continue
		}
		leftovers = append(leftovers, sub)
	}
	filled[entry.Type] = true

	if !placed {
		// No descriptor of this composite survived compilation; the whole
		// entry surfaces as one custom field.
		if display, ok := template.DisplayValue(entry, homeCountry); ok {
			res.CustomFields = append(res.CustomFields, customField(index, entry, occurrence, display))
		}
		return
	}

	for _, sub := range leftovers {
		res.CustomFields = append(res.CustomFields, subFieldCustom(index, entry.Type, sub, parts[sub]))
	}
}

// subFieldCustom demotes one decomposed sub-field whose descriptor the active
// template does not carry, labeled "Parent Sub" (e.g. "Phone Region").
func subFieldCustom(index int, parentType, sub, value string) models.CustomField {
	name := parentType + "_" + sub
	return models.CustomField{
		ID:                fmt.Sprintf("custom_%d_%s", index, sub),
		CleanLabel:        models.CleanFieldLabel(parentType) + " " + models.CleanFieldLabel(sub),
		Value:             value,
		OriginalFieldName: name,
	}
}

// mapScalar writes the entry into the one descriptor sharing its type name.
func mapScalar(
	res *Result,
	byName map[string]models.FieldDescriptor,
	filled map[string]bool,
	index int,
	entry models.FieldEntry,
	occurrence int,
	value string,
	homeCountry string,
) {
	desc, exists := byName[entry.Type]
	if exists && !filled[entry.Type] {
		res.Buffer[entry.Type] = maskedOrValue(desc, value)
		filled[entry.Type] = true
		return
	}

	if display, ok := template.DisplayValue(entry, homeCountry); ok {
		value = display
	}
	res.CustomFields = append(res.CustomFields, customField(index, entry, occurrence, value))
}

func maskedOrValue(desc models.FieldDescriptor, value string) string {
	if desc.InputKind == models.InputMasked && value != "" {
		return models.MaskMarker
	}
	return value
}

// customField builds the demoted representation of a stored entry. The label
// prefers the entry's own label; a repeated type without one gets its 1-based
// occurrence index as a disambiguating suffix.
func customField(index int, entry models.FieldEntry, occurrence int, value string) models.CustomField {
	label := entry.Label
	if label == "" {
		label = models.CleanFieldLabel(entry.Type)
		if occurrence > 1 {
			label = label + " " + strconv.Itoa(occurrence)
		}
	}

	return models.CustomField{
		ID:                fmt.Sprintf("custom_%d", index),
		CleanLabel:        label,
		Value:             value,
		OriginalFieldName: entry.Type,
	}
}
