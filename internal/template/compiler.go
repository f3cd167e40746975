// Package template turns a declarative secret-type schema into the flat,
// ordered list of editable field descriptors the panel works with, and
// decomposes stored composite values into display strings.
//
// Composite field types form a closed set (see models.CompositeKind); the
// per-kind shape tables in shapes.go are the single source of truth for which
// sub-fields exist and which one is primary.
package template

import (
	"strings"

	"github.com/MKhiriev/go-vault-gate/models"
)

// Compile converts a schema into an ordered descriptor list.
//
// Title and notes entries are hoisted first, in that order, as required and
// optional plain-text descriptors. Composite entries emit one descriptor per
// sub-field present in the entry's sample value shape (or the kind's canonical
// shape when no sample is given). Reference entries emit a single descriptor
// with the reference input kind. Everything else emits one scalar descriptor
// whose input kind comes from the fixed type table.
//
// An empty result is a valid outcome: the caller surfaces a "standard fields
// only" fallback instead of failing the operation.
func Compile(schema models.Schema) []models.FieldDescriptor {
	descriptors := make([]models.FieldDescriptor, 0, len(schema.Fields)+2)
	seen := make(map[string]bool, len(schema.Fields)+2)

	emit := func(d models.FieldDescriptor) {
		if d.Name == "" || seen[d.Name] {
			return
		}
		seen[d.Name] = true
		descriptors = append(descriptors, d)
	}

	if hasRef(schema, models.KeyTitle) {
		emit(models.FieldDescriptor{
			Name:      models.KeyTitle,
			Label:     "Title",
			InputKind: models.InputText,
			Required:  true,
		})
	}
	if hasRef(schema, models.KeyNotes) {
		emit(models.FieldDescriptor{
			Name:      models.KeyNotes,
			Label:     "Notes",
			InputKind: models.InputMultiline,
		})
	}

	for _, field := range schema.Fields {
		if field.Ref == "" || field.Ref == models.KeyTitle || field.Ref == models.KeyNotes {
			continue
		}

		if isReferenceRef(field.Ref) {
			emit(models.FieldDescriptor{
				Name:      field.Ref,
				Label:     fieldLabel(field),
				InputKind: models.InputReference,
				Required:  field.Required,
			})
			continue
		}

		if kind, ok := models.CompositeKindOf(field.Ref); ok {
			for _, d := range compileComposite(kind, field) {
				emit(d)
			}
			continue
		}

		inputKind := scalarInputKind(field.Ref)
		if len(field.Options) > 0 {
			inputKind = models.InputSelect
		}
		emit(models.FieldDescriptor{
			Name:      field.Ref,
			Label:     fieldLabel(field),
			InputKind: inputKind,
			Required:  field.Required,
			Options:   field.Options,
		})
	}

	return descriptors
}

// compileComposite emits one descriptor per sub-field of a composite entry.
// Emission is shape-driven: the sample narrows the canonical sub-field set
// but never reorders it, so descriptor order is stable across templates.
func compileComposite(kind models.CompositeKind, field models.SchemaField) []models.FieldDescriptor {
	base := fieldLabel(field)

	out := make([]models.FieldDescriptor, 0, 6)
	for _, sub := range subFieldsOf(kind) {
		if field.Sample != nil {
			if _, present := field.Sample[sub]; !present {
				continue
			}
		}

		out = append(out, models.FieldDescriptor{
			Name:       string(kind) + "_" + sub,
			Label:      base + " " + subFieldLabel(sub),
			InputKind:  subFieldInputKind(kind, sub),
			Required:   field.Required && isPrimarySubField(kind, sub),
			ParentType: kind,
			SubField:   sub,
		})
	}

	return out
}

func hasRef(schema models.Schema, ref string) bool {
	for _, f := range schema.Fields {
		if f.Ref == ref {
			return true
		}
	}
	return false
}

func fieldLabel(field models.SchemaField) string {
	if field.Label != "" {
		return field.Label
	}
	return titleCase(field.Ref)
}

// subFieldLabel splits a camelCase sub-field name into spaced words and
// title-cases the first one ("cardExpirationDate" → "Card Expiration Date").
func subFieldLabel(sub string) string {
	var b strings.Builder
	for i, r := range sub {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return titleCase(b.String())
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
