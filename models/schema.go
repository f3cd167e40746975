package models

// Schema is the declarative field template returned by the vault backend for
// one secret type. The field list drives which editable inputs the panel
// synthesizes for that type.
type Schema struct {
	// TypeID is the secret-type identifier this schema describes
	// (e.g. "login", "bankAccount", "sshKeys").
	TypeID string `json:"$id"`

	// Description is an optional human-readable summary of the type.
	Description string `json:"description,omitempty"`

	// Fields lists the template's field entries in backend order.
	Fields []SchemaField `json:"fields"`
}

// SchemaField is a single entry of a Schema.
//
// Ref names the field type; for composite refs the optional Sample carries a
// value-shape hint whose keys narrow which sub-fields the type actually uses
// in this template. Without a Sample the canonical shape of the ref applies.
type SchemaField struct {
	// Ref is the field-type identifier (e.g. "login", "phone", "addressRef").
	Ref string `json:"$ref"`

	// Label overrides the display label derived from Ref.
	Label string `json:"label,omitempty"`

	// Required marks the field as mandatory. For composite refs only the
	// primary sub-field inherits this flag.
	Required bool `json:"required,omitempty"`

	// Sample is the optional value-shape hint for composite refs.
	Sample map[string]any `json:"sample,omitempty"`

	// Options lists allowed values for enumerated fields.
	Options []string `json:"options,omitempty"`
}

// Empty reports whether the schema carries no field entries at all.
func (s Schema) Empty() bool {
	return len(s.Fields) == 0
}
