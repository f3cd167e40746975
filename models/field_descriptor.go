package models

// InputKind selects which editing control a descriptor is rendered with.
// The gate never renders inputs itself; the kind is handed to the panel UI.
type InputKind string

const (
	InputText      InputKind = "text"
	InputMasked    InputKind = "masked"
	InputURL       InputKind = "url"
	InputEmail     InputKind = "email"
	InputPhone     InputKind = "phone"
	InputDate      InputKind = "date"
	InputMultiline InputKind = "multiline"
	InputSelect    InputKind = "select"

	// InputReference marks a foreign-record reference (address, file, card).
	// Reference fields are never decomposed into sub-fields.
	InputReference InputKind = "reference"
)

// CompositeKind enumerates the closed set of composite field types whose
// values are structured objects requiring decomposition into sub-fields.
// Any ref outside this set is treated as a scalar.
type CompositeKind string

const (
	CompositeName        CompositeKind = "name"
	CompositePhone       CompositeKind = "phone"
	CompositeAddress     CompositeKind = "address"
	CompositePaymentCard CompositeKind = "paymentCard"
	CompositeBankAccount CompositeKind = "bankAccount"
	CompositeKeyPair     CompositeKind = "keyPair"
	CompositeHost        CompositeKind = "host"
)

// CompositeKindOf maps a schema ref or stored-entry type onto its composite
// kind. ok is false for scalar and reference refs.
func CompositeKindOf(ref string) (CompositeKind, bool) {
	switch CompositeKind(ref) {
	case CompositeName, CompositePhone, CompositeAddress,
		CompositePaymentCard, CompositeBankAccount, CompositeKeyPair, CompositeHost:
		return CompositeKind(ref), true
	default:
		return "", false
	}
}

// FieldDescriptor is one flat editable input produced by the template
// compiler. For sub-fields of a composite type, Name is synthesized as
// "parentType_subField" (e.g. "address_city") and ParentType/SubField record
// the decomposition. Within one compiled list Name is unique.
type FieldDescriptor struct {
	Name      string    `json:"name"`
	Label     string    `json:"label"`
	InputKind InputKind `json:"inputKind"`
	Required  bool      `json:"required"`

	ParentType CompositeKind `json:"parentType,omitempty"`
	SubField   string        `json:"subField,omitempty"`

	// Options is populated for InputSelect descriptors only.
	Options []string `json:"options,omitempty"`
}

// IsSubField reports whether the descriptor was produced by decomposing a
// composite type.
func (d FieldDescriptor) IsSubField() bool {
	return d.ParentType != "" && d.SubField != ""
}
