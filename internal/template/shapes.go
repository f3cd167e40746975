package template

import "github.com/MKhiriev/go-vault-gate/models"

// subFieldsOf returns the canonical sub-field order for a composite kind.
// The switch is exhaustive over the closed CompositeKind set; adding a new
// kind without extending it is a compile-visible gap, not a silent fallback.
func subFieldsOf(kind models.CompositeKind) []string {
	switch kind {
	case models.CompositeName:
		return []string{"first", "middle", "last"}
	case models.CompositePhone:
		return []string{"region", "number", "ext", "type"}
	case models.CompositeAddress:
		return []string{"street1", "street2", "city", "state", "zip", "country"}
	case models.CompositePaymentCard:
		return []string{"cardNumber", "cardExpirationDate", "cardSecurityCode"}
	case models.CompositeBankAccount:
		return []string{"accountType", "otherType", "routingNumber", "accountNumber"}
	case models.CompositeKeyPair:
		return []string{"publicKey", "privateKey"}
	case models.CompositeHost:
		return []string{"hostName", "port"}
	default:
		return nil
	}
}

// isPrimarySubField reports whether sub is the sub-field conventionally
// treated as primary for its kind. Only primary sub-fields inherit the parent
// entry's required flag; everything else is optional.
func isPrimarySubField(kind models.CompositeKind, sub string) bool {
	switch kind {
	case models.CompositeName:
		return sub == "first" || sub == "last"
	case models.CompositePhone:
		return sub == "number"
	case models.CompositeAddress:
		return sub == "street1"
	case models.CompositePaymentCard:
		return sub == "cardNumber"
	case models.CompositeBankAccount:
		return sub == "accountNumber"
	case models.CompositeKeyPair:
		return sub == "privateKey"
	case models.CompositeHost:
		return sub == "hostName"
	default:
		return false
	}
}

// subFieldInputKind picks the editing control for one composite sub-field.
func subFieldInputKind(kind models.CompositeKind, sub string) models.InputKind {
	switch kind {
	case models.CompositePhone:
		if sub == "number" {
			return models.InputPhone
		}
	case models.CompositePaymentCard:
		switch sub {
		case "cardNumber", "cardSecurityCode":
			return models.InputMasked
		case "cardExpirationDate":
			return models.InputDate
		}
	case models.CompositeBankAccount:
		if sub == "accountNumber" || sub == "routingNumber" {
			return models.InputMasked
		}
	case models.CompositeKeyPair:
		if sub == "privateKey" {
			return models.InputMasked
		}
		return models.InputMultiline
	}
	return models.InputText
}

// scalarInputKind is the fixed type→control table for plain scalar refs.
func scalarInputKind(ref string) models.InputKind {
	switch ref {
	case "password", "secret", "pinCode", "oneTimeCode", "otp", "licenseNumber":
		return models.InputMasked
	case "url":
		return models.InputURL
	case "email":
		return models.InputEmail
	case "phoneNumber":
		return models.InputPhone
	case "date", "birthDate", "expirationDate":
		return models.InputDate
	case "note", "multiline":
		return models.InputMultiline
	default:
		return models.InputText
	}
}

// isReferenceRef reports whether ref names a foreign-record reference type.
// Reference fields never decompose further.
func isReferenceRef(ref string) bool {
	switch ref {
	case "addressRef", "fileRef", "cardRef":
		return true
	default:
		return false
	}
}
