package template

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-vault-gate/models"
)

// Decompose converts a stored entry's first value into flat sub-field→string
// pairs keyed by bare sub-field name. Scalar entries yield a single pair keyed
// by the entry type. ok is false when the entry carries no usable value or a
// composite value whose shape cannot be decoded; such entries fall through to
// the custom-field path instead of raising.
func Decompose(entry models.FieldEntry) (map[string]string, bool) {
	raw, hasValue := entry.FirstValue()
	if !hasValue {
		return nil, false
	}

	kind, composite := models.CompositeKindOf(entry.Type)
	if !composite {
		s := primitiveString(raw)
		if s == "" {
			return nil, false
		}
		return map[string]string{entry.Type: s}, true
	}

	parts, err := decomposeComposite(kind, raw)
	if err != nil || len(parts) == 0 {
		return nil, false
	}
	return parts, true
}

// DisplayValue renders a stored entry as a single display string using the
// type-specific rule for its composite kind, or the primitive form for
// scalars. ok is false when nothing presentable can be produced.
func DisplayValue(entry models.FieldEntry, homeCountry string) (string, bool) {
	raw, hasValue := entry.FirstValue()
	if !hasValue {
		return "", false
	}

	kind, composite := models.CompositeKindOf(entry.Type)
	if !composite {
		s := primitiveString(raw)
		return s, s != ""
	}

	s, err := displayComposite(kind, raw, homeCountry)
	if err != nil || s == "" {
		// Shape mismatch: fall back to the primitive form when the stored
		// value still carries one.
		s = primitiveString(raw)
		return s, s != ""
	}
	return s, true
}

// decomposeComposite decodes raw into the typed shape of kind and flattens it.
// One case per variant, exhaustive over the closed composite set.
func decomposeComposite(kind models.CompositeKind, raw any) (map[string]string, error) {
	switch kind {
	case models.CompositeName:
		var v models.NameValue
		if err := decodeShape(raw, &v); err != nil {
			return nil, err
		}
		return compact(map[string]string{
			"first": v.First, "middle": v.Middle, "last": v.Last,
		}), nil

	case models.CompositePhone:
		var v models.PhoneValue
		if err := decodeShape(raw, &v); err != nil {
			return nil, err
		}
		return compact(map[string]string{
			"region": v.Region, "number": v.Number, "ext": v.Ext, "type": v.Type,
		}), nil

	case models.CompositeAddress:
		var v models.AddressValue
		if err := decodeShape(raw, &v); err != nil {
			return nil, err
		}
		return compact(map[string]string{
			"street1": v.Street1, "street2": v.Street2, "city": v.City,
			"state": v.State, "zip": v.Zip, "country": v.Country,
		}), nil

	case models.CompositePaymentCard:
		var v models.PaymentCardValue
		if err := decodeShape(raw, &v); err != nil {
			return nil, err
		}
		return compact(map[string]string{
			"cardNumber":         v.CardNumber,
			"cardExpirationDate": v.CardExpirationDate,
			"cardSecurityCode":   v.CardSecurityCode,
		}), nil

	case models.CompositeBankAccount:
		var v models.BankAccountValue
		if err := decodeShape(raw, &v); err != nil {
			return nil, err
		}
		return compact(map[string]string{
			"accountType": v.AccountType, "otherType": v.OtherType,
			"routingNumber": v.RoutingNumber, "accountNumber": v.AccountNumber,
		}), nil

	case models.CompositeKeyPair:
		var v models.KeyPairValue
		if err := decodeShape(raw, &v); err != nil {
			return nil, err
		}
		return compact(map[string]string{
			"publicKey": v.PublicKey, "privateKey": v.PrivateKey,
		}), nil

	case models.CompositeHost:
		var v models.HostValue
		if err := decodeShape(raw, &v); err != nil {
			return nil, err
		}
		return compact(map[string]string{
			"hostName": v.HostName, "port": v.Port,
		}), nil

	default:
		return nil, fmt.Errorf("unhandled composite kind %q", kind)
	}
}

// displayComposite renders raw as one line, per-kind.
func displayComposite(kind models.CompositeKind, raw any, homeCountry string) (string, error) {
	switch kind {
	case models.CompositeName:
		var v models.NameValue
		if err := decodeShape(raw, &v); err != nil {
			return "", err
		}
		return joinNonEmpty(" ", v.First, v.Middle, v.Last), nil

	case models.CompositePhone:
		var v models.PhoneValue
		if err := decodeShape(raw, &v); err != nil {
			return "", err
		}
		s := joinNonEmpty(" ", v.Region, v.Number)
		if v.Ext != "" {
			s = joinNonEmpty(" ", s, "ext "+v.Ext)
		}
		if v.Type != "" {
			s = joinNonEmpty(" ", s, "("+v.Type+")")
		}
		return s, nil

	case models.CompositeAddress:
		var v models.AddressValue
		if err := decodeShape(raw, &v); err != nil {
			return "", err
		}
		return strings.Join(v.DisplayLines(homeCountry), ", "), nil

	case models.CompositePaymentCard:
		var v models.PaymentCardValue
		if err := decodeShape(raw, &v); err != nil {
			return "", err
		}
		return joinNonEmpty(" ", v.CardNumber, v.CardExpirationDate), nil

	case models.CompositeBankAccount:
		var v models.BankAccountValue
		if err := decodeShape(raw, &v); err != nil {
			return "", err
		}
		return joinNonEmpty(" ", v.RoutingNumber, v.AccountNumber, v.AccountType), nil

	case models.CompositeKeyPair:
		var v models.KeyPairValue
		if err := decodeShape(raw, &v); err != nil {
			return "", err
		}
		return v.PublicKey, nil

	case models.CompositeHost:
		var v models.HostValue
		if err := decodeShape(raw, &v); err != nil {
			return "", err
		}
		return joinNonEmpty(":", v.HostName, v.Port), nil

	default:
		return "", fmt.Errorf("unhandled composite kind %q", kind)
	}
}

// decodeShape converts the backend's loosely typed nested object into the
// expected struct. Non-object values are a shape mismatch.
func decodeShape(raw any, target any) error {
	if _, ok := raw.(map[string]any); !ok {
		return fmt.Errorf("expected object value, got %T", raw)
	}

	blob, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("re-encode composite value: %w", err)
	}
	if err = json.Unmarshal(blob, target); err != nil {
		return fmt.Errorf("decode composite value: %w", err)
	}
	return nil
}

// primitiveString renders a scalar stored value for display. Objects and
// arrays yield "" so that shape mismatches stay detectable.
func primitiveString(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		// JSON numbers decode as float64; keep integral values clean.
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

func compact(m map[string]string) map[string]string {
	for k, v := range m {
		if v == "" {
			delete(m, k)
		}
	}
	return m
}

func joinNonEmpty(sep string, parts ...string) string {
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
