package models

// StoredSecretValue is the backend's representation of one existing secret:
// a title, a type tag, and an ordered list of field entries. Entry order is
// backend-determined and significant for duplicate-type tie-breaking during
// mapping.
type StoredSecretValue struct {
	UID    string       `json:"uid"`
	Title  string       `json:"title"`
	Type   string       `json:"type"`
	Fields []FieldEntry `json:"fields"`
	Notes  string       `json:"notes,omitempty"`
}

// FieldEntry is a single stored attribute. Value[0] may be a primitive or a
// nested object whose shape depends on Type.
type FieldEntry struct {
	Type  string `json:"type"`
	Label string `json:"label,omitempty"`
	Value []any  `json:"value"`
}

// FirstValue returns Value[0] when the entry carries at least one value.
func (e FieldEntry) FirstValue() (any, bool) {
	if len(e.Value) == 0 || e.Value[0] == nil {
		return nil, false
	}
	return e.Value[0], true
}

// NameValue is the decoded shape of a "name" composite entry.
type NameValue struct {
	First  string `json:"first"`
	Middle string `json:"middle"`
	Last   string `json:"last"`
}

// PhoneValue is the decoded shape of a "phone" composite entry.
type PhoneValue struct {
	Region string `json:"region"`
	Number string `json:"number"`
	Ext    string `json:"ext"`
	Type   string `json:"type"`
}

// AddressValue is the decoded shape of an "address" composite entry.
type AddressValue struct {
	Street1 string `json:"street1"`
	Street2 string `json:"street2"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// PaymentCardValue is the decoded shape of a "paymentCard" composite entry.
type PaymentCardValue struct {
	CardNumber         string `json:"cardNumber"`
	CardExpirationDate string `json:"cardExpirationDate"`
	CardSecurityCode   string `json:"cardSecurityCode"`
}

// BankAccountValue is the decoded shape of a "bankAccount" composite entry.
type BankAccountValue struct {
	AccountType   string `json:"accountType"`
	OtherType     string `json:"otherType"`
	RoutingNumber string `json:"routingNumber"`
	AccountNumber string `json:"accountNumber"`
}

// KeyPairValue is the decoded shape of a "keyPair" composite entry.
type KeyPairValue struct {
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey"`
}

// HostValue is the decoded shape of a "host" composite entry.
type HostValue struct {
	HostName string `json:"hostName"`
	Port     string `json:"port"`
}

// DisplayLines renders the address in the fixed presentation order:
// street lines, city/state/zip line, country. The country line is suppressed
// when it equals homeCountry. Empty lines are omitted.
func (a AddressValue) DisplayLines(homeCountry string) []string {
	lines := make([]string, 0, 4)

	if a.Street1 != "" {
		lines = append(lines, a.Street1)
	}
	if a.Street2 != "" {
		lines = append(lines, a.Street2)
	}

	cityLine := a.City
	if a.State != "" {
		if cityLine != "" {
			cityLine += ", "
		}
		cityLine += a.State
	}
	if a.Zip != "" {
		if cityLine != "" {
			cityLine += " "
		}
		cityLine += a.Zip
	}
	if cityLine != "" {
		lines = append(lines, cityLine)
	}

	if a.Country != "" && a.Country != homeCountry {
		lines = append(lines, a.Country)
	}

	return lines
}
