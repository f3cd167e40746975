package models

// CacheState is the lifecycle state of one address-cache entry.
type CacheState string

const (
	CacheLoading  CacheState = "loading"
	CacheResolved CacheState = "resolved"
	CacheNotFound CacheState = "notFound"
	CacheError    CacheState = "error"
)

// Terminal reports whether the state is cached permanently. Terminal entries
// are never re-fetched by a non-bypass resolve, bounding retry storms against
// a failing backend or a stale reference.
func (s CacheState) Terminal() bool {
	switch s {
	case CacheResolved, CacheNotFound, CacheError:
		return true
	default:
		return false
	}
}

// ResolvedAddress is the display payload of a successfully resolved reference.
type ResolvedAddress struct {
	Title   string       `json:"title"`
	Address AddressValue `json:"address"`
}

// AddressCacheEntry is the cached resolution result for one reference UID.
type AddressCacheEntry struct {
	UID   string           `json:"uid"`
	State CacheState       `json:"state"`
	Data  *ResolvedAddress `json:"data,omitempty"`

	// Message carries the human-readable failure reason for CacheError.
	Message string `json:"message,omitempty"`
}

// ReferenceView is the reference endpoint's answer: the cache entry plus its
// rendered presentation lines, identical for freshly resolved targets and
// pending-creation placeholders.
type ReferenceView struct {
	AddressCacheEntry
	DisplayLines []string `json:"displayLines,omitempty"`
}

// DisplayLines renders the resolved target for inline presentation: title
// first, then the address lines with the home country suppressed. Non-resolved
// entries render nothing.
func (e AddressCacheEntry) DisplayLines(homeCountry string) []string {
	if e.State != CacheResolved || e.Data == nil {
		return nil
	}

	lines := make([]string, 0, 5)
	if e.Data.Title != "" {
		lines = append(lines, e.Data.Title)
	}
	return append(lines, e.Data.Address.DisplayLines(homeCountry)...)
}
