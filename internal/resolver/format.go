package resolver

import "github.com/MKhiriev/go-vault-gate/models"

// EntryForPending wraps locally entered pending-address data in a resolved
// cache entry so that display formatting is identical for freshly resolved
// targets and pending-creation placeholders.
func EntryForPending(p models.PendingAddress) models.AddressCacheEntry {
	return models.AddressCacheEntry{
		UID:   p.UID,
		State: models.CacheResolved,
		Data: &models.ResolvedAddress{
			Title:   p.Title,
			Address: p.Address,
		},
	}
}
