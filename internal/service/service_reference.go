package service

import (
	"context"

	"github.com/MKhiriev/go-vault-gate/internal/logger"
	"github.com/MKhiriev/go-vault-gate/internal/resolver"
	"github.com/MKhiriev/go-vault-gate/models"
)

type referenceService struct {
	cache       *resolver.Cache
	pending     PendingAddressSource
	homeCountry string

	logger *logger.Logger
}

func NewReferenceService(cache *resolver.Cache, pending PendingAddressSource, homeCountry string, logger *logger.Logger) ReferenceService {
	return &referenceService{
		cache:       cache,
		pending:     pending,
		homeCountry: homeCountry,
		logger:      logger,
	}
}

// Resolve answers a reference UID with its cache entry and display lines. A
// pending-creation placeholder never reaches the backend: its locally entered
// data is wrapped as a resolved entry so the panel presents it identically.
func (s *referenceService) Resolve(ctx context.Context, uid string, bypass bool) models.ReferenceView {
	if models.IsPendingUID(uid) && s.pending != nil {
		if p, ok := s.pending.PendingAddress(uid); ok {
			return s.view(resolver.EntryForPending(p))
		}
	}

	return s.view(s.cache.Resolve(ctx, uid, bypass))
}

func (s *referenceService) Remove(uid string) {
	s.cache.Remove(uid)
}

func (s *referenceService) view(entry models.AddressCacheEntry) models.ReferenceView {
	return models.ReferenceView{
		AddressCacheEntry: entry,
		DisplayLines:      entry.DisplayLines(s.homeCountry),
	}
}
