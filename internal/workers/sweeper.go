package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-vault-gate/internal/config"
	"github.com/MKhiriev/go-vault-gate/internal/logger"
	"github.com/MKhiriev/go-vault-gate/internal/store"
	"github.com/robfig/cron/v3"
)

// expiredRequestSweeper purges stored requests whose drafts were saved longer
// ago than the configured TTL. Tickets abandoned mid-approval would otherwise
// keep their drafts forever.
type expiredRequestSweeper struct {
	storage  store.StoredRequestStorage
	schedule string
	ttl      time.Duration

	cron *cron.Cron
	now  func() time.Time

	logger *logger.Logger
}

func NewExpiredRequestSweeper(storage store.StoredRequestStorage, cfg config.Workers, logger *logger.Logger) Worker {
	return &expiredRequestSweeper{
		storage:  storage,
		schedule: cfg.SweepSchedule,
		ttl:      cfg.RequestTTL,
		cron:     cron.New(),
		now:      time.Now,
		logger:   logger,
	}
}

// Run schedules the sweep and returns; the cron scheduler runs it in the
// background for the lifetime of the process.
func (s *expiredRequestSweeper) Run() {
	if s.ttl <= 0 {
		s.logger.Info().Str("func", "Run").Msg("request TTL not set, expired request sweeper disabled")
		return
	}

	if _, err := s.cron.AddFunc(s.schedule, s.sweep); err != nil {
		s.logger.Err(err).
			Str("func", "Run").
			Str("schedule", s.schedule).
			Msg("invalid sweep schedule, expired request sweeper disabled")
		return
	}

	s.cron.Start()
	s.logger.Info().
		Str("func", "Run").
		Str("schedule", s.schedule).
		Dur("ttl", s.ttl).
		Msg("expired request sweeper started")
}

func (s *expiredRequestSweeper) sweep() {
	cutoff := s.now().Add(-s.ttl)

	removed, err := s.storage.DeleteOlderThan(context.Background(), cutoff)
	if err != nil {
		s.logger.Err(err).Str("func", "sweep").Msg("failed to purge expired stored requests")
		return
	}
	if removed > 0 {
		s.logger.Info().
			Str("func", "sweep").
			Int64("removed", removed).
			Time("cutoff", cutoff).
			Msg("purged expired stored requests")
	}
}
