package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-custody/internal/logger"
)

// SnapshotWorker persists the custody state on a fixed interval. Failures
// are logged and retried on the next tick.
type SnapshotWorker struct {
	persister Persister
	interval  time.Duration
	logger    *logger.Logger
}

func NewSnapshotWorker(persister Persister, interval time.Duration, logger *logger.Logger) *SnapshotWorker {
	return &SnapshotWorker{
		persister: persister,
		interval:  interval,
		logger:    logger,
	}
}

func (s *SnapshotWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("snapshot worker started")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("snapshot worker stopped")
			return
		case <-ticker.C:
			start := time.Now()
			if err := s.persister.Persist(ctx); err != nil {
				s.logger.Err(err).Msg("periodic snapshot failed")
				continue
			}
			s.logger.Debug().Dur("took", time.Since(start)).Msg("snapshot saved")
		}
	}
}
