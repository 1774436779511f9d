package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-custody/internal/config"
	"github.com/MKhiriev/go-custody/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the configured workers. A zero snapshot interval leaves
// the set empty.
func NewWorkers(cfg config.Workers, persister Persister, logger *logger.Logger) *Workers {
	w := &Workers{}
	if cfg.SnapshotInterval > 0 {
		w.workers = append(w.workers, NewSnapshotWorker(persister, cfg.SnapshotInterval, logger))
	}
	return w
}

// Run starts every worker in its own goroutine and blocks until all of them
// return.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()
}
