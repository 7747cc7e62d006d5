package workers

import (
	"context"

	"github.com/MKhiriev/gumi-collection/internal/config"
	"github.com/MKhiriev/gumi-collection/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the client workers. A non-positive refresh interval
// disables the refresh worker.
func NewWorkers(loader Loader, cfg config.ClientWorkers, log *logger.Logger) *Workers {
	w := &Workers{}
	if cfg.RefreshInterval > 0 {
		w.workers = append(w.workers, NewRefreshWorker(loader, cfg.RefreshInterval, log))
	}
	return w
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
