// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/gumi-collection/internal/logger"
)

// RefreshWorker periodically re-runs Load so the list picks up changes made
// from other devices. Overlapping loads are resolved by the session: the last
// started one wins.
type RefreshWorker struct {
	loader   Loader
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewRefreshWorker(loader Loader, interval time.Duration, log *logger.Logger) *RefreshWorker {
	return &RefreshWorker{
		loader:   loader,
		interval: interval,
		logger:   log,
	}
}

// Run is a no-op if the worker is already running.
func (w *RefreshWorker) Run(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.done != nil {
		return
	}

	ctx, w.cancel = context.WithCancel(ctx)
	w.done = make(chan struct{})
	go w.loop(ctx, w.done)
}

func (w *RefreshWorker) Stop() {
	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.cancel, w.done = nil, nil
	w.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (w *RefreshWorker) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.loader.Load(ctx); err != nil && ctx.Err() == nil {
				w.logger.Err(err).Str("func", "RefreshWorker.loop").Msg("periodic refresh failed")
			}
		}
	}
}
