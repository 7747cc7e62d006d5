package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/gumi-collection/internal/config"
	"github.com/MKhiriev/gumi-collection/internal/logger"
)

// Storages groups the record store repositories.
type Storages struct {
	UserRepository    UserRepository
	ProfileRepository ProfileRepository
	ItemRepository    ItemRepository
	StatsCache        StatsCache

	closers []func() error
}

// NewStorages connects to PostgreSQL and Redis, applies the migrations and
// wires every repository.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	cache, closeCache, err := NewStatsCache(ctx, cfg.Redis, log)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("redis connection error: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		ProfileRepository: NewProfileRepository(db, log),
		ItemRepository:    NewItemRepository(db, log),
		StatsCache:        cache,
		closers:           []func() error{closeCache, db.Close},
	}, nil
}

// Close releases the database and cache connections.
func (s *Storages) Close() error {
	var errs error
	for _, c := range s.closers {
		errs = errors.Join(errs, c())
	}
	return errs
}
