// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/gumi-collection/internal/engine"
	"github.com/MKhiriev/gumi-collection/internal/logger"
	"github.com/MKhiriev/gumi-collection/internal/store"
	"github.com/MKhiriev/gumi-collection/models"
)

type statsService struct {
	itemRepository store.ItemRepository
	cache          store.StatsCache

	now func() time.Time

	logger *logger.Logger
}

// NewStatsService returns a StatsService that computes bundles with
// engine.BuildStatsBundle and keeps them in cache until the next write.
func NewStatsService(itemRepository store.ItemRepository, cache store.StatsCache, logger *logger.Logger) StatsService {
	return &statsService{
		itemRepository: itemRepository,
		cache:          cache,
		now:            time.Now,
		logger:         logger,
	}
}

func (s *statsService) GetStats(ctx context.Context, userID int64) (models.StatsBundle, error) {
	log := logger.FromContext(ctx)

	cached, ok, err := s.cache.GetStats(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Str("func", "*statsService.GetStats").Int64("user_id", userID).Msg("stats cache read failed")
	}
	if ok {
		return cached, nil
	}

	items, err := s.itemRepository.GetAllItems(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*statsService.GetStats").Int64("user_id", userID).Msg("loading items failed")
		return models.StatsBundle{}, fmt.Errorf("loading items for stats: %w", err)
	}

	bundle := engine.BuildStatsBundle(items, s.now())
	if err := s.cache.SetStats(ctx, userID, bundle); err != nil {
		log.Warn().Err(err).Str("func", "*statsService.GetStats").Int64("user_id", userID).Msg("stats cache write failed")
	}

	return bundle, nil
}

func (s *statsService) GetFacets(ctx context.Context, userID int64) (models.FilterFacets, error) {
	log := logger.FromContext(ctx)

	cached, ok, err := s.cache.GetFacets(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Str("func", "*statsService.GetFacets").Int64("user_id", userID).Msg("facet cache read failed")
	}
	if ok {
		return cached, nil
	}

	facets, err := s.itemRepository.GetFacets(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*statsService.GetFacets").Int64("user_id", userID).Msg("loading facets failed")
		return models.FilterFacets{}, fmt.Errorf("loading facets: %w", err)
	}

	if err := s.cache.SetFacets(ctx, userID, facets); err != nil {
		log.Warn().Err(err).Str("func", "*statsService.GetFacets").Int64("user_id", userID).Msg("facet cache write failed")
	}

	return facets, nil
}
