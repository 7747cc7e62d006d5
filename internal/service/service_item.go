// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/gumi-collection/internal/logger"
	"github.com/MKhiriev/gumi-collection/internal/store"
	"github.com/MKhiriev/gumi-collection/models"
)

type itemService struct {
	itemRepository store.ItemRepository
	cache          store.StatsCache

	now func() time.Time

	logger *logger.Logger
}

// NewItemService returns the ItemService backed by itemRepository. Writes
// drop the owner's cached statistics.
func NewItemService(itemRepository store.ItemRepository, cache store.StatsCache, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		cache:          cache,
		now:            time.Now,
		logger:         logger,
	}
}

func (s *itemService) GetPage(ctx context.Context, req models.PageRequest) (models.ItemPage, error) {
	page, err := s.itemRepository.GetPage(ctx, req)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*itemService.GetPage").
			Int64("user_id", req.UserID).
			Int("offset", req.Offset).
			Msg("fetching item page failed")
		return models.ItemPage{}, fmt.Errorf("fetching item page: %w", err)
	}
	return page, nil
}

func (s *itemService) GetItem(ctx context.Context, userID int64, id string) (models.CollectionItem, error) {
	return s.itemRepository.GetItem(ctx, userID, id)
}

func (s *itemService) GetAllItems(ctx context.Context, userID int64) ([]models.CollectionItem, error) {
	return s.itemRepository.GetAllItems(ctx, userID)
}

// SaveItem normalises item, forces the owner to userID and upserts it.
func (s *itemService) SaveItem(ctx context.Context, userID int64, item models.CollectionItem) (models.CollectionItem, error) {
	log := logger.FromContext(ctx)

	item, err := NormalizeForSave(item, s.now())
	if err != nil {
		return models.CollectionItem{}, err
	}
	item.UserID = userID

	saved, err := s.itemRepository.UpsertItem(ctx, item)
	if err != nil {
		log.Err(err).Str("func", "*itemService.SaveItem").
			Int64("user_id", userID).
			Str("item_id", item.ID).
			Msg("saving item failed")
		return models.CollectionItem{}, fmt.Errorf("saving item: %w", err)
	}

	s.invalidate(ctx, userID)
	return saved, nil
}

func (s *itemService) PatchItem(ctx context.Context, patch models.ItemPatch) error {
	if patch.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	if err := s.itemRepository.PatchItem(ctx, patch); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*itemService.PatchItem").
			Int64("user_id", patch.UserID).
			Str("item_id", patch.ID).
			Msg("patching item failed")
		return fmt.Errorf("patching item: %w", err)
	}

	s.invalidate(ctx, patch.UserID)
	return nil
}

func (s *itemService) ClearAll(ctx context.Context, userID int64) (int64, error) {
	deleted, err := s.itemRepository.DeleteAllItems(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*itemService.ClearAll").
			Int64("user_id", userID).
			Msg("clearing items failed")
		return 0, fmt.Errorf("clearing items: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("user_id", userID).Int64("deleted", deleted).Msg("collection cleared")
	s.invalidate(ctx, userID)
	return deleted, nil
}

// invalidate drops cached statistics. A cache failure only costs freshness
// until the TTL expires, so it is logged and not returned.
func (s *itemService) invalidate(ctx context.Context, userID int64) {
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "*itemService.invalidate").
			Int64("user_id", userID).
			Msg("stats cache invalidation failed")
	}
}
