// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/gumi-collection/internal/adapter"
	"github.com/MKhiriev/gumi-collection/internal/csvcodec"
	"github.com/MKhiriev/gumi-collection/internal/engine"
	"github.com/MKhiriev/gumi-collection/internal/logger"
	"github.com/MKhiriev/gumi-collection/internal/store"
	"github.com/MKhiriev/gumi-collection/internal/utils"
	"github.com/MKhiriev/gumi-collection/models"
)

type sessionService struct {
	summaries store.LocalSummaryRepository
	sessions  store.LocalSessionRepository
	adapter   adapter.ServerAdapter

	mu          sync.Mutex
	session     models.Session
	signedIn    bool
	items       []models.CollectionItem
	total       *int
	hasMore     bool
	loadingMore bool
	// generation is bumped by every Load so that slower, older responses
	// are dropped: the last started full refetch wins.
	generation uint64

	now func() time.Time

	logger *logger.Logger
}

// NewSessionService returns the client SessionService. It starts signed out.
func NewSessionService(
	summaries store.LocalSummaryRepository,
	sessions store.LocalSessionRepository,
	serverAdapter adapter.ServerAdapter,
	logger *logger.Logger,
) SessionService {
	return &sessionService{
		summaries: summaries,
		sessions:  sessions,
		adapter:   serverAdapter,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *sessionService) RestoreSession(ctx context.Context) (models.Session, error) {
	local, err := s.sessions.LoadSession(ctx)
	if err != nil {
		if errors.Is(err, store.ErrLocalSessionNotFound) {
			return models.Session{}, ErrNotSignedIn
		}
		return models.Session{}, fmt.Errorf("loading local session: %w", err)
	}

	claims, err := utils.ParseSessionFromJWT(local.Token)
	if err != nil || claims.UserID != local.UserID {
		s.logger.Warn().Err(err).Int64("user_id", local.UserID).Msg("stored token does not match the stored account, dropping it")
		if clearErr := s.sessions.ClearSession(ctx); clearErr != nil {
			s.logger.Err(clearErr).Str("func", "sessionService.RestoreSession").Msg("clearing stored session failed")
		}
		return models.Session{}, ErrNotSignedIn
	}

	s.adapter.SetToken(local.Token)
	session := models.Session{UserID: local.UserID, Login: local.Login}

	s.mu.Lock()
	if s.session.UserID != session.UserID {
		s.resetLocked()
	}
	s.session = session
	s.signedIn = true
	s.mu.Unlock()

	s.logger.Info().Int64("user_id", session.UserID).Str("login", session.Login).Msg("session restored")
	return session, nil
}

func (s *sessionService) Session() (models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session, s.signedIn
}

func (s *sessionService) CachedSummaries(ctx context.Context) ([]models.ItemSummary, error) {
	session, ok := s.Session()
	if !ok {
		return nil, ErrNotSignedIn
	}
	return s.summaries.LoadSummaries(ctx, session.UserID)
}

func (s *sessionService) Load(ctx context.Context) error {
	session, ok := s.Session()
	if !ok {
		return ErrNotSignedIn
	}

	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	page, err := s.adapter.GetPage(ctx, models.PageRequest{Offset: 0, Limit: models.PageSize, WithCount: true})
	if err != nil {
		err = mapAdapterError(err)
		s.logger.Err(err).Str("func", "*sessionService.Load").Int64("user_id", session.UserID).Msg("loading first page failed")
	}

	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return err
	}
	s.items = page.Items
	s.total = page.Total
	s.hasMore = err == nil && page.HasMore
	s.loadingMore = false
	s.mu.Unlock()

	if err != nil || len(page.Items) == 0 {
		if cerr := s.summaries.ClearSummaries(ctx); cerr != nil {
			s.logger.Err(cerr).Str("func", "*sessionService.Load").Msg("clearing summary cache failed")
		}
		return err
	}

	if cerr := s.summaries.ReplaceSummaries(ctx, session.UserID, summariesOf(page.Items)); cerr != nil {
		s.logger.Err(cerr).Str("func", "*sessionService.Load").Msg("replacing summary cache failed")
	}
	return nil
}

func (s *sessionService) LoadMore(ctx context.Context) error {
	s.mu.Lock()
	if !s.signedIn || !s.hasMore || s.loadingMore {
		s.mu.Unlock()
		return nil
	}
	s.loadingMore = true
	gen := s.generation
	offset := len(s.items)
	userID := s.session.UserID
	s.mu.Unlock()

	page, err := s.adapter.GetPage(ctx, models.PageRequest{Offset: offset, Limit: models.PageSize})

	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return nil
	}
	s.loadingMore = false
	if err != nil {
		s.mu.Unlock()
		err = mapAdapterError(err)
		s.logger.Err(err).Str("func", "*sessionService.LoadMore").Int("offset", offset).Msg("loading next page failed")
		return err
	}
	s.items = append(s.items, page.Items...)
	if len(page.Items) < models.PageSize {
		s.hasMore = false
	}
	s.mu.Unlock()

	if len(page.Items) > 0 {
		if cerr := s.summaries.AppendSummaries(ctx, userID, summariesOf(page.Items)); cerr != nil {
			s.logger.Err(cerr).Str("func", "*sessionService.LoadMore").Msg("appending summary cache failed")
		}
	}
	return nil
}

func (s *sessionService) Items() []models.CollectionItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

func (s *sessionService) HasMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasMore
}

func (s *sessionService) Total() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.total == nil {
		return 0, false
	}
	return *s.total, true
}

func (s *sessionService) TogglePin(ctx context.Context, id string) error {
	return s.toggle(ctx, id, func(item *models.CollectionItem) models.ItemPatch {
		item.IsPinned = !item.IsPinned
		pinned := item.IsPinned
		return models.ItemPatch{ID: id, IsPinned: &pinned}
	})
}

func (s *sessionService) ToggleReminder(ctx context.Context, id string) error {
	return s.toggle(ctx, id, func(item *models.CollectionItem) models.ItemPatch {
		item.IsReminderEnabled = !item.IsReminderEnabled
		enabled := item.IsReminderEnabled
		return models.ItemPatch{ID: id, IsReminderEnabled: &enabled}
	})
}

// toggle flips a flag locally, then sends the patch. The local change stays
// even when the server rejects it; the next refetch reconciles.
func (s *sessionService) toggle(ctx context.Context, id string, flip func(*models.CollectionItem) models.ItemPatch) error {
	s.mu.Lock()
	i := slices.IndexFunc(s.items, func(item models.CollectionItem) bool { return item.ID == id })
	if i < 0 {
		s.mu.Unlock()
		return ErrItemNotFound
	}
	patch := flip(&s.items[i])
	s.mu.Unlock()

	if err := s.adapter.PatchItem(ctx, patch); err != nil {
		err = mapAdapterError(err)
		s.logger.Err(err).Str("func", "*sessionService.toggle").Str("item_id", id).Msg("patching item failed")
		return err
	}
	return nil
}

func (s *sessionService) Save(ctx context.Context, item models.CollectionItem) (models.CollectionItem, error) {
	normalized, err := NormalizeForSave(item, s.now())
	if err != nil {
		return item, err
	}

	saved, err := s.adapter.UpsertItem(ctx, normalized)
	if err != nil {
		err = mapAdapterError(err)
		s.logger.Err(err).Str("func", "*sessionService.Save").Str("item_id", normalized.ID).Msg("saving item failed")
	}

	if lerr := s.Load(ctx); lerr != nil && err == nil {
		s.logger.Warn().Err(lerr).Str("func", "*sessionService.Save").Msg("refetch after save failed")
	}
	if err != nil {
		return normalized, err
	}
	return saved, nil
}

// Import is deliberately not atomic: rows written before a failure stay.
func (s *sessionService) Import(ctx context.Context, r io.Reader) (models.ImportResult, error) {
	if _, ok := s.Session(); !ok {
		return models.ImportResult{}, ErrNotSignedIn
	}

	items, err := csvcodec.Import(r, csvcodec.ImportOptions{Now: s.now})
	if err != nil {
		return models.ImportResult{}, err
	}

	var result models.ImportResult
	for _, item := range items {
		normalized, err := NormalizeForSave(item, s.now())
		if err == nil {
			_, err = s.adapter.UpsertItem(ctx, normalized)
		}
		if err != nil {
			result.Failed++
			s.logger.Warn().Err(err).Str("func", "*sessionService.Import").Str("name", item.Name).Msg("imported row not saved")
			continue
		}
		result.Applied++
	}

	s.logger.Info().Int("applied", result.Applied).Int("failed", result.Failed).Msg("import finished")

	if err := s.Load(ctx); err != nil {
		s.logger.Warn().Err(err).Str("func", "*sessionService.Import").Msg("refetch after import failed")
	}
	return result, nil
}

func (s *sessionService) Export(w io.Writer) error {
	items := s.Items()
	if len(items) == 0 {
		return csvcodec.ErrNothingToExport
	}
	return csvcodec.Export(w, items)
}

func (s *sessionService) ExportFileName() string {
	return csvcodec.ExportFileName(s.now())
}

func (s *sessionService) ExportAll(ctx context.Context, w io.Writer) error {
	data, err := s.adapter.ExportCSV(ctx)
	if err != nil {
		return mapAdapterError(err)
	}
	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%w: %w", csvcodec.ErrWritingOutput, err)
	}
	return nil
}

func (s *sessionService) ClearAll(ctx context.Context) (int64, error) {
	deleted, err := s.adapter.DeleteAllItems(ctx)
	if err != nil {
		err = mapAdapterError(err)
		s.logger.Err(err).Str("func", "*sessionService.ClearAll").Msg("clearing collection failed")
	}

	if lerr := s.Load(ctx); lerr != nil && err == nil {
		s.logger.Warn().Err(lerr).Str("func", "*sessionService.ClearAll").Msg("refetch after clear failed")
	}
	return deleted, err
}

// Profile provisions the default profile when the server has none. Other
// failures return the display placeholders together with the error.
func (s *sessionService) Profile(ctx context.Context) (models.Profile, error) {
	session, ok := s.Session()
	if !ok {
		return models.Profile{}.WithDisplayFallbacks(), ErrNotSignedIn
	}

	profile, err := s.adapter.GetProfile(ctx)
	if err == nil {
		return profile.WithDisplayFallbacks(), nil
	}
	if !errors.Is(err, adapter.ErrNotFound) {
		err = mapAdapterError(err)
		s.logger.Err(err).Str("func", "*sessionService.Profile").Msg("fetching profile failed")
		return models.Profile{}.WithDisplayFallbacks(), err
	}

	provisioned := models.NewDefaultProfile(session.UserID, session.Login)
	saved, err := s.adapter.UpsertProfile(ctx, provisioned)
	if err != nil {
		err = mapAdapterError(err)
		s.logger.Err(err).Str("func", "*sessionService.Profile").Msg("provisioning profile failed")
		return provisioned, err
	}
	return saved.WithDisplayFallbacks(), nil
}

func (s *sessionService) SaveProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	saved, err := s.adapter.UpsertProfile(ctx, profile)
	if err != nil {
		return profile, mapAdapterError(err)
	}
	return saved, nil
}

func (s *sessionService) Stats(ctx context.Context) (models.StatsBundle, error) {
	stats, err := s.adapter.GetStats(ctx)
	return stats, mapAdapterError(err)
}

// Facets asks the server for the filter lists. When the server cannot answer
// the lists are derived from the loaded page instead.
func (s *sessionService) Facets(ctx context.Context) (models.FilterFacets, error) {
	facets, err := s.adapter.GetFilters(ctx)
	if err == nil {
		return facets, nil
	}
	if errors.Is(err, adapter.ErrNoToken) || errors.Is(err, adapter.ErrUnauthorized) {
		return models.FilterFacets{}, mapAdapterError(err)
	}

	s.logger.Warn().Err(err).Str("func", "sessionService.Facets").Msg("using facets of loaded items")
	return engine.FacetValues(s.Items()), nil
}

func (s *sessionService) UploadImage(ctx context.Context, fileName string, r io.Reader) (string, error) {
	url, err := s.adapter.UploadImage(ctx, fileName, r)
	return url, mapAdapterError(err)
}

func (s *sessionService) SignOut(ctx context.Context) error {
	s.adapter.SetToken("")

	s.mu.Lock()
	s.resetLocked()
	s.session = models.Session{}
	s.signedIn = false
	s.generation++
	s.mu.Unlock()

	return errors.Join(
		s.summaries.ClearSummaries(ctx),
		s.sessions.ClearSession(ctx),
	)
}

func (s *sessionService) resetLocked() {
	s.items = nil
	s.total = nil
	s.hasMore = false
	s.loadingMore = false
}

func summariesOf(items []models.CollectionItem) []models.ItemSummary {
	out := make([]models.ItemSummary, len(items))
	for i, item := range items {
		out[i] = item.Summary()
	}
	return out
}
