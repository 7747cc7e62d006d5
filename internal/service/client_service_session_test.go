// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/gumi-collection/internal/adapter"
	"github.com/MKhiriev/gumi-collection/internal/app"
	"github.com/MKhiriev/gumi-collection/internal/csvcodec"
	"github.com/MKhiriev/gumi-collection/internal/logger"
	"github.com/MKhiriev/gumi-collection/internal/mock"
	"github.com/MKhiriev/gumi-collection/internal/store"
	"github.com/MKhiriev/gumi-collection/internal/utils"
	"github.com/MKhiriev/gumi-collection/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type sessionFixture struct {
	svc       *sessionService
	summaries *mock.MockLocalSummaryRepository
	sessions  *mock.MockLocalSessionRepository
	adapter   *mock.MockServerAdapter
}

func newSessionFixture(t *testing.T, signedIn bool) sessionFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := sessionFixture{
		summaries: mock.NewMockLocalSummaryRepository(ctrl),
		sessions:  mock.NewMockLocalSessionRepository(ctrl),
		adapter:   mock.NewMockServerAdapter(ctrl),
	}
	f.svc = NewSessionService(f.summaries, f.sessions, f.adapter, logger.Nop()).(*sessionService)
	f.svc.now = func() time.Time { return fixedNow }
	if signedIn {
		f.svc.session = models.Session{UserID: 7, Login: "mika@example.com"}
		f.svc.signedIn = true
	}
	return f
}

func makeItems(prefix string, n int) []models.CollectionItem {
	items := make([]models.CollectionItem, n)
	for i := range items {
		items[i] = models.CollectionItem{ID: fmt.Sprintf("%s-%d", prefix, i), Name: fmt.Sprintf("%s %d", prefix, i), Quantity: 1}
	}
	return items
}

func TestSessionService_RestoreSession(t *testing.T) {
	t.Run("no stored session", func(t *testing.T) {
		f := newSessionFixture(t, false)
		f.sessions.EXPECT().LoadSession(gomock.Any()).Return(models.LocalSession{}, store.ErrLocalSessionNotFound)

		_, err := f.svc.RestoreSession(context.Background())
		require.ErrorIs(t, err, ErrNotSignedIn)
	})

	t.Run("restores token", func(t *testing.T) {
		f := newSessionFixture(t, false)
		token, err := utils.GenerateJWTToken("gumi", models.Session{UserID: 3, Login: "a"}, time.Hour, "key")
		require.NoError(t, err)
		f.sessions.EXPECT().LoadSession(gomock.Any()).Return(models.LocalSession{UserID: 3, Login: "a", Token: token.SignedString}, nil)
		f.adapter.EXPECT().SetToken(token.SignedString)

		session, err := f.svc.RestoreSession(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(3), session.UserID)

		got, ok := f.svc.Session()
		assert.True(t, ok)
		assert.Equal(t, session, got)
	})

	t.Run("drops unreadable token", func(t *testing.T) {
		f := newSessionFixture(t, false)
		f.sessions.EXPECT().LoadSession(gomock.Any()).Return(models.LocalSession{UserID: 3, Login: "a", Token: "tok"}, nil)
		f.sessions.EXPECT().ClearSession(gomock.Any()).Return(nil)

		_, err := f.svc.RestoreSession(context.Background())
		require.ErrorIs(t, err, ErrNotSignedIn)

		_, ok := f.svc.Session()
		assert.False(t, ok)
	})
}

func TestSessionService_Load(t *testing.T) {
	f := newSessionFixture(t, true)
	ctx := context.Background()
	total := 30

	f.adapter.EXPECT().GetPage(ctx, models.PageRequest{Limit: models.PageSize, WithCount: true}).
		Return(models.ItemPage{Items: makeItems("a", models.PageSize), Total: &total, HasMore: true}, nil)
	f.summaries.EXPECT().ReplaceSummaries(ctx, int64(7), gomock.Len(models.PageSize)).Return(nil)

	require.NoError(t, f.svc.Load(ctx))
	assert.Len(t, f.svc.Items(), models.PageSize)
	assert.True(t, f.svc.HasMore())
	n, ok := f.svc.Total()
	assert.True(t, ok)
	assert.Equal(t, 30, n)
}

func TestSessionService_Load_ErrorClearsCache(t *testing.T) {
	f := newSessionFixture(t, true)
	f.svc.items = makeItems("old", 2)

	f.adapter.EXPECT().GetPage(gomock.Any(), gomock.Any()).Return(models.ItemPage{}, fmt.Errorf("%w: boom", adapter.ErrBadGateway))
	f.summaries.EXPECT().ClearSummaries(gomock.Any()).Return(nil)

	err := f.svc.Load(context.Background())
	require.ErrorIs(t, err, adapter.ErrBadGateway)
	assert.Empty(t, f.svc.Items())
	assert.False(t, f.svc.HasMore())
}

func TestSessionService_Load_NotSignedIn(t *testing.T) {
	f := newSessionFixture(t, false)
	require.ErrorIs(t, f.svc.Load(context.Background()), ErrNotSignedIn)
}

func TestSessionService_LoadMore(t *testing.T) {
	f := newSessionFixture(t, true)
	ctx := context.Background()
	f.svc.items = makeItems("a", models.PageSize)
	f.svc.hasMore = true

	f.adapter.EXPECT().GetPage(ctx, models.PageRequest{Offset: models.PageSize, Limit: models.PageSize}).
		Return(models.ItemPage{Items: makeItems("b", 4)}, nil)
	f.summaries.EXPECT().AppendSummaries(ctx, int64(7), gomock.Len(4)).Return(nil)

	require.NoError(t, f.svc.LoadMore(ctx))
	assert.Len(t, f.svc.Items(), models.PageSize+4)
	assert.False(t, f.svc.HasMore())

	// exhausted: no further request
	require.NoError(t, f.svc.LoadMore(ctx))
}

func TestSessionService_LoadMore_DiscardedByNewerLoad(t *testing.T) {
	f := newSessionFixture(t, true)
	ctx := context.Background()
	f.svc.items = makeItems("a", models.PageSize)
	f.svc.hasMore = true

	fresh := makeItems("fresh", 3)
	f.adapter.EXPECT().GetPage(ctx, models.PageRequest{Offset: models.PageSize, Limit: models.PageSize}).
		DoAndReturn(func(ctx context.Context, _ models.PageRequest) (models.ItemPage, error) {
			// a refresh started while the next page was in flight
			require.NoError(t, f.svc.Load(ctx))
			return models.ItemPage{Items: makeItems("stale", models.PageSize)}, nil
		})
	f.adapter.EXPECT().GetPage(ctx, models.PageRequest{Limit: models.PageSize, WithCount: true}).
		Return(models.ItemPage{Items: fresh}, nil)
	f.summaries.EXPECT().ReplaceSummaries(ctx, int64(7), gomock.Len(3)).Return(nil)

	require.NoError(t, f.svc.LoadMore(ctx))
	assert.Equal(t, fresh, f.svc.Items())
}

func TestSessionService_TogglePin_KeepsLocalChangeOnFailure(t *testing.T) {
	f := newSessionFixture(t, true)
	f.svc.items = makeItems("a", 2)

	f.adapter.EXPECT().PatchItem(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, patch models.ItemPatch) error {
			assert.Equal(t, "a-1", patch.ID)
			require.NotNil(t, patch.IsPinned)
			assert.True(t, *patch.IsPinned)
			assert.Nil(t, patch.IsReminderEnabled)
			return fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgItemNotFound)
		})

	err := f.svc.TogglePin(context.Background(), "a-1")
	require.ErrorIs(t, err, ErrItemNotFound)
	assert.True(t, f.svc.Items()[1].IsPinned)
}

func TestSessionService_ToggleReminder(t *testing.T) {
	f := newSessionFixture(t, true)
	f.svc.items = makeItems("a", 1)

	require.ErrorIs(t, f.svc.ToggleReminder(context.Background(), "missing"), ErrItemNotFound)

	f.adapter.EXPECT().PatchItem(gomock.Any(), gomock.Any()).Return(nil)
	require.NoError(t, f.svc.ToggleReminder(context.Background(), "a-0"))
	assert.True(t, f.svc.Items()[0].IsReminderEnabled)
}

func TestSessionService_Save_Refetches(t *testing.T) {
	f := newSessionFixture(t, true)
	ctx := context.Background()

	f.adapter.EXPECT().UpsertItem(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, item models.CollectionItem) (models.CollectionItem, error) {
			assert.Equal(t, "2025-03-14", item.PurchaseDate)
			return item, nil
		})
	f.adapter.EXPECT().GetPage(ctx, gomock.Any()).Return(models.ItemPage{Items: makeItems("a", 1)}, nil)
	f.summaries.EXPECT().ReplaceSummaries(ctx, int64(7), gomock.Any()).Return(nil)

	saved, err := f.svc.Save(ctx, models.CollectionItem{Name: "Can badge"})
	require.NoError(t, err)
	assert.Equal(t, "Can badge", saved.Name)
}

func TestSessionService_Save_BlankName(t *testing.T) {
	f := newSessionFixture(t, true)
	_, err := f.svc.Save(context.Background(), models.CollectionItem{Name: "  "})
	require.ErrorIs(t, err, ErrItemNameRequired)
}

func TestSessionService_Import_CountsFailures(t *testing.T) {
	f := newSessionFixture(t, true)
	ctx := context.Background()
	doc := csvcodec.Template() + "\n\"A\",\"谷子\",\"IP\",\"C\"\n\"B\"\n"

	gomock.InOrder(
		f.adapter.EXPECT().UpsertItem(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, item models.CollectionItem) (models.CollectionItem, error) { return item, nil }),
		f.adapter.EXPECT().UpsertItem(ctx, gomock.Any()).Return(models.CollectionItem{}, adapter.ErrInternalServerError),
	)
	f.adapter.EXPECT().GetPage(ctx, gomock.Any()).Return(models.ItemPage{}, nil)
	f.summaries.EXPECT().ClearSummaries(ctx).Return(nil)

	result, err := f.svc.Import(ctx, strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, models.ImportResult{Applied: 1, Failed: 1}, result)
}

func TestSessionService_Import_NoRows(t *testing.T) {
	f := newSessionFixture(t, true)
	_, err := f.svc.Import(context.Background(), strings.NewReader(csvcodec.Template()))
	require.ErrorIs(t, err, csvcodec.ErrNoValidRows)
}

func TestSessionService_Export(t *testing.T) {
	f := newSessionFixture(t, true)

	var buf bytes.Buffer
	require.ErrorIs(t, f.svc.Export(&buf), csvcodec.ErrNothingToExport)

	f.svc.items = makeItems("a", 2)
	require.NoError(t, f.svc.Export(&buf))
	assert.True(t, strings.HasPrefix(buf.String(), csvcodec.BOM))
	assert.Equal(t, "gumi_collection_2025-03-14.csv", f.svc.ExportFileName())
}

func TestSessionService_ExportAll(t *testing.T) {
	f := newSessionFixture(t, true)
	f.adapter.EXPECT().ExportCSV(gomock.Any()).Return([]byte("csv-body"), nil)

	var buf bytes.Buffer
	require.NoError(t, f.svc.ExportAll(context.Background(), &buf))
	assert.Equal(t, "csv-body", buf.String())
}

func TestSessionService_Profile(t *testing.T) {
	t.Run("provisions on first access", func(t *testing.T) {
		f := newSessionFixture(t, true)
		f.adapter.EXPECT().GetProfile(gomock.Any()).Return(models.Profile{}, fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgProfileNotFound))
		f.adapter.EXPECT().UpsertProfile(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p models.Profile) (models.Profile, error) {
				assert.Equal(t, "mika", p.Name)
				assert.Equal(t, models.DefaultProfileBio, p.Bio)
				return p, nil
			})

		p, err := f.svc.Profile(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "mika", p.Name)
	})

	t.Run("fallbacks on failure", func(t *testing.T) {
		f := newSessionFixture(t, true)
		f.adapter.EXPECT().GetProfile(gomock.Any()).Return(models.Profile{}, adapter.ErrInternalServerError)

		p, err := f.svc.Profile(context.Background())
		require.Error(t, err)
		assert.Equal(t, models.DefaultProfileName, p.Name)
		assert.Equal(t, models.EmptyProfileBio, p.Bio)
	})

	t.Run("existing profile", func(t *testing.T) {
		f := newSessionFixture(t, true)
		f.adapter.EXPECT().GetProfile(gomock.Any()).Return(models.Profile{Name: "Mika"}, nil)

		p, err := f.svc.Profile(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Mika", p.Name)
		assert.Equal(t, models.EmptyProfileBio, p.Bio)
	})
}

func TestSessionService_Facets(t *testing.T) {
	t.Run("server lists", func(t *testing.T) {
		f := newSessionFixture(t, true)
		want := models.FilterFacets{IPs: []string{"Vocaloid"}, Characters: []string{"Miku"}}
		f.adapter.EXPECT().GetFilters(gomock.Any()).Return(want, nil)

		got, err := f.svc.Facets(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("falls back to loaded items", func(t *testing.T) {
		f := newSessionFixture(t, true)
		f.svc.items = []models.CollectionItem{
			{ID: "1", IP: "Blue Lock", Character: "Isagi"},
			{ID: "2", IP: "Blue Lock", Character: "Bachira"},
		}
		f.adapter.EXPECT().GetFilters(gomock.Any()).Return(models.FilterFacets{}, fmt.Errorf("%w: down", adapter.ErrBadGateway))

		got, err := f.svc.Facets(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"Blue Lock"}, got.IPs)
		assert.Equal(t, []string{"Isagi", "Bachira"}, got.Characters)
	})

	t.Run("expired token is reported", func(t *testing.T) {
		f := newSessionFixture(t, true)
		f.adapter.EXPECT().GetFilters(gomock.Any()).Return(models.FilterFacets{}, fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgTokenIsExpired))

		_, err := f.svc.Facets(context.Background())
		require.ErrorIs(t, err, ErrTokenIsExpired)
	})
}

func TestSessionService_ClearAll(t *testing.T) {
	f := newSessionFixture(t, true)
	ctx := context.Background()
	f.adapter.EXPECT().DeleteAllItems(ctx).Return(int64(5), nil)
	f.adapter.EXPECT().GetPage(ctx, gomock.Any()).Return(models.ItemPage{}, nil)
	f.summaries.EXPECT().ClearSummaries(ctx).Return(nil)

	n, err := f.svc.ClearAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
}

func TestSessionService_SignOut(t *testing.T) {
	f := newSessionFixture(t, true)
	f.svc.items = makeItems("a", 3)
	ctx := context.Background()

	f.adapter.EXPECT().SetToken("")
	f.summaries.EXPECT().ClearSummaries(ctx).Return(nil)
	f.sessions.EXPECT().ClearSession(ctx).Return(errors.New("disk full"))

	err := f.svc.SignOut(ctx)
	require.Error(t, err)

	_, ok := f.svc.Session()
	assert.False(t, ok)
	assert.Empty(t, f.svc.Items())
}
