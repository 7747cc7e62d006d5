// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/gumi-collection/internal/config"
	"github.com/MKhiriev/gumi-collection/internal/logger"
	"github.com/MKhiriev/gumi-collection/internal/utils"
	"github.com/MKhiriev/gumi-collection/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashKey = "testhashkey"

// newTestAdapter returns an adapter pointed at serverURL with a token set.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}
	appCfg := config.ClientApp{HashKey: testHashKey}

	a, err := NewHTTPServerAdapter(adapterCfg, appCfg, logger.Nop())
	require.NoError(t, err)

	h := a.(*httpServerAdapter)
	h.SetToken("test-token")
	return h
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── Auth ────────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		var user models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
		assert.Equal(t, "mika@example.com", user.Login)
		assert.Equal(t, "pw", user.Password)

		w.Header().Set("Authorization", "Bearer issued.token.sig")
		writeJSON(t, w, models.Session{UserID: 5, Login: user.Login})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("")
	session, err := a.Register(context.Background(), models.User{Login: "mika@example.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, models.Session{UserID: 5, Login: "mika@example.com"}, session)
	assert.Equal(t, "issued.token.sig", a.Token())
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "login already exists", http.StatusConflict)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.User{Login: "alice", Password: "pw"})

	require.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "login already exists")
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		http.Error(w, "invalid login/password", http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.User{Login: "alice", Password: "bad"})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogin_MissingBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, models.Session{UserID: 1})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.User{Login: "alice", Password: "pw"})

	assert.Error(t, err)
}

func TestSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		writeJSON(t, w, models.Session{UserID: 9, Login: "sora"})
	}))
	defer srv.Close()

	session, err := newTestAdapter(t, srv.URL).Session(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(9), session.UserID)
}

func TestAuthedRequest_NoToken(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:1")
	a.SetToken("  ")

	_, err := a.GetStats(context.Background())
	assert.ErrorIs(t, err, ErrNoToken)
}

// ── Items ───────────────────────────────────────────────────────────────────

func TestGetPage(t *testing.T) {
	total := 30
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/items", r.URL.Path)
		assert.Equal(t, "21", r.URL.Query().Get("offset"))
		assert.Equal(t, "21", r.URL.Query().Get("limit"))
		assert.Equal(t, "exact", r.URL.Query().Get("count"))

		writeJSON(t, w, models.ItemPage{
			Items:   []models.CollectionItem{{ID: "a", Name: "Badge", Price: decimal.NewFromInt(12)}},
			Total:   &total,
			HasMore: true,
		})
	}))
	defer srv.Close()

	page, err := newTestAdapter(t, srv.URL).GetPage(context.Background(), models.PageRequest{Offset: 21, Limit: 21, WithCount: true})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.True(t, page.Items[0].Price.Equal(decimal.NewFromInt(12)))
	require.NotNil(t, page.Total)
	assert.Equal(t, 30, *page.Total)
	assert.True(t, page.HasMore)
}

func TestGetPage_NoCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("count"))
		writeJSON(t, w, models.ItemPage{})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetPage(context.Background(), models.PageRequest{Limit: 21})
	require.NoError(t, err)
}

func TestGetItem_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/items/missing", r.URL.Path)
		http.Error(w, "item not found", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetItem(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpsertItem_SignsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		assert.True(t, utils.NewSigner(testHashKey).Verify(body, r.Header.Get(utils.HashHeader)))

		var item models.CollectionItem
		require.NoError(t, json.Unmarshal(body, &item))
		item.ID = "server-id"
		writeJSON(t, w, item)
	}))
	defer srv.Close()

	saved, err := newTestAdapter(t, srv.URL).UpsertItem(context.Background(), models.CollectionItem{Name: "Plush"})
	require.NoError(t, err)
	assert.Equal(t, "server-id", saved.ID)
	assert.Equal(t, "Plush", saved.Name)
}

func TestUpsertItem_NoSignatureWithoutKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(utils.HashHeader))
		writeJSON(t, w, models.CollectionItem{})
	}))
	defer srv.Close()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: time.Second}, config.ClientApp{}, logger.Nop())
	require.NoError(t, err)
	a.SetToken("t")

	_, err = a.UpsertItem(context.Background(), models.CollectionItem{Name: "x"})
	require.NoError(t, err)
}

func TestPatchItem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/items/abc", r.URL.Path)

		var patch models.ItemPatch
		require.NoError(t, json.NewDecoder(r.Body).Decode(&patch))
		require.NotNil(t, patch.IsPinned)
		assert.True(t, *patch.IsPinned)
		assert.Nil(t, patch.IsReminderEnabled)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	pinned := true
	err := newTestAdapter(t, srv.URL).PatchItem(context.Background(), models.ItemPatch{ID: "abc", IsPinned: &pinned})
	require.NoError(t, err)
}

func TestPatchItem_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "integrity check failed", http.StatusBadRequest)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).PatchItem(context.Background(), models.ItemPatch{ID: "abc"})
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestDeleteAllItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		writeJSON(t, w, map[string]int64{"deleted": 4})
	}))
	defer srv.Close()

	n, err := newTestAdapter(t, srv.URL).DeleteAllItems(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestExportCSV(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/items/export", r.URL.Path)
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		_, _ = w.Write([]byte("\ufeff\"名称\"\n"))
	}))
	defer srv.Close()

	body, err := newTestAdapter(t, srv.URL).ExportCSV(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "\ufeff"))
}

// ── Profile, RPC, images ────────────────────────────────────────────────────

func TestGetProfile_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "profile not found", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetProfile(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpsertProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/profile", r.URL.Path)
		var p models.Profile
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		writeJSON(t, w, p)
	}))
	defer srv.Close()

	p, err := newTestAdapter(t, srv.URL).UpsertProfile(context.Background(), models.Profile{Name: "mika"})
	require.NoError(t, err)
	assert.Equal(t, "mika", p.Name)
}

func TestGetFiltersAndStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/rpc/filters":
			writeJSON(t, w, models.FilterFacets{IPs: []string{"Genshin"}, Characters: []string{"Paimon"}})
		case "/api/rpc/stats":
			writeJSON(t, w, models.StatsBundle{OverviewAll: models.NewOverviewPeriod(decimal.NewFromInt(100), decimal.NewFromInt(30))})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	facets, err := a.GetFilters(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Genshin"}, facets.IPs)

	stats, err := a.GetStats(context.Background())
	require.NoError(t, err)
	assert.True(t, stats.OverviewAll.Net.Equal(decimal.NewFromInt(70)))
}

func TestUploadImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		data, _ := io.ReadAll(file)
		assert.Equal(t, "cover.png", header.Filename)
		assert.Equal(t, "png-bytes", string(data))

		writeJSON(t, w, map[string]string{"url": "data:image/jpeg;base64,AAAA"})
	}))
	defer srv.Close()

	url, err := newTestAdapter(t, srv.URL).UploadImage(context.Background(), "cover.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "data:image/jpeg;base64,AAAA", url)
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte("v1.2.3\n"))
	}))
	defer srv.Close()

	v, err := newTestAdapter(t, srv.URL).Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v1.2.3", v)
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", tt.status)
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).GetStats(context.Background())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
