package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/gumi-collection/internal/config"
	"github.com/MKhiriev/gumi-collection/internal/logger"
	"github.com/MKhiriev/gumi-collection/internal/utils"
	"github.com/MKhiriev/gumi-collection/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	signer *utils.Signer

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter]. The base URL is normalised from adapterCfg.HTTPAddress;
// a bare host:port gets the http scheme. When appCfg.HashKey is set every
// JSON write carries the HashSHA256 header.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		signer: utils.NewSigner(appCfg.HashKey),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// /api/auth/register and keeps the token from the Authorization header.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.Session, error) {
	return h.authenticate(ctx, "/api/auth/register", user)
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// /api/auth/login and keeps the token from the Authorization header.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Session, error) {
	return h.authenticate(ctx, "/api/auth/login", user)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (models.Session, error) {
	var session models.Session

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.User{Login: user.Login, Password: user.Password}).
		SetResult(&session).
		Post(path)
	if err != nil {
		return models.Session{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Session{}, fmt.Errorf("%s parse bearer token: %w", path, err)
	}

	h.SetToken(token)
	return session, nil
}

// Session implements [ServerAdapter].
func (h *httpServerAdapter) Session(ctx context.Context) (models.Session, error) {
	var session models.Session
	err := h.getJSON(ctx, "/api/auth/session", nil, &session)
	return session, err
}

// GetPage implements [ServerAdapter]. It GETs /api/items with offset, limit
// and count=exact when req.WithCount is set.
func (h *httpServerAdapter) GetPage(ctx context.Context, req models.PageRequest) (models.ItemPage, error) {
	query := url.Values{}
	query.Set("offset", strconv.Itoa(req.Offset))
	query.Set("limit", strconv.Itoa(req.Limit))
	if req.WithCount {
		query.Set("count", "exact")
	}

	var page models.ItemPage
	err := h.getJSON(ctx, "/api/items", query, &page)
	return page, err
}

// GetItem implements [ServerAdapter].
func (h *httpServerAdapter) GetItem(ctx context.Context, id string) (models.CollectionItem, error) {
	var item models.CollectionItem
	err := h.getJSON(ctx, "/api/items/"+url.PathEscape(id), nil, &item)
	return item, err
}

// UpsertItem implements [ServerAdapter]. It PUTs the item to /api/items.
func (h *httpServerAdapter) UpsertItem(ctx context.Context, item models.CollectionItem) (models.CollectionItem, error) {
	var saved models.CollectionItem
	err := h.sendJSON(ctx, resty.MethodPut, "/api/items", item, &saved)
	return saved, err
}

// PatchItem implements [ServerAdapter]. It PATCHes /api/items/{id}.
func (h *httpServerAdapter) PatchItem(ctx context.Context, patch models.ItemPatch) error {
	return h.sendJSON(ctx, resty.MethodPatch, "/api/items/"+url.PathEscape(patch.ID), patch, nil)
}

// DeleteAllItems implements [ServerAdapter].
func (h *httpServerAdapter) DeleteAllItems(ctx context.Context) (int64, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return 0, err
	}

	var result struct {
		Deleted int64 `json:"deleted"`
	}
	resp, err := req.SetResult(&result).Delete("/api/items")
	if err != nil {
		return 0, fmt.Errorf("delete items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}
	return result.Deleted, nil
}

// GetProfile implements [ServerAdapter].
func (h *httpServerAdapter) GetProfile(ctx context.Context) (models.Profile, error) {
	var profile models.Profile
	err := h.getJSON(ctx, "/api/profile", nil, &profile)
	return profile, err
}

// UpsertProfile implements [ServerAdapter].
func (h *httpServerAdapter) UpsertProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	var saved models.Profile
	err := h.sendJSON(ctx, resty.MethodPut, "/api/profile", profile, &saved)
	return saved, err
}

// GetFilters implements [ServerAdapter].
func (h *httpServerAdapter) GetFilters(ctx context.Context) (models.FilterFacets, error) {
	var facets models.FilterFacets
	err := h.getJSON(ctx, "/api/rpc/filters", nil, &facets)
	return facets, err
}

// GetStats implements [ServerAdapter].
func (h *httpServerAdapter) GetStats(ctx context.Context) (models.StatsBundle, error) {
	var stats models.StatsBundle
	err := h.getJSON(ctx, "/api/rpc/stats", nil, &stats)
	return stats, err
}

// ExportCSV implements [ServerAdapter].
func (h *httpServerAdapter) ExportCSV(ctx context.Context) ([]byte, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.Get("/api/items/export")
	if err != nil {
		return nil, fmt.Errorf("export request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

// UploadImage implements [ServerAdapter]. The image is sent as the "file"
// part of a multipart form.
func (h *httpServerAdapter) UploadImage(ctx context.Context, fileName string, r io.Reader) (string, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return "", err
	}

	var result struct {
		URL string `json:"url"`
	}
	resp, err := req.
		SetFileReader("file", fileName, r).
		SetResult(&result).
		Post("/api/images")
	if err != nil {
		return "", fmt.Errorf("upload image request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return result.URL, nil
}

// Version implements [ServerAdapter].
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) getJSON(ctx context.Context, path string, query url.Values, result any) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}
	if query != nil {
		req.SetQueryParamsFromValues(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("GET %s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), result); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// sendJSON marshals body once so that the signed bytes are exactly the bytes
// on the wire.
func (h *httpServerAdapter) sendJSON(ctx context.Context, method, path string, body, result any) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", path, err)
	}

	req.SetHeader("Content-Type", "application/json").SetBody(payload)
	if sign := h.signer.Sign(payload); sign != "" {
		req.SetHeader(utils.HashHeader, sign)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s request: %w", method, path, err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}
	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token), nil
}
