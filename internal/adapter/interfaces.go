// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's connection to the gumi-collection
// record store.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the transport. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/gumi-collection/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the record store. Implementations
// handle serialisation, the bearer token and request signing.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every authenticated request.
	SetToken(token string)

	// Token returns the current bearer token or "".
	Token() string

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, user models.User) (models.Session, error)

	// Login authenticates an existing account and stores the issued token.
	Login(ctx context.Context, user models.User) (models.Session, error)

	// Session returns the account the current token belongs to.
	Session(ctx context.Context) (models.Session, error)

	// GetPage fetches a range of items, pinned first, newest purchase first.
	GetPage(ctx context.Context, req models.PageRequest) (models.ItemPage, error)

	// GetItem fetches one item by id.
	GetItem(ctx context.Context, id string) (models.CollectionItem, error)

	// UpsertItem inserts or replaces an item and returns the stored version.
	UpsertItem(ctx context.Context, item models.CollectionItem) (models.CollectionItem, error)

	// PatchItem updates the pin and reminder flags of one item.
	PatchItem(ctx context.Context, patch models.ItemPatch) error

	// DeleteAllItems removes every item of the account and returns the count.
	DeleteAllItems(ctx context.Context) (int64, error)

	// GetProfile returns [ErrNotFound] (wrapped) when no profile exists yet.
	GetProfile(ctx context.Context) (models.Profile, error)

	// UpsertProfile creates or replaces the profile.
	UpsertProfile(ctx context.Context, profile models.Profile) (models.Profile, error)

	// GetFilters returns the distinct IPs and characters of the account.
	GetFilters(ctx context.Context) (models.FilterFacets, error)

	// GetStats returns the precomputed statistics bundle.
	GetStats(ctx context.Context) (models.StatsBundle, error)

	// ExportCSV downloads the full collection as CSV.
	ExportCSV(ctx context.Context) ([]byte, error)

	// UploadImage converts an image to an inline data URL on the server.
	UploadImage(ctx context.Context, fileName string, r io.Reader) (string, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
