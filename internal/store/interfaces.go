package store

import (
	"context"

	"github.com/MKhiriev/gumi-collection/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists record store accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// ProfileRepository persists the singleton profile of each account.
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID int64) (models.Profile, error)
	UpsertProfile(ctx context.Context, profile models.Profile) (models.Profile, error)
}

// ItemRepository persists collection items. Every method is scoped to the
// owner id carried by its arguments.
type ItemRepository interface {
	// GetPage returns items ordered pinned first, then by purchase date and
	// creation time, newest first.
	GetPage(ctx context.Context, req models.PageRequest) (models.ItemPage, error)
	GetItem(ctx context.Context, userID int64, id string) (models.CollectionItem, error)
	GetAllItems(ctx context.Context, userID int64) ([]models.CollectionItem, error)
	UpsertItem(ctx context.Context, item models.CollectionItem) (models.CollectionItem, error)
	PatchItem(ctx context.Context, patch models.ItemPatch) error
	DeleteAllItems(ctx context.Context, userID int64) (int64, error)
	GetFacets(ctx context.Context, userID int64) (models.FilterFacets, error)
}

// StatsCache keeps derived read models of a user's collection for a bounded
// time. Misses are reported with ok == false.
type StatsCache interface {
	GetStats(ctx context.Context, userID int64) (models.StatsBundle, bool, error)
	SetStats(ctx context.Context, userID int64, stats models.StatsBundle) error
	GetFacets(ctx context.Context, userID int64) (models.FilterFacets, bool, error)
	SetFacets(ctx context.Context, userID int64, facets models.FilterFacets) error
	Invalidate(ctx context.Context, userID int64) error
}
