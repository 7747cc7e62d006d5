package service

import (
	"context"
	"io"

	"github.com/MKhiriev/gumi-collection/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers accounts, checks credentials and issues session
// tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ItemService owns the collection items of an account. Every write is
// normalised with NormalizeForSave and invalidates the cached statistics.
type ItemService interface {
	GetPage(ctx context.Context, req models.PageRequest) (models.ItemPage, error)
	GetItem(ctx context.Context, userID int64, id string) (models.CollectionItem, error)
	GetAllItems(ctx context.Context, userID int64) ([]models.CollectionItem, error)

	// SaveItem inserts or replaces item on behalf of userID.
	SaveItem(ctx context.Context, userID int64, item models.CollectionItem) (models.CollectionItem, error)
	PatchItem(ctx context.Context, patch models.ItemPatch) error
	ClearAll(ctx context.Context, userID int64) (int64, error)
}

// ItemServiceWrapper defines middleware composition for ItemService.
// Implementations wrap an existing ItemService to add behavior such as
// validation.
type ItemServiceWrapper interface {
	Wrap(ItemService) ItemService
}

// ProfileService reads and writes the singleton profile of an account.
type ProfileService interface {
	// GetProfile returns store.ErrProfileNotFound (wrapped) when the account
	// has no profile yet.
	GetProfile(ctx context.Context, userID int64) (models.Profile, error)
	UpsertProfile(ctx context.Context, profile models.Profile) (models.Profile, error)
}

// StatsService serves the statistics bundle and the filter facets, backed by
// the stats cache.
type StatsService interface {
	GetStats(ctx context.Context, userID int64) (models.StatsBundle, error)
	GetFacets(ctx context.Context, userID int64) (models.FilterFacets, error)
}

// ImageService turns uploaded images into inline data URLs.
type ImageService interface {
	ToDataURL(ctx context.Context, r io.Reader) (string, error)
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
