package service

import (
	"fmt"

	"github.com/MKhiriev/gumi-collection/internal/config"
	"github.com/MKhiriev/gumi-collection/internal/crypto"
	"github.com/MKhiriev/gumi-collection/internal/logger"
	"github.com/MKhiriev/gumi-collection/internal/store"
)

type Services struct {
	AuthService    AuthService
	ItemService    ItemService
	ProfileService ProfileService
	StatsService   StatsService
	ImageService   ImageService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	itemService := NewItemValidationService().Wrap(
		NewItemService(storages.ItemRepository, storages.StatsCache, logger),
	)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, crypto.NewPasswordHasher(), cfg.App, logger),
		ItemService:    itemService,
		ProfileService: NewProfileService(storages.ProfileRepository, logger),
		StatsService:   NewStatsService(storages.ItemRepository, storages.StatsCache, logger),
		ImageService:   NewImageService(cfg.Storage.Images, logger),
		AppInfoService: appInfo,
	}, nil
}
