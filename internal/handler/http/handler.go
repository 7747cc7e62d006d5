package http

import (
	"time"

	"github.com/MKhiriev/gumi-collection/internal/config"
	"github.com/MKhiriev/gumi-collection/internal/logger"
	"github.com/MKhiriev/gumi-collection/internal/service"
	"github.com/MKhiriev/gumi-collection/internal/utils"
)

const defaultMaxUploadBytes int64 = 10 << 20

type Handler struct {
	services *service.Services
	signer   *utils.Signer

	corsOrigins    []string
	maxUploadBytes int64

	now func() time.Time

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	maxUpload := cfg.Storage.Images.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = defaultMaxUploadBytes
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		signer:         utils.NewSigner(cfg.App.HashKey),
		corsOrigins:    cfg.Server.CORSOrigins,
		maxUploadBytes: maxUpload,
		now:            time.Now,
		logger:         logger,
	}
}
