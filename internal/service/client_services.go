package service

import (
	"github.com/MKhiriev/gumi-collection/internal/adapter"
	"github.com/MKhiriev/gumi-collection/internal/logger"
	"github.com/MKhiriev/gumi-collection/internal/store"
)

type ClientServices struct {
	AuthService    ClientAuthService
	SessionService SessionService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:    NewClientAuthService(localStore.SessionRepository, serverAdapter, logger),
		SessionService: NewSessionService(localStore.SummaryRepository, localStore.SessionRepository, serverAdapter, logger),
	}
}
