package store

import (
	"context"

	"github.com/MKhiriev/gumi-collection/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalSummaryRepository is the client-side summary cache. It mirrors the
// loaded list in the same order so the next start can paint before the
// first fetch completes.
type LocalSummaryRepository interface {
	ReplaceSummaries(ctx context.Context, userID int64, summaries []models.ItemSummary) error
	AppendSummaries(ctx context.Context, userID int64, summaries []models.ItemSummary) error
	LoadSummaries(ctx context.Context, userID int64) ([]models.ItemSummary, error)
	ClearSummaries(ctx context.Context) error
}

// LocalSessionRepository persists the signed-in session between runs.
type LocalSessionRepository interface {
	SaveSession(ctx context.Context, session models.LocalSession) error
	LoadSession(ctx context.Context) (models.LocalSession, error)
	ClearSession(ctx context.Context) error
}
