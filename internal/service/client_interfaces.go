package service

import (
	"context"
	"io"

	"github.com/MKhiriev/gumi-collection/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService signs the terminal client in. A successful Register or
// Login stores the token in the adapter and persists the session locally so
// that the next run can skip the login screen.
type ClientAuthService interface {
	Register(ctx context.Context, user models.User) (models.Session, error)
	Login(ctx context.Context, user models.User) (models.Session, error)
}

// SessionService is the process-local view of the signed-in collection.
//
// The list is a prefix of the server ordering (pinned first, newest purchase
// first) that grows one page at a time. Writes go to the server and are
// followed by a full refetch; pin and reminder toggles change the local copy
// first and are not rolled back when the server rejects them.
type SessionService interface {
	// RestoreSession activates the persisted session, if any. It returns
	// ErrNotSignedIn when nobody has signed in on this machine.
	RestoreSession(ctx context.Context) (models.Session, error)

	// Session returns the active session.
	Session() (models.Session, bool)

	// CachedSummaries returns the summaries of the last loaded list.
	CachedSummaries(ctx context.Context) ([]models.ItemSummary, error)

	// Load replaces the list with the first page. On failure the list and
	// the summary cache are emptied and the error is returned for display.
	Load(ctx context.Context) error

	// LoadMore appends the next page. It is a no-op when the end was reached
	// or another LoadMore is running.
	LoadMore(ctx context.Context) error

	Items() []models.CollectionItem
	HasMore() bool
	// Total returns the exact item count of the last Load.
	Total() (int, bool)

	TogglePin(ctx context.Context, id string) error
	ToggleReminder(ctx context.Context, id string) error

	// Save normalises and upserts item, then refetches.
	Save(ctx context.Context, item models.CollectionItem) (models.CollectionItem, error)

	// Import writes every row of a CSV document one by one, then refetches.
	Import(ctx context.Context, r io.Reader) (models.ImportResult, error)

	// Export writes the loaded items as CSV.
	Export(w io.Writer) error
	ExportFileName() string

	// ExportAll writes the whole collection as exported by the server.
	ExportAll(ctx context.Context, w io.Writer) error

	// ClearAll deletes every item of the account, then refetches.
	ClearAll(ctx context.Context) (int64, error)

	// Profile fetches the profile, provisioning a default one on first use.
	Profile(ctx context.Context) (models.Profile, error)
	SaveProfile(ctx context.Context, profile models.Profile) (models.Profile, error)

	Stats(ctx context.Context) (models.StatsBundle, error)
	Facets(ctx context.Context) (models.FilterFacets, error)

	// UploadImage returns the data URL of an image file.
	UploadImage(ctx context.Context, fileName string, r io.Reader) (string, error)

	// SignOut forgets the token, the list, the summary cache and the
	// persisted session.
	SignOut(ctx context.Context) error
}
