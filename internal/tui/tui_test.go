package tui

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/MKhiriev/gumi-collection/internal/mock"
	"github.com/MKhiriev/gumi-collection/internal/service"
	"github.com/MKhiriev/gumi-collection/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestMainModel(t *testing.T) (appModel, *mock.MockSessionService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	session := mock.NewMockSessionService(ctrl)
	session.EXPECT().Session().Return(models.Session{UserID: 7, Login: "mika@example.com"}, true)
	session.EXPECT().CachedSummaries(gomock.Any()).Return(nil, nil)

	services := &service.ClientServices{
		AuthService:    mock.NewMockClientAuthService(ctrl),
		SessionService: session,
	}
	m := newMainAppModel(context.Background(), services, models.NewAppBuildInfo("1.0.0", "", ""))
	m.now = func() time.Time { return testNow }
	return m, session
}

func expectList(session *mock.MockSessionService, items []models.CollectionItem, hasMore bool) {
	session.EXPECT().Items().Return(items).AnyTimes()
	session.EXPECT().HasMore().Return(hasMore).AnyTimes()
	session.EXPECT().Total().Return(len(items), true).AnyTimes()
}

func update(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(appModel)
	require.True(t, ok)
	return am, cmd
}

func TestNew_RequiresServices(t *testing.T) {
	_, err := New(nil, models.AppBuildInfo{}, nil)
	require.ErrorIs(t, err, errNoServices)
}

func TestAppModel_ListLoadedPinsFirst(t *testing.T) {
	m, session := newTestMainModel(t)
	expectList(session, []models.CollectionItem{
		{ID: "a", Name: "Acrylic", Status: models.StatusOwned},
		{ID: "b", Name: "Badge", Status: models.StatusTransit, IsPinned: true},
	}, false)

	m, cmd := update(t, m, listLoadedMsg{})

	assert.False(t, m.list.loading)
	require.Len(t, m.list.visible, 2)
	assert.Equal(t, "b", m.list.visible[0].ID)
	assert.NotNil(t, cmd, "facets are reloaded after a full load")
}

func TestAppModel_StatusFilterCycles(t *testing.T) {
	m, session := newTestMainModel(t)
	expectList(session, []models.CollectionItem{
		{ID: "a", Status: models.StatusOwned},
		{ID: "b", Status: models.StatusTransit},
	}, false)
	m, _ = update(t, m, listLoadedMsg{more: true})

	m, _ = update(t, m, keyRunes("f"))

	assert.Equal(t, string(models.StatusOwned), statusFilters[m.list.statusIdx])
	require.Len(t, m.list.visible, 1)
	assert.Equal(t, "a", m.list.visible[0].ID)
}

func TestAppModel_FilterDrawer(t *testing.T) {
	m, session := newTestMainModel(t)
	expectList(session, []models.CollectionItem{
		{ID: "a", IP: "Genshin", Character: "Zhongli", SourceType: models.SourceGame, Category: models.DefaultCategory},
		{ID: "b", IP: "Blue Lock", Character: "Isagi", SourceType: models.SourceAnime, Category: models.DefaultCategory, IsPinned: true},
		{ID: "c", IP: "Genshin", Character: "Venti", SourceType: models.SourceGame, Category: models.DefaultCategory},
	}, false)
	m, _ = update(t, m, listLoadedMsg{more: true})
	m, _ = update(t, m, facetsLoadedMsg{facets: models.FilterFacets{
		IPs:        []string{"Genshin", "Blue Lock"},
		Characters: []string{"Zhongli", "Isagi", "Venti"},
	}})

	m, _ = update(t, m, keyRunes("F"))
	require.Equal(t, screenFilters, m.currentScreen)

	// IP tab, pick both IPs
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, keyRunes("x"))
	assert.Equal(t, []string{"Genshin", "Blue Lock"}, m.list.selection[facetIP])
	assert.Len(t, m.list.visible, 3)

	// character tab narrows further
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	require.Len(t, m.list.visible, 1)
	assert.Equal(t, "c", m.list.visible[0].ID)

	f := m.list.filter()
	assert.Equal(t, []string{"Genshin", "Blue Lock"}, f.IPs)
	assert.Equal(t, []string{"Venti"}, f.Characters)
	assert.Contains(t, m.View(), "[x] Venti")

	// unselecting restores the IP-only result
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Len(t, m.list.visible, 3)

	m, _ = update(t, m, keyRunes("X"))
	assert.True(t, m.list.selection.empty())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenList, m.currentScreen)
}

func TestAppModel_FilterDrawerClosedSets(t *testing.T) {
	m, session := newTestMainModel(t)
	expectList(session, []models.CollectionItem{
		{ID: "a", SourceType: models.SourceGame, Category: models.DefaultCategory},
		{ID: "b", SourceType: models.SourceAnime, Category: models.CategoryOther},
	}, false)
	m, _ = update(t, m, listLoadedMsg{more: true})
	m, _ = update(t, m, keyRunes("F"))

	// source tab is first and offers every source type
	sources := facetOptions(facetSource, m.list.facets)
	require.Len(t, sources, len(models.AllSourceTypes()))
	animeIdx := slices.Index(sources, string(models.SourceAnime))
	require.GreaterOrEqual(t, animeIdx, 0)
	for range animeIdx {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	require.Len(t, m.list.visible, 1)
	assert.Equal(t, "b", m.list.visible[0].ID)

	// the category tab is reachable backwards from the source tab
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, facetCategory, m.filters.tab)
	categories := facetOptions(facetCategory, m.list.facets)
	assert.Len(t, categories, len(models.AllCategories()))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, screenList, m.currentScreen)
	assert.Contains(t, m.list.View(), "来源: "+string(models.SourceAnime))
}

func TestFacetSelection_OnlyIP(t *testing.T) {
	var sel facetSelection
	_, ok := sel.onlyIP()
	assert.False(t, ok)

	sel.toggle(facetIP, "Genshin")
	ip, ok := sel.onlyIP()
	require.True(t, ok)
	assert.Equal(t, "Genshin", ip)

	sel.toggle(facetCharacter, "Venti")
	_, ok = sel.onlyIP()
	assert.False(t, ok)
	assert.Equal(t, 2, sel.count())
	assert.Equal(t, "IP: Genshin  角色: Venti", sel.chips())
}

func TestAppModel_DownAtEndLoadsMore(t *testing.T) {
	m, session := newTestMainModel(t)
	expectList(session, []models.CollectionItem{{ID: "a"}}, true)
	m, _ = update(t, m, listLoadedMsg{more: true})
	session.EXPECT().LoadMore(gomock.Any()).Return(nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	require.NotNil(t, cmd)
	assert.True(t, m.list.loadingMore)

	msg := cmd()
	assert.Equal(t, listLoadedMsg{more: true}, msg)

	// a second press while loading is ignored
	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Nil(t, cmd)
}

func TestAppModel_TogglePinFailureShowsStatus(t *testing.T) {
	m, session := newTestMainModel(t)
	expectList(session, []models.CollectionItem{{ID: "a"}}, false)
	m, _ = update(t, m, listLoadedMsg{more: true})
	session.EXPECT().TogglePin(gomock.Any(), "a").Return(errors.New("offline"))

	_, cmd := update(t, m, keyRunes("p"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.Contains(t, m.list.status, "offline")
	assert.False(t, m.showError)
}

func TestAppModel_ConfirmClearAll(t *testing.T) {
	m, session := newTestMainModel(t)
	expectList(session, nil, false)
	session.EXPECT().ClearAll(gomock.Any()).Return(int64(3), nil)

	m, _ = update(t, m, keyRunes("X"))
	require.True(t, m.showConfirm)

	m, cmd := update(t, m, keyRunes("y"))
	require.NotNil(t, cmd)
	assert.False(t, m.showConfirm)

	m, _ = update(t, m, cmd())
	assert.Equal(t, clearedSummary(3), m.list.status)
}

func TestAppModel_CancelSignOut(t *testing.T) {
	m, _ := newTestMainModel(t)

	m, _ = update(t, m, keyRunes("L"))
	require.True(t, m.showConfirm)
	m, cmd := update(t, m, keyRunes("n"))

	assert.False(t, m.showConfirm)
	assert.Nil(t, cmd)
	assert.False(t, m.logout)
}

func TestAppModel_SignedOutQuits(t *testing.T) {
	m, _ := newTestMainModel(t)

	m, cmd := update(t, m, signedOutMsg{})

	assert.True(t, m.logout)
	require.NotNil(t, cmd)
}

func TestAppModel_SaveItemFromForm(t *testing.T) {
	m, session := newTestMainModel(t)
	expectList(session, nil, false)

	m, _ = update(t, m, keyRunes("n"))
	require.Equal(t, screenForm, m.currentScreen)
	m.form.fields[fieldName].input.SetValue("Nahida badge")
	m.form.fields[fieldPrice].input.SetValue("25.5")

	session.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, item models.CollectionItem) (models.CollectionItem, error) {
			assert.Equal(t, "Nahida badge", item.Name)
			assert.True(t, decimal.RequireFromString("25.5").Equal(item.Price))
			assert.Equal(t, "2025-03-14", item.PurchaseDate)
			return item, nil
		})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.form.submitting)

	m, _ = update(t, m, cmd())
	assert.Equal(t, screenList, m.currentScreen)
}

func TestAppModel_FormRejectsBlankName(t *testing.T) {
	m, _ := newTestMainModel(t)
	m, _ = update(t, m, keyRunes("n"))

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.True(t, m.showError)
}

func TestAppModel_StatsScreen(t *testing.T) {
	m, session := newTestMainModel(t)
	bundle := models.StatsBundle{Series: []models.DatedValue{
		{Date: "2025-03-10", Value: decimal.NewFromInt(30), Category: models.CategoryBadge, IP: "Genshin"},
		{Date: "2025-01-02", Value: decimal.NewFromInt(12), Category: models.CategoryCD, IP: "Blue Lock"},
	}}
	session.EXPECT().Stats(gomock.Any()).Return(bundle, nil)

	m, cmd := update(t, m, keyRunes("s"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.Equal(t, "2025-11周", m.stats.label())
	assert.Contains(t, m.View(), "2025-11周")

	m, _ = update(t, m, keyRunes("g"))
	assert.Equal(t, "2025-03月", m.stats.label())
	assert.Equal(t, "2025-01月", m.stats.ranges[0])
}

func TestAppModel_ProfileEdit(t *testing.T) {
	m, session := newTestMainModel(t)
	session.EXPECT().Profile(gomock.Any()).Return(models.Profile{Name: "mika"}, nil)

	m, cmd := update(t, m, keyRunes("o"))
	m, _ = update(t, m, cmd())
	assert.Equal(t, models.EmptyProfileBio, m.profile.profile.Bio)

	m, _ = update(t, m, keyRunes("e"))
	require.True(t, m.profile.editing)
	m.profile.inputs[1].SetValue("only plush")

	session.EXPECT().SaveProfile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.Profile) (models.Profile, error) {
			assert.Equal(t, "only plush", p.Bio)
			return p, nil
		})
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, cmd())

	assert.False(t, m.profile.editing)
	assert.Equal(t, "only plush", m.profile.profile.Bio)
}

func TestAppModel_ImportFile(t *testing.T) {
	m, session := newTestMainModel(t)
	expectList(session, nil, false)

	path := filepath.Join(t.TempDir(), "in.csv")
	require.NoError(t, os.WriteFile(path, []byte("h\n\"a\"\n"), 0o600))
	session.EXPECT().Import(gomock.Any(), gomock.Any()).Return(models.ImportResult{Applied: 1, Failed: 1}, nil)

	m, _ = update(t, m, keyRunes("i"))
	m.transfer.path.SetValue(path)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	m, _ = update(t, m, cmd())
	assert.Equal(t, importSummary(models.ImportResult{Applied: 1, Failed: 1}), m.transfer.status)
}

func TestAppModel_ExportAllWritesFile(t *testing.T) {
	m, session := newTestMainModel(t)
	dir := t.TempDir()
	session.EXPECT().ExportAll(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, w io.Writer) error {
		_, err := w.Write([]byte("csv"))
		return err
	})
	session.EXPECT().ExportFileName().Return("gumi_collection_2025-03-14.csv")

	m, _ = update(t, m, keyRunes("i"))
	m.transfer.path.SetValue(dir)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlE})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	data, err := os.ReadFile(filepath.Join(dir, "gumi_collection_2025-03-14.csv"))
	require.NoError(t, err)
	assert.Equal(t, "csv", string(data))
	assert.Contains(t, m.transfer.status, dir)
}

func TestAppModel_TaxonomyAddMoveRemove(t *testing.T) {
	m, _ := newTestMainModel(t)
	m, _ = update(t, m, keyRunes("c"))
	require.Equal(t, screenTaxonomy, m.currentScreen)

	first := m.categories.Labels()[0]
	m, _ = update(t, m, keyRunes("J"))
	assert.Equal(t, first, m.categories.Labels()[1])
	assert.Equal(t, 1, m.taxonomy.idx)

	m, _ = update(t, m, keyRunes("a"))
	require.True(t, m.taxonomy.adding)
	m.taxonomy.input.SetValue("色纸")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.categories.Labels(), "色纸")

	m, _ = update(t, m, keyRunes("d"))
	assert.NotContains(t, m.categories.Labels(), first)
}

func TestItemForm_DepositHidesPrice(t *testing.T) {
	f := newItemFormModel(nil, []string{"吧唧"}, []string{"动漫"}, testNow)
	assert.True(t, f.hidden(fieldDeposit))
	assert.False(t, f.hidden(fieldPrice))

	f.focus = fieldPayment
	f = f.cycle(1)

	assert.Equal(t, string(models.PaymentDeposit), f.fields[fieldPayment].value())
	assert.False(t, f.hidden(fieldDeposit))
	assert.True(t, f.hidden(fieldPrice))
}

func TestItemForm_ToItem(t *testing.T) {
	sold := 1
	item := models.CollectionItem{
		ID:           "x",
		Name:         "Plush",
		Category:     models.CategoryPlush,
		SourceType:   models.SourceGame,
		Price:        decimal.NewFromInt(80),
		Quantity:     2,
		Status:       models.StatusSold,
		SoldPrice:    decimal.NewNullDecimal(decimal.NewFromInt(90)),
		SoldQuantity: &sold,
		IsPinned:     true,
	}
	f := newItemFormModel(&item, []string{"吧唧"}, []string{"动漫"}, testNow)

	got, err := f.toItem()
	require.NoError(t, err)

	assert.True(t, f.editing)
	assert.Equal(t, "x", got.ID)
	assert.True(t, got.IsPinned)
	assert.Equal(t, models.CategoryPlush, got.Category)
	assert.Equal(t, models.SourceGame, got.SourceType)
	assert.Equal(t, 2, got.Quantity)
	require.NotNil(t, got.SoldQuantity)
	assert.Equal(t, 1, *got.SoldQuantity)
	assert.True(t, got.SoldPrice.Decimal.Equal(decimal.NewFromInt(90)))
}

func TestItemForm_CustomLabelFallsBackToOther(t *testing.T) {
	f := newItemFormModel(nil, []string{"色纸"}, []string{"动漫"}, testNow)
	f.fields[fieldName].input.SetValue("x")
	f.fields[fieldCategory].choice = 0

	got, err := f.toItem()
	require.NoError(t, err)
	assert.Equal(t, models.CategoryOther, got.Category)
}

func TestItemForm_InvalidInput(t *testing.T) {
	f := newItemFormModel(nil, []string{"吧唧"}, []string{"动漫"}, testNow)
	f.fields[fieldQuantity].input.SetValue("two")
	_, err := f.toItem()
	require.ErrorIs(t, err, errInvalidNumber)

	f = newItemFormModel(nil, []string{"吧唧"}, []string{"动漫"}, testNow)
	f.fields[fieldDate].input.SetValue("14/03/2025")
	_, err = f.toItem()
	require.Error(t, err)
}

func TestCredentials_Validate(t *testing.T) {
	login := newCredentialsModel(false)
	assert.NotEmpty(t, login.validate())

	login.inputs[0].SetValue(" mika ")
	login.inputs[1].SetValue("secret")
	assert.Empty(t, login.validate())
	assert.Equal(t, "mika", login.user().Login)

	reg := newCredentialsModel(true)
	reg.inputs[0].SetValue("mika")
	reg.inputs[1].SetValue("secret")
	reg.inputs[2].SetValue("other")
	assert.NotEmpty(t, reg.validate())
}

func TestLoginFlow_AuthDoneQuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	services := &service.ClientServices{AuthService: auth, SessionService: mock.NewMockSessionService(ctrl)}
	m := newLoginAppModel(context.Background(), services, models.AppBuildInfo{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenLogin, m.currentScreen)
	m.login.inputs[0].SetValue("mika")
	m.login.inputs[1].SetValue("secret")

	session := models.Session{UserID: 7, Login: "mika"}
	auth.EXPECT().Login(gomock.Any(), models.User{Login: "mika", Password: "secret"}).Return(session, nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m, cmd = update(t, m, cmd())

	assert.Equal(t, session, m.session)
	assert.NotNil(t, cmd)
}

func TestLoginFlow_WrongPassword(t *testing.T) {
	m := newLoginAppModel(context.Background(), &service.ClientServices{}, models.AppBuildInfo{})

	m, _ = update(t, m, authFailedMsg{err: service.ErrWrongPassword})

	assert.True(t, m.showError)
	assert.Equal(t, humanizeError(service.ErrWrongPassword), m.errorOverlay.message)
}

func TestIsLocalImage(t *testing.T) {
	assert.False(t, isLocalImage(""))
	assert.False(t, isLocalImage("https://example.com/a.png"))
	assert.False(t, isLocalImage("data:image/jpeg;base64,AAA"))
	assert.True(t, isLocalImage("/home/mika/badge.png"))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "原神吧唧", fitText("原神吧唧", 10))
	assert.Equal(t, "原神...", fitText("原神吧唧套装", 5))
}
