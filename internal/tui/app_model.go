package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/gumi-collection/internal/service"
	"github.com/MKhiriev/gumi-collection/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenList
	screenDetail
	screenForm
	screenStats
	screenProfile
	screenReminders
	screenTransfer
	screenTaxonomy
	screenFilters
)

type appMode int

const (
	modeLogin appMode = iota
	modeMain
)

const pollInterval = time.Second

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	buildInfo     models.AppBuildInfo
	now           func() time.Time
	mode          appMode
	currentScreen screen

	welcome   welcomeModel
	login     credentialsModel
	register  credentialsModel
	list      listModel
	detail    detailModel
	form      itemFormModel
	stats     statsModel
	profile   profileModel
	reminders remindersModel
	transfer  transferModel
	taxonomy  taxonomyModel
	filters   filtersModel

	// categories and sources are the option lists offered by the item form.
	categories *models.Taxonomy
	sources    *models.Taxonomy

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	showBuildInfo bool

	session models.Session
	logout  bool
	err     error
}

func newLoginAppModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		buildInfo:     buildInfo,
		now:           time.Now,
		mode:          modeLogin,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newCredentialsModel(false),
		register:      newCredentialsModel(true),
		list:          newListModel(),
		transfer:      newTransferModel(),
		taxonomy:      newTaxonomyModel(),
		categories:    models.DefaultCategoryTaxonomy(),
		sources:       models.DefaultSourceTaxonomy(),
	}
}

func newMainAppModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo) appModel {
	m := newLoginAppModel(ctx, services, buildInfo)
	m.mode = modeMain
	m.currentScreen = screenList
	m.list.loading = true
	if session, ok := services.SessionService.Session(); ok {
		m.session = session
	}
	m.list.setCached(m.cachedSummaries())
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.mode == modeMain {
		return tea.Batch(m.list.spinner.Tick, m.cmdLoad(), cmdPoll())
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			if m.mode == modeLogin {
				m.err = ErrUserQuit
			}
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
				m.showBuildInfo = false
			}
			return m, nil
		}
	case authDoneMsg:
		m.session = msg.session
		return m, tea.Quit
	case authFailedMsg:
		m.login.submitting = false
		m.register.submitting = false
		m.showErrorf(humanizeError(msg.err))
		return m, nil
	case listLoadedMsg:
		m.list.loading = false
		m.list.loadingMore = false
		m.syncList()
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		if !msg.more {
			return m, m.cmdFacets()
		}
		return m, nil
	case facetsLoadedMsg:
		// a failure keeps the previous option lists
		if msg.err == nil {
			m.list.setFacets(msg.facets)
		}
		return m, nil
	case pollMsg:
		m.syncList()
		return m, cmdPoll()
	case itemSavedMsg:
		m.form.submitting = false
		m.syncList()
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.currentScreen = backFromForm(m.form.editing)
		return m, nil
	case toggledMsg:
		m.syncList()
		if msg.err != nil {
			m.list.status = "同步失败: " + humanizeError(msg.err)
			return m, cmdClearStatus()
		}
		return m, nil
	case importDoneMsg:
		m.transfer.busy = false
		m.syncList()
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.transfer.status = importSummary(msg.result)
		return m, nil
	case fileWrittenMsg:
		m.transfer.busy = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.transfer.status = "已保存到 " + msg.path
		return m, nil
	case clearedMsg:
		m.list.loading = false
		m.syncList()
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.list.status = clearedSummary(msg.deleted)
		return m, cmdClearStatus()
	case profileLoadedMsg:
		m.profile.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
		}
		m.profile.setProfile(msg.profile)
		return m, nil
	case statsLoadedMsg:
		m.stats.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.stats.setBundle(msg.bundle, m.now())
		return m, nil
	case signedOutMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.logout = true
		return m, tea.Quit
	case copiedMsg:
		status := "已复制到剪贴板"
		if msg.err != nil {
			status = "复制失败: " + msg.err.Error()
		}
		m.detail.status = status
		m.transfer.status = status
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		m.list.status = ""
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.list.spinner, cmd = m.list.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateCredentials(msg, false)
	case screenRegister:
		return m.updateCredentials(msg, true)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	case screenStats:
		return m.updateStats(msg)
	case screenProfile:
		return m.updateProfile(msg)
	case screenReminders:
		return m.updateReminders(msg)
	case screenTransfer:
		return m.updateTransfer(msg)
	case screenTaxonomy:
		return m.updateTaxonomy(msg)
	case screenFilters:
		return m.updateFilters(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenList:
		body = m.list.View()
	case screenDetail:
		body = m.detail.View(m.list.items)
	case screenForm:
		body = m.form.View()
	case screenStats:
		body = m.stats.View()
	case screenProfile:
		body = m.profile.View(m.list.items)
	case screenReminders:
		body = m.reminders.View(m.list.items)
	case screenTransfer:
		body = m.transfer.View()
	case screenTaxonomy:
		body = m.taxonomy.View(m.categories, m.sources)
	case screenFilters:
		body = m.filters.View(m.list.selection, m.list.facets)
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) askConfirm(action confirmAction, message string) {
	m.showConfirm = true
	m.confirm = confirmModel{action: action, message: message}
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		action := m.confirm.action
		m.showConfirm = false
		m.confirm = confirmModel{}
		switch action {
		case confirmClearAll:
			m.list.loading = true
			return m, m.cmdClearAll()
		case confirmSignOut:
			return m, m.cmdSignOut()
		}
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
		m.confirm = confirmModel{}
	}
	return m, nil
}

// syncList copies the session's list into the screen models.
func (m *appModel) syncList() {
	svc := m.services.SessionService
	total, known := svc.Total()
	m.list.setItems(svc.Items(), svc.HasMore(), total, known)
}

func (m appModel) cachedSummaries() []models.ItemSummary {
	summaries, err := m.services.SessionService.CachedSummaries(m.ctx)
	if err != nil {
		return nil
	}
	return summaries
}

func backFromForm(editing bool) screen {
	if editing {
		return screenDetail
	}
	return screenList
}
