package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/gumi-collection/internal/engine"
	"github.com/MKhiriev/gumi-collection/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// statusFilters are the values cycled by the status filter key.
var statusFilters = func() []string {
	out := []string{engine.StatusAll}
	for _, s := range models.AllItemStatuses() {
		out = append(out, string(s))
	}
	return out
}()

type listModel struct {
	items   []models.CollectionItem
	visible []models.CollectionItem
	idx     int

	// cached is shown until the first load of the session finishes.
	cached []models.ItemSummary

	statusIdx int
	selection facetSelection
	facets    models.FilterFacets
	query     textinput.Model
	searching bool

	hasMore     bool
	total       int
	totalKnown  bool
	loading     bool
	loadingMore bool

	spinner spinner.Model
	status  string
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	q := textinput.New()
	q.Placeholder = "名称 / IP / 角色"
	q.Width = 30

	return listModel{spinner: s, query: q}
}

func (m *listModel) setCached(summaries []models.ItemSummary) {
	m.cached = summaries
}

func (m *listModel) setItems(items []models.CollectionItem, hasMore bool, total int, known bool) {
	m.items = items
	m.hasMore = hasMore
	m.total = total
	m.totalKnown = known
	if !m.loading {
		m.cached = nil
	}
	m.apply()
}

func (m *listModel) setFacets(facets models.FilterFacets) {
	m.facets = facets
}

func (m listModel) filter() engine.ListFilter {
	return m.selection.apply(engine.ListFilter{
		Status: statusFilters[m.statusIdx],
		Query:  strings.TrimSpace(m.query.Value()),
	})
}

func (m *listModel) apply() {
	f := m.filter()
	if ip, ok := m.selection.onlyIP(); ok && f.Query == "" {
		m.visible = engine.ByIP(m.items, ip, f.Status)
	} else {
		m.visible = engine.PinFirst(engine.FilterItems(m.items, f))
	}
	if m.idx >= len(m.visible) {
		m.idx = len(m.visible) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m listModel) current() (models.CollectionItem, bool) {
	if m.idx < 0 || m.idx >= len(m.visible) {
		return models.CollectionItem{}, false
	}
	return m.visible[m.idx], true
}

func itemMarks(item models.CollectionItem) string {
	marks := ""
	if item.IsPinned {
		marks += pinnedStyle.Render("★")
	} else {
		marks += " "
	}
	if item.IsReminderEnabled {
		marks += "!"
	} else {
		marks += " "
	}
	return marks
}

func (m listModel) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "状态: %s", statusFilters[m.statusIdx])
	if !m.selection.empty() {
		b.WriteString("   " + m.selection.chips())
	}
	if m.searching || m.query.Value() != "" {
		b.WriteString("   搜索: " + m.query.View())
	}
	b.WriteString("\n\n")

	switch {
	case m.loading && len(m.cached) > 0:
		for _, s := range m.cached {
			fmt.Fprintf(&b, "    %s  %s/%s  %s\n", fitText(s.Name, 24), valueOrDash(s.IP), valueOrDash(s.Character), s.Status)
		}
		b.WriteString("\n" + m.spinner.View() + " 正在同步...\n")
	case m.loading:
		b.WriteString(m.spinner.View() + " 加载中...\n")
	case len(m.visible) == 0:
		b.WriteString("还没有收藏，按 n 添加第一件\n")
	default:
		for i, item := range m.visible {
			row := fmt.Sprintf("%s %s  %s/%s  %s  %s",
				itemMarks(item), fitText(item.Name, 24), valueOrDash(item.IP), valueOrDash(item.Character),
				item.Status, money(item.TotalCost()))
			if i == m.idx {
				row = selectedStyle.Render("> " + row)
			} else {
				row = "  " + row
			}
			b.WriteString(row + "\n")
		}
	}

	b.WriteString("\n")
	if m.totalKnown {
		fmt.Fprintf(&b, "已加载 %d / %d", len(m.items), m.total)
	} else {
		fmt.Fprintf(&b, "已加载 %d", len(m.items))
	}
	switch {
	case m.loadingMore:
		b.WriteString("  " + m.spinner.View())
	case m.hasMore:
		b.WriteString("  (m 加载更多)")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status)
	}

	return renderPage("我的收藏", b.String(),
		"n 新增  enter 详情  p 置顶  r 提醒  f 状态  F 筛选  / 搜索  s 统计  o 我的  t 提醒单  i 导入导出  c 分类  X 清空  L 退出登录  q 退出")
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.list.searching {
		switch {
		case key.Matches(keyMsg, keys.enter):
			m.list.searching = false
			m.list.query.Blur()
		case key.Matches(keyMsg, keys.esc):
			m.list.searching = false
			m.list.query.Blur()
			m.list.query.SetValue("")
			m.list.apply()
		default:
			var cmd tea.Cmd
			m.list.query, cmd = m.list.query.Update(msg)
			m.list.apply()
			return m, cmd
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.visible)-1 {
			m.list.idx++
			return m, nil
		}
		return m.loadMore()
	case key.Matches(keyMsg, keys.more):
		return m.loadMore()
	case key.Matches(keyMsg, keys.enter):
		item, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.detail = detailModel{id: item.ID, back: screenList}
		m.currentScreen = screenDetail
	case key.Matches(keyMsg, keys.newItem):
		m.form = newItemFormModel(nil, m.categories.Labels(), m.sources.Labels(), m.now())
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.pin):
		if item, ok := m.list.current(); ok {
			return m, m.cmdTogglePin(item.ID)
		}
	case key.Matches(keyMsg, keys.reminder):
		if item, ok := m.list.current(); ok {
			return m, m.cmdToggleReminder(item.ID)
		}
	case key.Matches(keyMsg, keys.filter):
		m.list.statusIdx = (m.list.statusIdx + 1) % len(statusFilters)
		m.list.apply()
	case key.Matches(keyMsg, keys.facets):
		m.filters = filtersModel{}
		m.currentScreen = screenFilters
	case key.Matches(keyMsg, keys.search):
		m.list.searching = true
		return m, m.list.query.Focus()
	case key.Matches(keyMsg, keys.stats):
		m.stats.loading = true
		m.currentScreen = screenStats
		return m, m.cmdStats()
	case key.Matches(keyMsg, keys.profile):
		m.profile = newProfileModel()
		m.currentScreen = screenProfile
		return m, m.cmdProfile()
	case key.Matches(keyMsg, keys.reminders):
		m.reminders = remindersModel{}
		m.currentScreen = screenReminders
	case key.Matches(keyMsg, keys.transfer):
		m.currentScreen = screenTransfer
		return m, m.transfer.path.Focus()
	case key.Matches(keyMsg, keys.taxonomy):
		m.currentScreen = screenTaxonomy
	case key.Matches(keyMsg, keys.clearAll):
		m.askConfirm(confirmClearAll, "清空全部收藏？此操作无法撤销")
	case key.Matches(keyMsg, keys.signOut):
		m.askConfirm(confirmSignOut, "退出登录 "+m.session.Login+"？")
	case key.Matches(keyMsg, keys.version):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) loadMore() (tea.Model, tea.Cmd) {
	if !m.list.hasMore || m.list.loadingMore || m.list.loading {
		return m, nil
	}
	m.list.loadingMore = true
	return m, m.cmdLoadMore()
}
