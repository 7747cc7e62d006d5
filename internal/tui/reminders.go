package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/gumi-collection/internal/engine"
	"github.com/MKhiriev/gumi-collection/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// remindersModel lists in-transit and reserved items, earliest first.
type remindersModel struct {
	idx int
}

func (m remindersModel) current(items []models.CollectionItem) (models.CollectionItem, bool) {
	list := engine.Reminders(items)
	if m.idx < 0 || m.idx >= len(list) {
		return models.CollectionItem{}, false
	}
	return list[m.idx], true
}

func (m remindersModel) View(items []models.CollectionItem) string {
	list := engine.Reminders(items)
	if len(list) == 0 {
		return renderPage("待收货提醒", "没有在途或预定中的收藏", "esc 返回")
	}

	var b strings.Builder
	for i, item := range list {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		fmt.Fprintf(&b, "%s%s %s  %s  %s\n", cursor, itemMarks(item), valueOrDash(item.PurchaseDate), item.Status, fitText(item.Name, 30))
	}
	return renderPage("待收货提醒", b.String(), "enter 详情  r 提醒开关  esc 返回")
}

func (m appModel) updateReminders(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	n := len(engine.Reminders(m.list.items))
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.up):
		if m.reminders.idx > 0 {
			m.reminders.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.reminders.idx < n-1 {
			m.reminders.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if item, ok := m.reminders.current(m.list.items); ok {
			m.detail = detailModel{id: item.ID, back: screenReminders}
			m.currentScreen = screenDetail
		}
	case key.Matches(keyMsg, keys.reminder):
		if item, ok := m.reminders.current(m.list.items); ok {
			return m, m.cmdToggleReminder(item.ID)
		}
	}
	return m, nil
}
