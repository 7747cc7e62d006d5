package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/gumi-collection/internal/csvcodec"
	"github.com/MKhiriev/gumi-collection/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type detailModel struct {
	id     string
	back   screen
	status string
}

func findItem(items []models.CollectionItem, id string) (models.CollectionItem, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return models.CollectionItem{}, false
}

func (m detailModel) View(items []models.CollectionItem) string {
	item, ok := findItem(items, m.id)
	if !ok {
		return renderPage("详情", "这件收藏已不在列表中", "esc 返回")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "IP:       %s\n", valueOrDash(item.IP))
	fmt.Fprintf(&b, "角色:     %s\n", valueOrDash(item.Character))
	fmt.Fprintf(&b, "分类:     %s    来源: %s\n", item.Category, item.SourceType)
	fmt.Fprintf(&b, "状态:     %s\n", item.Status)
	fmt.Fprintf(&b, "单价:     %s x %d = %s\n", money(item.Price), item.Quantity, money(item.TotalCost()))
	fmt.Fprintf(&b, "付款:     %s", item.PaymentStatus)
	if item.PaymentStatus == models.PaymentDeposit {
		fmt.Fprintf(&b, "  定金 %s  尾款 %s", nullMoney(item.DepositAmount), nullMoney(item.FinalPaymentAmount))
	}
	b.WriteString("\n")
	if item.Status == models.StatusSold {
		qty := "-"
		if item.SoldQuantity != nil {
			qty = fmt.Sprint(*item.SoldQuantity)
		}
		fmt.Fprintf(&b, "卖出:     %s x %s = %s\n", nullMoney(item.SoldPrice), qty, money(item.SaleIncome()))
	}
	fmt.Fprintf(&b, "购入日期: %s\n", valueOrDash(item.PurchaseDate))
	fmt.Fprintf(&b, "备注:     %s\n", valueOrDash(item.Notes))
	fmt.Fprintf(&b, "图片:     %s\n", imageLabel(item.ImageURL))

	flags := []string{}
	if item.IsPinned {
		flags = append(flags, "已置顶")
	}
	if item.IsReminderEnabled {
		flags = append(flags, "提醒中")
	}
	if len(flags) > 0 {
		b.WriteString("\n" + strings.Join(flags, "  ") + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage(itemMarks(item)+" "+item.Name, b.String(), "e 编辑  p 置顶  r 提醒  y 复制为CSV  esc 返回")
}

func imageLabel(url string) string {
	switch {
	case url == "":
		return "-"
	case strings.HasPrefix(url, "data:"):
		return fmt.Sprintf("内嵌图片 (%d KB)", len(url)/1024)
	default:
		return fitText(url, 60)
	}
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	item, found := findItem(m.list.items, m.detail.id)

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = m.detail.back
		return m, nil
	case !found:
		return m, nil
	case key.Matches(keyMsg, keys.edit):
		m.form = newItemFormModel(&item, m.categories.Labels(), m.sources.Labels(), m.now())
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.pin):
		return m, m.cmdTogglePin(item.ID)
	case key.Matches(keyMsg, keys.reminder):
		return m, m.cmdToggleReminder(item.ID)
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(csvcodec.ExportString([]models.CollectionItem{item}))
	}

	return m, nil
}
