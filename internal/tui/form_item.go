package tui

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/gumi-collection/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
)

var errInvalidNumber = errors.New("不是有效的数字")

const (
	fieldName = iota
	fieldIP
	fieldCharacter
	fieldCategory
	fieldSource
	fieldPrice
	fieldQuantity
	fieldPayment
	fieldDeposit
	fieldFinal
	fieldStatus
	fieldSoldPrice
	fieldSoldQuantity
	fieldDate
	fieldNotes
	fieldImage
	fieldCount
)

// formField is either a free text input or, when options is set, a selector
// cycled with left and right.
type formField struct {
	label   string
	input   textinput.Model
	options []string
	choice  int
}

func (f formField) value() string {
	if f.options != nil {
		return f.options[f.choice]
	}
	return strings.TrimSpace(f.input.Value())
}

type itemFormModel struct {
	fields     []formField
	focus      int
	editing    bool
	base       models.CollectionItem
	submitting bool
}

func newItemFormModel(item *models.CollectionItem, categories, sources []string, now time.Time) itemFormModel {
	labels := []string{
		"名称", "IP", "角色", "分类", "来源", "单价", "数量", "付款", "定金", "尾款",
		"状态", "卖出单价", "卖出数量", "购入日期", "备注", "图片",
	}

	fields := make([]formField, fieldCount)
	for i := range fields {
		fields[i].label = labels[i]
		fields[i].input = textinput.New()
		fields[i].input.Width = 40
	}
	fields[fieldImage].input.Placeholder = "链接或本地图片路径"
	fields[fieldDate].input.Placeholder = models.DateLayout

	fields[fieldCategory].options = categories
	fields[fieldSource].options = sources
	fields[fieldPayment].options = enumLabels(models.AllPaymentStatuses())
	fields[fieldStatus].options = enumLabels(models.AllItemStatuses())

	m := itemFormModel{fields: fields}

	base := models.CollectionItem{
		Category:      models.DefaultFormCategory,
		SourceType:    models.DefaultFormSourceType,
		PaymentStatus: models.DefaultPaymentStatus,
		Status:        models.DefaultItemStatus,
		Quantity:      1,
		PurchaseDate:  now.Format(models.DateLayout),
	}
	if item != nil {
		base = *item
		m.editing = true
	}
	m.base = base

	m.fields[fieldName].input.SetValue(base.Name)
	m.fields[fieldIP].input.SetValue(base.IP)
	m.fields[fieldCharacter].input.SetValue(base.Character)
	m.selectOption(fieldCategory, string(base.Category))
	m.selectOption(fieldSource, string(base.SourceType))
	if !base.Price.IsZero() || m.editing {
		m.fields[fieldPrice].input.SetValue(base.Price.String())
	}
	m.fields[fieldQuantity].input.SetValue(strconv.Itoa(base.Quantity))
	m.selectOption(fieldPayment, string(base.PaymentStatus))
	m.fields[fieldDeposit].input.SetValue(nullString(base.DepositAmount))
	m.fields[fieldFinal].input.SetValue(nullString(base.FinalPaymentAmount))
	m.selectOption(fieldStatus, string(base.Status))
	m.fields[fieldSoldPrice].input.SetValue(nullString(base.SoldPrice))
	if base.SoldQuantity != nil {
		m.fields[fieldSoldQuantity].input.SetValue(strconv.Itoa(*base.SoldQuantity))
	}
	m.fields[fieldDate].input.SetValue(base.PurchaseDate)
	m.fields[fieldNotes].input.SetValue(base.Notes)
	m.fields[fieldImage].input.SetValue(base.ImageURL)

	m.fields[fieldName].input.Focus()
	return m
}

func enumLabels[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func nullString(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}

// selectOption picks value, appending it when the list does not offer it.
func (m *itemFormModel) selectOption(field int, value string) {
	f := &m.fields[field]
	if value == "" {
		return
	}
	i := slices.Index(f.options, value)
	if i < 0 {
		f.options = append(slices.Clone(f.options), value)
		i = len(f.options) - 1
	}
	f.choice = i
}

// hidden reports whether field is irrelevant for the current selections.
func (m itemFormModel) hidden(field int) bool {
	switch field {
	case fieldDeposit, fieldFinal:
		return m.fields[fieldPayment].value() != string(models.PaymentDeposit)
	case fieldSoldPrice, fieldSoldQuantity:
		return m.fields[fieldStatus].value() != string(models.StatusSold)
	case fieldPrice:
		return m.fields[fieldPayment].value() == string(models.PaymentDeposit)
	}
	return false
}

func (m itemFormModel) focusNext(step int) itemFormModel {
	m.fields[m.focus].input.Blur()
	next := m.focus
	for range fieldCount {
		next = (next + step + fieldCount) % fieldCount
		if !m.hidden(next) {
			break
		}
	}
	m.focus = next
	if m.fields[m.focus].options == nil {
		m.fields[m.focus].input.Focus()
	}
	return m
}

func (m itemFormModel) cycle(step int) itemFormModel {
	f := &m.fields[m.focus]
	if len(f.options) == 0 {
		return m
	}
	f.choice = (f.choice + step + len(f.options)) % len(f.options)
	return m
}

// toItem builds the item to save. Pricing rules are applied by the session
// service; labels outside the closed enums fall back to "other".
func (m itemFormModel) toItem() (models.CollectionItem, error) {
	item := m.base
	item.Name = m.fields[fieldName].value()
	item.IP = m.fields[fieldIP].value()
	item.Character = m.fields[fieldCharacter].value()

	category, ok := models.ParseItemCategory(m.fields[fieldCategory].value())
	if !ok {
		category = models.CategoryOther
	}
	item.Category = category

	source, ok := models.ParseSourceType(m.fields[fieldSource].value())
	if !ok {
		source = models.SourceOther
	}
	item.SourceType = source

	item.PaymentStatus = models.PaymentStatus(m.fields[fieldPayment].value())
	item.Status = models.ItemStatus(m.fields[fieldStatus].value())
	item.PurchaseDate = m.fields[fieldDate].value()
	item.Notes = m.fields[fieldNotes].value()
	if !isLocalImage(m.fields[fieldImage].value()) {
		item.ImageURL = m.fields[fieldImage].value()
	}

	var err error
	if item.Price, err = m.decimal(fieldPrice); err != nil {
		return item, err
	}
	if item.Quantity, err = m.integer(fieldQuantity, 1); err != nil {
		return item, err
	}
	if item.DepositAmount, err = m.nullDecimal(fieldDeposit); err != nil {
		return item, err
	}
	if item.FinalPaymentAmount, err = m.nullDecimal(fieldFinal); err != nil {
		return item, err
	}
	if item.SoldPrice, err = m.nullDecimal(fieldSoldPrice); err != nil {
		return item, err
	}

	item.SoldQuantity = nil
	if v := m.fields[fieldSoldQuantity].value(); v != "" {
		qty, err := m.integer(fieldSoldQuantity, 0)
		if err != nil {
			return item, err
		}
		item.SoldQuantity = &qty
	}

	if v := item.PurchaseDate; v != "" {
		if _, err := time.Parse(models.DateLayout, v); err != nil {
			return item, fmt.Errorf("购入日期: 格式应为 %s", models.DateLayout)
		}
	}

	return item, nil
}

func (m itemFormModel) imageSource() string {
	return m.fields[fieldImage].value()
}

func (m itemFormModel) decimal(field int) (decimal.Decimal, error) {
	v := m.fields[field].value()
	if v == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", m.fields[field].label, errInvalidNumber)
	}
	return d, nil
}

func (m itemFormModel) nullDecimal(field int) (decimal.NullDecimal, error) {
	if m.fields[field].value() == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := m.decimal(field)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}

func (m itemFormModel) integer(field int, fallback int) (int, error) {
	v := m.fields[field].value()
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", m.fields[field].label, errInvalidNumber)
	}
	return n, nil
}

func (m itemFormModel) View() string {
	title := "新增收藏"
	if m.editing {
		title = "编辑: " + m.base.Name
	}

	var b strings.Builder
	for i, f := range m.fields {
		if m.hidden(i) {
			continue
		}
		cursor := "  "
		if i == m.focus {
			cursor = "> "
		}
		label := f.label + strings.Repeat("　", max(0, 4-len([]rune(f.label))))
		if f.options != nil {
			fmt.Fprintf(&b, "%s%s ‹ %s ›\n", cursor, label, f.value())
			continue
		}
		fmt.Fprintf(&b, "%s%s [%s]\n", cursor, label, f.input.View())
	}
	if m.submitting {
		b.WriteString("\n保存中...")
	}

	return renderPage(title, b.String(), "tab/shift+tab 切换  ←/→ 选择  enter 保存  esc 取消")
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		selector := m.form.fields[m.form.focus].options != nil
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = backFromForm(m.form.editing)
			return m, nil
		case key.Matches(keyMsg, keys.tab), keyMsg.String() == "down":
			m.form = m.form.focusNext(1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab), keyMsg.String() == "up":
			m.form = m.form.focusNext(-1)
			return m, nil
		case selector && key.Matches(keyMsg, keys.left):
			m.form = m.form.cycle(-1)
			return m, nil
		case selector && key.Matches(keyMsg, keys.right):
			m.form = m.form.cycle(1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.form.submitting {
				return m, nil
			}
			item, err := m.form.toItem()
			if err != nil {
				m.showErrorf(err.Error())
				return m, nil
			}
			if strings.TrimSpace(item.Name) == "" {
				m.showErrorf("名称不能为空")
				return m, nil
			}
			m.form.submitting = true
			return m, m.cmdSaveItem(item, m.form.imageSource())
		}
		if selector {
			return m, nil
		}
	}

	var cmd tea.Cmd
	f := &m.form.fields[m.form.focus]
	f.input, cmd = f.input.Update(msg)
	return m, cmd
}
