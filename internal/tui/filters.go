package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/gumi-collection/internal/engine"
	"github.com/MKhiriev/gumi-collection/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type facetKind int

const (
	facetSource facetKind = iota
	facetIP
	facetCharacter
	facetCategory
	facetCount
)

var facetTitles = [facetCount]string{"来源", "IP", "角色", "分类"}

// facetSelection holds the chosen values of every facet in the order they
// were picked.
type facetSelection [facetCount][]string

func (s *facetSelection) toggle(kind facetKind, value string) {
	if i := slices.Index(s[kind], value); i >= 0 {
		s[kind] = slices.Delete(s[kind], i, i+1)
		return
	}
	s[kind] = append(s[kind], value)
}

func (s facetSelection) has(kind facetKind, value string) bool {
	return slices.Contains(s[kind], value)
}

func (s facetSelection) empty() bool {
	for _, values := range s {
		if len(values) > 0 {
			return false
		}
	}
	return true
}

func (s facetSelection) count() int {
	n := 0
	for _, values := range s {
		n += len(values)
	}
	return n
}

// onlyIP returns the IP when it is the one selected value.
func (s facetSelection) onlyIP() (string, bool) {
	if s.count() != 1 || len(s[facetIP]) != 1 {
		return "", false
	}
	return s[facetIP][0], true
}

// apply copies the selection into the facet fields of f.
func (s facetSelection) apply(f engine.ListFilter) engine.ListFilter {
	for _, v := range s[facetSource] {
		f.Sources = append(f.Sources, models.SourceType(v))
	}
	f.IPs = slices.Clone(s[facetIP])
	f.Characters = slices.Clone(s[facetCharacter])
	for _, v := range s[facetCategory] {
		f.Categories = append(f.Categories, models.ItemCategory(v))
	}
	return f
}

// chips renders the active values as "IP: a, b  角色: c".
func (s facetSelection) chips() string {
	parts := make([]string, 0, facetCount)
	for kind, values := range s {
		if len(values) > 0 {
			parts = append(parts, facetTitles[kind]+": "+strings.Join(values, ", "))
		}
	}
	return strings.Join(parts, "  ")
}

// facetOptions lists the values offered for kind. Source types and
// categories are the closed sets; IPs and characters come from the server.
func facetOptions(kind facetKind, facets models.FilterFacets) []string {
	switch kind {
	case facetSource:
		out := make([]string, 0, len(models.AllSourceTypes()))
		for _, v := range models.AllSourceTypes() {
			out = append(out, string(v))
		}
		return out
	case facetIP:
		return facets.IPs
	case facetCharacter:
		return facets.Characters
	case facetCategory:
		out := make([]string, 0, len(models.AllCategories()))
		for _, v := range models.AllCategories() {
			out = append(out, string(v))
		}
		return out
	}
	return nil
}

// filtersModel is the facet filter drawer: one tab per facet, a cursor in
// the option list of the open tab.
type filtersModel struct {
	tab facetKind
	idx int
}

func (m filtersModel) View(sel facetSelection, facets models.FilterFacets) string {
	var b strings.Builder

	for kind := range facetCount {
		title := facetTitles[kind]
		if n := len(sel[kind]); n > 0 {
			title = fmt.Sprintf("%s(%d)", title, n)
		}
		if kind == m.tab {
			title = selectedStyle.Render("[" + title + "]")
		} else {
			title = " " + title + " "
		}
		b.WriteString(title + " ")
	}
	b.WriteString("\n\n")

	options := facetOptions(m.tab, facets)
	if len(options) == 0 {
		b.WriteString("暂无可选项\n")
	}
	for i, option := range options {
		mark := "[ ]"
		if sel.has(m.tab, option) {
			mark = "[x]"
		}
		row := fmt.Sprintf("%s %s", mark, option)
		if i == m.idx {
			row = selectedStyle.Render("> " + row)
		} else {
			row = "  " + row
		}
		b.WriteString(row + "\n")
	}

	return renderPage("筛选", b.String(), "←/→ 切换  space 选择  X 清空全部  enter/esc 完成")
}

func (m appModel) updateFilters(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	options := facetOptions(m.filters.tab, m.list.facets)
	switch {
	case key.Matches(keyMsg, keys.enter), key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.left), key.Matches(keyMsg, keys.backtab):
		m.filters.tab = (m.filters.tab + facetCount - 1) % facetCount
		m.filters.idx = 0
	case key.Matches(keyMsg, keys.right), key.Matches(keyMsg, keys.tab):
		m.filters.tab = (m.filters.tab + 1) % facetCount
		m.filters.idx = 0
	case key.Matches(keyMsg, keys.up):
		if m.filters.idx > 0 {
			m.filters.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.filters.idx < len(options)-1 {
			m.filters.idx++
		}
	case key.Matches(keyMsg, keys.toggle):
		if m.filters.idx < len(options) {
			m.list.selection.toggle(m.filters.tab, options[m.filters.idx])
			m.list.apply()
		}
	case key.Matches(keyMsg, keys.clearAll):
		m.list.selection = facetSelection{}
		m.list.apply()
	}
	return m, nil
}
