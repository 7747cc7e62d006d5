package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/gumi-collection/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// taxonomyModel edits the category and source option lists of the item form.
type taxonomyModel struct {
	tab    int
	idx    int
	adding bool
	input  textinput.Model
}

func newTaxonomyModel() taxonomyModel {
	in := textinput.New()
	in.Placeholder = "新选项"
	in.Width = 20
	return taxonomyModel{input: in}
}

func (m appModel) activeTaxonomy() *models.Taxonomy {
	if m.taxonomy.tab == 0 {
		return m.categories
	}
	return m.sources
}

func (m taxonomyModel) View(categories, sources *models.Taxonomy) string {
	tabs := []string{"分类", "来源"}
	lists := []*models.Taxonomy{categories, sources}

	var b strings.Builder
	for i, t := range tabs {
		if i == m.tab {
			b.WriteString(selectedStyle.Render(" " + t + " "))
		} else {
			b.WriteString(" " + t + " ")
		}
	}
	b.WriteString("\n\n")

	for i, label := range lists[m.tab].Labels() {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		fmt.Fprintf(&b, "%s%s\n", cursor, label)
	}
	if m.adding {
		b.WriteString("\n添加: [" + m.input.View() + "]\n")
	}
	b.WriteString("\n" + helpStyle.Render("不在固定选项中的标签保存时记为「其他」"))

	return renderPage("分类管理", b.String(), "tab 切换  a 添加  d 删除  K/J 上移/下移  esc 返回")
}

func (m appModel) updateTaxonomy(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)

	if m.taxonomy.adding {
		if ok {
			switch {
			case key.Matches(keyMsg, keys.enter):
				m.activeTaxonomy().Add(m.taxonomy.input.Value())
				m.taxonomy.adding = false
				m.taxonomy.input.Blur()
				m.taxonomy.input.SetValue("")
				return m, nil
			case key.Matches(keyMsg, keys.esc):
				m.taxonomy.adding = false
				m.taxonomy.input.Blur()
				m.taxonomy.input.SetValue("")
				return m, nil
			}
		}
		var cmd tea.Cmd
		m.taxonomy.input, cmd = m.taxonomy.input.Update(msg)
		return m, cmd
	}

	if !ok {
		return m, nil
	}

	t := m.activeTaxonomy()
	n := len(t.Labels())
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.tab):
		m.taxonomy.tab = (m.taxonomy.tab + 1) % 2
		m.taxonomy.idx = 0
	case key.Matches(keyMsg, keys.moveUp):
		if t.Move(m.taxonomy.idx, true) {
			m.taxonomy.idx--
		}
	case key.Matches(keyMsg, keys.moveDown):
		if t.Move(m.taxonomy.idx, false) {
			m.taxonomy.idx++
		}
	case key.Matches(keyMsg, keys.up):
		if m.taxonomy.idx > 0 {
			m.taxonomy.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.taxonomy.idx < n-1 {
			m.taxonomy.idx++
		}
	case key.Matches(keyMsg, keys.add):
		m.taxonomy.adding = true
		return m, m.taxonomy.input.Focus()
	case key.Matches(keyMsg, keys.remove):
		if n > 1 && m.taxonomy.idx < n {
			t.Remove(t.Labels()[m.taxonomy.idx])
			if m.taxonomy.idx >= n-1 {
				m.taxonomy.idx = n - 2
			}
		}
	}
	return m, nil
}
