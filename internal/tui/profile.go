package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/gumi-collection/internal/engine"
	"github.com/MKhiriev/gumi-collection/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type profileModel struct {
	profile models.Profile
	loading bool
	editing bool
	inputs  []textinput.Model
	focus   int
}

func newProfileModel() profileModel {
	inputs := make([]textinput.Model, 3)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	return profileModel{loading: true, inputs: inputs}
}

func (m *profileModel) setProfile(p models.Profile) {
	m.profile = p.WithDisplayFallbacks()
	m.editing = false
}

func (m profileModel) startEdit() profileModel {
	m.editing = true
	m.focus = 0
	m.inputs[0].SetValue(m.profile.Name)
	m.inputs[1].SetValue(m.profile.Bio)
	m.inputs[2].SetValue(m.profile.Avatar)
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.inputs[0].Focus()
	return m
}

func (m profileModel) edited() models.Profile {
	p := m.profile
	p.Name = strings.TrimSpace(m.inputs[0].Value())
	p.Bio = strings.TrimSpace(m.inputs[1].Value())
	p.Avatar = strings.TrimSpace(m.inputs[2].Value())
	return p
}

// View renders the profile with quick figures over the loaded items.
func (m profileModel) View(items []models.CollectionItem) string {
	if m.loading {
		return renderPage("我的", "加载中...", "esc 返回")
	}

	if m.editing {
		out := "昵称: [" + m.inputs[0].View() + "]\n"
		out += "简介: [" + m.inputs[1].View() + "]\n"
		out += "头像: [" + m.inputs[2].View() + "]\n"
		return renderPage("编辑资料", out, "tab 下一项  enter 保存  esc 取消")
	}

	totals := engine.ProfileTotals(items)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n头像: %s\n\n", titleStyle.Render(m.profile.Name), m.profile.Bio, fitText(m.profile.Avatar, 60))
	fmt.Fprintf(&b, "藏品 %d 件   IP %d 个\n", totals.TotalItems, totals.TotalDomains)
	fmt.Fprintf(&b, "支出 ¥%s   回血 ¥%s\n", engine.FormatK(totals.TotalSpent), engine.FormatK(totals.TotalEarned))

	return renderPage("我的", b.String(), "e 编辑资料  esc 返回")
}

func (m appModel) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)

	if !m.profile.editing {
		if !ok {
			return m, nil
		}
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
		case key.Matches(keyMsg, keys.edit) && !m.profile.loading:
			m.profile = m.profile.startEdit()
		}
		return m, nil
	}

	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.profile.editing = false
			return m, nil
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			step := 1
			if key.Matches(keyMsg, keys.backtab) {
				step = -1
			}
			m.profile.inputs[m.profile.focus].Blur()
			m.profile.focus = (m.profile.focus + step + len(m.profile.inputs)) % len(m.profile.inputs)
			m.profile.inputs[m.profile.focus].Focus()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.profile.loading = true
			return m, m.cmdSaveProfile(m.profile.edited())
		}
	}

	var cmd tea.Cmd
	m.profile.inputs[m.profile.focus], cmd = m.profile.inputs[m.profile.focus].Update(msg)
	return m, cmd
}
