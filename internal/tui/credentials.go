package tui

import (
	"strings"

	"github.com/MKhiriev/gumi-collection/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// credentialsModel is the login form, or the register form when it carries a
// third input repeating the password.
type credentialsModel struct {
	inputs     []textinput.Model
	focus      int
	register   bool
	submitting bool
}

func newCredentialsModel(register bool) credentialsModel {
	n := 2
	if register {
		n = 3
	}

	inputs := make([]textinput.Model, n)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].CharLimit = 256
		if i > 0 {
			inputs[i].EchoMode = textinput.EchoPassword
			inputs[i].EchoCharacter = '*'
		}
	}
	inputs[0].Placeholder = "邮箱或用户名"
	inputs[0].Focus()

	return credentialsModel{inputs: inputs, register: register}
}

func (m credentialsModel) user() models.User {
	return models.User{
		Login:    strings.TrimSpace(m.inputs[0].Value()),
		Password: m.inputs[1].Value(),
	}
}

// validate returns a message to show, or "" when the form can be sent.
func (m credentialsModel) validate() string {
	u := m.user()
	if u.Login == "" || u.Password == "" {
		return "账号和密码不能为空"
	}
	if m.register && m.inputs[2].Value() != u.Password {
		return "两次输入的密码不一致"
	}
	return ""
}

func (m credentialsModel) focusNext(step int) credentialsModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + step + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m credentialsModel) View() string {
	title := "登录"
	if m.register {
		title = "注册"
	}

	out := "账号:     [" + m.inputs[0].View() + "]\n"
	out += "密码:     [" + m.inputs[1].View() + "]\n"
	if m.register {
		out += "重复密码: [" + m.inputs[2].View() + "]\n"
	}
	if m.submitting {
		out += "\n请稍候..."
	}
	return renderPage(title, out, "esc 返回  tab 下一项  enter 提交")
}

func (m appModel) updateCredentials(msg tea.Msg, register bool) (tea.Model, tea.Cmd) {
	form := &m.login
	if register {
		form = &m.register
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			*form = form.focusNext(1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			*form = form.focusNext(-1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if form.submitting {
				return m, nil
			}
			if problem := form.validate(); problem != "" {
				m.showErrorf(problem)
				return m, nil
			}
			form.submitting = true
			if register {
				return m, m.cmdRegister(form.user())
			}
			return m, m.cmdLogin(form.user())
		}
	}

	var cmd tea.Cmd
	form.inputs[form.focus], cmd = form.inputs[form.focus].Update(msg)
	return m, cmd
}
