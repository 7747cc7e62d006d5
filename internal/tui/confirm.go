package tui

type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmClearAll
	confirmSignOut
)

type confirmModel struct {
	action  confirmAction
	message string
}

func (m confirmModel) View() string {
	return overlayBoxStyle.Render(m.message + "\n\n" + helpStyle.Render("y 确定    n 取消"))
}
