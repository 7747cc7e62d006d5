package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("出错了") + "\n\n" + m.message + "\n\n" + helpStyle.Render("enter / esc 关闭")
	return overlayBoxStyle.Render(content)
}
