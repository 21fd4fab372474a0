package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := "Error\n\n" + m.message + "\n\nenter: retry    esc: dismiss"
	return overlayBoxStyle.Render(content)
}
