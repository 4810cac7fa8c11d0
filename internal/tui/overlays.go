package tui

import "fmt"

type confirmModel struct {
	id          int64
	description string
}

func (m confirmModel) View() string {
	content := fmt.Sprintf("Delete purchase %d \"%s\"?\n\n", m.id, fitText(m.description, 40))
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Error") + "\n\n" + m.message + "\n\nenter / esc close"
	return overlayBoxStyle.Render(content)
}
