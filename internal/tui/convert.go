package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// convertModel asks for the target country and currency.
type convertModel struct {
	inputs  []textinput.Model
	focus   int
	loading bool
}

func newConvertModel() convertModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 30
		inputs[i].CharLimit = 64
	}
	inputs[0].Placeholder = "Canada"
	inputs[1].Placeholder = "Dollar"
	inputs[0].Focus()

	return convertModel{inputs: inputs}
}

func (m convertModel) country() string {
	return strings.TrimSpace(m.inputs[0].Value())
}

func (m convertModel) currency() string {
	return strings.TrimSpace(m.inputs[1].Value())
}

func (m convertModel) ready() bool {
	return m.country() != "" && m.currency() != ""
}

func (m convertModel) nextField() convertModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m convertModel) update(msg tea.Msg) (convertModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m convertModel) View() string {
	out := "Country:   [" + m.inputs[0].View() + "]\n"
	out += "Currency:  [" + m.inputs[1].View() + "]\n"
	if m.loading {
		out += "\nLooking up the exchange rate..."
	}

	return renderPage(titleStyle.Render("Convert purchase"), out, "tab next field  enter convert  esc cancel")
}
