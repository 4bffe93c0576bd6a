package ui

import (
	"github.com/atomicstack/lookbook/internal/logging/events"
	"github.com/atomicstack/lookbook/internal/render"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	events.UI.Key(keyMsg.String())
	if m.prompting {
		return m.handlePromptKey(keyMsg)
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Jump):
		return m.openPrompt()
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(keyMsg, m.keys.Next):
		m.dispatch(render.AdvanceAction())
	case key.Matches(keyMsg, m.keys.Prev):
		m.dispatch(render.SelectAction(m.previousIndex()))
	case key.Matches(keyMsg, m.keys.Select):
		idx := int(keyMsg.Runes[0] - '1')
		if idx >= m.ctl.Len() {
			m.setInfo("No look at position " + string(keyMsg.Runes[0]))
		}
		m.dispatch(render.SelectAction(idx))
	}
	return nil
}

func (m *Model) previousIndex() int {
	n := m.ctl.Len()
	return (m.ctl.Index() - 1 + n) % n
}
