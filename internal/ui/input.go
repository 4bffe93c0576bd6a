package ui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/atomicstack/lookbook/internal/logging/events"
	"github.com/atomicstack/lookbook/internal/render"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

func (m *Model) openPrompt() tea.Cmd {
	events.Prompt.Open()
	m.prompting = true
	m.prompt.SetValue("")
	return m.prompt.Focus()
}

func (m *Model) closePrompt() {
	m.prompting = false
	m.prompt.Blur()
	m.prompt.SetValue("")
}

func (m *Model) handlePromptKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		events.Prompt.Cancel(m.prompt.Value())
		m.closePrompt()
		return nil
	case tea.KeyEnter:
		query := strings.TrimSpace(m.prompt.Value())
		idx := m.bestMatch(query)
		events.Prompt.Submit(query, idx)
		m.closePrompt()
		if query == "" {
			return nil
		}
		if idx < 0 {
			m.setInfo(fmt.Sprintf("No look matches %q", query))
			return nil
		}
		m.dispatch(render.SelectAction(idx))
		return nil
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return cmd
}

// bestMatch resolves a jump query to a catalog index, or -1. A number is a
// 1-based position; anything else is fuzzy-matched against IDs and alt text.
func (m *Model) bestMatch(query string) int {
	matches := m.matches(query)
	if len(matches) == 0 {
		return -1
	}
	return matches[0]
}

func (m *Model) matches(query string) []int {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	if pos, err := strconv.Atoi(query); err == nil {
		if pos >= 1 && pos <= m.ctl.Len() {
			return []int{pos - 1}
		}
		return nil
	}
	targets := make([]string, m.ctl.Len())
	for i, th := range m.frame.Thumbs {
		targets[i] = th.Key + " " + th.Item.Alt
	}
	ranks := fuzzy.RankFindNormalizedFold(query, targets)
	sort.Stable(ranks)
	out := make([]int, len(ranks))
	for i, r := range ranks {
		out[i] = r.OriginalIndex
	}
	return out
}

// promptLine renders the jump prompt with a preview of the current match.
func (m *Model) promptLine() string {
	line := m.prompt.View()
	if idx := m.bestMatch(m.prompt.Value()); idx >= 0 {
		hint := "→ " + m.frame.Thumbs[idx].Label
		if styles.PromptMatch != nil {
			hint = styles.PromptMatch.Render(hint)
		}
		line += "  " + hint
	}
	return line
}
