package chat

import (
	"errors"

	"converso/internal/conversation"

	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg processes keyboard input for Update.
// Returns (model, cmd, handled) where handled=false means the key should fall
// through to the textarea.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.performShutdown()
		return m, tea.Quit, true

	case tea.KeyEnter:
		if msg.Alt {
			return m, nil, false // newline
		}
		return m.submit(), nil, true

	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd, true

	case tea.KeyUp:
		if m.textarea.Line() == 0 {
			return m.historyPrev(), nil, true
		}

	case tea.KeyDown:
		if m.textarea.Line() >= m.textarea.LineCount()-1 {
			return m.historyNext(), nil, true
		}
	}

	return m, nil, false
}

// submit sends the current draft. The transcript redraw arrives separately as
// a storeChangedMsg.
func (m Model) submit() Model {
	m.vm.SetDraft(m.textarea.Value())
	sent, err := m.vm.Send()
	if errors.Is(err, conversation.ErrEmptyDraft) {
		m.status = "Empty message ignored"
		return m
	}

	m.status = ""
	m = m.pushHistory(sent.Body)
	if m.vm.Policy().ClearDraft {
		m.textarea.Reset()
	}
	return m
}

func (m Model) pushHistory(body string) Model {
	if body != "" && (len(m.history) == 0 || m.history[len(m.history)-1] != body) {
		m.history = append(m.history, body)
	}
	m.historyIdx = len(m.history)
	m.stash = ""
	return m
}

func (m Model) historyPrev() Model {
	if m.historyIdx == 0 {
		return m
	}
	if m.historyIdx == len(m.history) {
		m.stash = m.textarea.Value()
	}
	m.historyIdx--
	return m.setInput(m.history[m.historyIdx])
}

func (m Model) historyNext() Model {
	if m.historyIdx >= len(m.history) {
		return m
	}
	m.historyIdx++
	if m.historyIdx == len(m.history) {
		return m.setInput(m.stash)
	}
	return m.setInput(m.history[m.historyIdx])
}

func (m Model) setInput(s string) Model {
	m.textarea.SetValue(s)
	m.textarea.CursorEnd()
	m.vm.SetDraft(s)
	return m
}
