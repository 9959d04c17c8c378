package chat

import (
	"converso/cmd/converso/ui"
	"converso/internal/config"
	"converso/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height), nil

	case storeChangedMsg:
		if msg.closed {
			return m, nil
		}
		logging.UIDebug("store changed: %s message", msg.message.Sender)
		m = m.refreshTranscript(true)
		return m, m.waitForChange()

	case ConfigReloadedMsg:
		return m.applyConfig(msg.Config), nil

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.KeyMsg:
		next, cmd, handled := m.handleKeyMsg(msg)
		if handled {
			return next, cmd
		}
		m = next
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	m.vm.SetDraft(m.textarea.Value())
	return m, cmd
}

// resize lays the screen out for a new terminal size.
func (m Model) resize(width, height int) Model {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	m.width, m.height = width, height
	m.viewport.Width = width
	m.viewport.Height = ui.ListHeight(height)
	m.textarea.SetWidth(ui.InputWidth(width))
	m.ready = true
	return m.refreshTranscript(false)
}

// refreshTranscript re-renders the whole store into the viewport.
func (m Model) refreshTranscript(gotoBottom bool) Model {
	if !m.ready {
		return m
	}
	m.viewport.SetContent(m.bubbles.Transcript(m.vm.Store().All(), m.viewport.Width))
	if gotoBottom {
		m.viewport.GotoBottom()
	}
	return m
}

// applyConfig swaps in reloaded presentation settings and send policy.
// The store and the draft are left alone.
func (m Model) applyConfig(cfg *config.Config) Model {
	if cfg == nil {
		return m
	}
	m.cfg = cfg
	m.styles = ui.NewStyles(ui.ThemeFor(cfg.UI.Theme))
	m.bubbles = newBubbles(m.styles, cfg)
	m.vm.SetPolicy(cfg.SendPolicy())
	m.textarea.Placeholder = cfg.UI.Placeholder
	m.status = "Config reloaded"
	logging.UI("applied config reload (theme=%s markdown=%v)", cfg.UI.Theme, cfg.UI.Markdown)
	return m.refreshTranscript(false)
}

// handleMouseMsg submits on a send-button click and scrolls on the wheel.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
		m.ready && ui.SendButtonHit(msg.X, msg.Y, m.width, m.height) {
		return m.submit(), nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}
