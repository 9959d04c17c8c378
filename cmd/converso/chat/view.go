package chat

import (
	"fmt"
	"strings"

	"converso/cmd/converso/ui"
	"converso/internal/conversation"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

// View renders the screen: header, message list, input row, footer.
func (m Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	header := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.RenderHeader(Title, m.vm.Store().Len(), m.width),
		m.styles.RenderDivider(m.width),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.viewport.View(),
		m.renderInputRow(),
		m.renderFooter(),
	)
}

// renderInputRow draws the capsule input with the send button beside it.
func (m Model) renderInputRow() string {
	capsule := m.styles.InputCapsule.
		Width(ui.InputWidth(m.width) + 2).
		Render(m.textarea.View())
	button := m.styles.SendButton.Render("→")
	return lipgloss.JoinHorizontal(lipgloss.Top,
		capsule,
		strings.Repeat(" ", ui.InputGap),
		button,
	)
}

func (m Model) renderFooter() string {
	msgs := m.vm.Store().All()
	bots := lo.CountBy(msgs, func(msg conversation.Message) bool {
		return msg.Sender == conversation.SenderChatbot
	})

	left := fmt.Sprintf("%s %d · %s %d",
		conversation.SenderChatbot, bots,
		conversation.SenderUser, len(msgs)-bots)
	if m.status != "" {
		left += " · " + m.styles.Warning.Render(m.status)
	}
	hints := "enter send · alt+enter newline · ↑/↓ history · esc quit"

	return m.styles.Footer.MaxWidth(m.width).Render(left + "  │  " + hints)
}
