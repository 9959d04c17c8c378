package chat

import (
	"converso/internal/config"
	"converso/internal/conversation"

	tea "github.com/charmbracelet/bubbletea"
)

// NewTestModel returns a sized, seeded model on the light theme.
func NewTestModel() Model {
	return NewTestModelWith(func(*config.Config) {})
}

// NewTestModelWith lets a test adjust the config before the model is built.
func NewTestModelWith(adjust func(*config.Config)) Model {
	cfg := config.DefaultConfig()
	cfg.UI.Theme = config.ThemeLight
	adjust(cfg)

	seed, err := cfg.Seed()
	if err != nil {
		panic(err)
	}
	vm := conversation.NewViewModel(conversation.NewStore(seed...), cfg.SendPolicy())

	m := New(cfg, vm)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model)
}

// typeText feeds s to the model as typed runes.
func typeText(m Model, s string) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return next.(Model)
}

func press(m Model, k tea.KeyType) (Model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: k})
	return next.(Model), cmd
}

// drain delivers every queued store notification, as the program loop would.
func drain(m Model) Model {
	for len(m.changes) > 0 {
		next, _ := m.Update(m.waitForChange()())
		m = next.(Model)
	}
	return m
}
